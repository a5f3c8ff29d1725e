package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dotcommander/ccfscore/internal/cli"
	"github.com/dotcommander/ccfscore/internal/config"
	"github.com/dotcommander/ccfscore/internal/cue"
	"github.com/dotcommander/ccfscore/internal/logger"
	"github.com/dotcommander/ccfscore/internal/output"
	"github.com/dotcommander/ccfscore/internal/outputters"
	"github.com/dotcommander/ccfscore/internal/project"
)

var (
	rootPath      string
	quiet         bool
	verbose       bool
	outputFormat  string
	outputFile    string
	failOn        string
	strict        bool
	showBreakdown bool
	exclude       []string
	logLevel      string
	logFormat     string
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "ccfscore [files...]",
	Short: "CCF clinical-functional risk scoring for older adults",
	Long: `ccfscore scores assessment files with the CCF (Clinical-Functional
Classification) instrument: a clinical and a functional sub-score, a severity
band with its suggested follow-up plan, and a functionality track.

Without arguments it scores every *.ccf.yaml / *.ccf.json file and everything
under assessments/ in the project. Explicit files bypass discovery.`,
	Version: output.Version,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootPath, "root", "r", "", "Project root directory (auto-detected if not specified)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress console output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show score breakdown and all issues")
	flags.StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")
	flags.StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	flags.StringVar(&failOn, "fail-on", "none", "Exit 1 when any assessment reaches this band (none|moderate|high|extreme)")
	flags.BoolVar(&strict, "strict", false, "Do not score assessments that fail schema validation")
	flags.BoolVarP(&showBreakdown, "breakdown", "b", false, "Show the points of every dimension")
	flags.StringSliceVar(&exclude, "exclude", nil, "Glob patterns to skip during discovery (repeatable)")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	flags.StringVar(&logFormat, "log-format", "console", "Log format (console|json)")

	bindFlags()
}

// bindFlags binds persistent flags to their config keys
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	for key, flag := range map[string]string{
		"root":          "root",
		"quiet":         "quiet",
		"verbose":       "verbose",
		"format":        "format",
		"output":        "output",
		"failOn":        "fail-on",
		"strict":        "strict",
		"showBreakdown": "breakdown",
		"exclude":       "exclude",
		"logLevel":      "log-level",
		"logFormat":     "log-format",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

// loadConfig loads configuration for the --root directory, or for the
// project root detected from the working directory.
func loadConfig() (*config.Config, error) {
	if rootPath != "" {
		cfg, err := config.LoadConfig(rootPath)
		if err != nil {
			return nil, fmt.Errorf("error loading configuration: %w", err)
		}
		return cfg, nil
	}

	projectRoot, err := project.FindProjectRoot(".")
	if err != nil {
		return nil, fmt.Errorf("error finding project root: %w", err)
	}
	cfg, err := config.LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	return cfg, nil
}

// session holds what every batch command needs
type session struct {
	cfg       *config.Config
	log       *zap.Logger
	validator *cue.Validator
}

func newSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}

	validator := cue.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return nil, fmt.Errorf("error loading schemas: %w", err)
	}

	log.Debug("configuration loaded",
		zap.String("root", cfg.Root),
		zap.String("config_file", cfg.ConfigFile),
		zap.String("format", cfg.Format))
	return &session{cfg: cfg, log: log, validator: validator}, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}

// run resolves files and processes them
func (s *session) run(args []string, opts cli.Options) (*cli.Summary, error) {
	files, err := cli.ResolveFiles(s.cfg.Root, s.cfg.Exclude, args)
	if err != nil {
		return nil, err
	}
	s.log.Debug("files resolved", zap.Int("count", len(files)), zap.Bool("explicit", len(args) > 0))

	opts.Validator = s.validator
	opts.Logger = s.log
	return cli.ScoreFiles(s.cfg.Root, files, opts), nil
}

func runScore(args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	threshold, thresholdSet, err := cli.ParseFailOn(s.cfg.FailOn)
	if err != nil {
		return err
	}

	summary, err := s.run(args, cli.Options{Strict: s.cfg.Strict})
	if err != nil {
		return err
	}

	if err := outputters.NewOutputter(s.cfg).Format(summary, s.cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if summary.FailedCount > 0 {
		return fmt.Errorf("%d of %d assessments could not be scored", summary.FailedCount, summary.TotalAssessments)
	}
	if thresholdSet && cli.ExceedsThreshold(summary, threshold) {
		return fmt.Errorf("assessments at or above %s risk found", threshold)
	}
	return nil
}
