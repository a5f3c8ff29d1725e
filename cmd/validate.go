package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/ccfscore/internal/cli"
	"github.com/dotcommander/ccfscore/internal/outputters"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check assessment files against the schema without scoring",
	Long: `Decodes every assessment and validates it against the embedded CUE schema.
Schema violations are always errors here, whatever --strict says.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	summary, err := s.run(args, cli.Options{Strict: true, ValidateOnly: true})
	if err != nil {
		return err
	}

	if err := outputters.NewOutputter(s.cfg).Format(summary, s.cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if summary.FailedCount > 0 {
		return fmt.Errorf("%d of %d assessments are invalid", summary.FailedCount, summary.TotalAssessments)
	}
	return nil
}
