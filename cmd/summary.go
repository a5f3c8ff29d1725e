package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/ccfscore/internal/cli"
	"github.com/dotcommander/ccfscore/internal/output"
)

var summaryTop int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show band and track distribution across the workspace",
	Long: `Scores every discovered assessment and reports how many fall in each
severity band and functionality track, followed by the highest-scoring
assessments.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSummary(cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	summaryCmd.Flags().IntVarP(&summaryTop, "top", "n", 10, "Number of highest-scoring assessments to list (0 for all)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(stdout io.Writer) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	summary, err := s.run(nil, cli.Options{Strict: s.cfg.Strict})
	if err != nil {
		return err
	}

	w := stdout
	if s.cfg.Output != "" {
		f, err := os.Create(s.cfg.Output)
		if err != nil {
			return fmt.Errorf("error creating %s: %w", s.cfg.Output, err)
		}
		defer f.Close()
		w = f
	}

	return output.FormatDistribution(w, output.NewDistribution(summary, summaryTop), s.cfg.Format)
}
