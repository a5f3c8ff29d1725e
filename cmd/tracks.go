package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/ccfscore/internal/output"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "Print the functionality track table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReferenceTable(cmd.OutOrStdout(), output.FormatTracks); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var imsCmd = &cobra.Command{
	Use:   "ims",
	Short: "Print the ICU Mobility Scale levels and their CCF points",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReferenceTable(cmd.OutOrStdout(), output.FormatMobilityScale); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(imsCmd)
}

// runReferenceTable renders a static table in the configured format
func runReferenceTable(w io.Writer, render func(io.Writer, string) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return render(w, cfg.Format)
}
