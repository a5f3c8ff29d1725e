package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/ccfscore/internal/scoring"
)

// Report metadata
const ToolName = "ccfscore"

// Version is stamped into JSON reports; overridden at build time with -ldflags
var Version = "1.0.0"

// writeReport writes content to outputFile, or to out when no file is set
func writeReport(outputFile string, out io.Writer, content []byte) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, content, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		return nil
	}
	if _, err := out.Write(content); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}

// bandColors are terminal colors per severity band
var bandColors = map[scoring.Band]lipgloss.Color{
	scoring.BandLow:      lipgloss.Color("10"),  // green
	scoring.BandModerate: lipgloss.Color("11"),  // yellow
	scoring.BandHigh:     lipgloss.Color("208"), // orange
	scoring.BandExtreme:  lipgloss.Color("9"),   // red
}

// trackColors maps track display color tokens to terminal colors
var trackColors = map[string]lipgloss.Color{
	"trilha-dark-green":   lipgloss.Color("28"),
	"trilha-light-green":  lipgloss.Color("114"),
	"trilha-yellow":       lipgloss.Color("226"),
	"trilha-light-yellow": lipgloss.Color("229"),
	"trilha-orange":       lipgloss.Color("208"),
	"trilha-light-orange": lipgloss.Color("215"),
	"trilha-light-red":    lipgloss.Color("210"),
	"trilha-red":          lipgloss.Color("196"),
}

// TrackColor returns the terminal color for a track's display token.
// Unknown tokens fall back to gray.
func TrackColor(token string) lipgloss.Color {
	if c, ok := trackColors[token]; ok {
		return c
	}
	return lipgloss.Color("7")
}

// BandColor returns the terminal color for a band
func BandColor(b scoring.Band) lipgloss.Color {
	if c, ok := bandColors[b]; ok {
		return c
	}
	return lipgloss.Color("7")
}
