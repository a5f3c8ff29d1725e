package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/ccfscore/internal/cli"
	"github.com/dotcommander/ccfscore/internal/scoring"
	"github.com/dotcommander/ccfscore/internal/types"
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	quiet         bool
	verbose       bool
	showBreakdown bool
	out           io.Writer
	renderer      *lipgloss.Renderer
}

// NewConsoleFormatter creates a ConsoleFormatter writing to stdout
func NewConsoleFormatter(quiet, verbose, showBreakdown bool) *ConsoleFormatter {
	return NewConsoleFormatterTo(os.Stdout, quiet, verbose, showBreakdown)
}

// NewConsoleFormatterTo creates a ConsoleFormatter writing to w.
// Colors are enabled only when w is a terminal.
func NewConsoleFormatterTo(w io.Writer, quiet, verbose, showBreakdown bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:         quiet,
		verbose:       verbose,
		showBreakdown: showBreakdown,
		out:           w,
		renderer:      lipgloss.NewRenderer(w),
	}
}

func (f *ConsoleFormatter) style(color lipgloss.Color) lipgloss.Style {
	return f.renderer.NewStyle().Foreground(color)
}

// Format formats the batch summary for console output
func (f *ConsoleFormatter) Format(summary *cli.Summary) error {
	if f.quiet {
		return nil
	}

	for _, result := range summary.Results {
		f.printResult(result)
	}

	f.printSummary(summary)
	return nil
}

// printResult prints one assessment: status line, track, breakdown and issues
func (f *ConsoleFormatter) printResult(result cli.AssessmentResult) {
	location := fmt.Sprintf("%s#%d", result.File, result.Document)
	dim := f.style(lipgloss.Color("8"))

	if !result.Scored() {
		status := f.style(lipgloss.Color("9")).Render("✗")
		if result.Success {
			status = f.style(lipgloss.Color("10")).Render("✓")
		}
		fmt.Fprintf(f.out, "%s %s %s\n", status, result.Label(), dim.Render(location))
		f.printIssues(result)
		return
	}

	ev := result.Evaluation
	band := ev.Classification.Band
	bandStyle := f.style(BandColor(band)).Bold(true)

	fmt.Fprintf(f.out, "%s %s %s  %s %s  %s\n",
		bandStyle.Render("●"),
		result.Label(),
		dim.Render(location),
		bandStyle.Render(fmt.Sprintf("%d", ev.Result.Total)),
		bandStyle.Render(band.String()),
		"plan: "+ev.Classification.SuggestedPlan,
	)

	if ev.Track != nil {
		t := ev.Track
		trackStyle := f.style(TrackColor(t.DisplayColor))
		fmt.Fprintf(f.out, "    %s %s (%s, %s) · %s · %s\n",
			trackStyle.Render("▌"+t.SubTier), t.Name, t.TierLabel, t.ScoreRange, t.ReviewCadence, t.Guidance)
	} else {
		fmt.Fprintf(f.out, "    %s\n", dim.Render(fmt.Sprintf("no functionality track for total %d", ev.Result.Total)))
	}

	if f.showBreakdown || f.verbose {
		f.printBreakdown(ev.Result)
	}
	f.printIssues(result)
}

// printBreakdown prints clinical and functional subtotals followed by every dimension
func (f *ConsoleFormatter) printBreakdown(result scoring.ScoringResult) {
	dim := f.style(lipgloss.Color("8"))
	fmt.Fprintf(f.out, "    clinical %d/%d · functional %d/%d\n",
		result.Clinical, scoring.MaxClinical, result.Functional, scoring.MaxFunctional)

	for _, m := range result.Breakdown.Metrics() {
		points := fmt.Sprintf("%d/%d", m.Points, m.MaxPoints)
		if m.Note != "" {
			points = fmt.Sprintf("%d (%s)", m.Points, m.Note)
		}
		fmt.Fprintf(f.out, "      %-11s %-22s %s\n", dim.Render(m.Category), m.Name, points)
	}
}

func (f *ConsoleFormatter) printIssues(result cli.AssessmentResult) {
	for _, err := range result.Errors {
		f.printValidationError(err)
	}
	for _, warning := range result.Warnings {
		f.printValidationError(warning)
	}
}

// printValidationError prints a validation error with appropriate styling
func (f *ConsoleFormatter) printValidationError(err types.ValidationError) {
	var style lipgloss.Style
	prefix := "    "
	switch err.Severity {
	case types.SeverityError:
		style = f.style(lipgloss.Color("9")) // red
		prefix = "    ✘ "
	case types.SeverityWarning:
		style = f.style(lipgloss.Color("3")) // yellow
		prefix = "    ⚠ "
	default:
		style = f.style(lipgloss.Color("7")) // gray
	}

	subject := err.File
	if err.Field != "" {
		subject = err.Field
	}
	fmt.Fprintf(f.out, "%s%s: %s\n", prefix, style.Render(subject), err.Message)
}

// printSummary prints the closing totals line
func (f *ConsoleFormatter) printSummary(summary *cli.Summary) {
	if len(summary.Results) > 0 {
		fmt.Fprintln(f.out)
	}

	if summary.TotalAssessments == 0 {
		fmt.Fprintln(f.out, "No assessments found")
		return
	}

	var bands []string
	for _, b := range scoring.Bands() {
		bands = append(bands, fmt.Sprintf("%s %d", b, summary.BandCounts[b]))
	}

	duration := time.Duration(summary.Duration) * time.Millisecond
	line := fmt.Sprintf("%d assessments, %d scored, %d failed · %s (%v)",
		summary.TotalAssessments, summary.ScoredCount, summary.FailedCount,
		strings.Join(bands, " · "), duration)

	if summary.FailedCount == 0 {
		fmt.Fprintln(f.out, f.style(lipgloss.Color("10")).Bold(true).Render("✓ "+line))
		return
	}
	fmt.Fprintln(f.out, f.style(lipgloss.Color("9")).Render("✗ "+line))
}
