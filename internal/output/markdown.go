package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/ccfscore/internal/cli"
	"github.com/dotcommander/ccfscore/internal/scoring"
	"github.com/dotcommander/ccfscore/internal/types"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	outputFile string
	out        io.Writer
	now        func() time.Time
}

// NewMarkdownFormatter creates a new MarkdownFormatter. With no outputFile the report goes to stdout.
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		outputFile: outputFile,
		out:        os.Stdout,
		now:        time.Now,
	}
}

// WithWriter redirects stdout output to w
func (f *MarkdownFormatter) WithWriter(w io.Writer) *MarkdownFormatter {
	f.out = w
	return f
}

// Format formats the batch summary as Markdown
func (f *MarkdownFormatter) Format(summary *cli.Summary) error {
	var b strings.Builder

	b.WriteString("# CCF Score Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", f.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Project:** %s\n\n", summary.ProjectRoot)
	fmt.Fprintf(&b, "**Duration:** %v\n\n", time.Duration(summary.Duration)*time.Millisecond)
	b.WriteString(strings.Repeat("-", 50) + "\n\n")

	// Summary table
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Files Scanned | %d |\n", summary.TotalFiles)
	fmt.Fprintf(&b, "| Assessments | %d |\n", summary.TotalAssessments)
	fmt.Fprintf(&b, "| Scored | %d |\n", summary.ScoredCount)
	fmt.Fprintf(&b, "| Failed | %d |\n", summary.FailedCount)
	fmt.Fprintf(&b, "| Errors | %d |\n", summary.TotalErrors)
	fmt.Fprintf(&b, "| Warnings | %d |\n", summary.TotalWarnings)
	fmt.Fprintf(&b, "| With track | %d |\n", summary.TrackedCount)
	fmt.Fprintf(&b, "| Without track | %d |\n", summary.UntrackedCount)
	b.WriteString("\n")

	b.WriteString("### Bands\n\n")
	b.WriteString("| Band | Assessments |\n")
	b.WriteString("|------|-------------|\n")
	for _, band := range scoring.Bands() {
		fmt.Fprintf(&b, "| %s | %d |\n", band, summary.BandCounts[band])
	}
	b.WriteString("\n")

	b.WriteString("## Assessments\n\n")
	if summary.TotalAssessments == 0 {
		b.WriteString("*No assessments found.*\n\n")
	}
	for _, result := range summary.Results {
		writeResult(&b, result)
	}

	return writeReport(f.outputFile, f.out, []byte(b.String()))
}

func writeResult(b *strings.Builder, result cli.AssessmentResult) {
	fmt.Fprintf(b, "### %s\n\n", result.Label())
	fmt.Fprintf(b, "Source: `%s` (document %d)\n\n", result.File, result.Document)

	if ev := result.Evaluation; ev != nil {
		fmt.Fprintf(b, "**Total:** %d (clinical %d, functional %d)\n\n",
			ev.Result.Total, ev.Result.Clinical, ev.Result.Functional)
		fmt.Fprintf(b, "**Band:** %s, follow-up %s\n\n", ev.Classification.Band, ev.Classification.SuggestedPlan)
		if t := ev.Track; t != nil {
			fmt.Fprintf(b, "**Track:** %s %s (%s, %s). %s. %s\n\n",
				t.SubTier, t.Name, t.TierLabel, t.ScoreRange, t.ReviewCadence, t.Guidance)
		} else {
			b.WriteString("**Track:** none\n\n")
		}

		b.WriteString("| Category | Dimension | Points | Max |\n")
		b.WriteString("|----------|-----------|--------|-----|\n")
		for _, m := range ev.Result.Breakdown.Metrics() {
			limit := fmt.Sprintf("%d", m.MaxPoints)
			if m.Note != "" {
				limit = m.Note
			}
			fmt.Fprintf(b, "| %s | %s | %d | %s |\n", m.Category, m.Name, m.Points, limit)
		}
		b.WriteString("\n")
	} else {
		fmt.Fprintf(b, "Status: %s\n\n", getStatusEmoji(result.Success))
	}

	writeIssues(b, "Errors", result.Errors)
	writeIssues(b, "Warnings", result.Warnings)
	b.WriteString("---\n\n")
}

func writeIssues(b *strings.Builder, title string, issues []types.ValidationError) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(b, "#### %s\n\n", title)
	for _, issue := range issues {
		subject := issue.File
		if issue.Field != "" {
			subject = issue.Field
		}
		fmt.Fprintf(b, "- **%s** - %s", subject, issue.Message)
		if issue.Source != "" {
			fmt.Fprintf(b, " `[%s]`", issue.Source)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// getStatusEmoji returns an emoji for the status
func getStatusEmoji(success bool) string {
	if success {
		return "✅"
	}
	return "❌"
}
