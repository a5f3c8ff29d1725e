package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/ccfscore/internal/cli"
	"github.com/dotcommander/ccfscore/internal/scoring"
	"github.com/dotcommander/ccfscore/internal/types"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	indent     bool
	outputFile string
	out        io.Writer
	now        func() time.Time
}

// NewJSONFormatter creates a new JSONFormatter. With no outputFile the report goes to stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
		out:        os.Stdout,
		now:        time.Now,
	}
}

// WithWriter redirects stdout output to w
func (f *JSONFormatter) WithWriter(w io.Writer) *JSONFormatter {
	f.out = w
	return f
}

// Format formats the batch summary as JSON
func (f *JSONFormatter) Format(summary *cli.Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      ToolName,
			Version:   Version,
			Timestamp: f.now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			ProjectRoot:      summary.ProjectRoot,
			TotalFiles:       summary.TotalFiles,
			TotalAssessments: summary.TotalAssessments,
			Scored:           summary.ScoredCount,
			Failed:           summary.FailedCount,
			TotalErrors:      summary.TotalErrors,
			TotalWarnings:    summary.TotalWarnings,
			Bands:            bandCounts(summary),
			Tracks:           summary.TrackCounts,
			Tracked:          summary.TrackedCount,
			Untracked:        summary.UntrackedCount,
			Duration:         (time.Duration(summary.Duration) * time.Millisecond).String(),
		},
		Results: make([]JSONResult, len(summary.Results)),
	}

	for i, result := range summary.Results {
		report.Results[i] = JSONResult{
			File:       result.File,
			Document:   result.Document,
			Name:       result.Name,
			Success:    result.Success,
			Evaluation: result.Evaluation,
			Errors:     convertIssues(result.Errors),
			Warnings:   convertIssues(result.Warnings),
		}
		if result.Evaluation != nil {
			report.Results[i].Metrics = result.Evaluation.Result.Breakdown.Metrics()
		}
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	return writeReport(f.outputFile, f.out, append(jsonBytes, '\n'))
}

// bandCounts lists every band, including those with no assessments
func bandCounts(summary *cli.Summary) map[string]int {
	counts := make(map[string]int, len(scoring.Bands()))
	for _, b := range scoring.Bands() {
		counts[b.String()] = summary.BandCounts[b]
	}
	return counts
}

func convertIssues(issues []types.ValidationError) []JSONValidationError {
	if len(issues) == 0 {
		return nil
	}
	out := make([]JSONValidationError, len(issues))
	for i, issue := range issues {
		out[i] = JSONValidationError{
			File:     issue.File,
			Document: issue.Document,
			Field:    issue.Field,
			Message:  issue.Message,
			Severity: issue.Severity,
			Source:   issue.Source,
		}
	}
	return out
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains summary statistics
type JSONSummary struct {
	ProjectRoot      string         `json:"project_root"`
	TotalFiles       int            `json:"total_files"`
	TotalAssessments int            `json:"total_assessments"`
	Scored           int            `json:"scored"`
	Failed           int            `json:"failed"`
	TotalErrors      int            `json:"total_errors"`
	TotalWarnings    int            `json:"total_warnings"`
	Bands            map[string]int `json:"bands"`
	Tracks           map[string]int `json:"tracks"`
	Tracked          int            `json:"tracked"`
	Untracked        int            `json:"untracked"`
	Duration         string         `json:"duration"`
}

// JSONResult represents a single assessment's result
type JSONResult struct {
	File       string                  `json:"file"`
	Document   int                     `json:"document"`
	Name       string                  `json:"name,omitempty"`
	Success    bool                    `json:"success"`
	Evaluation *scoring.Evaluation     `json:"evaluation,omitempty"`
	Metrics    []scoring.ScoringMetric `json:"metrics,omitempty"`
	Errors     []JSONValidationError   `json:"errors,omitempty"`
	Warnings   []JSONValidationError   `json:"warnings,omitempty"`
}

// JSONValidationError represents a validation error
type JSONValidationError struct {
	File     string `json:"file"`
	Document int    `json:"document"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Source   string `json:"source,omitempty"`
}
