// Package cli runs batches of assessments through decoding, schema
// validation and the scoring engine, and summarizes the outcome.
package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dotcommander/ccfscore/internal/assessment"
	"github.com/dotcommander/ccfscore/internal/cue"
	"github.com/dotcommander/ccfscore/internal/discovery"
	"github.com/dotcommander/ccfscore/internal/scoring"
	"github.com/dotcommander/ccfscore/internal/types"
)

// AssessmentResult is the outcome for one document of one file
type AssessmentResult struct {
	File       string
	Document   int
	Name       string
	Evaluation *scoring.Evaluation // nil when the document was not scored
	Errors     []types.ValidationError
	Warnings   []types.ValidationError
	Success    bool
}

// Scored reports whether the engine produced an evaluation
func (r AssessmentResult) Scored() bool {
	return r.Evaluation != nil
}

// Label names the assessment for display: its name, or file#document
func (r AssessmentResult) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("%s#%d", r.File, r.Document)
}

// Summary summarizes a batch run
type Summary struct {
	ProjectRoot      string
	StartTime        time.Time
	Duration         int64 // milliseconds
	TotalFiles       int
	TotalAssessments int
	ScoredCount      int
	FailedCount      int
	TotalErrors      int
	TotalWarnings    int
	BandCounts       map[scoring.Band]int
	TrackCounts      map[string]int // keyed by sub-tier
	TrackedCount     int
	UntrackedCount   int
	Results          []AssessmentResult
}

// Options controls how a batch is processed
type Options struct {
	// Strict refuses to score a document that fails schema validation
	Strict bool
	// ValidateOnly decodes and validates without scoring
	ValidateOnly bool
	// Validator checks raw documents against the assessment schema; nil skips it
	Validator *cue.Validator
	Logger    *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// NewSummary creates an initialized Summary
func NewSummary(root string, totalFiles int) *Summary {
	return &Summary{
		ProjectRoot: root,
		StartTime:   time.Now(),
		TotalFiles:  totalFiles,
		BandCounts:  make(map[scoring.Band]int),
		TrackCounts: make(map[string]int),
	}
}

// ResolveFiles returns the explicit files in args, or discovers assessment
// files under root when args is empty.
func ResolveFiles(root string, exclude []string, args []string) ([]discovery.File, error) {
	if len(args) == 0 {
		files, err := discovery.NewFileDiscovery(root, exclude).DiscoverFiles()
		if err != nil {
			return nil, fmt.Errorf("error discovering files: %w", err)
		}
		return files, nil
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root %q: %w", root, err)
	}

	files := make([]discovery.File, 0, len(args))
	for _, arg := range args {
		absPath, err := discovery.ValidateFilePath(arg)
		if err != nil {
			return nil, err
		}
		rel := absPath
		if r, err := filepath.Rel(absRoot, absPath); err == nil && !strings.HasPrefix(r, "..") {
			rel = filepath.ToSlash(r)
		}
		files = append(files, discovery.File{Path: absPath, RelPath: rel})
	}
	return files, nil
}

// ScoreFiles processes files in order. A file that cannot be read or parsed
// yields a single failed result and the batch continues.
func ScoreFiles(root string, files []discovery.File, opts Options) *Summary {
	summary := NewSummary(root, len(files))
	log := opts.logger()

	for _, file := range files {
		for _, result := range scoreFile(file, opts, log) {
			summary.add(result)
		}
	}

	summary.Duration = time.Since(summary.StartTime).Milliseconds()
	log.Info("batch complete",
		zap.Int("files", summary.TotalFiles),
		zap.Int("assessments", summary.TotalAssessments),
		zap.Int("scored", summary.ScoredCount),
		zap.Int("failed", summary.FailedCount))
	return summary
}

func (s *Summary) add(result AssessmentResult) {
	s.TotalAssessments++
	s.TotalErrors += len(result.Errors)
	s.TotalWarnings += len(result.Warnings)
	if !result.Success {
		s.FailedCount++
	}
	if ev := result.Evaluation; ev != nil {
		s.ScoredCount++
		s.BandCounts[ev.Classification.Band]++
		if ev.Track != nil {
			s.TrackedCount++
			s.TrackCounts[ev.Track.SubTier]++
		} else {
			s.UntrackedCount++
		}
	}
	s.Results = append(s.Results, result)
}

func scoreFile(file discovery.File, opts Options, log *zap.Logger) []AssessmentResult {
	docs, err := assessment.LoadFile(file.Path)
	if err != nil {
		log.Warn("could not load assessment file", zap.String("file", file.RelPath), zap.Error(err))
		return []AssessmentResult{{
			File: file.RelPath,
			Errors: []types.ValidationError{{
				File:     file.RelPath,
				Message:  err.Error(),
				Severity: types.SeverityError,
				Source:   types.SourceDecoder,
			}},
		}}
	}
	if len(docs) == 0 {
		log.Warn("assessment file holds no documents", zap.String("file", file.RelPath))
	}

	results := make([]AssessmentResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, scoreDocument(file.RelPath, doc, opts, log))
	}
	return results
}

func scoreDocument(file string, doc assessment.Document, opts Options, log *zap.Logger) AssessmentResult {
	result := AssessmentResult{
		File:     file,
		Document: doc.Index,
		Name:     doc.Record.Name,
	}

	if doc.Err != nil {
		result.Errors = append(result.Errors, decoderIssues(file, doc)...)
		log.Warn("assessment could not be decoded",
			zap.String("file", file), zap.Int("document", doc.Index), zap.Error(doc.Err))
		return result
	}

	if opts.Validator != nil {
		issues, err := opts.Validator.ValidateAssessment(doc.Canonical)
		if err != nil {
			result.Errors = append(result.Errors, types.ValidationError{
				File:     file,
				Document: doc.Index,
				Message:  fmt.Sprintf("Validation error: %v", err),
				Severity: types.SeverityError,
				Source:   types.SourceSchema,
			})
			return result
		}
		for _, issue := range issues {
			issue.File = file
			issue.Document = doc.Index
			if opts.Strict {
				result.Errors = append(result.Errors, issue)
				continue
			}
			issue.Severity = types.SeverityWarning
			result.Warnings = append(result.Warnings, issue)
		}
		if len(issues) > 0 {
			log.Warn("assessment failed schema validation",
				zap.String("file", file), zap.Int("document", doc.Index), zap.Int("issues", len(issues)))
		}
	} else {
		// Without a schema, unrecognized labels are the only hint of bad input
		for _, field := range doc.Unrecognized {
			result.Warnings = append(result.Warnings, types.ValidationError{
				File:     file,
				Document: doc.Index,
				Field:    field,
				Message:  fmt.Sprintf("unrecognized value for %s, scored as 0", field),
				Severity: types.SeverityWarning,
				Source:   types.SourceDecoder,
			})
		}
	}

	if len(result.Errors) > 0 || opts.ValidateOnly {
		result.Success = len(result.Errors) == 0
		return result
	}

	ev := scoring.Evaluate(doc.Record)
	result.Evaluation = &ev
	result.Success = true

	log.Debug("scored assessment",
		zap.String("file", file),
		zap.Int("document", doc.Index),
		zap.Int("total", ev.Result.Total),
		zap.Stringer("band", ev.Classification.Band))
	return result
}

// decoderIssues converts a document's joined field errors into validation issues
func decoderIssues(file string, doc assessment.Document) []types.ValidationError {
	errs := []error{doc.Err}
	if joined, ok := doc.Err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	issues := make([]types.ValidationError, 0, len(errs))
	for _, err := range errs {
		issue := types.ValidationError{
			File:     file,
			Document: doc.Index,
			Message:  err.Error(),
			Severity: types.SeverityError,
			Source:   types.SourceDecoder,
		}
		var fe *assessment.FieldError
		if errors.As(err, &fe) {
			issue.Field = fe.Field
		}
		issues = append(issues, issue)
	}
	return issues
}

// ParseFailOn converts a fail-on level to a band. "none" (or "") disables the threshold.
func ParseFailOn(level string) (scoring.Band, bool, error) {
	if level == "" || strings.EqualFold(level, "none") {
		return 0, false, nil
	}
	band, err := scoring.ParseBand(level)
	if err != nil || band == scoring.BandLow {
		return 0, false, fmt.Errorf("invalid fail-on level: %s", level)
	}
	return band, true, nil
}

// ExceedsThreshold reports whether any scored assessment is at or above band
func ExceedsThreshold(summary *Summary, band scoring.Band) bool {
	for _, r := range summary.Results {
		if r.Evaluation != nil && r.Evaluation.Classification.Band >= band {
			return true
		}
	}
	return false
}

// Ranked returns the scored results, highest total first. Ties keep file order.
func Ranked(summary *Summary) []AssessmentResult {
	var ranked []AssessmentResult
	for _, r := range summary.Results {
		if r.Scored() {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Evaluation.Result.Total > ranked[j].Evaluation.Result.Total
	})
	return ranked
}
