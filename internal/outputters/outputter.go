package outputters

import (
	"fmt"
	"time"

	"github.com/dotcommander/ccfscore/internal/cli"
	"github.com/dotcommander/ccfscore/internal/config"
	"github.com/dotcommander/ccfscore/internal/output"
	"github.com/dotcommander/ccfscore/internal/types"
)

// Formatter renders a batch summary
type Formatter interface {
	Format(summary *cli.Summary) error
}

// FormatterFactory creates formatters by format name
type FormatterFactory interface {
	CreateFormatter(format string) (Formatter, error)
}

// DefaultFormatterFactory builds the output package formatters from config
type DefaultFormatterFactory struct {
	cfg *config.Config
}

// NewDefaultFormatterFactory creates a DefaultFormatterFactory
func NewDefaultFormatterFactory(cfg *config.Config) *DefaultFormatterFactory {
	return &DefaultFormatterFactory{cfg: cfg}
}

// CreateFormatter returns the formatter for format
func (f *DefaultFormatterFactory) CreateFormatter(format string) (Formatter, error) {
	switch format {
	case types.FormatConsole:
		return output.NewConsoleFormatter(f.cfg.Quiet, f.cfg.Verbose, f.cfg.ShowBreakdown), nil
	case types.FormatJSON:
		return output.NewJSONFormatter(true, f.cfg.Output), nil
	case types.FormatMarkdown:
		return output.NewMarkdownFormatter(f.cfg.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
}

// NewOutputter creates an Outputter using the default formatters
func NewOutputter(cfg *config.Config) *Outputter {
	return NewOutputterWithFactory(cfg, NewDefaultFormatterFactory(cfg))
}

// NewOutputterWithFactory creates an Outputter with a custom formatter factory
func NewOutputterWithFactory(cfg *config.Config, factory FormatterFactory) *Outputter {
	return &Outputter{
		config:  cfg,
		factory: factory,
	}
}

// Format formats the summary using the given format
func (o *Outputter) Format(summary *cli.Summary, format string) error {
	if summary.StartTime.IsZero() {
		summary.StartTime = time.Now()
	}
	if summary.ProjectRoot == "" {
		summary.ProjectRoot = o.config.Root
	}

	formatter, err := o.factory.CreateFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(summary)
}
