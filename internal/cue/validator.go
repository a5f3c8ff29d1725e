package cue

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/dotcommander/ccfscore/internal/assessment"
	"github.com/dotcommander/ccfscore/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// SchemaAssessment is the name of the assessment document schema
const SchemaAssessment = "assessment"

// Validator handles CUE validation
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas compiles every CUE schema in the embedded filesystem
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".cue" {
			continue
		}

		// embed.FS paths always use forward slashes
		content, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return fmt.Errorf("could not read schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("could not compile schema %s: %w", entry.Name(), instErr)
		}

		// assessment.cue -> assessment
		schemaName := strings.TrimSuffix(entry.Name(), ".cue")
		v.schemas[schemaName] = inst
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas found")
	}

	return nil
}

// HasSchema reports whether a schema was loaded
func (v *Validator) HasSchema(name string) bool {
	_, ok := v.schemas[name]
	return ok
}

// ValidateAssessment validates a raw assessment document against the #Assessment definition
func (v *Validator) ValidateAssessment(data map[string]any) ([]types.ValidationError, error) {
	schema, ok := v.schemas[SchemaAssessment]
	if !ok {
		return nil, fmt.Errorf("schema %q not loaded", SchemaAssessment)
	}
	return v.validateAgainstSchema(schema, data, SchemaAssessment)
}

// validateAgainstSchema validates data against a CUE schema
func (v *Validator) validateAgainstSchema(schema cue.Value, data map[string]any, schemaType string) ([]types.ValidationError, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	// assessment -> #Assessment
	defPath := cue.ParsePath("#" + strings.ToUpper(schemaType[:1]) + schemaType[1:])
	def := schema.LookupPath(defPath)
	if !def.Exists() {
		return nil, fmt.Errorf("schema %s has no %s definition", schemaType, defPath)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrorsFromCUE(err), nil
	}

	// Concreteness catches required fields that are absent
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrorsFromCUE(err), nil
	}

	return nil, nil
}

// extractErrorsFromCUE turns a CUE error list into one ValidationError per field.
// A field whose value matched none of its alternatives is described by the
// values it accepts rather than by the raw disjunction error.
func extractErrorsFromCUE(err error) []types.ValidationError {
	byField := make(map[string]string)
	for _, e := range cueerrors.Errors(err) {
		field := fieldFromPath(e.Path())
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if allowed := assessment.AllowedValues(field); len(allowed) > 0 && isDisjunctionFailure(msg) {
			byField[field] = allowedMessage(field, allowed)
			continue
		}
		if _, seen := byField[field]; seen {
			continue
		}
		byField[field] = msg
	}

	fields := make([]string, 0, len(byField))
	for field := range byField {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	issues := make([]types.ValidationError, 0, len(fields))
	for _, field := range fields {
		issues = append(issues, types.ValidationError{
			Field:    field,
			Message:  describe(field, byField[field]),
			Severity: types.SeverityError,
			Source:   types.SourceSchema,
		})
	}
	return issues
}

func isDisjunctionFailure(msg string) bool {
	return strings.Contains(msg, "empty disjunction") || strings.Contains(msg, "conflicting values")
}

func allowedMessage(field string, allowed []string) string {
	msg := "must be one of " + strings.Join(allowed, ", ")
	if assessment.IsCountField(field) {
		msg += ", or a count of 0 or more"
	}
	return msg
}

// fieldFromPath returns the last non-definition path element
func fieldFromPath(p []string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if !strings.HasPrefix(p[i], "#") {
			return p[i]
		}
	}
	return ""
}

func describe(field, msg string) string {
	if field == "" {
		return "Schema validation failed: " + msg
	}
	return fmt.Sprintf("Schema validation failed for %s: %s", field, msg)
}
