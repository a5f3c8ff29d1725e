// Package assessment decodes assessment documents into scoring records.
//
// Documents are YAML; JSON is accepted as a YAML subset. A file may hold
// several documents separated by "---", each describing one patient.
package assessment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/ccfscore/internal/scoring"
)

// Document keys
const (
	FieldName               = "name"
	FieldAge                = "age"
	FieldDiagnosis          = "diagnosis"
	FieldHospitalizations   = "hospitalizations"
	FieldFrailty            = "frailty"
	FieldSarcopenia         = "sarcopenia"
	FieldFalls              = "falls"
	FieldCommunityActive    = "community_active"
	FieldDailyPhysiotherapy = "daily_physiotherapy"
	FieldCareBond           = "care_bond"
	FieldMobilityIndex      = "mobility_index"
	FieldGaitSpeed          = "gait_speed"
	FieldSitToStand         = "sit_to_stand"
	FieldBalance            = "balance"
)

// RequiredFields lists the keys every document must supply.
// The engine never fills in defaults, so a missing key is an error.
var RequiredFields = []string{
	FieldDiagnosis,
	FieldHospitalizations,
	FieldFrailty,
	FieldSarcopenia,
	FieldFalls,
	FieldCommunityActive,
	FieldDailyPhysiotherapy,
	FieldCareBond,
	FieldMobilityIndex,
	FieldGaitSpeed,
	FieldSitToStand,
	FieldBalance,
}

// FieldError is a problem with a single key of a document
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Sentinel errors for field problems
var (
	ErrMissing    = errors.New("required field is missing")
	ErrWrongKind  = errors.New("value has the wrong type")
	ErrNotInteger = errors.New("value is not an integer")
)

// Document is one decoded assessment
type Document struct {
	Index        int                      // zero-based position in the file
	Data         map[string]any           // raw key/value data as read
	Canonical    map[string]any           // Data with recognized labels and numeric strings normalized, used for schema validation
	Record       scoring.AssessmentRecord // valid only when Err is nil
	Unrecognized []string                 // enumerated fields whose label is not recognized
	Err          error                    // field errors joined with errors.Join
}

// LoadFile reads and parses an assessment file
func LoadFile(path string) ([]Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	docs, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return docs, nil
}

// Parse decodes every document in content. A syntax error aborts the whole
// input; field errors are reported per document in Document.Err.
func Parse(content []byte) ([]Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))

	var docs []Document
	for index := 0; ; {
		var data map[string]any
		err := dec.Decode(&data)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", index, err)
		}
		// Empty documents (a leading or trailing "---") are skipped
		if len(data) == 0 {
			continue
		}
		docs = append(docs, decodeDocument(index, data))
		index++
	}

	return docs, nil
}

func decodeDocument(index int, data map[string]any) Document {
	doc := Document{Index: index, Data: data, Canonical: canonicalize(data)}
	d := &fieldDecoder{data: data}

	rec := scoring.AssessmentRecord{
		Name:               d.optionalString(FieldName),
		Age:                d.optionalInt(FieldAge),
		Diagnosis:          resolve(diagnosisAliases, d.label(FieldDiagnosis)),
		Hospitalizations:   resolve(hospitalizationAliases, d.label(FieldHospitalizations)),
		Frailty:            resolve(frailtyAliases, d.label(FieldFrailty)),
		Sarcopenia:         resolve(sarcopeniaAliases, d.label(FieldSarcopenia)),
		Falls:              resolve(fallsAliases, d.label(FieldFalls)),
		CommunityActive:    d.boolean(FieldCommunityActive),
		DailyPhysiotherapy: d.boolean(FieldDailyPhysiotherapy),
		CareBond:           resolve(careBondAliases, d.label(FieldCareBond)),
		MobilityIndex:      d.requiredInt(FieldMobilityIndex),
		GaitSpeed:          resolve(gaitSpeedAliases, d.label(FieldGaitSpeed)),
		SitToStand:         resolve(sitToStandAliases, d.label(FieldSitToStand)),
		BalanceScore:       d.requiredInt(FieldBalance),
	}

	doc.Record = rec
	doc.Unrecognized = d.unrecognized
	doc.Err = errors.Join(d.errs...)
	return doc
}

// fieldDecoder reads typed values out of a raw document, collecting errors
type fieldDecoder struct {
	data         map[string]any
	errs         []error
	unrecognized []string
}

func (d *fieldDecoder) fail(field string, err error) {
	d.errs = append(d.errs, &FieldError{Field: field, Err: err})
}

func (d *fieldDecoder) optionalString(field string) string {
	v, ok := d.data[field]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprint(v)
	}
	return s
}

// label reads an enumerated value. Integers are accepted for count fields
// ("falls: 1"), and counts above one collapse to the "2 ou mais" label.
func (d *fieldDecoder) label(field string) string {
	v, ok := d.data[field]
	if !ok || v == nil {
		d.fail(field, ErrMissing)
		return ""
	}

	var label string
	switch val := v.(type) {
	case string:
		label = val
	case int:
		label = countLabel(val)
	default:
		d.fail(field, fmt.Errorf("%w: got %T, want string", ErrWrongKind, v))
		return ""
	}

	if !Known(field, label) {
		d.unrecognized = append(d.unrecognized, field)
	}
	return label
}

// canonicalize copies data, replacing every recognized enumerated label with
// its canonical code, yes/no labels with booleans and numeric strings in
// integer fields with integers. Unrecognized values are left as they are.
func canonicalize(data map[string]any) map[string]any {
	out := maps.Clone(data)
	for field, v := range data {
		switch field {
		case FieldAge, FieldMobilityIndex, FieldBalance:
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				if n, err := toInt(s); err == nil {
					out[field] = n
				}
			}
			continue
		}

		var label string
		switch val := v.(type) {
		case string:
			label = val
		case int:
			label = countLabel(val)
		default:
			continue
		}
		code, ok := canonicalLabel(field, label)
		if !ok {
			continue
		}
		if field == FieldCommunityActive || field == FieldDailyPhysiotherapy {
			out[field] = code == "true"
			continue
		}
		out[field] = code
	}
	return out
}

func countLabel(n int) string {
	if n >= 2 {
		return "2 ou mais"
	}
	return strconv.Itoa(n)
}

func (d *fieldDecoder) boolean(field string) bool {
	v, ok := d.data[field]
	if !ok || v == nil {
		d.fail(field, ErrMissing)
		return false
	}

	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, known := boolAliases[normalize(val)]
		if !known {
			d.fail(field, fmt.Errorf("%w: %q is not a yes/no value", ErrWrongKind, val))
		}
		return b
	default:
		d.fail(field, fmt.Errorf("%w: got %T, want boolean", ErrWrongKind, v))
		return false
	}
}

func (d *fieldDecoder) requiredInt(field string) int {
	v, ok := d.data[field]
	if !ok || v == nil {
		d.fail(field, ErrMissing)
		return 0
	}
	n, err := toInt(v)
	if err != nil {
		d.fail(field, err)
		return 0
	}
	return n
}

// optionalInt returns nil for a missing, null or blank value
func (d *fieldDecoder) optionalInt(field string) *int {
	v, ok := d.data[field]
	if !ok || v == nil {
		return nil
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := toInt(v)
	if err != nil {
		d.fail(field, err)
		return nil
	}
	return &n
}

func toInt(v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		if val < math.MinInt || val > math.MaxInt {
			return 0, fmt.Errorf("%w: %d is out of range", ErrNotInteger, val)
		}
		return int(val), nil
	case uint64:
		if val > math.MaxInt {
			return 0, fmt.Errorf("%w: %d is out of range", ErrNotInteger, val)
		}
		return int(val), nil
	case float64:
		if math.IsNaN(val) || val != math.Trunc(val) {
			return 0, fmt.Errorf("%w: %v", ErrNotInteger, val)
		}
		// float64(math.MaxInt) rounds up to 2^63, so compare against -MinInt
		if val < math.MinInt || val >= -math.MinInt {
			return 0, fmt.Errorf("%w: %v is out of range", ErrNotInteger, val)
		}
		return int(val), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, val)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: got %T, want integer", ErrWrongKind, v)
	}
}
