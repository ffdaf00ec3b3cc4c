package formdata

import (
	"fmt"
	"glucolog-service/internal/app/models"
	"strconv"

	"github.com/goccy/go-json"
)

// Submission is a raw form submission: a flat mapping from the dotted/indexed
// path keys the form renderer emits to JSON-shaped leaf values. The key
// vocabulary is fixed per form type (constvars/forms.go); the decoder does
// direct lookups against it, never generic tree traversal.
type Submission map[string]interface{}

// ParseSubmission accepts a submission either as the stored map or as its
// serialized string form. It fails only when the input is structurally
// unparseable; absent paths inside a parsed submission are never an error.
func ParseSubmission(input interface{}) (Submission, error) {
	switch v := input.(type) {
	case Submission:
		return v, nil
	case map[string]interface{}:
		return Submission(v), nil
	case string:
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return nil, fmt.Errorf("submission is not valid JSON: %w", err)
		}
		return Submission(decoded), nil
	case []byte:
		var decoded map[string]interface{}
		if err := json.Unmarshal(v, &decoded); err != nil {
			return nil, fmt.Errorf("submission is not valid JSON: %w", err)
		}
		return Submission(decoded), nil
	case nil:
		return nil, fmt.Errorf("submission is empty")
	default:
		return nil, fmt.Errorf("unsupported submission type %T", input)
	}
}

// Value returns the raw value at path, nil when the path is absent.
func (s Submission) Value(path string) interface{} {
	value, ok := s[path]
	if !ok {
		return nil
	}
	return value
}

// StringAt returns the value at path when it is string-shaped, else "".
func (s Submission) StringAt(path string) string {
	return toStringValue(s.Value(path))
}

// CodedTextAt unwraps a {code, text} pair at path and returns its text.
func (s Submission) CodedTextAt(path string) string {
	coded, ok := s.Value(path).(map[string]interface{})
	if !ok {
		return ""
	}
	text, _ := coded["text"].(string)
	return text
}

// FirstCodedCodeAt unwraps a coded multi-select at path and returns the
// code of its first element.
func (s Submission) FirstCodedCodeAt(path string) string {
	list, ok := s.Value(path).([]interface{})
	if !ok || len(list) == 0 {
		return ""
	}
	coded, ok := list[0].(map[string]interface{})
	if !ok {
		return ""
	}
	code, _ := coded["code"].(string)
	return code
}

// DurationAt unwraps an array of {unit, value} entries at path. Entries
// that are not map-shaped are skipped; numeric values are kept as their
// string form so normalization sees exactly what the form submitted.
func (s Submission) DurationAt(path string) []models.DurationEntry {
	list, ok := s.Value(path).([]interface{})
	if !ok {
		return nil
	}
	entries := make([]models.DurationEntry, 0, len(list))
	for _, raw := range list {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		unit, _ := entry["unit"].(string)
		entries = append(entries, models.DurationEntry{
			Unit:  unit,
			Value: toStringValue(entry["value"]),
		})
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

// EntriesAt unwraps an array of object entries at path (contact lists).
func (s Submission) EntriesAt(path string) []map[string]interface{} {
	list, ok := s.Value(path).([]interface{})
	if !ok {
		return nil
	}
	entries := make([]map[string]interface{}, 0, len(list))
	for _, raw := range list {
		if entry, ok := raw.(map[string]interface{}); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// toNumber coerces a leaf value into a number. Coercion lives here in the
// extraction layer, not in the lookup helpers: a missing or non-numeric
// field becomes nil, never zero.
func toNumber(value interface{}) *float64 {
	switch v := value.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		return &f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func toStringValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
