package formdata

import (
	"glucolog-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubmission(t *testing.T) {
	t.Run("accepts a map", func(t *testing.T) {
		submission, err := ParseSubmission(map[string]interface{}{"a": "b"})
		require.NoError(t, err)
		assert.Equal(t, "b", submission.StringAt("a"))
	})

	t.Run("accepts serialized JSON", func(t *testing.T) {
		submission, err := ParseSubmission(`{"a":"b"}`)
		require.NoError(t, err)
		assert.Equal(t, "b", submission.StringAt("a"))

		submission, err = ParseSubmission([]byte(`{"a":1.5}`))
		require.NoError(t, err)
		assert.Equal(t, "1.5", submission.StringAt("a"))
	})

	t.Run("rejects unparseable input", func(t *testing.T) {
		_, err := ParseSubmission("{not json")
		assert.Error(t, err)

		_, err = ParseSubmission(nil)
		assert.Error(t, err)

		_, err = ParseSubmission(42)
		assert.Error(t, err)
	})
}

func TestSubmissionLookups(t *testing.T) {
	submission := Submission{
		"plain":  "text",
		"number": 120.0,
		"coded":  map[string]interface{}{"code": "after_meal", "text": "After a meal"},
		"multi": []interface{}{
			map[string]interface{}{"code": "female", "text": "Feminino"},
		},
		"duration": []interface{}{
			map[string]interface{}{"unit": "Hora(s)", "value": "1"},
			map[string]interface{}{"unit": "Minuto(s)", "value": 30.0},
		},
	}

	t.Run("absent paths never error", func(t *testing.T) {
		assert.Nil(t, submission.Value("missing"))
		assert.Equal(t, "", submission.StringAt("missing"))
		assert.Equal(t, "", submission.CodedTextAt("missing"))
		assert.Equal(t, "", submission.FirstCodedCodeAt("missing"))
		assert.Nil(t, submission.DurationAt("missing"))
	})

	t.Run("coded lookups unwrap code and text", func(t *testing.T) {
		assert.Equal(t, "After a meal", submission.CodedTextAt("coded"))
		assert.Equal(t, "female", submission.FirstCodedCodeAt("multi"))
	})

	t.Run("duration entries keep numeric values as strings", func(t *testing.T) {
		entries := submission.DurationAt("duration")
		require.Len(t, entries, 2)
		assert.Equal(t, "1", entries[0].Value)
		assert.Equal(t, "30", entries[1].Value)
		assert.Equal(t, "Minuto(s)", entries[1].Unit)
	})

	t.Run("mistyped values degrade to zero values", func(t *testing.T) {
		assert.Equal(t, "", submission.CodedTextAt("plain"))
		assert.Nil(t, submission.DurationAt("plain"))
	})
}

func TestToNumber(t *testing.T) {
	cases := []struct {
		name     string
		input    interface{}
		expected *float64
	}{
		{"float", 98.5, floatPtr(98.5)},
		{"int", 100, floatPtr(100)},
		{"numeric string", "120", floatPtr(120)},
		{"decimal string", "72.4", floatPtr(72.4)},
		{"non numeric string", "abc", nil},
		{"nil", nil, nil},
		{"map", map[string]interface{}{}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := toNumber(tc.input)
			if tc.expected == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, *tc.expected, *result)
		})
	}
}

func TestSubmissionGlucosePathVocabulary(t *testing.T) {
	// The decoder does direct lookups against the fixed path table; a
	// glucose submission keyed by those paths must round-trip through it.
	submission := Submission{
		constvars.GlucosePathValue: 120.0,
		constvars.GlucosePathUnit:  "mg/dL",
		constvars.GlucosePathDate:  "2024-03-15",
		constvars.GlucosePathTime:  "08:30",
	}

	assert.NotNil(t, submission.Value(constvars.GlucosePathValue))
	assert.Equal(t, "mg/dL", submission.StringAt(constvars.GlucosePathUnit))
	assert.Equal(t, "2024-03-15", submission.StringAt(constvars.GlucosePathDate))
	assert.Equal(t, "08:30", submission.StringAt(constvars.GlucosePathTime))
}

func floatPtr(f float64) *float64 {
	return &f
}
