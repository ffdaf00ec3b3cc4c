package fhirmapper

import (
	"errors"
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/fhir_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestBuildGlucoseObservation(t *testing.T) {
	t.Run("missing glucose value aborts the conversion", func(t *testing.T) {
		_, err := BuildGlucoseObservation(&models.GlucoseRecord{}, "12345")
		require.Error(t, err)

		var missing *MissingPrimaryValueError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "Observation", missing.ResourceType)
	})

	t.Run("zero glucose value is converted", func(t *testing.T) {
		observation, err := BuildGlucoseObservation(&models.GlucoseRecord{
			GlucoseValue: floatPtr(0),
		}, "12345")
		require.NoError(t, err)
		require.NotNil(t, observation.ValueQuantity)
		assert.Equal(t, 0.0, observation.ValueQuantity.Value)
	})

	t.Run("primary coding and subject", func(t *testing.T) {
		observation, err := BuildGlucoseObservation(&models.GlucoseRecord{
			GlucoseValue: floatPtr(120),
		}, "12345")
		require.NoError(t, err)

		assert.Equal(t, "Observation", observation.ResourceType)
		assert.Equal(t, "final", observation.Status)
		require.Len(t, observation.Code.Coding, 1)
		assert.Equal(t, "http://loinc.org", observation.Code.Coding[0].System)
		assert.Equal(t, "2339-0", observation.Code.Coding[0].Code)
		assert.Equal(t, "Glucose [Mass/volume] in Blood", observation.Code.Coding[0].Display)
		assert.Equal(t, "Patient/12345", observation.Subject.Reference)
		assert.Equal(t, "mg/dL", observation.ValueQuantity.Unit)
		require.Len(t, observation.Category, 1)
		assert.Equal(t, "vital-signs", observation.Category[0].Coding[0].Code)
		require.Len(t, observation.Identifier, 1)
		assert.Equal(t, IdentifierSystem, observation.Identifier[0].System)
		assert.Empty(t, observation.Component)
		assert.Empty(t, observation.Note)
	})

	t.Run("secondary fields become components only when present", func(t *testing.T) {
		observation, err := BuildGlucoseObservation(&models.GlucoseRecord{
			GlucoseValue: floatPtr(145),
			MealState:    "After a meal",
			MealCalories: floatPtr(650),
			TimeSinceMeal: []models.DurationEntry{
				{Unit: "Hora(s)", Value: "1"},
				{Unit: "Minuto(s)", Value: "30"},
			},
			ExerciseDuration: []models.DurationEntry{
				{Unit: "Minuto(s)", Value: ""},
			},
			Weight: floatPtr(82.5),
		}, "12345")
		require.NoError(t, err)

		// meal state, meal calories, time since meal, weight; the
		// all-empty exercise duration contributes nothing.
		require.Len(t, observation.Component, 4)

		assert.Equal(t, "Diet regime", observation.Component[0].Code.Text)
		assert.Equal(t, "After a meal", observation.Component[0].ValueString)

		assert.Equal(t, "Meal calories", observation.Component[1].Code.Text)
		require.NotNil(t, observation.Component[1].ValueQuantity)
		assert.Equal(t, 650.0, observation.Component[1].ValueQuantity.Value)
		assert.Equal(t, "kcal", observation.Component[1].ValueQuantity.Unit)

		assert.Equal(t, "Time since last meal", observation.Component[2].Code.Text)
		assert.Equal(t, 90.0, observation.Component[2].ValueQuantity.Value)
		assert.Equal(t, "min", observation.Component[2].ValueQuantity.Unit)

		weight := observation.Component[3]
		require.Len(t, weight.Code.Coding, 1)
		assert.Equal(t, "29463-7", weight.Code.Coding[0].Code)
		assert.Equal(t, 82.5, weight.ValueQuantity.Value)
		assert.Equal(t, "kg", weight.ValueQuantity.Unit)
	})

	t.Run("notes become an annotation", func(t *testing.T) {
		observation, err := BuildGlucoseObservation(&models.GlucoseRecord{
			GlucoseValue: floatPtr(98),
			Notes:        "fasting reading",
		}, "12345")
		require.NoError(t, err)
		require.Len(t, observation.Note, 1)
		assert.Equal(t, "fasting reading", observation.Note[0].Text)
	})

	t.Run("produced payload passes validation", func(t *testing.T) {
		observation, err := BuildGlucoseObservation(&models.GlucoseRecord{
			GlucoseValue: floatPtr(120),
		}, "12345")
		require.NoError(t, err)
		assert.NoError(t, ValidateResource(observation))
	})
}

func TestResolveEffectiveTime(t *testing.T) {
	createdAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("date and time", func(t *testing.T) {
		result := ResolveEffectiveTime("2024-03-15", "08:30", createdAt)
		assert.Equal(t, "2024-03-15T08:30:00.000Z", result)
	})

	t.Run("time with seconds", func(t *testing.T) {
		result := ResolveEffectiveTime("2024-03-15", "08:30:45", createdAt)
		assert.Equal(t, "2024-03-15T08:30:45.000Z", result)
	})

	t.Run("date only falls back to start of day", func(t *testing.T) {
		result := ResolveEffectiveTime("2024-03-15", "", createdAt)
		assert.Equal(t, "2024-03-15T00:00:00.000Z", result)
	})

	t.Run("malformed date falls back to record creation time", func(t *testing.T) {
		result := ResolveEffectiveTime("15/03/2024", "late", createdAt)
		assert.Equal(t, "2024-03-10T12:00:00.000Z", result)
	})

	t.Run("no usable source still yields a timestamp", func(t *testing.T) {
		result := ResolveEffectiveTime("", "", time.Time{})
		parsed, err := time.Parse("2006-01-02T15:04:05.000Z07:00", result)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
	})
}

func TestValidateResource(t *testing.T) {
	t.Run("observation without valueQuantity is invalid", func(t *testing.T) {
		err := ValidateResource(&fhir_dto.Observation{
			Status:  "final",
			Code:    fhir_dto.CodeableConcept{Text: "Glucose"},
			Subject: fhir_dto.Reference{Reference: "Patient/1"},
		})
		require.Error(t, err)

		var invalid *InvalidResourceError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "valueQuantity", invalid.Field)
	})

	t.Run("unsupported types are rejected", func(t *testing.T) {
		assert.Error(t, ValidateResource(struct{}{}))
	})
}
