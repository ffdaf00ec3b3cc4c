package fhirmapper

import (
	"errors"
	"glucolog-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsulinAdministration(t *testing.T) {
	t.Run("missing dose aborts the conversion", func(t *testing.T) {
		_, err := BuildInsulinAdministration(&models.InsulinRecord{}, "12345")
		require.Error(t, err)

		var missing *MissingPrimaryValueError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "MedicationAdministration", missing.ResourceType)
	})

	t.Run("medication coding and dose", func(t *testing.T) {
		administration, err := BuildInsulinAdministration(&models.InsulinRecord{
			InsulinValue: floatPtr(12),
			Route:        "Subcutânea",
		}, "12345")
		require.NoError(t, err)

		assert.Equal(t, "MedicationAdministration", administration.ResourceType)
		assert.Equal(t, "completed", administration.Status)
		require.Len(t, administration.MedicationCodeableConcept.Coding, 1)
		coding := administration.MedicationCodeableConcept.Coding[0]
		assert.Equal(t, "http://www.nlm.nih.gov/research/umls/rxnorm", coding.System)
		assert.Equal(t, "253182", coding.Code)
		assert.Equal(t, "Regular Insulin, Human", coding.Display)
		assert.Equal(t, "Patient/12345", administration.Subject.Reference)

		require.NotNil(t, administration.Dosage)
		require.NotNil(t, administration.Dosage.Dose)
		assert.Equal(t, 12.0, administration.Dosage.Dose.Value)
		assert.Equal(t, "U", administration.Dosage.Dose.Unit)
		assert.Equal(t, "[iU]", administration.Dosage.Dose.Code)
		assert.Equal(t, "Subcutânea", administration.Dosage.Text)
	})

	t.Run("produced payload passes validation", func(t *testing.T) {
		administration, err := BuildInsulinAdministration(&models.InsulinRecord{
			InsulinValue: floatPtr(8),
		}, "12345")
		require.NoError(t, err)
		assert.NoError(t, ValidateResource(administration))
	})
}

func TestRouteCodeableConcept(t *testing.T) {
	cases := []struct {
		name     string
		route    string
		expected string
	}{
		{"portuguese subcutaneous", "Subcutânea", "34206005"},
		{"english subcutaneous", "subcutaneous", "34206005"},
		{"portuguese intravenous", "Intravenosa", "47625008"},
		{"english intravenous", "Intravenous", "47625008"},
		{"portuguese intramuscular", "Intramuscular", "78421000"},
		{"unknown falls back to subcutaneous", "Unknown Route", "34206005"},
		{"empty falls back to subcutaneous", "", "34206005"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			concept := routeCodeableConcept(tc.route)
			require.NotNil(t, concept)
			require.Len(t, concept.Coding, 1)
			assert.Equal(t, "http://snomed.info/sct", concept.Coding[0].System)
			assert.Equal(t, tc.expected, concept.Coding[0].Code)
		})
	}
}

func TestGenerateResourceID(t *testing.T) {
	first := GenerateResourceID("glucose", "12345")
	second := GenerateResourceID("glucose", "12345")

	assert.Contains(t, first, "glucose-12345-")
	assert.NotEqual(t, first, second)
}
