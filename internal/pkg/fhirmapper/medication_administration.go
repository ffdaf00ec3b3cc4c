package fhirmapper

import (
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/constvars"
	"glucolog-service/internal/pkg/fhir_dto"
	"strings"
)

// BuildInsulinAdministration converts an insulin record into the
// MedicationAdministration payload the integration engine expects.
func BuildInsulinAdministration(record *models.InsulinRecord, patientID string) (*fhir_dto.MedicationAdministration, error) {
	if record == nil || record.InsulinValue == nil {
		return nil, &MissingPrimaryValueError{ResourceType: constvars.ResourceMedicationAdministration}
	}

	resourceID := GenerateResourceID(constvars.FormTypeInsulin, patientID)
	administration := &fhir_dto.MedicationAdministration{
		ResourceType: constvars.ResourceMedicationAdministration,
		ID:           resourceID,
		Identifier: []fhir_dto.Identifier{
			{System: IdentifierSystem, Value: resourceID},
		},
		Status: constvars.FhirMedicationAdministrationStatusCompleted,
		MedicationCodeableConcept: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  constvars.FhirSystemRxNorm,
					Code:    constvars.FhirInsulinCode,
					Display: constvars.FhirInsulinDisplay,
				},
			},
			Text: constvars.FhirInsulinDisplay,
		},
		Subject: fhir_dto.Reference{
			Reference: constvars.ResourcePatient + "/" + patientID,
			Type:      constvars.ResourcePatient,
		},
		EffectiveDateTime: ResolveEffectiveTime(record.MeasurementDate, record.MeasurementTime, record.CreatedAt),
		Dosage: &fhir_dto.Dosage{
			Text:  record.Route,
			Route: routeCodeableConcept(record.Route),
			Dose: &fhir_dto.Quantity{
				Value:  *record.InsulinValue,
				Unit:   constvars.FhirInsulinDoseUnit,
				System: constvars.FhirSystemUCUM,
				Code:   constvars.FhirInsulinDoseCode,
			},
		},
	}

	if record.Notes != "" {
		administration.Note = []fhir_dto.Annotation{{Text: record.Notes}}
	}

	return administration, nil
}

// routeCodeableConcept maps free-text route names to SNOMED codings. The
// match tolerates English and Portuguese labels; anything unrecognized
// falls back to the subcutaneous code — route is secondary metadata and
// must never fail a conversion.
func routeCodeableConcept(routeText string) *fhir_dto.CodeableConcept {
	normalized := strings.ToLower(strings.TrimSpace(routeText))

	code := constvars.FhirRouteSubcutaneousCode
	display := constvars.FhirRouteSubcutaneousDisplay
	switch {
	case strings.Contains(normalized, "intraven"):
		code = constvars.FhirRouteIntravenousCode
		display = constvars.FhirRouteIntravenousDisplay
	case strings.Contains(normalized, "intramus"):
		code = constvars.FhirRouteIntramuscularCode
		display = constvars.FhirRouteIntramuscularDisplay
	}

	return &fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{
			{
				System:  constvars.FhirSystemSNOMED,
				Code:    code,
				Display: display,
			},
		},
		Text: display,
	}
}
