package fhirmapper

import (
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/constvars"
	"glucolog-service/internal/pkg/fhir_dto"
	"glucolog-service/internal/pkg/formdata"
)

// BuildGlucoseObservation converts a glucose record into the Observation
// payload the integration engine expects. The only hard gate is a missing
// glucose value; every secondary field is emitted as a component only when
// the source field is present.
func BuildGlucoseObservation(record *models.GlucoseRecord, patientID string) (*fhir_dto.Observation, error) {
	if record == nil || record.GlucoseValue == nil {
		return nil, &MissingPrimaryValueError{ResourceType: constvars.ResourceObservation}
	}

	resourceID := GenerateResourceID(constvars.FormTypeGlucose, patientID)
	observation := &fhir_dto.Observation{
		ResourceType: constvars.ResourceObservation,
		ID:           resourceID,
		Identifier: []fhir_dto.Identifier{
			{System: IdentifierSystem, Value: resourceID},
		},
		Status: constvars.FhirObservationStatusFinal,
		Category: []fhir_dto.CodeableConcept{
			{
				Coding: []fhir_dto.Coding{
					{
						System:  constvars.FhirSystemObservationCategory,
						Code:    constvars.FhirCategoryVitalSigns,
						Display: constvars.FhirCategoryVitalSignsDisplay,
					},
				},
			},
		},
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  constvars.FhirSystemLOINC,
					Code:    constvars.FhirGlucoseCode,
					Display: constvars.FhirGlucoseDisplay,
				},
			},
			Text: constvars.FhirGlucoseDisplay,
		},
		Subject: fhir_dto.Reference{
			Reference: constvars.ResourcePatient + "/" + patientID,
			Type:      constvars.ResourcePatient,
		},
		EffectiveDateTime: ResolveEffectiveTime(record.MeasurementDate, record.MeasurementTime, record.CreatedAt),
		ValueQuantity: &fhir_dto.Quantity{
			Value:  *record.GlucoseValue,
			Unit:   constvars.FhirGlucoseUnit,
			System: constvars.FhirSystemUCUM,
			Code:   constvars.FhirGlucoseUnitCode,
		},
	}

	if record.Notes != "" {
		observation.Note = []fhir_dto.Annotation{{Text: record.Notes}}
	}

	observation.Component = buildGlucoseComponents(record)
	return observation, nil
}

func buildGlucoseComponents(record *models.GlucoseRecord) []fhir_dto.ObservationComponent {
	var components []fhir_dto.ObservationComponent

	if record.MealState != "" {
		components = append(components, fhir_dto.ObservationComponent{
			Code:        fhir_dto.CodeableConcept{Text: constvars.FhirComponentDietRegime},
			ValueString: record.MealState,
		})
	}
	if record.MealCalories != nil {
		components = append(components, quantityComponent(
			constvars.FhirComponentMealCalories, *record.MealCalories,
			constvars.FhirCaloriesUnit, constvars.FhirCaloriesUnitCode,
		))
	}
	if duration := formdata.NormalizeDuration(record.TimeSinceMeal); duration != nil {
		components = append(components, quantityComponent(
			constvars.FhirComponentTimeSinceMeal, duration.ValueMinutes,
			constvars.FhirMinutesUnit, constvars.FhirMinutesUnitCode,
		))
	}
	if duration := formdata.NormalizeDuration(record.ExerciseDuration); duration != nil {
		components = append(components, quantityComponent(
			constvars.FhirComponentExerciseDuration, duration.ValueMinutes,
			constvars.FhirMinutesUnit, constvars.FhirMinutesUnitCode,
		))
	}
	if record.ExerciseCalories != nil {
		components = append(components, quantityComponent(
			constvars.FhirComponentExerciseCalories, *record.ExerciseCalories,
			constvars.FhirCaloriesUnit, constvars.FhirCaloriesUnitCode,
		))
	}
	if record.Weight != nil {
		components = append(components, fhir_dto.ObservationComponent{
			Code: fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{
					{
						System:  constvars.FhirSystemLOINC,
						Code:    constvars.FhirBodyWeightCode,
						Display: constvars.FhirComponentBodyWeight,
					},
				},
				Text: constvars.FhirComponentBodyWeight,
			},
			ValueQuantity: &fhir_dto.Quantity{
				Value:  *record.Weight,
				Unit:   constvars.FhirKilogramUnit,
				System: constvars.FhirSystemUCUM,
				Code:   constvars.FhirKilogramUnitCode,
			},
		})
	}

	return components
}

func quantityComponent(text string, value float64, unit, unitCode string) fhir_dto.ObservationComponent {
	return fhir_dto.ObservationComponent{
		Code: fhir_dto.CodeableConcept{Text: text},
		ValueQuantity: &fhir_dto.Quantity{
			Value:  value,
			Unit:   unit,
			System: constvars.FhirSystemUCUM,
			Code:   unitCode,
		},
	}
}
