package fhirmapper

import (
	"fmt"
	"glucolog-service/internal/pkg/constvars"
	"glucolog-service/internal/pkg/fhir_dto"
)

// ValidateResource confirms a produced payload carries every field its
// resource-type contract requires. It runs before handoff to the transport
// client; an invalid payload must not be transmitted.
func ValidateResource(resource interface{}) error {
	switch r := resource.(type) {
	case *fhir_dto.Observation:
		if r.Status == "" {
			return &InvalidResourceError{ResourceType: constvars.ResourceObservation, Field: "status"}
		}
		if len(r.Code.Coding) == 0 && r.Code.Text == "" {
			return &InvalidResourceError{ResourceType: constvars.ResourceObservation, Field: "code"}
		}
		if r.Subject.Reference == "" {
			return &InvalidResourceError{ResourceType: constvars.ResourceObservation, Field: "subject"}
		}
		if r.ValueQuantity == nil {
			return &InvalidResourceError{ResourceType: constvars.ResourceObservation, Field: "valueQuantity"}
		}
		return nil
	case *fhir_dto.MedicationAdministration:
		if r.Status == "" {
			return &InvalidResourceError{ResourceType: constvars.ResourceMedicationAdministration, Field: "status"}
		}
		if len(r.MedicationCodeableConcept.Coding) == 0 && r.MedicationCodeableConcept.Text == "" {
			return &InvalidResourceError{ResourceType: constvars.ResourceMedicationAdministration, Field: "medication"}
		}
		if r.Subject.Reference == "" {
			return &InvalidResourceError{ResourceType: constvars.ResourceMedicationAdministration, Field: "subject"}
		}
		if r.EffectiveDateTime == "" {
			return &InvalidResourceError{ResourceType: constvars.ResourceMedicationAdministration, Field: "effectiveDateTime"}
		}
		return nil
	default:
		return fmt.Errorf("unsupported resource type %T", resource)
	}
}
