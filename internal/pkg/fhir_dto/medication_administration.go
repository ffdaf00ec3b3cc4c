package fhir_dto

type MedicationAdministration struct {
	ResourceType              string          `json:"resourceType"`
	ID                        string          `json:"id,omitempty"`
	Identifier                []Identifier    `json:"identifier,omitempty"`
	Status                    string          `json:"status"`
	MedicationCodeableConcept CodeableConcept `json:"medicationCodeableConcept"`
	Subject                   Reference       `json:"subject"`
	EffectiveDateTime         string          `json:"effectiveDateTime,omitempty"`
	Note                      []Annotation    `json:"note,omitempty"`
	Dosage                    *Dosage         `json:"dosage,omitempty"`
}

type Dosage struct {
	Text  string           `json:"text,omitempty"`
	Route *CodeableConcept `json:"route,omitempty"`
	Dose  *Quantity        `json:"dose,omitempty"`
}
