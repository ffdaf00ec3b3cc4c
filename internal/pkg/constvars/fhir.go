package constvars

const (
	ResourceObservation              = "Observation"
	ResourceMedicationAdministration = "MedicationAdministration"
	ResourcePatient                  = "Patient"
)

const (
	FhirObservationStatusFinal                  = "final"
	FhirMedicationAdministrationStatusCompleted = "completed"
)

// Code systems expected by the integration engine. These URIs are part of
// the wire contract and must not change.
const (
	FhirSystemLOINC  = "http://loinc.org"
	FhirSystemRxNorm = "http://www.nlm.nih.gov/research/umls/rxnorm"
	FhirSystemSNOMED = "http://snomed.info/sct"
	FhirSystemUCUM   = "http://unitsofmeasure.org"

	FhirSystemObservationCategory = "http://terminology.hl7.org/CodeSystem/observation-category"
)

// Glucose observation coding.
const (
	FhirGlucoseCode     = "2339-0"
	FhirGlucoseDisplay  = "Glucose [Mass/volume] in Blood"
	FhirGlucoseUnit     = "mg/dL"
	FhirGlucoseUnitCode = "mg/dL"

	FhirCategoryVitalSigns        = "vital-signs"
	FhirCategoryVitalSignsDisplay = "Vital Signs"
)

// Insulin medication coding.
const (
	FhirInsulinCode     = "253182"
	FhirInsulinDisplay  = "Regular Insulin, Human"
	FhirInsulinDoseUnit = "U"
	FhirInsulinDoseCode = "[iU]"
)

// Administration route coding (SNOMED).
const (
	FhirRouteSubcutaneousCode     = "34206005"
	FhirRouteSubcutaneousDisplay  = "Subcutaneous route"
	FhirRouteIntravenousCode      = "47625008"
	FhirRouteIntravenousDisplay   = "Intravenous route"
	FhirRouteIntramuscularCode    = "78421000"
	FhirRouteIntramuscularDisplay = "Intramuscular route"
)

// Secondary component display texts for the glucose observation.
const (
	FhirComponentDietRegime       = "Diet regime"
	FhirComponentMealCalories     = "Meal calories"
	FhirComponentTimeSinceMeal    = "Time since last meal"
	FhirComponentExerciseDuration = "Exercise duration"
	FhirComponentExerciseCalories = "Exercise calories"
	FhirComponentBodyWeight       = "Body weight"
	FhirBodyWeightCode            = "29463-7"
	FhirCaloriesUnit              = "kcal"
	FhirCaloriesUnitCode          = "kcal"
	FhirMinutesUnit               = "min"
	FhirMinutesUnitCode           = "min"
	FhirKilogramUnit              = "kg"
	FhirKilogramUnitCode          = "kg"
)

// FhirEffectiveTimestampLayout is the timestamp layout the integration
// engine expects on effectiveDateTime / occurrence fields.
const FhirEffectiveTimestampLayout = "2006-01-02T15:04:05.000Z07:00"
