package constvars

// Form type tags stored alongside each raw submission.
const (
	FormTypeGlucose      = "glucose"
	FormTypeInsulin      = "insulin"
	FormTypeRegistration = "registration"
)

// Path keys of the glucose measurement form. The form renderer flattens the
// nested UI layout into these dotted/indexed keys at submission time; any
// change to the form layout requires updating this table.
const (
	GlucosePathNotes            = "items.0.0.items.0.value.value"
	GlucosePathDate             = "items.0.0.items.1.value.date"
	GlucosePathTime             = "items.0.0.items.1.value.time"
	GlucosePathValue            = "items.0.0.items.2.items.0.value.value"
	GlucosePathUnit             = "items.0.0.items.2.items.0.value.unit"
	GlucosePathMealState        = "items.0.0.items.3.items.0.value"
	GlucosePathMealCalories     = "items.0.0.items.4.items.0.value.value"
	GlucosePathTimeSinceMeal    = "items.0.0.items.5.items.0.value"
	GlucosePathExerciseDuration = "items.0.0.items.6.items.0.value"
	GlucosePathExerciseCalories = "items.0.0.items.7.items.0.value.value"
	GlucosePathWeight           = "items.0.0.items.8.items.0.value.value"
)

// Path keys of the insulin administration form.
const (
	InsulinPathNotes = "items.0.0.items.0.value.value"
	InsulinPathDate  = "items.0.0.items.1.value.date"
	InsulinPathTime  = "items.0.0.items.1.value.time"
	InsulinPathValue = "items.0.0.items.2.items.0.value.value"
	InsulinPathRoute = "items.0.0.items.3.items.0.value"
)

// Path keys of the user registration form.
const (
	RegistrationPathName       = "items.0.0.items.0.value.value"
	RegistrationPathUserID     = "items.0.0.items.1.value.value"
	RegistrationPathStreet     = "items.0.0.items.2.items.0.value.value"
	RegistrationPathCity       = "items.0.0.items.2.items.1.value.value"
	RegistrationPathDistrict   = "items.0.0.items.2.items.2.value.value"
	RegistrationPathPostalCode = "items.0.0.items.2.items.3.value.value"
	RegistrationPathCountry    = "items.0.0.items.2.items.4.value.value"
	RegistrationPathContacts   = "items.0.0.items.3.items"
	RegistrationPathGender     = "items.0.0.items.4.items.0.value"
	RegistrationPathHeight     = "items.0.0.items.5.items.0.value.value"
	RegistrationPathWeight     = "items.0.0.items.6.items.0.value.value"
	RegistrationPathBirthDate  = "items.0.0.items.7.value.date"
)

// Duration unit labels as emitted by the form renderer.
const (
	DurationUnitHours   = "Hora(s)"
	DurationUnitMinutes = "Minuto(s)"
	DurationUnitSeconds = "Segundo(s)"
)

const (
	FormDateLayout = "2006-01-02"
	FormTimeLayout = "15:04"
)
