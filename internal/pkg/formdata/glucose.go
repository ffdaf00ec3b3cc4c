package formdata

import (
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/constvars"
)

// ExtractGlucoseInfo decodes a glucose form submission into a typed record.
// Missing fields become nil/empty, never zero; the only failure is a
// structurally unparseable submission.
func (e *Extractor) ExtractGlucoseInfo(input interface{}) (*models.GlucoseRecord, error) {
	submission, err := ParseSubmission(input)
	if err != nil {
		return nil, err
	}

	return &models.GlucoseRecord{
		Notes:            e.RichText(submission.Value(constvars.GlucosePathNotes)),
		MeasurementDate:  submission.StringAt(constvars.GlucosePathDate),
		MeasurementTime:  submission.StringAt(constvars.GlucosePathTime),
		GlucoseValue:     toNumber(submission.Value(constvars.GlucosePathValue)),
		GlucoseUnit:      submission.StringAt(constvars.GlucosePathUnit),
		MealState:        submission.CodedTextAt(constvars.GlucosePathMealState),
		MealCalories:     toNumber(submission.Value(constvars.GlucosePathMealCalories)),
		TimeSinceMeal:    submission.DurationAt(constvars.GlucosePathTimeSinceMeal),
		ExerciseDuration: submission.DurationAt(constvars.GlucosePathExerciseDuration),
		ExerciseCalories: toNumber(submission.Value(constvars.GlucosePathExerciseCalories)),
		Weight:           toNumber(submission.Value(constvars.GlucosePathWeight)),
	}, nil
}
