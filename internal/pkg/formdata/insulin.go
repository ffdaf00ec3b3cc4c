package formdata

import (
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/constvars"
)

// ExtractInsulinInfo decodes an insulin administration form submission.
func (e *Extractor) ExtractInsulinInfo(input interface{}) (*models.InsulinRecord, error) {
	submission, err := ParseSubmission(input)
	if err != nil {
		return nil, err
	}

	return &models.InsulinRecord{
		Notes:           e.RichText(submission.Value(constvars.InsulinPathNotes)),
		MeasurementDate: submission.StringAt(constvars.InsulinPathDate),
		MeasurementTime: submission.StringAt(constvars.InsulinPathTime),
		InsulinValue:    toNumber(submission.Value(constvars.InsulinPathValue)),
		Route:           submission.CodedTextAt(constvars.InsulinPathRoute),
	}, nil
}
