package responses

import "glucolog-service/internal/app/models"

// MeasurementRecord is the extracted view of a stored submission; exactly
// one of Glucose/Insulin is set, matching FormType.
type MeasurementRecord struct {
	MeasurementID string                `json:"measurement_id"`
	FormType      string                `json:"form_type"`
	Glucose       *models.GlucoseRecord `json:"glucose,omitempty"`
	Insulin       *models.InsulinRecord `json:"insulin,omitempty"`
}

type SendResult struct {
	MeasurementID string `json:"measurement_id"`
	ResourceType  string `json:"resource_type"`
	ResourceID    string `json:"resource_id"`
}

type BulkSendFailure struct {
	MeasurementID string `json:"measurement_id"`
	Message       string `json:"message"`
}

// BulkSendResult reports a bulk send per record; partial success is the
// expected outcome, never all-or-nothing.
type BulkSendResult struct {
	Processed int               `json:"processed"`
	Errors    int               `json:"errors"`
	Sent      []SendResult      `json:"sent,omitempty"`
	Failures  []BulkSendFailure `json:"failures,omitempty"`
}
