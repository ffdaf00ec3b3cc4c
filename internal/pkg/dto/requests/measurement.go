package requests

type CreateMeasurement struct {
	PatientID  string                 `json:"patient_id" validate:"required,numeric_id"`
	FormType   string                 `json:"form_type" validate:"required,form_type"`
	Submission map[string]interface{} `json:"submission" validate:"required"`
}

type ListMeasurements struct {
	PatientID string `json:"patient_id" validate:"required,numeric_id"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
}

type SendMeasurement struct {
	PatientID string `json:"patient_id" validate:"required,numeric_id"`
}

type BulkSendMeasurements struct {
	PatientID      string   `json:"patient_id" validate:"required,numeric_id"`
	MeasurementIDs []string `json:"measurement_ids" validate:"required,min=1"`
}
