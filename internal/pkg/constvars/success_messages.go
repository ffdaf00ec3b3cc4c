package constvars

const (
	SuccessCreateMeasurement   = "Successfully recorded measurement"
	SuccessGetMeasurements     = "Successfully retrieved measurements"
	SuccessGetMeasurement      = "Successfully retrieved measurement"
	SuccessSendMeasurement     = "Successfully sent measurement to the integration engine"
	SuccessBulkSendProcessed   = "Bulk send processed"
	SuccessFHIRServerReachable = "Integration server is reachable"
	SuccessRegisterUser        = "Successfully registered user"
	SuccessGetUser             = "Successfully retrieved user"
)
