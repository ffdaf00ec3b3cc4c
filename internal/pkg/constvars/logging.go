package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingMeasurementIDKey = "measurement_id"
	LoggingFormPathKey      = "form_path"
	LoggingResourceTypeKey  = "resource_type"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
)
