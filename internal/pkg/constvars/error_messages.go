package constvars

// Client-facing messages.
const (
	ErrClientCannotProcessRequest          = "Cannot process your request, please check again your request"
	ErrClientSomethingWrongWithApplication = "Something wrong with the application, please contact our administrator"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
	ErrClientMeasurementNotFound           = "Record not found"
	ErrClientMeasurementNoValue            = "The record has no measured value and cannot be sent"
	ErrClientFHIRServerUnreachable         = "Cannot reach the integration server, verify the integration server is running"
	ErrClientFHIRServerTimeout             = "The integration server took too long to respond, please try again later"
	ErrClientRegistrationInvalid           = "Some registration fields are invalid, please review the highlighted fields"
	ErrClientUserNotFound                  = "User not found"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevInvalidInput               = "Invalid input"
	ErrDevCannotParseJSON            = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "Failed to marshal data into JSON"
	ErrDevServerProcess              = "Server failed to process the request"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded while processing request"
	ErrDevMissingRequestID           = "Request ID not found in request context"
	ErrDevURLParamIDValidationFailed = "URL parameter %s failed validation"

	ErrDevDBFailedToFindDocument     = "Database failed to find document"
	ErrDevDBFailedToInsertDocument   = "Database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "Database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "Database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "Database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "Provided string is not a valid ObjectID"

	ErrDevRedisGetData = "Redis failed to get data"
	ErrDevRedisSetData = "Redis failed to set data"

	ErrDevCreateHTTPRequest = "Failed to create HTTP request"
	ErrDevSendHTTPRequest   = "Failed to send HTTP request"

	ErrDevMeasurementNotFound     = "Measurement does not exist or is not owned by the requesting patient"
	ErrDevMeasurementUnparseable  = "Stored form submission is not parseable"
	ErrDevFHIRMissingPrimaryValue = "Conversion aborted: record has no primary clinical value"
	ErrDevFHIRInvalidResource     = "Produced resource failed structural validation: %s"
	ErrDevFHIRSendResource        = "Failed to send %s resource to the integration engine"
	ErrDevFHIRConnectionRefused   = "Connection to the integration engine was refused"
	ErrDevFHIRRequestTimedOut     = "Request to the integration engine timed out"

	ErrDevUserNotFound              = "User profile does not exist"
	ErrDevRegistrationInvalidFields = "Registration form contains invalid fields"
)
