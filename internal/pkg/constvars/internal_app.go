package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "requestID"
)

const (
	MongoCollectionMeasurements = "measurements"
	MongoCollectionUsers        = "users"
)

const (
	RedisKeyFHIRStatus = "fhir:connectivity"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"
	AppDefaultPageSize     = 20
)
