package contracts

import (
	"context"
	"glucolog-service/internal/pkg/dto/requests"
	"glucolog-service/internal/pkg/dto/responses"
)

// FhirClient is the transport boundary to the external integration engine.
// The payload is opaque to it; conversion and validation happen upstream.
type FhirClient interface {
	SendResource(ctx context.Context, resourceType string, resource interface{}) error
	Ping(ctx context.Context) error
}

type FhirUsecase interface {
	SendMeasurement(ctx context.Context, patientID, measurementID string) (*responses.SendResult, error)
	SendMeasurements(ctx context.Context, request *requests.BulkSendMeasurements) (*responses.BulkSendResult, error)
	CheckConnection(ctx context.Context) (*responses.FHIRStatus, error)
}
