package contracts

import (
	"context"
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/dto/requests"
	"glucolog-service/internal/pkg/dto/responses"
)

type MeasurementRepository interface {
	CreateMeasurement(ctx context.Context, measurement *models.Measurement) (string, error)
	FindByIDAndPatientID(ctx context.Context, measurementID, patientID string) (*models.Measurement, error)
	FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.Measurement, int, error)
}

type MeasurementUsecase interface {
	CreateMeasurement(ctx context.Context, request *requests.CreateMeasurement) (string, error)
	FindMeasurements(ctx context.Context, request *requests.ListMeasurements) ([]models.Measurement, int, error)
	FindMeasurementRecord(ctx context.Context, patientID, measurementID string) (*responses.MeasurementRecord, error)
}
