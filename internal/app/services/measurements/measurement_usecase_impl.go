package measurements

import (
	"context"
	"glucolog-service/internal/app/contracts"
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/constvars"
	"glucolog-service/internal/pkg/dto/requests"
	"glucolog-service/internal/pkg/dto/responses"
	"glucolog-service/internal/pkg/exceptions"
	"glucolog-service/internal/pkg/formdata"
	"sync"
	"time"

	"go.uber.org/zap"
)

type measurementUsecase struct {
	MeasurementRepository contracts.MeasurementRepository
	Extractor             *formdata.Extractor
	Log                   *zap.Logger
}

var (
	measurementUsecaseInstance contracts.MeasurementUsecase
	onceMeasurementUsecase     sync.Once
)

func NewMeasurementUsecase(
	measurementRepository contracts.MeasurementRepository,
	extractor *formdata.Extractor,
	logger *zap.Logger,
) contracts.MeasurementUsecase {
	onceMeasurementUsecase.Do(func() {
		measurementUsecaseInstance = &measurementUsecase{
			MeasurementRepository: measurementRepository,
			Extractor:             extractor,
			Log:                   logger,
		}
	})
	return measurementUsecaseInstance
}

func (uc *measurementUsecase) CreateMeasurement(ctx context.Context, request *requests.CreateMeasurement) (string, error) {
	now := time.Now().UTC()
	measurement := &models.Measurement{
		PatientID:  request.PatientID,
		FormType:   request.FormType,
		Submission: request.Submission,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	measurementID, err := uc.MeasurementRepository.CreateMeasurement(ctx, measurement)
	if err != nil {
		return "", err
	}

	uc.Log.Info("measurementUsecase.CreateMeasurement stored submission",
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingMeasurementIDKey, measurementID),
		zap.String("form_type", request.FormType),
	)
	return measurementID, nil
}

func (uc *measurementUsecase) FindMeasurements(ctx context.Context, request *requests.ListMeasurements) ([]models.Measurement, int, error) {
	page := request.Page
	if page < 1 {
		page = 1
	}
	pageSize := request.PageSize
	if pageSize < 1 {
		pageSize = constvars.AppDefaultPageSize
	}

	return uc.MeasurementRepository.FindByPatientID(ctx, request.PatientID, page, pageSize)
}

func (uc *measurementUsecase) FindMeasurementRecord(ctx context.Context, patientID, measurementID string) (*responses.MeasurementRecord, error) {
	measurement, err := uc.MeasurementRepository.FindByIDAndPatientID(ctx, measurementID, patientID)
	if err != nil {
		return nil, err
	}
	if measurement == nil {
		return nil, exceptions.ErrMeasurementNotFound(nil)
	}

	record := &responses.MeasurementRecord{
		MeasurementID: measurement.ID.Hex(),
		FormType:      measurement.FormType,
	}

	switch measurement.FormType {
	case constvars.FormTypeGlucose:
		glucose, err := uc.Extractor.ExtractGlucoseInfo(measurement.Submission)
		if err != nil {
			return nil, exceptions.ErrMeasurementUnparseable(err)
		}
		glucose.CreatedAt = measurement.CreatedAt
		record.Glucose = glucose
	case constvars.FormTypeInsulin:
		insulin, err := uc.Extractor.ExtractInsulinInfo(measurement.Submission)
		if err != nil {
			return nil, exceptions.ErrMeasurementUnparseable(err)
		}
		insulin.CreatedAt = measurement.CreatedAt
		record.Insulin = insulin
	default:
		return nil, exceptions.ErrMeasurementUnparseable(nil)
	}

	return record, nil
}
