package fhir

import (
	"context"
	"errors"
	"fmt"
	"glucolog-service/internal/app/config"
	"glucolog-service/internal/app/contracts"
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/constvars"
	"glucolog-service/internal/pkg/dto/requests"
	"glucolog-service/internal/pkg/dto/responses"
	"glucolog-service/internal/pkg/exceptions"
	"glucolog-service/internal/pkg/fhirmapper"
	"glucolog-service/internal/pkg/formdata"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type fhirUsecase struct {
	MeasurementRepository contracts.MeasurementRepository
	FhirClient            contracts.FhirClient
	RedisRepository       contracts.RedisRepository
	Extractor             *formdata.Extractor
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	fhirUsecaseInstance contracts.FhirUsecase
	onceFhirUsecase     sync.Once
)

func NewFhirUsecase(
	measurementRepository contracts.MeasurementRepository,
	fhirClient contracts.FhirClient,
	redisRepository contracts.RedisRepository,
	extractor *formdata.Extractor,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.FhirUsecase {
	onceFhirUsecase.Do(func() {
		fhirUsecaseInstance = &fhirUsecase{
			MeasurementRepository: measurementRepository,
			FhirClient:            fhirClient,
			RedisRepository:       redisRepository,
			Extractor:             extractor,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return fhirUsecaseInstance
}

func (uc *fhirUsecase) SendMeasurement(ctx context.Context, patientID, measurementID string) (*responses.SendResult, error) {
	measurement, err := uc.MeasurementRepository.FindByIDAndPatientID(ctx, measurementID, patientID)
	if err != nil {
		return nil, err
	}
	if measurement == nil {
		return nil, exceptions.ErrMeasurementNotFound(nil)
	}
	return uc.convertAndSend(ctx, measurement)
}

// SendMeasurements converts and sends each record independently and
// sequentially. One record's failure never aborts the batch; the outcome
// is accumulated per record.
func (uc *fhirUsecase) SendMeasurements(ctx context.Context, request *requests.BulkSendMeasurements) (*responses.BulkSendResult, error) {
	result := &responses.BulkSendResult{}
	for _, measurementID := range request.MeasurementIDs {
		sendResult, err := uc.SendMeasurement(ctx, request.PatientID, measurementID)
		if err != nil {
			uc.Log.Warn("bulk send: record failed",
				zap.String(constvars.LoggingPatientIDKey, request.PatientID),
				zap.String(constvars.LoggingMeasurementIDKey, measurementID),
				zap.Error(err),
			)
			result.Errors++
			result.Failures = append(result.Failures, responses.BulkSendFailure{
				MeasurementID: measurementID,
				Message:       clientMessage(err),
			})
			continue
		}
		result.Processed++
		result.Sent = append(result.Sent, *sendResult)
	}
	return result, nil
}

func (uc *fhirUsecase) CheckConnection(ctx context.Context) (*responses.FHIRStatus, error) {
	if cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyFHIRStatus); err == nil && cached != "" {
		status := new(responses.FHIRStatus)
		if err := json.Unmarshal([]byte(cached), status); err == nil {
			return status, nil
		}
	}

	status := &responses.FHIRStatus{
		Reachable: true,
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.FhirClient.Ping(ctx); err != nil {
		status.Reachable = false
		status.Message = clientMessage(err)
	}

	cacheTTL := time.Duration(uc.InternalConfig.FHIR.StatusCacheInSecond) * time.Second
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyFHIRStatus, status, cacheTTL); err != nil {
		uc.Log.Warn("failed to cache connectivity status", zap.Error(err))
	}

	return status, nil
}

func (uc *fhirUsecase) convertAndSend(ctx context.Context, measurement *models.Measurement) (*responses.SendResult, error) {
	switch measurement.FormType {
	case constvars.FormTypeGlucose:
		record, err := uc.Extractor.ExtractGlucoseInfo(measurement.Submission)
		if err != nil {
			return nil, exceptions.ErrMeasurementUnparseable(err)
		}
		record.CreatedAt = measurement.CreatedAt

		observation, err := fhirmapper.BuildGlucoseObservation(record, measurement.PatientID)
		if err != nil {
			return nil, translateConversionError(err)
		}
		if err := fhirmapper.ValidateResource(observation); err != nil {
			return nil, translateConversionError(err)
		}
		if err := uc.FhirClient.SendResource(ctx, constvars.ResourceObservation, observation); err != nil {
			return nil, err
		}
		return &responses.SendResult{
			MeasurementID: measurement.ID.Hex(),
			ResourceType:  constvars.ResourceObservation,
			ResourceID:    observation.ID,
		}, nil

	case constvars.FormTypeInsulin:
		record, err := uc.Extractor.ExtractInsulinInfo(measurement.Submission)
		if err != nil {
			return nil, exceptions.ErrMeasurementUnparseable(err)
		}
		record.CreatedAt = measurement.CreatedAt

		administration, err := fhirmapper.BuildInsulinAdministration(record, measurement.PatientID)
		if err != nil {
			return nil, translateConversionError(err)
		}
		if err := fhirmapper.ValidateResource(administration); err != nil {
			return nil, translateConversionError(err)
		}
		if err := uc.FhirClient.SendResource(ctx, constvars.ResourceMedicationAdministration, administration); err != nil {
			return nil, err
		}
		return &responses.SendResult{
			MeasurementID: measurement.ID.Hex(),
			ResourceType:  constvars.ResourceMedicationAdministration,
			ResourceID:    administration.ID,
		}, nil

	default:
		return nil, exceptions.ErrMeasurementUnparseable(fmt.Errorf("unknown form type %q", measurement.FormType))
	}
}

func translateConversionError(err error) error {
	var missingValue *fhirmapper.MissingPrimaryValueError
	if errors.As(err, &missingValue) {
		return exceptions.ErrFHIRMissingPrimaryValue(err)
	}
	var invalidResource *fhirmapper.InvalidResourceError
	if errors.As(err, &invalidResource) {
		return exceptions.ErrFHIRInvalidResource(err, invalidResource.Field)
	}
	return exceptions.ErrServerProcess(err)
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}
