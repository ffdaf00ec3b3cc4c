package measurements

import (
	"context"
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/constvars"
	"glucolog-service/internal/pkg/dto/requests"
	"glucolog-service/internal/pkg/exceptions"
	"glucolog-service/internal/pkg/formdata"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeMeasurementRepository struct {
	measurements map[string]*models.Measurement
	created      []*models.Measurement
}

func (f *fakeMeasurementRepository) CreateMeasurement(ctx context.Context, measurement *models.Measurement) (string, error) {
	f.created = append(f.created, measurement)
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeMeasurementRepository) FindByIDAndPatientID(ctx context.Context, measurementID, patientID string) (*models.Measurement, error) {
	measurement, ok := f.measurements[measurementID]
	if !ok || measurement.PatientID != patientID {
		return nil, nil
	}
	return measurement, nil
}

func (f *fakeMeasurementRepository) FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.Measurement, int, error) {
	var result []models.Measurement
	for _, m := range f.measurements {
		if m.PatientID == patientID {
			result = append(result, *m)
		}
	}
	return result, len(result), nil
}

func newTestUsecase(repo *fakeMeasurementRepository) *measurementUsecase {
	return &measurementUsecase{
		MeasurementRepository: repo,
		Extractor:             formdata.NewExtractor(nil),
		Log:                   zap.NewNop(),
	}
}

func TestCreateMeasurement(t *testing.T) {
	repo := &fakeMeasurementRepository{measurements: map[string]*models.Measurement{}}
	uc := newTestUsecase(repo)

	measurementID, err := uc.CreateMeasurement(context.Background(), &requests.CreateMeasurement{
		PatientID: "12345",
		FormType:  constvars.FormTypeGlucose,
		Submission: map[string]interface{}{
			constvars.GlucosePathValue: 120.0,
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, measurementID)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.Equal(t, "12345", stored.PatientID)
	assert.Equal(t, constvars.FormTypeGlucose, stored.FormType)
	assert.False(t, stored.CreatedAt.IsZero())
	// The submission is stored raw; decoding happens on read.
	assert.Equal(t, 120.0, stored.Submission[constvars.GlucosePathValue])
}

func TestFindMeasurementRecord(t *testing.T) {
	patientID := "12345"

	t.Run("glucose submission is decoded on read", func(t *testing.T) {
		id := primitive.NewObjectID()
		createdAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		repo := &fakeMeasurementRepository{measurements: map[string]*models.Measurement{
			id.Hex(): {
				ID:        id,
				PatientID: patientID,
				FormType:  constvars.FormTypeGlucose,
				Submission: map[string]interface{}{
					constvars.GlucosePathValue: 120.0,
					constvars.GlucosePathDate:  "2024-03-15",
				},
				CreatedAt: createdAt,
			},
		}}
		uc := newTestUsecase(repo)

		record, err := uc.FindMeasurementRecord(context.Background(), patientID, id.Hex())
		require.NoError(t, err)

		assert.Equal(t, id.Hex(), record.MeasurementID)
		assert.Equal(t, constvars.FormTypeGlucose, record.FormType)
		require.NotNil(t, record.Glucose)
		assert.Nil(t, record.Insulin)
		require.NotNil(t, record.Glucose.GlucoseValue)
		assert.Equal(t, 120.0, *record.Glucose.GlucoseValue)
		assert.Equal(t, createdAt, record.Glucose.CreatedAt)
	})

	t.Run("insulin submission", func(t *testing.T) {
		id := primitive.NewObjectID()
		repo := &fakeMeasurementRepository{measurements: map[string]*models.Measurement{
			id.Hex(): {
				ID:        id,
				PatientID: patientID,
				FormType:  constvars.FormTypeInsulin,
				Submission: map[string]interface{}{
					constvars.InsulinPathValue: 8.0,
				},
			},
		}}
		uc := newTestUsecase(repo)

		record, err := uc.FindMeasurementRecord(context.Background(), patientID, id.Hex())
		require.NoError(t, err)
		require.NotNil(t, record.Insulin)
		assert.Nil(t, record.Glucose)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &fakeMeasurementRepository{measurements: map[string]*models.Measurement{}}
		uc := newTestUsecase(repo)

		_, err := uc.FindMeasurementRecord(context.Background(), patientID, primitive.NewObjectID().Hex())
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("record of another patient is not visible", func(t *testing.T) {
		id := primitive.NewObjectID()
		repo := &fakeMeasurementRepository{measurements: map[string]*models.Measurement{
			id.Hex(): {
				ID:        id,
				PatientID: "99999",
				FormType:  constvars.FormTypeGlucose,
			},
		}}
		uc := newTestUsecase(repo)

		_, err := uc.FindMeasurementRecord(context.Background(), patientID, id.Hex())
		require.Error(t, err)
	})

	t.Run("unknown form type is unprocessable", func(t *testing.T) {
		id := primitive.NewObjectID()
		repo := &fakeMeasurementRepository{measurements: map[string]*models.Measurement{
			id.Hex(): {
				ID:         id,
				PatientID:  patientID,
				FormType:   "unknown",
				Submission: map[string]interface{}{},
			},
		}}
		uc := newTestUsecase(repo)

		_, err := uc.FindMeasurementRecord(context.Background(), patientID, id.Hex())
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})
}

func TestFindMeasurementsDefaults(t *testing.T) {
	repo := &fakeMeasurementRepository{measurements: map[string]*models.Measurement{}}
	uc := newTestUsecase(repo)

	_, total, err := uc.FindMeasurements(context.Background(), &requests.ListMeasurements{
		PatientID: "12345",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
