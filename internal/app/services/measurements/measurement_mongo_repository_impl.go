package measurements

import (
	"context"
	"glucolog-service/internal/app/contracts"
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/constvars"
	"glucolog-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type measurementMongoRepository struct {
	DB  *mongo.Database
	Log *zap.Logger
}

var (
	measurementMongoRepositoryInstance contracts.MeasurementRepository
	onceMeasurementMongoRepository     sync.Once
)

func NewMeasurementMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.MeasurementRepository {
	onceMeasurementMongoRepository.Do(func() {
		measurementMongoRepositoryInstance = &measurementMongoRepository{
			DB:  db,
			Log: logger,
		}
	})
	return measurementMongoRepositoryInstance
}

func (r *measurementMongoRepository) collection() *mongo.Collection {
	return r.DB.Collection(constvars.MongoCollectionMeasurements)
}

func (r *measurementMongoRepository) CreateMeasurement(ctx context.Context, measurement *models.Measurement) (string, error) {
	result, err := r.collection().InsertOne(ctx, measurement)
	if err != nil {
		r.Log.Error("measurementMongoRepository.CreateMeasurement", zap.Error(err))
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(nil)
	}
	return insertedID.Hex(), nil
}

func (r *measurementMongoRepository) FindByIDAndPatientID(ctx context.Context, measurementID, patientID string) (*models.Measurement, error) {
	objectID, err := primitive.ObjectIDFromHex(measurementID)
	if err != nil {
		// A malformed ID can never match a stored document.
		return nil, nil
	}

	filter := bson.M{"_id": objectID, "patientId": patientID}

	measurement := new(models.Measurement)
	err = r.collection().FindOne(ctx, filter).Decode(measurement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		r.Log.Error("measurementMongoRepository.FindByIDAndPatientID",
			zap.String(constvars.LoggingMeasurementIDKey, measurementID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return measurement, nil
}

func (r *measurementMongoRepository) FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.Measurement, int, error) {
	filter := bson.M{"patientId": patientID}

	total, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	measurements := make([]models.Measurement, 0, pageSize)
	if err := cursor.All(ctx, &measurements); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return measurements, int(total), nil
}
