package users

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
	"go.uber.org/zap"
)

type userMongoRepository struct {
	DB  *mongo.Database
	Log *zap.Logger
}

var (
	userMongoRepositoryInstance contracts.UserRepository
	onceUserMongoRepository     sync.Once
)

func NewUserMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.UserRepository {
	onceUserMongoRepository.Do(func() {
		userMongoRepositoryInstance = &userMongoRepository{
			DB:  db,
			Log: logger,
		}
	})
	return userMongoRepositoryInstance
}

func (r *userMongoRepository) collection() *mongo.Collection {
	return r.DB.Collection(constvars.MongoCollectionUsers)
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	result, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		r.Log.Error("userMongoRepository.CreateUser", zap.Error(err))
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(nil)
	}
	return insertedID.Hex(), nil
}

func (r *userMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.User, error) {
	user := new(models.User)
	err := r.collection().FindOne(ctx, bson.M{"profile.userId": userID}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		r.Log.Error("userMongoRepository.FindByUserID", zap.Error(err))
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return user, nil
}
