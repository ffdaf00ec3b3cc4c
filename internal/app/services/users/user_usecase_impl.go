package users

import (
	"context"
	"glucolog-service/internal/app/contracts"
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/dto/requests"
	"glucolog-service/internal/pkg/dto/responses"
	"glucolog-service/internal/pkg/exceptions"
	"glucolog-service/internal/pkg/formdata"
	"sync"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Extractor      *formdata.Extractor
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	extractor *formdata.Extractor,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			Extractor:      extractor,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

// RegisterUser always reports the per-field error map back to the caller;
// only a fully valid record is persisted.
func (uc *userUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.Registration, error) {
	record, err := uc.Extractor.ExtractUserInfo(request.Submission)
	if err != nil {
		return nil, exceptions.ErrRegistrationInvalid(err)
	}

	registration := &responses.Registration{
		UserID: record.UserID,
		Valid:  record.Valid,
		Errors: record.Errors,
	}

	if !record.Valid {
		uc.Log.Info("userUsecase.RegisterUser rejected registration",
			zap.Int("field_errors", len(record.Errors)),
		)
		return registration, nil
	}

	now := time.Now().UTC()
	user := &models.User{
		Profile:   *record,
		CreatedAt: now,
		UpdatedAt: now,
	}

	profileID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	registration.ProfileID = profileID
	return registration, nil
}

func (uc *userUsecase) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	return user, nil
}
