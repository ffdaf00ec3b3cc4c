package contracts

import (
	"context"
	"glucolog-service/internal/app/models"
	"glucolog-service/internal/pkg/dto/requests"
	"glucolog-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByUserID(ctx context.Context, userID string) (*models.User, error)
}

type UserUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.Registration, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
}
