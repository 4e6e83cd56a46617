package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhub/taskhub-api/internal/model"
	"github.com/taskhub/taskhub-api/internal/repo"
)

type UserService struct {
	users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]model.UserListing, error) {
	return s.users.List(ctx)
}

// UpdateRole меняет роль без проверки прав: так ведет себя исходный
// API, любой аутентифицированный пользователь может менять любую роль
func (s *UserService) UpdateRole(ctx context.Context, id primitive.ObjectID, role int) (model.User, error) {
	return s.users.UpdateRole(ctx, id, role)
}
