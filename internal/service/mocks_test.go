package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhub/taskhub-api/internal/model"
)

// MockUserRepository - мок репозитория пользователей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.UserListing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.UserListing), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role int) (model.User, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockGroupRepository - мок репозитория групп
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, g model.Group) (model.Group, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(model.Group), args.Error(1)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.Group, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Group), args.Error(1)
}

func (m *MockGroupRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Group, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Group), args.Error(1)
}

func (m *MockGroupRepository) AppendTask(ctx context.Context, groupID, taskID primitive.ObjectID) error {
	args := m.Called(ctx, groupID, taskID)
	return args.Error(0)
}

func (m *MockGroupRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaskRepository - мок репозитория задач
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, t model.Task) (model.Task, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindVisible(ctx context.Context, userID primitive.ObjectID, groupIDs []primitive.ObjectID) ([]model.Task, error) {
	args := m.Called(ctx, userID, groupIDs)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.TaskStatus) (model.Task, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) DueReminders(ctx context.Context, now time.Time, limit int64) ([]model.Task, error) {
	args := m.Called(ctx, now, limit)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) MarkReminded(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
