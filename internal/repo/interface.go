package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhub/taskhub-api/internal/model"
)

// UserRepository определяет интерфейс для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context) ([]model.UserListing, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role int) (model.User, error)
	SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

// GroupRepository определяет интерфейс для работы с группами
type GroupRepository interface {
	Create(ctx context.Context, g model.Group) (model.Group, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Group, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Group, error)
	AppendTask(ctx context.Context, groupID, taskID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Task, error)
	FindVisible(ctx context.Context, userID primitive.ObjectID, groupIDs []primitive.ObjectID) ([]model.Task, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.TaskStatus) (model.Task, error)
	DueReminders(ctx context.Context, now time.Time, limit int64) ([]model.Task, error)
	MarkReminded(ctx context.Context, id primitive.ObjectID) error
}
