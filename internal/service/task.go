package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhub/taskhub-api/internal/model"
	"github.com/taskhub/taskhub-api/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
)

type TaskService struct {
	tasks  repo.TaskRepository
	groups repo.GroupRepository
	users  repo.UserRepository
}

func NewTaskService(tasks repo.TaskRepository, groups repo.GroupRepository, users repo.UserRepository) *TaskService {
	return &TaskService{tasks: tasks, groups: groups, users: users}
}

type CreateTaskInput struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Deadline    *time.Time          `json:"deadline"`
	RemindAt    *time.Time          `json:"remind_at"`
	Status      model.TaskStatus    `json:"status"`
	Category    string              `json:"category"`
	GroupID     *primitive.ObjectID `json:"group"`
}

// Create создает задачу. Задачу в группу может назначить только
// создатель группы, одного членства недостаточно.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput, creatorID primitive.ObjectID) (model.Task, error) {
	if err := s.validate(in); err != nil {
		return model.Task{}, err
	}

	if in.GroupID != nil {
		g, err := s.groups.GetByID(ctx, *in.GroupID)
		if err != nil {
			return model.Task{}, err // repo.ErrorNotFound, если группы нет
		}
		if g.CreatedBy != creatorID {
			return model.Task{}, ErrForbidden
		}
	}

	deadline := time.Now()
	if in.Deadline != nil {
		deadline = *in.Deadline
	}

	task := model.Task{
		Name:        in.Name,
		Description: in.Description,
		Deadline:    deadline,
		RemindAt:    in.RemindAt,
		Status:      in.Status,
		Category:    in.Category,
		CreatedBy:   creatorID,
		GroupID:     in.GroupID,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return created, err
	}

	// Обратная ссылка в документе группы
	if in.GroupID != nil {
		if err := s.groups.AppendTask(ctx, *in.GroupID, created.ID); err != nil {
			return created, err
		}
	}
	return created, nil
}

// FindVisible возвращает задачи, созданные пользователем, и задачи из
// групп, где он участник, с разрешенными ссылками
func (s *TaskService) FindVisible(ctx context.Context, userID primitive.ObjectID) ([]model.TaskView, error) {
	groups, err := s.groups.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	groupIDs := make([]primitive.ObjectID, 0, len(groups))
	groupByID := make(map[primitive.ObjectID]model.Group, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
		groupByID[g.ID] = g
	}

	tasks, err := s.tasks.FindVisible(ctx, userID, groupIDs)
	if err != nil {
		return nil, err
	}

	resolver := newUserResolver(s.users)
	views := make([]model.TaskView, 0, len(tasks))
	for _, t := range tasks {
		view := model.TaskView{Task: t}

		creator, err := resolver.ref(ctx, t.CreatedBy)
		if err != nil {
			return nil, err
		}
		view.Creator = creator

		if t.GroupID != nil {
			if g, ok := groupByID[*t.GroupID]; ok {
				view.Group = &model.TaskGroupRef{
					ID:        g.ID,
					Members:   g.Members,
					CreatedBy: g.CreatedBy,
				}
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateStatus меняет статус задачи. Разрешено создателю задачи и
// любому участнику группы-владельца. Висящая ссылка на удаленную
// группу оставляет право только за создателем.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID primitive.ObjectID, status model.TaskStatus, requesterID primitive.ObjectID) (model.Task, error) {
	if !status.Valid() {
		return model.Task{}, ErrValidation
	}

	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return model.Task{}, err
	}

	allowed := t.CreatedBy == requesterID
	if !allowed && t.GroupID != nil {
		g, err := s.groups.GetByID(ctx, *t.GroupID)
		switch {
		case errors.Is(err, repo.ErrorNotFound):
			// группа удалена, членство проверить не по чему
		case err != nil:
			return model.Task{}, err
		default:
			allowed = g.HasMember(requesterID)
		}
	}
	if !allowed {
		return model.Task{}, ErrForbidden
	}

	return s.tasks.UpdateStatus(ctx, taskID, status)
}

func (s *TaskService) validate(in CreateTaskInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrValidation
	}
	if strings.TrimSpace(in.Description) == "" {
		return ErrValidation
	}
	if in.Status == "" || !in.Status.Valid() {
		return ErrValidation
	}
	return nil
}
