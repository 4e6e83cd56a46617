package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhub/taskhub-api/internal/model"
	"github.com/taskhub/taskhub-api/internal/repo"
)

type GroupService struct {
	groups repo.GroupRepository
	users  repo.UserRepository
}

func NewGroupService(groups repo.GroupRepository, users repo.UserRepository) *GroupService {
	return &GroupService{groups: groups, users: users}
}

// Create собирает множество участников как объединение переданных id и
// создателя, без дубликатов. Создатель всегда участник.
func (s *GroupService) Create(ctx context.Context, name string, memberIDs []primitive.ObjectID, creatorID primitive.ObjectID) (model.Group, error) {
	seen := map[primitive.ObjectID]bool{creatorID: true}
	members := []primitive.ObjectID{creatorID}
	for _, id := range memberIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		members = append(members, id)
	}

	g := model.Group{
		Name:      name,
		Members:   members,
		CreatedBy: creatorID,
	}
	return s.groups.Create(ctx, g)
}

// FindMine возвращает группы пользователя (участник или создатель) с
// разрешенными ссылками на участников и создателя
func (s *GroupService) FindMine(ctx context.Context, userID primitive.ObjectID) ([]model.GroupView, error) {
	groups, err := s.groups.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolver := newUserResolver(s.users)
	views := make([]model.GroupView, 0, len(groups))
	for _, g := range groups {
		view := model.GroupView{
			ID:      g.ID,
			Name:    g.Name,
			Members: make([]model.UserRef, 0, len(g.Members)),
			Tasks:   g.Tasks,
		}

		for _, memberID := range g.Members {
			ref, err := resolver.ref(ctx, memberID)
			if err != nil {
				return nil, err
			}
			if ref == nil { // удаленный пользователь выпадает из списка
				continue
			}
			view.Members = append(view.Members, *ref)
		}

		if ref, err := resolver.ref(ctx, g.CreatedBy); err != nil {
			return nil, err
		} else if ref != nil {
			view.CreatedBy = *ref
		}

		views = append(views, view)
	}
	return views, nil
}

// Delete удаляет группу, разрешено только ее создателю
func (s *GroupService) Delete(ctx context.Context, groupID, requesterID primitive.ObjectID) error {
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if g.CreatedBy != requesterID {
		return ErrForbidden
	}
	return s.groups.Delete(ctx, groupID)
}

// userResolver кэширует поиск пользователей при обогащении ответов.
// Для висящей ссылки возвращает nil вместо ошибки.
type userResolver struct {
	users repo.UserRepository
	cache map[primitive.ObjectID]*model.UserRef
}

func newUserResolver(users repo.UserRepository) *userResolver {
	return &userResolver{
		users: users,
		cache: make(map[primitive.ObjectID]*model.UserRef),
	}
}

func (r *userResolver) ref(ctx context.Context, id primitive.ObjectID) (*model.UserRef, error) {
	if ref, ok := r.cache[id]; ok {
		return ref, nil
	}

	u, err := r.users.GetByID(ctx, id)
	if errors.Is(err, repo.ErrorNotFound) {
		r.cache[id] = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	ref := u.Ref()
	r.cache[id] = &ref
	return &ref, nil
}
