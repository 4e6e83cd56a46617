package handler

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhub/taskhub-api/internal/model"
	"github.com/taskhub/taskhub-api/internal/repo"
)

// memStore - общее in-memory хранилище для тестов хэндлеров, с той же
// семантикой ошибок, что и у mongo-репозиториев
type memStore struct {
	mu     sync.Mutex
	users  map[primitive.ObjectID]model.User
	groups map[primitive.ObjectID]model.Group
	tasks  map[primitive.ObjectID]model.Task
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[primitive.ObjectID]model.User),
		groups: make(map[primitive.ObjectID]model.Group),
		tasks:  make(map[primitive.ObjectID]model.Task),
	}
}

type memUserRepo struct{ s *memStore }
type memGroupRepo struct{ s *memStore }
type memTaskRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, u model.User) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return u, repo.ErrorConflict
		}
	}
	u.ID = primitive.NewObjectID()
	r.s.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return model.User{}, repo.ErrorNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repo.ErrorNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]model.UserListing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]model.UserListing, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, model.UserListing{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role})
	}
	return out, nil
}

func (r *memUserRepo) UpdateRole(_ context.Context, id primitive.ObjectID, role int) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return model.User{}, repo.ErrorNotFound
	}
	u.Role = role
	r.s.users[id] = u
	return u, nil
}

func (r *memUserRepo) SetLastLogin(_ context.Context, id primitive.ObjectID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return repo.ErrorNotFound
	}
	u.LastLogin = at
	r.s.users[id] = u
	return nil
}

func (r *memGroupRepo) Create(_ context.Context, g model.Group) (model.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	g.ID = primitive.NewObjectID()
	if g.Tasks == nil {
		g.Tasks = []primitive.ObjectID{}
	}
	r.s.groups[g.ID] = g
	return g, nil
}

func (r *memGroupRepo) GetByID(_ context.Context, id primitive.ObjectID) (model.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	g, ok := r.s.groups[id]
	if !ok {
		return model.Group{}, repo.ErrorNotFound
	}
	return g, nil
}

func (r *memGroupRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]model.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]model.Group, 0)
	for _, g := range r.s.groups {
		if g.CreatedBy == userID || g.HasMember(userID) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memGroupRepo) AppendTask(_ context.Context, groupID, taskID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	g, ok := r.s.groups[groupID]
	if !ok {
		return repo.ErrorNotFound
	}
	g.Tasks = append(g.Tasks, taskID)
	r.s.groups[groupID] = g
	return nil
}

func (r *memGroupRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.groups[id]; !ok {
		return repo.ErrorNotFound
	}
	delete(r.s.groups, id)
	return nil
}

func (r *memTaskRepo) Create(_ context.Context, t model.Task) (model.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = primitive.NewObjectID()
	r.s.tasks[t.ID] = t
	return t, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id primitive.ObjectID) (model.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return model.Task{}, repo.ErrorNotFound
	}
	return t, nil
}

func (r *memTaskRepo) FindVisible(_ context.Context, userID primitive.ObjectID, groupIDs []primitive.ObjectID) ([]model.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inGroups := make(map[primitive.ObjectID]bool, len(groupIDs))
	for _, id := range groupIDs {
		inGroups[id] = true
	}

	out := make([]model.Task, 0)
	for _, t := range r.s.tasks {
		if t.CreatedBy == userID || (t.GroupID != nil && inGroups[*t.GroupID]) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status model.TaskStatus) (model.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return model.Task{}, repo.ErrorNotFound
	}
	t.Status = status
	r.s.tasks[id] = t
	return t, nil
}

func (r *memTaskRepo) DueReminders(_ context.Context, now time.Time, limit int64) ([]model.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]model.Task, 0)
	for _, t := range r.s.tasks {
		if t.Reminded || t.RemindAt == nil || t.RemindAt.After(now) {
			continue
		}
		out = append(out, t)
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *memTaskRepo) MarkReminded(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok || t.Reminded {
		return repo.ErrorNotFound
	}
	t.Reminded = true
	r.s.tasks[id] = t
	return nil
}
