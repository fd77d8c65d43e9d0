package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/airlabs/air-tasks/internal/domain/entity"
	"github.com/airlabs/air-tasks/internal/domain/repository"
)

// --- in-memory fakes for the repository interfaces ---

type fakeUserRepo struct {
	users  map[int64]entity.User
	nextID int64
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrEmailTaken
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeTaskRepo struct {
	tasks  map[int64]entity.Task
	nextID int64
}

func newFakeTaskRepo(tasks ...entity.Task) *fakeTaskRepo {
	r := &fakeTaskRepo{tasks: make(map[int64]entity.Task)}
	for _, t := range tasks {
		r.tasks[t.ID] = t
		if t.ID > r.nextID {
			r.nextID = t.ID
		}
	}
	return r
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.tasks[t.ID] = *t
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, userID int64) ([]entity.Task, error) {
	out := make([]entity.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	r.tasks[t.ID] = *t
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ev, ok := body.(Event); ok {
		p.events = append(p.events, ev)
	}
	return nil
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
