// Package memory implements the domain store as an in-process emulation,
// used when no database is configured. It mirrors the relational
// backend's observable behavior, including cascade deletes, so the rest
// of the service cannot tell the two apart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfoliokollen/internal/model"
	"portfoliokollen/internal/store"
)

// Store keeps all records in insertion-order slices behind one RWMutex.
// Every mutation goes through the exported methods; nothing else touches
// the slices, which is what keeps the cascade invariants intact.
type Store struct {
	mu sync.RWMutex

	projects     []model.Project
	activities   []model.Activity
	milestones   []model.Milestone
	dependencies []model.Dependency
	users        []model.User

	logger *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

func (s *Store) ListProjects(ctx context.Context, statusFilter string) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if statusFilter != "" && p.Status != statusFilter {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate < out[j].StartDate
	})
	return out, nil
}

func (s *Store) GetProject(ctx context.Context, id string) (*model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateProject(ctx context.Context, p model.Project) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New().String()
	s.projects = append(s.projects, p)
	s.logger.Debug("project created", zap.String("project_id", p.ID))
	return &p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, upd model.ProjectUpdate) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			upd.Apply(&s.projects[i])
			cp := s.projects[i]
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

// DeleteProject cascades: the set of owned activity ids is snapshotted
// before anything is removed, because dependency removal depends on
// membership in that set.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make(map[string]bool)
	for _, a := range s.activities {
		if a.ProjectID == id {
			removed[a.ID] = true
		}
	}

	s.projects = deleteWhere(s.projects, func(p model.Project) bool { return p.ID == id })
	s.activities = deleteWhere(s.activities, func(a model.Activity) bool { return a.ProjectID == id })
	s.milestones = deleteWhere(s.milestones, func(m model.Milestone) bool { return m.ProjectID == id })
	s.dependencies = deleteWhere(s.dependencies, func(d model.Dependency) bool {
		return removed[d.FromActivityID] || removed[d.ToActivityID]
	})

	s.logger.Debug("project deleted",
		zap.String("project_id", id),
		zap.Int("cascaded_activities", len(removed)),
	)
	return nil
}

func (s *Store) ListActivities(ctx context.Context, projectID string) ([]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Activity, 0)
	for _, a := range s.activities {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate < out[j].StartDate
	})
	return out, nil
}

func (s *Store) GetActivity(ctx context.Context, id string) (*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.activities {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateActivity(ctx context.Context, a model.Activity) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.New().String()
	s.activities = append(s.activities, a)
	s.logger.Debug("activity created",
		zap.String("activity_id", a.ID),
		zap.String("project_id", a.ProjectID),
	)
	return &a, nil
}

func (s *Store) UpdateActivity(ctx context.Context, id string, upd model.ActivityUpdate) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == id {
			upd.Apply(&s.activities[i])
			cp := s.activities[i]
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteActivity(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = deleteWhere(s.activities, func(a model.Activity) bool { return a.ID == id })
	s.dependencies = deleteWhere(s.dependencies, func(d model.Dependency) bool {
		return d.FromActivityID == id || d.ToActivityID == id
	})
	return nil
}

func (s *Store) ListMilestones(ctx context.Context, projectID string) ([]model.Milestone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Milestone, 0)
	for _, m := range s.milestones {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out, nil
}

func (s *Store) GetMilestone(ctx context.Context, id string) (*model.Milestone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.milestones {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateMilestone(ctx context.Context, m model.Milestone) (*model.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.New().String()
	s.milestones = append(s.milestones, m)
	return &m, nil
}

func (s *Store) UpdateMilestone(ctx context.Context, id string, upd model.MilestoneUpdate) (*model.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.milestones {
		if s.milestones[i].ID == id {
			upd.Apply(&s.milestones[i])
			cp := s.milestones[i]
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteMilestone(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.milestones = deleteWhere(s.milestones, func(m model.Milestone) bool { return m.ID == id })
	return nil
}

func (s *Store) ListDependenciesForActivities(ctx context.Context, activityIDs []string) ([]model.Dependency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make(map[string]bool, len(activityIDs))
	for _, id := range activityIDs {
		ids[id] = true
	}

	out := make([]model.Dependency, 0)
	for _, d := range s.dependencies {
		if ids[d.FromActivityID] || ids[d.ToActivityID] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) GetDependency(ctx context.Context, id string) (*model.Dependency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.dependencies {
		if d.ID == id {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateDependency(ctx context.Context, d model.Dependency) (*model.Dependency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = uuid.New().String()
	if d.Type == "" {
		d.Type = model.DefaultDependencyType
	}
	s.dependencies = append(s.dependencies, d)
	return &d, nil
}

func (s *Store) DeleteDependency(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dependencies = deleteWhere(s.dependencies, func(d model.Dependency) bool { return d.ID == id })
	return nil
}

// CreateUser inserts a user account; emails are unique.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = uuid.New().String()
	u.CreatedAt = time.Now()
	s.users = append(s.users, *u)
	return nil
}

// FindUserByEmail returns (nil, nil) when no account matches.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func deleteWhere[T any](list []T, match func(T) bool) []T {
	out := list[:0]
	for _, item := range list {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}
