// Package portfolio wraps the domain store with the operations the API
// exposes: pass-through CRUD with operation-scoped error context, the
// dependency boundary rule, and the project details aggregate.
package portfolio

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"portfoliokollen/internal/model"
	"portfoliokollen/internal/store"
)

// ErrValidation marks input rejected before any store call is made.
var ErrValidation = errors.New("validation failed")

type Service struct {
	store  store.Store
	logger *zap.Logger
}

func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

func (s *Service) ListProjects(ctx context.Context, statusFilter string) ([]model.Project, error) {
	projects, err := s.store.ListProjects(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("could not fetch projects: %w", err)
	}
	return projects, nil
}

func (s *Service) GetProject(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch project: %w", err)
	}
	return project, nil
}

func (s *Service) CreateProject(ctx context.Context, p model.Project) (*model.Project, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrValidation)
	}
	created, err := s.store.CreateProject(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("could not create project: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateProject(ctx context.Context, id string, upd model.ProjectUpdate) (*model.Project, error) {
	updated, err := s.store.UpdateProject(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("could not update project: %w", err)
	}
	return updated, nil
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("could not delete project: %w", err)
	}
	return nil
}

func (s *Service) ListActivities(ctx context.Context, projectID string) ([]model.Activity, error) {
	activities, err := s.store.ListActivities(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch activities: %w", err)
	}
	return activities, nil
}

func (s *Service) CreateActivity(ctx context.Context, a model.Activity) (*model.Activity, error) {
	if a.ProjectID == "" {
		return nil, fmt.Errorf("%w: activity must belong to a project", ErrValidation)
	}
	created, err := s.store.CreateActivity(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("could not create activity: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateActivity(ctx context.Context, id string, upd model.ActivityUpdate) (*model.Activity, error) {
	updated, err := s.store.UpdateActivity(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("could not update activity: %w", err)
	}
	return updated, nil
}

func (s *Service) DeleteActivity(ctx context.Context, id string) error {
	if err := s.store.DeleteActivity(ctx, id); err != nil {
		return fmt.Errorf("could not delete activity: %w", err)
	}
	return nil
}

func (s *Service) ListMilestones(ctx context.Context, projectID string) ([]model.Milestone, error) {
	milestones, err := s.store.ListMilestones(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch milestones: %w", err)
	}
	return milestones, nil
}

func (s *Service) CreateMilestone(ctx context.Context, m model.Milestone) (*model.Milestone, error) {
	if m.ProjectID == "" {
		return nil, fmt.Errorf("%w: milestone must belong to a project", ErrValidation)
	}
	created, err := s.store.CreateMilestone(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("could not create milestone: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateMilestone(ctx context.Context, id string, upd model.MilestoneUpdate) (*model.Milestone, error) {
	updated, err := s.store.UpdateMilestone(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("could not update milestone: %w", err)
	}
	return updated, nil
}

func (s *Service) DeleteMilestone(ctx context.Context, id string) error {
	if err := s.store.DeleteMilestone(ctx, id); err != nil {
		return fmt.Errorf("could not delete milestone: %w", err)
	}
	return nil
}

// CreateDependency applies the boundary rule before touching the store:
// both endpoints must be selected and must differ. Nothing beyond that is
// checked — no endpoint existence, no cross-project rule, no cycle
// detection. This tool tracks dependencies, it does not schedule them.
func (s *Service) CreateDependency(ctx context.Context, d model.Dependency) (*model.Dependency, error) {
	if d.FromActivityID == "" || d.ToActivityID == "" {
		return nil, fmt.Errorf("%w: both activities must be selected", ErrValidation)
	}
	if d.FromActivityID == d.ToActivityID {
		return nil, fmt.Errorf("%w: an activity cannot depend on itself", ErrValidation)
	}

	created, err := s.store.CreateDependency(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("could not create dependency: %w", err)
	}
	return created, nil
}

func (s *Service) DeleteDependency(ctx context.Context, id string) error {
	if err := s.store.DeleteDependency(ctx, id); err != nil {
		return fmt.Errorf("could not delete dependency: %w", err)
	}
	return nil
}

// GetProjectDetails assembles the full view of one project. An unknown
// project id yields (nil, nil): a stale selection is an expected outcome,
// not an error. Activity and milestone fetches run concurrently; the
// dependency fetch follows because it is keyed off the activity ids.
func (s *Service) GetProjectDetails(ctx context.Context, projectID string) (*model.ProjectDetails, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch project: %w", err)
	}
	if project == nil {
		return nil, nil
	}

	var (
		activities []model.Activity
		milestones []model.Milestone
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		activities, err = s.store.ListActivities(gctx, projectID)
		if err != nil {
			return fmt.Errorf("could not fetch activities: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		milestones, err = s.store.ListMilestones(gctx, projectID)
		if err != nil {
			return fmt.Errorf("could not fetch milestones: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	activityIDs := make([]string, len(activities))
	for i, a := range activities {
		activityIDs[i] = a.ID
	}

	dependencies, err := s.store.ListDependenciesForActivities(ctx, activityIDs)
	if err != nil {
		return nil, fmt.Errorf("could not fetch dependencies: %w", err)
	}

	return &model.ProjectDetails{
		Project:      *project,
		Activities:   activities,
		Milestones:   milestones,
		Dependencies: dependencies,
	}, nil
}
