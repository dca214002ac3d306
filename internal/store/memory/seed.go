package memory

import (
	"context"

	"portfoliokollen/internal/model"
	"portfoliokollen/internal/store"
)

var _ store.Store = (*Store)(nil)

// Seed loads a small demo portfolio so the service is usable without a
// database.
func (s *Store) Seed(ctx context.Context) error {
	mvp, err := s.CreateProject(ctx, model.Project{
		Name:           "Portfolio MVP rollout",
		Description:    "Build the portfolio frontend and connect auth plus storage.",
		StartDate:      "2024-05-01",
		EndDate:        "2024-07-01",
		ProjectOwner:   "Anna Andersson",
		ProjectManager: "Per Lindqvist",
		ImpactOwner:    "Ida Berg",
		Status:         model.StatusInProgress,
		Priority:       1,
	})
	if err != nil {
		return err
	}

	_, err = s.CreateProject(ctx, model.Project{
		Name:           "Portfolio reports",
		Description:    "Give management a simple portfolio overview with filters.",
		StartDate:      "2024-06-01",
		EndDate:        "2024-09-15",
		ProjectOwner:   "Bo Svensson",
		ProjectManager: "Lisa Holm",
		ImpactOwner:    "Ida Berg",
		Status:         model.StatusPlanned,
		Priority:       2,
	})
	if err != nil {
		return err
	}

	setup, err := s.CreateActivity(ctx, model.Activity{
		ProjectID:   mvp.ID,
		Name:        "Provision backend project",
		Description: "Create database tables and auth configuration.",
		StartDate:   "2024-05-01",
		EndDate:     "2024-05-05",
		Status:      model.StatusCompleted,
		Responsible: "Anna Andersson",
	})
	if err != nil {
		return err
	}

	ui, err := s.CreateActivity(ctx, model.Activity{
		ProjectID:   mvp.ID,
		Name:        "Build portfolio UI",
		Description: "Lists and forms for projects and activities.",
		StartDate:   "2024-05-06",
		EndDate:     "2024-06-01",
		Status:      model.StatusInProgress,
		Responsible: "Per Lindqvist",
	})
	if err != nil {
		return err
	}

	if _, err := s.CreateMilestone(ctx, model.Milestone{
		ProjectID:    mvp.ID,
		Name:         "Go/no-go frontend",
		DecisionType: "go/no-go",
		Date:         "2024-06-05",
		Status:       model.StatusPlanned,
	}); err != nil {
		return err
	}

	_, err = s.CreateDependency(ctx, model.Dependency{
		FromActivityID: ui.ID,
		ToActivityID:   setup.ID,
		Type:           model.DefaultDependencyType,
	})
	return err
}
