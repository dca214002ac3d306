// Package store defines the domain store contract: four record kinds with
// create/read/update/delete and the cascade rules that keep them
// consistent. Two implementations exist, postgres and memory, selected
// once at startup; callers cannot tell which one is active.
package store

import (
	"context"
	"errors"

	"portfoliokollen/internal/model"
)

var (
	// ErrNotFound is returned by updates and point lookups on unknown ids.
	// Deletes of unknown ids are a silent no-op instead.
	ErrNotFound = errors.New("record not found")

	// ErrBackend marks a failed or unreachable remote store call.
	ErrBackend = errors.New("backend unavailable")
)

// Store is the domain store. List results are ordered ascending by each
// kind's natural date field, ties broken by insertion order. Get returns
// (nil, nil) for an unknown id. Creates assign a fresh id and do not
// validate foreign keys; referential checks live outside this layer.
type Store interface {
	ListProjects(ctx context.Context, statusFilter string) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	CreateProject(ctx context.Context, p model.Project) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, upd model.ProjectUpdate) (*model.Project, error)
	// DeleteProject removes the project plus its activities, its
	// milestones, and every dependency touching one of those activities.
	DeleteProject(ctx context.Context, id string) error

	ListActivities(ctx context.Context, projectID string) ([]model.Activity, error)
	GetActivity(ctx context.Context, id string) (*model.Activity, error)
	CreateActivity(ctx context.Context, a model.Activity) (*model.Activity, error)
	UpdateActivity(ctx context.Context, id string, upd model.ActivityUpdate) (*model.Activity, error)
	// DeleteActivity removes the activity plus every dependency with the
	// activity as either endpoint.
	DeleteActivity(ctx context.Context, id string) error

	ListMilestones(ctx context.Context, projectID string) ([]model.Milestone, error)
	GetMilestone(ctx context.Context, id string) (*model.Milestone, error)
	CreateMilestone(ctx context.Context, m model.Milestone) (*model.Milestone, error)
	UpdateMilestone(ctx context.Context, id string, upd model.MilestoneUpdate) (*model.Milestone, error)
	DeleteMilestone(ctx context.Context, id string) error

	// ListDependenciesForActivities returns dependencies where either
	// endpoint is in activityIDs, not only those with both endpoints
	// inside the set.
	ListDependenciesForActivities(ctx context.Context, activityIDs []string) ([]model.Dependency, error)
	GetDependency(ctx context.Context, id string) (*model.Dependency, error)
	CreateDependency(ctx context.Context, d model.Dependency) (*model.Dependency, error)
	DeleteDependency(ctx context.Context, id string) error
}
