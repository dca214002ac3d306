package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfoliokollen/internal/model"
	"portfoliokollen/internal/store"
	"portfoliokollen/pkg/metrics"
)

const projectColumns = `id, name, description, start_date, end_date,
       project_owner, project_manager, impact_owner, status, priority`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.StartDate,
		&p.EndDate,
		&p.ProjectOwner,
		&p.ProjectManager,
		&p.ImpactOwner,
		&p.Status,
		&p.Priority,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListProjects(ctx context.Context, statusFilter string) ([]model.Project, error) {
	var projects []model.Project
	err := s.run("list_projects", func() error {
		// seq breaks start_date ties by insertion order
		query := `
			SELECT ` + projectColumns + `
			FROM projects
			WHERE ($1 = '' OR status = $1)
			ORDER BY start_date ASC, seq ASC
		`
		rows, err := s.db.Query(ctx, query, statusFilter)
		if err != nil {
			return backendErr(err)
		}
		defer rows.Close()

		projects = []model.Project{}
		for rows.Next() {
			p, err := scanProject(rows)
			if err != nil {
				return backendErr(err)
			}
			projects = append(projects, *p)
		}
		if err := rows.Err(); err != nil {
			return backendErr(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to list projects", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

func (s *Store) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var project *model.Project
	err := s.run("get_project", func() error {
		query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
		p, err := scanProject(s.db.QueryRow(ctx, query, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return backendErr(err)
		}
		project = p
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to get project", zap.String("project_id", id), zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (s *Store) CreateProject(ctx context.Context, p model.Project) (*model.Project, error) {
	err := s.run("create_project", func() error {
		query := `
			INSERT INTO projects (name, description, start_date, end_date,
			                      project_owner, project_manager, impact_owner, status, priority)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`
		err := s.db.QueryRow(ctx, query,
			p.Name,
			p.Description,
			p.StartDate,
			p.EndDate,
			p.ProjectOwner,
			p.ProjectManager,
			p.ImpactOwner,
			p.Status,
			p.Priority,
		).Scan(&p.ID)
		if err != nil {
			return backendErr(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to insert project", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Project inserted successfully",
		zap.String("project_id", p.ID),
		zap.String("name", p.Name),
	)
	return &p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, upd model.ProjectUpdate) (*model.Project, error) {
	set := newSetClause()
	set.add("name", upd.Name)
	set.add("description", upd.Description)
	set.add("start_date", upd.StartDate)
	set.add("end_date", upd.EndDate)
	set.add("project_owner", upd.ProjectOwner)
	set.add("project_manager", upd.ProjectManager)
	set.add("impact_owner", upd.ImpactOwner)
	set.add("status", upd.Status)
	set.addInt("priority", upd.Priority)

	var project *model.Project
	err := s.run("update_project", func() error {
		var row pgx.Row
		if set.empty() {
			// nothing to merge, but the caller still expects NotFound on
			// an unknown id
			row = s.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
		} else {
			query := fmt.Sprintf(
				`UPDATE projects SET %s WHERE id = $%d RETURNING `+projectColumns,
				set.clause(), set.next(),
			)
			row = s.db.QueryRow(ctx, query, set.args(id)...)
		}

		p, err := scanProject(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrNotFound
		}
		if err != nil {
			return backendErr(err)
		}
		project = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project and cascades to its activities, its
// milestones, and every dependency touching one of those activities. The
// owned activity ids are snapshotted before any row is deleted, and the
// whole cascade commits atomically.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	err := s.run("delete_project", func() error {
		tx, err := s.db.Begin(ctx)
		if err != nil {
			return backendErr(err)
		}
		defer tx.Rollback(ctx)

		rows, err := tx.Query(ctx, `SELECT id FROM activities WHERE project_id = $1`, id)
		if err != nil {
			return backendErr(err)
		}
		var activityIDs []string
		for rows.Next() {
			var aid string
			if err := rows.Scan(&aid); err != nil {
				rows.Close()
				return backendErr(err)
			}
			activityIDs = append(activityIDs, aid)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return backendErr(err)
		}

		deps, err := tx.Exec(ctx,
			`DELETE FROM dependencies WHERE from_activity_id = ANY($1) OR to_activity_id = ANY($1)`,
			activityIDs,
		)
		if err != nil {
			return backendErr(err)
		}
		milestones, err := tx.Exec(ctx, `DELETE FROM milestones WHERE project_id = $1`, id)
		if err != nil {
			return backendErr(err)
		}
		activities, err := tx.Exec(ctx, `DELETE FROM activities WHERE project_id = $1`, id)
		if err != nil {
			return backendErr(err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
			return backendErr(err)
		}

		if err := tx.Commit(ctx); err != nil {
			return backendErr(err)
		}

		metrics.AddCascadeDeletes("dependency", int(deps.RowsAffected()))
		metrics.AddCascadeDeletes("milestone", int(milestones.RowsAffected()))
		metrics.AddCascadeDeletes("activity", int(activities.RowsAffected()))

		s.logger.Info("Project deleted",
			zap.String("project_id", id),
			zap.Int64("cascaded_activities", activities.RowsAffected()),
			zap.Int64("cascaded_milestones", milestones.RowsAffected()),
			zap.Int64("cascaded_dependencies", deps.RowsAffected()),
		)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to delete project", zap.String("project_id", id), zap.Error(err))
	}
	return err
}
