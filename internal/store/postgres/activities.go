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

const activityColumns = `id, project_id, name, description, start_date, end_date, status, responsible`

func scanActivity(row pgx.Row) (*model.Activity, error) {
	var a model.Activity
	err := row.Scan(
		&a.ID,
		&a.ProjectID,
		&a.Name,
		&a.Description,
		&a.StartDate,
		&a.EndDate,
		&a.Status,
		&a.Responsible,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ListActivities(ctx context.Context, projectID string) ([]model.Activity, error) {
	var activities []model.Activity
	err := s.run("list_activities", func() error {
		query := `
			SELECT ` + activityColumns + `
			FROM activities
			WHERE project_id = $1
			ORDER BY start_date ASC, seq ASC
		`
		rows, err := s.db.Query(ctx, query, projectID)
		if err != nil {
			return backendErr(err)
		}
		defer rows.Close()

		activities = []model.Activity{}
		for rows.Next() {
			a, err := scanActivity(rows)
			if err != nil {
				return backendErr(err)
			}
			activities = append(activities, *a)
		}
		if err := rows.Err(); err != nil {
			return backendErr(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to list activities",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return nil, err
	}
	return activities, nil
}

func (s *Store) GetActivity(ctx context.Context, id string) (*model.Activity, error) {
	var activity *model.Activity
	err := s.run("get_activity", func() error {
		query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
		a, err := scanActivity(s.db.QueryRow(ctx, query, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return backendErr(err)
		}
		activity = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *Store) CreateActivity(ctx context.Context, a model.Activity) (*model.Activity, error) {
	err := s.run("create_activity", func() error {
		query := `
			INSERT INTO activities (project_id, name, description, start_date, end_date, status, responsible)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		err := s.db.QueryRow(ctx, query,
			a.ProjectID,
			a.Name,
			a.Description,
			a.StartDate,
			a.EndDate,
			a.Status,
			a.Responsible,
		).Scan(&a.ID)
		if err != nil {
			return backendErr(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to insert activity",
			zap.String("project_id", a.ProjectID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Activity inserted successfully",
		zap.String("activity_id", a.ID),
		zap.String("project_id", a.ProjectID),
	)
	return &a, nil
}

func (s *Store) UpdateActivity(ctx context.Context, id string, upd model.ActivityUpdate) (*model.Activity, error) {
	set := newSetClause()
	set.add("name", upd.Name)
	set.add("description", upd.Description)
	set.add("start_date", upd.StartDate)
	set.add("end_date", upd.EndDate)
	set.add("status", upd.Status)
	set.add("responsible", upd.Responsible)

	var activity *model.Activity
	err := s.run("update_activity", func() error {
		var row pgx.Row
		if set.empty() {
			row = s.db.QueryRow(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1`, id)
		} else {
			query := fmt.Sprintf(
				`UPDATE activities SET %s WHERE id = $%d RETURNING `+activityColumns,
				set.clause(), set.next(),
			)
			row = s.db.QueryRow(ctx, query, set.args(id)...)
		}

		a, err := scanActivity(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrNotFound
		}
		if err != nil {
			return backendErr(err)
		}
		activity = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// DeleteActivity removes the activity and every dependency with it as
// either endpoint, atomically.
func (s *Store) DeleteActivity(ctx context.Context, id string) error {
	err := s.run("delete_activity", func() error {
		tx, err := s.db.Begin(ctx)
		if err != nil {
			return backendErr(err)
		}
		defer tx.Rollback(ctx)

		deps, err := tx.Exec(ctx,
			`DELETE FROM dependencies WHERE from_activity_id = $1 OR to_activity_id = $1`, id)
		if err != nil {
			return backendErr(err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id); err != nil {
			return backendErr(err)
		}

		if err := tx.Commit(ctx); err != nil {
			return backendErr(err)
		}

		metrics.AddCascadeDeletes("dependency", int(deps.RowsAffected()))
		s.logger.Info("Activity deleted",
			zap.String("activity_id", id),
			zap.Int64("cascaded_dependencies", deps.RowsAffected()),
		)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to delete activity", zap.String("activity_id", id), zap.Error(err))
	}
	return err
}
