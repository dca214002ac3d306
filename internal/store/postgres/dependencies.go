package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfoliokollen/internal/model"
)

func (s *Store) ListDependenciesForActivities(ctx context.Context, activityIDs []string) ([]model.Dependency, error) {
	if len(activityIDs) == 0 {
		return []model.Dependency{}, nil
	}

	var dependencies []model.Dependency
	err := s.run("list_dependencies", func() error {
		query := `
			SELECT id, from_activity_id, to_activity_id, type
			FROM dependencies
			WHERE from_activity_id = ANY($1) OR to_activity_id = ANY($1)
		`
		rows, err := s.db.Query(ctx, query, activityIDs)
		if err != nil {
			return backendErr(err)
		}
		defer rows.Close()

		dependencies = []model.Dependency{}
		for rows.Next() {
			var d model.Dependency
			if err := rows.Scan(&d.ID, &d.FromActivityID, &d.ToActivityID, &d.Type); err != nil {
				return backendErr(err)
			}
			dependencies = append(dependencies, d)
		}
		if err := rows.Err(); err != nil {
			return backendErr(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to list dependencies",
			zap.Int("activity_count", len(activityIDs)),
			zap.Error(err),
		)
		return nil, err
	}
	return dependencies, nil
}

func (s *Store) GetDependency(ctx context.Context, id string) (*model.Dependency, error) {
	var dependency *model.Dependency
	err := s.run("get_dependency", func() error {
		query := `SELECT id, from_activity_id, to_activity_id, type FROM dependencies WHERE id = $1`
		var d model.Dependency
		err := s.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.FromActivityID, &d.ToActivityID, &d.Type)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return backendErr(err)
		}
		dependency = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dependency, nil
}

// CreateDependency persists the edge as given. Endpoint existence is not
// checked here; that is the relaxed remote backend behavior the rest of
// the system expects.
func (s *Store) CreateDependency(ctx context.Context, d model.Dependency) (*model.Dependency, error) {
	if d.Type == "" {
		d.Type = model.DefaultDependencyType
	}

	err := s.run("create_dependency", func() error {
		query := `
			INSERT INTO dependencies (from_activity_id, to_activity_id, type)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		err := s.db.QueryRow(ctx, query,
			d.FromActivityID,
			d.ToActivityID,
			d.Type,
		).Scan(&d.ID)
		if err != nil {
			return backendErr(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to insert dependency",
			zap.String("from_activity_id", d.FromActivityID),
			zap.String("to_activity_id", d.ToActivityID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Dependency inserted successfully",
		zap.String("dependency_id", d.ID),
		zap.String("from_activity_id", d.FromActivityID),
		zap.String("to_activity_id", d.ToActivityID),
	)
	return &d, nil
}

func (s *Store) DeleteDependency(ctx context.Context, id string) error {
	err := s.run("delete_dependency", func() error {
		if _, err := s.db.Exec(ctx, `DELETE FROM dependencies WHERE id = $1`, id); err != nil {
			return backendErr(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to delete dependency", zap.String("dependency_id", id), zap.Error(err))
	}
	return err
}
