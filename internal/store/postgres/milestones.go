package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfoliokollen/internal/model"
	"portfoliokollen/internal/store"
)

const milestoneColumns = `id, project_id, name, decision_type, date, status`

func scanMilestone(row pgx.Row) (*model.Milestone, error) {
	var m model.Milestone
	err := row.Scan(
		&m.ID,
		&m.ProjectID,
		&m.Name,
		&m.DecisionType,
		&m.Date,
		&m.Status,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) ListMilestones(ctx context.Context, projectID string) ([]model.Milestone, error) {
	var milestones []model.Milestone
	err := s.run("list_milestones", func() error {
		query := `
			SELECT ` + milestoneColumns + `
			FROM milestones
			WHERE project_id = $1
			ORDER BY date ASC, seq ASC
		`
		rows, err := s.db.Query(ctx, query, projectID)
		if err != nil {
			return backendErr(err)
		}
		defer rows.Close()

		milestones = []model.Milestone{}
		for rows.Next() {
			m, err := scanMilestone(rows)
			if err != nil {
				return backendErr(err)
			}
			milestones = append(milestones, *m)
		}
		if err := rows.Err(); err != nil {
			return backendErr(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to list milestones",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return nil, err
	}
	return milestones, nil
}

func (s *Store) GetMilestone(ctx context.Context, id string) (*model.Milestone, error) {
	var milestone *model.Milestone
	err := s.run("get_milestone", func() error {
		query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = $1`
		m, err := scanMilestone(s.db.QueryRow(ctx, query, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return backendErr(err)
		}
		milestone = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *Store) CreateMilestone(ctx context.Context, m model.Milestone) (*model.Milestone, error) {
	err := s.run("create_milestone", func() error {
		query := `
			INSERT INTO milestones (project_id, name, decision_type, date, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err := s.db.QueryRow(ctx, query,
			m.ProjectID,
			m.Name,
			m.DecisionType,
			m.Date,
			m.Status,
		).Scan(&m.ID)
		if err != nil {
			return backendErr(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to insert milestone",
			zap.String("project_id", m.ProjectID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Milestone inserted successfully",
		zap.String("milestone_id", m.ID),
		zap.String("project_id", m.ProjectID),
	)
	return &m, nil
}

func (s *Store) UpdateMilestone(ctx context.Context, id string, upd model.MilestoneUpdate) (*model.Milestone, error) {
	set := newSetClause()
	set.add("name", upd.Name)
	set.add("decision_type", upd.DecisionType)
	set.add("date", upd.Date)
	set.add("status", upd.Status)

	var milestone *model.Milestone
	err := s.run("update_milestone", func() error {
		var row pgx.Row
		if set.empty() {
			row = s.db.QueryRow(ctx, `SELECT `+milestoneColumns+` FROM milestones WHERE id = $1`, id)
		} else {
			query := fmt.Sprintf(
				`UPDATE milestones SET %s WHERE id = $%d RETURNING `+milestoneColumns,
				set.clause(), set.next(),
			)
			row = s.db.QueryRow(ctx, query, set.args(id)...)
		}

		m, err := scanMilestone(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrNotFound
		}
		if err != nil {
			return backendErr(err)
		}
		milestone = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *Store) DeleteMilestone(ctx context.Context, id string) error {
	err := s.run("delete_milestone", func() error {
		if _, err := s.db.Exec(ctx, `DELETE FROM milestones WHERE id = $1`, id); err != nil {
			return backendErr(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to delete milestone", zap.String("milestone_id", id), zap.Error(err))
	}
	return err
}
