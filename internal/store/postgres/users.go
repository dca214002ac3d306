package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"portfoliokollen/internal/model"
)

// CreateUser inserts a user account; the unique index on email rejects
// duplicates.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	return s.run("create_user", func() error {
		query := `
			INSERT INTO users (email, password_hash, created_at)
			VALUES ($1, $2, NOW())
			RETURNING id, created_at
		`
		err := s.db.QueryRow(ctx, query, u.Email, u.PasswordHash).Scan(&u.ID, &u.CreatedAt)
		if err != nil {
			return backendErr(err)
		}
		return nil
	})
}

// FindUserByEmail returns (nil, nil) when no account matches.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User
	err := s.run("find_user", func() error {
		query := `
			SELECT id, email, password_hash, created_at
			FROM users
			WHERE email = $1
		`
		var u model.User
		err := s.db.QueryRow(ctx, query, email).Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return backendErr(err)
		}
		user = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
