package primary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"resumemash/internal/models"
	"resumemash/internal/store"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	id, err := s.insertReturningID(ctx,
		`INSERT INTO users (username, role, first_name, last_name, email) VALUES (?, ?, ?, ?, ?)`,
		user.Username, user.Role, user.FirstName, user.LastName, user.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicate
		}
		return fmt.Errorf("insert user %q: %w", user.Username, err)
	}
	user.ID = id
	return nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, s.rebind(
		`SELECT id, username, role, first_name, last_name, email, created_at FROM users WHERE id = ?`), id))
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, s.rebind(
		`SELECT id, username, role, first_name, last_name, email, created_at FROM users WHERE username = ?`), username))
}

func (s *Store) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Role, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user row: %w", err)
	}
	return &u, nil
}
