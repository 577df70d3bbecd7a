package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"yatube/domain"
)

// CreateUser inserts a user. A taken username yields domain.ErrConflict.
func (s *Store) CreateUser(ctx context.Context, username string, email *string, passwordHash []byte) (domain.User, error) {
	createdAt := time.Now().UTC()
	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO users (username, email, password, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		username, nullString(email), string(passwordHash), toMillis(createdAt),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrConflict
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return domain.User{ID: id, Username: username, Email: email, CreatedAt: fromMillis(toMillis(createdAt))}, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, _, err := s.UserCredentials(ctx, username)
	return u, err
}

// UserCredentials returns the user and its bcrypt password hash.
func (s *Store) UserCredentials(ctx context.Context, username string) (domain.User, []byte, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, password, created_at FROM users WHERE username = $1", username)
	var (
		u         domain.User
		email     sql.NullString
		password  string
		createdAt int64
	)
	if err := row.Scan(&u.ID, &u.Username, &email, &password, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, nil, domain.ErrNotFound
		}
		return domain.User{}, nil, fmt.Errorf("get user %q: %w", username, err)
	}
	if email.Valid {
		u.Email = &email.String
	}
	u.CreatedAt = fromMillis(createdAt)
	return u, []byte(password), nil
}

// DeleteUser removes the user and, by cascade, every post they wrote.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
