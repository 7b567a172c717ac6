package dbhelper

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ray-remotestate/foodcourt/models"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// IsUserExists reports whether a user already holds the username or the
// email, both matched case-insensitively.
func (s *UserStore) IsUserExists(ctx context.Context, username, email string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users
		WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($2)`,
		username, email).Scan(&count)
	return count > 0, err
}

func (s *UserStore) CreateUser(ctx context.Context, username, email, hashedPassword string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id`,
		username, email, hashedPassword).Scan(&id)
	return id, err
}

// GetUserByEmail returns the user record including the password hash so the
// caller can verify credentials. Missing users map to models.ErrNotFound.
func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password, created_at FROM users
		WHERE LOWER(email) = LOWER($1)`, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}
