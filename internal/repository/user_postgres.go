package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"appmart/internal/model"
)

// uniqueViolation is the SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// GetUser retrieves a user by id.
func (s *PostgresStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	query := `
		SELECT id, username, password
		FROM users
		WHERE id = $1
	`

	var u model.User
	err := s.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error().Err(err).Int("user_id", id).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// GetUserByUsername retrieves a user by username. Used for login lookup and
// for surfacing a friendly duplicate-registration message.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, password
		FROM users
		WHERE username = $1
	`

	var u model.User
	err := s.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("username", username).Msg("failed to query user by username")
		return nil, fmt.Errorf("failed to query user by username: %w", err)
	}

	return &u, nil
}

// CreateUser inserts a new user. The unique index on username enforces
// uniqueness; a violation surfaces as model.ErrUsernameTaken.
func (s *PostgresStore) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id
	`

	err := s.pool.QueryRow(ctx, query, user.Username, user.Password).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, model.ErrUsernameTaken
		}
		s.logger.Error().Err(err).Str("username", user.Username).Msg("failed to create user")
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Debug().Int("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}
