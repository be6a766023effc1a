package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"appmart/internal/model"
	"appmart/internal/repository"
)

// authService implements AuthService. Passwords are stored as bcrypt
// hashes, never as plaintext.
type authService struct {
	store  repository.Store
	logger zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(store repository.Store, logger zerolog.Logger) AuthService {
	return &authService{
		store:  store,
		logger: logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new account. Username uniqueness is enforced by the
// store; a duplicate surfaces as model.ErrUsernameTaken.
func (s *authService) Register(ctx context.Context, creds *model.Credentials) (model.User, error) {
	if creds == nil {
		return model.User{}, model.NewValidationError("credentials are required")
	}

	if err := model.Validate(creds); err != nil {
		s.logger.Warn().Err(err).Msg("registration payload rejected")
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, model.User{
		Username: creds.Username,
		Password: string(hash),
	})
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			s.logger.Warn().Str("username", creds.Username).Msg("username already taken")
			return model.User{}, model.ErrUsernameTaken
		}
		s.logger.Error().Err(err).Str("username", creds.Username).Msg("failed to create user")
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login verifies a username/password pair. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, creds *model.Credentials) (model.User, error) {
	if creds == nil {
		return model.User{}, model.NewValidationError("credentials are required")
	}

	if err := model.Validate(creds); err != nil {
		s.logger.Warn().Err(err).Msg("login payload rejected")
		return model.User{}, err
	}

	user, err := s.store.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", creds.Username).Msg("failed to look up user")
		return model.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		s.logger.Debug().Str("username", creds.Username).Msg("login for unknown username")
		return model.User{}, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Debug().Str("username", creds.Username).Msg("password mismatch")
			return model.User{}, model.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("username", creds.Username).Msg("failed to compare password")
		return model.User{}, fmt.Errorf("failed to verify password: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return *user, nil
}
