// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, access tokens and profiles.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/minired/internal/common"
	"github.com/dmitrijs2005/minired/internal/dbx"
	"github.com/dmitrijs2005/minired/internal/server/auth"
	"github.com/dmitrijs2005/minired/internal/server/config"
	"github.com/dmitrijs2005/minired/internal/server/models"
	"github.com/dmitrijs2005/minired/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/minired/internal/server/repositories/users"
)

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a user and returns it with a fresh access token. The
// uniqueness checks and the insert share one transaction.
func (s *UserService) Register(ctx context.Context, username, email, password, bio string) (*models.User, string, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, "", errMissingFields
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		taken, err := repo.UsernameTaken(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return errUsernameTaken
		}
		taken, err = repo.EmailTaken(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return errEmailTaken
		}

		// A concurrent registration can still win the race past the checks.
		user, err = repo.Create(ctx, &models.User{Username: username, Email: email, PasswordHash: hash, Bio: bio})
		switch {
		case errors.Is(err, users.ErrEmailExists):
			return errEmailTaken
		case errors.Is(err, users.ErrUsernameExists):
			return errUsernameTaken
		}
		return err
	})
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and returns the user with a fresh access token.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, "", errMissingCredentials
	}

	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", fmt.Errorf("error loading user: %w", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, "", fmt.Errorf("error checking password: %w", err)
	}
	if !ok {
		return nil, "", errInvalidCredentials
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the non-nil fields and returns the stored user.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, bio, profilePic *string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).UpdateProfile(ctx, userID, bio, profilePic)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}

// Authenticate resolves an access token to its owner.
func (s *UserService) Authenticate(token string) (int64, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *UserService) generateAccessToken(userID int64) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return token, nil
}
