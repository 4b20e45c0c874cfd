package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/minired/internal/common"
	"github.com/dmitrijs2005/minired/internal/server/models"
)

// Both match common.ErrorAlreadyExists.
var (
	ErrUsernameExists = fmt.Errorf("username %w", common.ErrorAlreadyExists)
	ErrEmailExists    = fmt.Errorf("email %w", common.ErrorAlreadyExists)
)

type Repository interface {
	// Create fails with ErrUsernameExists or ErrEmailExists when the insert
	// collides with an existing user.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	// UpdateProfile changes the non-nil fields and returns the stored user.
	UpdateProfile(ctx context.Context, id int64, bio, profilePic *string) (*models.User, error)
}
