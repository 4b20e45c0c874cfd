package comments

import (
	"context"

	"github.com/dmitrijs2005/minired/internal/server/models"
)

type Repository interface {
	// ListByPost returns the comments of a post oldest first.
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
}
