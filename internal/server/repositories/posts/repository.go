package posts

import (
	"context"

	"github.com/dmitrijs2005/minired/internal/server/models"
)

type Repository interface {
	// List returns posts newest first with author and counters filled in.
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	// Update changes the non-nil fields.
	Update(ctx context.Context, id int64, content, image *string) error
	Delete(ctx context.Context, id int64) error
}
