package likes

import "context"

type Repository interface {
	Exists(ctx context.Context, userID, postID int64) (bool, error)
	Add(ctx context.Context, userID, postID int64) error
	Remove(ctx context.Context, userID, postID int64) error
	CountByPost(ctx context.Context, postID int64) (int, error)
}
