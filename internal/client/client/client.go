package client

import (
	"context"

	"github.com/dmitrijs2005/minired/internal/client/models"
)

// Client is the backend API used by the session gateway and the services.
type Client interface {
	SetToken(token string)
	ClearToken()
	Token() string

	Ping(ctx context.Context) error
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)

	ListPosts(ctx context.Context, page, perPage int) (*models.PostPage, error)
	CreatePost(ctx context.Context, req models.PostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, req models.PostUpdateRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, id int64) (*models.LikeResult, error)
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, postID int64, content string) (*models.Comment, error)
}

var _ Client = (*HTTPClient)(nil)
