package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/minired/internal/client/models"
)

const (
	DefaultPerPage = 10

	// myPostsPageSize and myPostsMaxPages bound the feed walk of MyPosts.
	myPostsPageSize = 50
	myPostsMaxPages = 20
)

// PostAPI is the part of the backend client PostService needs.
type PostAPI interface {
	ListPosts(ctx context.Context, page, perPage int) (*models.PostPage, error)
	CreatePost(ctx context.Context, req models.PostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, req models.PostUpdateRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, id int64) (*models.LikeResult, error)
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, postID int64, content string) (*models.Comment, error)
}

// PostService defines the feed operations of the CLI.
//
// Contract:
//   - Feed: one page of posts, newest first.
//   - MyPosts: the posts written by userID.
//   - Create/Edit/Delete: manage own posts; content is trimmed and required.
//     Edit keeps the image when image is nil and removes it when it is blank.
//   - ToggleLike: like or unlike a post.
//   - Comments/AddComment: read and write the comments of a post.
//
// Failures of the backend are returned as *ActionError.
type PostService interface {
	Feed(ctx context.Context, page, perPage int) (*models.PostPage, error)
	MyPosts(ctx context.Context, userID int64) ([]models.Post, error)
	Create(ctx context.Context, content, image string) (*models.Post, error)
	Edit(ctx context.Context, id int64, content string, image *string) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, id int64) (*models.LikeResult, error)
	Comments(ctx context.Context, id int64) ([]models.Comment, error)
	AddComment(ctx context.Context, id int64, content string) (*models.Comment, error)
}

type postService struct {
	api PostAPI
}

func NewPostService(api PostAPI) PostService {
	return &postService{api: api}
}

func (s *postService) Feed(ctx context.Context, page, perPage int) (*models.PostPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	p, err := s.api.ListPosts(ctx, page, perPage)
	if err != nil {
		return nil, actionError(err, "could not load posts")
	}
	return p, nil
}

func (s *postService) MyPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	if userID <= 0 {
		return nil, ErrInvalidID
	}

	var mine []models.Post
	for page := 1; page <= myPostsMaxPages; page++ {
		p, err := s.api.ListPosts(ctx, page, myPostsPageSize)
		if err != nil {
			return nil, actionError(err, "could not load posts")
		}
		for _, post := range p.Posts {
			if post.Author.ID == userID {
				mine = append(mine, post)
			}
		}
		if page >= p.Pages {
			break
		}
	}
	return mine, nil
}

func (s *postService) Create(ctx context.Context, content, image string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	p, err := s.api.CreatePost(ctx, models.PostRequest{Content: content, Image: strings.TrimSpace(image)})
	if err != nil {
		return nil, actionError(err, "could not create post")
	}
	return p, nil
}

func (s *postService) Edit(ctx context.Context, id int64, content string, image *string) (*models.Post, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	req := models.PostUpdateRequest{Content: content}
	if image != nil {
		trimmed := strings.TrimSpace(*image)
		req.Image = &trimmed
	}
	p, err := s.api.UpdatePost(ctx, id, req)
	if err != nil {
		return nil, actionError(err, "could not update post")
	}
	return p, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.api.DeletePost(ctx, id); err != nil {
		return actionError(err, "could not delete post")
	}
	return nil
}

func (s *postService) ToggleLike(ctx context.Context, id int64) (*models.LikeResult, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	r, err := s.api.ToggleLike(ctx, id)
	if err != nil {
		return nil, actionError(err, "could not like post")
	}
	return r, nil
}

func (s *postService) Comments(ctx context.Context, id int64) ([]models.Comment, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	c, err := s.api.ListComments(ctx, id)
	if err != nil {
		return nil, actionError(err, "could not load comments")
	}
	return c, nil
}

func (s *postService) AddComment(ctx context.Context, id int64, content string) (*models.Comment, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	c, err := s.api.CreateComment(ctx, id, content)
	if err != nil {
		return nil, actionError(err, "could not add comment")
	}
	return c, nil
}
