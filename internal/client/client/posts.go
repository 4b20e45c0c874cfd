package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/minired/internal/client/models"
)

func (c *HTTPClient) ListPosts(ctx context.Context, page, perPage int) (*models.PostPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	path := "/posts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out models.PostPage
	if err := c.do(ctx, call{method: http.MethodGet, path: path, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, req models.PostRequest) (*models.Post, error) {
	var out models.PostResponse
	err := c.do(ctx, call{method: http.MethodPost, path: "/posts", body: req, out: &out, authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out.Post, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id int64, req models.PostUpdateRequest) (*models.Post, error) {
	var out models.PostResponse
	err := c.do(ctx, call{method: http.MethodPut, path: postPath(id), body: req, out: &out, authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out.Post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id int64) error {
	var out models.MessageResponse
	return c.do(ctx, call{method: http.MethodDelete, path: postPath(id), out: &out, authenticated: true})
}

func (c *HTTPClient) ToggleLike(ctx context.Context, id int64) (*models.LikeResult, error) {
	var out models.LikeResult
	err := c.do(ctx, call{method: http.MethodPost, path: postPath(id) + "/like", out: &out, authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var out models.CommentList
	if err := c.do(ctx, call{method: http.MethodGet, path: postPath(postID) + "/comments", out: &out}); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, postID int64, content string) (*models.Comment, error) {
	var out models.CommentResponse
	err := c.do(ctx, call{
		method:        http.MethodPost,
		path:          postPath(postID) + "/comments",
		body:          models.CommentRequest{Content: content},
		out:           &out,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}
	return &out.Comment, nil
}

func postPath(id int64) string {
	return fmt.Sprintf("/posts/%d", id)
}
