package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/minired/internal/client/models"
)

func (c *HTTPClient) Ping(ctx context.Context) error {
	var out models.HealthResponse
	return c.do(ctx, call{method: http.MethodGet, path: "/health", out: &out})
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   models.LoginRequest{Username: username, Password: password},
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, call{method: http.MethodPost, path: "/auth/register", body: req, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile is the whoami call: it returns the user owning the current token.
func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	err := c.do(ctx, call{method: http.MethodGet, path: "/auth/profile", out: &out, authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var out models.ProfileResponse
	err := c.do(ctx, call{method: http.MethodPut, path: "/auth/profile", body: req, out: &out, authenticated: true})
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}
