package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/minired/internal/client/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

// fakeBackend serves canned answers per "METHOD /path" and records requests.
type fakeBackend struct {
	mu       sync.Mutex
	requests []recorded
	routes   map[string]func(w http.ResponseWriter)
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	fb := &fakeBackend{routes: map[string]func(w http.ResponseWriter){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.requests = append(fb.requests, recorded{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
			body:   b,
		})
		h, ok := fb.routes[r.Method+" "+r.URL.Path]
		fb.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no route"})
			return
		}
		h(w)
	}))
	t.Cleanup(srv.Close)
	return fb, srv
}

func (fb *fakeBackend) on(route string, status int, body any) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[route] = func(w http.ResponseWriter) { writeJSON(w, status, body) }
}

func (fb *fakeBackend) last() recorded {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.requests[len(fb.requests)-1]
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	c := NewHTTPClient("")
	assert.Equal(t, "http://localhost:5000/api", c.BaseURL())
	assert.Equal(t, defaultTimeout, c.timeout)

	c = NewHTTPClient("http://h/api/", WithTimeout(time.Second))
	assert.Equal(t, "http://h/api", c.BaseURL())
	assert.Equal(t, time.Second, c.timeout)
}

func TestLogin_SendsCredentialsWithoutToken(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.on("POST /api/auth/login", http.StatusOK, map[string]any{
		"message":      "Login successful",
		"access_token": "tok-1",
		"user":         map[string]any{"id": 1, "username": "alice", "email": "a@x.com"},
	})

	c := NewHTTPClient(srv.URL + "/api")
	resp, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.AccessToken)
	assert.Equal(t, "alice", resp.User.Username)

	req := fb.last()
	assert.Empty(t, req.header.Get("Authorization"))
	assert.Equal(t, "application/json", req.header.Get("Accept"))
	assert.Equal(t, "application/json", req.header.Get("Content-Type"))
	_, err = uuid.Parse(req.header.Get("X-Request-ID"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","password":"pw"}`, string(req.body))
}

func TestToken_AttachedAsBearer(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.on("GET /api/auth/profile", http.StatusOK, map[string]any{"id": 2, "username": "bob", "created_at": "2024-01-01T00:00:00"})

	c := NewHTTPClient(srv.URL + "/api")
	c.SetToken("secret")
	assert.Equal(t, "secret", c.Token())

	u, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "Bearer secret", fb.last().header.Get("Authorization"))

	c.ClearToken()
	_, _ = c.Profile(context.Background())
	assert.Empty(t, fb.last().header.Get("Authorization"))
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantIs  error
		wantMsg string
	}{
		{"bad request keeps message", http.StatusBadRequest, map[string]string{"error": "Username already exists"}, nil, "Username already exists"},
		{"unauthorized", http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"}, ErrUnauthorized, "Invalid credentials"},
		{"forbidden", http.StatusForbidden, map[string]string{"error": "Unauthorized"}, ErrForbidden, "Unauthorized"},
		{"not found", http.StatusNotFound, map[string]string{"error": "User not found"}, ErrNotFound, "User not found"},
		{"bad gateway", http.StatusBadGateway, "upstream down", ErrUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, srv := newFakeBackend(t)
			fb.on("POST /api/auth/login", tt.status, tt.body)

			c := NewHTTPClient(srv.URL + "/api")
			_, err := c.Login(context.Background(), "u", "p")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, ServerMessage(err))
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestTransportFailure_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url)
	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "", ServerMessage(err))
}

func TestTimeout_IsUnavailable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := NewHTTPClient(srv.URL, WithTimeout(50*time.Millisecond))
	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCanceledContext_NotUnavailable(t *testing.T) {
	_, srv := newFakeBackend(t)
	c := NewHTTPClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Ping(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestUnauthorizedHandler(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.on("GET /api/auth/profile", http.StatusUnauthorized, map[string]string{"error": "Token has expired"})
	fb.on("POST /api/auth/login", http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})

	var got []string
	c := NewHTTPClient(srv.URL+"/api", WithUnauthorizedHandler(func(token string) {
		got = append(got, token)
	}))

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, got, "no token, no hook")

	c.SetToken("stale")
	_, err = c.Login(context.Background(), "u", "p")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, got, "login never triggers the hook")

	_, err = c.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, []string{"stale"}, got)
}

func TestUpdateProfile(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.on("PUT /api/auth/profile", http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"user":    map[string]any{"id": 1, "username": "alice", "bio": "new bio"},
	})

	c := NewHTTPClient(srv.URL + "/api")
	c.SetToken("t")
	bio := "new bio"
	u, err := c.UpdateProfile(context.Background(), models.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "new bio", u.Bio)
	assert.JSONEq(t, `{"bio":"new bio"}`, string(fb.last().body))
}

func TestPosts(t *testing.T) {
	fb, srv := newFakeBackend(t)
	fb.on("GET /api/posts", http.StatusOK, map[string]any{
		"posts":        []map[string]any{{"id": 5, "content": "hi", "author": map[string]any{"id": 1, "username": "alice"}}},
		"total":        1,
		"pages":        1,
		"current_page": 2,
	})
	fb.on("POST /api/posts", http.StatusCreated, map[string]any{"message": "Post created successfully", "post": map[string]any{"id": 6, "content": "new"}})
	fb.on("PUT /api/posts/6", http.StatusOK, map[string]any{"message": "Post updated successfully", "post": map[string]any{"id": 6, "content": "edited"}})
	fb.on("DELETE /api/posts/6", http.StatusOK, map[string]any{"message": "Post deleted successfully"})
	fb.on("POST /api/posts/5/like", http.StatusOK, map[string]any{"message": "Post liked", "likes_count": 3, "is_liked": true})
	fb.on("GET /api/posts/5/comments", http.StatusOK, map[string]any{"comments": []map[string]any{{"id": 1, "content": "nice", "user": map[string]any{"id": 2, "username": "bob"}}}})
	fb.on("POST /api/posts/5/comments", http.StatusCreated, map[string]any{"message": "Comment created successfully", "comment": map[string]any{"id": 2, "content": "thanks"}})

	c := NewHTTPClient(srv.URL + "/api")
	c.SetToken("t")
	ctx := context.Background()

	page, err := c.ListPosts(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "alice", page.Posts[0].Author.Username)
	assert.Equal(t, "page=2&per_page=10", fb.last().query)

	p, err := c.CreatePost(ctx, models.PostRequest{Content: "new"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.ID)
	assert.JSONEq(t, `{"content":"new"}`, string(fb.last().body))

	p, err = c.UpdatePost(ctx, 6, models.PostUpdateRequest{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", p.Content)
	assert.JSONEq(t, `{"content":"edited"}`, string(fb.last().body))

	noImage := ""
	_, err = c.UpdatePost(ctx, 6, models.PostUpdateRequest{Content: "edited", Image: &noImage})
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"edited","image":""}`, string(fb.last().body))

	require.NoError(t, c.DeletePost(ctx, 6))

	like, err := c.ToggleLike(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.LikeResult{Message: "Post liked", LikesCount: 3, IsLiked: true}, *like)

	comments, err := c.ListComments(ctx, 5)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "bob", comments[0].User.Username)

	cm, err := c.CreateComment(ctx, 5, "thanks")
	require.NoError(t, err)
	assert.Equal(t, int64(2), cm.ID)
	assert.JSONEq(t, `{"content":"thanks"}`, string(fb.last().body))
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	_, err := c.Profile(context.Background())
	require.ErrorContains(t, err, "decode GET /auth/profile response")
}

func TestEmptySuccessBody_IsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	u, err := c.Profile(context.Background())
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorContains(t, err, "decode GET /auth/profile response")
	assert.Nil(t, u)
}

func TestNoContent_IsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL)
	require.NoError(t, c.DeletePost(context.Background(), 7))
}
