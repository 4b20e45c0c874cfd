// Package httpapi exposes the user and post services as the REST API the
// client talks to.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/minired/internal/logging"
	"github.com/dmitrijs2005/minired/internal/server/models"
)

const shutdownTimeout = 5 * time.Second

// UserService is the account part of the backend.
type UserService interface {
	Register(ctx context.Context, username, email, password, bio string) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Profile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, bio, profilePic *string) (*models.User, error)
	Authenticate(token string) (int64, error)
}

// PostService is the feed part of the backend.
type PostService interface {
	List(ctx context.Context, page, perPage int) (*models.PostPage, error)
	Create(ctx context.Context, userID int64, content, image string) (*models.Post, error)
	Update(ctx context.Context, userID, postID int64, content, image *string) (*models.Post, error)
	Delete(ctx context.Context, userID, postID int64) error
	ToggleLike(ctx context.Context, userID, postID int64) (bool, int, error)
	Comments(ctx context.Context, postID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, userID, postID int64, content string) (*models.Comment, error)
}

type Server struct {
	address       string
	users         UserService
	posts         PostService
	logger        logging.Logger
	allowedOrigin string
}

func NewServer(addr string, l logging.Logger, us UserService, ps PostService, allowedOrigin string) *Server {
	return &Server{
		address:       addr,
		logger:        l.With("module", "http_server"),
		users:         us,
		posts:         ps,
		allowedOrigin: allowedOrigin,
	}
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	return nil
}
