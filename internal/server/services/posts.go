package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/minired/internal/common"
	"github.com/dmitrijs2005/minired/internal/dbx"
	"github.com/dmitrijs2005/minired/internal/server/models"
	"github.com/dmitrijs2005/minired/internal/server/repositories/repomanager"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PostService implements the feed: posts, likes and comments.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// List returns one page of the feed, newest first. Out of range paging
// values fall back to the defaults; a page past the end is empty.
func (s *PostService) List(ctx context.Context, page, perPage int) (*models.PostPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	perPage = min(perPage, MaxPerPage)

	repo := s.repomanager.Posts(s.db)

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting posts: %w", err)
	}

	result := &models.PostPage{
		Posts:       []models.Post{},
		Total:       total,
		Pages:       (total + perPage - 1) / perPage,
		CurrentPage: page,
	}
	// page is client controlled; past the end there is nothing to fetch and
	// the offset could overflow.
	if page > result.Pages {
		return result, nil
	}

	posts, err := repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	result.Posts = posts
	return result, nil
}

func (s *PostService) Create(ctx context.Context, userID int64, content, image string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errContentRequired
	}

	repo := s.repomanager.Posts(s.db)
	p, err := repo.Create(ctx, &models.Post{UserID: userID, Content: content, Image: image})
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return s.get(ctx, p.ID)
}

// Update changes the non-nil fields of a post owned by userID.
func (s *PostService) Update(ctx context.Context, userID, postID int64, content, image *string) (*models.Post, error) {
	if content != nil && strings.TrimSpace(*content) == "" {
		return nil, errContentRequired
	}
	if _, err := s.owned(ctx, userID, postID); err != nil {
		return nil, err
	}

	if err := s.repomanager.Posts(s.db).Update(ctx, postID, content, image); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errPostNotFound
		}
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return s.get(ctx, postID)
}

func (s *PostService) Delete(ctx context.Context, userID, postID int64) error {
	if _, err := s.owned(ctx, userID, postID); err != nil {
		return err
	}
	if err := s.repomanager.Posts(s.db).Delete(ctx, postID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return errPostNotFound
		}
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}

// ToggleLike likes the post for userID, or takes the like back when there is
// one. It reports the new state and the like count.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID int64) (liked bool, count int, err error) {
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Posts(tx).Get(ctx, postID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return errPostNotFound
			}
			return err
		}

		likes := s.repomanager.Likes(tx)
		exists, err := likes.Exists(ctx, userID, postID)
		if err != nil {
			return err
		}
		if exists {
			err = likes.Remove(ctx, userID, postID)
		} else {
			err = likes.Add(ctx, userID, postID)
		}
		if err != nil {
			return err
		}
		liked = !exists

		count, err = likes.CountByPost(ctx, postID)
		return err
	})
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return false, 0, err
		}
		return false, 0, fmt.Errorf("error toggling like: %w", err)
	}
	return liked, count, nil
}

// Comments returns the comments of a post, oldest first.
func (s *PostService) Comments(ctx context.Context, postID int64) ([]models.Comment, error) {
	if _, err := s.get(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.repomanager.Comments(s.db).ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	return comments, nil
}

func (s *PostService) AddComment(ctx context.Context, userID, postID int64, content string) (*models.Comment, error) {
	if _, err := s.get(ctx, postID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, errCommentRequired
	}

	author, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	c, err := s.repomanager.Comments(s.db).Create(ctx, &models.Comment{PostID: postID, UserID: userID, Content: content})
	if err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}
	c.Author = models.Author{ID: author.ID, Username: author.Username, ProfilePic: author.ProfilePic}
	return c, nil
}

func (s *PostService) get(ctx context.Context, postID int64) (*models.Post, error) {
	p, err := s.repomanager.Posts(s.db).Get(ctx, postID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errPostNotFound
		}
		return nil, fmt.Errorf("error loading post: %w", err)
	}
	return p, nil
}

func (s *PostService) owned(ctx context.Context, userID, postID int64) (*models.Post, error) {
	p, err := s.get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, errNotPostOwner
	}
	return p, nil
}
