package services

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/minired/internal/common"
	"github.com/dmitrijs2005/minired/internal/dbx"
	"github.com/dmitrijs2005/minired/internal/server/config"
	"github.com/dmitrijs2005/minired/internal/server/models"
	"github.com/dmitrijs2005/minired/internal/server/repositories/comments"
	"github.com/dmitrijs2005/minired/internal/server/repositories/likes"
	"github.com/dmitrijs2005/minired/internal/server/repositories/posts"
	"github.com/dmitrijs2005/minired/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// memStore backs every fake repository. Transactions are not simulated; the
// sqlmock database only records Begin/Commit/Rollback.
type memStore struct {
	users     []models.User
	posts     []models.Post
	likes     map[[2]int64]bool
	comments  []models.Comment
	nextID    int64
	fail      error
	createErr error // returned by the user insert, past the uniqueness checks
	listed    int
}

func newMemStore() *memStore {
	return &memStore{likes: map[[2]int64]bool{}}
}

func (m *memStore) id() int64 { m.nextID++; return m.nextID }

func (m *memStore) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memStore) Users(dbx.DBTX) users.Repository              { return memUsers{m} }
func (m *memStore) Posts(dbx.DBTX) posts.Repository              { return memPosts{m} }
func (m *memStore) Likes(dbx.DBTX) likes.Repository              { return memLikes{m} }
func (m *memStore) Comments(dbx.DBTX) comments.Repository        { return memComments{m} }

type memUsers struct{ m *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if r.m.fail != nil {
		return nil, r.m.fail
	}
	if r.m.createErr != nil {
		return nil, r.m.createErr
	}
	u.ID = r.m.id()
	u.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r.m.users = append(r.m.users, *u)
	return u, nil
}

func (r memUsers) find(match func(models.User) bool) (*models.User, error) {
	if r.m.fail != nil {
		return nil, r.m.fail
	}
	i := slices.IndexFunc(r.m.users, match)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	u := r.m.users[i]
	return &u, nil
}

func (r memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r memUsers) GetByUsername(_ context.Context, name string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == name })
}

func (r memUsers) UsernameTaken(ctx context.Context, name string) (bool, error) {
	_, err := r.GetByUsername(ctx, name)
	return err == nil, ignoreNotFound(err)
}

func (r memUsers) EmailTaken(_ context.Context, email string) (bool, error) {
	_, err := r.find(func(u models.User) bool { return u.Email == email })
	return err == nil, ignoreNotFound(err)
}

func (r memUsers) UpdateProfile(_ context.Context, id int64, bio, pic *string) (*models.User, error) {
	i := slices.IndexFunc(r.m.users, func(u models.User) bool { return u.ID == id })
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	if bio != nil {
		r.m.users[i].Bio = *bio
	}
	if pic != nil {
		r.m.users[i].ProfilePic = *pic
	}
	u := r.m.users[i]
	return &u, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	return err
}

type memPosts struct{ m *memStore }

func (r memPosts) fill(p models.Post) models.Post {
	if i := slices.IndexFunc(r.m.users, func(u models.User) bool { return u.ID == p.UserID }); i >= 0 {
		p.Author = models.Author{ID: p.UserID, Username: r.m.users[i].Username, ProfilePic: r.m.users[i].ProfilePic}
	}
	p.LikesCount = 0
	for k := range r.m.likes {
		if k[1] == p.ID {
			p.LikesCount++
		}
	}
	p.CommentsCount = 0
	for _, c := range r.m.comments {
		if c.PostID == p.ID {
			p.CommentsCount++
		}
	}
	return p
}

func (r memPosts) List(_ context.Context, limit, offset int) ([]models.Post, error) {
	if r.m.fail != nil {
		return nil, r.m.fail
	}
	if offset < 0 {
		return nil, errors.New("negative offset")
	}
	r.m.listed++
	out := []models.Post{}
	for i := len(r.m.posts) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.fill(r.m.posts[i]))
	}
	return out, nil
}

func (r memPosts) Count(context.Context) (int, error) {
	if r.m.fail != nil {
		return 0, r.m.fail
	}
	return len(r.m.posts), nil
}

func (r memPosts) Get(_ context.Context, id int64) (*models.Post, error) {
	if r.m.fail != nil {
		return nil, r.m.fail
	}
	i := slices.IndexFunc(r.m.posts, func(p models.Post) bool { return p.ID == id })
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	p := r.fill(r.m.posts[i])
	return &p, nil
}

func (r memPosts) Create(_ context.Context, p *models.Post) (*models.Post, error) {
	p.ID = r.m.id()
	r.m.posts = append(r.m.posts, *p)
	return p, nil
}

func (r memPosts) Update(_ context.Context, id int64, content, image *string) error {
	i := slices.IndexFunc(r.m.posts, func(p models.Post) bool { return p.ID == id })
	if i < 0 {
		return common.ErrorNotFound
	}
	if content != nil {
		r.m.posts[i].Content = *content
	}
	if image != nil {
		r.m.posts[i].Image = *image
	}
	return nil
}

func (r memPosts) Delete(_ context.Context, id int64) error {
	n := len(r.m.posts)
	r.m.posts = slices.DeleteFunc(r.m.posts, func(p models.Post) bool { return p.ID == id })
	if len(r.m.posts) == n {
		return common.ErrorNotFound
	}
	return nil
}

type memLikes struct{ m *memStore }

func (r memLikes) Exists(_ context.Context, userID, postID int64) (bool, error) {
	if r.m.fail != nil {
		return false, r.m.fail
	}
	return r.m.likes[[2]int64{userID, postID}], nil
}

func (r memLikes) Add(_ context.Context, userID, postID int64) error {
	r.m.likes[[2]int64{userID, postID}] = true
	return nil
}

func (r memLikes) Remove(_ context.Context, userID, postID int64) error {
	delete(r.m.likes, [2]int64{userID, postID})
	return nil
}

func (r memLikes) CountByPost(_ context.Context, postID int64) (int, error) {
	n := 0
	for k := range r.m.likes {
		if k[1] == postID {
			n++
		}
	}
	return n, nil
}

type memComments struct{ m *memStore }

func (r memComments) ListByPost(_ context.Context, postID int64) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range r.m.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memComments) Create(_ context.Context, c *models.Comment) (*models.Comment, error) {
	c.ID = r.m.id()
	r.m.comments = append(r.m.comments, *c)
	return c, nil
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}
}
