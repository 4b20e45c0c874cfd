package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/minired/internal/common"
	"github.com/dmitrijs2005/minired/internal/server/models"
	"github.com/dmitrijs2005/minired/internal/server/services"
)

var (
	errBoom     = errors.New("boom")
	createdAt   = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	alice       = &models.User{ID: 1, Username: "alice", Email: "alice@x.com", Bio: "hi", CreatedAt: createdAt}
	errNotFound = &services.Error{Kind: common.ErrorNotFound, Message: "post not found"}
)

type fakeUsers struct {
	tokens map[string]int64
	err    error

	gotBio, gotPic *string
}

func (f *fakeUsers) Register(_ context.Context, username, email, _, bio string) (*models.User, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return &models.User{ID: 2, Username: username, Email: email, Bio: bio, CreatedAt: createdAt}, "tok-" + username, nil
}

func (f *fakeUsers) Login(_ context.Context, username, _ string) (*models.User, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return alice, "tok-" + username, nil
}

func (f *fakeUsers) Profile(_ context.Context, userID int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := *alice
	u.ID = userID
	return &u, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, userID int64, bio, pic *string) (*models.User, error) {
	f.gotBio, f.gotPic = bio, pic
	if f.err != nil {
		return nil, f.err
	}
	u := *alice
	if bio != nil {
		u.Bio = *bio
	}
	return &u, nil
}

func (f *fakeUsers) Authenticate(token string) (int64, error) {
	if token == "expired" {
		return 0, common.ErrTokenExpired
	}
	if id, ok := f.tokens[token]; ok {
		return id, nil
	}
	return 0, common.ErrInvalidToken
}

type fakePosts struct {
	err   error
	liked bool

	gotPage, gotPerPage int
	gotUser, gotPost    int64
	gotContent          *string
}

func samplePost(id int64) models.Post {
	return models.Post{
		ID:            id,
		UserID:        1,
		Content:       "hello",
		CreatedAt:     createdAt,
		Author:        models.Author{ID: 1, Username: "alice"},
		LikesCount:    2,
		CommentsCount: 1,
	}
}

func (f *fakePosts) List(_ context.Context, page, perPage int) (*models.PostPage, error) {
	f.gotPage, f.gotPerPage = page, perPage
	if f.err != nil {
		return nil, f.err
	}
	return &models.PostPage{Posts: []models.Post{samplePost(3)}, Total: 1, Pages: 1, CurrentPage: 1}, nil
}

func (f *fakePosts) Create(_ context.Context, userID int64, content, _ string) (*models.Post, error) {
	f.gotUser = userID
	if f.err != nil {
		return nil, f.err
	}
	p := samplePost(4)
	p.Content = content
	return &p, nil
}

func (f *fakePosts) Update(_ context.Context, userID, postID int64, content, _ *string) (*models.Post, error) {
	f.gotUser, f.gotPost, f.gotContent = userID, postID, content
	if f.err != nil {
		return nil, f.err
	}
	p := samplePost(postID)
	return &p, nil
}

func (f *fakePosts) Delete(_ context.Context, userID, postID int64) error {
	f.gotUser, f.gotPost = userID, postID
	return f.err
}

func (f *fakePosts) ToggleLike(_ context.Context, userID, postID int64) (bool, int, error) {
	f.gotUser, f.gotPost = userID, postID
	if f.err != nil {
		return false, 0, f.err
	}
	if f.liked {
		return true, 3, nil
	}
	return false, 2, nil
}

func (f *fakePosts) Comments(_ context.Context, postID int64) ([]models.Comment, error) {
	f.gotPost = postID
	if f.err != nil {
		return nil, f.err
	}
	return []models.Comment{{
		ID:        9,
		PostID:    postID,
		UserID:    1,
		Content:   "nice",
		CreatedAt: createdAt,
		Author:    models.Author{ID: 1, Username: "alice"},
	}}, nil
}

func (f *fakePosts) AddComment(_ context.Context, userID, postID int64, content string) (*models.Comment, error) {
	f.gotUser, f.gotPost = userID, postID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Comment{ID: 10, PostID: postID, UserID: userID, Content: content, CreatedAt: createdAt,
		Author: models.Author{ID: userID, Username: "alice"}}, nil
}
