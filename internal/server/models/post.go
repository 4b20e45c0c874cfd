package models

import "time"

// Author is the compact user shape attached to posts and comments.
type Author struct {
	ID         int64
	Username   string
	ProfilePic string
}

type Post struct {
	ID            int64
	UserID        int64
	Content       string
	Image         string
	CreatedAt     time.Time
	Author        Author
	LikesCount    int
	CommentsCount int
}

type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	Content   string
	CreatedAt time.Time
	Author    Author
}

// PostPage is one page of the feed, newest first.
type PostPage struct {
	Posts       []Post
	Total       int
	Pages       int
	CurrentPage int
}
