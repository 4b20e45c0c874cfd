package models

import "github.com/dmitrijs2005/minired/internal/timex"

// Author is the compact user shape embedded in posts and comments.
type Author struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic"`
}

// Post is a single feed item.
type Post struct {
	ID            int64      `json:"id"`
	Content       string     `json:"content"`
	Image         string     `json:"image"`
	CreatedAt     timex.Time `json:"created_at"`
	Author        Author     `json:"author"`
	LikesCount    int        `json:"likes_count"`
	CommentsCount int        `json:"comments_count"`
}

// PostPage is one page of the feed.
type PostPage struct {
	Posts       []Post `json:"posts"`
	Total       int    `json:"total"`
	Pages       int    `json:"pages"`
	CurrentPage int    `json:"current_page"`
}

// Comment belongs to a post.
type Comment struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	CreatedAt timex.Time `json:"created_at"`
	User      Author     `json:"user"`
}

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	Message    string `json:"message"`
	LikesCount int    `json:"likes_count"`
	IsLiked    bool   `json:"is_liked"`
}
