package httpapi

import (
	"time"

	"github.com/dmitrijs2005/minired/internal/server/models"
)

// Timestamps go out as naive ISO-8601 in UTC.
const timeLayout = "2006-01-02T15:04:05.999999"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Bio        *string `json:"bio"`
	ProfilePic *string `json:"profile_pic"`
}

type createPostRequest struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}

type updatePostRequest struct {
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

type commentRequest struct {
	Content string `json:"content"`
}

type userJSON struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Bio        string `json:"bio"`
	ProfilePic string `json:"profile_pic"`
	CreatedAt  string `json:"created_at,omitempty"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Bio:        u.Bio,
		ProfilePic: u.ProfilePic,
		CreatedAt:  formatTime(u.CreatedAt),
	}
}

type authResponse struct {
	Message     string   `json:"message"`
	AccessToken string   `json:"access_token"`
	User        userJSON `json:"user"`
}

type profileResponse struct {
	Message string   `json:"message"`
	User    userJSON `json:"user"`
}

type authorJSON struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic"`
}

func toAuthorJSON(a models.Author) authorJSON {
	return authorJSON{ID: a.ID, Username: a.Username, ProfilePic: a.ProfilePic}
}

type postJSON struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	Content       string     `json:"content"`
	Image         string     `json:"image"`
	CreatedAt     string     `json:"created_at"`
	Author        authorJSON `json:"author"`
	LikesCount    int        `json:"likes_count"`
	CommentsCount int        `json:"comments_count"`
}

func toPostJSON(p *models.Post) postJSON {
	return postJSON{
		ID:            p.ID,
		UserID:        p.UserID,
		Content:       p.Content,
		Image:         p.Image,
		CreatedAt:     formatTime(p.CreatedAt),
		Author:        toAuthorJSON(p.Author),
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
	}
}

type postPageJSON struct {
	Posts       []postJSON `json:"posts"`
	Total       int        `json:"total"`
	Pages       int        `json:"pages"`
	CurrentPage int        `json:"current_page"`
}

func toPostPageJSON(p *models.PostPage) postPageJSON {
	out := postPageJSON{
		Posts:       make([]postJSON, 0, len(p.Posts)),
		Total:       p.Total,
		Pages:       p.Pages,
		CurrentPage: p.CurrentPage,
	}
	for i := range p.Posts {
		out.Posts = append(out.Posts, toPostJSON(&p.Posts[i]))
	}
	return out
}

type postResponse struct {
	Message string   `json:"message"`
	Post    postJSON `json:"post"`
}

type likeResponse struct {
	Message    string `json:"message"`
	LikesCount int    `json:"likes_count"`
	IsLiked    bool   `json:"is_liked"`
}

// Comment authors travel under "user".
type commentJSON struct {
	ID        int64      `json:"id"`
	PostID    int64      `json:"post_id"`
	Content   string     `json:"content"`
	CreatedAt string     `json:"created_at"`
	User      authorJSON `json:"user"`
}

func toCommentJSON(c *models.Comment) commentJSON {
	return commentJSON{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		CreatedAt: formatTime(c.CreatedAt),
		User:      toAuthorJSON(c.Author),
	}
}

type commentListResponse struct {
	Comments []commentJSON `json:"comments"`
}

type commentResponse struct {
	Message string      `json:"message"`
	Comment commentJSON `json:"comment"`
}
