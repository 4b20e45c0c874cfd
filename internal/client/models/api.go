package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
}

// UpdateProfileRequest is the body of PUT /auth/profile. Nil fields are
// omitted so the server keeps their current value.
type UpdateProfileRequest struct {
	Bio        *string `json:"bio,omitempty"`
	ProfilePic *string `json:"profile_pic,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// ProfileResponse is returned by a profile update.
type ProfileResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PostRequest is the body of post create.
type PostRequest struct {
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// PostUpdateRequest is the body of post edit. A nil Image keeps the current
// image, an empty one removes it.
type PostUpdateRequest struct {
	Content string  `json:"content"`
	Image   *string `json:"image,omitempty"`
}

// PostResponse wraps a created or edited post.
type PostResponse struct {
	Message string `json:"message"`
	Post    Post   `json:"post"`
}

// CommentRequest is the body of a new comment.
type CommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse wraps a created comment.
type CommentResponse struct {
	Message string  `json:"message"`
	Comment Comment `json:"comment"`
}

// CommentList is returned by the comments listing.
type CommentList struct {
	Comments []Comment `json:"comments"`
}

// MessageResponse carries only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
