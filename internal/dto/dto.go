// Package dto holds the request and response payloads of the public API.
// Field names follow the wire contract, not Go conventions.
package dto

type ErrorResponse struct {
	Error string `json:"error" example:"Internal server error"`
}

// MessageResponse is the odd one out: the register/authenticate routes
// report missing fields under a "message" key instead of "error".
type MessageResponse struct {
	Message string `json:"message" example:"Please enter all fields"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	Name          string `json:"name"`
	NoOfFollowers int    `json:"no_of_followers"`
	NoOfFollowing int    `json:"no_of_following"`
}

// TokenRequest is the body of every mutating route: those carry the bearer
// token in the JSON body rather than the Authorization header.
type TokenRequest struct {
	Token string `json:"token"`
}

type CreatePostRequest struct {
	Token string `json:"token"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type CreatePostResponse struct {
	PostID    string `json:"post_id"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	CreatedAt string `json:"created_at"`
}

type CommentRequest struct {
	Token   string `json:"token"`
	Comment string `json:"comment"`
}

type CommentCreatedResponse struct {
	CommentID string `json:"comment_id"`
}

// PostResponse is returned by the single-post read and, without the author
// field, by the all-posts listing.
type PostResponse struct {
	PostID    string   `json:"post_id"`
	Title     string   `json:"title"`
	Desc      string   `json:"desc"`
	Author    string   `json:"author,omitempty"`
	CreatedAt string   `json:"created_at"`
	Likes     int      `json:"likes"`
	Comments  []string `json:"comments"`
}
