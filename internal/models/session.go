package models

// Session is the authentication status of one browsing session.
type Session struct {
	UserID          string `json:"user_id"`
	Email           string `json:"email"`
	IsAuthenticated bool   `json:"is_authenticated"`
}

// Identity is what the auth backend hands back after a credential check.
type Identity struct {
	UserID string
	Email  string
	Token  string
}
