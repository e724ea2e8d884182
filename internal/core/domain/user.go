package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "gestor"
)

// User models an account stored in the credential store. The role is an
// open string tag: the store never validates it, only the access-control
// whitelists interpret it.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Identity is the request-scoped result of a verified token. It lives only
// for the duration of one request.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Identity returns the claim set embedded in tokens issued for this user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}
