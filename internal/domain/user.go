package domain

import "context"

// User represents a registered user.
//
// Password is stored and compared as plain text, and the full entity
// (password included) is what user list/detail endpoints serialize. Both are
// deliberate reproductions of upstream behavior; see DESIGN.md.
// swagger:model User
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ReducedUser is the safe response shape for user-mutating endpoints: it
// omits the password.
// swagger:model ReducedUser
type ReducedUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Reduced returns the reduced view of the user.
func (u *User) Reduced() *ReducedUser {
	return &ReducedUser{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserRepository defines storage operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByUsernameOrEmail is the uniqueness pre-check lookup: it returns any
	// user whose username equals username or whose email equals email.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)
	// GetByLogin returns the user whose username or email equals credential
	// and whose password matches exactly.
	GetByLogin(ctx context.Context, credential, password string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}

// UserService defines the business logic for user accounts.
type UserService interface {
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user *User) (*ReducedUser, error)
	Login(ctx context.Context, credential, password string) (*ReducedUser, error)
	Update(ctx context.Context, id int64, username, email, password string) (*ReducedUser, error)
	Delete(ctx context.Context, id int64) error
}
