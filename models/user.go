package models

import "time"

// AdminUsername is the reserved account that always exists and can never be
// deleted. Its presence grants access to user management and the query log.
const AdminUsername = "admin"

// Role labels shown in the admin user list.
const (
	RoleAdmin   = "管理员"
	RoleRegular = "普通用户"
)

// EscrowMissingSentinel is shown in place of the plaintext password when an
// account has no escrow copy (e.g. it predates the escrow column).
const EscrowMissingSentinel = "请重新设置密码"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt verifier used on the authentication path.
	// Never serialized.
	PasswordHash string `json:"-"`

	// PlainPassword is the escrowed plaintext copy of the password, retained
	// so the administrator can look it up. Stored alongside the verifier but
	// never used for the login decision.
	PlainPassword string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the administrator role. The role is
// derived from the username and never stored.
func (u User) IsAdmin() bool {
	return u.Username == AdminUsername
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserSummary is the admin-facing listing row for an account. Password holds
// the escrowed plaintext or [EscrowMissingSentinel] when no escrow exists.
type UserSummary struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Summary converts the user into its admin listing form.
func (u User) Summary() UserSummary {
	role := RoleRegular
	if u.IsAdmin() {
		role = RoleAdmin
	}

	password := u.PlainPassword
	if password == "" {
		password = EscrowMissingSentinel
	}

	return UserSummary{
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Password: password,
		Role:     role,
	}
}
