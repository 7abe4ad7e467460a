package models

// UserRole enumerates the permission tiers of a platform user.
type UserRole string

const (
	// UserRoleReader can read published content and comment.
	UserRoleReader UserRole = "reader"

	// UserRoleAuthor can additionally write and edit their own articles.
	UserRoleAuthor UserRole = "author"

	// UserRoleEditor can edit any article and moderate comments.
	UserRoleEditor UserRole = "editor"

	// UserRoleAdmin can manage users and platform configuration.
	UserRoleAdmin UserRole = "admin"
)

// UserStatus enumerates the account states of a user.
type UserStatus string

const (
	// UserStatusActive is a user in good standing.
	UserStatusActive UserStatus = "active"

	// UserStatusSuspended is a user temporarily barred from the platform.
	UserStatusSuspended UserStatus = "suspended"

	// UserStatusDeleted is a user whose account has been removed.
	UserStatusDeleted UserStatus = "deleted"
)

// User represents a platform account.
type User struct {
	// ID is the unique identifier for this user (24 lowercase hex digits)
	ID string `json:"id" validate:"required,objectid"`

	// Name is the user's display name
	// Must be 1-100 characters
	Name string `json:"name" validate:"required,min=1,max=100"`

	// Email is the user's contact address
	Email string `json:"email" validate:"required,email"`

	// Role is the permission tier (reader, author, editor, admin)
	Role UserRole `json:"role" validate:"required,oneof=reader author editor admin"`

	// Status is the account state (active, suspended, deleted)
	Status UserStatus `json:"status" validate:"required,oneof=active suspended deleted"`

	// CreatedAt is the creation timestamp in epoch milliseconds
	CreatedAt int64 `json:"created_at" validate:"required,gt=0"`

	// UpdatedAt is the last-modification timestamp in epoch milliseconds
	UpdatedAt int64 `json:"updated_at" validate:"required,gtefield=CreatedAt"`
}

// UserCreateRequest represents the request body for registering a user.
type UserCreateRequest struct {
	// Name is the desired display name (required)
	Name string `json:"name" validate:"required,min=1,max=100"`

	// Email is the user's contact address (required)
	Email string `json:"email" validate:"required,email"`

	// Role is the initial permission tier; defaults to reader when empty
	Role UserRole `json:"role,omitempty" validate:"omitempty,oneof=reader author editor admin"`
}
