package models

// Tag represents a content label that articles can be filed under.
type Tag struct {
	// ID is the unique identifier for this tag (24 lowercase hex digits)
	ID string `json:"id" validate:"required,objectid"`

	// Name is the human-readable tag name (e.g. "Engineering")
	// Must be 1-50 characters
	Name string `json:"name" validate:"required,min=1,max=50"`

	// Slug is the URL-safe identifier used in public routes
	Slug string `json:"slug" validate:"required,min=1,max=50,lowercase"`

	// Description optionally explains what the tag covers
	Description string `json:"description,omitempty" validate:"max=500"`

	// CreatedAt is the creation timestamp in epoch milliseconds
	CreatedAt int64 `json:"created_at" validate:"required,gt=0"`

	// UpdatedAt is the last-modification timestamp in epoch milliseconds
	UpdatedAt int64 `json:"updated_at" validate:"required,gtefield=CreatedAt"`
}

// TagCreateRequest represents the request body for creating a tag.
type TagCreateRequest struct {
	// Name is the desired tag name (required)
	Name string `json:"name" validate:"required,min=1,max=50"`

	// Slug is the desired URL slug (required)
	Slug string `json:"slug" validate:"required,min=1,max=50,lowercase"`

	// Description optionally explains what the tag covers
	Description string `json:"description,omitempty" validate:"max=500"`
}
