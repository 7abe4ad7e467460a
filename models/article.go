package models

// ArticleStatus enumerates the publication states of an article.
type ArticleStatus string

const (
	// ArticleStatusDraft is an article still being written, invisible to readers.
	ArticleStatusDraft ArticleStatus = "draft"

	// ArticleStatusPublished is a live article visible to readers.
	ArticleStatusPublished ArticleStatus = "published"

	// ArticleStatusArchived is a retired article kept for reference.
	ArticleStatusArchived ArticleStatus = "archived"
)

// Article represents a single piece of published content.
type Article struct {
	// ID is the unique identifier for this article (24 lowercase hex digits)
	ID string `json:"id" validate:"required,objectid"`

	// Title is the human-readable article title
	// Must be 1-200 characters
	Title string `json:"title" validate:"required,min=1,max=200"`

	// Slug is the URL-safe identifier used in public routes
	// (e.g. "how-we-ship-faster")
	Slug string `json:"slug" validate:"required,min=1,max=200,lowercase"`

	// Body is the article content in markdown
	Body string `json:"body" validate:"required"`

	// AuthorID references the user who wrote the article
	AuthorID string `json:"author_id" validate:"required,objectid"`

	// TagIDs references the tags attached to this article
	TagIDs []string `json:"tag_ids,omitempty" validate:"dive,objectid"`

	// Status is the publication state (draft, published, archived)
	Status ArticleStatus `json:"status" validate:"required,oneof=draft published archived"`

	// CreatedAt is the creation timestamp in epoch milliseconds
	CreatedAt int64 `json:"created_at" validate:"required,gt=0"`

	// UpdatedAt is the last-modification timestamp in epoch milliseconds
	UpdatedAt int64 `json:"updated_at" validate:"required,gtefield=CreatedAt"`
}

// ArticleCreateRequest represents the request body for creating an article.
type ArticleCreateRequest struct {
	// Title is the desired article title (required)
	Title string `json:"title" validate:"required,min=1,max=200"`

	// Slug is the desired URL slug (required)
	Slug string `json:"slug" validate:"required,min=1,max=200,lowercase"`

	// Body is the article content in markdown (required)
	Body string `json:"body" validate:"required"`

	// AuthorID references the authoring user (required)
	AuthorID string `json:"author_id" validate:"required,objectid"`

	// TagIDs optionally attaches tags at creation time
	TagIDs []string `json:"tag_ids,omitempty" validate:"dive,objectid"`
}

// ArticleUpdateRequest represents the request body for updating an article.
// Nil fields are left unchanged.
type ArticleUpdateRequest struct {
	// Title replaces the article title when set
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`

	// Body replaces the article content when set
	Body *string `json:"body,omitempty" validate:"omitempty,min=1"`

	// TagIDs replaces the attached tags when set
	TagIDs []string `json:"tag_ids,omitempty" validate:"dive,objectid"`

	// Status moves the article to a new publication state when set
	Status *ArticleStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
}
