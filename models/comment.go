package models

// CommentStatus enumerates the moderation states of a comment.
type CommentStatus string

const (
	// CommentStatusPending is a comment awaiting moderation.
	CommentStatusPending CommentStatus = "pending"

	// CommentStatusApproved is a comment visible to readers.
	CommentStatusApproved CommentStatus = "approved"

	// CommentStatusRejected is a comment refused by a moderator.
	CommentStatusRejected CommentStatus = "rejected"

	// CommentStatusDeleted is a comment removed by its author.
	CommentStatusDeleted CommentStatus = "deleted"
)

// Comment represents a reader comment attached to an article.
type Comment struct {
	// ID is the unique identifier for this comment (24 lowercase hex digits)
	ID string `json:"id" validate:"required,objectid"`

	// ArticleID references the article being commented on
	ArticleID string `json:"article_id" validate:"required,objectid"`

	// AuthorID references the commenting user
	AuthorID string `json:"author_id" validate:"required,objectid"`

	// Body is the comment text
	// Must be 1-5000 characters
	Body string `json:"body" validate:"required,min=1,max=5000"`

	// Status is the moderation state (pending, approved, rejected, deleted)
	Status CommentStatus `json:"status" validate:"required,oneof=pending approved rejected deleted"`

	// CreatedAt is the creation timestamp in epoch milliseconds
	CreatedAt int64 `json:"created_at" validate:"required,gt=0"`

	// UpdatedAt is the last-modification timestamp in epoch milliseconds
	UpdatedAt int64 `json:"updated_at" validate:"required,gtefield=CreatedAt"`
}

// CommentCreateRequest represents the request body for posting a comment.
type CommentCreateRequest struct {
	// ArticleID references the article being commented on (required)
	ArticleID string `json:"article_id" validate:"required,objectid"`

	// AuthorID references the commenting user (required)
	AuthorID string `json:"author_id" validate:"required,objectid"`

	// Body is the comment text (required)
	Body string `json:"body" validate:"required,min=1,max=5000"`
}
