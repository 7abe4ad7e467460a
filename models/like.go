package models

// Like represents a single user's approval of an article. A user likes an
// article at most once; uniqueness of (ArticleID, UserID) is enforced by
// the owning service's storage layer, not here.
type Like struct {
	// ID is the unique identifier for this like (24 lowercase hex digits)
	ID string `json:"id" validate:"required,objectid"`

	// ArticleID references the liked article
	ArticleID string `json:"article_id" validate:"required,objectid"`

	// UserID references the user who liked the article
	UserID string `json:"user_id" validate:"required,objectid"`

	// CreatedAt is the creation timestamp in epoch milliseconds
	CreatedAt int64 `json:"created_at" validate:"required,gt=0"`
}
