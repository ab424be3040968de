package entity

import (
	"github.com/google/uuid"
)

// Comment is a user comment on a movie. MovieID is a key in the metadata
// gateway's space and is not validated against it.
type Comment struct {
	BaseSimple
	Content string    `db:"content"`
	MovieID int64     `db:"movie_id"`
	UserID  uuid.UUID `db:"user_id"`
}

// CommentWithAuthor is a comment joined with its author's username, as
// the detail view shows it.
type CommentWithAuthor struct {
	Comment
	Username string `db:"username"`
}
