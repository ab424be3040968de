package entity

import (
	"github.com/google/uuid"
)

// FavouriteMovie is a user-movie like. At most one row per (user, movie),
// enforced by a unique constraint.
type FavouriteMovie struct {
	BaseSimple
	MovieID int64     `db:"movie_id"`
	UserID  uuid.UUID `db:"user_id"`
}
