package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple covers rows that are created once and never updated, which
// is every table in this app.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
