package repository

import (
	"movie-browser/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Comment   CommentRepository
	Favourite FavouriteRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Comment:   NewCommentRepository(db, log),
		Favourite: NewFavouriteRepository(db, log),
	}
}
