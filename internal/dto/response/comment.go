package response

import (
	"time"

	"movie-browser/internal/data/entity"
)

type CommentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	MovieID   int64     `json:"movie_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converter
func CommentToResponse(comment *entity.Comment, username string) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.String(),
		Content:   comment.Content,
		MovieID:   comment.MovieID,
		UserID:    comment.UserID.String(),
		Username:  username,
		CreatedAt: comment.CreatedAt,
	}
}
