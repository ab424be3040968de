package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-browser/internal/data/entity"
	"movie-browser/internal/data/repository"
	"movie-browser/internal/dto/request"
	"movie-browser/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentService interface {
	Create(ctx context.Context, userID uuid.UUID, movieID int64, req *request.CreateCommentRequest) error
	Delete(ctx context.Context, commentID string, userID uuid.UUID) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) Create(ctx context.Context, userID uuid.UUID, movieID int64, req *request.CreateCommentRequest) error {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Content: req.Content,
		MovieID: movieID,
		UserID:  userID,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", movieID),
	)

	return nil
}

// Delete removes a comment. Only the comment's owner may delete it.
func (s *commentService) Delete(ctx context.Context, commentID string, userID uuid.UUID) error {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return fmt.Errorf("comment %s not found", commentID)
	}

	comment, err := s.repo.Comment.FindByID(ctx, commentUUID)
	if err != nil {
		s.log.Error("Failed to look up comment", zap.Error(err), zap.String("comment_id", commentID))
		return fmt.Errorf("look up comment: %w", err)
	}
	if comment == nil {
		return fmt.Errorf("comment %s not found", commentID)
	}

	if comment.UserID != userID {
		s.log.Warn("Comment delete by non-owner",
			zap.String("comment_id", commentID),
			zap.String("user_id", userID.String()),
			zap.String("owner_id", comment.UserID.String()),
		)
		return fmt.Errorf("not allowed to delete another user's comment")
	}

	if err := s.repo.Comment.Delete(ctx, commentUUID); err != nil {
		s.log.Error("Failed to delete comment", zap.Error(err), zap.String("comment_id", commentID))
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info("Comment deleted",
		zap.String("comment_id", commentID),
		zap.String("user_id", userID.String()),
	)

	return nil
}
