package request

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=255"`
}
