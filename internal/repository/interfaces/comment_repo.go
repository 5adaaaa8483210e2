package interfaces

import (
	"context"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id string) (*model.Comment, error)
	FindByPost(ctx context.Context, postID string) ([]*model.Comment, error)
	Delete(ctx context.Context, id string) error
	IncrementReports(ctx context.Context, id string) (*model.Comment, error)
}
