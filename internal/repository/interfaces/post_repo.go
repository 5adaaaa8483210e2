package interfaces

import (
	"context"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
	FindByPublisher(ctx context.Context, username string) ([]*model.Post, error)
	FindByCategory(ctx context.Context, categoryKey string) ([]*model.Post, error)
	FindByTag(ctx context.Context, tag string) ([]*model.Post, error)
	Search(ctx context.Context, query string) ([]*model.Post, error)
	Update(ctx context.Context, id string, patch *model.PostPatch) (*model.Post, error)
	Delete(ctx context.Context, id string) error
	IncrementReports(ctx context.Context, id string) (*model.Post, error)
}
