package interfaces

import (
	"context"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	FindByKey(ctx context.Context, key string) (*model.Category, error)
	FindAll(ctx context.Context) ([]*model.Category, error)
}
