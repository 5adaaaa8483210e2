package mongodb

import (
	"context"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type categoryRepository struct {
	store *store.Store
}

func NewCategoryRepository(s *store.Store) *categoryRepository {
	return &categoryRepository{store: s}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	id, err := r.store.InsertOne(ctx, store.CollCategories, category)
	if err != nil {
		util.Logger.Error("创建分类失败", zap.Error(err), zap.String("key", category.Key))
		return nil, err
	}

	category.ID = id
	return category, nil
}

// FindByKey 按唯一键查找分类，未命中返回 (nil, nil)
func (r *categoryRepository) FindByKey(ctx context.Context, key string) (*model.Category, error) {
	var category model.Category
	err := r.store.Collection(store.CollCategories).FindOne(ctx, bson.M{"key": key}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	if err := r.store.Find(ctx, store.CollCategories, bson.M{}, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
