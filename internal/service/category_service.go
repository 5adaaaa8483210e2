package service

import (
	"context"

	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/repository/interfaces"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.uber.org/zap"
)

// 默认分类，首次启动时写入
var defaultCategories = []model.Category{
	{Key: "Electronics", Title: "电子产品", ColorCode: "#00f5ff"},
	{Key: "Documents", Title: "证件", ColorCode: "#4d7cff"},
	{Key: "Wallets / Cards", Title: "钱包/卡片", ColorCode: "#39ff88"},
	{Key: "Clothing", Title: "服饰", ColorCode: "#ff4fd8"},
	{Key: "Accessories", Title: "配饰", ColorCode: "#9b5cff"},
	{Key: "Keys", Title: "钥匙", ColorCode: "#ffe347"},
	{Key: "Books", Title: "书籍", ColorCode: "#ff9f43"},
	{Key: "Other", Title: "其他", ColorCode: "#ff5c5c"},
}

// CategoryService 管理物品分类，分类创建后只读
type CategoryService struct {
	categoryRepo interfaces.CategoryRepository
}

func NewCategoryService(categoryRepo interfaces.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory 创建新分类，key 必须唯一
func (s *CategoryService) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if category.Key == "" || category.Title == "" {
		return nil, errors.New(errors.ErrValidation, "分类的 key 和标题不能为空")
	}

	existing, err := s.categoryRepo.FindByKey(ctx, category.Key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询分类失败", err)
	}
	if existing != nil {
		return nil, errors.New(errors.ErrCategoryExists, "分类已存在")
	}

	created, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建分类失败", err)
	}
	return created, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询分类失败", err)
	}
	if categories == nil {
		categories = []*model.Category{}
	}
	return categories, nil
}

// SeedDefaults 补齐缺失的默认分类，已存在的 key 跳过
func (s *CategoryService) SeedDefaults(ctx context.Context) error {
	for _, category := range defaultCategories {
		existing, err := s.categoryRepo.FindByKey(ctx, category.Key)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		c := category
		if _, err := s.categoryRepo.Create(ctx, &c); err != nil {
			return err
		}
		util.Logger.Info("写入默认分类", zap.String("key", c.Key))
	}
	return nil
}
