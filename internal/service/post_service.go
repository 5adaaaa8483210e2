package service

import (
	"context"
	"math"

	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/repository/interfaces"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.uber.org/zap"
)

// 地图展示用的状态文案
const (
	statusMissing = "missing"
	statusFound   = "found"
)

// PostService 处理帖子的创建、更新、删除和各类查询
type PostService struct {
	postRepo interfaces.PostRepository
}

func NewPostService(postRepo interfaces.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost 创建新帖子。发布者始终取自已认证的调用者，
// 请求体中携带的发布者字段一律丢弃。
func (s *PostService) CreatePost(ctx context.Context, post *model.Post, publisher string) (*model.Post, error) {
	if err := validateNewPost(post); err != nil {
		return nil, err
	}

	post.PublisherUsername = publisher
	post.ReportsCount = 0

	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建帖子失败", err)
	}
	return created, nil
}

// UpdatePost 对帖子应用部分更新，只有补丁中出现的字段会被修改
func (s *PostService) UpdatePost(ctx context.Context, id string, patch *model.PostPatch) (*model.Post, error) {
	if patch.Location != nil {
		if err := validateLocation(patch.Location); err != nil {
			return nil, err
		}
	}

	post, err := s.postRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, translatePostError(err, "更新帖子失败")
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return translatePostError(err, "删除帖子失败")
	}
	return nil
}

func (s *PostService) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translatePostError(err, "查询帖子失败")
	}
	if post == nil {
		return nil, errors.New(errors.ErrPostNotFound, "帖子不存在")
	}
	return post, nil
}

func (s *PostService) ListAll(ctx context.Context) ([]*model.Post, error) {
	return s.list(s.postRepo.FindAll(ctx))
}

func (s *PostService) ListByPublisher(ctx context.Context, username string) ([]*model.Post, error) {
	return s.list(s.postRepo.FindByPublisher(ctx, username))
}

func (s *PostService) ListByCategory(ctx context.Context, categoryKey string) ([]*model.Post, error) {
	return s.list(s.postRepo.FindByCategory(ctx, categoryKey))
}

func (s *PostService) ListByTag(ctx context.Context, tag string) ([]*model.Post, error) {
	return s.list(s.postRepo.FindByTag(ctx, tag))
}

func (s *PostService) Search(ctx context.Context, query string) ([]*model.Post, error) {
	return s.list(s.postRepo.Search(ctx, query))
}

// MapItems 把全部帖子投影为地图条目。位置按 [经度, 纬度] 存储，
// 输出时拆成 lat/lng；位置缺失或畸形的帖子投影为空位置，不会导致整个列表失败。
func (s *PostService) MapItems(ctx context.Context) ([]*model.MapItem, error) {
	posts, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*model.MapItem, 0, len(posts))
	for _, post := range posts {
		status := statusFound
		if post.Type == model.PostTypeLost {
			status = statusMissing
		}

		items = append(items, &model.MapItem{
			ID:                post.ID.Hex(),
			ItemName:          post.Title,
			Status:            status,
			Type:              post.Type,
			Title:             post.Title,
			CategoryKey:       post.CategoryKey,
			Tag:               post.Tag,
			Description:       post.Description,
			PublisherUsername: post.PublisherUsername,
			ImageURL:          post.ImageURL,
			ReportsCount:      post.ReportsCount,
			CreatedAt:         post.CreatedAt,
			Location:          projectLocation(post.Location),
		})
	}
	return items, nil
}

func (s *PostService) list(posts []*model.Post, err error) ([]*model.Post, error) {
	if err != nil {
		util.Logger.Error("查询帖子列表失败", zap.Error(err))
		return nil, errors.Wrap(errors.ErrDatabase, "查询帖子列表失败", err)
	}
	if posts == nil {
		posts = []*model.Post{}
	}
	return posts, nil
}

// projectLocation 把存储的 [lng, lat] 坐标拆成地图需要的 lat/lng
func projectLocation(loc *model.GeoPoint) *model.MapLocation {
	if loc == nil || len(loc.Coordinates) < 2 {
		return nil
	}
	return &model.MapLocation{
		Lat: loc.Coordinates[1],
		Lng: loc.Coordinates[0],
	}
}

func validateNewPost(post *model.Post) error {
	if post.Type != model.PostTypeLost && post.Type != model.PostTypeFound {
		return errors.New(errors.ErrValidation, "帖子类型必须是 lost 或 found")
	}
	if post.Title == "" {
		return errors.New(errors.ErrValidation, "标题不能为空")
	}
	if post.CategoryKey == "" {
		return errors.New(errors.ErrValidation, "分类不能为空")
	}
	if post.Location == nil {
		return errors.New(errors.ErrValidation, "位置不能为空")
	}
	return validateLocation(post.Location)
}

func validateLocation(loc *model.GeoPoint) error {
	if loc.Type != "Point" {
		return errors.New(errors.ErrValidation, "位置类型必须是 Point")
	}
	if len(loc.Coordinates) != 2 {
		return errors.New(errors.ErrValidation, "坐标必须是 [经度, 纬度] 两个数值")
	}
	for _, c := range loc.Coordinates {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return errors.New(errors.ErrValidation, "坐标必须是有限数值")
		}
	}
	return nil
}

// translatePostError 把存储层错误翻译为应用错误
func translatePostError(err error, message string) error {
	switch err {
	case store.ErrNoDocument:
		return errors.New(errors.ErrPostNotFound, "帖子不存在")
	case store.ErrInvalidID:
		return errors.New(errors.ErrInvalidID, "无效的帖子ID")
	default:
		return errors.Wrap(errors.ErrDatabase, message, err)
	}
}
