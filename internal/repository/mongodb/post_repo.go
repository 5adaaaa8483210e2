package mongodb

import (
	"context"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type postRepository struct {
	store *store.Store
}

func NewPostRepository(s *store.Store) *postRepository {
	return &postRepository{store: s}
}

// Create 插入新帖子，创建时间由服务端设置，举报数强制归零
func (r *postRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	post.ReportsCount = 0
	post.CreatedAt = time.Now()

	id, err := r.store.InsertOne(ctx, store.CollPosts, post)
	if err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err))
		return nil, err
	}

	post.ID = id
	util.Logger.Info("帖子创建成功", zap.String("post_id", id.Hex()))
	return post, nil
}

// FindByID 按ID查找帖子，未命中返回 (nil, nil)
func (r *postRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.store.FindByID(ctx, store.CollPosts, id, &post)
	if err == store.ErrNoDocument {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindAll(ctx context.Context) ([]*model.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *postRepository) FindByPublisher(ctx context.Context, username string) ([]*model.Post, error) {
	return r.find(ctx, bson.M{"publisher_username": username})
}

func (r *postRepository) FindByCategory(ctx context.Context, categoryKey string) ([]*model.Post, error) {
	return r.find(ctx, bson.M{"category_key": categoryKey})
}

func (r *postRepository) FindByTag(ctx context.Context, tag string) ([]*model.Post, error) {
	return r.find(ctx, bson.M{"tag": tag})
}

// Search 在标题和描述上做全文检索。空查询直接返回空列表，
// 不会退化为全量扫描。
func (r *postRepository) Search(ctx context.Context, query string) ([]*model.Post, error) {
	if query == "" {
		return []*model.Post{}, nil
	}
	return r.find(ctx, bson.M{"$text": bson.M{"$search": query}})
}

// Update 应用部分更新，只有补丁中非空的字段会被写入
func (r *postRepository) Update(ctx context.Context, id string, patch *model.PostPatch) (*model.Post, error) {
	if patch.IsEmpty() {
		var post model.Post
		if err := r.store.FindByID(ctx, store.CollPosts, id, &post); err != nil {
			return nil, err
		}
		return &post, nil
	}

	var post model.Post
	update := bson.M{"$set": buildPostPatch(patch)}
	if err := r.store.UpdateByID(ctx, store.CollPosts, id, update, &post); err != nil {
		util.Logger.Error("更新帖子失败", zap.Error(err), zap.String("post_id", id))
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	err := r.store.DeleteByID(ctx, store.CollPosts, id)
	if err != nil {
		util.Logger.Error("删除帖子失败", zap.Error(err), zap.String("post_id", id))
		return err
	}

	util.Logger.Info("帖子删除成功", zap.String("post_id", id))
	return nil
}

// IncrementReports 原子自增举报数并返回最新帖子
func (r *postRepository) IncrementReports(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := r.store.IncrementByID(ctx, store.CollPosts, id, "reports_count", 1, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) find(ctx context.Context, filter bson.M) ([]*model.Post, error) {
	var posts []*model.Post
	if err := r.store.Find(ctx, store.CollPosts, filter, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// buildPostPatch 把补丁中出现的字段转换为 $set 文档
func buildPostPatch(patch *model.PostPatch) bson.M {
	set := bson.M{}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.CategoryKey != nil {
		set["category_key"] = *patch.CategoryKey
	}
	if patch.Tag != nil {
		set["tag"] = *patch.Tag
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Location != nil {
		set["location"] = patch.Location
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	return set
}
