package mongodb

import (
	"context"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type commentRepository struct {
	store *store.Store
}

func NewCommentRepository(s *store.Store) *commentRepository {
	return &commentRepository{store: s}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	comment.ReportsCount = 0
	comment.CreatedAt = time.Now()

	id, err := r.store.InsertOne(ctx, store.CollComments, comment)
	if err != nil {
		util.Logger.Error("创建评论失败", zap.Error(err), zap.String("post_id", comment.PostID))
		return nil, err
	}

	comment.ID = id
	util.Logger.Info("评论创建成功",
		zap.String("comment_id", id.Hex()),
		zap.String("post_id", comment.PostID))
	return comment, nil
}

// FindByID 按ID查找评论，未命中返回 (nil, nil)
func (r *commentRepository) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.store.FindByID(ctx, store.CollComments, id, &comment)
	if err == store.ErrNoDocument {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByPost 返回帖子下的全部评论，按创建时间升序排列
func (r *commentRepository) FindByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	if err := r.store.Find(ctx, store.CollComments, bson.M{"post_id": postID}, commentListOptions(), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// commentListOptions 评论列表的查询选项，按创建时间从旧到新
func commentListOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	err := r.store.DeleteByID(ctx, store.CollComments, id)
	if err != nil {
		util.Logger.Error("删除评论失败", zap.Error(err), zap.String("comment_id", id))
		return err
	}

	util.Logger.Info("评论删除成功", zap.String("comment_id", id))
	return nil
}

// IncrementReports 原子自增举报数并返回最新评论
func (r *commentRepository) IncrementReports(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	if err := r.store.IncrementByID(ctx, store.CollComments, id, "reports_count", 1, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
