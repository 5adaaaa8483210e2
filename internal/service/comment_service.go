package service

import (
	"context"

	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/repository/interfaces"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"
)

// CommentService 处理帖子下的评论
type CommentService struct {
	commentRepo interfaces.CommentRepository
	postRepo    interfaces.PostRepository
}

func NewCommentService(commentRepo interfaces.CommentRepository, postRepo interfaces.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment 在帖子下新增评论。帖子必须存在，否则不做任何写入。
// parentID 不做存在性校验，悬空的回复由前端容忍。
func (s *CommentService) AddComment(ctx context.Context, postID, content string, parentID *string, publisher string) (*model.Comment, error) {
	if content == "" {
		return nil, errors.New(errors.ErrValidation, "评论内容不能为空")
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err == store.ErrInvalidID {
		return nil, errors.New(errors.ErrInvalidID, "无效的帖子ID")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询帖子失败", err)
	}
	if post == nil {
		return nil, errors.New(errors.ErrTargetNotFound, "帖子不存在")
	}

	comment := &model.Comment{
		PostID:            postID,
		PublisherUsername: publisher,
		Content:           content,
		ParentID:          parentID,
	}

	created, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建评论失败", err)
	}
	return created, nil
}

// ListComments 返回帖子下的评论，按创建时间从旧到新排列
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]*model.Comment, error) {
	comments, err := s.commentRepo.FindByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询评论失败", err)
	}
	if comments == nil {
		comments = []*model.Comment{}
	}
	return comments, nil
}
