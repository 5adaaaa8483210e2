package service

import (
	"context"

	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/repository/interfaces"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.uber.org/zap"
)

// ReportThreshold 累计举报数达到该值时内容被自动删除（第5次举报触发删除）
const ReportThreshold = 5

// DefaultReportReason 未提供理由时写入审计记录的默认值
const DefaultReportReason = "用户举报"

// TargetKind 标识可被举报的内容类型
type TargetKind string

const (
	KindPost    TargetKind = "post"
	KindComment TargetKind = "comment"
)

// ParseTargetKind 解析路径中的目标类型，非法取值返回错误
func ParseTargetKind(s string) (TargetKind, error) {
	switch TargetKind(s) {
	case KindPost:
		return KindPost, nil
	case KindComment:
		return KindComment, nil
	default:
		return "", errors.New(errors.ErrInvalidTargetType, "目标类型必须是 post 或 comment")
	}
}

// ModerationService 负责举报的接收与阈值触发的内容删除
type ModerationService struct {
	postRepo    interfaces.PostRepository
	commentRepo interfaces.CommentRepository
	reportRepo  interfaces.ReportRepository
}

func NewModerationService(
	postRepo interfaces.PostRepository,
	commentRepo interfaces.CommentRepository,
	reportRepo interfaces.ReportRepository,
) *ModerationService {
	return &ModerationService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		reportRepo:  reportRepo,
	}
}

// ReportContent 处理一次举报：
//  1. 确认目标存在，不存在时不写任何记录；
//  2. 插入只追加的举报审计记录（同一用户重复举报不去重）；
//  3. 在存储端原子自增举报数；
//  4. 自增后达到阈值则删除目标。
//
// 第2步之后没有回滚路径：若后续持久化失败，审计记录与计数可能不一致，
// 该行为是尽力而为，不是事务。
func (s *ModerationService) ReportContent(ctx context.Context, kind TargetKind, targetID, reporter string) (*model.ReportOutcome, error) {
	if err := s.resolveTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	report := &model.Report{
		ReporterUsername: reporter,
		TargetID:         targetID,
		TargetType:       string(kind),
		Reason:           DefaultReportReason,
	}
	if _, err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "记录举报失败", err)
	}

	count, err := s.incrementReports(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}

	if count < ReportThreshold {
		return &model.ReportOutcome{ReportsCount: count, Deleted: false}, nil
	}

	// 达到阈值，删除目标。并发举报可能触发重复删除，
	// 目标已不存在时删除视为已完成。
	if err := s.deleteTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	util.Logger.Info("内容因举报过多被删除",
		zap.String("target_type", string(kind)),
		zap.String("target_id", targetID),
		zap.Int("reports_count", count))

	return &model.ReportOutcome{ReportsCount: count, Deleted: true}, nil
}

func (s *ModerationService) resolveTarget(ctx context.Context, kind TargetKind, targetID string) error {
	var found bool
	var err error

	switch kind {
	case KindPost:
		var post *model.Post
		post, err = s.postRepo.FindByID(ctx, targetID)
		found = post != nil
	case KindComment:
		var comment *model.Comment
		comment, err = s.commentRepo.FindByID(ctx, targetID)
		found = comment != nil
	}

	if err == store.ErrInvalidID {
		return errors.New(errors.ErrInvalidID, "无效的目标ID")
	}
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "查询举报目标失败", err)
	}
	if !found {
		return errors.New(errors.ErrTargetNotFound, "被举报的内容不存在")
	}
	return nil
}

func (s *ModerationService) incrementReports(ctx context.Context, kind TargetKind, targetID string) (int, error) {
	var count int
	var err error

	switch kind {
	case KindPost:
		var post *model.Post
		if post, err = s.postRepo.IncrementReports(ctx, targetID); err == nil {
			count = post.ReportsCount
		}
	case KindComment:
		var comment *model.Comment
		if comment, err = s.commentRepo.IncrementReports(ctx, targetID); err == nil {
			count = comment.ReportsCount
		}
	}

	if err == store.ErrNoDocument {
		// 目标在解析之后、自增之前被并发删除
		return 0, errors.New(errors.ErrTargetNotFound, "被举报的内容不存在")
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, "更新举报计数失败", err)
	}
	return count, nil
}

func (s *ModerationService) deleteTarget(ctx context.Context, kind TargetKind, targetID string) error {
	var err error
	switch kind {
	case KindPost:
		err = s.postRepo.Delete(ctx, targetID)
	case KindComment:
		err = s.commentRepo.Delete(ctx, targetID)
	}

	if err != nil && err != store.ErrNoDocument {
		return errors.Wrap(errors.ErrDatabase, "删除被举报内容失败", err)
	}
	return nil
}
