package service

import (
	"context"
	"testing"

	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newModerationFixture() (*ModerationService, *MockPostRepository, *MockCommentRepository, *MockReportRepository) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	reportRepo := new(MockReportRepository)
	return NewModerationService(postRepo, commentRepo, reportRepo), postRepo, commentRepo, reportRepo
}

func TestParseTargetKind(t *testing.T) {
	kind, err := ParseTargetKind("post")
	assert.NoError(t, err)
	assert.Equal(t, KindPost, kind)

	kind, err = ParseTargetKind("comment")
	assert.NoError(t, err)
	assert.Equal(t, KindComment, kind)

	_, err = ParseTargetKind("user")
	assert.True(t, errors.Is(err, errors.ErrInvalidTargetType))
}

func TestReportContentBelowThreshold(t *testing.T) {
	svc, postRepo, _, reportRepo := newModerationFixture()
	targetID := primitive.NewObjectID().Hex()

	postRepo.On("FindByID", mock.Anything, targetID).Return(&model.Post{Title: "丢失的钱包"}, nil)
	reportRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Report) bool {
		return r.TargetID == targetID && r.TargetType == "post" &&
			r.ReporterUsername == "alice" && r.Reason == DefaultReportReason
	})).Return(&model.Report{}, nil)
	postRepo.On("IncrementReports", mock.Anything, targetID).Return(&model.Post{ReportsCount: 4}, nil)

	outcome, err := svc.ReportContent(context.Background(), KindPost, targetID, "alice")

	assert.NoError(t, err)
	assert.Equal(t, 4, outcome.ReportsCount)
	assert.False(t, outcome.Deleted)
	// 未达阈值不触发删除
	postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	reportRepo.AssertExpectations(t)
}

func TestReportContentReachesThreshold(t *testing.T) {
	svc, postRepo, _, reportRepo := newModerationFixture()
	targetID := primitive.NewObjectID().Hex()

	postRepo.On("FindByID", mock.Anything, targetID).Return(&model.Post{Title: "丢失的钱包"}, nil)
	reportRepo.On("Create", mock.Anything, mock.Anything).Return(&model.Report{}, nil)
	postRepo.On("IncrementReports", mock.Anything, targetID).Return(&model.Post{ReportsCount: ReportThreshold}, nil)
	postRepo.On("Delete", mock.Anything, targetID).Return(nil)

	outcome, err := svc.ReportContent(context.Background(), KindPost, targetID, "alice")

	assert.NoError(t, err)
	assert.Equal(t, ReportThreshold, outcome.ReportsCount)
	assert.True(t, outcome.Deleted)
	postRepo.AssertExpectations(t)
}

func TestReportContentCommentTarget(t *testing.T) {
	svc, _, commentRepo, reportRepo := newModerationFixture()
	targetID := primitive.NewObjectID().Hex()

	commentRepo.On("FindByID", mock.Anything, targetID).Return(&model.Comment{Content: "广告"}, nil)
	reportRepo.On("Create", mock.Anything, mock.Anything).Return(&model.Report{}, nil)
	commentRepo.On("IncrementReports", mock.Anything, targetID).Return(&model.Comment{ReportsCount: ReportThreshold}, nil)
	commentRepo.On("Delete", mock.Anything, targetID).Return(nil)

	outcome, err := svc.ReportContent(context.Background(), KindComment, targetID, "bob")

	assert.NoError(t, err)
	assert.True(t, outcome.Deleted)
	commentRepo.AssertExpectations(t)
}

func TestReportContentTargetNotFound(t *testing.T) {
	svc, postRepo, _, reportRepo := newModerationFixture()
	targetID := primitive.NewObjectID().Hex()

	postRepo.On("FindByID", mock.Anything, targetID).Return(nil, nil)

	outcome, err := svc.ReportContent(context.Background(), KindPost, targetID, "alice")

	assert.Nil(t, outcome)
	assert.True(t, errors.Is(err, errors.ErrTargetNotFound))
	// 目标不存在时不得写入任何举报记录
	reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReportContentInvalidTargetID(t *testing.T) {
	svc, postRepo, _, reportRepo := newModerationFixture()

	postRepo.On("FindByID", mock.Anything, "not-an-id").Return(nil, store.ErrInvalidID)

	_, err := svc.ReportContent(context.Background(), KindPost, "not-an-id", "alice")

	assert.True(t, errors.Is(err, errors.ErrInvalidID))
	reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReportContentConcurrentlyDeletedTarget(t *testing.T) {
	svc, postRepo, _, reportRepo := newModerationFixture()
	targetID := primitive.NewObjectID().Hex()

	// 目标在解析之后、自增之前被其他请求删除
	postRepo.On("FindByID", mock.Anything, targetID).Return(&model.Post{Title: "丢失的钱包"}, nil)
	reportRepo.On("Create", mock.Anything, mock.Anything).Return(&model.Report{}, nil)
	postRepo.On("IncrementReports", mock.Anything, targetID).Return(nil, store.ErrNoDocument)

	outcome, err := svc.ReportContent(context.Background(), KindPost, targetID, "alice")

	assert.Nil(t, outcome)
	assert.True(t, errors.Is(err, errors.ErrTargetNotFound))
}

func TestReportContentDeleteRace(t *testing.T) {
	svc, postRepo, _, reportRepo := newModerationFixture()
	targetID := primitive.NewObjectID().Hex()

	// 并发举报导致重复删除，目标已不存在时删除视为已完成
	postRepo.On("FindByID", mock.Anything, targetID).Return(&model.Post{Title: "丢失的钱包"}, nil)
	reportRepo.On("Create", mock.Anything, mock.Anything).Return(&model.Report{}, nil)
	postRepo.On("IncrementReports", mock.Anything, targetID).Return(&model.Post{ReportsCount: ReportThreshold + 1}, nil)
	postRepo.On("Delete", mock.Anything, targetID).Return(store.ErrNoDocument)

	outcome, err := svc.ReportContent(context.Background(), KindPost, targetID, "alice")

	assert.NoError(t, err)
	assert.True(t, outcome.Deleted)
	assert.Equal(t, ReportThreshold+1, outcome.ReportsCount)
}
