package mongodb

import (
	"context"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.uber.org/zap"
)

type reportRepository struct {
	store *store.Store
}

func NewReportRepository(s *store.Store) *reportRepository {
	return &reportRepository{store: s}
}

// Create 插入举报记录。举报是只追加的审计数据，没有更新操作。
func (r *reportRepository) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	report.CreatedAt = time.Now()

	id, err := r.store.InsertOne(ctx, store.CollReports, report)
	if err != nil {
		util.Logger.Error("记录举报失败",
			zap.Error(err),
			zap.String("target_id", report.TargetID),
			zap.String("target_type", report.TargetType))
		return nil, err
	}

	report.ID = id
	return report, nil
}
