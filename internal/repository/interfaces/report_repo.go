package interfaces

import (
	"context"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"
)

type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) (*model.Report, error)
}
