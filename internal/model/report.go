package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report 举报记录，只追加不修改
type Report struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReporterUsername string             `json:"reporter_username" bson:"reporter_username"`
	TargetID         string             `json:"target_id" bson:"target_id"`
	TargetType       string             `json:"target_type" bson:"target_type"`
	Reason           string             `json:"reason" bson:"reason"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}

// ReportOutcome 举报处理结果
type ReportOutcome struct {
	ReportsCount int  `json:"reports_count"`
	Deleted      bool `json:"deleted"`
}
