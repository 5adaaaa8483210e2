package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment 帖子下的评论，parent_id 非空时表示对其他评论的回复
type Comment struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PostID            string             `json:"post_id" bson:"post_id"`
	PublisherUsername string             `json:"publisher_username" bson:"publisher_username"`
	Content           string             `json:"content" bson:"content"`
	ParentID          *string            `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	ReportsCount      int                `json:"reports_count" bson:"reports_count"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
}
