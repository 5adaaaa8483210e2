package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category 物品分类，key 唯一，创建后只读
type Category struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Key       string             `json:"key" bson:"key"`
	Title     string             `json:"title" bson:"title"`
	ColorCode string             `json:"color_code" bson:"color_code"`
}
