package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 帖子类型：丢失 / 拾获
const (
	PostTypeLost  = "lost"
	PostTypeFound = "found"
)

// GeoPoint 按 GeoJSON 约定存储位置，coordinates 为 [经度, 纬度]
type GeoPoint struct {
	Type        string    `json:"type" bson:"type" binding:"required"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates" binding:"required,geopoint"`
}

// Post 失物招领帖子
type Post struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type              string             `json:"type" bson:"type"`
	Title             string             `json:"title" bson:"title"`
	CategoryKey       string             `json:"category_key" bson:"category_key"`
	Tag               string             `json:"tag" bson:"tag"`
	Description       string             `json:"description" bson:"description"`
	PublisherUsername string             `json:"publisher_username" bson:"publisher_username"`
	Location          *GeoPoint          `json:"location,omitempty" bson:"location,omitempty"`
	ImageURL          string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	ReportsCount      int                `json:"reports_count" bson:"reports_count"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
}

// PostPatch 部分更新载荷，nil 表示字段未提供，不参与更新
type PostPatch struct {
	Type        *string   `json:"type,omitempty"`
	Title       *string   `json:"title,omitempty"`
	CategoryKey *string   `json:"category_key,omitempty"`
	Tag         *string   `json:"tag,omitempty"`
	Description *string   `json:"description,omitempty"`
	Location    *GeoPoint `json:"location,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

// IsEmpty 判断补丁是否不包含任何字段
func (p *PostPatch) IsEmpty() bool {
	return p.Type == nil && p.Title == nil && p.CategoryKey == nil &&
		p.Tag == nil && p.Description == nil && p.Location == nil && p.ImageURL == nil
}

// MapLocation 地图展示用的位置，纬度在前
type MapLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapItem 地图视图的帖子投影
type MapItem struct {
	ID                string       `json:"id"`
	ItemName          string       `json:"itemName"`
	Status            string       `json:"status"`
	Type              string       `json:"type"`
	Title             string       `json:"title"`
	CategoryKey       string       `json:"category_key"`
	Tag               string       `json:"tag"`
	Description       string       `json:"description"`
	PublisherUsername string       `json:"publisher_username"`
	ImageURL          string       `json:"image_url,omitempty"`
	ReportsCount      int          `json:"reports_count"`
	CreatedAt         time.Time    `json:"created_at"`
	Location          *MapLocation `json:"location"`
}
