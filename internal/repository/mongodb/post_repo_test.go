package mongodb

import (
	"context"
	"testing"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchEmptyQuery(t *testing.T) {
	// 空查询直接返回空列表，不访问存储（store 为 nil 也不会崩溃）
	repo := NewPostRepository(nil)

	posts, err := repo.Search(context.Background(), "")

	assert.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestBuildPostPatch(t *testing.T) {
	title := "新标题"
	tag := "library"
	loc := &model.GeoPoint{Type: "Point", Coordinates: []float64{51.38, 35.68}}

	// 只有补丁中出现的字段进入 $set 文档
	set := buildPostPatch(&model.PostPatch{
		Title:    &title,
		Tag:      &tag,
		Location: loc,
	})

	assert.Equal(t, bson.M{
		"title":    "新标题",
		"tag":      "library",
		"location": loc,
	}, set)
	assert.NotContains(t, set, "type")
	assert.NotContains(t, set, "description")
	assert.NotContains(t, set, "category_key")
	assert.NotContains(t, set, "image_url")
}

func TestBuildPostPatchKeepsEmptyStrings(t *testing.T) {
	// 指针非空但值为空串时字段仍被写入，用于显式清空
	empty := ""
	set := buildPostPatch(&model.PostPatch{Description: &empty})

	assert.Equal(t, bson.M{"description": ""}, set)
}

func TestPostPatchIsEmpty(t *testing.T) {
	assert.True(t, (&model.PostPatch{}).IsEmpty())

	title := "新标题"
	assert.False(t, (&model.PostPatch{Title: &title}).IsEmpty())
}
