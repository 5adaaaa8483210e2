package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCommentListOptionsSortAscending(t *testing.T) {
	// 评论按创建时间从旧到新返回
	opts := commentListOptions()

	assert.Equal(t, bson.D{{Key: "created_at", Value: 1}}, opts.Sort)
}
