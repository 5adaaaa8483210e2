package service

import (
	"context"
	"math"
	"testing"

	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validPost() *model.Post {
	return &model.Post{
		Type:        model.PostTypeLost,
		Title:       "黑色钱包",
		CategoryKey: "Wallets / Cards",
		Description: "在图书馆丢失",
		Location: &model.GeoPoint{
			Type:        "Point",
			Coordinates: []float64{51.38, 35.68},
		},
	}
}

func TestCreatePostForcesCallerIdentity(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo)

	// 请求体携带的发布者和举报数必须被覆盖
	input := validPost()
	input.PublisherUsername = "mallory"
	input.ReportsCount = 7

	postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
		return p.PublisherUsername == "alice" && p.ReportsCount == 0
	})).Return(input, nil)

	created, err := svc.CreatePost(context.Background(), input, "alice")

	assert.NoError(t, err)
	assert.Equal(t, "alice", created.PublisherUsername)
	assert.Equal(t, 0, created.ReportsCount)
	postRepo.AssertExpectations(t)
}

func TestCreatePostValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Post)
	}{
		{"类型非法", func(p *model.Post) { p.Type = "stolen" }},
		{"标题为空", func(p *model.Post) { p.Title = "" }},
		{"分类为空", func(p *model.Post) { p.CategoryKey = "" }},
		{"位置为空", func(p *model.Post) { p.Location = nil }},
		{"位置类型非法", func(p *model.Post) { p.Location.Type = "Polygon" }},
		{"坐标数量错误", func(p *model.Post) { p.Location.Coordinates = []float64{51.38} }},
		{"坐标非有限值", func(p *model.Post) { p.Location.Coordinates = []float64{math.NaN(), 35.68} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			svc := NewPostService(postRepo)

			post := validPost()
			tc.mutate(post)

			_, err := svc.CreatePost(context.Background(), post, "alice")

			assert.True(t, errors.Is(err, errors.ErrValidation))
			postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGetPostByID(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo)
	id := primitive.NewObjectID().Hex()

	postRepo.On("FindByID", mock.Anything, id).Return(&model.Post{Title: "黑色钱包"}, nil)

	post, err := svc.GetPostByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, "黑色钱包", post.Title)
}

func TestGetPostByIDNotFound(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo)
	id := primitive.NewObjectID().Hex()

	postRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.GetPostByID(context.Background(), id)

	assert.True(t, errors.Is(err, errors.ErrPostNotFound))
}

func TestUpdatePostNotFound(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo)
	id := primitive.NewObjectID().Hex()

	title := "新标题"
	patch := &model.PostPatch{Title: &title}
	postRepo.On("Update", mock.Anything, id, patch).Return(nil, store.ErrNoDocument)

	_, err := svc.UpdatePost(context.Background(), id, patch)

	assert.True(t, errors.Is(err, errors.ErrPostNotFound))
}

func TestUpdatePostRejectsInvalidLocation(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo)

	patch := &model.PostPatch{
		Location: &model.GeoPoint{Type: "Point", Coordinates: []float64{51.38}},
	}

	_, err := svc.UpdatePost(context.Background(), primitive.NewObjectID().Hex(), patch)

	assert.True(t, errors.Is(err, errors.ErrValidation))
	postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletePostInvalidID(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo)

	postRepo.On("Delete", mock.Anything, "oops").Return(store.ErrInvalidID)

	err := svc.DeletePost(context.Background(), "oops")

	assert.True(t, errors.Is(err, errors.ErrInvalidID))
}

func TestListAllNormalizesNilSlice(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo)

	postRepo.On("FindAll", mock.Anything).Return(nil, nil)

	posts, err := svc.ListAll(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestMapItemsProjection(t *testing.T) {
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo)

	lost := validPost()
	lost.ID = primitive.NewObjectID()

	found := validPost()
	found.ID = primitive.NewObjectID()
	found.Type = model.PostTypeFound
	found.Location = nil

	malformed := validPost()
	malformed.ID = primitive.NewObjectID()
	malformed.Location = &model.GeoPoint{Type: "Point", Coordinates: []float64{51.38}}

	postRepo.On("FindAll", mock.Anything).Return([]*model.Post{lost, found, malformed}, nil)

	items, err := svc.MapItems(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 3)

	// 存储为 [经度, 纬度]，投影后纬度在 lat、经度在 lng
	assert.Equal(t, "missing", items[0].Status)
	assert.Equal(t, lost.ID.Hex(), items[0].ID)
	assert.Equal(t, lost.Title, items[0].ItemName)
	assert.Equal(t, 35.68, items[0].Location.Lat)
	assert.Equal(t, 51.38, items[0].Location.Lng)

	// 位置缺失或畸形的帖子仍出现在列表中，位置为空
	assert.Equal(t, "found", items[1].Status)
	assert.Nil(t, items[1].Location)
	assert.Nil(t, items[2].Location)
}
