package post

import (
	"fmt"

	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/middleware"
	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/service"
	"github.com/Rango-SAD/lost-and-found-project/internal/storage"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler 处理帖子相关的HTTP请求
type PostHandler struct {
	postService *service.PostService
	storage     storage.Storage
}

func NewPostHandler(postService *service.PostService, storage storage.Storage) *PostHandler {
	return &PostHandler{
		postService: postService,
		storage:     storage,
	}
}

// CreatePost 处理发布新帖子的请求，发布者取自认证调用者
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req struct {
		Type        string          `json:"type" binding:"required,oneof=lost found"`
		Title       string          `json:"title" binding:"required"`
		CategoryKey string          `json:"category_key" binding:"required"`
		Tag         string          `json:"tag"`
		Description string          `json:"description"`
		Location    *model.GeoPoint `json:"location" binding:"required"`
		ImageURL    string          `json:"image_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		util.Logger.Warn("发帖失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	post := &model.Post{
		Type:        req.Type,
		Title:       req.Title,
		CategoryKey: req.CategoryKey,
		Tag:         req.Tag,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	}

	created, err := h.postService.CreatePost(c.Request.Context(), post, middleware.CallerUsername(c))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, created, "帖子发布成功")
}

// GetPost 返回单个帖子详情
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, post, "")
}

func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.postService.ListAll(c.Request.Context())
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, posts, "")
}

func (h *PostHandler) ListByPublisher(c *gin.Context) {
	posts, err := h.postService.ListByPublisher(c.Request.Context(), c.Param("username"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, posts, "")
}

func (h *PostHandler) ListByCategory(c *gin.Context) {
	posts, err := h.postService.ListByCategory(c.Request.Context(), c.Param("category_key"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, posts, "")
}

func (h *PostHandler) ListByTag(c *gin.Context) {
	posts, err := h.postService.ListByTag(c.Request.Context(), c.Param("tag"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, posts, "")
}

// Search 在标题和描述上做全文检索
func (h *PostHandler) Search(c *gin.Context) {
	posts, err := h.postService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, posts, "")
}

// UpdatePost 处理部分更新，请求体中省略的字段保持不变
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var patch model.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, post, "帖子更新成功")
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "帖子删除成功")
}

// UploadImage 上传帖子图片并返回可公开访问的URL
func (h *PostHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "缺少图片文件", err))
		return
	}

	filename := util.GenerateUniqueFilename(file.Filename)
	path := fmt.Sprintf("posts/%s/%s", middleware.CallerUsername(c), filename)

	imageURL, err := h.storage.UploadFile(file, path)
	if err != nil {
		util.Logger.Error("图片上传失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "图片上传失败", err))
		return
	}

	errors.HandleSuccess(c, gin.H{"image_url": imageURL}, "图片上传成功")
}
