package category

import (
	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 处理分类相关的HTTP请求
type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Key       string `json:"key" binding:"required"`
		Title     string `json:"title" binding:"required"`
		ColorCode string `json:"color_code"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	created, err := h.categoryService.CreateCategory(c.Request.Context(), &model.Category{
		Key:       req.Key,
		Title:     req.Title,
		ColorCode: req.ColorCode,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, created, "分类创建成功")
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, categories, "")
}
