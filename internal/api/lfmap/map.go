package lfmap

import (
	"net/http"

	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/service"

	"github.com/gin-gonic/gin"
)

// MapHandler 处理地图视图的HTTP请求
type MapHandler struct {
	postService *service.PostService
}

func NewMapHandler(postService *service.PostService) *MapHandler {
	return &MapHandler{postService: postService}
}

// ListItems 返回全部帖子的地图投影。
// 前端地图组件直接消费该数组，因此这里不包响应外壳。
func (h *MapHandler) ListItems(c *gin.Context) {
	items, err := h.postService.MapItems(c.Request.Context())
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
