package interact

import (
	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/middleware"
	"github.com/Rango-SAD/lost-and-found-project/internal/service"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InteractHandler 处理评论和举报相关的HTTP请求
type InteractHandler struct {
	commentService    *service.CommentService
	moderationService *service.ModerationService
}

func NewInteractHandler(commentService *service.CommentService, moderationService *service.ModerationService) *InteractHandler {
	return &InteractHandler{
		commentService:    commentService,
		moderationService: moderationService,
	}
}

// ListComments 返回帖子下按时间升序排列的评论
func (h *InteractHandler) ListComments(c *gin.Context) {
	comments, err := h.commentService.ListComments(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, comments, "")
}

// CreateComment 在帖子下新增评论，发布者取自认证调用者
func (h *InteractHandler) CreateComment(c *gin.Context) {
	var req struct {
		PostID   string  `json:"post_id" binding:"required"`
		Content  string  `json:"content" binding:"required"`
		ParentID *string `json:"parent_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	comment, err := h.commentService.AddComment(
		c.Request.Context(),
		req.PostID,
		req.Content,
		req.ParentID,
		middleware.CallerUsername(c),
	)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, comment, "评论发布成功")
}

// ReportContent 处理对帖子或评论的举报
func (h *InteractHandler) ReportContent(c *gin.Context) {
	kind, err := service.ParseTargetKind(c.Param("target_type"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	// 举报人优先取认证调用者，兼容请求体中携带的用户名
	reporter := middleware.CallerUsername(c)
	if reporter == "" {
		var req struct {
			ReporterUsername string `json:"reporter_username"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			reporter = req.ReporterUsername
		}
	}
	if reporter == "" {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "无法确定举报人"))
		return
	}

	outcome, err := h.moderationService.ReportContent(c.Request.Context(), kind, c.Param("target_id"), reporter)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if outcome.Deleted {
		util.Logger.Info("举报触发删除",
			zap.String("target_type", c.Param("target_type")),
			zap.String("target_id", c.Param("target_id")))
	}

	errors.HandleSuccess(c, outcome, "举报已记录")
}
