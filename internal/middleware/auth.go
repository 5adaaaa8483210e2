package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UsernameKey 是认证通过后写入请求上下文的键
const UsernameKey = "username"

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "需要认证"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "无效的认证格式"))
			c.Abort()
			return
		}

		username, err := util.ValidateToken(parts[1])
		if err != nil {
			util.Logger.Warn("令牌校验失败",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			errors.HandleError(c, errors.Wrap(errors.ErrInvalidToken, "无效或过期的令牌", err))
			c.Abort()
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

// CallerUsername 返回认证中间件写入的调用者用户名
func CallerUsername(c *gin.Context) string {
	username, _ := c.Get(UsernameKey)
	if s, ok := username.(string); ok {
		return s
	}
	return ""
}
