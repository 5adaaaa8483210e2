package auth

import (
	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/service"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler 处理与认证相关的HTTP请求
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService}
}

// Login 处理用户登录请求
func (h *AuthHandler) Login(c *gin.Context) {
	var loginData struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), loginData.Username, loginData.Password)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, gin.H{
		"access_token": token,
		"user":         user,
	}, "登录成功")
}

// SendOTP 处理注册验证码发送请求
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var requestData struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的邮箱格式", err))
		return
	}

	if err := h.userService.SendOTP(c.Request.Context(), requestData.Email); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "验证码已发送至邮箱")
}

// ConfirmRegister 处理注册确认请求
func (h *AuthHandler) ConfirmRegister(c *gin.Context) {
	var registerData struct {
		Email           string `json:"email" binding:"required,email"`
		OTPCode         string `json:"otp_code" binding:"required"`
		Username        string `json:"username" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&registerData); err != nil {
		util.Logger.Warn("注册失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "无效的请求数据", err))
		return
	}

	user, err := h.userService.ConfirmRegister(c.Request.Context(), service.RegisterInput{
		Email:           registerData.Email,
		OTPCode:         registerData.OTPCode,
		Username:        registerData.Username,
		Password:        registerData.Password,
		ConfirmPassword: registerData.ConfirmPassword,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, gin.H{
		"user_id": user.ID.Hex(),
	}, "注册成功")
}
