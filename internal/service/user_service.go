package service

import (
	"context"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/config"
	"github.com/Rango-SAD/lost-and-found-project/internal/errors"
	"github.com/Rango-SAD/lost-and-found-project/internal/model"
	"github.com/Rango-SAD/lost-and-found-project/internal/repository/interfaces"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput 注册确认请求的数据
type RegisterInput struct {
	Email           string
	OTPCode         string
	Username        string
	Password        string
	ConfirmPassword string
}

// UserService 处理登录和基于验证码的注册流程
type UserService struct {
	userRepo     interfaces.UserRepository
	otpRepo      interfaces.OTPRepository
	emailService *EmailService
}

func NewUserService(userRepo interfaces.UserRepository, otpRepo interfaces.OTPRepository, emailService *EmailService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		otpRepo:      otpRepo,
		emailService: emailService,
	}
}

// Login 校验用户名密码，成功返回访问令牌。
// 失败原因不区分用户不存在和密码错误，避免泄露账户信息。
func (s *UserService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if user == nil {
		return "", nil, errors.New(errors.ErrInvalidCredentials, "用户名或密码错误")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.New(errors.ErrInvalidCredentials, "用户名或密码错误")
	}

	token, err := util.GenerateToken(user.Username)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInternal, "生成令牌失败", err)
	}

	util.Logger.Info("用户登录成功", zap.String("username", user.Username))
	return token, user, nil
}

// SendOTP 为注册邮箱发送验证码。邮箱已注册时拒绝。
func (s *UserService) SendOTP(ctx context.Context, email string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if existing != nil {
		return errors.New(errors.ErrUserExists, "该邮箱已注册")
	}

	code, err := util.GenerateOTPCode(6)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "生成验证码失败", err)
	}

	expireAt := time.Now().Add(time.Duration(config.AppConfig.OTPExpireMinutes) * time.Minute)
	if err := s.otpRepo.Upsert(ctx, email, code, expireAt); err != nil {
		return errors.Wrap(errors.ErrDatabase, "保存验证码失败", err)
	}

	s.emailService.SendOTPEmail(email, code)
	return nil
}

// ConfirmRegister 校验验证码并完成注册
func (s *UserService) ConfirmRegister(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.Password != input.ConfirmPassword {
		return nil, errors.New(errors.ErrPasswordMismatch, "两次输入的密码不一致")
	}

	otp, err := s.otpRepo.FindByEmailAndCode(ctx, input.Email, input.OTPCode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询验证码失败", err)
	}
	if otp == nil {
		return nil, errors.New(errors.ErrInvalidOTP, "验证码错误")
	}
	if otp.ExpireAt.Before(time.Now()) {
		if err := s.otpRepo.DeleteByEmail(ctx, input.Email); err != nil {
			util.Logger.Error("清理过期验证码失败", zap.Error(err), zap.String("email", input.Email))
		}
		return nil, errors.New(errors.ErrOTPExpired, "验证码已过期")
	}

	existing, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if existing != nil {
		return nil, errors.New(errors.ErrUserExists, "用户名已被占用")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "密码哈希失败", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashed),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建用户失败", err)
	}

	if err := s.otpRepo.DeleteByEmail(ctx, input.Email); err != nil {
		util.Logger.Error("清理验证码失败", zap.Error(err), zap.String("email", input.Email))
	}

	return created, nil
}
