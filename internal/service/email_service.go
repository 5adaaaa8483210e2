package service

import (
	"crypto/tls"
	"fmt"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/config"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"go.uber.org/zap"
	"gopkg.in/mail.v2"
)

// EmailService 通过SMTP发送通知邮件
type EmailService struct {
	smtpHost string
	smtpPort int
	username string
	password string
}

func NewEmailService() *EmailService {
	return &EmailService{
		smtpHost: config.AppConfig.SMTPHost,
		smtpPort: config.AppConfig.SMTPPort,
		username: config.AppConfig.SMTPUsername,
		password: config.AppConfig.SMTPPassword,
	}
}

// SendOTPEmail 异步发送注册验证码
func (s *EmailService) SendOTPEmail(email, code string) {
	subject := "校园失物招领注册验证码"
	body := fmt.Sprintf("您的注册验证码是：<b>%s</b><br><br>验证码将在 %d 分钟后过期，请勿泄露给他人。",
		code, config.AppConfig.OTPExpireMinutes)

	s.sendEmailAsync(email, subject, body)
}

func (s *EmailService) sendEmailAsync(to, subject, body string) {
	go func() {
		if err := s.sendEmail(to, subject, body); err != nil {
			util.Logger.Error("异步发送邮件失败", zap.Error(err), zap.String("to", to))
		}
	}()
}

func (s *EmailService) sendEmail(to, subject, body string) error {
	util.Logger.Info("开始发送邮件",
		zap.String("to", to),
		zap.String("subject", subject))

	m := mail.NewMessage()
	m.SetHeader("From", s.username)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := mail.NewDialer(s.smtpHost, s.smtpPort, s.username, s.password)
	d.Timeout = 20 * time.Second
	d.TLSConfig = &tls.Config{ServerName: s.smtpHost}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	util.Logger.Info("邮件发送成功", zap.String("to", to))
	return nil
}
