package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/mail.v2"

	"github.com/milicamilutinovic/naprednebaze/config"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

// EmailService 负责发送通知邮件，所有发送都是尽力而为
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

// SendWelcomeEmail 异步发送注册欢迎邮件，失败只记录日志
func (s *EmailService) SendWelcomeEmail(email, username string) {
	if s.username == "" {
		// 未配置 SMTP 时跳过
		return
	}

	subject := "欢迎加入"
	body := fmt.Sprintf("亲爱的 %s，\n\n欢迎加入我们的社区，现在就发布你的第一条帖子吧。\n\n%s",
		username, config.AppConfig.FrontendURL)

	go func() {
		if err := s.sendEmail(email, subject, body); err != nil {
			util.Logger.Error("异步发送邮件失败", zap.Error(err), zap.String("to", email))
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
	m.SetBody("text/plain", body)

	d := mail.NewDialer(s.smtpHost, s.smtpPort, s.username, s.password)
	d.Timeout = 20 * time.Second

	return d.DialAndSend(m)
}
