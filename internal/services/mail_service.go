package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

type MailServiceInterface interface {
	SendInvite(to, itineraryTitle, inviteToken string) error
	SendPasswordReset(to, resetToken string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	AppBaseURL string
}

func SMTPConfigFromEnv() SMTPConfig {
	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		fmt.Sscanf(p, "%d", &port)
	}
	return SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   os.Getenv("SMTP_FROM_NAME"),
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}
}

type smtpMailService struct {
	cfg SMTPConfig
}

func NewSMTPMailService(cfg SMTPConfig) MailServiceInterface {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) SendInvite(to, itineraryTitle, inviteToken string) error {
	subject := fmt.Sprintf("You've been invited to plan \"%s\"", itineraryTitle)
	link := fmt.Sprintf("%s/invites/accept?token=%s", s.cfg.AppBaseURL, inviteToken)
	body := fmt.Sprintf(
		"You have been invited to collaborate on the trip \"%s\".\r\n\r\n"+
			"Create an account and accept the invite here:\r\n%s\r\n",
		itineraryTitle, link)
	return s.send(to, subject, body)
}

func (s *smtpMailService) SendPasswordReset(to, resetToken string) error {
	subject := "Reset your password"
	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.AppBaseURL, resetToken)
	body := fmt.Sprintf(
		"A password reset was requested for your account.\r\n\r\n"+
			"Reset it here (the link expires in 30 minutes):\r\n%s\r\n\r\n"+
			"If you did not request this, ignore this mail.\r\n",
		link)
	return s.send(to, subject, body)
}

func (s *smtpMailService) send(to, subject, body string) error {
	from := s.cfg.From
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.From)
	}

	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}
