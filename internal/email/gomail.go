package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type gomailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewGomailService(cfg Config) Service {
	return &gomailService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *gomailService) SendWelcome(ctx context.Context, to string, name string) error {
	body := fmt.Sprintf("Hi %s,\n\nWelcome to DermaConnect. You can sign in and request a consultation any time.\n", name)
	return s.SendCustom(ctx, to, "Welcome to DermaConnect", body)
}

func (s *gomailService) SendCustom(ctx context.Context, to string, subject string, content string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", content)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
