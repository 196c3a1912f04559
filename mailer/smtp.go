package mailer

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// SMTP sends codes through a plain SMTP relay.
type SMTP struct {
	host     string
	port     int
	from     string
	password string
}

func NewSMTP() *SMTP {
	return &SMTP{
		host:     viper.GetString("mail.smtp.host"),
		port:     viper.GetInt("mail.smtp.port"),
		from:     viper.GetString("mail.from"),
		password: viper.GetString("mail.smtp.password"),
	}
}

func (s *SMTP) SendCode(ctx context.Context, to, code, displayName string) error {
	if to == s.from {
		return fmt.Errorf("invalid recipient address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", codeSubject())
	m.SetBody("text/html", codeBody(code, displayName))

	d := gomail.NewDialer(s.host, s.port, s.from, s.password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	// gomail has no context support, so honor cancellation ourselves
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send failed, %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
