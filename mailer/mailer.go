// Package mailer delivers verification codes to directory-resolved
// addresses. Providers report failures as errors, never panics, so signup
// can surface a clean user-facing message.
package mailer

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
)

// Mailer dispatches a one-time verification code.
type Mailer interface {
	SendCode(ctx context.Context, to, code, displayName string) error
}

// New builds the mailer selected by mail.provider.
func New() (Mailer, error) {
	switch provider := viper.GetString("mail.provider"); provider {
	case "smtp":
		return NewSMTP(), nil
	case "resend":
		return NewResend(), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", provider)
	}
}

func codeSubject() string {
	return "Your verification code"
}

func codeBody(code, displayName string) string {
	return fmt.Sprintf(
		"Hello %s,<br><br>Your verification code is: <b>%s</b><br><br>"+
			"Enter it on the verification page to activate your account.",
		displayName, code)
}
