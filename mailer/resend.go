package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/viper"
)

const resendEndpoint = "https://api.resend.com/emails"

// Resend sends codes through the Resend HTTP API.
type Resend struct {
	http   *http.Client
	apiKey string
	from   string
}

func NewResend() *Resend {
	return &Resend{
		http:   &http.Client{Timeout: viper.GetDuration("mail.timeout")},
		apiKey: viper.GetString("mail.resend.api_key"),
		from:   viper.GetString("mail.from"),
	}
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (r *Resend) SendCode(ctx context.Context, to, code, displayName string) error {
	body, err := json.Marshal(resendPayload{
		From:    r.from,
		To:      []string{to},
		Subject: codeSubject(),
		HTML:    codeBody(code, displayName),
	})
	if err != nil {
		return fmt.Errorf("resend: failed to encode payload, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("resend: failed to build request, %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("resend: send failed, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return fmt.Errorf("resend: unexpected status %d, %s", resp.StatusCode, msg)
	}

	return nil
}
