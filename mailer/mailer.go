package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/vinoterra/winery-registry/common"
	"github.com/vinoterra/winery-registry/secretmanager"
)

// SendGridConfig : Sendgrid configuration
type SendGridConfig struct {
	APIKey       string `json:"api_key"`
	BaseURL      string `json:"base_url"`
	MailSendPath string `json:"mail_send_path"`
}

const (
	defaultBaseURL      = "https://api.sendgrid.com"
	defaultMailSendPath = "/v3/mail/send"
)

// Message is one outbound transactional email.
type Message struct {
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
}

//go:generate mockery --name Client --output=./mocks
type Client interface {
	Send(ctx context.Context, msg *Message) error
}

// SendGridClient relays messages through the SendGrid mail send API.
type SendGridClient struct {
	config SendGridConfig
}

// NewSendGridClient loads the SendGrid credentials from Secret Manager,
// falling back to the environment for local runs.
func NewSendGridClient(ctx context.Context) (*SendGridClient, error) {
	config := SendGridConfig{
		BaseURL:      defaultBaseURL,
		MailSendPath: defaultMailSendPath,
	}

	secretData, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretSendgrid)
	if err == nil {
		if err := json.Unmarshal(secretData, &config); err != nil {
			return nil, err
		}
	} else {
		config.APIKey = common.GetEnv("SENDGRID_API_KEY", "")
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("sendgrid api key is not configured")
	}

	return &SendGridClient{config}, nil
}

// Send performs a single mail send attempt. There is no retry; the caller
// decides whether a provider rejection is surfaced.
func (c *SendGridClient) Send(ctx context.Context, msg *Message) error {
	m := mail.NewSingleEmail(
		mail.NewEmail("", msg.From),
		msg.Subject,
		mail.NewEmail("", msg.To),
		msg.Text,
		msg.HTML,
	)

	request := sendgrid.GetRequest(c.config.APIKey, c.config.MailSendPath, c.config.BaseURL)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return err
	}

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: mail send rejected with status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}
