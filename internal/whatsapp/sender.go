// Package whatsapp delivers outbound text messages through the WhatsApp
// Business Cloud API.
package whatsapp

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Sender delivers a text message to a channel identity (an E.164 phone
// number without the plus). Failures are logged and swallowed by callers;
// there is no synchronous retry.
type Sender interface {
	Send(ctx context.Context, to, text string) error
}

const graphAPIBase = "https://graph.facebook.com/v18.0"

// Client is a Sender backed by the Graph API messages endpoint.
type Client struct {
	http          *resty.Client
	token         string
	phoneNumberID string
	logger        *zap.Logger
}

// NewClient constructs a WhatsApp sender. With empty credentials the
// client warns once per send and drops the message, which keeps local
// development working without a Meta account.
func NewClient(token, phoneNumberID string, logger *zap.Logger) *Client {
	http := resty.New().
		SetBaseURL(graphAPIBase).
		SetTimeout(15 * time.Second)
	return &Client{http: http, token: token, phoneNumberID: phoneNumberID, logger: logger}
}

type textPayload struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		PreviewURL bool   `json:"preview_url"`
		Body       string `json:"body"`
	} `json:"text"`
}

// Send posts a text message to the Graph API.
func (c *Client) Send(ctx context.Context, to, text string) error {
	if c.token == "" || c.phoneNumberID == "" {
		c.logger.Warn("whatsapp credentials are not configured, dropping message")
		return nil
	}
	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
	}
	payload.Text.PreviewURL = false
	payload.Text.Body = text

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fmt.Sprintf("/%s/messages", c.phoneNumberID))
	if err != nil {
		return fmt.Errorf("whatsapp send: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("whatsapp send: status %s: %s", resp.Status(), resp.String())
	}
	return nil
}
