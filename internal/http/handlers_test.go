package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swasthya-bot/internal/audit"
	"swasthya-bot/internal/core"
	"swasthya-bot/internal/intent"
	"swasthya-bot/internal/lang"
	"swasthya-bot/internal/llm"
	"swasthya-bot/internal/store"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeSender) Send(_ context.Context, to, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to+": "+text)
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type nilGenerator struct{}

func (nilGenerator) Generate(context.Context, string, lang.Language) (string, error) {
	return "", llm.ErrUnavailable
}

type nilClassifier struct{}

func (nilClassifier) Classify(context.Context, string, lang.Language) (*intent.Intent, error) {
	return nil, nil
}

func newTestServer(sender *fakeSender) *Server {
	st := store.New(lang.NewDetector())
	resolver := core.NewResolver(nilGenerator{}, nilClassifier{}, zap.NewNop())
	service := core.NewService(st, resolver, sender, audit.NewMemoryLog(), zap.NewNop())
	return NewServer(service, "secret-token", zap.NewNop())
}

func TestWebhookVerification(t *testing.T) {
	srv := newTestServer(&fakeSender{})

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid handshake echoes challenge",
			query:      "hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345",
			wantStatus: http.StatusOK,
			wantBody:   "12345",
		},
		{
			name:       "wrong token",
			query:      "hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong mode",
			query:      "hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=12345",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing everything",
			query:      "",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/webhook?"+tt.query, nil)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

const inboundPayload = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "0",
    "changes": [{
      "field": "messages",
      "value": {
        "messaging_product": "whatsapp",
        "messages": [{"from": "919876543210", "id": "wamid.1", "type": "text", "text": {"body": "help"}}]
      }
    }]
  }]
}`

func TestWebhookInboundMessage(t *testing.T) {
	sender := &fakeSender{}
	srv := newTestServer(sender)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(inboundPayload))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, sender.count())
	assert.Contains(t, sender.sent[0], "919876543210: ")
}

func TestWebhookAcknowledgesMalformedPayloads(t *testing.T) {
	sender := &fakeSender{}
	srv := newTestServer(sender)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json at all"},
		{name: "wrong object", body: `{"object":"page","entry":[]}`},
		{name: "no entries", body: `{"object":"whatsapp_business_account","entry":[]}`},
		{name: "no messages", body: `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{}}]}]}`},
		{name: "missing phone", body: `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"messages":[{"text":{"body":"x"}}]}}]}]}`},
		{name: "non-text message", body: `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"messages":[{"from":"919876543210","type":"image"}]}}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			// Always 200, never a reply attempt.
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
	assert.Zero(t, sender.count())
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&fakeSender{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
