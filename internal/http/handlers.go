package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"swasthya-bot/internal/core"
	"swasthya-bot/pkg"
)

// Server bundles the dependencies required by the webhook handlers. It
// implements http.Handler so it can be passed to http.ListenAndServe.
type Server struct {
	service     *core.Service
	verifyToken string
	logger      *zap.Logger
	startedAt   time.Time
	router      chi.Router
}

// NewServer constructs the HTTP transport around the inbound pipeline.
func NewServer(service *core.Service, verifyToken string, logger *zap.Logger) *Server {
	s := &Server{
		service:     service,
		verifyToken: verifyToken,
		logger:      logger,
		startedAt:   time.Now(),
	}
	r := chi.NewRouter()
	r.Get("/", s.handleHealth)
	r.Get("/webhook", s.handleVerify)
	r.Post("/webhook", s.handleWebhook)
	s.router = r
	return s
}

// ServeHTTP dispatches to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleVerify implements the Meta webhook verification handshake: echo
// the challenge when the mode and token match, 403 otherwise.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode := q.Get("hub.mode")
	token := q.Get("hub.verify_token")
	challenge := q.Get("hub.challenge")

	if mode == "subscribe" && token == s.verifyToken && token != "" {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(challenge))
		return
	}
	w.WriteHeader(http.StatusForbidden)
}

// handleWebhook receives inbound messages. Malformed or non-message
// payloads are acknowledged without processing; the endpoint always
// answers 200 so the channel never retries into a failing handler.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	defer w.WriteHeader(http.StatusOK)

	var payload pkg.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.logger.Warn("undecodable webhook payload", zap.Error(err))
		return
	}
	if payload.Object != "whatsapp_business_account" {
		return
	}
	msg, ok := firstMessage(payload)
	if !ok || msg.From == "" || msg.Text == nil {
		// Non-text or incomplete events are acknowledged, never replied to.
		return
	}
	s.service.HandleMessage(r.Context(), msg.From, msg.Text.Body)
}

// handleHealth reports liveness and uptime.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pkg.HealthResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(s.startedAt).Seconds(),
	})
}

func firstMessage(payload pkg.WebhookPayload) (pkg.Message, bool) {
	if len(payload.Entry) == 0 {
		return pkg.Message{}, false
	}
	entry := payload.Entry[0]
	if len(entry.Changes) == 0 {
		return pkg.Message{}, false
	}
	value := entry.Changes[0].Value
	if len(value.Messages) == 0 {
		return pkg.Message{}, false
	}
	return value.Messages[0], true
}
