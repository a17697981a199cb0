package core

import (
	"context"

	"go.uber.org/zap"

	"swasthya-bot/internal/audit"
	"swasthya-bot/internal/intent"
	"swasthya-bot/internal/store"
	"swasthya-bot/internal/whatsapp"
)

// Service is the inbound-message pipeline: profile load/create, rule
// parsing, resolution, outbound send, audit append. It always terminates
// in a sent reply or a deliberate no-op; failures from the sender or the
// audit sink are logged and swallowed so one message can never poison the
// next.
type Service struct {
	store    *store.Store
	resolver *Resolver
	sender   whatsapp.Sender
	auditLog audit.Recorder
	logger   *zap.Logger
}

// NewService constructs the pipeline from its injected collaborators.
func NewService(st *store.Store, resolver *Resolver, sender whatsapp.Sender, auditLog audit.Recorder, logger *zap.Logger) *Service {
	return &Service{
		store:    st,
		resolver: resolver,
		sender:   sender,
		auditLog: auditLog,
		logger:   logger,
	}
}

// HandleMessage processes one inbound message from a channel identity.
// A missing identity is acknowledged without a reply attempt.
func (s *Service) HandleMessage(ctx context.Context, identity, text string) {
	if identity == "" {
		return
	}
	profile := s.store.Ensure(identity, text)

	it := intent.Parse(intent.Normalize(text))
	reply := s.resolver.Resolve(ctx, it, text, profile)

	if err := s.sender.Send(ctx, identity, reply); err != nil {
		s.logger.Error("outbound send failed",
			zap.String("pseudo_id", profile.PseudoID),
			zap.Error(err))
	}
	ev := audit.NewEvent(profile.PseudoID, audit.TypeMessage, text, string(it.Name))
	if err := s.auditLog.Record(ctx, ev); err != nil {
		s.logger.Error("audit append failed", zap.Error(err))
	}
}
