package service

import (
	"context"
	"errors"

	"anilab-chat-be/internal/constant"
	"anilab-chat-be/internal/pkg/logger"
	"anilab-chat-be/internal/pkg/mailer"
	"anilab-chat-be/pkg/b2b"
	"anilab-chat-be/pkg/events"
)

// LeadService delivers finished B2B leads. The mail is what counts as a
// successful dispatch; the bus event is best-effort.
type LeadService struct {
	mailer    mailer.ILeadMailer
	publisher events.Publisher
	logger    logger.ILogger
}

var _ b2b.Notifier = (*LeadService)(nil)

// NewLeadService accepts a nil publisher when no event bus is configured.
func NewLeadService(m mailer.ILeadMailer, publisher events.Publisher, log logger.ILogger) *LeadService {
	return &LeadService{mailer: m, publisher: publisher, logger: log}
}

func (s *LeadService) NotifyLead(ctx context.Context, lead b2b.Lead, excerpt []string) error {
	details := map[string]interface{}{
		"lead_id": lead.ID,
		"type":    lead.Type,
		"country": lead.Country,
	}

	err := s.mailer.SendLead(lead, excerpt)
	switch {
	case errors.Is(err, mailer.ErrDisabled):
		s.logger.Warn(constant.LogModuleLead, "Lead mail skipped, SMTP not configured", details)
	case err != nil:
		s.logger.Error(constant.LogModuleLead, "Lead mail failed", withError(details, err))
	default:
		s.logger.Info(constant.LogModuleLead, "Lead mail sent", details)
	}

	if s.publisher != nil {
		if perr := s.publisher.Publish(ctx, events.NewLeadCaptured(lead, excerpt)); perr != nil {
			s.logger.Warn(constant.LogModuleLead, "Lead event not published", withError(details, perr))
		}
	}

	return err
}

func withError(details map[string]interface{}, err error) map[string]interface{} {
	out := make(map[string]interface{}, len(details)+1)
	for k, v := range details {
		out[k] = v
	}
	out["error"] = err.Error()
	return out
}
