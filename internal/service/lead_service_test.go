package service

import (
	"context"
	"errors"
	"testing"

	"anilab-chat-be/internal/pkg/logger"
	"anilab-chat-be/internal/pkg/mailer"
	"anilab-chat-be/pkg/b2b"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadServiceNotifyLead(t *testing.T) {
	lead := b2b.Lead{ID: "l1", Email: "jana@example.com", Type: "Distribution"}

	tests := []struct {
		name       string
		mailErr    error
		publishErr error
		publisher  bool
		wantErr    error
	}{
		{name: "mail only", publisher: false},
		{name: "mail and event", publisher: true},
		{name: "event failure is ignored", publisher: true, publishErr: errors.New("nats: timeout")},
		{name: "mail disabled", mailErr: mailer.ErrDisabled, publisher: true, wantErr: mailer.ErrDisabled},
		{name: "mail failure", mailErr: errors.New("smtp: 535"), publisher: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMailer{err: tt.mailErr}
			bus := &fakePublisher{err: tt.publishErr}

			svc := NewLeadService(m, nil, logger.NewNopLogger())
			if tt.publisher {
				svc = NewLeadService(m, bus, logger.NewNopLogger())
			}

			err := svc.NotifyLead(context.Background(), lead, []string{"ahoj"})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.mailErr != nil:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}

			require.Len(t, m.leads, 1)
			assert.Equal(t, "l1", m.leads[0].ID)
			if tt.publisher {
				assert.Len(t, bus.events, 1)
			} else {
				assert.Empty(t, bus.events)
			}
		})
	}
}
