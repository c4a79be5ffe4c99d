// Package contact implements the stateless contact-form endpoint:
// validate, record, mail. It is fully independent of the chat relay.
package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campuschat-server/internal/store"
)

var (
	// ErrMissingFields means at least one field was empty after trimming.
	ErrMissingFields = errors.New("all fields are required")
	// ErrSendTimeout means the mail send did not finish in time. The
	// submission is already recorded, so callers treat this as accepted.
	ErrSendTimeout = errors.New("send mail timed out")
)

// Submission is one contact-form request.
type Submission struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Sender delivers a submission to the school inbox.
type Sender interface {
	Send(ctx context.Context, sub Submission) error
}

// Service validates submissions, records them, and mails them out.
type Service struct {
	store       store.Store
	sender      Sender
	sendTimeout time.Duration
	log         *zerolog.Logger
}

// NewService builds a contact service. A nil sender disables outbound
// mail; submissions are still recorded.
func NewService(st store.Store, sender Sender, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Service{
		store:       st,
		sender:      sender,
		sendTimeout: 6 * time.Second,
		log:         logger,
	}
}

// Submit processes one contact-form request. Field validation failures
// return ErrMissingFields. The submission is recorded before mailing so
// a broken SMTP setup never loses it; a send that outlives the timeout
// returns ErrSendTimeout with the record already in place.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Subject = strings.TrimSpace(sub.Subject)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)

	if sub.Name == "" || sub.Subject == "" || sub.Email == "" || sub.Message == "" {
		return ErrMissingFields
	}

	record := &store.ContactSubmission{
		Name:    sub.Name,
		Subject: sub.Subject,
		Email:   sub.Email,
		Message: sub.Message,
	}
	if err := s.store.SaveSubmission(ctx, record); err != nil {
		return err
	}

	if s.sender == nil {
		s.log.Debug().Int64("submission_id", record.ID).Msg("mail disabled, submission recorded only")
		return nil
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	if err := s.sender.Send(sendCtx, sub); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.log.Warn().Int64("submission_id", record.ID).Msg("mail send timed out")
			return ErrSendTimeout
		}
		s.log.Error().Err(err).Int64("submission_id", record.ID).Msg("mail send failed")
		return err
	}

	if err := s.store.MarkDelivered(ctx, record.ID); err != nil {
		s.log.Warn().Err(err).Int64("submission_id", record.ID).Msg("failed to mark submission delivered")
	}
	return nil
}
