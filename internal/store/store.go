package store

import (
	"context"
	"time"
)

// ContactSubmission is one contact-form entry kept for staff review.
// Chat traffic is never stored; this is the only persisted data.
type ContactSubmission struct {
	ID        int64
	Name      string
	Subject   string
	Email     string
	Message   string
	Delivered bool
	CreatedAt time.Time
}

// Store persists contact submissions.
type Store interface {
	// SaveSubmission inserts a submission and sets its ID.
	SaveSubmission(ctx context.Context, sub *ContactSubmission) error

	// MarkDelivered flags a submission as successfully mailed.
	MarkDelivered(ctx context.Context, id int64) error

	// ListSubmissions returns the most recent submissions, newest first.
	ListSubmissions(ctx context.Context, limit int) ([]ContactSubmission, error)

	// Close releases the underlying resources.
	Close() error
}
