package core

import "time"

// SystemSender is the reserved sender name for synthetic notices.
const SystemSender = "system"

// Message is an ephemeral broadcast unit. Messages are never persisted;
// ids only need to be unique within the process lifetime.
type Message struct {
	ID        int64
	Room      string
	From      string
	Text      string
	CreatedAt time.Time
	System    bool
}
