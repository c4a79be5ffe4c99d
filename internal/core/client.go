package core

// Client is one live connection as seen by the core layer. Display name
// and room live in the Registry once the client has joined; the client
// itself only carries the outbound event channel.
type Client struct {
	ID     string
	Events chan *Event
}

// NewClient constructs a client with a buffered event channel.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Events: make(chan *Event, 16),
	}
}

// send queues an event without blocking. Slow consumers lose events
// rather than stalling the dispatcher.
func (c *Client) send(ev *Event) bool {
	select {
	case c.Events <- ev:
		return true
	default:
		return false
	}
}
