package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomList delivers the known room names to one client on connect.
	EventRoomList EventKind = iota
	// EventPresence delivers the full presence snapshot to all clients.
	EventPresence
	// EventMessage delivers a chat or system message to room members.
	EventMessage
	// EventTyping delivers a typing-indicator change to room members.
	EventTyping
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	Rooms   []string
	Users   []PresenceEntry
	Message Message
	Typing  TypingState
}

// PresenceEntry is one connection's slot in a presence snapshot.
type PresenceEntry struct {
	ID   string
	Name string
	Room string
}

// TypingState carries a transient typing indicator.
type TypingState struct {
	Name     string
	IsTyping bool
}
