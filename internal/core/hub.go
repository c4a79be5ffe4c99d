package core

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Hub is the broadcast engine. It owns all room-membership and presence
// mutations: every inbound command is processed to completion by a
// single goroutine draining one mailbox, which serializes state changes
// without locks. Outbound fan-out never blocks the dispatcher; each
// client's buffered channel absorbs sends and slow consumers drop.
type Hub struct {
	registry  *Registry
	directory *Directory
	clients   map[string]*Client
	commands  chan *Command
	done      chan struct{}
	lastMsgID int64
	log       *zerolog.Logger
}

// NewHub builds a hub around an injected registry and directory.
func NewHub(registry *Registry, directory *Directory, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		registry:  registry,
		directory: directory,
		clients:   make(map[string]*Client),
		commands:  make(chan *Command, 64),
		done:      make(chan struct{}),
		log:       logger,
	}
}

// Dispatch queues a command for the dispatch goroutine. Commands issued
// after the hub has stopped are discarded.
func (h *Hub) Dispatch(cmd *Command) {
	select {
	case h.commands <- cmd:
	case <-h.done:
	}
}

// Run drains the mailbox until the context is cancelled. It must be
// running before any command is dispatched.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case cmd := <-h.commands:
			h.handle(cmd)
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handle(cmd *Command) {
	switch cmd.Kind {
	case CommandRegister:
		h.handleRegister(cmd.Client)
	case CommandJoin:
		h.handleJoin(cmd.Client, cmd.Name)
	case CommandSwitchRoom:
		h.handleSwitchRoom(cmd.Client, cmd.Room)
	case CommandSendMessage:
		h.handleSendMessage(cmd.Client, cmd.Text)
	case CommandTyping:
		h.handleTyping(cmd.Client, cmd.IsTyping)
	case CommandDisconnect:
		h.handleDisconnect(cmd.Client)
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.clients[client.ID] = client
	client.send(&Event{Kind: EventRoomList, Rooms: h.directory.List()})
	h.log.Debug().Str("conn_id", client.ID).Msg("connection opened")
}

func (h *Hub) handleJoin(client *Client, name string) {
	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if !h.registry.Register(client.ID, name) {
		// Join is accepted once per connection.
		return
	}

	h.broadcastRoom(DefaultRoom, &Event{
		Kind:    EventMessage,
		Message: h.systemMessage(DefaultRoom, name+" joined"),
	})
	h.broadcastPresence()
	h.log.Info().Str("conn_id", client.ID).Str("name", name).Msg("user joined")
}

func (h *Hub) handleSwitchRoom(client *Client, room string) {
	if !h.registry.SetRoom(client.ID, room) {
		// Unregistered connection or unknown room; fail silent.
		return
	}
	// No left/joined notice on room switch, only the presence update.
	h.broadcastPresence()
	h.log.Debug().Str("conn_id", client.ID).Str("room", room).Msg("room switched")
}

func (h *Hub) handleSendMessage(client *Client, text string) {
	name, room, ok := h.registry.Lookup(client.ID)
	if !ok {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	h.lastMsgID++
	h.broadcastRoom(room, &Event{
		Kind: EventMessage,
		Message: Message{
			ID:        h.lastMsgID,
			Room:      room,
			From:      name,
			Text:      text,
			CreatedAt: time.Now(),
		},
	})
}

func (h *Hub) handleTyping(client *Client, isTyping bool) {
	name, room, ok := h.registry.Lookup(client.ID)
	if !ok {
		return
	}
	h.broadcastRoom(room, &Event{
		Kind:   EventTyping,
		Typing: TypingState{Name: name, IsTyping: isTyping},
	})
}

func (h *Hub) handleDisconnect(client *Client) {
	delete(h.clients, client.ID)
	if h.registry.Unregister(client.ID) {
		h.broadcastPresence()
		h.log.Info().Str("conn_id", client.ID).Msg("user disconnected")
	}
}

func (h *Hub) systemMessage(room, text string) Message {
	h.lastMsgID++
	return Message{
		ID:        h.lastMsgID,
		Room:      room,
		From:      SystemSender,
		Text:      text,
		CreatedAt: time.Now(),
		System:    true,
	}
}

// broadcastPresence publishes the full snapshot to every open
// connection, joined or not. The room sidebar shows global counts, so
// presence is never scoped to a single room.
func (h *Hub) broadcastPresence() {
	snapshot := h.registry.Snapshot()
	for _, client := range h.clients {
		client.send(&Event{Kind: EventPresence, Users: snapshot})
	}
}

// broadcastRoom sends an event to every connection whose current room
// matches at this exact moment, including the sender.
func (h *Hub) broadcastRoom(room string, ev *Event) {
	for id, client := range h.clients {
		_, r, ok := h.registry.Lookup(id)
		if !ok || r != room {
			continue
		}
		if !client.send(ev) {
			h.log.Warn().Str("conn_id", id).Msg("event dropped, slow consumer")
		}
	}
}
