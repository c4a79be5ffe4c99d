package core

import (
	"context"
	"testing"
	"time"
)

func newTestHub(t *testing.T, rooms ...string) *Hub {
	t.Helper()

	directory := NewDirectory(rooms...)
	registry := NewRegistry(directory)
	hub := NewHub(registry, directory, nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	return hub
}

// connect opens a connection and, if name is non-empty, joins with it.
func connect(hub *Hub, id, name string) *Client {
	client := NewClient(id)
	hub.Dispatch(&Command{Kind: CommandRegister, Client: client})
	if name != "" {
		hub.Dispatch(&Command{Kind: CommandJoin, Client: client, Name: name})
	}
	return client
}

// mustEvent waits for the next event of the given kind, skipping others.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// drain discards everything currently queued for the client.
func drain(ch <-chan *Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

func presenceByID(ev *Event) map[string]PresenceEntry {
	out := make(map[string]PresenceEntry, len(ev.Users))
	for _, u := range ev.Users {
		out[u.ID] = u
	}
	return out
}
