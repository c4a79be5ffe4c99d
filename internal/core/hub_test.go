package core

import (
	"fmt"
	"testing"
)

func TestConnectReceivesRoomList(t *testing.T) {
	hub := newTestHub(t, "homework", "sports")

	client := connect(hub, "c1", "")

	ev := mustEvent(t, client.Events, EventRoomList)
	want := map[string]bool{DefaultRoom: true, "homework": true, "sports": true}
	if len(ev.Rooms) != len(want) {
		t.Fatalf("unexpected room list: %v", ev.Rooms)
	}
	for _, name := range ev.Rooms {
		if !want[name] {
			t.Fatalf("unexpected room %q in list %v", name, ev.Rooms)
		}
	}
}

func TestJoinLandsInDefaultRoomWithSystemNotice(t *testing.T) {
	hub := newTestHub(t)

	ada := connect(hub, "c1", "Ada")

	msg := mustEvent(t, ada.Events, EventMessage)
	if !msg.Message.System || msg.Message.From != SystemSender {
		t.Fatalf("expected system notice, got %+v", msg.Message)
	}
	if msg.Message.Text != "Ada joined" || msg.Message.Room != DefaultRoom {
		t.Fatalf("unexpected join notice: %+v", msg.Message)
	}

	presence := mustEvent(t, ada.Events, EventPresence)
	if len(presence.Users) != 1 {
		t.Fatalf("expected single presence entry, got %v", presence.Users)
	}
	if u := presence.Users[0]; u.ID != "c1" || u.Name != "Ada" || u.Room != DefaultRoom {
		t.Fatalf("unexpected presence entry: %+v", u)
	}
}

func TestMessageDeliveredToRoomMembersIncludingSender(t *testing.T) {
	hub := newTestHub(t, "tech")

	ada := connect(hub, "c1", "Ada")
	bob := connect(hub, "c2", "Bob")

	// Sync on Bob's join before sending.
	mustEvent(t, bob.Events, EventPresence)

	hub.Dispatch(&Command{Kind: CommandSendMessage, Client: ada, Text: "hello"})

	for name, client := range map[string]*Client{"ada": ada, "bob": bob} {
		ev := mustEvent(t, client.Events, EventMessage)
		for ev.Message.System {
			ev = mustEvent(t, client.Events, EventMessage)
		}
		if ev.Message.From != "Ada" || ev.Message.Text != "hello" || ev.Message.Room != DefaultRoom {
			t.Fatalf("%s got unexpected message: %+v", name, ev.Message)
		}
	}
}

func TestMessageNotDeliveredAcrossRooms(t *testing.T) {
	hub := newTestHub(t, "tech")

	ada := connect(hub, "c1", "Ada")
	bob := connect(hub, "c2", "Bob")
	mustEvent(t, bob.Events, EventPresence)

	hub.Dispatch(&Command{Kind: CommandSwitchRoom, Client: ada, Room: "tech"})
	for {
		presence := mustEvent(t, ada.Events, EventPresence)
		if presenceByID(presence)["c1"].Room == "tech" {
			break
		}
	}
	drain(ada.Events)

	// Bob talks in general; Ada, now in tech, must not see it. Her own
	// message in tech is the sentinel: single-threaded dispatch means
	// anything misrouted to her would have arrived first.
	hub.Dispatch(&Command{Kind: CommandSendMessage, Client: bob, Text: "general only"})
	hub.Dispatch(&Command{Kind: CommandSendMessage, Client: ada, Text: "tech only"})

	ev := mustEvent(t, ada.Events, EventMessage)
	if ev.Message.Text != "tech only" || ev.Message.Room != "tech" {
		t.Fatalf("Ada saw a foreign-room message: %+v", ev.Message)
	}
}

func TestSwitchRoomUpdatesPresenceForAll(t *testing.T) {
	hub := newTestHub(t, "sports")

	ada := connect(hub, "c1", "Ada")
	bob := connect(hub, "c2", "Bob")
	mustEvent(t, bob.Events, EventPresence)

	hub.Dispatch(&Command{Kind: CommandSwitchRoom, Client: bob, Room: "sports"})

	// Both connections see the updated snapshot, one entry per connection.
	for name, client := range map[string]*Client{"ada": ada, "bob": bob} {
		var ev *Event
		for {
			ev = mustEvent(t, client.Events, EventPresence)
			if presenceByID(ev)["c2"].Room == "sports" {
				break
			}
		}
		if len(ev.Users) != 2 {
			t.Fatalf("%s: expected two presence entries, got %v", name, ev.Users)
		}
		byID := presenceByID(ev)
		if byID["c1"].Room != DefaultRoom || byID["c2"].Room != "sports" {
			t.Fatalf("%s: unexpected snapshot %v", name, ev.Users)
		}
	}
}

func TestSwitchToUnknownRoomIgnored(t *testing.T) {
	hub := newTestHub(t)

	ada := connect(hub, "c1", "Ada")
	mustEvent(t, ada.Events, EventPresence)
	drain(ada.Events)

	hub.Dispatch(&Command{Kind: CommandSwitchRoom, Client: ada, Room: "ghost"})
	hub.Dispatch(&Command{Kind: CommandSendMessage, Client: ada, Text: "still here"})

	// The message lands in general: the invalid switch was a no-op.
	ev := mustEvent(t, ada.Events, EventMessage)
	if ev.Message.Room != DefaultRoom {
		t.Fatalf("expected message in %q, got %+v", DefaultRoom, ev.Message)
	}
}

func TestNameImmutableAfterJoin(t *testing.T) {
	hub := newTestHub(t)

	ada := connect(hub, "c1", "Ada")
	mustEvent(t, ada.Events, EventPresence)

	// A second join must not rename the connection.
	hub.Dispatch(&Command{Kind: CommandJoin, Client: ada, Name: "Eve"})
	hub.Dispatch(&Command{Kind: CommandSendMessage, Client: ada, Text: "hi"})

	var ev *Event
	for ev = mustEvent(t, ada.Events, EventMessage); ev.Message.System; {
		ev = mustEvent(t, ada.Events, EventMessage)
	}
	if ev.Message.From != "Ada" {
		t.Fatalf("sender name changed after second join: %+v", ev.Message)
	}
}

func TestEventsBeforeJoinIgnored(t *testing.T) {
	hub := newTestHub(t)

	bob := connect(hub, "c2", "Bob")
	mustEvent(t, bob.Events, EventPresence)
	drain(bob.Events)

	ghost := connect(hub, "c1", "")
	hub.Dispatch(&Command{Kind: CommandSendMessage, Client: ghost, Text: "boo"})
	hub.Dispatch(&Command{Kind: CommandTyping, Client: ghost, IsTyping: true})
	hub.Dispatch(&Command{Kind: CommandSwitchRoom, Client: ghost, Room: DefaultRoom})

	hub.Dispatch(&Command{Kind: CommandSendMessage, Client: bob, Text: "sentinel"})
	ev := mustEvent(t, bob.Events, EventMessage)
	if ev.Message.Text != "sentinel" || ev.Message.From != "Bob" {
		t.Fatalf("unnamed connection leaked traffic: %+v", ev.Message)
	}
}

func TestWhitespaceMessageDropped(t *testing.T) {
	hub := newTestHub(t)

	ada := connect(hub, "c1", "Ada")
	mustEvent(t, ada.Events, EventPresence)
	drain(ada.Events)

	hub.Dispatch(&Command{Kind: CommandSendMessage, Client: ada, Text: "   \t  "})
	hub.Dispatch(&Command{Kind: CommandSendMessage, Client: ada, Text: "  real  "})

	ev := mustEvent(t, ada.Events, EventMessage)
	if ev.Message.Text != "real" {
		t.Fatalf("expected trimmed message, got %+v", ev.Message)
	}
}

func TestTypingRelayedToRoom(t *testing.T) {
	hub := newTestHub(t)

	ada := connect(hub, "c1", "Ada")
	bob := connect(hub, "c2", "Bob")
	mustEvent(t, bob.Events, EventPresence)

	hub.Dispatch(&Command{Kind: CommandTyping, Client: ada, IsTyping: true})
	ev := mustEvent(t, bob.Events, EventTyping)
	if ev.Typing.Name != "Ada" || !ev.Typing.IsTyping {
		t.Fatalf("unexpected typing event: %+v", ev.Typing)
	}

	// typing(false) with no prior typing(true) is only observable as a
	// cleared indicator, never an error. Ada sees her own earlier
	// indicator first, so skip to Bob's.
	hub.Dispatch(&Command{Kind: CommandTyping, Client: bob, IsTyping: false})
	for ev = mustEvent(t, ada.Events, EventTyping); ev.Typing.Name != "Bob"; {
		ev = mustEvent(t, ada.Events, EventTyping)
	}
	if ev.Typing.IsTyping {
		t.Fatalf("unexpected typing event: %+v", ev.Typing)
	}
}

func TestDisconnectRemovesPresence(t *testing.T) {
	hub := newTestHub(t)

	ada := connect(hub, "c1", "Ada")
	bob := connect(hub, "c2", "Bob")
	connect(hub, "c3", "Carol")
	for {
		if len(mustEvent(t, ada.Events, EventPresence).Users) == 3 {
			break
		}
	}

	hub.Dispatch(&Command{Kind: CommandDisconnect, Client: bob})

	ev := mustEvent(t, ada.Events, EventPresence)
	for len(ev.Users) != 2 {
		ev = mustEvent(t, ada.Events, EventPresence)
	}
	byID := presenceByID(ev)
	if _, stale := byID["c2"]; stale {
		t.Fatalf("stale entry for disconnected connection: %v", ev.Users)
	}
	if len(byID) != 2 {
		t.Fatalf("duplicate presence entries: %v", ev.Users)
	}
}

func TestDisconnectWithoutJoinEmitsNoPresence(t *testing.T) {
	hub := newTestHub(t)

	bob := connect(hub, "c2", "Bob")
	mustEvent(t, bob.Events, EventPresence)
	drain(bob.Events)

	ghost := connect(hub, "c1", "")
	hub.Dispatch(&Command{Kind: CommandDisconnect, Client: ghost})

	// Ada's join is the sentinel: the first presence Bob sees after the
	// ghost disconnect must be the two-entry snapshot from that join,
	// not a snapshot triggered by the ghost.
	connect(hub, "c3", "Ada")
	ev := mustEvent(t, bob.Events, EventPresence)
	if len(ev.Users) != 2 {
		t.Fatalf("unexpected presence broadcast after unnamed disconnect: %v", ev.Users)
	}
}

func TestMessageIDsStrictlyIncrease(t *testing.T) {
	hub := newTestHub(t)

	ada := connect(hub, "c1", "Ada")
	mustEvent(t, ada.Events, EventPresence)
	drain(ada.Events)

	for i := 0; i < 5; i++ {
		hub.Dispatch(&Command{Kind: CommandSendMessage, Client: ada, Text: fmt.Sprintf("m%d", i)})
	}

	var last int64
	for i := 0; i < 5; i++ {
		ev := mustEvent(t, ada.Events, EventMessage)
		if ev.Message.ID <= last {
			t.Fatalf("message id not increasing: %d after %d", ev.Message.ID, last)
		}
		last = ev.Message.ID
	}
}
