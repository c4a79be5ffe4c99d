package core

import "testing"

func newTestRegistry() *Registry {
	return NewRegistry(NewDirectory("homework", "sports"))
}

func TestRegisterDefaultsToGeneral(t *testing.T) {
	reg := newTestRegistry()

	if !reg.Register("c1", "Ada") {
		t.Fatal("first register refused")
	}
	name, room, ok := reg.Lookup("c1")
	if !ok || name != "Ada" || room != DefaultRoom {
		t.Fatalf("unexpected entry: %q %q %v", name, room, ok)
	}
}

func TestRegisterOnlyOnce(t *testing.T) {
	reg := newTestRegistry()

	reg.Register("c1", "Ada")
	if reg.Register("c1", "Eve") {
		t.Fatal("re-register accepted")
	}
	name, _, _ := reg.Lookup("c1")
	if name != "Ada" {
		t.Fatalf("name changed on refused register: %q", name)
	}
}

func TestDuplicateNamesAllowed(t *testing.T) {
	reg := newTestRegistry()

	if !reg.Register("c1", "Ada") || !reg.Register("c2", "Ada") {
		t.Fatal("duplicate display name refused")
	}
	if reg.Len() != 2 {
		t.Fatalf("expected two entries, got %d", reg.Len())
	}
}

func TestSetRoomValidatesDirectory(t *testing.T) {
	reg := newTestRegistry()
	reg.Register("c1", "Ada")

	if !reg.SetRoom("c1", "sports") {
		t.Fatal("switch to known room refused")
	}
	if reg.SetRoom("c1", "ghost") {
		t.Fatal("switch to unknown room accepted")
	}
	_, room, _ := reg.Lookup("c1")
	if room != "sports" {
		t.Fatalf("room changed by refused switch: %q", room)
	}
}

func TestSetRoomUnregisteredIsNoOp(t *testing.T) {
	reg := newTestRegistry()

	if reg.SetRoom("nope", "sports") {
		t.Fatal("switch for unregistered connection accepted")
	}
}

func TestUnregisterReportsExistence(t *testing.T) {
	reg := newTestRegistry()
	reg.Register("c1", "Ada")

	if !reg.Unregister("c1") {
		t.Fatal("unregister of existing entry reported false")
	}
	if reg.Unregister("c1") {
		t.Fatal("unregister of missing entry reported true")
	}
}

func TestSnapshotContent(t *testing.T) {
	reg := newTestRegistry()
	reg.Register("c1", "Ada")
	reg.Register("c2", "Bob")
	reg.SetRoom("c2", "homework")
	reg.Unregister("c1")

	snap := reg.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected one entry, got %v", snap)
	}
	if e := snap[0]; e.ID != "c2" || e.Name != "Bob" || e.Room != "homework" {
		t.Fatalf("unexpected snapshot entry: %+v", e)
	}
}
