package core

// Registry is the authoritative mapping of connection id to display
// name and current room. It is an owned object injected into the hub,
// never a package-level singleton, so tests can run isolated instances.
//
// Not safe for concurrent use; the hub's single dispatch goroutine is
// the only mutator.
type Registry struct {
	directory *Directory
	entries   map[string]*registryEntry
	order     []string
}

type registryEntry struct {
	name string
	room string
}

// NewRegistry builds an empty registry bound to a room directory. Every
// room value held by the registry is guaranteed to exist in that
// directory.
func NewRegistry(directory *Directory) *Registry {
	return &Registry{
		directory: directory,
		entries:   make(map[string]*registryEntry),
	}
}

// Register inserts a new entry with the room defaulted to DefaultRoom.
// A connection may register only once; re-registration is refused.
// Duplicate display names across connections are permitted.
func (r *Registry) Register(id, name string) bool {
	if _, exists := r.entries[id]; exists {
		return false
	}
	r.entries[id] = &registryEntry{name: name, room: DefaultRoom}
	r.order = append(r.order, id)
	return true
}

// SetRoom moves a registered connection to another room. Unregistered
// connections and rooms missing from the directory are refused; both
// are client-sequencing bugs, not server faults, so the caller treats
// false as a silent no-op.
func (r *Registry) SetRoom(id, room string) bool {
	entry, ok := r.entries[id]
	if !ok {
		return false
	}
	if !r.directory.Has(room) {
		return false
	}
	entry.room = room
	return true
}

// Unregister removes the entry and reports whether one existed. The
// caller uses the result to decide whether a presence update is needed.
func (r *Registry) Unregister(id string) bool {
	if _, exists := r.entries[id]; !exists {
		return false
	}
	delete(r.entries, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Lookup returns the name and room for a registered connection.
func (r *Registry) Lookup(id string) (name, room string, ok bool) {
	entry, exists := r.entries[id]
	if !exists {
		return "", "", false
	}
	return entry.name, entry.room, true
}

// Snapshot returns the full presence list at call time, one entry per
// registered connection in registration order.
func (r *Registry) Snapshot() []PresenceEntry {
	out := make([]PresenceEntry, 0, len(r.entries))
	for _, id := range r.order {
		entry := r.entries[id]
		out = append(out, PresenceEntry{ID: id, Name: entry.name, Room: entry.room})
	}
	return out
}

// Len returns the number of registered connections.
func (r *Registry) Len() int {
	return len(r.entries)
}
