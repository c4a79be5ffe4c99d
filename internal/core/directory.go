package core

// DefaultRoom is where every connection lands after joining.
const DefaultRoom = "general"

// Directory tracks the known set of room names. The set is seeded at
// startup and read-mostly afterwards; rooms are never removed, so empty
// rooms stay listed and can be re-populated.
//
// Not safe for concurrent use; the hub is the only mutator.
type Directory struct {
	names []string
	index map[string]struct{}
}

// NewDirectory seeds a directory with the given rooms. DefaultRoom is
// always present even if absent from the seed. Duplicates and empty
// names are dropped, first-seen order is kept.
func NewDirectory(rooms ...string) *Directory {
	d := &Directory{index: make(map[string]struct{})}
	d.Add(DefaultRoom)
	for _, name := range rooms {
		d.Add(name)
	}
	return d
}

// Add registers a room name. Returns true if it was new. This is the
// extension point for dynamic room creation; the running server only
// calls it at startup.
func (d *Directory) Add(name string) bool {
	if name == "" {
		return false
	}
	if _, exists := d.index[name]; exists {
		return false
	}
	d.index[name] = struct{}{}
	d.names = append(d.names, name)
	return true
}

// Has reports whether the room name is known.
func (d *Directory) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// List returns all known room names in seed order.
func (d *Directory) List() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}
