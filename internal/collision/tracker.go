package collision

// Tracker records column names and reports names that appear more than once.
//
// Names are keyed by their xxHash64 ID. Two different names sharing an ID
// are both kept and are not reported as duplicates.
type Tracker struct {
	names map[uint64][]string
}

// NewTracker creates a new tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64][]string),
	}
}

// Track records name under id. It returns true when the exact name was
// already tracked.
func (t *Tracker) Track(name string, id uint64) bool {
	existing := t.names[id]
	for _, n := range existing {
		if n == name {
			return true
		}
	}
	t.names[id] = append(existing, name)

	return false
}

// Reset clears all tracked state.
func (t *Tracker) Reset() {
	clear(t.names)
}
