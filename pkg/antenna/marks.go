package antenna

// Marks is a visited-marker set keyed by antenna [ID].
//
// A Marks belongs to exactly one running search. It is not safe for
// concurrent use; give each goroutine its own.
type Marks struct {
	seen  []bool
	count int
}

func (m *Marks) reset(n int) {
	if cap(m.seen) >= n {
		m.seen = m.seen[:n]
		clear(m.seen)
	} else {
		m.seen = make([]bool, n)
	}
	m.count = 0
}

// Mark marks id visited. It returns false if id was already marked or is
// outside the set.
func (m *Marks) Mark(id ID) bool {
	if id < 0 || int(id) >= len(m.seen) || m.seen[id] {
		return false
	}
	m.seen[id] = true
	m.count++
	return true
}

// Unmark clears the marker of id.
func (m *Marks) Unmark(id ID) {
	if id < 0 || int(id) >= len(m.seen) || !m.seen[id] {
		return
	}
	m.seen[id] = false
	m.count--
}

// Visited reports whether id is marked.
func (m *Marks) Visited(id ID) bool {
	return id >= 0 && int(id) < len(m.seen) && m.seen[id]
}

// Count returns the number of marked antennas.
func (m *Marks) Count() int { return m.count }

// Reset unmarks every antenna without resizing.
func (m *Marks) Reset() {
	clear(m.seen)
	m.count = 0
}
