// Package persist abstracts where the save snapshot lives. The engine writes
// the full serialized state through after every mutation and reads it back on
// startup; backends only move opaque bytes.
package persist

// Store reads and writes one opaque save snapshot.
type Store interface {
	// Load returns the stored snapshot. ok is false when no snapshot
	// exists, which is not an error.
	Load() (data []byte, ok bool, err error)
	// Save replaces the stored snapshot.
	Save(data []byte) error
	// Clear removes the stored snapshot. Clearing an empty store is a
	// no-op.
	Clear() error
}

// Memory is an in-process Store. Useful for tests and script runs.
type Memory struct {
	data []byte
	set  bool
}

func (m *Memory) Load() ([]byte, bool, error) {
	if !m.set {
		return nil, false, nil
	}
	return m.data, true, nil
}

func (m *Memory) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	m.set = true
	return nil
}

func (m *Memory) Clear() error {
	m.data = nil
	m.set = false
	return nil
}
