package backend

import "sync"

// Session holds a backend in exclusive application mode.
// Leave restores the terminal and may be called any number of times;
// only the first call has an effect.
type Session struct {
	backend Backend
	once    sync.Once
}

// Enter initialises b and hides the cursor.
// The caller must arrange for Leave to run on every exit path.
func Enter(b Backend) (*Session, error) {
	if err := b.Init(); err != nil {
		return nil, err
	}
	b.HideCursor()
	return &Session{backend: b}, nil
}

// Backend returns the backend owned by the session.
func (s *Session) Backend() Backend {
	return s.backend
}

// Leave restores the terminal to the state it had before Enter.
func (s *Session) Leave() {
	s.once.Do(s.backend.Shutdown)
}
