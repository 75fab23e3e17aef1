package logsy

import "sync"

// The process-wide registry tracks table-view sessions so unterminated
// footers can be flushed at shutdown. Membership is non-owning: Close
// removes the session, so the registry never keeps a finished session
// around past its owner.
var registry = struct {
	mu       sync.Mutex
	sessions map[*Logger]struct{}
}{
	sessions: make(map[*Logger]struct{}),
}

func register(l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.sessions[l] = struct{}{}
}

func unregister(l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	delete(registry.sessions, l)
}

// Shutdown closes every table-view session that is still open, flushing
// each pending footer exactly once. Call it once at process exit; sessions
// closed explicitly are unaffected, and a second Shutdown is a no-op.
func Shutdown() {
	registry.mu.Lock()
	open := make([]*Logger, 0, len(registry.sessions))
	for session := range registry.sessions {
		open = append(open, session)
	}
	clear(registry.sessions)
	registry.mu.Unlock()

	// Close outside the registry lock: it takes each session's own lock and
	// must not race in-flight writes.
	for _, session := range open {
		_ = session.Close()
	}
}
