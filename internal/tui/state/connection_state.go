package state

import "sync"

// ConnectionStatus represents the current connection state to the order service
type ConnectionStatus int

const (
	Offline ConnectionStatus = iota
	Online
	Syncing
)

// String returns a human-readable string representation of the connection status
func (cs ConnectionStatus) String() string {
	switch cs {
	case Online:
		return "Online"
	case Offline:
		return "Offline"
	case Syncing:
		return "Syncing"
	default:
		return "Unknown"
	}
}

// ConnectionState manages the connection status to the order service
type ConnectionState struct {
	mu     sync.RWMutex
	status ConnectionStatus
}

// NewConnectionState creates a new ConnectionState with the given initial status
func NewConnectionState(initialStatus ConnectionStatus) *ConnectionState {
	return &ConnectionState{
		status: initialStatus,
	}
}

// Status returns the current connection status (thread-safe)
func (cs *ConnectionState) Status() ConnectionStatus {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.status
}

// SetStatus updates the connection status (thread-safe)
func (cs *ConnectionState) SetStatus(status ConnectionStatus) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.status = status
}
