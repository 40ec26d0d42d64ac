package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

// Entry is a single presence record: a participant id bound to a live
// connection under a role tag.
type Entry struct {
	ID   string
	Role string
	Conn *websocket.Conn
}

// Registry is the in-memory presence directory mapping participant
// identity to its live connection handle. It is private to the gateway
// process: no persistence, no TTL, no cross-process sharing. Entries
// are keyed by role-tagged id so a rider and a driver can share a raw
// id without colliding.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates an empty presence registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

func key(id, role string) string {
	return role + ":" + id
}

// Register inserts or overwrites the entry for the participant. Last
// registration wins, including re-registration under a new id on the
// same connection.
func (r *Registry) Register(id, role string, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key(id, role)] = &Entry{ID: id, Role: role, Conn: conn}
}

// Lookup returns the connection registered for the participant under
// the given role, if any.
func (r *Registry) Lookup(id, role string) (*websocket.Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[key(id, role)]
	if !ok {
		return nil, false
	}
	return entry.Conn, true
}

// LookupAny resolves an id without a role tag, trying the rider
// registry first and falling back to drivers. Used by the call
// signaling relay, whose payloads carry bare target ids.
func (r *Registry) LookupAny(id string) (*websocket.Conn, bool) {
	if conn, ok := r.Lookup(id, models.RoleRider); ok {
		return conn, true
	}
	return r.Lookup(id, models.RoleDriver)
}

// DeregisterByConn removes every entry bound to the given connection.
// Called exactly once per connection close.
func (r *Registry) DeregisterByConn(conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, entry := range r.entries {
		if entry.Conn == conn {
			delete(r.entries, k)
		}
	}
}

// Len returns the number of registered participants.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
