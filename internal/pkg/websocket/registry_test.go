package websocket

import (
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	conn := &websocket.Conn{}

	r.Register("rider-1", models.RoleRider, conn)

	got, ok := r.Lookup("rider-1", models.RoleRider)
	assert.True(t, ok)
	assert.Same(t, conn, got)

	_, ok = r.Lookup("rider-1", models.RoleDriver)
	assert.False(t, ok, "role tags must namespace participant ids")
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	first := &websocket.Conn{}
	second := &websocket.Conn{}

	r.Register("driver-1", models.RoleDriver, first)
	r.Register("driver-1", models.RoleDriver, second)

	got, ok := r.Lookup("driver-1", models.RoleDriver)
	assert.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SameIDDifferentRoles(t *testing.T) {
	r := NewRegistry()
	riderConn := &websocket.Conn{}
	driverConn := &websocket.Conn{}

	r.Register("p-1", models.RoleRider, riderConn)
	r.Register("p-1", models.RoleDriver, driverConn)

	assert.Equal(t, 2, r.Len())

	got, ok := r.LookupAny("p-1")
	assert.True(t, ok)
	assert.Same(t, riderConn, got, "LookupAny must prefer the rider registry")
}

func TestRegistry_LookupAnyFallsBackToDriver(t *testing.T) {
	r := NewRegistry()
	driverConn := &websocket.Conn{}

	r.Register("d-1", models.RoleDriver, driverConn)

	got, ok := r.LookupAny("d-1")
	assert.True(t, ok)
	assert.Same(t, driverConn, got)
}

func TestRegistry_DeregisterByConn(t *testing.T) {
	r := NewRegistry()
	conn := &websocket.Conn{}
	other := &websocket.Conn{}

	// One connection registered under two ids; re-registration
	// mid-connection must not leak entries on close.
	r.Register("rider-1", models.RoleRider, conn)
	r.Register("rider-2", models.RoleRider, conn)
	r.Register("driver-1", models.RoleDriver, other)

	r.DeregisterByConn(conn)

	_, ok := r.Lookup("rider-1", models.RoleRider)
	assert.False(t, ok)
	_, ok = r.Lookup("rider-2", models.RoleRider)
	assert.False(t, ok)

	got, ok := r.Lookup("driver-1", models.RoleDriver)
	assert.True(t, ok)
	assert.Same(t, other, got)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	conn := &websocket.Conn{}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			r.Register("rider-1", models.RoleRider, conn)
		}
		close(done)
	}()

	for i := 0; i < 1000; i++ {
		r.Lookup("rider-1", models.RoleRider)
		r.DeregisterByConn(conn)
	}
	<-done
}

func TestManager_PushDroppedWhenAbsent(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "s"})

	// Nothing registered: push must be a silent no-op.
	m.Push("ghost", models.RoleRider, "new-ride-offer", map[string]string{"ride_id": "r1"})
	m.PushAny("ghost", "call-offer", nil)

	assert.Equal(t, 0, m.Registry().Len())
}
