package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	jwtpkg "github.com/swiftcab/swiftcab/internal/pkg/jwt"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

// Manager authenticates and upgrades WebSocket connections and owns the
// presence registry for the process.
type Manager struct {
	registry *Registry
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager with an empty registry.
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		registry: NewRegistry(),
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Registry returns the presence registry owned by this manager.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// HandleConnection authenticates and upgrades a new WebSocket
// connection, then hands it to handleClient for the lifetime of the
// connection. Registry entries for the connection are removed
// unconditionally when handleClient returns.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer func() {
		m.registry.DeregisterByConn(ws)
		ws.Close()
	}()

	return handleClient(client, ws)
}

// authenticateClient validates the bearer token on the upgrade request.
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// SendMessage sends an event envelope to a WebSocket connection.
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // nil connections occur in tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error event to a WebSocket connection.
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// Push sends an event to the participant registered under (id, role).
// Absent participants are dropped silently; live pushes are best
// effort by design and the sender is never told a push failed to land.
func (m *Manager) Push(id, role, event string, data interface{}) {
	conn, ok := m.registry.Lookup(id, role)
	if !ok {
		logger.Debug("Push dropped, recipient not present",
			logger.String("participant_id", id),
			logger.String("role", role),
			logger.String("event", event))
		return
	}

	if err := m.SendMessage(conn, event, data); err != nil {
		logger.Warn("Error pushing message to client",
			logger.String("participant_id", id),
			logger.String("event", event),
			logger.Err(err))
	}
}

// PushAny sends an event to whichever registry holds the id, rider
// first then driver. Dropped silently when absent.
func (m *Manager) PushAny(id, event string, data interface{}) {
	conn, ok := m.registry.LookupAny(id)
	if !ok {
		return
	}

	if err := m.SendMessage(conn, event, data); err != nil {
		logger.Warn("Error pushing message to client",
			logger.String("participant_id", id),
			logger.String("event", event),
			logger.Err(err))
	}
}
