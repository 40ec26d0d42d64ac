package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	natspkg "github.com/swiftcab/swiftcab/internal/pkg/nats"
	wspkg "github.com/swiftcab/swiftcab/internal/pkg/websocket"
	gatewaysvc "github.com/swiftcab/swiftcab/services/gateway"
	natsHandler "github.com/swiftcab/swiftcab/services/gateway/handler/nats"
	wsHandler "github.com/swiftcab/swiftcab/services/gateway/handler/websocket"
)

// Handler combines all handlers for the gateway service
type Handler struct {
	gatewayWS   *wsHandler.WebSocketHandler
	gatewayNATS *natsHandler.GatewayHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler. Both sides share one
// connection manager so bus-driven pushes reach the live registry.
func NewHandler(
	manager *wspkg.Manager,
	dispatchGW gatewaysvc.DispatchGW,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		gatewayWS:   wsHandler.NewWebSocketHandler(manager, dispatchGW),
		gatewayNATS: natsHandler.NewGatewayHandler(manager, natsClient),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.gatewayWS.HandleWebSocket)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.gatewayNATS.InitConsumers()
}

// Stop stops the NATS consumers
func (h *Handler) Stop() {
	h.gatewayNATS.Stop()
}
