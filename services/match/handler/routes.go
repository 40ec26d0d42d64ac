package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	natspkg "github.com/swiftcab/swiftcab/internal/pkg/nats"
	"github.com/swiftcab/swiftcab/services/match"
	httpHandler "github.com/swiftcab/swiftcab/services/match/handler/http"
	natsHandler "github.com/swiftcab/swiftcab/services/match/handler/nats"
)

// Handler combines all handlers for the match service
type Handler struct {
	driverHTTP *httpHandler.DriverHandler
	matchNATS  *natsHandler.MatchHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	matchUC match.MatchUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		driverHTTP: httpHandler.NewDriverHandler(matchUC),
		matchNATS:  natsHandler.NewMatchHandler(matchUC, natsClient),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	driversGroup := e.Group("/drivers")
	driversGroup.POST("/:driverID/availability", h.driverHTTP.UpdateAvailability)
	driversGroup.POST("/:driverID/location", h.driverHTTP.UpdateLocation)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.matchNATS.InitConsumers()
}

// Stop stops the NATS consumers
func (h *Handler) Stop() {
	h.matchNATS.Stop()
}
