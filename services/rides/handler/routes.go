package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	natspkg "github.com/swiftcab/swiftcab/internal/pkg/nats"
	"github.com/swiftcab/swiftcab/services/rides"
	httpHandler "github.com/swiftcab/swiftcab/services/rides/handler/http"
	natsHandler "github.com/swiftcab/swiftcab/services/rides/handler/nats"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	ridesNATS *natsHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	rideUC rides.RideUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(rideUC),
		ridesNATS: natsHandler.NewRidesHandler(rideUC, natsClient),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	ridesGroup := e.Group("/rides")
	ridesGroup.GET("/:rideID", h.ridesHTTP.GetRide)
	ridesGroup.POST("/:rideID/accept", h.ridesHTTP.AcceptRide)
	ridesGroup.POST("/:rideID/start", h.ridesHTTP.StartRide)
	ridesGroup.POST("/:rideID/complete", h.ridesHTTP.CompleteRide)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.ridesNATS.InitConsumers()
}

// Stop stops the NATS consumers
func (h *Handler) Stop() {
	h.ridesNATS.Stop()
}
