package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	"github.com/swiftcab/swiftcab/internal/utils"
	"github.com/swiftcab/swiftcab/services/match"
)

// DriverHandler handles driver availability HTTP requests
type DriverHandler struct {
	matchUC match.MatchUC
}

// NewDriverHandler creates a new driver availability HTTP handler
func NewDriverHandler(matchUC match.MatchUC) *DriverHandler {
	return &DriverHandler{
		matchUC: matchUC,
	}
}

// UpdateAvailability handles a driver going online or offline.
func (h *DriverHandler) UpdateAvailability(c echo.Context) error {
	driverID := c.Param("driverID")
	if _, err := uuid.Parse(driverID); err != nil {
		return utils.BadRequestResponse(c, "Driver ID must be a valid UUID")
	}

	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Available && !validVehicleClass(req.VehicleClass) {
		return utils.BadRequestResponse(c, "Unknown vehicle class")
	}
	if req.Available {
		if err := validateCoordinates(req.Location); err != nil {
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	if err := h.matchUC.UpdateAvailability(c.Request().Context(), driverID, req); err != nil {
		logger.Error("Failed to update driver availability",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update availability")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", nil)
}

// UpdateLocation refreshes an online driver's coordinates.
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	driverID := c.Param("driverID")
	if _, err := uuid.Parse(driverID); err != nil {
		return utils.BadRequestResponse(c, "Driver ID must be a valid UUID")
	}

	var loc models.Coordinates
	if err := c.Bind(&loc); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := validateCoordinates(loc); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.matchUC.UpdateLocation(c.Request().Context(), driverID, loc); err != nil {
		logger.Error("Failed to update driver location",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

func validVehicleClass(v models.VehicleClass) bool {
	switch v {
	case models.VehicleBike, models.VehicleAuto, models.VehicleCab:
		return true
	}
	return false
}

func validateCoordinates(c models.Coordinates) error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range", c.Longitude)
	}
	return nil
}
