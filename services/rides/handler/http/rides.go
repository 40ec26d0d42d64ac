package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	"github.com/swiftcab/swiftcab/internal/utils"
	"github.com/swiftcab/swiftcab/services/rides"
)

// RidesHandler handles HTTP requests for ride ledger operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// GetRide returns a single ride by ID
func (h *RidesHandler) GetRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		if errors.Is(err, rides.ErrRideNotFound) {
			return utils.NotFoundResponse(c, "Ride not found")
		}
		logger.Error("Failed to get ride",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", ride)
}

// AcceptRide handles a driver's direct HTTP acceptance of a ride.
func (h *RidesHandler) AcceptRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	var req models.AcceptanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.RideID = rideID
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	ride, err := h.rideUC.AcceptRide(c.Request().Context(), req.RideID, req.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, rides.ErrRideNotFound):
			return utils.NotFoundResponse(c, "Ride not found")
		case errors.Is(err, rides.ErrRideUnavailable):
			return utils.ConflictResponse(c, "Ride is no longer available")
		case errors.Is(err, rides.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to accept ride",
			logger.String("ride_id", rideID),
			logger.String("driver_id", req.DriverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to accept ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", ride)
}

// StartRide verifies the rider's start code and begins the trip.
func (h *RidesHandler) StartRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	var req models.RideStartRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.rideUC.VerifyAndStart(c.Request().Context(), rideID, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, rides.ErrRideNotFound):
			return utils.NotFoundResponse(c, "Ride not found")
		case errors.Is(err, rides.ErrOTPMismatch):
			return utils.UnauthorizedResponse(c, "Start code does not match")
		case errors.Is(err, rides.ErrInvalidState):
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Failed to start ride",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to start ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride started", ride)
}

// CompleteRide finishes a started ride. Repeating a completion returns
// success without re-applying anything.
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	ride, err := h.rideUC.CompleteRide(c.Request().Context(), rideID)
	if err != nil {
		switch {
		case errors.Is(err, rides.ErrRideNotFound):
			return utils.NotFoundResponse(c, "Ride not found")
		case errors.Is(err, rides.ErrInvalidState):
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Failed to complete ride",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to complete ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", ride)
}
