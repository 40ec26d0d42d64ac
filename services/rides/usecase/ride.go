package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	"github.com/swiftcab/swiftcab/internal/utils"
	"github.com/swiftcab/swiftcab/services/rides"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg      *models.Config
	rideRepo rides.RideRepo
	rideGW   rides.RideGW
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
) rides.RideUC {
	return &rideUC{
		cfg:      cfg,
		rideRepo: rideRepo,
		rideGW:   rideGW,
	}
}

// CreateRide validates a ride request, persists it in the requested
// state with a fresh start code, and announces it to the matcher.
func (uc *rideUC) CreateRide(ctx context.Context, req models.RideRequest) (*models.Ride, error) {
	riderID, err := uuid.Parse(req.RiderID)
	if err != nil {
		return nil, fmt.Errorf("%w: rider id %q is not a valid UUID", rides.ErrValidation, req.RiderID)
	}
	if err := validateCoordinates(req.Coordinates); err != nil {
		return nil, err
	}
	if !validVehicleClass(req.VehicleClass) {
		return nil, fmt.Errorf("%w: unknown vehicle class %q", rides.ErrValidation, req.VehicleClass)
	}

	ride := &models.Ride{
		RideID:       uuid.New(),
		RiderID:      riderID,
		Pickup:       req.Pickup,
		Destination:  req.Destination,
		DistanceKm:   req.DistanceKm,
		DurationMin:  req.DurationMin,
		Fare:         req.Fare,
		VehicleClass: req.VehicleClass,
		Coordinates:  req.Coordinates,
		OTP:          utils.GenerateOTP(),
		Status:       models.RideStatusRequested,
	}

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to persist ride: %w", err)
	}

	event := models.RideCreatedEvent{
		RideID:       ride.RideID.String(),
		RiderID:      ride.RiderID.String(),
		Pickup:       ride.Pickup,
		Destination:  ride.Destination,
		Coordinates:  ride.Coordinates,
		VehicleClass: ride.VehicleClass,
	}
	if err := uc.rideGW.PublishRideCreated(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to publish ride created event: %w", err)
	}

	logger.Info("Ride created",
		logger.String("ride_id", ride.RideID.String()),
		logger.String("rider_id", ride.RiderID.String()),
		logger.String("vehicle_class", string(ride.VehicleClass)))
	return ride, nil
}

// AcceptRide claims a requested ride for a driver. The claim is a
// single conditional update; exactly one driver can win it. The winning
// path pushes a ride-accepted notification to the rider.
func (uc *rideUC) AcceptRide(ctx context.Context, rideID, driverID string) (*models.Ride, error) {
	if _, err := uuid.Parse(driverID); err != nil {
		return nil, fmt.Errorf("%w: driver id %q is not a valid UUID", rides.ErrValidation, driverID)
	}

	ride, err := uc.rideRepo.AcceptRide(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}

	notify := models.GatewayNotify{
		RecipientID:   ride.RiderID.String(),
		RecipientRole: models.RoleRider,
		Event:         constants.EventRideAccepted,
		Payload: models.RideAcceptedPayload{
			RideID:   ride.RideID.String(),
			DriverID: driverID,
		},
	}
	msgID := fmt.Sprintf("ride-accepted:%s", ride.RideID)
	if err := uc.rideGW.PublishGatewayNotify(ctx, msgID, notify); err != nil {
		return nil, fmt.Errorf("failed to publish acceptance notify: %w", err)
	}

	logger.Info("Ride accepted",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID))
	return ride, nil
}

// HandleAcceptance is the bus-side acceptance path. Losing the race is
// an expected outcome: the losing driver gets a ride-unavailable push
// and the message is acknowledged, not retried.
func (uc *rideUC) HandleAcceptance(ctx context.Context, req models.AcceptanceRequest) error {
	_, err := uc.AcceptRide(ctx, req.RideID, req.DriverID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, rides.ErrRideUnavailable) {
		return err
	}

	logger.Info("Acceptance lost the race, notifying driver",
		logger.String("ride_id", req.RideID),
		logger.String("driver_id", req.DriverID))

	notify := models.GatewayNotify{
		RecipientID:   req.DriverID,
		RecipientRole: models.RoleDriver,
		Event:         constants.EventRideUnavailable,
		Payload:       models.RideUnavailablePayload{RideID: req.RideID},
	}
	msgID := fmt.Sprintf("ride-unavailable:%s:%s", req.RideID, req.DriverID)
	if err := uc.rideGW.PublishGatewayNotify(ctx, msgID, notify); err != nil {
		return fmt.Errorf("failed to publish unavailable notify: %w", err)
	}
	return nil
}

// VerifyAndStart transitions an accepted ride to started once the
// rider's code matches. A mismatch leaves the ride untouched so the
// driver can retry.
func (uc *rideUC) VerifyAndStart(ctx context.Context, rideID string, otp int) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.Status != models.RideStatusAccepted {
		return nil, fmt.Errorf("%w: cannot start ride in status %q", rides.ErrInvalidState, ride.Status)
	}
	if ride.OTP != otp {
		logger.Warn("Start code mismatch", logger.String("ride_id", rideID))
		return nil, rides.ErrOTPMismatch
	}

	ok, err := uc.rideRepo.TransitionStatus(ctx, rideID, models.RideStatusAccepted, models.RideStatusStarted)
	if err != nil {
		return nil, fmt.Errorf("failed to start ride: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: ride left the accepted state", rides.ErrInvalidState)
	}

	ride.Status = models.RideStatusStarted
	logger.Info("Ride started", logger.String("ride_id", rideID))
	return ride, nil
}

// CompleteRide transitions a started ride to completed. Completing a
// ride that is already completed is a no-op so redelivered or repeated
// completions never double-apply.
func (uc *rideUC) CompleteRide(ctx context.Context, rideID string) (*models.Ride, error) {
	ok, err := uc.rideRepo.TransitionStatus(ctx, rideID, models.RideStatusStarted, models.RideStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to complete ride: %w", err)
	}
	if ok {
		logger.Info("Ride completed", logger.String("ride_id", rideID))
		return uc.rideRepo.GetRide(ctx, rideID)
	}

	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status == models.RideStatusCompleted {
		return ride, nil
	}
	return nil, fmt.Errorf("%w: cannot complete ride in status %q", rides.ErrInvalidState, ride.Status)
}

// GetRide retrieves a single ride from the ledger.
func (uc *rideUC) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	return uc.rideRepo.GetRide(ctx, rideID)
}

func validateCoordinates(c models.Coordinates) error {
	// The exact zero pair is a missing payload, not a pickup on Null
	// Island.
	if c.Latitude == 0 && c.Longitude == 0 {
		return fmt.Errorf("%w: pickup coordinates are required", rides.ErrValidation)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %f out of range", rides.ErrValidation, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %f out of range", rides.ErrValidation, c.Longitude)
	}
	return nil
}

func validVehicleClass(v models.VehicleClass) bool {
	switch v {
	case models.VehicleBike, models.VehicleAuto, models.VehicleCab:
		return true
	}
	return false
}
