package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	"github.com/swiftcab/swiftcab/services/rides"
)

// RideRepo is the PostgreSQL ride ledger.
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRide inserts a new ride in the requested state.
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			ride_id, rider_id, pickup, destination,
			distance_km, duration_min, fare, vehicle_class,
			latitude, longitude, otp, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		ride.RideID,
		ride.RiderID,
		ride.Pickup,
		ride.Destination,
		ride.DistanceKm,
		ride.DurationMin,
		ride.Fare,
		ride.VehicleClass,
		ride.Coordinates.Latitude,
		ride.Coordinates.Longitude,
		ride.OTP,
		ride.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// GetRide retrieves a ride by ID.
func (r *RideRepo) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	query := `
		SELECT
			ride_id, rider_id, driver_id, pickup, destination,
			distance_km, duration_min, fare, vehicle_class,
			latitude, longitude, otp, status,
			created_at, updated_at
		FROM rides
		WHERE ride_id = $1
	`

	row := r.db.QueryRowContext(ctx, query, rideID)

	ride := &models.Ride{}
	var driverID sql.NullString
	err := row.Scan(
		&ride.RideID,
		&ride.RiderID,
		&driverID,
		&ride.Pickup,
		&ride.Destination,
		&ride.DistanceKm,
		&ride.DurationMin,
		&ride.Fare,
		&ride.VehicleClass,
		&ride.Coordinates.Latitude,
		&ride.Coordinates.Longitude,
		&ride.OTP,
		&ride.Status,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	if driverID.Valid {
		id, err := uuid.Parse(driverID.String)
		if err != nil {
			return nil, fmt.Errorf("corrupt driver id on ride %s: %w", rideID, err)
		}
		ride.DriverID = &id
	}

	return ride, nil
}

// AcceptRide atomically claims a requested ride for a driver. The
// status guard in the WHERE clause is the whole concurrency story:
// whichever update commits first wins, every later one matches zero
// rows.
func (r *RideRepo) AcceptRide(ctx context.Context, rideID, driverID string) (*models.Ride, error) {
	query := `
		UPDATE rides
		SET driver_id = $1, status = $2, updated_at = NOW()
		WHERE ride_id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, driverID, models.RideStatusAccepted, rideID, models.RideStatusRequested)
	if err != nil {
		return nil, fmt.Errorf("failed to accept ride: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read accept result: %w", err)
	}
	if affected == 0 {
		// Distinguish a lost race from an unknown ride.
		ride, err := r.GetRide(ctx, rideID)
		if err != nil {
			return nil, err
		}
		// A redelivered acceptance from the driver who already holds
		// the ride is a success, not a lost race. At-least-once
		// delivery replays the winner's message when an ack is lost.
		if ride.Status == models.RideStatusAccepted &&
			ride.DriverID != nil && ride.DriverID.String() == driverID {
			return ride, nil
		}
		return nil, rides.ErrRideUnavailable
	}

	return r.GetRide(ctx, rideID)
}

// TransitionStatus moves a ride from one status to another with the
// same conditional-update pattern as AcceptRide. Returns false when no
// row was in the expected source status.
func (r *RideRepo) TransitionStatus(ctx context.Context, rideID string, from, to models.RideStatus) (bool, error) {
	query := `
		UPDATE rides
		SET status = $1, updated_at = NOW()
		WHERE ride_id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, to, rideID, from)
	if err != nil {
		return false, fmt.Errorf("failed to update ride status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read status update result: %w", err)
	}
	return affected > 0, nil
}
