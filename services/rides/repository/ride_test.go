package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	"github.com/swiftcab/swiftcab/services/rides"
	"github.com/swiftcab/swiftcab/services/rides/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func rideColumns() []string {
	return []string{
		"ride_id", "rider_id", "driver_id", "pickup", "destination",
		"distance_km", "duration_min", "fare", "vehicle_class",
		"latitude", "longitude", "otp", "status",
		"created_at", "updated_at",
	}
}

func TestCreateRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	ride := &models.Ride{
		RideID:       uuid.New(),
		RiderID:      uuid.New(),
		Pickup:       "MG Road",
		Destination:  "Airport",
		DistanceKm:   12.4,
		DurationMin:  35,
		Fare:         310,
		VehicleClass: models.VehicleCab,
		Coordinates:  models.Coordinates{Latitude: 12.90, Longitude: 77.60},
		OTP:          4321,
		Status:       models.RideStatusRequested,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WithArgs(ride.RideID, ride.RiderID, ride.Pickup, ride.Destination,
			ride.DistanceKm, ride.DurationMin, ride.Fare, ride.VehicleClass,
			ride.Coordinates.Latitude, ride.Coordinates.Longitude,
			ride.OTP, ride.Status).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRide(context.Background(), ride)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	riderID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(rideColumns()).AddRow(
		rideID.String(), riderID.String(), driverID.String(), "MG Road", "Airport",
		12.4, 35.0, 310.0, "cab",
		12.90, 77.60, 4321, "accepted",
		now, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID.String()).
		WillReturnRows(rows)

	ride, err := repo.GetRide(context.Background(), rideID.String())
	require.NoError(t, err)
	assert.Equal(t, rideID, ride.RideID)
	require.NotNil(t, ride.DriverID)
	assert.Equal(t, driverID, *ride.DriverID)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	assert.Equal(t, 4321, ride.OTP)
}

func TestGetRide_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(rideColumns()))

	_, err := repo.GetRide(context.Background(), "missing")
	assert.ErrorIs(t, err, rides.ErrRideNotFound)
}

func TestAcceptRide_ConditionalUpdateWins(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	riderID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(driverID.String(), models.RideStatusAccepted, rideID.String(), models.RideStatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID.String()).
		WillReturnRows(sqlmock.NewRows(rideColumns()).AddRow(
			rideID.String(), riderID.String(), driverID.String(), "MG Road", "Airport",
			12.4, 35.0, 310.0, "cab",
			12.90, 77.60, 4321, "accepted",
			now, now,
		))

	ride, err := repo.AcceptRide(context.Background(), rideID.String(), driverID.String())
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRide_ZeroRowsMeansConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	riderID := uuid.New()
	winnerID := uuid.New()
	loserID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(loserID.String(), models.RideStatusAccepted, rideID.String(), models.RideStatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// The ride exists but already belongs to the winner.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID.String()).
		WillReturnRows(sqlmock.NewRows(rideColumns()).AddRow(
			rideID.String(), riderID.String(), winnerID.String(), "MG Road", "Airport",
			12.4, 35.0, 310.0, "cab",
			12.90, 77.60, 4321, "accepted",
			now, now,
		))

	_, err := repo.AcceptRide(context.Background(), rideID.String(), loserID.String())
	assert.ErrorIs(t, err, rides.ErrRideUnavailable)
}

func TestAcceptRide_RedeliveredWinnerIsIdempotent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	riderID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	// The first delivery already claimed the ride, so the conditional
	// update matches nothing on the replay.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(driverID.String(), models.RideStatusAccepted, rideID.String(), models.RideStatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// The ride is accepted and held by the same driver.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID.String()).
		WillReturnRows(sqlmock.NewRows(rideColumns()).AddRow(
			rideID.String(), riderID.String(), driverID.String(), "MG Road", "Airport",
			12.4, 35.0, 310.0, "cab",
			12.90, 77.60, 4321, "accepted",
			now, now,
		))

	ride, err := repo.AcceptRide(context.Background(), rideID.String(), driverID.String())
	require.NoError(t, err, "the holder replaying its own acceptance is a success")
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	require.NotNil(t, ride.DriverID)
	assert.Equal(t, driverID, *ride.DriverID)
}

func TestAcceptRide_ZeroRowsUnknownRide(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.NewString()
	driverID := uuid.NewString()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(driverID, models.RideStatusAccepted, rideID, models.RideStatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows(rideColumns()))

	_, err := repo.AcceptRide(context.Background(), rideID, driverID)
	assert.ErrorIs(t, err, rides.ErrRideNotFound)
}

func TestTransitionStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.NewString()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(models.RideStatusStarted, rideID, models.RideStatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.TransitionStatus(context.Background(), rideID, models.RideStatusAccepted, models.RideStatusStarted)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(models.RideStatusCompleted, rideID, models.RideStatusStarted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.TransitionStatus(context.Background(), rideID, models.RideStatusStarted, models.RideStatusCompleted)
	require.NoError(t, err)
	assert.False(t, ok)
}
