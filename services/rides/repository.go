package rides

import (
	"context"

	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftcab/swiftcab/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	AcceptRide(ctx context.Context, rideID, driverID string) (*models.Ride, error)
	TransitionStatus(ctx context.Context, rideID string, from, to models.RideStatus) (bool, error)
}
