package rides

import (
	"context"

	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

// RideUC defines the interface for ride ledger business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swiftcab/swiftcab/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, req models.RideRequest) (*models.Ride, error)
	AcceptRide(ctx context.Context, rideID, driverID string) (*models.Ride, error)
	HandleAcceptance(ctx context.Context, req models.AcceptanceRequest) error
	VerifyAndStart(ctx context.Context, rideID string, otp int) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID string) (*models.Ride, error)
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
}
