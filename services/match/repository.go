package match

import (
	"context"

	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

// DriverRepo defines the interface for driver availability storage
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftcab/swiftcab/services/match DriverRepo
type DriverRepo interface {
	SetAvailable(ctx context.Context, record models.DriverAvailability) error
	SetUnavailable(ctx context.Context, driverID string) error
	UpdateLocation(ctx context.Context, driverID string, location models.Coordinates) error
	GetAvailableDrivers(ctx context.Context) ([]models.DriverAvailability, error)
}
