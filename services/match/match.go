package match

import (
	"context"

	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

// MatchUC defines the interface for proximity matching business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swiftcab/swiftcab/services/match MatchUC
type MatchUC interface {
	HandleRideCreated(ctx context.Context, event models.RideCreatedEvent) error
	UpdateAvailability(ctx context.Context, driverID string, req models.AvailabilityRequest) error
	UpdateLocation(ctx context.Context, driverID string, location models.Coordinates) error
}
