package rides

import (
	"context"

	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

// RideGW defines the interface for ride gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/swiftcab/swiftcab/services/rides RideGW
type RideGW interface {
	PublishRideCreated(ctx context.Context, event models.RideCreatedEvent) error
	PublishGatewayNotify(ctx context.Context, msgID string, notify models.GatewayNotify) error
}
