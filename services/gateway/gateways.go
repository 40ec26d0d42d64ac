package gateway

import (
	"context"

	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

// DispatchGW defines the interface for dispatch gateway bus operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/swiftcab/swiftcab/services/gateway DispatchGW
type DispatchGW interface {
	PublishAcceptance(ctx context.Context, req models.AcceptanceRequest) error
}
