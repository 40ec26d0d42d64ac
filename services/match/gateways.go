package match

import (
	"context"

	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

// MatchGW defines the interface for match gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/swiftcab/swiftcab/services/match MatchGW
type MatchGW interface {
	PublishCandidateSet(ctx context.Context, set models.CandidateSet) error
}
