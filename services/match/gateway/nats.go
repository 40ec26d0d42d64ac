package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	natspkg "github.com/swiftcab/swiftcab/internal/pkg/nats"
	"github.com/swiftcab/swiftcab/services/match"
)

// MatchGW handles NATS publishing for the proximity matcher
type MatchGW struct {
	natsClient *natspkg.Client
}

// NewMatchGW creates a new match gateway
func NewMatchGW(client *natspkg.Client) match.MatchGW {
	return &MatchGW{
		natsClient: client,
	}
}

// PublishCandidateSet publishes the candidate set for a ride on
// gateway-candidate-push. The ride id keys de-duplication: one
// candidate set per ride.
func (g *MatchGW) PublishCandidateSet(ctx context.Context, set models.CandidateSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate set: %w", err)
	}

	return g.natsClient.PublishWithOptions(natspkg.PublishOptions{
		Subject: constants.SubjectGatewayCandidatePush,
		Data:    data,
		MsgID:   fmt.Sprintf("candidate-set:%s", set.Ride.RideID),
	})
}
