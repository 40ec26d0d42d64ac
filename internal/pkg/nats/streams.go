package nats

import (
	"context"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/swiftcab/swiftcab/internal/pkg/constants"
)

// DefaultStreamConfigs returns the stream topology for the dispatch
// pipeline. Every service provisions these idempotently at startup so
// ordering of deployments does not matter.
func DefaultStreamConfigs() []StreamConfig {
	return []StreamConfig{
		{
			Name: constants.StreamRide,
			Subjects: []string{
				constants.SubjectRideRequests,
				constants.SubjectDriverCandidateNotify,
				constants.SubjectRideAcceptance,
			},
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    24 * time.Hour,
			MaxBytes:  100 * 1024 * 1024,
			MaxMsgs:   1000000,
			Discard:   jetstream.DiscardOld,
		},
		{
			Name: constants.StreamDispatch,
			Subjects: []string{
				constants.SubjectGatewayCandidatePush,
				constants.SubjectLedgerGatewayNotify,
			},
			Retention: jetstream.LimitsPolicy,
			Storage:   jetstream.FileStorage,
			Replicas:  1,
			MaxAge:    1 * time.Hour,
			MaxBytes:  50 * 1024 * 1024,
			MaxMsgs:   500000,
			Discard:   jetstream.DiscardOld,
		},
	}
}

// NewConsumerConfig returns a durable explicit-ack consumer for one
// subject with the defaults used across the pipeline.
func NewConsumerConfig(streamName, consumerName, subject string) ConsumerConfig {
	return ConsumerConfig{
		StreamName:    streamName,
		ConsumerName:  consumerName,
		FilterSubject: subject,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    5,
		MaxAckPending: 1000,
	}
}

// EnsureStreams provisions the default streams on the given client.
func EnsureStreams(ctx context.Context, client *Client) error {
	for _, cfg := range DefaultStreamConfigs() {
		if err := client.CreateStream(ctx, cfg); err != nil {
			return err
		}
	}
	return nil
}
