package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
)

// MessageHandler processes the payload of a delivered message. A non-nil
// error causes a negative acknowledgment so the server redelivers; this
// is the at-least-once retry path for infrastructure failures.
type MessageHandler func(message []byte) error

// Consumer runs a consume loop over a durable JetStream consumer.
type Consumer struct {
	consumer   jetstream.Consumer
	consumeCtx jetstream.ConsumeContext
	ctx        context.Context
	cancelFunc context.CancelFunc
}

// NewJetStreamConsumer provisions the consumer described by config and
// starts consuming with the given handler.
func NewJetStreamConsumer(client *Client, config ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	ctx, cancel := context.WithCancel(context.Background())

	if err := client.CreateConsumer(ctx, config); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	consumerKey := fmt.Sprintf("%s:%s", config.StreamName, config.ConsumerName)
	consumer, exists := client.consumers[consumerKey]
	if !exists {
		cancel()
		return nil, fmt.Errorf("consumer %s not found after creation", consumerKey)
	}

	c := &Consumer{
		consumer:   consumer,
		ctx:        ctx,
		cancelFunc: cancel,
	}

	if err := c.startConsuming(handler); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	return c, nil
}

func (c *Consumer) startConsuming(handler MessageHandler) error {
	consumeCtx, err := c.consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg.Data()); err != nil {
			logger.Error("Error processing message",
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			// Negative acknowledgment for redelivery
			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return err
	}

	c.consumeCtx = consumeCtx

	go func() {
		<-c.ctx.Done()
		if c.consumeCtx != nil {
			c.consumeCtx.Stop()
		}
	}()

	return nil
}

// IsActive reports whether the consume loop is running
func (c *Consumer) IsActive() bool {
	return c.consumeCtx != nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
		c.consumeCtx = nil
	}
	if c.cancelFunc != nil {
		c.cancelFunc()
	}
}
