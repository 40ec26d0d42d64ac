package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
)

// Client wraps a NATS connection with a JetStream context and keeps
// track of the streams and consumers it has provisioned.
type Client struct {
	conn      *nats.Conn
	js        jetstream.JetStream
	streams   map[string]jetstream.Stream
	consumers map[string]jetstream.Consumer
}

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name      string
	Subjects  []string
	Retention jetstream.RetentionPolicy
	Storage   jetstream.StorageType
	Replicas  int
	MaxAge    time.Duration
	MaxBytes  int64
	MaxMsgs   int64
	Discard   jetstream.DiscardPolicy
}

// ConsumerConfig describes a durable JetStream consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	DeliverPolicy jetstream.DeliverPolicy
	AckPolicy     jetstream.AckPolicy
	AckWait       time.Duration
	MaxDeliver    int
	MaxAckPending int
}

// PublishOptions carries per-publish settings. MsgID enables JetStream
// de-duplication within the dedup window.
type PublishOptions struct {
	Subject string
	Data    []byte
	MsgID   string
	Timeout time.Duration
}

// NewClient connects to the NATS server and initializes JetStream.
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	return &Client{
		conn:      conn,
		js:        js,
		streams:   make(map[string]jetstream.Stream),
		consumers: make(map[string]jetstream.Consumer),
	}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// CreateStream creates or updates a stream from the given config.
func (c *Client) CreateStream(ctx context.Context, config StreamConfig) error {
	stream, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      config.Name,
		Subjects:  config.Subjects,
		Retention: config.Retention,
		Storage:   config.Storage,
		Replicas:  config.Replicas,
		MaxAge:    config.MaxAge,
		MaxBytes:  config.MaxBytes,
		MaxMsgs:   config.MaxMsgs,
		Discard:   config.Discard,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", config.Name, err)
	}

	c.streams[config.Name] = stream
	logger.Info("JetStream stream ready",
		logger.String("stream", config.Name),
		logger.Strings("subjects", config.Subjects))
	return nil
}

// CreateConsumer creates or updates a durable consumer on a stream the
// client has already provisioned.
func (c *Client) CreateConsumer(ctx context.Context, config ConsumerConfig) error {
	stream, exists := c.streams[config.StreamName]
	if !exists {
		s, err := c.js.Stream(ctx, config.StreamName)
		if err != nil {
			return fmt.Errorf("stream %s not found: %w", config.StreamName, err)
		}
		c.streams[config.StreamName] = s
		stream = s
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       config.ConsumerName,
		FilterSubject: config.FilterSubject,
		DeliverPolicy: config.DeliverPolicy,
		AckPolicy:     config.AckPolicy,
		AckWait:       config.AckWait,
		MaxDeliver:    config.MaxDeliver,
		MaxAckPending: config.MaxAckPending,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", config.ConsumerName, err)
	}

	consumerKey := fmt.Sprintf("%s:%s", config.StreamName, config.ConsumerName)
	c.consumers[consumerKey] = consumer
	return nil
}

// PublishWithOptions publishes a message through JetStream and waits
// for the server acknowledgment.
func (c *Client) PublishWithOptions(opts PublishOptions) error {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var pubOpts []jetstream.PublishOpt
	if opts.MsgID != "" {
		pubOpts = append(pubOpts, jetstream.WithMsgID(opts.MsgID))
	}

	if _, err := c.js.Publish(ctx, opts.Subject, opts.Data, pubOpts...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", opts.Subject, err)
	}

	return nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
