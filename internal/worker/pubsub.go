package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog"
)

// PubSubHandler consumes graph import notifications and triggers reloads.
type PubSubHandler struct {
	client           *pubsub.Client
	subscriber       *pubsub.Subscriber
	subscriptionName string
	reloadJob        *ReloadJob
	logger           zerolog.Logger
}

// PubSubConfig holds configuration for the Pub/Sub handler.
type PubSubConfig struct {
	ProjectID        string
	SubscriptionName string
	ReloadJob        *ReloadJob
	Logger           zerolog.Logger
}

// GraphMessage is published by the import pipeline when a graph changes.
type GraphMessage struct {
	Event        string `json:"event"`
	GraphVersion string `json:"graph_version,omitempty"`
}

// NewPubSubHandler creates a new Pub/Sub handler.
func NewPubSubHandler(ctx context.Context, cfg PubSubConfig) (*PubSubHandler, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	subscriber := client.Subscriber(cfg.SubscriptionName)
	subscriber.ReceiveSettings.MaxOutstandingMessages = 1 // reloads must not race

	return &PubSubHandler{
		client:           client,
		subscriber:       subscriber,
		subscriptionName: cfg.SubscriptionName,
		reloadJob:        cfg.ReloadJob,
		logger:           cfg.Logger,
	}, nil
}

// Start begins processing Pub/Sub messages. It blocks until the context is
// cancelled.
func (h *PubSubHandler) Start(ctx context.Context) error {
	h.logger.Info().
		Str("subscription", h.subscriptionName).
		Msg("starting pubsub handler")

	return h.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		h.handleMessage(ctx, msg)
	})
}

// Close closes the Pub/Sub client.
func (h *PubSubHandler) Close() error {
	return h.client.Close()
}

func (h *PubSubHandler) handleMessage(ctx context.Context, msg *pubsub.Message) {
	start := time.Now()

	logger := h.logger.With().
		Str("message_id", msg.ID).
		Logger()

	var graphMsg GraphMessage
	if err := json.Unmarshal(msg.Data, &graphMsg); err != nil {
		logger.Error().Err(err).Msg("failed to parse message")
		msg.Nack()
		return
	}

	if graphMsg.Event != "graph_updated" {
		logger.Warn().Str("event", graphMsg.Event).Msg("unknown event")
		msg.Ack() // ack unknown events to prevent redelivery
		return
	}

	if err := h.reloadJob.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("graph reload failed")
		msg.Nack()
		return
	}

	logger.Info().
		Str("graph_version", graphMsg.GraphVersion).
		Dur("duration", time.Since(start)).
		Msg("graph reload completed")

	msg.Ack()
}
