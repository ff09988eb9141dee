package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"expohall/pkg/logger"

	"github.com/IBM/sarama"
)

// Consumer runs the reservation-event worker group.
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type ConsumerConfig struct {
	Brokers          []string
	GroupID          string
	Topics           []string
	SessionTimeoutMs int
	HeartbeatMs      int
	OffsetOldest     bool
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          []string{"localhost:9092"},
		GroupID:          "expohall-notification-workers",
		Topics:           []string{"reservation-events"},
		SessionTimeoutMs: 30000,
		HeartbeatMs:      3000,
		OffsetOldest:     false,
	}
}

// KafkaConsumer consumes reservation events and hands them to a handler.
// The default handler just logs; a real deployment would send confirmation
// mail from here.
type KafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	handler       func(ctx context.Context, event *ReservationEvent) error
	log           *logger.Logger
	cancel        context.CancelFunc
}

func NewKafkaConsumer(config *ConsumerConfig, handler func(ctx context.Context, event *ReservationEvent) error) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true
	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	log := logger.GetDefault().WithComponent("notifications")
	if handler == nil {
		handler = func(ctx context.Context, event *ReservationEvent) error {
			log.InfoContext(ctx, "Reservation Event",
				slog.String("type", string(event.Type)),
				slog.String("reservation_id", event.ReservationID),
				slog.String("booth_number", event.BoothNumber),
				slog.String("company", event.CompanyName),
			)
			return nil
		}
	}

	return &KafkaConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		handler:       handler,
		log:           log,
	}, nil
}

// Start blocks consuming until the context is cancelled.
func (c *KafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.log.Error("consumer group error", slog.Any("error", err))
		}
	}()

	for {
		if err := c.consumerGroup.Consume(ctx, c.config.Topics, &groupHandler{consumer: c}); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("consumer group session failed: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *KafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.consumerGroup.Close()
}

// groupHandler implements sarama.ConsumerGroupHandler
type groupHandler struct {
	consumer *KafkaConsumer
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var event ReservationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			h.consumer.log.Error("failed to decode reservation event",
				slog.Any("error", err),
				slog.Int64("offset", msg.Offset),
			)
			session.MarkMessage(msg, "")
			continue
		}

		if err := h.consumer.handler(session.Context(), &event); err != nil {
			h.consumer.log.Error("reservation event handler failed", slog.Any("error", err))
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
