package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/config"
)

const (
	TopicPortfolioEvents = "portfolio.events"
	TopicViewEvents      = "view.events"
)

const (
	PortfolioEventTypeCreated = "portfolio.created"
	ViewEventTypeViewed       = "portfolio.viewed"
)

type PortfolioEventPayload struct {
	EventType  string    `json:"event_type"`
	UniqueID   string    `json:"unique_id"`
	Name       string    `json:"name"`
	Skills     int       `json:"skill_count"`
	Projects   int       `json:"project_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ViewEventPayload struct {
	EventType  string    `json:"event_type"`
	UniqueID   string    `json:"unique_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	PortfolioEventsWriter *kafka.Writer
	ViewEventsWriter      *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	portfolioWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	viewWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicViewEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		PortfolioEventsWriter: portfolioWriter,
		ViewEventsWriter:      viewWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishPortfolioEvent(ctx context.Context, payload PortfolioEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal portfolio event: %w", err)
	}
	return c.PortfolioEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.UniqueID),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishViewEvent(ctx context.Context, payload ViewEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal view event: %w", err)
	}
	return c.ViewEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.UniqueID),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.PortfolioEventsWriter != nil {
		c.PortfolioEventsWriter.Close()
	}
	if c.ViewEventsWriter != nil {
		c.ViewEventsWriter.Close()
	}
}
