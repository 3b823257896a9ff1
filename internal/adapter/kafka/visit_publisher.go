package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

var _ port.VisitPublisher = (*VisitPublisher)(nil)

// VisitPublisher writes visit events to a Kafka topic as JSON. Messages are
// keyed by campaign id so a campaign's events stay ordered on one partition.
type VisitPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// ProducerConfig holds the connection settings for NewProducer.
type ProducerConfig struct {
	Brokers  []string
	ClientID string
}

// NewProducer dials the brokers and returns a synchronous producer that
// waits for all in-sync replicas.
func NewProducer(cfg ProducerConfig) (sarama.SyncProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V2_6_0_0
	if cfg.ClientID != "" {
		saramaConfig.ClientID = cfg.ClientID
	}
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create producer: %w", err)
	}
	return producer, nil
}

// NewVisitPublisher wraps producer. The publisher owns the producer and
// closes it in Close.
func NewVisitPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *VisitPublisher {
	return &VisitPublisher{producer: producer, topic: topic, logger: logger}
}

func (p *VisitPublisher) PublishVisit(ctx context.Context, event domain.VisitEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal visit event: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.CampaignID),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.OccurredAt,
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send visit event: %w", err)
	}
	p.logger.Debug("visit event published",
		slog.String("event_id", event.ID),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset))
	return nil
}

func (p *VisitPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("close producer: %w", err)
	}
	return nil
}
