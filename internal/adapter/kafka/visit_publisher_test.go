package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"adrelay/internal/core/domain"
)

func testEvent() domain.VisitEvent {
	return domain.VisitEvent{
		ID:         "evt-1",
		CampaignID: "c1",
		IP:         "1.2.3.4",
		UserAgent:  "Mozilla/5.0",
		Outcome:    domain.OutcomeBilled,
		Amount:     5,
		OccurredAt: time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
	}
}

func TestPublishVisit(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "ad-visits" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "c1" {
			return errors.New("unexpected key " + string(key))
		}
		return nil
	})
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var got domain.VisitEvent
		if err := json.Unmarshal(value, &got); err != nil {
			return err
		}
		want := testEvent()
		if got.ID != want.ID || got.Outcome != want.Outcome || got.Amount != want.Amount || !got.OccurredAt.Equal(want.OccurredAt) {
			return errors.New("payload does not round-trip")
		}
		return nil
	})

	p := NewVisitPublisher(producer, "ad-visits", slog.New(slog.DiscardHandler))
	require.NoError(t, p.PublishVisit(context.Background(), testEvent()))
	require.NoError(t, p.PublishVisit(context.Background(), testEvent()))
	require.NoError(t, p.Close())
}

func TestPublishVisitSendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewVisitPublisher(producer, "ad-visits", slog.New(slog.DiscardHandler))
	err := p.PublishVisit(context.Background(), testEvent())
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestPublishVisitCanceledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	p := NewVisitPublisher(producer, "ad-visits", slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.PublishVisit(ctx, testEvent()), context.Canceled)
	require.NoError(t, p.Close())
}
