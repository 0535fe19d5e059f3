package events

import (
	"context"
	"encoding/json"
	"time"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const (
	DefaultQuoteTopic = "quote-events"

	// quoteBatchTimeout bounds how long a synchronous write waits for a batch
	// to fill. kafka-go defaults to one second, which every quote write would pay.
	quoteBatchTimeout = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaQuotePublisher writes every quote change to a topic as JSON keyed by
// quote id, so consumers see changes of one quote in order.
type KafkaQuotePublisher struct {
	writer  messageWriter
	timeout time.Duration
}

var _ interfaces.IQuoteEventBus = (*KafkaQuotePublisher)(nil)

func NewKafkaQuotePublisher(brokers []string, topic string) *KafkaQuotePublisher {
	if topic == "" {
		topic = DefaultQuoteTopic
	}
	return &KafkaQuotePublisher{
		writer:  newQuoteWriter(brokers, topic),
		timeout: 5 * time.Second,
	}
}

func newQuoteWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: quoteBatchTimeout,
	}
}

func (p *KafkaQuotePublisher) Publish(ctx context.Context, e entities.QuoteEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.Quote.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	})
}

func (p *KafkaQuotePublisher) Close() error {
	return p.writer.Close()
}
