package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer is a Kafka backed Publisher. Messages are keyed so that every event
// of one user lands on the same partition.
type Producer struct {
	w     messageWriter
	inbox chan kafka.Message
	done  chan struct{}
}

func NewProducer(brokers []string, topic string, buf int) *Producer {
	return newProducer(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				zap.L().Error("failed to deliver events", zap.Int("count", len(messages)), zap.Error(err))
			}
		},
	}, buf)
}

func newProducer(w messageWriter, buf int) *Producer {
	return &Producer{
		w:     w,
		inbox: make(chan kafka.Message, buf),
		done:  make(chan struct{}),
	}
}

// Start runs the delivery loop until ctx is done, then flushes what is queued
// and closes the writer.
func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.done)
		for {
			select {
			case <-ctx.Done():
				p.flush()
				if err := p.w.Close(); err != nil {
					zap.L().Error("failed to close event writer", zap.Error(err))
				}
				return
			case m := <-p.inbox:
				p.write(m)
			}
		}
	}()
}

// Wait blocks until the delivery loop has flushed and exited.
func (p *Producer) Wait() {
	<-p.done
}

func (p *Producer) Publish(_ context.Context, eventType, key string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("can't encode event payload", zap.String("event_type", eventType), zap.Error(err))
		return
	}
	env := Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     producerName,
		Payload:      body,
	}
	value, err := json.Marshal(env)
	if err != nil {
		zap.L().Error("can't encode event", zap.String("event_type", eventType), zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Time:    env.OccurredAt,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(eventType)}},
	}
	select {
	case p.inbox <- msg:
	default:
		zap.L().Warn("event queue is full, dropping event", zap.String("event_type", eventType), zap.String("key", key))
	}
}

func (p *Producer) flush() {
	for {
		select {
		case m := <-p.inbox:
			p.write(m)
		default:
			return
		}
	}
}

func (p *Producer) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		zap.L().Error("failed to write event", zap.ByteString("key", m.Key), zap.Error(err))
	}
}
