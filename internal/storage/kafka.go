package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"delivery-console/internal/notify"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type NotificationEvent struct {
	App          string              `json:"app"`
	Notification notify.Notification `json:"notification"`
}

// KafkaSink publishes every toast a console shows, keyed by kind.
type KafkaSink struct {
	Writer MessageWriter
	App    string
}

var _ notify.Sink = (*KafkaSink)(nil)

func NewKafkaSink(writer MessageWriter, app string) *KafkaSink {
	return &KafkaSink{Writer: writer, App: app}
}

func (s *KafkaSink) Publish(ctx context.Context, n notify.Notification) error {
	payload, err := json.Marshal(NotificationEvent{App: s.App, Notification: n})
	if err != nil {
		return err
	}
	return s.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.Kind),
		Value: payload,
	})
}

func (s *KafkaSink) Close() error {
	return s.Writer.Close()
}

// NotificationFeed reads toasts published by any console.
type NotificationFeed struct {
	Reader MessageReader
}

func NewNotificationFeed(reader MessageReader) *NotificationFeed {
	return &NotificationFeed{Reader: reader}
}

// Next blocks until the next event arrives or ctx is done.
func (f *NotificationFeed) Next(ctx context.Context) (NotificationEvent, error) {
	msg, err := f.Reader.ReadMessage(ctx)
	if err != nil {
		return NotificationEvent{}, err
	}
	var event NotificationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return NotificationEvent{}, fmt.Errorf("decode notification at offset %d: %w", msg.Offset, err)
	}
	return event, nil
}

func (f *NotificationFeed) Close() error {
	return f.Reader.Close()
}
