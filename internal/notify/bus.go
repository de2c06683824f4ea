// Package notify is the process-wide toast surface. One Bus is created per
// application and injected; at most one notification is visible at a time.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

const (
	DefaultDuration = 3000 * time.Millisecond
	FadeDuration    = 300 * time.Millisecond
)

type Notification struct {
	ID       string        `json:"id"`
	Message  string        `json:"message"`
	Kind     Kind          `json:"kind"`
	Color    string        `json:"color"`
	ShownAt  time.Time     `json:"shown_at"`
	Duration time.Duration `json:"duration"`
	Fading   bool          `json:"fading"`
}

// Sink receives a copy of every notification shown.
type Sink interface {
	Publish(ctx context.Context, n Notification) error
}

type Bus struct {
	mu       sync.Mutex
	current  *Notification
	timer    *time.Timer
	duration time.Duration
	fade     time.Duration
	closed   bool

	sink    Sink
	logger  *zap.Logger
	publish sync.WaitGroup
}

type Option func(*Bus)

func WithSink(sink Sink) Option {
	return func(b *Bus) { b.sink = sink }
}

func WithDefaultDuration(d time.Duration) Option {
	return func(b *Bus) { b.duration = d }
}

func WithFade(d time.Duration) Option {
	return func(b *Bus) { b.fade = d }
}

func NewBus(logger *zap.Logger, opts ...Option) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Bus{duration: DefaultDuration, fade: FadeDuration, logger: logger}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Show replaces whatever is visible with a new notification and schedules
// its removal. A duration <= 0 uses the bus default.
func (b *Bus) Show(message string, kind Kind, duration time.Duration) Notification {
	if duration <= 0 {
		duration = b.duration
	}
	n := Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Kind:     kind,
		Color:    ColorHex(kind),
		ShownAt:  time.Now(),
		Duration: duration,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return n
	}
	if b.timer != nil {
		b.timer.Stop()
	}
	shown := n
	b.current = &shown
	b.timer = time.AfterFunc(duration, func() { b.startFade(n.ID) })
	sink := b.sink
	if sink != nil {
		b.publish.Add(1)
	}
	b.mu.Unlock()

	if sink != nil {
		go func() {
			defer b.publish.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := sink.Publish(ctx, n); err != nil {
				b.logger.Warn("publish notification", zap.String("kind", string(kind)), zap.Error(err))
			}
		}()
	}
	return n
}

func (b *Bus) startFade(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil || b.current.ID != id {
		return
	}
	b.current.Fading = true
	b.timer = time.AfterFunc(b.fade, func() { b.remove(id) })
}

func (b *Bus) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current != nil && b.current.ID == id {
		b.current = nil
		b.timer = nil
	}
}

func (b *Bus) Success(message string) Notification {
	return b.Show(message, KindSuccess, 0)
}

func (b *Bus) Error(message string) Notification {
	return b.Show(message, KindError, 0)
}

func (b *Bus) Info(message string) Notification {
	return b.Show(message, KindInfo, 0)
}

func (b *Bus) Warning(message string) Notification {
	return b.Show(message, KindWarning, 0)
}

// Current returns a copy of the visible notification, if any.
func (b *Bus) Current() (Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Notification{}, false
	}
	return *b.current, true
}

// Dismiss removes the visible notification at once.
func (b *Bus) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.current = nil
}

// Close stops pending timers and waits for in-flight sink publishes.
func (b *Bus) Close() {
	b.mu.Lock()
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.current = nil
	b.mu.Unlock()
	b.publish.Wait()
}
