package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"delivery-console/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recordingSink struct {
	mu   sync.Mutex
	seen []notify.Notification
	err  error
}

func (s *recordingSink) Publish(_ context.Context, n notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, n)
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

func TestBus_NewestReplacesOldest(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := notify.NewBus(nil)
	defer bus.Close()

	bus.Success("Товар додано в кошик")
	bus.Error("Помилка оновлення кількості")

	current, ok := bus.Current()
	require.True(t, ok)
	assert.Equal(t, notify.KindError, current.Kind)
	assert.Equal(t, "Помилка оновлення кількості", current.Message)
}

func TestBus_RemovesAfterDurationAndFade(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := notify.NewBus(nil, notify.WithFade(10*time.Millisecond))
	defer bus.Close()

	bus.Show("Кошик очищено", notify.KindSuccess, 20*time.Millisecond)

	assert.Eventually(t, func() bool {
		current, ok := bus.Current()
		return ok && current.Fading
	}, time.Second, 2*time.Millisecond)

	assert.Eventually(t, func() bool {
		_, ok := bus.Current()
		return !ok
	}, time.Second, 2*time.Millisecond)
}

func TestBus_StaleTimerDoesNotRemoveNewer(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := notify.NewBus(nil, notify.WithFade(time.Millisecond))
	defer bus.Close()

	bus.Show("first", notify.KindInfo, 15*time.Millisecond)
	second := bus.Show("second", notify.KindWarning, time.Hour)

	time.Sleep(50 * time.Millisecond)

	current, ok := bus.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
	assert.False(t, current.Fading)
}

func TestBus_DefaultDuration(t *testing.T) {
	bus := notify.NewBus(nil)
	defer bus.Close()

	n := bus.Info("hello")
	assert.Equal(t, notify.DefaultDuration, n.Duration)
	assert.Equal(t, "#3b82f6", n.Color)
}

func TestBus_SinkReceivesEveryNotification(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := &recordingSink{err: errors.New("broker down")}
	bus := notify.NewBus(nil, notify.WithSink(sink))

	bus.Success("one")
	bus.Warning("two")
	bus.Close()

	assert.Equal(t, 2, sink.count())
}

func TestBus_Dismiss(t *testing.T) {
	bus := notify.NewBus(nil)
	defer bus.Close()

	bus.Error("boom")
	bus.Dismiss()
	_, ok := bus.Current()
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	out := notify.Render(notify.Notification{Message: "Дякуємо за відгук!", Kind: notify.KindSuccess})
	assert.Contains(t, out, "Дякуємо за відгук!")
	assert.Contains(t, out, notify.Icon(notify.KindSuccess))
	assert.Equal(t, notify.ColorHex(notify.KindInfo), notify.ColorHex("unknown"))
}
