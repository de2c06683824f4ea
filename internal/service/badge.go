package service

import (
	"context"
	"sync"
	"time"

	"delivery-console/internal/domain"

	"go.uber.org/zap"
)

const DefaultBadgePollInterval = 10 * time.Second

type cartReader interface {
	GetCart(ctx context.Context) (*domain.Cart, error)
}

type tokenReader interface {
	Token(ctx context.Context) (string, error)
}

// CartBadge keeps the header cart counter fresh by polling. Poll errors are
// ignored and the last count stays. Without a session token the badge reads
// zero and the backend is not asked.
type CartBadge struct {
	api      cartReader
	session  tokenReader
	interval time.Duration
	logger   *zap.Logger

	mu     sync.RWMutex
	count  int
	cancel context.CancelFunc
	done   chan struct{}
}

func NewCartBadge(api cartReader, session tokenReader, interval time.Duration, logger *zap.Logger) *CartBadge {
	if interval <= 0 {
		interval = DefaultBadgePollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartBadge{api: api, session: session, interval: interval, logger: logger}
}

func (b *CartBadge) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Refresh polls once. The badge counts cart lines, not units.
func (b *CartBadge) Refresh(ctx context.Context) {
	if !b.loggedIn(ctx) {
		b.mu.Lock()
		b.count = 0
		b.mu.Unlock()
		return
	}
	cart, err := b.api.GetCart(ctx)
	if err != nil {
		b.logger.Debug("badge poll", zap.Error(err))
		return
	}
	b.mu.Lock()
	b.count = len(cart.Items)
	b.mu.Unlock()
}

func (b *CartBadge) loggedIn(ctx context.Context) bool {
	if b.session == nil {
		return true
	}
	token, err := b.session.Token(ctx)
	if err != nil {
		b.logger.Debug("badge session", zap.Error(err))
		return false
	}
	return token != ""
}

// Start polls immediately and then every interval until Stop is called or
// ctx ends. Calling Start twice is a no-op.
func (b *CartBadge) Start(ctx context.Context) {
	b.mu.Lock()
	if b.done != nil {
		b.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.done = make(chan struct{})
	done := b.done
	b.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()
		b.Refresh(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.Refresh(ctx)
			}
		}
	}()
}

// Stop ends polling and waits for the poller to exit.
func (b *CartBadge) Stop() {
	b.mu.Lock()
	cancel, done := b.cancel, b.done
	b.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}
