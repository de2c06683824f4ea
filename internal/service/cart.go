// Package service holds the view-state containers of both consoles. Each
// container owns the last state it fetched, talks to the backend through a
// narrow API interface and reports outcomes as toasts.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultRemovalDelay = 300 * time.Millisecond

// ErrQuantityFloor is returned for quantities below one. No request is sent.
var ErrQuantityFloor = errors.New("quantity must be at least 1")

// CartLine is a cart item joined with its current menu entry.
type CartLine struct {
	domain.CartItem
	MenuItem domain.MenuItem `json:"menu_item"`
}

// Bulk is true when the line earns the "great choice" hint.
func (l CartLine) Bulk() bool {
	return l.Quantity >= 3
}

type CartService struct {
	api          CartAPI
	notifier     Notifier
	logger       *zap.Logger
	removalDelay time.Duration

	mu    sync.RWMutex
	lines []CartLine
}

func NewCartService(api CartAPI, notifier Notifier, logger *zap.Logger, removalDelay time.Duration) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{api: api, notifier: notifier, logger: logger, removalDelay: removalDelay}
}

// Lines returns the last reconciled cart.
func (s *CartService) Lines() []CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total sums snapshot price times quantity over the current lines.
func (s *CartService) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, line := range s.lines {
		total += line.LineTotal()
	}
	return total
}

// Fetch loads the cart and resolves every line's menu item concurrently.
// Lines whose menu item is gone are dropped and deleted server-side once,
// best effort. Any other lookup failure fails the whole fetch and the
// previous state is kept.
func (s *CartService) Fetch(ctx context.Context) ([]CartLine, error) {
	cart, err := s.api.GetCart(ctx)
	if err != nil {
		s.logger.Error("fetch cart", zap.Error(err))
		return nil, err
	}

	resolved := make([]*domain.MenuItem, len(cart.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range cart.Items {
		i, item := i, item
		g.Go(func() error {
			menuItem, err := s.api.GetMenuItem(gctx, item.MenuItemID)
			if apiclient.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("menu item %d: %w", item.MenuItemID, err)
			}
			resolved[i] = menuItem
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("resolve cart items", zap.Error(err))
		return nil, err
	}

	lines := make([]CartLine, 0, len(cart.Items))
	for i, item := range cart.Items {
		if resolved[i] == nil {
			s.dropStale(ctx, item)
			continue
		}
		lines = append(lines, CartLine{CartItem: item, MenuItem: *resolved[i]})
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
	return s.Lines(), nil
}

func (s *CartService) dropStale(ctx context.Context, item domain.CartItem) {
	s.logger.Warn("menu item gone, removing cart line",
		zap.Int("cart_item_id", item.ID),
		zap.Int("menu_item_id", item.MenuItemID))
	if err := s.api.RemoveCartItem(ctx, item.ID); err != nil {
		s.logger.Warn("remove stale cart line", zap.Int("cart_item_id", item.ID), zap.Error(err))
	}
}

func (s *CartService) refetch(ctx context.Context) {
	if _, err := s.Fetch(ctx); err != nil {
		s.logger.Warn("refetch cart", zap.Error(err))
	}
}

// UpdateQuantity sets an absolute quantity, then re-fetches.
func (s *CartService) UpdateQuantity(ctx context.Context, itemID, quantity int) error {
	if quantity < 1 {
		return ErrQuantityFloor
	}
	if err := s.api.UpdateCartItem(ctx, itemID, quantity); err != nil {
		s.logger.Error("update cart quantity", zap.Int("cart_item_id", itemID), zap.Error(err))
		s.notifier.Error("Помилка оновлення кількості")
		return err
	}
	s.refetch(ctx)
	s.notifier.Success("Кількість оновлено")
	return nil
}

// Adjust changes the quantity of a line by delta relative to the last
// fetched state.
func (s *CartService) Adjust(ctx context.Context, itemID, delta int) error {
	line, ok := s.line(itemID)
	if !ok {
		return fmt.Errorf("cart item %d: %w", itemID, apiclient.ErrNotFound)
	}
	return s.UpdateQuantity(ctx, itemID, line.Quantity+delta)
}

func (s *CartService) Increment(ctx context.Context, itemID int) error {
	return s.Adjust(ctx, itemID, 1)
}

func (s *CartService) Decrement(ctx context.Context, itemID int) error {
	return s.Adjust(ctx, itemID, -1)
}

func (s *CartService) line(itemID int) (CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, line := range s.lines {
		if line.ID == itemID {
			return line, true
		}
	}
	return CartLine{}, false
}

// Remove waits out the removal animation, deletes the line and re-fetches.
func (s *CartService) Remove(ctx context.Context, itemID int) error {
	if s.removalDelay > 0 {
		timer := time.NewTimer(s.removalDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	if err := s.api.RemoveCartItem(ctx, itemID); err != nil {
		s.logger.Error("remove cart item", zap.Int("cart_item_id", itemID), zap.Error(err))
		s.notifier.Error("Помилка при видаленні")
		return err
	}
	s.refetch(ctx)
	s.notifier.Success("Товар видалено з кошика")
	return nil
}

// Clear empties the cart. Local state is emptied without a re-fetch.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.api.ClearCart(ctx); err != nil {
		s.logger.Error("clear cart", zap.Error(err))
		s.notifier.Error("Помилка очищення кошика")
		return err
	}
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
	s.notifier.Success("Кошик очищено")
	return nil
}

// Add puts one unit of item in the cart at its current price.
func (s *CartService) Add(ctx context.Context, item domain.MenuItem) error {
	input := domain.CartItemInput{MenuItemID: item.ID, Quantity: 1, Price: item.Price}
	if err := s.api.AddCartItem(ctx, input); err != nil {
		s.logger.Error("add to cart", zap.Int("menu_item_id", item.ID), zap.Error(err))
		s.notifier.Error("Не вдалося додати в кошик")
		return err
	}
	s.notifier.Success(item.Name + " додано в кошик")
	return nil
}
