package service

import (
	"context"
	"sync"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"
	"delivery-console/internal/workflow"

	"go.uber.org/zap"
)

// OrderBoardService is the admin orders view: table, detail pane and
// Kanban board over one fetched list.
type OrderBoardService struct {
	api    OrdersAPI
	logger *zap.Logger

	mu      sync.RWMutex
	orders  []domain.Order
	details *domain.OrderDetails
}

var _ workflow.StatusUpdater = (*OrderBoardService)(nil)

func NewOrderBoardService(api OrdersAPI, logger *zap.Logger) *OrderBoardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderBoardService{api: api, logger: logger}
}

func (s *OrderBoardService) Load(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.api.AdminListOrders(ctx)
	if err != nil {
		s.logger.Error("fetch orders", zap.Error(err))
		return nil, err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return s.Orders(), nil
}

func (s *OrderBoardService) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Details opens the detail pane for orderID.
func (s *OrderBoardService) Details(ctx context.Context, orderID int) (*domain.OrderDetails, error) {
	details, err := s.api.AdminOrderDetails(ctx, orderID)
	if err != nil {
		s.logger.Error("fetch order details", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	s.mu.Lock()
	s.details = details
	s.mu.Unlock()
	return details, nil
}

// OpenDetails returns the order currently shown in the detail pane.
func (s *OrderBoardService) OpenDetails() *domain.OrderDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.details
}

func (s *OrderBoardService) CloseDetails() {
	s.mu.Lock()
	s.details = nil
	s.mu.Unlock()
}

// UpdateStatus sends the new status and re-fetches, since the backend does
// not answer with the order. The open detail pane is refreshed when it
// shows the same order.
func (s *OrderBoardService) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) error {
	if err := s.api.UpdateOrderStatus(ctx, orderID, status); err != nil {
		s.logger.Error("update order status",
			zap.Int("order_id", orderID),
			zap.String("status", string(status)),
			zap.Error(err))
		return err
	}
	if _, err := s.Load(ctx); err != nil {
		s.logger.Warn("refetch orders after status change", zap.Error(err))
	}
	if open := s.OpenDetails(); open != nil && open.ID == orderID {
		if _, err := s.Details(ctx, orderID); err != nil {
			s.logger.Warn("refetch open order", zap.Int("order_id", orderID), zap.Error(err))
		}
	}
	return nil
}

type OrderTable struct {
	Orders []domain.Order        `json:"orders"`
	Counts workflow.StatusCounts `json:"counts"`
	Filter *domain.OrderStatus   `json:"filter"`
}

func (s *OrderBoardService) Table(filter *domain.OrderStatus) OrderTable {
	orders := s.Orders()
	return OrderTable{
		Orders: workflow.FilterByStatus(orders, filter),
		Counts: workflow.CountByStatus(orders),
		Filter: filter,
	}
}

func (s *OrderBoardService) Board() workflow.Board {
	return workflow.BuildBoard(s.Orders())
}

// Drop applies a finished Kanban drag.
func (s *OrderBoardService) Drop(ctx context.Context, cardID string, destination *string) (bool, error) {
	return s.Board().Drop(ctx, cardID, destination, s)
}

// CustomerOrdersService is the storefront order history.
type CustomerOrdersService struct {
	api      OrdersAPI
	notifier Notifier
	logger   *zap.Logger

	mu     sync.RWMutex
	orders []domain.Order
}

func NewCustomerOrdersService(api OrdersAPI, notifier Notifier, logger *zap.Logger) *CustomerOrdersService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerOrdersService{api: api, notifier: notifier, logger: logger}
}

func (s *CustomerOrdersService) Load(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		s.logger.Error("fetch orders", zap.Error(err))
		return nil, err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return s.Orders(), nil
}

func (s *CustomerOrdersService) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrderView is one history row with its progress cue.
type OrderView struct {
	domain.Order
	Presentation workflow.Presentation `json:"presentation"`
	Progress     int                   `json:"progress"`
	ShowProgress bool                  `json:"show_progress"`
	Total        string                `json:"total"`
}

func (s *CustomerOrdersService) Filtered(status *domain.OrderStatus) []OrderView {
	orders := workflow.FilterByStatus(s.Orders(), status)
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, OrderView{
			Order:        order,
			Presentation: workflow.Describe(order.Status),
			Progress:     workflow.Progress(order.Status),
			ShowProgress: workflow.ShowsProgress(order.Status),
			Total:        domain.FormatMoney(order.TotalPrice),
		})
	}
	return views
}

// SubmitReview posts a review and re-fetches the history.
func (s *CustomerOrdersService) SubmitReview(ctx context.Context, orderID int, input domain.ReviewInput) error {
	if err := s.api.SubmitReview(ctx, orderID, input); err != nil {
		s.logger.Error("submit review", zap.Int("order_id", orderID), zap.Error(err))
		s.notifier.Error(apiclient.Detail(err, "Помилка при додаванні відгуку"))
		return err
	}
	s.notifier.Success("Дякуємо за відгук!")
	if _, err := s.Load(ctx); err != nil {
		s.logger.Warn("refetch orders after review", zap.Error(err))
	}
	return nil
}

func (s *CustomerOrdersService) Cancel(ctx context.Context, orderID int) error {
	if err := s.api.CancelOrder(ctx, orderID); err != nil {
		s.logger.Error("cancel order", zap.Int("order_id", orderID), zap.Error(err))
		s.notifier.Error(apiclient.Detail(err, "Не вдалося скасувати замовлення"))
		return err
	}
	s.notifier.Success("Замовлення скасовано")
	if _, err := s.Load(ctx); err != nil {
		s.logger.Warn("refetch orders after cancel", zap.Error(err))
	}
	return nil
}
