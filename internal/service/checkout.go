package service

import (
	"context"
	"fmt"
	"strings"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// OrderPageQR encodes a link to the storefront order page.
type OrderPageQR struct {
	BaseURL string
	Size    int
}

func (g OrderPageQR) Link(orderID int) string {
	return fmt.Sprintf("%s/orders?order=%d", strings.TrimRight(g.BaseURL, "/"), orderID)
}

func (g OrderPageQR) Generate(orderID int) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.Link(orderID), qrcode.Medium, size)
}

type CheckoutSummary struct {
	Total      int64  `json:"total"`
	TotalText  string `json:"total_text"`
	ItemsCount int    `json:"items_count"`
}

type CheckoutService struct {
	cart     CartAPI
	orders   OrdersAPI
	qr       QRGenerator
	notifier Notifier
	logger   *zap.Logger
}

func NewCheckoutService(cart CartAPI, orders OrdersAPI, qr QRGenerator, notifier Notifier, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{cart: cart, orders: orders, qr: qr, notifier: notifier, logger: logger}
}

// Summary totals the raw cart at snapshot prices.
func (s *CheckoutService) Summary(ctx context.Context) (CheckoutSummary, error) {
	cart, err := s.cart.GetCart(ctx)
	if err != nil {
		s.logger.Error("fetch cart for checkout", zap.Error(err))
		return CheckoutSummary{}, err
	}
	var total int64
	for _, item := range cart.Items {
		total += item.LineTotal()
	}
	return CheckoutSummary{Total: total, TotalText: domain.FormatMoney(total), ItemsCount: len(cart.Items)}, nil
}

// PlaceOrder creates the order. A blank delivery time means "as soon as
// possible" and is left out of the request.
func (s *CheckoutService) PlaceOrder(ctx context.Context, address string, deliveryTime string) (*domain.PlacedOrder, error) {
	input := domain.OrderInput{Address: address}
	if strings.TrimSpace(deliveryTime) != "" {
		input.DeliveryTime = &deliveryTime
	}
	placed, err := s.orders.CreateOrder(ctx, input)
	if err != nil {
		s.logger.Error("create order", zap.Error(err))
		s.notifier.Error(apiclient.Detail(err, "Помилка при створенні замовлення"))
		return nil, err
	}
	s.notifier.Success("Замовлення оформлено!")
	return placed, nil
}

func (s *CheckoutService) QRCode(orderID int) ([]byte, error) {
	if s.qr == nil {
		return nil, fmt.Errorf("qr codes are not configured")
	}
	png, err := s.qr.Generate(orderID)
	if err != nil {
		s.logger.Error("generate qr", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return png, nil
}
