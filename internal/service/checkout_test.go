package service_test

import (
	"bytes"
	"context"
	"testing"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"
	"delivery-console/internal/mocks"
	"delivery-console/internal/notify"
	"delivery-console/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Summary(t *testing.T) {
	cart := mocks.NewCartAPI(t)
	svc := service.NewCheckoutService(cart, mocks.NewOrdersAPI(t), nil, mocks.NewNotifier(t), nil)

	cart.On("GetCart", mock.Anything).Return(&domain.Cart{Items: []domain.CartItem{
		{ID: 1, Quantity: 2, Price: 1500},
		{ID: 2, Quantity: 1, Price: 999},
	}}, nil).Once()

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3999), summary.Total)
	assert.Equal(t, "₴39.99", summary.TotalText)
	assert.Equal(t, 2, summary.ItemsCount)
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name         string
		deliveryTime string
		want         domain.OrderInput
	}{
		{name: "as soon as possible", want: domain.OrderInput{Address: "Хрещатик, 1"}},
		{name: "scheduled", deliveryTime: "2026-10-15T18:30", want: domain.OrderInput{Address: "Хрещатик, 1", DeliveryTime: strPtr("2026-10-15T18:30")}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrdersAPI(t)
			notifier := mocks.NewNotifier(t)
			svc := service.NewCheckoutService(mocks.NewCartAPI(t), orders, nil, notifier, nil)

			orders.On("CreateOrder", mock.Anything, testCase.want).Return(&domain.PlacedOrder{ID: 77}, nil).Once()
			notifier.On("Success", "Замовлення оформлено!").Return(notify.Notification{}).Once()

			placed, err := svc.PlaceOrder(context.Background(), "Хрещатик, 1", testCase.deliveryTime)
			require.NoError(t, err)
			assert.Equal(t, 77, placed.ID)
		})
	}
}

func TestCheckoutService_PlaceOrderError(t *testing.T) {
	orders := mocks.NewOrdersAPI(t)
	notifier := mocks.NewNotifier(t)
	svc := service.NewCheckoutService(mocks.NewCartAPI(t), orders, nil, notifier, nil)

	orders.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, &apiclient.APIError{StatusCode: 400, Detail: "Cart is empty"}).Once()
	notifier.On("Error", "Cart is empty").Return(notify.Notification{}).Once()

	_, err := svc.PlaceOrder(context.Background(), "addr", "")
	assert.Error(t, err)
}

func TestOrderPageQR(t *testing.T) {
	qr := service.OrderPageQR{BaseURL: "http://localhost:3000/"}
	assert.Equal(t, "http://localhost:3000/orders?order=12", qr.Link(12))

	svc := service.NewCheckoutService(nil, nil, qr, nil, nil)
	png, err := svc.QRCode(12)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = service.NewCheckoutService(nil, nil, nil, nil, nil).QRCode(12)
	assert.Error(t, err)
}
