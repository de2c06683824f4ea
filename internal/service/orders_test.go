package service_test

import (
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

func strPtr(s string) *string { return &s }

func TestOrderBoardService_UpdateStatusRefetches(t *testing.T) {
	tests := []struct {
		name          string
		openOrderID   int
		updateOrderID int
		wantDetails   int
	}{
		{name: "detail pane on same order", openOrderID: 5, updateOrderID: 5, wantDetails: 2},
		{name: "detail pane on other order", openOrderID: 6, updateOrderID: 5, wantDetails: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			api := mocks.NewOrdersAPI(t)
			svc := service.NewOrderBoardService(api, nil)
			ctx := context.Background()

			api.On("AdminOrderDetails", mock.Anything, testCase.openOrderID).
				Return(&domain.OrderDetails{Order: domain.Order{ID: testCase.openOrderID}}, nil)
			_, err := svc.Details(ctx, testCase.openOrderID)
			require.NoError(t, err)

			api.On("UpdateOrderStatus", mock.Anything, testCase.updateOrderID, domain.StatusPreparing).Return(nil).Once()
			api.On("AdminListOrders", mock.Anything).Return([]domain.Order{
				{ID: testCase.updateOrderID, Status: domain.StatusPreparing},
			}, nil).Once()

			require.NoError(t, svc.UpdateStatus(ctx, testCase.updateOrderID, domain.StatusPreparing))
			assert.Equal(t, domain.StatusPreparing, svc.Orders()[0].Status)
			api.AssertNumberOfCalls(t, "AdminOrderDetails", testCase.wantDetails)
		})
	}
}

func TestOrderBoardService_UpdateStatusError(t *testing.T) {
	api := mocks.NewOrdersAPI(t)
	svc := service.NewOrderBoardService(api, nil)

	api.On("UpdateOrderStatus", mock.Anything, 1, domain.StatusDelivered).Return(assert.AnError).Once()
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), 1, domain.StatusDelivered), assert.AnError)
	api.AssertNotCalled(t, "AdminListOrders", mock.Anything)
}

func TestOrderBoardService_TableAndBoard(t *testing.T) {
	api := mocks.NewOrdersAPI(t)
	svc := service.NewOrderBoardService(api, nil)

	api.On("AdminListOrders", mock.Anything).Return([]domain.Order{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusReady},
		{ID: 3, Status: domain.StatusDelivering},
	}, nil).Once()
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	pending := domain.StatusPending
	table := svc.Table(&pending)
	assert.Len(t, table.Orders, 1)
	assert.Equal(t, 3, table.Counts.All)
	assert.Equal(t, 1, table.Counts.Delivering)

	lane, ok := svc.Board().Lane(domain.StatusDelivering)
	require.True(t, ok)
	assert.Equal(t, "order-3", lane.Cards[0].ID)
}

func TestOrderBoardService_Drop(t *testing.T) {
	api := mocks.NewOrdersAPI(t)
	svc := service.NewOrderBoardService(api, nil)
	ctx := context.Background()

	moved, err := svc.Drop(ctx, "order-3", nil)
	require.NoError(t, err)
	assert.False(t, moved)

	api.On("UpdateOrderStatus", mock.Anything, 3, domain.StatusAccepted).Return(nil).Once()
	api.On("AdminListOrders", mock.Anything).Return([]domain.Order{{ID: 3, Status: domain.StatusAccepted}}, nil).Once()

	moved, err = svc.Drop(ctx, "order-3", strPtr("accepted"))
	require.NoError(t, err)
	assert.True(t, moved)
	api.AssertNumberOfCalls(t, "UpdateOrderStatus", 1)
}

func TestCustomerOrdersService_Filtered(t *testing.T) {
	api := mocks.NewOrdersAPI(t)
	svc := service.NewCustomerOrdersService(api, mocks.NewNotifier(t), nil)

	api.On("ListOrders", mock.Anything).Return([]domain.Order{
		{ID: 1, Status: domain.StatusDelivering, TotalPrice: 25000},
		{ID: 2, Status: domain.StatusCancelled},
	}, nil).Once()
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	views := svc.Filtered(nil)
	require.Len(t, views, 2)
	assert.Equal(t, 85, views[0].Progress)
	assert.Equal(t, "₴250.00", views[0].Total)
	assert.Equal(t, "Доставляється", views[0].Presentation.Label)
	assert.False(t, views[1].ShowProgress)

	cancelled := domain.StatusCancelled
	assert.Len(t, svc.Filtered(&cancelled), 1)
}

func TestCustomerOrdersService_SubmitReview(t *testing.T) {
	api := mocks.NewOrdersAPI(t)
	notifier := mocks.NewNotifier(t)
	svc := service.NewCustomerOrdersService(api, notifier, nil)
	ctx := context.Background()
	input := domain.ReviewInput{Rating: 5, Comment: "Смачно"}

	api.On("SubmitReview", mock.Anything, 4, input).Return(nil).Once()
	api.On("ListOrders", mock.Anything).Return([]domain.Order{{ID: 4}}, nil).Once()
	notifier.On("Success", "Дякуємо за відгук!").Return(notify.Notification{}).Once()
	require.NoError(t, svc.SubmitReview(ctx, 4, input))

	api.On("SubmitReview", mock.Anything, 4, input).
		Return(&apiclient.APIError{StatusCode: 400, Detail: "Review already exists"}).Once()
	notifier.On("Error", "Review already exists").Return(notify.Notification{}).Once()
	assert.Error(t, svc.SubmitReview(ctx, 4, input))
}

func TestCustomerOrdersService_Cancel(t *testing.T) {
	api := mocks.NewOrdersAPI(t)
	notifier := mocks.NewNotifier(t)
	svc := service.NewCustomerOrdersService(api, notifier, nil)

	api.On("CancelOrder", mock.Anything, 8).Return(nil).Once()
	api.On("ListOrders", mock.Anything).Return([]domain.Order{{ID: 8, Status: domain.StatusCancelled}}, nil).Once()
	notifier.On("Success", "Замовлення скасовано").Return(notify.Notification{}).Once()

	require.NoError(t, svc.Cancel(context.Background(), 8))
	assert.Equal(t, domain.StatusCancelled, svc.Orders()[0].Status)
}
