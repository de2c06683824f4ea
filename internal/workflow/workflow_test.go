package workflow_test

import (
	"context"
	"errors"
	"testing"

	"delivery-console/internal/domain"
	"delivery-console/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingUpdater struct {
	calls []updateCall
	err   error
}

type updateCall struct {
	orderID int
	status  domain.OrderStatus
}

func (r *recordingUpdater) UpdateStatus(_ context.Context, orderID int, status domain.OrderStatus) error {
	r.calls = append(r.calls, updateCall{orderID: orderID, status: status})
	return r.err
}

func strPtr(s string) *string { return &s }

func TestDescribe(t *testing.T) {
	tests := []struct {
		status domain.OrderStatus
		label  string
		color  string
	}{
		{domain.StatusPending, "Очікує підтвердження", "bg-yellow-100 text-yellow-800"},
		{domain.StatusAccepted, "Прийнято", "bg-blue-100 text-blue-800"},
		{domain.StatusPreparing, "Готується", "bg-purple-100 text-purple-800"},
		{domain.StatusReady, "Готово", "bg-green-100 text-green-800"},
		{domain.StatusDelivering, "Доставляється", "bg-indigo-100 text-indigo-800"},
		{domain.StatusDelivered, "Доставлено", "bg-green-100 text-green-800"},
		{domain.StatusCancelled, "Скасовано", "bg-red-100 text-red-800"},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.status), func(t *testing.T) {
			p := workflow.Describe(testCase.status)
			assert.Equal(t, testCase.label, p.Label)
			assert.Equal(t, testCase.color, p.ColorClass)
			assert.NotEmpty(t, p.Icon)
		})
	}

	unknown := workflow.Describe("lost")
	assert.Equal(t, "lost", unknown.Label)
}

func TestProgress(t *testing.T) {
	want := map[domain.OrderStatus]int{
		domain.StatusPending:    14,
		domain.StatusAccepted:   28,
		domain.StatusPreparing:  42,
		domain.StatusReady:      56,
		domain.StatusDelivering: 85,
		domain.StatusDelivered:  100,
		domain.StatusCancelled:  0,
	}
	for _, status := range domain.AllStatuses() {
		assert.Equal(t, want[status], workflow.Progress(status), status)
	}
	assert.Equal(t, 0, workflow.Progress("lost"))
	assert.False(t, workflow.ShowsProgress(domain.StatusCancelled))
	assert.True(t, workflow.ShowsProgress(domain.StatusPending))
}

func TestFilterByStatus(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusDelivered},
		{ID: 3, Status: domain.StatusPending},
	}

	all := workflow.FilterByStatus(orders, nil)
	assert.Len(t, all, 3)

	pending := domain.StatusPending
	filtered := workflow.FilterByStatus(orders, &pending)
	require.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 3, filtered[1].ID)

	cancelled := domain.StatusCancelled
	assert.Empty(t, workflow.FilterByStatus(orders, &cancelled))
}

func TestCountByStatus(t *testing.T) {
	orders := []domain.Order{
		{Status: domain.StatusPending},
		{Status: domain.StatusPending},
		{Status: domain.StatusPreparing},
		{Status: domain.StatusReady},
		{Status: domain.StatusDelivered},
	}
	counts := workflow.CountByStatus(orders)
	assert.Equal(t, workflow.StatusCounts{All: 5, Pending: 2, Preparing: 1, Delivered: 1}, counts)
}

func TestKanbanColumns_ExcludeReadyAndCancelled(t *testing.T) {
	var statuses []domain.OrderStatus
	for _, column := range workflow.KanbanColumns() {
		statuses = append(statuses, column.Status)
	}
	assert.Equal(t, []domain.OrderStatus{
		domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusPreparing,
		domain.StatusDelivering,
		domain.StatusDelivered,
	}, statuses)
}

func TestBuildBoard(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Status: domain.StatusPending, TotalPrice: 1250},
		{ID: 2, Status: domain.StatusReady},
		{ID: 3, Status: domain.StatusCancelled},
		{ID: 4, Status: domain.StatusPending},
		{ID: 5, Status: domain.StatusDelivered},
	}

	board := workflow.BuildBoard(orders)
	require.Len(t, board.Lanes, 5)

	pending, ok := board.Lane(domain.StatusPending)
	require.True(t, ok)
	require.Len(t, pending.Cards, 2)
	assert.Equal(t, "order-1", pending.Cards[0].ID)
	assert.Equal(t, "₴12.50", pending.Cards[0].Total)
	assert.Equal(t, "order-4", pending.Cards[1].ID)

	placed := 0
	for _, lane := range board.Lanes {
		placed += len(lane.Cards)
	}
	assert.Equal(t, 3, placed)

	_, ok = board.Lane(domain.StatusReady)
	assert.False(t, ok)
}

func TestBoard_Drop(t *testing.T) {
	board := workflow.BuildBoard([]domain.Order{{ID: 42, Status: domain.StatusPending}})

	tests := []struct {
		name        string
		cardID      string
		destination *string
		wantMoved   bool
		wantCalls   []updateCall
		wantErr     bool
	}{
		{name: "outside every column", cardID: "order-42", destination: nil},
		{name: "empty destination", cardID: "order-42", destination: strPtr("")},
		{name: "not a column", cardID: "order-42", destination: strPtr("ready")},
		{
			name:        "onto preparing",
			cardID:      "order-42",
			destination: strPtr("preparing"),
			wantMoved:   true,
			wantCalls:   []updateCall{{orderID: 42, status: domain.StatusPreparing}},
		},
		{name: "bad card id", cardID: "dish-42", destination: strPtr("accepted"), wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			updater := &recordingUpdater{}
			moved, err := board.Drop(context.Background(), testCase.cardID, testCase.destination, updater)
			if testCase.wantErr {
				assert.Error(t, err)
				assert.Empty(t, updater.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantMoved, moved)
			assert.Equal(t, testCase.wantCalls, updater.calls)
		})
	}
}

func TestBoard_DropPropagatesUpdateError(t *testing.T) {
	updater := &recordingUpdater{err: errors.New("boom")}
	moved, err := workflow.Board{}.Drop(context.Background(), "order-7", strPtr("delivered"), updater)
	assert.True(t, moved)
	assert.ErrorContains(t, err, "boom")
	assert.Len(t, updater.calls, 1)
}

func TestParseCardID(t *testing.T) {
	id, err := workflow.ParseCardID(workflow.CardID(15))
	require.NoError(t, err)
	assert.Equal(t, 15, id)

	_, err = workflow.ParseCardID("15")
	assert.Error(t, err)
}
