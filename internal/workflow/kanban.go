package workflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"delivery-console/internal/domain"
)

type Column struct {
	Status domain.OrderStatus `json:"id"`
	Title  string             `json:"title"`
	Icon   string             `json:"icon"`
	Color  string             `json:"color"`
}

// ready and cancelled have no column; such orders only show in the table.
var kanbanColumns = []Column{
	{Status: domain.StatusPending, Title: "Очікує", Icon: "clock", Color: "warning"},
	{Status: domain.StatusAccepted, Title: "Прийнято", Icon: "check-circle", Color: "info"},
	{Status: domain.StatusPreparing, Title: "Готується", Icon: "package", Color: "primary"},
	{Status: domain.StatusDelivering, Title: "Доставка", Icon: "truck", Color: "info"},
	{Status: domain.StatusDelivered, Title: "Доставлено", Icon: "check-circle", Color: "success"},
}

func KanbanColumns() []Column {
	out := make([]Column, len(kanbanColumns))
	copy(out, kanbanColumns)
	return out
}

func columnFor(status domain.OrderStatus) (Column, bool) {
	for _, column := range kanbanColumns {
		if column.Status == status {
			return column, true
		}
	}
	return Column{}, false
}

type Card struct {
	ID    string       `json:"id"`
	Order domain.Order `json:"order"`
	Total string       `json:"total"`
}

type Lane struct {
	Column Column `json:"column"`
	Cards  []Card `json:"cards"`
}

type Board struct {
	Lanes []Lane `json:"lanes"`
}

func CardID(orderID int) string {
	return "order-" + strconv.Itoa(orderID)
}

// ParseCardID extracts the order id from a card id such as "order-12".
func ParseCardID(cardID string) (int, error) {
	raw := strings.TrimPrefix(cardID, "order-")
	id, err := strconv.Atoi(raw)
	if err != nil || raw == cardID {
		return 0, fmt.Errorf("invalid card id %q", cardID)
	}
	return id, nil
}

// BuildBoard lays orders out in column order. Each order lands in the one
// lane matching its status, or in none.
func BuildBoard(orders []domain.Order) Board {
	board := Board{Lanes: make([]Lane, len(kanbanColumns))}
	index := make(map[domain.OrderStatus]int, len(kanbanColumns))
	for i, column := range kanbanColumns {
		board.Lanes[i] = Lane{Column: column, Cards: []Card{}}
		index[column.Status] = i
	}
	for _, order := range orders {
		i, ok := index[order.Status]
		if !ok {
			continue
		}
		board.Lanes[i].Cards = append(board.Lanes[i].Cards, Card{
			ID:    CardID(order.ID),
			Order: order,
			Total: domain.FormatMoney(order.TotalPrice),
		})
	}
	return board
}

// Lane returns the lane for status.
func (b Board) Lane(status domain.OrderStatus) (Lane, bool) {
	for _, lane := range b.Lanes {
		if lane.Column.Status == status {
			return lane, true
		}
	}
	return Lane{}, false
}

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) error
}

// Drop turns a finished drag into at most one status update. A nil or
// empty destination (released outside every column) or one that names no
// column does nothing and reports false.
func (b Board) Drop(ctx context.Context, cardID string, destination *string, updater StatusUpdater) (bool, error) {
	if destination == nil || *destination == "" {
		return false, nil
	}
	column, ok := columnFor(domain.OrderStatus(*destination))
	if !ok {
		return false, nil
	}
	orderID, err := ParseCardID(cardID)
	if err != nil {
		return false, err
	}
	if err := updater.UpdateStatus(ctx, orderID, column.Status); err != nil {
		return true, fmt.Errorf("move order %d to %s: %w", orderID, column.Status, err)
	}
	return true, nil
}
