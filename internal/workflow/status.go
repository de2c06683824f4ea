// Package workflow renders order statuses: labels, icons, colour classes,
// progress percentages, the status table filter and the Kanban board.
package workflow

import "delivery-console/internal/domain"

type Presentation struct {
	Status     domain.OrderStatus `json:"status"`
	Label      string             `json:"label"`
	Icon       string             `json:"icon"`
	ColorClass string             `json:"color_class"`
}

var presentations = map[domain.OrderStatus]Presentation{
	domain.StatusPending:    {Label: "Очікує підтвердження", Icon: "clock", ColorClass: "bg-yellow-100 text-yellow-800"},
	domain.StatusAccepted:   {Label: "Прийнято", Icon: "check-circle", ColorClass: "bg-blue-100 text-blue-800"},
	domain.StatusPreparing:  {Label: "Готується", Icon: "package", ColorClass: "bg-purple-100 text-purple-800"},
	domain.StatusReady:      {Label: "Готово", Icon: "check-circle", ColorClass: "bg-green-100 text-green-800"},
	domain.StatusDelivering: {Label: "Доставляється", Icon: "truck", ColorClass: "bg-indigo-100 text-indigo-800"},
	domain.StatusDelivered:  {Label: "Доставлено", Icon: "check-circle", ColorClass: "bg-green-100 text-green-800"},
	domain.StatusCancelled:  {Label: "Скасовано", Icon: "x-circle", ColorClass: "bg-red-100 text-red-800"},
}

// Describe returns the display treatment of status. Unknown statuses are
// shown raw with the pending icon.
func Describe(status domain.OrderStatus) Presentation {
	p, ok := presentations[status]
	if !ok {
		return Presentation{Status: status, Label: string(status), Icon: "clock"}
	}
	p.Status = status
	return p
}

var progress = map[domain.OrderStatus]int{
	domain.StatusPending:    14,
	domain.StatusAccepted:   28,
	domain.StatusPreparing:  42,
	domain.StatusReady:      56,
	domain.StatusDelivering: 85,
	domain.StatusDelivered:  100,
	domain.StatusCancelled:  0,
}

// Progress is the progress-bar percentage of status. It is a visual cue,
// not a completion fraction.
func Progress(status domain.OrderStatus) int {
	return progress[status]
}

// ShowsProgress reports whether a progress bar is drawn at all.
func ShowsProgress(status domain.OrderStatus) bool {
	return status != domain.StatusCancelled
}

// FilterByStatus keeps orders whose status equals *status, or all orders
// when status is nil.
func FilterByStatus(orders []domain.Order, status *domain.OrderStatus) []domain.Order {
	if status == nil {
		out := make([]domain.Order, len(orders))
		copy(out, orders)
		return out
	}
	out := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == *status {
			out = append(out, order)
		}
	}
	return out
}

type StatusCounts struct {
	All        int `json:"all"`
	Pending    int `json:"pending"`
	Preparing  int `json:"preparing"`
	Delivering int `json:"delivering"`
	Delivered  int `json:"delivered"`
}

func CountByStatus(orders []domain.Order) StatusCounts {
	counts := StatusCounts{All: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusPreparing:
			counts.Preparing++
		case domain.StatusDelivering:
			counts.Delivering++
		case domain.StatusDelivered:
			counts.Delivered++
		}
	}
	return counts
}
