package cmd

import (
	"fmt"
	"io"
	"strings"

	"delivery-console/internal/domain"
	"delivery-console/internal/notify"
	"delivery-console/internal/workflow"

	"github.com/charmbracelet/lipgloss"
)

// statusColors maps the web colour classes onto terminal colours.
var statusColors = map[string]string{
	"yellow": "#ca8a04",
	"blue":   "#2563eb",
	"purple": "#9333ea",
	"green":  "#16a34a",
	"indigo": "#4f46e5",
	"red":    "#dc2626",
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	laneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(28)
)

func statusColor(p workflow.Presentation) string {
	for name, hex := range statusColors {
		if strings.Contains(p.ColorClass, "-"+name+"-") {
			return hex
		}
	}
	return "#6b7280"
}

func statusBadge(status domain.OrderStatus) string {
	p := workflow.Describe(status)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(statusColor(p))).
		Padding(0, 1).
		Render(p.Label)
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + fmt.Sprintf("] %d%%", percent)
}

// printToast shows the bus's visible notification, if any.
func printToast(w io.Writer, bus *notify.Bus) {
	if n, ok := bus.Current(); ok {
		fmt.Fprintln(w, notify.Render(n))
	}
}

func renderBoard(board workflow.Board) string {
	lanes := make([]string, 0, len(board.Lanes))
	for _, lane := range board.Lanes {
		var b strings.Builder
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", lane.Column.Title, len(lane.Cards))))
		b.WriteString("\n")
		if len(lane.Cards) == 0 {
			b.WriteString(mutedStyle.Render("порожньо"))
		}
		for _, card := range lane.Cards {
			fmt.Fprintf(&b, "#%d  %s\n", card.Order.ID, card.Total)
			b.WriteString(mutedStyle.Render(card.Order.DeliveryAddress))
			b.WriteString("\n")
		}
		lanes = append(lanes, laneStyle.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, lanes...)
}
