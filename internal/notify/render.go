package notify

import "github.com/charmbracelet/lipgloss"

var palette = map[Kind]string{
	KindSuccess: "#22c55e",
	KindError:   "#ef4444",
	KindInfo:    "#3b82f6",
	KindWarning: "#f59e0b",
}

var icons = map[Kind]string{
	KindSuccess: "✓",
	KindError:   "✕",
	KindInfo:    "ℹ",
	KindWarning: "⚠",
}

func ColorHex(kind Kind) string {
	if color, ok := palette[kind]; ok {
		return color
	}
	return palette[KindInfo]
}

func Icon(kind Kind) string {
	if icon, ok := icons[kind]; ok {
		return icon
	}
	return icons[KindInfo]
}

// Render draws n as a terminal toast.
func Render(n Notification) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(ColorHex(n.Kind))).
		Padding(0, 2).
		MaxWidth(60)
	if n.Fading {
		style = style.Faint(true)
	}
	return style.Render(Icon(n.Kind) + "  " + n.Message)
}
