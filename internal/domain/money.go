package domain

import "fmt"

// FormatMoney renders minor currency units (kopiyky) as hryvnias.
func FormatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s₴%d.%02d", sign, minor/100, minor%100)
}
