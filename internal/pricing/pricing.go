// Package pricing formats catalog prices for display.
package pricing

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/marcus/pdp/internal/models"
)

// GroupSeparator separates thousands groups, e.g. "14 999"
const GroupSeparator = " "

// FormatAmount groups the digits of amount in thousands
func FormatAmount(amount int64) string {
	return strings.ReplaceAll(humanize.Comma(amount), ",", GroupSeparator)
}

// Format renders a price with its currency symbol, e.g. "14 999 ₽"
func Format(p models.Price) string {
	s := FormatAmount(p.Amount)
	if p.Symbol == "" {
		return s
	}
	return s + " " + p.Symbol
}
