package aggregate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quality-care/careview/internal/model"
)

var englishPrinter = message.NewPrinter(language.English)

// FormatReviewCount renders a review count the way the volume table
// displays it: thousands-separated with a unit suffix ("1,234 reviews",
// "0 reviews").
func FormatReviewCount(n int) string {
	return englishPrinter.Sprintf("%d reviews", n)
}

// DisplayRow mirrors a TotalsRow with every cell rendered as a display
// string.
type DisplayRow struct {
	Category     model.Category `json:"category" yaml:"category"`
	Government   string         `json:"government" yaml:"government"`
	SmallPrivate string         `json:"small_private" yaml:"small_private"`
	HighClass    string         `json:"high_class" yaml:"high_class"`
	Total        string         `json:"total" yaml:"total"`
}

// DisplayTable renders a review-volume table's cells as review-count
// display strings, preserving row order.
func DisplayTable(t TotalsTable) []DisplayRow {
	out := make([]DisplayRow, 0, len(t))
	for _, row := range t {
		out = append(out, DisplayRow{
			Category:     row.Category,
			Government:   FormatReviewCount(row.Government),
			SmallPrivate: FormatReviewCount(row.SmallPrivate),
			HighClass:    FormatReviewCount(row.HighClass),
			Total:        FormatReviewCount(row.Total),
		})
	}
	return out
}
