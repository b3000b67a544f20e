// Package aggregate derives the fixed set of review views from the
// canonical record set. Every derivation is a pure function over an
// immutable slice: same records in, same view out, no partial failures.
// Grouping always runs over the fixed, enumerated key space — a sparse
// input still yields every row and column, zero-filled.
package aggregate

import "github.com/quality-care/careview/internal/model"

// TotalsRow is one fixed-order row of a category totals table. Total spans
// the fixed three company types only; records with other types never reach
// these columns but still count in overall summaries.
type TotalsRow struct {
	Category     model.Category `json:"category" yaml:"category"`
	Government   int            `json:"government" yaml:"government"`
	SmallPrivate int            `json:"small_private" yaml:"small_private"`
	HighClass    int            `json:"high_class" yaml:"high_class"`
	Total        int            `json:"total" yaml:"total"`
}

// TotalsTable holds exactly one row per fixed category, in fixed order.
type TotalsTable []TotalsRow

// Row returns the table row for a category.
func (t TotalsTable) Row(category model.Category) (TotalsRow, bool) {
	for _, row := range t {
		if row.Category == category {
			return row, true
		}
	}
	return TotalsRow{}, false
}

// CompanyCounts derives the distinct-company count per (category, company
// type) cell. Distinctness is by exact company name within the cell.
func CompanyCounts(records []model.CanonicalRecord) TotalsTable {
	names := make(map[model.Category]map[model.CompanyType]map[string]struct{})
	for _, r := range records {
		if !r.CompanyType.IsFixed() {
			continue
		}
		byType := names[r.Category]
		if byType == nil {
			byType = make(map[model.CompanyType]map[string]struct{})
			names[r.Category] = byType
		}
		cell := byType[r.CompanyType]
		if cell == nil {
			cell = make(map[string]struct{})
			byType[r.CompanyType] = cell
		}
		cell[r.CompanyName] = struct{}{}
	}

	table := make(TotalsTable, 0, len(model.Categories))
	for _, cat := range model.Categories {
		row := TotalsRow{
			Category:     cat,
			Government:   len(names[cat][model.TypeGovernment]),
			SmallPrivate: len(names[cat][model.TypeSmallPrivate]),
			HighClass:    len(names[cat][model.TypeHighClass]),
		}
		row.Total = row.Government + row.SmallPrivate + row.HighClass
		table = append(table, row)
	}
	return table
}

// ReviewTotals derives the review-count sum per (category, company type)
// cell. Same shape and ordering as CompanyCounts.
func ReviewTotals(records []model.CanonicalRecord) TotalsTable {
	sums := make(map[model.Category]map[model.CompanyType]int)
	for _, r := range records {
		if !r.CompanyType.IsFixed() {
			continue
		}
		byType := sums[r.Category]
		if byType == nil {
			byType = make(map[model.CompanyType]int)
			sums[r.Category] = byType
		}
		byType[r.CompanyType] += r.ReviewCount
	}

	table := make(TotalsTable, 0, len(model.Categories))
	for _, cat := range model.Categories {
		row := TotalsRow{
			Category:     cat,
			Government:   sums[cat][model.TypeGovernment],
			SmallPrivate: sums[cat][model.TypeSmallPrivate],
			HighClass:    sums[cat][model.TypeHighClass],
		}
		row.Total = row.Government + row.SmallPrivate + row.HighClass
		table = append(table, row)
	}
	return table
}
