package aggregate

import "github.com/quality-care/careview/internal/model"

// TypeDistribution is the review-volume breakdown of one category across
// company types. Other aggregates types outside the fixed three so nothing
// disappears; Total is the category's full review volume including Other.
type TypeDistribution struct {
	Category     model.Category `json:"category" yaml:"category"`
	Government   int            `json:"government" yaml:"government"`
	SmallPrivate int            `json:"small_private" yaml:"small_private"`
	HighClass    int            `json:"high_class" yaml:"high_class"`
	Other        int            `json:"other" yaml:"other"`
	Total        int            `json:"total" yaml:"total"`
}

// Distribution sums review counts by company type within one category. A
// category with no matching records — including one outside the fixed
// vocabulary — yields the all-zero distribution, never an error.
func Distribution(records []model.CanonicalRecord, category model.Category) TypeDistribution {
	d := TypeDistribution{Category: category}
	for _, r := range records {
		if r.Category != category {
			continue
		}
		switch r.CompanyType {
		case model.TypeGovernment:
			d.Government += r.ReviewCount
		case model.TypeSmallPrivate:
			d.SmallPrivate += r.ReviewCount
		case model.TypeHighClass:
			d.HighClass += r.ReviewCount
		default:
			d.Other += r.ReviewCount
		}
		d.Total += r.ReviewCount
	}
	return d
}
