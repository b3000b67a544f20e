package aggregate

import "github.com/quality-care/careview/internal/model"

// Summary holds the headline metrics over the full canonical set. Unlike
// the totals tables, it counts every record regardless of company type.
type Summary struct {
	TotalReviews      int `json:"total_reviews" yaml:"total_reviews"`
	DistinctCompanies int `json:"distinct_companies" yaml:"distinct_companies"`
	Categories        int `json:"categories" yaml:"categories"`
	Records           int `json:"records" yaml:"records"`
}

// Summarize computes the headline metrics.
func Summarize(records []model.CanonicalRecord) Summary {
	companies := make(map[string]struct{})
	s := Summary{
		Categories: len(model.Categories),
		Records:    len(records),
	}
	for _, r := range records {
		s.TotalReviews += r.ReviewCount
		companies[r.CompanyName] = struct{}{}
	}
	s.DistinctCompanies = len(companies)
	return s
}

// CategoryShare is one category's slice of the total review volume, across
// all company types.
type CategoryShare struct {
	Category model.Category `json:"category" yaml:"category"`
	Reviews  int            `json:"reviews" yaml:"reviews"`
}

// Shares returns per-category review volume in fixed category order,
// zero-filled. The sum over all shares equals Summary.TotalReviews.
func Shares(records []model.CanonicalRecord) []CategoryShare {
	sums := make(map[model.Category]int, len(model.Categories))
	for _, r := range records {
		sums[r.Category] += r.ReviewCount
	}
	out := make([]CategoryShare, 0, len(model.Categories))
	for _, cat := range model.Categories {
		out = append(out, CategoryShare{Category: cat, Reviews: sums[cat]})
	}
	return out
}

// TypeVolume is one (category, company type) cell of the long-form volume
// matrix that feeds stacked visuals.
type TypeVolume struct {
	Category    model.Category    `json:"category" yaml:"category"`
	CompanyType model.CompanyType `json:"company_type" yaml:"company_type"`
	Reviews     int               `json:"reviews" yaml:"reviews"`
}

// VolumeByType returns the fixed 8x3 review-volume matrix in category-major
// order (categories in fixed order, the fixed three types within each).
func VolumeByType(records []model.CanonicalRecord) []TypeVolume {
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

	out := make([]TypeVolume, 0, len(model.Categories)*len(model.CompanyTypes))
	for _, cat := range model.Categories {
		for _, ct := range model.CompanyTypes {
			out = append(out, TypeVolume{
				Category:    cat,
				CompanyType: ct,
				Reviews:     sums[cat][ct],
			})
		}
	}
	return out
}
