package aggregate

import "github.com/quality-care/careview/internal/model"

// CompanyRef identifies one company appearing under a category.
type CompanyRef struct {
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
}

// CompanyDirectory lists the distinct companies reported under a category,
// in first-seen order, deduplicated by the (name, location) pair. A
// category with no matching records yields an empty directory; the caller
// renders the explicit no-companies state, never an error.
func CompanyDirectory(records []model.CanonicalRecord, category model.Category) []CompanyRef {
	seen := make(map[CompanyRef]struct{})
	out := make([]CompanyRef, 0, 8)
	for _, r := range records {
		if r.Category != category {
			continue
		}
		ref := CompanyRef{Name: r.CompanyName, Location: r.CompanyLocation}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out
}
