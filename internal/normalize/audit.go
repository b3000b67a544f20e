package normalize

import (
	"strings"

	"github.com/quality-care/careview/internal/model"
)

// Report summarizes the data quality of one raw input set. Count-coercion
// and vocabulary tallies cover kept rows only; dropped rows are counted
// separately and not inspected further.
type Report struct {
	RowsIn           int            `json:"rows_in" yaml:"rows_in"`
	RowsKept         int            `json:"rows_kept" yaml:"rows_kept"`
	RowsDropped      int            `json:"rows_dropped" yaml:"rows_dropped"`
	MissingCounts    int            `json:"missing_counts" yaml:"missing_counts"`
	InvalidCounts    int            `json:"invalid_counts" yaml:"invalid_counts"`
	ClampedCounts    int            `json:"clamped_counts" yaml:"clamped_counts"`
	TruncatedCounts  int            `json:"truncated_counts" yaml:"truncated_counts"`
	MappedTypes      int            `json:"mapped_types" yaml:"mapped_types"`
	MappedCategories int            `json:"mapped_categories" yaml:"mapped_categories"`
	OtherCategories  int            `json:"other_categories" yaml:"other_categories"`
	UnmappedTypes    []UnmappedType `json:"unmapped_types,omitempty" yaml:"unmapped_types,omitempty"`
}

// UnmappedType is a company-type label outside the fixed vocabulary and the
// synonym table, with the number of kept rows carrying it. First-seen order.
type UnmappedType struct {
	Value   string `json:"value" yaml:"value"`
	Records int    `json:"records" yaml:"records"`
}

// Audit computes the data-quality report for a raw input set without
// producing records. Pure and deterministic, same drop rules as Normalize.
func Audit(raw []model.RawRecord) Report {
	rep := Report{RowsIn: len(raw)}
	unmappedIdx := make(map[string]int)

	for _, r := range raw {
		name := strings.TrimSpace(r.CompanyName)
		rawCategory := strings.TrimSpace(r.Category)
		if name == "" || rawCategory == "" {
			rep.RowsDropped++
			continue
		}
		rep.RowsKept++

		switch _, kind := coerceCount(r.ReviewCount); kind {
		case coerceMissing:
			rep.MissingCounts++
		case coerceInvalid:
			rep.InvalidCounts++
		case coerceClamped:
			rep.ClampedCounts++
		case coerceTruncated:
			rep.TruncatedCounts++
		}

		// An absent type is missing data, not an out-of-vocabulary label.
		rawType := strings.TrimSpace(r.CompanyType)
		if _, ok := companyTypeSynonyms[rawType]; ok {
			rep.MappedTypes++
		} else if rawType != "" && !model.CompanyType(rawType).IsFixed() {
			if i, seen := unmappedIdx[rawType]; seen {
				rep.UnmappedTypes[i].Records++
			} else {
				unmappedIdx[rawType] = len(rep.UnmappedTypes)
				rep.UnmappedTypes = append(rep.UnmappedTypes, UnmappedType{Value: rawType, Records: 1})
			}
		}

		if _, ok := categorySynonyms[rawCategory]; ok {
			rep.MappedCategories++
		} else if !model.Category(rawCategory).IsValid() {
			rep.OtherCategories++
		}
	}

	return rep
}
