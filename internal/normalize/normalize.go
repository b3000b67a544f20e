// Package normalize turns raw review-report rows into the canonical record
// set: synonym labels collapse onto the fixed vocabularies, review counts
// coerce to non-negative integers, and rows missing identifying fields are
// dropped. Normalization never fails; malformed values are data-quality
// noise, not errors.
package normalize

import (
	"strconv"
	"strings"

	"github.com/quality-care/careview/internal/model"
)

// companyTypeSynonyms collapses company-type label variants onto the fixed
// vocabulary. Values with no entry pass through unchanged as their own
// bucket.
var companyTypeSynonyms = map[string]model.CompanyType{
	"Modern/High-Class Private Hospital": model.TypeHighClass,
}

// categorySynonyms collapses category label variants onto the fixed
// vocabulary. Values with no entry that are not already a fixed category
// fall to the Others catch-all.
var categorySynonyms = map[string]model.Category{
	"Unavailability of Specialist": model.CategorySpecialistShortage,
}

// Normalize converts raw rows into canonical records, preserving input
// order. Rows without a company name or category are excluded entirely;
// every other row is kept with sanitized fields. Deterministic: the same
// input yields the same output.
func Normalize(raw []model.RawRecord) []model.CanonicalRecord {
	out := make([]model.CanonicalRecord, 0, len(raw))
	for _, r := range raw {
		rec, ok := canonicalize(r)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func canonicalize(r model.RawRecord) (model.CanonicalRecord, bool) {
	name := strings.TrimSpace(r.CompanyName)
	rawCategory := strings.TrimSpace(r.Category)
	if name == "" || rawCategory == "" {
		return model.CanonicalRecord{}, false
	}
	return model.CanonicalRecord{
		CompanyName:     name,
		CompanyType:     MapCompanyType(r.CompanyType),
		CompanyLocation: strings.TrimSpace(r.CompanyLocation),
		Category:        MapCategory(rawCategory),
		ReviewCount:     CoerceCount(r.ReviewCount),
	}, true
}

// MapCompanyType resolves a raw company-type label: synonyms collapse onto
// the fixed vocabulary, everything else passes through trimmed.
func MapCompanyType(raw string) model.CompanyType {
	v := strings.TrimSpace(raw)
	if mapped, ok := companyTypeSynonyms[v]; ok {
		return mapped
	}
	return model.CompanyType(v)
}

// MapCategory resolves a raw category label onto the fixed 8-category
// vocabulary. Unrecognized non-empty values land in CategoryOthers.
func MapCategory(raw string) model.Category {
	v := strings.TrimSpace(raw)
	if mapped, ok := categorySynonyms[v]; ok {
		return mapped
	}
	if c := model.Category(v); c.IsValid() {
		return c
	}
	return model.CategoryOthers
}

// CoerceCount parses a free-form review-count cell into a non-negative
// integer. Thousands separators are stripped; fractional values truncate;
// anything unparseable coerces to 0 and negatives clamp to 0.
func CoerceCount(raw string) int {
	n, _ := coerceCount(raw)
	return n
}

// coercion classifies how a review-count cell was interpreted. The audit
// report accounts for every non-exact path.
type coercion int

const (
	coerceExact     coercion = iota // parsed cleanly
	coerceMissing                   // empty cell, 0
	coerceInvalid                   // unparseable, 0
	coerceClamped                   // negative, 0
	coerceTruncated                 // fractional, integer part kept
)

func coerceCount(raw string) (int, coercion) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, coerceMissing
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, coerceClamped
		}
		return n, coerceExact
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, coerceInvalid
	}
	n := int(f)
	if n < 0 {
		return 0, coerceClamped
	}
	if f != float64(n) {
		return n, coerceTruncated
	}
	return n, coerceExact
}
