package model

import "strconv"

// CompanyType classifies a healthcare company. The fixed three types drive
// table columns and segment ordering across every derived view; values
// outside them survive normalization unchanged so no record is silently
// discarded for an unrecognized type.
type CompanyType string

const (
	TypeGovernment   CompanyType = "Government Hospital"
	TypeSmallPrivate CompanyType = "Small Private Hospital"
	TypeHighClass    CompanyType = "High-Class Private Hospital"
)

// CompanyTypes is the fixed column order: Government, SmallPrivate, HighClass.
var CompanyTypes = []CompanyType{TypeGovernment, TypeSmallPrivate, TypeHighClass}

// IsFixed reports whether t is one of the three fixed company types.
// Only fixed types contribute to table Total columns.
func (t CompanyType) IsFixed() bool {
	return t == TypeGovernment || t == TypeSmallPrivate || t == TypeHighClass
}

// Category is a normalized service-issue category.
type Category string

const (
	CategorySlowServices        Category = "Slow Services or Lengthy Waiting Times"
	CategoryMedicationShortage  Category = "Unavailability of Medication/Equipment"
	CategoryUnprofessionalStaff Category = "Unprofessional Staff"
	CategorySpecialistShortage  Category = "Unavailability of Specialists"
	CategoryPoorCompensation    Category = "Poor Compensation"
	CategoryHostility           Category = "Hostility"
	CategoryExpensiveCosts      Category = "Expensive Costs"
	CategoryOthers              Category = "Others"
)

// Categories is the fixed row/axis order for every derived view and for
// selector population. Not alphabetical, not discovery order.
var Categories = []Category{
	CategorySlowServices,
	CategoryMedicationShortage,
	CategoryUnprofessionalStaff,
	CategorySpecialistShortage,
	CategoryPoorCompensation,
	CategoryHostility,
	CategoryExpensiveCosts,
	CategoryOthers,
}

// IsValid reports whether c is one of the eight fixed categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// RawRecord is one source row as read from the review category report,
// before any cleaning. Every field holds raw cell text; ReviewCount may be
// empty, non-numeric, or otherwise junk.
type RawRecord struct {
	CompanyName     string `json:"company_name" yaml:"company_name"`
	CompanyType     string `json:"company_type" yaml:"company_type"`
	CompanyLocation string `json:"company_location" yaml:"company_location"`
	Category        string `json:"category" yaml:"category"`
	ReviewCount     string `json:"review_count" yaml:"review_count"`
}

// CanonicalRecord is a review-report row after normalization to the fixed
// company-type and category vocabularies. The canonical set is built once
// per process and is read-only thereafter.
type CanonicalRecord struct {
	CompanyName     string      `json:"company_name" yaml:"company_name"`
	CompanyType     CompanyType `json:"company_type" yaml:"company_type"`
	CompanyLocation string      `json:"company_location" yaml:"company_location"`
	Category        Category    `json:"category" yaml:"category"`
	ReviewCount     int         `json:"review_count" yaml:"review_count"`
}

// AsRaw reinterprets a canonical record as a raw one. Canonicalization is a
// fixed point: normalizing the result reproduces the record exactly.
func (r CanonicalRecord) AsRaw() RawRecord {
	return RawRecord{
		CompanyName:     r.CompanyName,
		CompanyType:     string(r.CompanyType),
		CompanyLocation: r.CompanyLocation,
		Category:        string(r.Category),
		ReviewCount:     strconv.Itoa(r.ReviewCount),
	}
}
