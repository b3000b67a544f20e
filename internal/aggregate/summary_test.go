package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quality-care/careview/internal/model"
)

func TestSummarize_CountsAllRecords(t *testing.T) {
	records := []model.CanonicalRecord{
		{CompanyName: "A", CompanyType: model.TypeGovernment, Category: model.CategoryHostility, ReviewCount: 5},
		{CompanyName: "A", CompanyType: model.TypeGovernment, Category: model.CategoryExpensiveCosts, ReviewCount: 2},
		{CompanyName: "B", CompanyType: model.CompanyType("Community Clinic"), Category: model.CategoryHostility, ReviewCount: 3},
	}

	s := Summarize(records)
	assert.Equal(t, Summary{
		TotalReviews:      10, // non-fixed types count here, unlike the tables
		DistinctCompanies: 2,
		Categories:        len(model.Categories),
		Records:           3,
	}, s)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{Categories: len(model.Categories)}, s)
}

func TestShares_FixedOrderZeroFilled(t *testing.T) {
	records := []model.CanonicalRecord{
		{CompanyName: "A", Category: model.CategoryHostility, ReviewCount: 6},
		{CompanyName: "B", Category: model.CategoryHostility, ReviewCount: 4},
		{CompanyName: "C", Category: model.CategorySlowServices, ReviewCount: 2},
	}

	shares := Shares(records)
	require.Len(t, shares, len(model.Categories))

	byCategory := make(map[model.Category]int, len(shares))
	total := 0
	for i, s := range shares {
		assert.Equal(t, model.Categories[i], s.Category)
		byCategory[s.Category] = s.Reviews
		total += s.Reviews
	}

	assert.Equal(t, 10, byCategory[model.CategoryHostility])
	assert.Equal(t, 2, byCategory[model.CategorySlowServices])
	assert.Zero(t, byCategory[model.CategoryPoorCompensation])
	assert.Equal(t, Summarize(records).TotalReviews, total)
}

func TestVolumeByType_FixedMatrix(t *testing.T) {
	records := []model.CanonicalRecord{
		{CompanyName: "A", CompanyType: model.TypeGovernment, Category: model.CategoryHostility, ReviewCount: 5},
		{CompanyName: "B", CompanyType: model.TypeSmallPrivate, Category: model.CategoryHostility, ReviewCount: 3},
		{CompanyName: "C", CompanyType: model.CompanyType("Community Clinic"), Category: model.CategoryHostility, ReviewCount: 99},
	}

	cells := VolumeByType(records)
	require.Len(t, cells, len(model.Categories)*len(model.CompanyTypes))

	// Category-major order, fixed types within each category.
	for i, cell := range cells {
		assert.Equal(t, model.Categories[i/len(model.CompanyTypes)], cell.Category)
		assert.Equal(t, model.CompanyTypes[i%len(model.CompanyTypes)], cell.CompanyType)
	}

	byCell := make(map[model.Category]map[model.CompanyType]int)
	for _, cell := range cells {
		if byCell[cell.Category] == nil {
			byCell[cell.Category] = make(map[model.CompanyType]int)
		}
		byCell[cell.Category][cell.CompanyType] = cell.Reviews
	}
	assert.Equal(t, 5, byCell[model.CategoryHostility][model.TypeGovernment])
	assert.Equal(t, 3, byCell[model.CategoryHostility][model.TypeSmallPrivate])
	assert.Zero(t, byCell[model.CategoryHostility][model.TypeHighClass])
}
