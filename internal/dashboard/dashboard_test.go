package dashboard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quality-care/careview/internal/aggregate"
	"github.com/quality-care/careview/internal/model"
)

func testRecords() []model.CanonicalRecord {
	return []model.CanonicalRecord{
		{CompanyName: "Company A", CompanyType: model.TypeGovernment, CompanyLocation: "North", Category: model.CategoryHostility, ReviewCount: 5},
		{CompanyName: "Company A", CompanyType: model.TypeGovernment, CompanyLocation: "North", Category: model.CategoryExpensiveCosts, ReviewCount: 2},
		{CompanyName: "Company B", CompanyType: model.TypeSmallPrivate, CompanyLocation: "South", Category: model.CategoryHostility, ReviewCount: 3},
	}
}

func TestNew_BuildsStaticViews(t *testing.T) {
	records := testRecords()
	dash := New(records, model.CategoryHostility)

	assert.Equal(t, aggregate.Summarize(records), dash.Summary())
	assert.Equal(t, aggregate.CompanyCounts(records), dash.CompanyCounts())
	assert.Equal(t, aggregate.ReviewTotals(records), dash.ReviewTotals())
	assert.Equal(t, aggregate.Shares(records), dash.Shares())
	assert.Equal(t, aggregate.VolumeByType(records), dash.VolumeMatrix())
	assert.Equal(t, records, dash.Records())
}

func TestNew_SeedsBothSelectionsAtDefault(t *testing.T) {
	records := testRecords()
	dash := New(records, model.CategoryHostility)

	distCat, dist := dash.CurrentDistribution()
	assert.Equal(t, model.CategoryHostility, distCat)
	assert.Equal(t, aggregate.Distribution(records, model.CategoryHostility), dist)

	dirCat, dir := dash.CurrentDirectory()
	assert.Equal(t, model.CategoryHostility, dirCat)
	assert.Equal(t, aggregate.CompanyDirectory(records, model.CategoryHostility), dir)
}

func TestNew_SnapshotIDsDiffer(t *testing.T) {
	a := New(testRecords(), model.CategoryHostility)
	b := New(testRecords(), model.CategoryHostility)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSelectDistribution_Recomputes(t *testing.T) {
	records := testRecords()
	dash := New(records, model.CategoryHostility)

	view, applied := dash.SelectDistribution(model.CategoryExpensiveCosts)
	assert.True(t, applied)
	assert.Equal(t, aggregate.Distribution(records, model.CategoryExpensiveCosts), view)

	cat, current := dash.CurrentDistribution()
	assert.Equal(t, model.CategoryExpensiveCosts, cat)
	assert.Equal(t, view, current)
}

func TestSelectDirectory_Recomputes(t *testing.T) {
	records := testRecords()
	dash := New(records, model.CategoryHostility)

	view, applied := dash.SelectDirectory(model.CategoryExpensiveCosts)
	assert.True(t, applied)
	require.Len(t, view, 1)
	assert.Equal(t, "Company A", view[0].Name)
}

func TestSelections_Independent(t *testing.T) {
	dash := New(testRecords(), model.CategoryHostility)

	_, applied := dash.SelectDistribution(model.CategoryExpensiveCosts)
	require.True(t, applied)

	// The directory surface did not move.
	dirCat, _ := dash.CurrentDirectory()
	assert.Equal(t, model.CategoryHostility, dirCat)

	_, applied = dash.SelectDirectory(model.CategoryOthers)
	require.True(t, applied)

	// And the distribution surface kept its own selection.
	distCat, _ := dash.CurrentDistribution()
	assert.Equal(t, model.CategoryExpensiveCosts, distCat)
}

func TestSelectDistribution_UnknownCategoryEmptyView(t *testing.T) {
	dash := New(testRecords(), model.CategoryHostility)

	view, applied := dash.SelectDistribution(model.Category("Not A Category"))
	assert.True(t, applied)
	assert.Equal(t, aggregate.TypeDistribution{Category: model.Category("Not A Category")}, view)
}

func TestSelection_LastSubmittedWins(t *testing.T) {
	var s selection[string]
	s.reset(model.CategoryHostility, "initial")

	first := s.ticket()
	second := s.ticket()

	// The later submission lands first; the earlier one must not clobber it.
	assert.True(t, s.commit(second, model.CategoryOthers, "second"))
	assert.False(t, s.commit(first, model.CategoryExpensiveCosts, "first"))

	cat, view := s.current()
	assert.Equal(t, model.CategoryOthers, cat)
	assert.Equal(t, "second", view)
}

func TestSelection_InOrderCommits(t *testing.T) {
	var s selection[int]
	s.reset(model.CategoryHostility, 0)

	for i := 1; i <= 3; i++ {
		tk := s.ticket()
		assert.True(t, s.commit(tk, model.CategoryOthers, i))
	}

	_, view := s.current()
	assert.Equal(t, 3, view)
}

func TestSelectDistribution_ConcurrentSettlesConsistently(t *testing.T) {
	records := testRecords()
	dash := New(records, model.CategoryHostility)

	categories := model.Categories
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(c model.Category) {
			defer wg.Done()
			view, _ := dash.SelectDistribution(c)
			// Every response reflects its own requested category.
			assert.Equal(t, c, view.Category)
		}(categories[i%len(categories)])
	}
	wg.Wait()

	// Whatever selection settled, its view matches a fresh recomputation.
	cat, view := dash.CurrentDistribution()
	assert.Equal(t, aggregate.Distribution(records, cat), view)
}
