// Package dashboard holds the process-wide immutable review state and the
// reactive recomputation contract for the two category selectors. The
// canonical set and the category-independent views are built exactly once;
// the category-scoped views are recomputed wholesale on selection changes
// as pure functions of (canonical set, new category) — never patched, never
// derived from a previous selection.
package dashboard

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/quality-care/careview/internal/aggregate"
	"github.com/quality-care/careview/internal/model"
)

// Surface names one of the two independently selectable views.
type Surface string

const (
	SurfaceDistribution Surface = "distribution"
	SurfaceDirectory    Surface = "directory"
)

// Dashboard is the read-only canonical set plus every derived view. Static
// views live for the process lifetime; reads return them as computed at
// construction and never trigger recomputation.
type Dashboard struct {
	id      uuid.UUID
	records []model.CanonicalRecord

	summary aggregate.Summary
	counts  aggregate.TotalsTable
	volumes aggregate.TotalsTable
	shares  []aggregate.CategoryShare
	matrix  []aggregate.TypeVolume

	distribution selection[aggregate.TypeDistribution]
	directory    selection[[]aggregate.CompanyRef]
}

// New builds the dashboard state from the canonical set. The static views
// are independent pure derivations, so they build concurrently. Both
// selection surfaces start at defaultCategory with their views precomputed.
func New(records []model.CanonicalRecord, defaultCategory model.Category) *Dashboard {
	d := &Dashboard{
		id:      uuid.New(),
		records: records,
	}

	var g errgroup.Group
	g.Go(func() error { d.summary = aggregate.Summarize(records); return nil })
	g.Go(func() error { d.counts = aggregate.CompanyCounts(records); return nil })
	g.Go(func() error { d.volumes = aggregate.ReviewTotals(records); return nil })
	g.Go(func() error { d.shares = aggregate.Shares(records); return nil })
	g.Go(func() error { d.matrix = aggregate.VolumeByType(records); return nil })
	_ = g.Wait() // derivations are pure and never fail

	d.distribution.reset(defaultCategory, aggregate.Distribution(records, defaultCategory))
	d.directory.reset(defaultCategory, aggregate.CompanyDirectory(records, defaultCategory))

	zap.L().Info("dashboard state built",
		zap.String("component", "dashboard"),
		zap.String("snapshot", d.id.String()),
		zap.Int("records", len(records)),
		zap.Int("total_reviews", d.summary.TotalReviews),
	)
	return d
}

// ID identifies this build of the dashboard state.
func (d *Dashboard) ID() uuid.UUID { return d.id }

// Records returns the canonical set. Read-only by contract.
func (d *Dashboard) Records() []model.CanonicalRecord { return d.records }

// Summary returns the headline metrics computed at construction.
func (d *Dashboard) Summary() aggregate.Summary { return d.summary }

// CompanyCounts returns the distinct-company totals table.
func (d *Dashboard) CompanyCounts() aggregate.TotalsTable { return d.counts }

// ReviewTotals returns the review-volume totals table.
func (d *Dashboard) ReviewTotals() aggregate.TotalsTable { return d.volumes }

// Shares returns the per-category review-volume shares.
func (d *Dashboard) Shares() []aggregate.CategoryShare { return d.shares }

// VolumeMatrix returns the long-form (category, type) volume matrix.
func (d *Dashboard) VolumeMatrix() []aggregate.TypeVolume { return d.matrix }

// SelectDistribution recomputes the distribution surface for category. The
// returned view always matches the requested category; applied reports
// whether it became the surface's current view (false when a newer
// submission won the race).
func (d *Dashboard) SelectDistribution(category model.Category) (aggregate.TypeDistribution, bool) {
	ticket := d.distribution.ticket()
	view := aggregate.Distribution(d.records, category)
	applied := d.distribution.commit(ticket, category, view)
	return view, applied
}

// SelectDirectory recomputes the directory surface for category, under the
// same contract as SelectDistribution. Changing one surface never touches
// the other.
func (d *Dashboard) SelectDirectory(category model.Category) ([]aggregate.CompanyRef, bool) {
	ticket := d.directory.ticket()
	view := aggregate.CompanyDirectory(d.records, category)
	applied := d.directory.commit(ticket, category, view)
	return view, applied
}

// CurrentDistribution returns the distribution surface's settled selection
// and view.
func (d *Dashboard) CurrentDistribution() (model.Category, aggregate.TypeDistribution) {
	return d.distribution.current()
}

// CurrentDirectory returns the directory surface's settled selection and
// view.
func (d *Dashboard) CurrentDirectory() (model.Category, []aggregate.CompanyRef) {
	return d.directory.current()
}
