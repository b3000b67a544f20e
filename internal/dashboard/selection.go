package dashboard

import (
	"sync"

	"github.com/quality-care/careview/internal/model"
)

// selection is one independently selectable surface: a category and the view
// recomputed for it. Concurrent selections settle last-writer-by-submission-
// order: each submission draws a monotonic ticket before recomputing, and a
// commit lands only if no later submission has already committed.
type selection[V any] struct {
	mu        sync.Mutex
	submitted uint64
	applied   uint64
	category  model.Category
	view      V
}

// reset seeds the surface at construction time.
func (s *selection[V]) reset(category model.Category, view V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = 0
	s.applied = 0
	s.category = category
	s.view = view
}

// ticket records a submission and returns its order stamp.
func (s *selection[V]) ticket() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted++
	return s.submitted
}

// commit installs the view for ticket t unless a later ticket already
// committed. Returns whether the view became current.
func (s *selection[V]) commit(t uint64, category model.Category, view V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t < s.applied {
		return false
	}
	s.applied = t
	s.category = category
	s.view = view
	return true
}

// current returns the settled selection and its view.
func (s *selection[V]) current() (model.Category, V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category, s.view
}
