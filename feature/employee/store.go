package employee

import (
	"fmt"
	"sync"

	"staff-admin/feature/employee/models"
	"staff-admin/feature/employee/reconcile"
)

// Store owns the in-memory roster, partitioned into active and terminated
// records. The stored collection is the authoritative snapshot; the split is
// re-derived from the Terminated flag on every SetAll. One backup level is
// retained for undo.
//
// A mutex serializes access because Fiber handlers run concurrently; this
// guards the slices only and adds no cross-store transactionality.
type Store struct {
	mu         sync.Mutex
	active     []models.Employee
	terminated []models.Employee
	backup     *rosterBackup
}

type rosterBackup struct {
	active     []models.Employee
	terminated []models.Employee
}

// NewStore creates an empty roster store.
func NewStore() *Store {
	return &Store{}
}

// SetAll replaces the roster with the given records, deriving the
// active/terminated split from each record's Terminated flag.
func (s *Store) SetAll(records []models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = s.active[:0]
	s.terminated = s.terminated[:0]
	for _, emp := range records {
		if emp.IsTerminated() {
			s.terminated = append(s.terminated, emp)
		} else {
			s.active = append(s.active, emp)
		}
	}
}

// All returns a copy of the full roster, active first.
func (s *Store) All() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]models.Employee, 0, len(s.active)+len(s.terminated))
	all = append(all, s.active...)
	all = append(all, s.terminated...)
	return all
}

// Active returns a copy of the active partition.
func (s *Store) Active() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Employee, len(s.active))
	copy(out, s.active)
	return out
}

// Terminated returns a copy of the terminated partition.
func (s *Store) Terminated() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Employee, len(s.terminated))
	copy(out, s.terminated)
	return out
}

// Snapshot saves the current roster as the undo point, replacing any
// previous backup. Only the most recent snapshot is retained.
func (s *Store) Snapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := &rosterBackup{
		active:     make([]models.Employee, len(s.active)),
		terminated: make([]models.Employee, len(s.terminated)),
	}
	copy(b.active, s.active)
	copy(b.terminated, s.terminated)
	s.backup = b
}

// Undo restores the roster to the last snapshot and consumes it.
// It returns false when no snapshot is held.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backup == nil {
		return false
	}
	s.active = s.backup.active
	s.terminated = s.backup.terminated
	s.backup = nil
	return true
}

// ApplyImport executes an import plan against the roster.
func (s *Store) ApplyImport(plan *reconcile.ImportPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active, s.terminated = reconcile.Apply(s.active, s.terminated, plan)
}

// PlanImport diffs an imported roster against the current state without
// mutating anything.
func (s *Store) PlanImport(imported []models.Employee, today string, ids *reconcile.IDGenerator) *reconcile.ImportPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	return reconcile.PlanImport(s.active, s.terminated, imported, today, ids)
}

// Terminate moves the active record at index into the terminated partition,
// stamping today's date.
func (s *Store) Terminate(index int, today string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.active) {
		return fmt.Errorf("no active employee at index %d", index)
	}

	emp := s.active[index]
	emp.Terminated = "Yes"
	emp.TerminationDate = today
	s.terminated = append(s.terminated, emp)
	s.active = append(s.active[:index], s.active[index+1:]...)
	return nil
}

// Reactivate moves the terminated record at index back into the active
// partition, clearing its termination date.
func (s *Store) Reactivate(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.terminated) {
		return fmt.Errorf("no terminated employee at index %d", index)
	}

	emp := s.terminated[index]
	emp.Terminated = "No"
	emp.TerminationDate = ""
	s.active = append(s.active, emp)
	s.terminated = append(s.terminated[:index], s.terminated[index+1:]...)
	return nil
}

// UpdateActive replaces the active record at index.
func (s *Store) UpdateActive(index int, emp models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.active) {
		return fmt.Errorf("no active employee at index %d", index)
	}
	s.active[index] = emp
	return nil
}

// ReplaceMatching removes every roster record that is the same employee as
// one of the given records and inserts the merged replacement into the
// partition its Terminated flag selects. It returns the number of records
// removed.
func (s *Store) ReplaceMatching(group []models.Employee, merged models.Employee) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := func(emp models.Employee) bool {
		for _, g := range group {
			if reconcile.SameEmployee(emp, g) {
				return true
			}
		}
		return false
	}

	removed := 0
	keepActive := s.active[:0]
	for _, emp := range s.active {
		if matches(emp) {
			removed++
			continue
		}
		keepActive = append(keepActive, emp)
	}
	s.active = keepActive

	keepTerminated := s.terminated[:0]
	for _, emp := range s.terminated {
		if matches(emp) {
			removed++
			continue
		}
		keepTerminated = append(keepTerminated, emp)
	}
	s.terminated = keepTerminated

	if merged.IsTerminated() {
		s.terminated = append(s.terminated, merged)
	} else {
		s.active = append(s.active, merged)
	}

	return removed
}

// Duplicates reports duplicate sightings across the full roster.
func (s *Store) Duplicates() []reconcile.Duplicate {
	return reconcile.FindDuplicates(s.All())
}
