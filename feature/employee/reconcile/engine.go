package reconcile

import (
	"staff-admin/feature/employee/models"
)

// Summary provides aggregate counts for an import plan.
type Summary struct {
	// Added counts imported records with no match in the current roster.
	Added int `json:"added"`

	// Terminated counts active records absent from the import.
	Terminated int `json:"terminated"`

	// Unchanged counts active records confirmed present in the import.
	Unchanged int `json:"unchanged"`
}

// ImportPlan is the computed outcome of diffing an imported roster against
// the current one. Planning is pure; nothing is mutated until Apply.
type ImportPlan struct {
	// Today is the date stamped on terminations and defaulted employment dates.
	Today string `json:"today"`

	// Terminations holds indices into the active roster, ascending.
	Terminations []int `json:"terminations"`

	// Additions holds the new-hire records to append to the active roster,
	// already id-assigned and with dates defaulted.
	Additions []models.Employee `json:"additions"`

	// Summary provides the added/terminated/unchanged counts.
	Summary Summary `json:"summary"`
}

// PlanImport diffs an imported roster against the current active and
// terminated rosters and returns the plan of membership changes.
//
// Both scans use the same membership test: a record is present when any of
// its id, email or full-name keys appears on the other side, with
// fall-through on a missed key, so an absent or conflicting id does not
// rule out an email match. Ids are generated for accepted additions only,
// after matching, so a generated id can never shadow an email or name
// match against the current roster.
// Existing records are never field-updated from the import; the import only
// adds and removes membership.
func PlanImport(active, terminated, imported []models.Employee, today string, ids *IDGenerator) *ImportPlan {
	plan := &ImportPlan{Today: today}

	// Index the import by each identity key. Later rows overwrite earlier
	// ones sharing a key (last write wins, no conflict error).
	byID := make(map[string]struct{})
	byEmail := make(map[string]struct{})
	byName := make(map[string]struct{})
	for _, emp := range imported {
		if emp.EmployeeID != "" {
			byID[emp.EmployeeID] = struct{}{}
		}
		if k := EmailKey(emp); k != "" {
			byEmail[k] = struct{}{}
		}
		if k := NameKey(emp); k != "" {
			byName[k] = struct{}{}
		}
	}

	inImport := func(emp models.Employee) bool {
		if emp.EmployeeID != "" {
			if _, ok := byID[emp.EmployeeID]; ok {
				return true
			}
		}
		if k := EmailKey(emp); k != "" {
			if _, ok := byEmail[k]; ok {
				return true
			}
		}
		if k := NameKey(emp); k != "" {
			if _, ok := byName[k]; ok {
				return true
			}
		}
		return false
	}

	// Every active record is either confirmed by the import or terminated.
	for i, emp := range active {
		if inImport(emp) {
			plan.Summary.Unchanged++
		} else {
			plan.Terminations = append(plan.Terminations, i)
			plan.Summary.Terminated++
		}
	}

	// New hires: imported records matching nobody, active or terminated.
	// Membership uses the same per-key indices as the termination scan, so
	// a row whose explicit id differs from a roster record's still matches
	// that record by email or name instead of being re-added. The union of
	// both partitions is unchanged by the termination step; its indices grow
	// with accepted additions so a duplicated row is only added once.
	rosterID := make(map[string]struct{})
	rosterEmail := make(map[string]struct{})
	rosterName := make(map[string]struct{})
	index := func(emp models.Employee) {
		if emp.EmployeeID != "" {
			rosterID[emp.EmployeeID] = struct{}{}
		}
		if k := EmailKey(emp); k != "" {
			rosterEmail[k] = struct{}{}
		}
		if k := NameKey(emp); k != "" {
			rosterName[k] = struct{}{}
		}
	}
	for _, emp := range active {
		index(emp)
	}
	for _, emp := range terminated {
		index(emp)
	}

	inRoster := func(emp models.Employee) bool {
		if emp.EmployeeID != "" {
			if _, ok := rosterID[emp.EmployeeID]; ok {
				return true
			}
		}
		if k := EmailKey(emp); k != "" {
			if _, ok := rosterEmail[k]; ok {
				return true
			}
		}
		if k := NameKey(emp); k != "" {
			if _, ok := rosterName[k]; ok {
				return true
			}
		}
		return false
	}

	for _, emp := range imported {
		if inRoster(emp) {
			continue
		}

		if emp.EmployeeID == "" {
			emp.EmployeeID = ids.Generate(emp.FirstName, emp.LastName)
		}
		if emp.EmploymentDate == "" {
			emp.EmploymentDate = today
		}
		emp.Terminated = "No"
		plan.Additions = append(plan.Additions, emp)
		plan.Summary.Added++
		index(emp)
	}

	return plan
}

// Apply executes a plan against the given rosters and returns the new
// active and terminated partitions. Terminations are applied in reverse
// index order so earlier indices stay valid while records move.
func Apply(active, terminated []models.Employee, plan *ImportPlan) (newActive, newTerminated []models.Employee) {
	newActive = make([]models.Employee, len(active))
	copy(newActive, active)
	newTerminated = make([]models.Employee, len(terminated))
	copy(newTerminated, terminated)

	for i := len(plan.Terminations) - 1; i >= 0; i-- {
		idx := plan.Terminations[i]
		emp := newActive[idx]
		emp.Terminated = "Yes"
		emp.TerminationDate = plan.Today
		newTerminated = append(newTerminated, emp)
		newActive = append(newActive[:idx], newActive[idx+1:]...)
	}

	newActive = append(newActive, plan.Additions...)
	return newActive, newTerminated
}
