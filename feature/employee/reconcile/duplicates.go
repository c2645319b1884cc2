package reconcile

import (
	"strings"

	"staff-admin/feature/employee/models"
)

// Match types reported by FindDuplicates.
const (
	MatchEmail    = "Email"
	MatchLastName = "Last Name"
	MatchFullName = "Full Name"
)

// Duplicate is one duplicate sighting. A record matching on several key
// types is emitted once per type, on purpose: each match type is an
// independent signal for the reviewer.
type Duplicate struct {
	Employee  models.Employee `json:"employee"`
	MatchType string          `json:"matchType"`
	Group     int             `json:"group"`
}

// FindDuplicates scans the full roster in one forward pass and reports every
// record whose email, last name, or full name was already seen. The first
// sighting of a key only registers it; the group number is the running count
// of emitted duplicates at registration time, a display grouping rather than
// a stable cluster id.
func FindDuplicates(records []models.Employee) []Duplicate {
	duplicates := []Duplicate{}
	seen := make(map[string]int)

	for _, emp := range records {
		email := EmailKey(emp)
		lastName := strings.ToLower(strings.TrimSpace(emp.LastName))
		fullName := NameKey(emp)

		if email != "" {
			if group, ok := seen["email:"+email]; ok {
				duplicates = append(duplicates, Duplicate{Employee: emp, MatchType: MatchEmail, Group: group})
			} else {
				seen["email:"+email] = len(duplicates) + 1
			}
		}

		if lastName != "" {
			if group, ok := seen["lastName:"+lastName]; ok {
				duplicates = append(duplicates, Duplicate{Employee: emp, MatchType: MatchLastName, Group: group})
			} else {
				seen["lastName:"+lastName] = len(duplicates) + 1
			}
		}

		if fullName != "" {
			if group, ok := seen["fullName:"+fullName]; ok {
				duplicates = append(duplicates, Duplicate{Employee: emp, MatchType: MatchFullName, Group: group})
			} else {
				seen["fullName:"+fullName] = len(duplicates) + 1
			}
		}
	}

	return duplicates
}
