package reconcile

import (
	"strings"
	"time"

	"staff-admin/core/utils"
	"staff-admin/feature/employee/models"
)

// merchSentDateFloor is the sentinel used when no merch-sent date is held yet.
const merchSentDateFloor = "1900-01-01"

// Merge folds a group of records believed to be duplicates of one person
// into a single record. The first record seeds the result; every later
// record contributes field by field under per-field policies:
//
//   - employmentDate: earlier date wins
//   - terminationDate: later date wins
//   - yearsOfService: numerically larger value wins
//   - terminated, merchSent: sticky "Yes"
//   - merchSentDate: only advances, and only while merchSent is "Yes"
//   - everything else: the longer string wins
//
// The longer-string default makes the result order-dependent for free-text
// fields. That is a documented property of the merge, kept as-is because
// existing fixtures rely on it.
func Merge(records []models.Employee) models.Employee {
	if len(records) == 0 {
		return models.Employee{}
	}

	merged := records[0]

	for _, rec := range records[1:] {
		merged.FirstName = preferLonger(merged.FirstName, rec.FirstName)
		merged.LastName = preferLonger(merged.LastName, rec.LastName)
		merged.Email = preferLonger(merged.Email, rec.Email)
		merged.Phone = preferLonger(merged.Phone, rec.Phone)
		merged.Department = preferLonger(merged.Department, rec.Department)
		merged.Position = preferLonger(merged.Position, rec.Position)
		merged.MerchRequested = preferLonger(merged.MerchRequested, rec.MerchRequested)
		merged.EmployeeID = preferLonger(merged.EmployeeID, rec.EmployeeID)

		merged.EmploymentDate = mergeField(merged.EmploymentDate, rec.EmploymentDate, earlierDate)
		merged.TerminationDate = mergeField(merged.TerminationDate, rec.TerminationDate, laterDate)
		merged.YearsOfService = mergeField(merged.YearsOfService, rec.YearsOfService, largerNumber)

		merged.Terminated = stickyYes(merged.Terminated, rec.Terminated)
		merged.MerchSent = stickyYes(merged.MerchSent, rec.MerchSent)

		// The sent date only moves forward, and only once merch is
		// actually marked sent in the accumulated record.
		if merged.MerchSent == "Yes" && strings.TrimSpace(rec.MerchSentDate) != "" {
			floor := merged.MerchSentDate
			if strings.TrimSpace(floor) == "" {
				floor = merchSentDateFloor
			}
			if laterDate(floor, rec.MerchSentDate) == rec.MerchSentDate {
				merged.MerchSentDate = rec.MerchSentDate
			}
		}
	}

	return merged
}

// mergeField applies the shared skip/adopt rules before delegating to a
// per-field policy: a blank incoming value never wins, a blank current
// value always loses.
func mergeField(cur, in string, policy func(cur, in string) string) string {
	if strings.TrimSpace(in) == "" {
		return cur
	}
	if strings.TrimSpace(cur) == "" {
		return in
	}
	return policy(cur, in)
}

func preferLonger(cur, in string) string {
	return mergeField(cur, in, func(cur, in string) string {
		if len(in) > len(cur) {
			return in
		}
		return cur
	})
}

func stickyYes(cur, in string) string {
	if cur == "Yes" || strings.TrimSpace(in) == "Yes" {
		return "Yes"
	}
	return mergeField(cur, in, func(cur, _ string) string { return cur })
}

func largerNumber(cur, in string) string {
	if utils.ToFloat(in) > utils.ToFloat(cur) {
		return in
	}
	return cur
}

// earlierDate returns whichever ISO date is older. An unparseable side
// loses; two unparseable sides keep the current value.
func earlierDate(cur, in string) string {
	ct, cerr := parseDate(cur)
	it, ierr := parseDate(in)
	switch {
	case cerr != nil && ierr != nil:
		return cur
	case cerr != nil:
		return in
	case ierr != nil:
		return cur
	case it.Before(ct):
		return in
	default:
		return cur
	}
}

// laterDate returns whichever ISO date is more recent.
func laterDate(cur, in string) string {
	ct, cerr := parseDate(cur)
	it, ierr := parseDate(in)
	switch {
	case cerr != nil && ierr != nil:
		return cur
	case cerr != nil:
		return in
	case ierr != nil:
		return cur
	case it.After(ct):
		return in
	default:
		return cur
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}
