package reconcile

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"staff-admin/feature/employee/models"
)

// EmailKey returns the normalized email identity key, or "" if absent.
func EmailKey(e models.Employee) string {
	return strings.ToLower(strings.TrimSpace(e.Email))
}

// NameKey returns the normalized "first last" identity key, or "" if
// both names are blank. A record with only one name yields a single-token
// key; collisions on bare first names are an accepted ambiguity.
func NameKey(e models.Employee) string {
	full := strings.TrimSpace(e.FirstName + " " + e.LastName)
	return strings.ToLower(full)
}

// SameEmployee reports whether two records denote the same person.
// The identifier chain is employeeId, then email, then full name; the
// first identifier present on both sides decides, ignoring the rest.
// With no shared identifier the records are not comparable and the
// answer is false.
func SameEmployee(a, b models.Employee) bool {
	aid, bid := strings.TrimSpace(a.EmployeeID), strings.TrimSpace(b.EmployeeID)
	if aid != "" && bid != "" {
		return aid == bid
	}

	ae, be := EmailKey(a), EmailKey(b)
	if ae != "" && be != "" {
		return ae == be
	}

	an, bn := NameKey(a), NameKey(b)
	if an != "" && bn != "" {
		return an == bn
	}

	return false
}

// IDGenerator hands out employee ids of the form "<initials><4-digit suffix>",
// e.g. "JS1042" for Jo Smith. The suffix is seeded from the wall clock so
// consecutive imports do not collide; tests can pin the seed.
type IDGenerator struct {
	mu   sync.Mutex
	next int
}

// NewIDGenerator returns a generator seeded from the current time.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1000 + int(time.Now().Unix()%9000)}
}

// NewIDGeneratorAt returns a generator with a fixed starting suffix.
func NewIDGeneratorAt(seed int) *IDGenerator {
	return &IDGenerator{next: seed}
}

// Generate returns a new employee id for the given names.
// It returns "" when either name is blank: without both initials the id
// would not be stable enough to act as an identity.
func (g *IDGenerator) Generate(firstName, lastName string) string {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first == "" || last == "" {
		return ""
	}

	g.mu.Lock()
	suffix := g.next
	g.next++
	if g.next > 9999 {
		g.next = 1000
	}
	g.mu.Unlock()

	return fmt.Sprintf("%c%c%04d", initial(first), initial(last), suffix)
}

func initial(name string) rune {
	for _, r := range name {
		return unicode.ToUpper(r)
	}
	return 'X'
}
