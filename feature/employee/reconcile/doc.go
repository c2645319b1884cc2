// Package reconcile implements the roster reconciliation core: deciding
// whether two employee records denote the same person, diffing an imported
// roster against the current one, merging duplicate records, and finding
// likely duplicates.
//
// # Architecture
//
// The package is pure data logic with no I/O. Import reconciliation is split
// into two phases:
//
//  1. PlanImport: builds identity indices over the imported roster and
//     computes which active records to terminate and which imported records
//     are new hires. Nothing is mutated.
//  2. Apply: executes a plan against roster slices.
//
// The split lets callers report (and dry-run) a plan before committing it,
// and keeps the diff logic testable without a store.
//
// # Identity
//
// Two records are the same employee if the first identifier present on both
// sides matches, in priority order: employeeId, normalized email, normalized
// "first last" name. Records sharing no identifier are never the same.
// Identity ambiguity (two people sharing a bare first name and nothing else)
// is resolved by this chain silently; it is a documented limitation, not an
// error.
package reconcile
