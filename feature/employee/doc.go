// Package employee implements the employee roster feature.
//
// The roster is held in memory as two partitions, active and terminated,
// and persisted as a whole to the database after every mutation. A single
// undo snapshot is retained so the last destructive operation can be
// rolled back.
//
// # Reconcile Engine
//
// Imports run through the `feature/employee/reconcile` package, which
// plans a roster diff without touching state (PlanImport) and applies it
// separately (Apply). People present in the import but not the roster are
// added, people missing from the import are terminated, everyone else is
// left untouched.
//
// # Components
//
//   - Store: In-memory roster with partition bookkeeping and undo snapshot.
//   - Repository: Whole-roster persistence on GORM.
//   - Service: Orchestrates imports, merges, terminations and archiving.
//   - Handler: Exposes the HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET    /employees                     : Full roster.
//   - POST   /employees                     : Replace the stored roster.
//   - POST   /employees/import              : Smart import from an uploaded CSV.
//   - POST   /employees/import/sheet        : Smart import from the configured sheet.
//   - POST   /employees/undo                : Roll back the last import/merge/replace.
//   - GET    /employees/duplicates          : Report likely duplicate records.
//   - POST   /employees/merge               : Merge duplicate records into one.
//   - GET    /employees/imports/archive     : List archived import files.
//   - POST   /employees/:index/terminate    : Terminate an active record.
//   - POST   /employees/:index/reactivate   : Reactivate a terminated record.
package employee
