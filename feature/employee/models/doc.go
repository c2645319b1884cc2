// Package models defines the employee roster record persisted by the
// employee feature and consumed by the reconcile engine.
package models
