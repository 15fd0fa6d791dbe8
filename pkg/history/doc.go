// Package history persists a queryable trail of completed evaluations
// in SQLite. Each record captures the evaluation kind, the content
// fingerprint, the brand involved, and the outcome, so past decisions
// can be audited after the content itself is gone.
//
// Retention is enforced by a Pruner, optionally driven by a cron
// Scheduler.
package history
