// Package writer records export run outcomes in PostgreSQL.
//
// One row per unit, keyed by (run_id, kind, unit). Writes are append-only:
// rerunning a batch for the same run inserts nothing new.
package writer
