// Package database opens the PostgreSQL pool used by the run ledger.
package database
