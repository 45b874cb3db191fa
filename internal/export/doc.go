// Package export runs the per-unit pipeline: read one instrument's or one
// curve's snapshot files, build the present-day record and one record per
// historical business day, and write them into the unit's archives.
//
// Archives produced for an equity:
//   - equities/<id>.zip   market data, present day + every historical day
//   - snapshots/<id>.zip  option chains, present day + every historical day
//   - config/<id>.zip     present day only
//   - settings/<id>.zip   present day only
//
// A curve produces curves/<id>.zip, present day + every historical day.
// Archives of a unit are published together: if any record fails, none of the
// unit's archives are left on disk.
package export
