// Package assemble builds export records from a parsed snapshot and a replay
// date.
//
// Every builder is stateless apart from the Generator it is handed: the same
// snapshot, date and generator state always give the same record. Missing
// blocks leave the matching sub-record empty; values that fail to parse abort
// the record with bucket.ErrMalformedValue.
package assemble
