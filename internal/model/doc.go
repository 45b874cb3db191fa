// Package model defines the JSON records written into export archives.
//
// Field names are consumed by the downstream pricing test system and must not
// change. Conventions:
//   - Dates: "YYYY-MM-DD" strings inside buckets and option expiries
//   - Replay date: {year, month, day} object, present only on historical entries
//   - Bucket sequences are never null; empty blocks encode as []
package model
