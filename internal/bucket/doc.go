// Package bucket folds flat (row, column, value) measurements into ordered
// buckets.
//
// Each market-data block kind (dividends, ORC parameters, ATM volatility,
// repo/discount curve) is described by a Kind: a table mapping column names to
// field decoders, plus the anchor policy used to rebase its dates. A single
// Read walks the tuples, groups them by row in first-seen order and dispatches
// each column through the table. Columns missing from the table are ignored.
package bucket
