// Package rebase shifts snapshot tenor dates onto a replay date.
//
// An Offset is computed once per record from an anchor date and the target
// replay date, then added to every date in that record so the spacing between
// tenors is kept exactly. Two anchor policies exist: a fixed reference date
// (dividends, volatility surfaces) and the snapshot's own first row (curves).
package rebase
