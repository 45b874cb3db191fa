package rebase

import (
	"fmt"
	"time"
)

// Layout is the date format of every tenor date in a snapshot.
const Layout = "2006-01-02"

// ReferenceDate anchors records that use the FixedReference policy.
var ReferenceDate = time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC)

const secondsPerDay = 24 * 60 * 60

// Offset is a signed whole-day translation.
type Offset struct {
	days int
}

// Days returns the offset length in days.
func (o Offset) Days() int {
	return o.days
}

// ComputeOffset returns target - anchor, truncated to whole calendar days.
func ComputeOffset(anchor, target time.Time) Offset {
	a := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	// Unix seconds, not Duration: Duration saturates past ~292 years.
	return Offset{days: int((t.Unix() - a.Unix()) / secondsPerDay)}
}

// Shift adds the offset to t. No business-day adjustment is applied.
func Shift(t time.Time, o Offset) time.Time {
	return t.AddDate(0, 0, o.days)
}

// ShiftString parses a Layout date, shifts it and formats it back.
func ShiftString(s string, o Offset) (string, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return Shift(t, o).Format(Layout), nil
}

// Policy selects how a record's anchor date is chosen.
type Policy int

const (
	// FixedReference anchors on ReferenceDate.
	FixedReference Policy = iota
	// FirstRow anchors on the date of the first bucket row.
	FirstRow
)

func (p Policy) String() string {
	switch p {
	case FixedReference:
		return "fixed_reference"
	case FirstRow:
		return "first_row"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Offset computes the record offset for target. firstRow is the row key of
// the first tuple in the record and is only read by FirstRow; an empty
// firstRow yields a zero offset.
func (p Policy) Offset(target time.Time, firstRow string) (Offset, error) {
	switch p {
	case FixedReference:
		return ComputeOffset(ReferenceDate, target), nil
	case FirstRow:
		if firstRow == "" {
			return Offset{}, nil
		}
		anchor, err := time.Parse(Layout, firstRow)
		if err != nil {
			return Offset{}, fmt.Errorf("parse anchor row %q: %w", firstRow, err)
		}
		return ComputeOffset(anchor, target), nil
	default:
		return Offset{}, fmt.Errorf("unknown anchor policy %d", int(p))
	}
}
