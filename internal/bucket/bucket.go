package bucket

import (
	"encoding/json"
	"time"

	"github.com/rickgao/mdexport/internal/rebase"
)

// Tuple is one raw measurement from a snapshot block.
type Tuple struct {
	Row    string
	Column string
	Value  string
}

// Bucket holds the decoded fields of one row.
type Bucket struct {
	Row    string
	fields map[string]any
}

// Get returns the named field.
func (b Bucket) Get(name string) (any, bool) {
	v, ok := b.fields[name]
	return v, ok
}

// Len returns the number of populated fields.
func (b Bucket) Len() int {
	return len(b.fields)
}

// MarshalJSON encodes the fields as an object. Keys come out sorted.
func (b Bucket) MarshalJSON() ([]byte, error) {
	if b.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(b.fields)
}

// Env carries the per-record values shared by every field decoder.
type Env struct {
	Offset rebase.Offset
	Noise  float64
}

// Read groups tuples by row and decodes them with kind's field table.
// Output order is the order in which rows were first seen. Kinds with
// PerTuple set skip grouping and keep one bucket per tuple.
func Read(tuples []Tuple, kind Kind, env Env) ([]Bucket, error) {
	buckets := make([]Bucket, 0)
	index := make(map[string]int)

	for _, tp := range tuples {
		i, seen := index[tp.Row]
		if !seen || kind.PerTuple {
			i = len(buckets)
			index[tp.Row] = i
			buckets = append(buckets, Bucket{Row: tp.Row, fields: make(map[string]any)})

			if kind.RowField != nil {
				if err := kind.decodeInto(buckets[i], *kind.RowField, tp, tp.Row, env); err != nil {
					return nil, err
				}
			}
		}

		field, ok := kind.field(tp.Column)
		if !ok {
			continue
		}
		if err := kind.decodeInto(buckets[i], field, tp, tp.Value, env); err != nil {
			return nil, err
		}
	}

	return buckets, nil
}

// ReadAt computes the record offset from kind's anchor policy and target,
// then reads the tuples. noise is the record's single perturbation draw.
func ReadAt(tuples []Tuple, kind Kind, target time.Time, noise float64) ([]Bucket, error) {
	var firstRow string
	if len(tuples) > 0 {
		firstRow = tuples[0].Row
	}

	offset, err := kind.Anchor.Offset(target, firstRow)
	if err != nil {
		return nil, &MalformedValueError{Kind: kind.Name, Row: firstRow, Value: firstRow, Err: err}
	}

	return Read(tuples, kind, Env{Offset: offset, Noise: noise})
}
