package bucket

import "github.com/rickgao/mdexport/internal/rebase"

// Field names a decoded output field and how to decode it.
type Field struct {
	Name   string
	Decode Decoder
}

// Kind describes one block layout.
type Kind struct {
	Name   string
	Anchor rebase.Policy

	// Columns dispatches by column name.
	Columns map[string]Field

	// RowField, when set, is decoded from the row key on first sight of a row.
	RowField *Field

	// ValueField, when set, receives every tuple value regardless of column.
	ValueField *Field

	// PerTuple gives every tuple its own bucket, even when rows repeat.
	PerTuple bool
}

func (k Kind) field(column string) (Field, bool) {
	if k.ValueField != nil {
		return *k.ValueField, true
	}
	f, ok := k.Columns[column]
	return f, ok
}

func (k Kind) decodeInto(b Bucket, f Field, tp Tuple, raw string, env Env) error {
	v, err := f.Decode(raw, env)
	if err != nil {
		return &MalformedValueError{Kind: k.Name, Row: tp.Row, Column: tp.Column, Value: raw, Err: err}
	}
	b.fields[f.Name] = v
	return nil
}

// Dividends reads EQ_DIVIDENDS blocks.
var Dividends = Kind{
	Name:   "dividends",
	Anchor: rebase.FixedReference,
	Columns: map[string]Field{
		"EX_DATE":      {Name: "ex_date", Decode: Date},
		"PAYMENT_DATE": {Name: "pay_date", Decode: Date},
		"VALUE":        {Name: "net_value", Decode: Number},
		"RELATIVE":     {Name: "is_relative", Decode: Flag},
	},
}

// ORCParams reads EQ_ORC_PARAMS blocks.
var ORCParams = Kind{
	Name:   "orc_params",
	Anchor: rebase.FixedReference,
	Columns: map[string]Field{
		"EXPIRY":         {Name: "date", Decode: Date},
		"REF_FWD":        {Name: "ref_fwd", Decode: Number},
		"CALL_CURV":      {Name: "call_curv", Decode: Number},
		"DOWN_CUT":       {Name: "down_cut", Decode: Number},
		"DOWN_SMOOTH_RT": {Name: "down_smooth", Decode: Number},
		"PUT_CURV":       {Name: "put_curv", Decode: Number},
		"SLOPE_REF":      {Name: "slope_ref", Decode: Number},
		"UP_CUT":         {Name: "up_cut", Decode: Number},
		"UP_SMOOTH_RT":   {Name: "up_smooth", Decode: Number},
		"VOL_REF":        {Name: "vol_ref", Decode: Number},
	},
}

// ATMVol reads EQ_ATM_VOL blocks. Rows are tenor dates.
var ATMVol = Kind{
	Name:   "atm_vol",
	Anchor: rebase.FixedReference,
	Columns: map[string]Field{
		"STRIKE": {Name: "strike", Decode: Number},
		"VOL":    {Name: "vol", Decode: Number},
	},
	RowField: &Field{Name: "date", Decode: Date},
}

// DiscountCurve reads curve blocks: row is the tenor date, value the discount
// factor. Each measurement is one bucket.
var DiscountCurve = Kind{
	Name:       "discount_curve",
	Anchor:     rebase.FirstRow,
	RowField:   &Field{Name: "date", Decode: Date},
	ValueField: &Field{Name: "df", Decode: Number},
	PerTuple:   true,
}
