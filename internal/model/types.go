package model

import (
	"github.com/rickgao/mdexport/internal/bucket"
	"github.com/rickgao/mdexport/internal/calendar"
)

// Record is a record kind that can be stamped with its replay date.
type Record interface {
	SetDate(day calendar.Day)
}

// -----------------------------------------------------------------------------
// Equity market data
// -----------------------------------------------------------------------------

// Equity is the per-date equity market-data record.
type Equity struct {
	Name      string        `json:"name"`
	Currency  string        `json:"currency"`
	Spot      Quote         `json:"spot"`
	Liquidity Quote         `json:"liquidity"`
	Dividends BucketSet     `json:"dividends"`
	Repo      Repo          `json:"repo"`
	VolORC    VolORC        `json:"vol_orc"`
	Date      *calendar.Day `json:"date,omitempty"`
}

// Quote wraps a single value.
type Quote struct {
	Value float64 `json:"value"`
}

// BucketSet wraps an ordered bucket sequence.
type BucketSet struct {
	Values []bucket.Bucket `json:"values"`
}

// Repo holds the repo term structure.
type Repo struct {
	Buckets BucketSet `json:"buckets"`
}

// VolORC holds the volatility surface parameters.
type VolORC struct {
	ATMBuckets []bucket.Bucket `json:"atm_buckets"`
	ORCBuckets []bucket.Bucket `json:"orc_buckets"`
}

// NewEquity returns an equity record with every sub-record empty but non-nil.
func NewEquity(name string) *Equity {
	return &Equity{
		Name:      name,
		Dividends: BucketSet{Values: []bucket.Bucket{}},
		Repo:      Repo{Buckets: BucketSet{Values: []bucket.Bucket{}}},
		VolORC: VolORC{
			ATMBuckets: []bucket.Bucket{},
			ORCBuckets: []bucket.Bucket{},
		},
	}
}

func (e *Equity) SetDate(day calendar.Day) { e.Date = &day }

// -----------------------------------------------------------------------------
// Option chain
// -----------------------------------------------------------------------------

// OptionChain is the per-date synthetic option quote snapshot.
type OptionChain struct {
	EquityName string        `json:"equity_name"`
	Quotes     OptionQuotes  `json:"quotes"`
	Date       *calendar.Day `json:"date,omitempty"`
}

// OptionQuotes holds the spot and the contract list.
type OptionQuotes struct {
	Spot    float64  `json:"spot"`
	Options []Option `json:"options"`
}

// Option is one synthetic listed option contract.
type Option struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Expiry      string  `json:"expiry"`
	Strike      float64 `json:"strike"`
	Payoff      string  `json:"payoff"`   // CALL or PUT
	Exercise    string  `json:"exercise"` // AMERICAN or EUROPEAN
	Periodicity string  `json:"periodicity"`
	Market      string  `json:"market"`
	Currency    string  `json:"currency"`
	BidPrice    float64 `json:"bid_price"`
	AskPrice    float64 `json:"ask_price"`
	BidSize     float64 `json:"bid_size"`
	AskSize     float64 `json:"ask_size"`
}

func (o *OptionChain) SetDate(day calendar.Day) { o.Date = &day }

// -----------------------------------------------------------------------------
// Settings and config
// -----------------------------------------------------------------------------

// Settings holds per-equity calibration switches.
type Settings struct {
	EquityName string         `json:"equity_name"`
	Values     SettingsValues `json:"values"`
}

// SettingsValues are the individual switches.
type SettingsValues struct {
	Benchmark    string `json:"benchmark"`
	Weekly       bool   `json:"weekly"`
	ITMCall      bool   `json:"itm_call"`
	CalibrateDiv bool   `json:"calibrate_div"`
	RebucketORC  bool   `json:"rebucket_orc"`
	ExtrapMethod string `json:"extrap_method"`
}

// Config marks an equity as active for the downstream system.
type Config struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// -----------------------------------------------------------------------------
// Discount curve
// -----------------------------------------------------------------------------

// Curve is the per-date discount curve record.
type Curve struct {
	Name     string        `json:"name"`
	Currency string        `json:"currency"`
	Buckets  BucketSet     `json:"buckets"`
	Date     *calendar.Day `json:"date,omitempty"`
}

func (c *Curve) SetDate(day calendar.Day) { c.Date = &day }
