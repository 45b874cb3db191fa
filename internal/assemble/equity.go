package assemble

import (
	"time"

	"github.com/rickgao/mdexport/internal/bucket"
	"github.com/rickgao/mdexport/internal/model"
	"github.com/rickgao/mdexport/internal/perturb"
	"github.com/rickgao/mdexport/internal/snapshot"
)

// LiquidityScale multiplies the equity draw before it is added to liquidity.
const LiquidityScale = 1000

// matrixSlot routes a tagged matrix block to its reader and record field.
type matrixSlot struct {
	kind   bucket.Kind
	assign func(e *model.Equity, b []bucket.Bucket)
}

var matrixSlots = map[string]matrixSlot{
	snapshot.TagDividends: {
		kind:   bucket.Dividends,
		assign: func(e *model.Equity, b []bucket.Bucket) { e.Dividends.Values = b },
	},
	snapshot.TagORCParams: {
		kind:   bucket.ORCParams,
		assign: func(e *model.Equity, b []bucket.Bucket) { e.VolORC.ORCBuckets = b },
	},
	snapshot.TagATMVol: {
		kind:   bucket.ATMVol,
		assign: func(e *model.Equity, b []bucket.Bucket) { e.VolORC.ATMBuckets = b },
	},
}

// Equity builds the equity market-data record for target.
func Equity(target time.Time, id string, doc *snapshot.Document, meta *snapshot.Settings, g *perturb.Generator) (*model.Equity, error) {
	eq := model.NewEquity(id)
	if meta != nil {
		eq.Currency = meta.Currency()
	}

	u := g.Unit()

	spot, ok, err := pointValue(doc, snapshot.TagSpot)
	if err != nil {
		return nil, err
	}
	if ok {
		eq.Spot.Value = spot + u
	}

	liquidity, ok, err := pointValue(doc, snapshot.TagLiquidity)
	if err != nil {
		return nil, err
	}
	if ok {
		eq.Liquidity.Value = liquidity + LiquidityScale*u
	}

	for _, m := range doc.Matrices {
		slot, ok := matrixSlots[m.Tag()]
		if !ok {
			continue
		}
		buckets, err := bucket.ReadAt(m.Tuples(), slot.kind, target, g.Noise())
		if err != nil {
			return nil, err
		}
		slot.assign(eq, buckets)
	}

	if c, ok := doc.Curve(); ok && c.Tag() == snapshot.TagDividendYield {
		buckets, err := bucket.ReadAt(c.Tuples(), bucket.DiscountCurve, target, g.Noise())
		if err != nil {
			return nil, err
		}
		eq.Repo.Buckets.Values = buckets
	}

	return eq, nil
}

// pointValue parses the point tagged tag. ok is false when the point is absent.
func pointValue(doc *snapshot.Document, tag string) (float64, bool, error) {
	p, ok := doc.Point(tag)
	if !ok {
		return 0, false, nil
	}
	v, err := bucket.Number(p.Measure.Val, bucket.Env{})
	if err != nil {
		return 0, false, &bucket.MalformedValueError{Kind: "point", Column: tag, Value: p.Measure.Val, Err: err}
	}
	return v.(float64), true, nil
}
