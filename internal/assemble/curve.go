package assemble

import (
	"strings"
	"time"

	"github.com/rickgao/mdexport/internal/bucket"
	"github.com/rickgao/mdexport/internal/model"
	"github.com/rickgao/mdexport/internal/perturb"
	"github.com/rickgao/mdexport/internal/snapshot"
)

// Curve builds the discount curve record for target. The curve id encodes
// its name with '_' in place of ':' and starts with the currency code.
func Curve(target time.Time, id string, doc *snapshot.Document, g *perturb.Generator) (*model.Curve, error) {
	curve := &model.Curve{
		Name:     strings.ReplaceAll(id, "_", ":"),
		Currency: currencyOf(id),
		Buckets:  model.BucketSet{Values: []bucket.Bucket{}},
	}

	noise := g.Noise()
	block, ok := doc.Curve()
	if !ok {
		return curve, nil
	}

	buckets, err := bucket.ReadAt(block.Tuples(), bucket.DiscountCurve, target, noise)
	if err != nil {
		return nil, err
	}
	curve.Buckets.Values = buckets
	return curve, nil
}

func currencyOf(id string) string {
	if len(id) < 3 {
		return id
	}
	return id[:3]
}
