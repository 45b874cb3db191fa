package assemble

import (
	"strconv"
	"time"

	"github.com/rickgao/mdexport/internal/model"
	"github.com/rickgao/mdexport/internal/perturb"
	"github.com/rickgao/mdexport/internal/rebase"
	"github.com/rickgao/mdexport/internal/snapshot"
)

// Synthetic contract constants.
const (
	PutThreshold   = 0.5
	BaseBidPrice   = 0.5
	BaseAskPrice   = 0.65
	BaseBidSize    = 10000
	BidSizeScale   = 1000
	AskSizeScale   = 10000
	OptionCurrency = "EUR"
	Periodicity    = "anual"
)

// ChainSize bounds the number of contracts in a synthetic chain.
type ChainSize struct {
	Min int
	Max int
}

// OptionChain synthesizes an option quote snapshot for target.
func OptionChain(target time.Time, id string, doc *snapshot.Document, size ChainSize, g *perturb.Generator) (*model.OptionChain, error) {
	chain := &model.OptionChain{EquityName: id}

	u := g.Unit()
	spot, ok, err := pointValue(doc, snapshot.TagSpot)
	if err != nil {
		return nil, err
	}
	if ok {
		chain.Quotes.Spot = spot + u
	}

	n := g.IntRange(size.Min, size.Max)
	chain.Quotes.Options = make([]model.Option, n)
	for i := 0; i < n; i++ {
		// One draw sets the noise and picks payoff and exercise together.
		draw := g.Unit()
		noise := draw * perturb.NoiseScale
		payoff, exercise := "CALL", "AMERICAN"
		if draw > PutThreshold {
			payoff, exercise = "PUT", "EUROPEAN"
		}

		suffix := strconv.Itoa(i)
		chain.Quotes.Options[i] = model.Option{
			ID:          "id" + suffix,
			Name:        "name" + suffix,
			Expiry:      target.AddDate(0, 0, i).Format(rebase.Layout),
			Strike:      chain.Quotes.Spot,
			Payoff:      payoff,
			Exercise:    exercise,
			Periodicity: Periodicity,
			Market:      "market" + suffix,
			Currency:    OptionCurrency,
			BidPrice:    BaseBidPrice + noise,
			AskPrice:    BaseAskPrice + noise,
			BidSize:     BaseBidSize + noise*BidSizeScale,
			AskSize:     noise * AskSizeScale,
		}
	}

	return chain, nil
}
