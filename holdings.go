package portfoy

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// Asset is a single line of the portfolio.
type Asset struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
}

// value returns amount times price.
func (a Asset) value() decimal.Decimal {
	return newDecimal(a.Amount).Mul(newDecimal(a.Price))
}

// Holdings is the flat list of assets of a portfolio.
type Holdings []Asset

// Validate checks that every amount and price is a finite number, the other
// methods panic otherwise. The returned error wraps ErrNotFinite.
func (h Holdings) Validate() error {
	for _, a := range h {
		if !finite(a.Amount) {
			return fmt.Errorf("amount of %q %v: %w", a.Name, a.Amount, ErrNotFinite)
		}
		if !finite(a.Price) {
			return fmt.Errorf("price of %q %v: %w", a.Name, a.Price, ErrNotFinite)
		}
	}
	return nil
}

// held iterates over assets with a positive amount, sold out assets are kept
// in the list but do not count.
func (h Holdings) held() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, a := range h {
			if a.Amount > 0 && !yield(a) {
				return
			}
		}
	}
}

// total returns the exact total value.
func (h Holdings) total() decimal.Decimal {
	sum := decimal.Zero
	for a := range h.held() {
		sum = sum.Add(a.value())
	}
	return sum
}

// Total returns the sum of amount times price over held assets.
func (h Holdings) Total() float64 { return h.total().InexactFloat64() }

// byType returns the value held per asset type, types in order of first appearance.
func (h Holdings) byType() (types []string, values map[string]decimal.Decimal) {
	values = make(map[string]decimal.Decimal)
	for a := range h.held() {
		v, ok := values[a.Type]
		if !ok {
			types = append(types, a.Type)
		}
		values[a.Type] = v.Add(a.value())
	}
	return types, values
}

// Allocations groups held assets by type.
//
// Types are listed in order of first appearance. The percentage is the share of
// the total value, or 0 if the total is 0.
func (h Holdings) Allocations() []Allocation {
	total := h.total()
	types, values := h.byType()
	res := make([]Allocation, 0, len(types))
	for _, t := range types {
		p := decimal.Zero
		if !total.IsZero() {
			p = values[t].Div(total).Mul(decimal.NewFromInt(100))
		}
		res = append(res, Allocation{Name: t, Percentage: p.InexactFloat64()})
	}
	return res
}

// DefaultRiskScore is the risk of an asset type that has no explicit score.
const DefaultRiskScore = 5

// RiskScores maps an asset type to its risk, on a 0 to 10 scale.
type RiskScores map[string]float64

// DefaultRiskScores returns the risk of the usual asset types.
func DefaultRiskScores() RiskScores {
	return RiskScores{
		"Hisse":    8,
		"Kripto":   9,
		"USD":      2,
		"Altın":    4,
		"Fon":      6,
		"Eurobond": 3,
	}
}

// Score returns the risk of an asset type, or DefaultRiskScore.
func (r RiskScores) Score(assetType string) float64 {
	if v, ok := r[assetType]; ok {
		return v
	}
	return DefaultRiskScore
}

// RiskScore returns the value weighted average of the risk per type, rounded
// to one fraction digit. It is 0 for an empty or worthless portfolio.
func (h Holdings) RiskScore(scores RiskScores) float64 {
	total := h.total()
	if total.IsZero() {
		return 0
	}
	types, values := h.byType()
	risk := decimal.Zero
	for _, t := range types {
		weight := values[t].Div(total)
		risk = risk.Add(weight.Mul(newDecimal(scores.Score(t))))
	}
	return risk.Round(1).InexactFloat64()
}

// DefaultTargets returns the target allocation used when none is provided.
func DefaultTargets() Targets {
	return Targets{
		"Hisse":    {Target: 35},
		"Kripto":   {Target: 10},
		"USD":      {Target: 20},
		"Altın":    {Target: 10},
		"Fon":      {Target: 10},
		"Eurobond": {Target: 15},
	}
}

// Snapshot derives a snapshot from the holdings.
// Targets and history are left to the caller.
func (h Holdings) Snapshot(scores RiskScores) Snapshot {
	return Snapshot{
		TotalValue:  h.Total(),
		RiskLevel:   h.RiskScore(scores),
		Allocations: h.Allocations(),
	}
}
