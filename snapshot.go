package portfoy

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFinite is returned when a number used in a prompt is NaN or infinite.
var ErrNotFinite = errors.New("not a finite number")

// Snapshot holds everything needed to describe a portfolio to a language model.
//
// A Snapshot is owned by the caller, nothing in this module mutates it.
type Snapshot struct {
	// TotalValue is the total portfolio value, in the reporting currency.
	TotalValue float64 `json:"totalValue"`
	// RiskLevel is a score on a 0 to 10 scale.
	RiskLevel float64 `json:"riskLevel"`
	// Allocations is the current allocation, in display order.
	Allocations []Allocation `json:"chartData"`
	// Targets is the desired allocation per asset name.
	Targets Targets `json:"assetTargets"`
	// History is the chronological series of portfolio values.
	History []HistoryEntry `json:"portfolioHistory"`
}

// Allocation is the share of the portfolio held in a named asset.
type Allocation struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Target is the desired allocation percentage for an asset.
type Target struct {
	Target float64 `json:"target"`
}

// Targets maps an asset name to its target allocation.
type Targets map[string]Target

// Lookup returns the target percentage for name, or 0 if there is none.
// Lookup can be called on a nil Targets.
func (t Targets) Lookup(name string) float64 {
	if v, ok := t[name]; ok {
		return v.Target
	}
	return 0
}

// HistoryEntry is the portfolio value on a given day.
// Date is kept as-is, it is printed verbatim.
type HistoryEntry struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Last returns the last n entries of the history, in their original order.
// If the history has fewer than n entries, all of them are returned.
func (s Snapshot) Last(n int) []HistoryEntry {
	if n < 0 {
		n = 0
	}
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

// Validate checks that every number in the snapshot can be printed.
// The returned error wraps ErrNotFinite.
func (s Snapshot) Validate() error {
	if !finite(s.TotalValue) {
		return fmt.Errorf("totalValue %v: %w", s.TotalValue, ErrNotFinite)
	}
	if !finite(s.RiskLevel) {
		return fmt.Errorf("riskLevel %v: %w", s.RiskLevel, ErrNotFinite)
	}
	for _, a := range s.Allocations {
		if !finite(a.Percentage) {
			return fmt.Errorf("percentage of %q %v: %w", a.Name, a.Percentage, ErrNotFinite)
		}
		if t := s.Targets.Lookup(a.Name); !finite(t) {
			return fmt.Errorf("target of %q %v: %w", a.Name, t, ErrNotFinite)
		}
	}
	for _, h := range s.History {
		if !finite(h.Value) {
			return fmt.Errorf("value on %q %v: %w", h.Date, h.Value, ErrNotFinite)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
