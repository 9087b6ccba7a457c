package portfoy

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHoldings(t *testing.T) {
	h := Holdings{
		{Name: "THYAO", Type: "Hisse", Amount: 10, Price: 300},
		{Name: "Gram", Type: "Altın", Amount: 1, Price: 2000},
		{Name: "BTC", Type: "Kripto", Amount: 0, Price: 2000000},
		{Name: "ETH", Type: "Kripto", Amount: -1, Price: 100000},
		{Name: "ASELS", Type: "Hisse", Amount: 5, Price: 200},
		{Name: "Fund", Type: "Unknown", Amount: 2, Price: 500},
	}

	if got, want := h.Total(), 7000.0; got != want {
		t.Errorf("Total() = %v want %v", got, want)
	}

	want := []Allocation{
		{Name: "Hisse", Percentage: 4000.0 / 7000 * 100},
		{Name: "Altın", Percentage: 2000.0 / 7000 * 100},
		{Name: "Unknown", Percentage: 1000.0 / 7000 * 100},
	}
	if diff := cmp.Diff(want, h.Allocations(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Allocations() mismatch (-want +got):\n%s", diff)
	}

	// 4/7*8 + 2/7*4 + 1/7*5 = 45/7 = 6.43
	if got, want := h.RiskScore(DefaultRiskScores()), 6.4; got != want {
		t.Errorf("RiskScore() = %v want %v", got, want)
	}
}

func TestHoldingsEmpty(t *testing.T) {
	for _, h := range []Holdings{nil, {{Name: "BTC", Type: "Kripto", Amount: 0, Price: 1}}} {
		if got := h.Total(); got != 0 {
			t.Errorf("Total() = %v want 0", got)
		}
		if got := h.Allocations(); len(got) != 0 {
			t.Errorf("Allocations() = %v want none", got)
		}
		if got := h.RiskScore(DefaultRiskScores()); got != 0 {
			t.Errorf("RiskScore() = %v want 0", got)
		}
	}
}

func TestHoldingsWorthless(t *testing.T) {
	h := Holdings{{Name: "Delisted", Type: "Hisse", Amount: 10, Price: 0}}
	want := []Allocation{{Name: "Hisse", Percentage: 0}}
	if diff := cmp.Diff(want, h.Allocations()); diff != "" {
		t.Errorf("Allocations() mismatch (-want +got):\n%s", diff)
	}
	if got := h.RiskScore(nil); got != 0 {
		t.Errorf("RiskScore() = %v want 0", got)
	}
}

func TestRiskScoresScore(t *testing.T) {
	scores := RiskScores{"Hisse": 8, "USD": 0}
	tests := []struct {
		assetType string
		want      float64
	}{
		{"Hisse", 8},
		{"USD", 0},
		{"Kripto", DefaultRiskScore},
	}
	for _, tt := range tests {
		if got := scores.Score(tt.assetType); got != tt.want {
			t.Errorf("Score(%q) = %v want %v", tt.assetType, got, tt.want)
		}
	}
}

func TestHoldingsSnapshot(t *testing.T) {
	h := Holdings{{Name: "Gram", Type: "Altın", Amount: 2, Price: 1000}}
	want := Snapshot{
		TotalValue:  2000,
		RiskLevel:   4,
		Allocations: []Allocation{{Name: "Altın", Percentage: 100}},
	}
	if diff := cmp.Diff(want, h.Snapshot(DefaultRiskScores())); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestHoldingsValidate(t *testing.T) {
	if err := (Holdings{{Name: "A", Amount: 1, Price: 2}}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := (Holdings{{Name: "A", Amount: math.Inf(1), Price: 2}}).Validate(); !errors.Is(err, ErrNotFinite) {
		t.Errorf("Validate() error = %v want %v", err, ErrNotFinite)
	}
}
