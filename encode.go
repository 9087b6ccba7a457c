package portfoy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains the code to read a Snapshot from a JSON document.
//
// The default layout is the one used by the portfolio web application to store
// its state:
//
//	{
//	  "totalValue": 125000,
//	  "riskLevel": "6.3",
//	  "chartData": [{"name": "Hisse", "percentage": 45.27}],
//	  "assetTargets": {"Hisse": {"target": 40, "color": "#0088FE"}},
//	  "portfolioHistory": [{"date": "2024-01-01", "value": 120000}],
//	  "assets": [{"name": "THYAO", "type": "Hisse", "amount": "10", "price": 300}]
//	}
//
// Any other layout can be read by giving a JSONPath expression per field.

// Paths holds one JSONPath expression per Snapshot field.
// An empty expression means the field is not read.
type Paths struct {
	TotalValue       string `toml:"total_value"`
	RiskLevel        string `toml:"risk_level"`
	ChartData        string `toml:"chart_data"`
	AssetTargets     string `toml:"asset_targets"`
	PortfolioHistory string `toml:"portfolio_history"`
	Assets           string `toml:"assets"`
}

// DefaultPaths returns the paths of the web application layout.
func DefaultPaths() Paths {
	return Paths{
		TotalValue:       "$.totalValue",
		RiskLevel:        "$.riskLevel",
		ChartData:        "$.chartData",
		AssetTargets:     "$.assetTargets",
		PortfolioHistory: "$.portfolioHistory",
		Assets:           "$.assets",
	}
}

// Validate checks that every non empty path is a valid JSONPath expression.
func (p Paths) Validate() error {
	for name, path := range p.fields() {
		if path == "" {
			continue
		}
		if _, err := jsonpath.New(path); err != nil {
			return fmt.Errorf("invalid path for %s %q: %w", name, path, err)
		}
	}
	return nil
}

func (p Paths) fields() map[string]string {
	return map[string]string{
		"totalValue":       p.TotalValue,
		"riskLevel":        p.RiskLevel,
		"chartData":        p.ChartData,
		"assetTargets":     p.AssetTargets,
		"portfolioHistory": p.PortfolioHistory,
		"assets":           p.Assets,
	}
}

// DecodeOptions controls how a Snapshot is completed when fields are missing.
type DecodeOptions struct {
	Paths Paths
	// RiskScores is used to compute the risk level from assets.
	RiskScores RiskScores
	// Targets is used when the document has no target allocation.
	Targets Targets
}

// DefaultDecodeOptions reads the web application layout.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		Paths:      DefaultPaths(),
		RiskScores: DefaultRiskScores(),
		Targets:    DefaultTargets(),
	}
}

// number is a float that can also be read from a JSON string, the web
// application stores some numbers as strings ("6.3").
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid number %s", string(data))
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*n = number(f)
	return nil
}

// DecodeSnapshot reads a Snapshot from a JSON document.
//
// Fields are picked using opts.Paths. When the document lists assets, missing
// total value, risk level and allocations are computed from them. Missing
// targets default to opts.Targets.
func DecodeSnapshot(r io.Reader, opts DecodeOptions) (Snapshot, error) {
	if err := opts.Paths.Validate(); err != nil {
		return Snapshot{}, err
	}

	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return Snapshot{}, fmt.Errorf("invalid JSON document: %w", err)
	}

	// js is the object read from the document, pointers tell missing fields
	// apart from zero values.
	var js struct {
		TotalValue       *number
		RiskLevel        *number
		ChartData        []Allocation
		AssetTargets     Targets
		PortfolioHistory []HistoryEntry
		Assets           []struct {
			Name   string `json:"name"`
			Type   string `json:"type"`
			Amount number `json:"amount"`
			Price  number `json:"price"`
		}
	}

	p := opts.Paths
	for _, f := range []struct {
		name, path string
		dst        any
		scalar     bool
	}{
		{"totalValue", p.TotalValue, &js.TotalValue, true},
		{"riskLevel", p.RiskLevel, &js.RiskLevel, true},
		{"chartData", p.ChartData, &js.ChartData, false},
		{"assetTargets", p.AssetTargets, &js.AssetTargets, false},
		{"portfolioHistory", p.PortfolioHistory, &js.PortfolioHistory, false},
		{"assets", p.Assets, &js.Assets, false},
	} {
		if err := extract(doc, f.path, f.scalar, f.dst); err != nil {
			return Snapshot{}, fmt.Errorf("format error in %s: %w", f.name, err)
		}
	}

	holdings := make(Holdings, 0, len(js.Assets))
	for _, a := range js.Assets {
		holdings = append(holdings, Asset{Name: a.Name, Type: a.Type, Amount: float64(a.Amount), Price: float64(a.Price)})
	}
	if err := holdings.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("format error in assets: %w", err)
	}

	s := Snapshot{
		Allocations: js.ChartData,
		Targets:     js.AssetTargets,
		History:     js.PortfolioHistory,
	}
	switch {
	case js.TotalValue != nil:
		s.TotalValue = float64(*js.TotalValue)
	case len(holdings) > 0:
		s.TotalValue = holdings.Total()
	}
	switch {
	case js.RiskLevel != nil:
		s.RiskLevel = float64(*js.RiskLevel)
	case len(holdings) > 0:
		s.RiskLevel = holdings.RiskScore(opts.RiskScores)
	}
	if s.Allocations == nil && len(holdings) > 0 {
		s.Allocations = holdings.Allocations()
	}
	if s.Targets == nil {
		s.Targets = opts.Targets
	}
	return s, nil
}

// extract evaluates path on doc and decodes the result into dst.
// A path that does not match anything leaves dst untouched.
func extract(doc any, path string, scalar bool, dst any) error {
	if path == "" {
		return nil
	}
	val, err := jsonpath.Get(path, doc)
	if isMissing(err) {
		return nil
	}
	if err != nil {
		return err
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// for scalars I keep the first one if any
	if list, ok := val.([]any); ok && scalar {
		if len(list) == 0 {
			return nil
		}
		val = list[0]
	}
	if val == nil {
		return nil
	}
	// round trip through JSON to reuse the field decoders.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(val); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), dst)
}

// isMissing reports whether err is how jsonpath says that nothing matched.
// jsonpath only returns plain errors, the message is all there is.
func isMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "unknown key ") || strings.Contains(msg, " out of bounds")
}
