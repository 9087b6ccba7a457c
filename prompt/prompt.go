// Package prompt renders a portfolio snapshot into a text prompt that can be
// pasted into a large language model chat.
//
// Rendering is a pure function of the snapshot and of the report date: the
// date is never read from the clock here, callers pass date.Today() themselves.
package prompt

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/portfoy"
	"github.com/etnz/portfoy/date"
)

//go:embed prompt.md
var templates embed.FS

var promptTemplate = template.Must(template.ParseFS(templates, "prompt.md"))

// DefaultWindow is the number of history entries listed in a prompt.
const DefaultWindow = 5

// ErrNoDate is returned when the report date is missing.
var ErrNoDate = errors.New("missing report date")

// Builder renders prompts.
// The zero value is ready to use with DefaultWindow and portfoy.DefaultCurrency.
type Builder struct {
	// Currency is the ISO code of the currency of every value.
	Currency string
	// Window is the number of most recent history entries to list.
	Window int
}

func (b *Builder) currency() string {
	if b == nil || b.Currency == "" {
		return portfoy.DefaultCurrency
	}
	return b.Currency
}

func (b *Builder) window() int {
	if b == nil || b.Window <= 0 {
		return DefaultWindow
	}
	return b.Window
}

// Prompt is the data rendered by the prompt template.
// Numbers are handled using the types that know how to print themselves.
type Prompt struct {
	// Date of the report.
	Date date.Date
	// Total portfolio value.
	Total portfoy.Money
	// Risk level on a 0 to 10 scale.
	Risk portfoy.Score
	// Allocations in display order.
	Allocations []Allocation
	// Window is the maximum number of History entries.
	Window int
	// History is the tail of the portfolio value history, in chronological order.
	History []HistoryEntry
}

// Allocation is one line of the allocation section.
type Allocation struct {
	Name       string
	Percentage portfoy.Percent
	Target     portfoy.Percent
}

// HistoryEntry is one line of the history section.
type HistoryEntry struct {
	Date  string
	Value portfoy.Money
}

// New creates the Prompt for s on the given day.
//
// It returns an error wrapping portfoy.ErrNotFinite if a number to be printed
// is NaN or infinite. Targets missing for an allocation are printed as 0.
func (b *Builder) New(s portfoy.Snapshot, on date.Date) (*Prompt, error) {
	if on.IsZero() {
		return nil, ErrNoDate
	}
	// only what is printed needs to be valid.
	s.History = s.Last(b.window())
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	cur := b.currency()
	p := &Prompt{
		Date:        on,
		Total:       portfoy.M(s.TotalValue, cur),
		Risk:        portfoy.Score(s.RiskLevel),
		Allocations: make([]Allocation, 0, len(s.Allocations)),
		Window:      b.window(),
		History:     make([]HistoryEntry, 0, len(s.History)),
	}
	for _, a := range s.Allocations {
		p.Allocations = append(p.Allocations, Allocation{
			Name:       a.Name,
			Percentage: portfoy.Percent(a.Percentage),
			Target:     portfoy.Percent(s.Targets.Lookup(a.Name)),
		})
	}
	for _, h := range s.History {
		p.History = append(p.History, HistoryEntry{
			Date:  h.Date,
			Value: portfoy.M(h.Value, cur),
		})
	}
	return p, nil
}

// Build renders the prompt for s on the given day.
func (b *Builder) Build(s portfoy.Snapshot, on date.Date) (string, error) {
	p, err := b.New(s, on)
	if err != nil {
		return "", err
	}
	return Render(p)
}

// Build renders the prompt for s on the given day with the default Builder.
func Build(s portfoy.Snapshot, on date.Date) (string, error) {
	return new(Builder).Build(s, on)
}

// Render executes the prompt template. The result has no leading or trailing
// white space.
func Render(p *Prompt) (string, error) {
	var b strings.Builder
	if err := promptTemplate.Execute(&b, p); err != nil {
		return "", fmt.Errorf("error executing prompt template: %w", err)
	}
	return strings.TrimSpace(b.String()), nil
}
