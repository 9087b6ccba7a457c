// Package clipboard copies text to the user's clipboard.
//
// The capability is an interface so that callers can choose the system
// clipboard, the terminal one (OSC 52, works over ssh), or an in-memory one in
// tests.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Writer writes text to a clipboard.
type Writer interface {
	WriteText(text string) error
}

// Known clipboard kinds.
const (
	KindAuto   = "auto"
	KindSystem = "system"
	KindOSC52  = "osc52"
)

// Kinds lists the names accepted by New.
var Kinds = []string{KindAuto, KindSystem, KindOSC52}

// ErrUnknownKind is returned by New for an unknown clipboard kind.
var ErrUnknownKind = errors.New("unknown clipboard kind")

// ErrUnsupported is returned when the system has no clipboard utility.
var ErrUnsupported = errors.New("no clipboard utility found")

// New returns the clipboard of the given kind. Terminal sequences are written to w.
func New(kind string, w io.Writer) (Writer, error) {
	term := &OSC52{W: w, Tmux: os.Getenv("TMUX") != ""}
	switch strings.ToLower(kind) {
	case KindSystem:
		return System{}, nil
	case KindOSC52:
		return term, nil
	case KindAuto, "":
		return Fallback{System{}, term}, nil
	default:
		return nil, fmt.Errorf("%w %q, want one of %s", ErrUnknownKind, kind, strings.Join(Kinds, ", "))
	}
}

// System is the operating system clipboard.
// On unix it requires one of xclip, xsel, wl-copy or termux-clipboard-set.
type System struct{}

func (System) WriteText(text string) error {
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("writing to system clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal to set its clipboard using an OSC 52 escape sequence.
// It cannot tell whether the terminal honored the request.
type OSC52 struct {
	W io.Writer
	// Tmux wraps the sequence for tmux passthrough.
	Tmux bool
}

func (o *OSC52) WriteText(text string) error {
	if o.W == nil {
		return errors.New("no terminal to write the clipboard sequence to")
	}
	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.W); err != nil {
		return fmt.Errorf("writing clipboard sequence: %w", err)
	}
	return nil
}

// Fallback tries each Writer in turn until one succeeds.
type Fallback []Writer

func (f Fallback) WriteText(text string) error {
	if len(f) == 0 {
		return errors.New("no clipboard to write to")
	}
	var errs []error
	for _, w := range f {
		err := w.WriteText(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Memory is an in-memory clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
	// Err, when set, is returned by WriteText and the text is not stored.
	Err error
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

// Text returns the last text written.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
