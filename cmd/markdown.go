package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/phuslu/log"
	"golang.org/x/term"
)

const defaultWrap = 100

// printMarkdown renders md for the terminal. When stdout is not a terminal, or
// rendering fails, md is printed as is.
func printMarkdown(md string) {
	fd := os.Stdout.Fd()
	if stdout != os.Stdout || !isatty.IsTerminal(fd) {
		fmt.Fprintln(stdout, md)
		return
	}

	wrap := defaultWrap
	if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 && w < wrap {
		wrap = w
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wrap))
	if err != nil {
		log.Warn().Err(err).Msg("cannot create markdown renderer")
		fmt.Fprintln(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Warn().Err(err).Msg("cannot render markdown")
		fmt.Fprintln(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
