package main

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/kr/pretty"
)

var (
	exprStyle   = lipgloss.NewStyle().Bold(true)
	dumpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type renderer struct {
	w     io.Writer
	color bool
	dump  bool
}

func newRenderer(w io.Writer, color, dump bool) *renderer {
	return &renderer{w: w, color: color, dump: dump}
}

func (r *renderer) paint(style lipgloss.Style, text string) string {
	out := style.Render(text)
	if !r.color {
		out = ansi.Strip(out)
	}
	return out
}

func (r *renderer) outcome(label string, o outcome) {
	fmt.Fprintln(r.w, r.paint(exprStyle, fmt.Sprint(o.expr)))
	if r.dump {
		fmt.Fprintln(r.w, r.paint(dumpStyle, fmt.Sprintf("%# v", pretty.Formatter(o.expr))))
	}
	if o.err != nil {
		fmt.Fprintln(r.w, r.paint(errorStyle, "Error: "+o.err.Error()))
	} else {
		fmt.Fprintf(r.w, "%s %s\n", r.paint(labelStyle, label+":"), r.paint(resultStyle, o.result.String()))
	}
	fmt.Fprintln(r.w)
}
