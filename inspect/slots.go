package inspect

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/containers/vector"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// ReservedMark labels a reserved, uninitialized slot.
const ReservedMark = "·"

var setupGraphemes sync.Once

// width returns the number of fixed-width positions s occupies on a console.
func width(s string, ctx *uax11.Context) int {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// Slots writes the slot map of v to w: a header line with length and
// capacity, followed by one cell per slot. Cells are wrapped at
// cfg.LineWidth. label formats element values; fmt.Sprint is used if nil.
// A nil cfg selects defaults.
func Slots[T any](w io.Writer, v *vector.Vector[T], cfg *Config, label func(T) string) error {
	if v == nil {
		return fmt.Errorf("inspect: nil vector")
	}
	cfg = cfg.normalized()
	if label == nil {
		label = func(x T) string { return fmt.Sprint(x) }
	}
	if _, err := fmt.Fprintf(w, "len=%d cap=%d\n", v.Len(), v.Cap()); err != nil {
		return err
	}
	out := &cellWriter{w: w, cfg: cfg}
	for _, x := range v.All() {
		out.cell(label(x), cfg.Live)
	}
	for range v.Cap() - v.Len() {
		out.cell(ReservedMark, cfg.Reserved)
	}
	return out.finish()
}

// cellWriter outputs cells and wraps lines. The first write error sticks.
type cellWriter struct {
	w   io.Writer
	cfg *Config
	col int
	err error
}

func (cw *cellWriter) cell(text string, c *color.Color) {
	if cw.err != nil {
		return
	}
	text = strings.ReplaceAll(text, "\n", " ")
	n := width(text, cw.cfg.Context) + 2
	if cw.col > 0 && cw.col+n > cw.cfg.LineWidth {
		if _, cw.err = io.WriteString(cw.w, "\n"); cw.err != nil {
			return
		}
		cw.col = 0
	}
	_, cw.err = c.Fprint(cw.w, "[", text, "]")
	cw.col += n
}

func (cw *cellWriter) finish() error {
	if cw.err == nil && cw.col > 0 {
		_, cw.err = io.WriteString(cw.w, "\n")
	}
	return cw.err
}
