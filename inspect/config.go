package inspect

import (
	"github.com/fatih/color"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultLineWidth is used if the output is not a terminal.
const DefaultLineWidth = 65

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // wrap slot maps after this many fixed-width positions
	Context   *uax11.Context // context for measuring label widths, LatinContext if nil
	Live      *color.Color   // color of live slots
	Reserved  *color.Color   // color of reserved slots
}

func (cfg *Config) normalized() *Config {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Live == nil {
		c.Live = color.New(color.FgBlue)
	}
	if c.Reserved == nil {
		c.Reserved = color.New(color.FgHiBlack)
	}
	return &c
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Context is created based
// on heuristics from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: DefaultLineWidth}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			switch {
			case w > 65:
				config.LineWidth = w - 10
			case w > 30:
				config.LineWidth = w - 5
			case w > 10:
				config.LineWidth = w
			default:
				config.LineWidth = 10
			}
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().Infof("inspect: setting line width to %d en", config.LineWidth)
	return config
}
