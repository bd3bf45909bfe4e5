// Package palette provides sources for semantic color names which style
// expressions may reference (window, highlight, ...).
package palette

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"plotstyle/css"
)

// Static is a fixed set of named colors. Keys are folded with css.FoldName.
type Static map[string]css.Color

// Resolve implements css.Palette.
func (s Static) Resolve(name string) (css.Color, bool) {
	c, ok := s[css.FoldName(name)]
	return c, ok
}

// Names returns palette names in natural order.
func (s Static) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// FromConfig parses every color expression using parser p and returns
// resulting palette. All failures are reported together.
func FromConfig(p *css.Parser, colors map[string]string) (Static, error) {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	s := make(Static, len(colors))
	var errs error
	for _, name := range names {
		c, err := p.ParseColor(colors[name])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("palette color %q: %w", name, err))
			continue
		}
		s[css.FoldName(name)] = c
	}
	if errs != nil {
		return nil, errs
	}
	return s, nil
}

// Chain consults palettes in order and returns the first match.
type Chain []css.Palette

// Resolve implements css.Palette.
func (ch Chain) Resolve(name string) (css.Color, bool) {
	for _, p := range ch {
		if p == nil {
			continue
		}
		if c, ok := p.Resolve(name); ok {
			return c, true
		}
	}
	return css.Color{}, false
}
