package inspect

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"plotstyle/config"
	"plotstyle/css"
)

type (
	// entry identifies what has been parsed, Key is only set for checked files.
	entry struct {
		Key  string `yaml:"key,omitempty"`
		Expr string `yaml:"expr"`
	}

	numberView struct {
		entry `yaml:",inline"`
		Value float64 `yaml:"value"`
		Unit  string  `yaml:"unit,omitempty"`
		Norm  float64 `yaml:"norm"`
	}

	colorView struct {
		entry `yaml:",inline"`
		Hex   string     `yaml:"hex"`
		RGBA  [4]float64 `yaml:"rgba,flow"`
	}

	stopView struct {
		Position float64    `yaml:"position"`
		Hex      string     `yaml:"hex"`
		RGBA     [4]float64 `yaml:"rgba,flow"`
	}

	gradientView struct {
		entry  `yaml:",inline"`
		Preset string     `yaml:"preset,omitempty"`
		Start  [2]float64 `yaml:"start,flow"`
		End    [2]float64 `yaml:"end,flow"`
		Stops  []stopView `yaml:"stops"`
	}
)

// printer renders parse results. Text goes out immediately, yaml documents
// are accumulated and written as a single sequence by flush.
type printer struct {
	out       io.Writer
	format    config.OutputFmt
	precision int
	caret     bool
	views     []any
}

func newPrinter(out io.Writer, oc config.OutputConfig) *printer {
	prec := oc.Precision
	if prec <= 0 {
		prec = -1
	}
	return &printer{out: out, format: oc.Format, precision: prec, caret: oc.Caret}
}

func (p *printer) round(v float64) float64 {
	r, err := strconv.ParseFloat(p.num(v), 64)
	if err != nil {
		return v
	}
	return r
}

func (p *printer) num(v float64) string {
	return strconv.FormatFloat(v, 'g', p.precision, 64)
}

func (p *printer) rgba(c css.Color) [4]float64 {
	return [4]float64{p.round(c.R), p.round(c.G), p.round(c.B), p.round(c.A)}
}

func label(e entry) string {
	if e.Key == "" {
		return e.Expr
	}
	return e.Key + " = " + e.Expr
}

func (p *printer) number(e entry, n css.NumberWithUnit) {
	v := numberView{entry: e, Value: p.round(n.Value), Unit: n.Unit, Norm: p.round(n.Norm())}
	if p.format == config.OutputFmtYaml {
		p.views = append(p.views, v)
		return
	}
	fmt.Fprintf(p.out, "%s\tvalue=%s unit=%q norm=%s\n", label(e), p.num(n.Value), n.Unit, p.num(n.Norm()))
}

func (p *printer) color(e entry, c css.Color) {
	if p.format == config.OutputFmtYaml {
		p.views = append(p.views, colorView{entry: e, Hex: c.Hex(), RGBA: p.rgba(c)})
		return
	}
	fmt.Fprintf(p.out, "%s\t%s rgba(%s, %s, %s, %s)\n", label(e), c.Hex(), p.num(c.R), p.num(c.G), p.num(c.B), p.num(c.A))
}

func (p *printer) gradient(e entry, g css.Gradient) {
	lg := g.Linear
	if p.format == config.OutputFmtYaml {
		v := gradientView{
			entry:  e,
			Preset: g.Preset,
			Start:  [2]float64{p.round(lg.Start.X), p.round(lg.Start.Y)},
			End:    [2]float64{p.round(lg.End.X), p.round(lg.End.Y)},
			Stops:  make([]stopView, 0, len(lg.Stops)),
		}
		for _, s := range lg.Stops {
			v.Stops = append(v.Stops, stopView{Position: p.round(s.Position), Hex: s.Color.Hex(), RGBA: p.rgba(s.Color)})
		}
		p.views = append(p.views, v)
		return
	}

	var sb strings.Builder
	sb.WriteString(label(e))
	sb.WriteByte('\t')
	if g.IsPreset() {
		fmt.Fprintf(&sb, "preset %q ", g.Preset)
	}
	fmt.Fprintf(&sb, "from (%s, %s) to (%s, %s)\n", p.num(lg.Start.X), p.num(lg.Start.Y), p.num(lg.End.X), p.num(lg.End.Y))
	for _, s := range lg.Stops {
		fmt.Fprintf(&sb, "\t%s %s\n", p.num(s.Position), s.Color.Hex())
	}
	io.WriteString(p.out, sb.String())
}

func (p *printer) name(n string) {
	if p.format == config.OutputFmtYaml {
		p.views = append(p.views, n)
		return
	}
	fmt.Fprintln(p.out, n)
}

func (p *printer) flush() error {
	if p.format != config.OutputFmtYaml || len(p.views) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(p.views); err != nil {
		return fmt.Errorf("unable to encode results: %w", err)
	}
	p.views = nil
	return enc.Close()
}

// exprError ties parse failure to the expression it happened in.
type exprError struct {
	entry
	caret bool
	err   error
}

func (p *printer) failure(e entry, err error) error {
	return &exprError{entry: e, caret: p.caret, err: err}
}

func (e *exprError) Error() string {
	var sb strings.Builder
	if e.Key != "" {
		fmt.Fprintf(&sb, "entry %q: ", e.Key)
	}
	fmt.Fprintf(&sb, "%q: %v", e.Expr, e.err)

	var pe *css.ParseError
	if !e.caret || !errors.As(e.err, &pe) {
		return sb.String()
	}
	line, col, _ := pe.Position(e.Expr)
	lines := strings.Split(e.Expr, "\n")
	if line < 1 || line > len(lines) {
		return sb.String()
	}
	fmt.Fprintf(&sb, "\n\t%s\n\t%s^", lines[line-1], strings.Repeat(" ", max(col-1, 0)))
	return sb.String()
}

func (e *exprError) Unwrap() error {
	return e.err
}
