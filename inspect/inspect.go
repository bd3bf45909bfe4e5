// Package inspect implements command line actions which parse style
// expressions and report results.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"plotstyle/config"
	"plotstyle/css"
	"plotstyle/state"
)

// OutputFlags returns flags overriding configured output settings, shared by
// all commands which print parse results.
func OutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "format", Aliases: []string{"f"},
			Usage: "results output `TYPE` (supported types: " + strings.Join(config.OutputFmtNames(), ", ") + ")"},
		&cli.IntFlag{Name: "precision", Aliases: []string{"p"}, Usage: "significant `DIGITS` for numbers in output"},
		&cli.BoolFlag{Name: "no-caret", Usage: "do not point at offending character when reporting errors"},
	}
}

// outputConfig applies command line overrides to configured output settings.
func outputConfig(env *state.LocalEnv, cmd *cli.Command) (config.OutputConfig, error) {
	oc := config.OutputConfig{Format: config.OutputFmtText, Precision: 6, Caret: true}
	if env.Cfg != nil {
		oc = env.Cfg.Output
	}
	if cmd.IsSet("format") {
		f, err := config.ParseOutputFmt(cmd.String("format"))
		if err != nil {
			return oc, fmt.Errorf("unable to use requested output format: %w", err)
		}
		oc.Format = f
	}
	if cmd.IsSet("precision") {
		oc.Precision = int(cmd.Int("precision"))
	}
	if cmd.Bool("no-caret") {
		oc.Caret = false
	}
	return oc, nil
}

func prepare(ctx context.Context, cmd *cli.Command, name string) (*state.LocalEnv, *zap.Logger, *printer, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, nil, err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log
	if log == nil {
		log = zap.NewNop()
	}
	oc, err := outputConfig(env, cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	return env, log.Named(name), newPrinter(cmd.Root().Writer, oc), nil
}

// expressions runs parse over every command argument. All failures are
// reported, successfully parsed expressions are still printed.
func expressions(ctx context.Context, cmd *cli.Command, name string, parse func(*css.Parser, *printer, string) error) error {
	env, log, p, err := prepare(ctx, cmd, name)
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("no expression has been specified")
	}

	var errs error
	for _, expr := range args {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := parse(env.Parser, p, expr); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if err := p.flush(); err != nil {
		errs = multierr.Append(errs, err)
	}
	log.Debug("Expressions processed", zap.Int("total", len(args)), zap.Int("failed", len(multierr.Errors(errs))))
	return errs
}

// Number parses arguments as numbers with optional units.
func Number(ctx context.Context, cmd *cli.Command) error {
	return expressions(ctx, cmd, "number", func(parser *css.Parser, p *printer, expr string) error {
		n, err := parser.ParseNumberWithUnit(expr)
		if err != nil {
			return p.failure(entry{Expr: expr}, err)
		}
		p.number(entry{Expr: expr}, n)
		return nil
	})
}

// Color parses arguments as colors.
func Color(ctx context.Context, cmd *cli.Command) error {
	return expressions(ctx, cmd, "color", func(parser *css.Parser, p *printer, expr string) error {
		c, err := parser.ParseColor(expr)
		if err != nil {
			return p.failure(entry{Expr: expr}, err)
		}
		p.color(entry{Expr: expr}, c)
		return nil
	})
}

// Gradient parses arguments as gradients.
func Gradient(ctx context.Context, cmd *cli.Command) error {
	return expressions(ctx, cmd, "gradient", func(parser *css.Parser, p *printer, expr string) error {
		g, err := parser.ParseGradient(expr)
		if err != nil {
			return p.failure(entry{Expr: expr}, err)
		}
		p.gradient(entry{Expr: expr}, g)
		return nil
	})
}

// Presets lists names of predefined gradients, optionally with their
// definitions.
func Presets(ctx context.Context, cmd *cli.Command) error {
	_, log, p, err := prepare(ctx, cmd, "presets")
	if err != nil {
		return err
	}

	names := css.Presets()
	for _, n := range names {
		if !cmd.Bool("show") {
			p.name(n)
			continue
		}
		g, ok := css.LookupPreset(n)
		if !ok {
			// this should never happen
			return fmt.Errorf("preset %q is listed but cannot be found", n)
		}
		p.gradient(entry{Expr: n}, g)
	}
	log.Debug("Presets listed", zap.Int("count", len(names)))
	return p.flush()
}
