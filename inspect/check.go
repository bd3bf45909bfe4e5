package inspect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"plotstyle/css"
)

// styleEntry is a single expression from checked file. Kind is guessed when
// absent.
type styleEntry struct {
	Kind  *EntryKind `yaml:"kind"`
	Value string     `yaml:"value"`
}

// guessKind decides what bare expression most likely is.
func guessKind(expr string) EntryKind {
	s := strings.TrimSpace(expr)
	if strings.HasPrefix(css.FoldName(s), "linear-gradient") {
		return EntryKindGradient
	}
	if _, ok := css.LookupPreset(s); ok {
		return EntryKindGradient
	}
	if len(s) > 0 {
		c := s[0]
		if (c == '+' || c == '-') && len(s) > 1 {
			c = s[1]
		}
		if c >= '0' && c <= '9' {
			return EntryKindNumber
		}
	}
	return EntryKindColor
}

// readStyles decodes mapping of keys to style entries preserving document
// order.
func readStyles(data []byte) ([]string, map[string]styleEntry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("unable to decode styles: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, errors.New("styles file is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("styles must be a mapping, line %d", root.Line)
	}

	keys := make([]string, 0, len(root.Content)/2)
	entries := make(map[string]styleEntry, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if _, ok := entries[k.Value]; ok {
			return nil, nil, fmt.Errorf("duplicate style key %q, line %d", k.Value, k.Line)
		}

		var se styleEntry
		switch v.Kind {
		case yaml.ScalarNode:
			se.Value = v.Value
		case yaml.MappingNode:
			if err := v.Decode(&se); err != nil {
				return nil, nil, fmt.Errorf("style %q, line %d: %w", k.Value, v.Line, err)
			}
		default:
			return nil, nil, fmt.Errorf("style %q, line %d: expected expression or mapping", k.Value, v.Line)
		}
		if se.Kind == nil {
			kind := guessKind(se.Value)
			se.Kind = &kind
		}
		keys = append(keys, k.Value)
		entries[k.Value] = se
	}
	return keys, entries, nil
}

// Check parses every entry of styles file and reports all failures at once.
func Check(ctx context.Context, cmd *cli.Command) error {
	env, log, p, err := prepare(ctx, cmd, "check")
	if err != nil {
		return err
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		return errors.New("no styles file has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many files", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("unable to read styles file: %w", err)
	}
	keys, entries, err := readStyles(data)
	if err != nil {
		return err
	}

	var errs error
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		se := entries[key]
		e := entry{Key: key, Expr: se.Value}

		switch *se.Kind {
		case EntryKindNumber:
			var n css.NumberWithUnit
			if n, err = env.Parser.ParseNumberWithUnit(se.Value); err == nil {
				p.number(e, n)
			}
		case EntryKindGradient:
			var g css.Gradient
			if g, err = env.Parser.ParseGradient(se.Value); err == nil {
				p.gradient(e, g)
			}
		default:
			var c css.Color
			if c, err = env.Parser.ParseColor(se.Value); err == nil {
				p.color(e, c)
			}
		}
		if err != nil {
			errs = multierr.Append(errs, p.failure(e, err))
		}
	}
	if err := p.flush(); err != nil {
		errs = multierr.Append(errs, err)
	}

	failed := len(multierr.Errors(errs))
	log.Info("Styles checked", zap.String("file", fname), zap.Int("total", len(keys)), zap.Int("failed", failed))
	return errs
}
