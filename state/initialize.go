package state

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"plotstyle/css"
	"plotstyle/palette"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:  time.Now(),
		Parser: css.NewParser(nil),
	}
}

// PrepareParser builds palette from configuration and creates parser which
// resolves semantic color names against it.
func (e *LocalEnv) PrepareParser() error {
	if e.Cfg == nil {
		return errors.New("configuration is not loaded")
	}

	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}

	// palette values themselves are parsed without palette
	pal, err := palette.FromConfig(css.NewParser(log), e.Cfg.Palette.Colors)
	if err != nil {
		return fmt.Errorf("unable to build palette: %w", err)
	}
	e.Palette = pal
	e.Parser = css.NewParser(log, css.WithPalette(pal))

	log.Debug("Parser prepared", zap.Strings("palette", pal.Names()))
	return nil
}
