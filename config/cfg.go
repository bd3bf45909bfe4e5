package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"plotstyle/css"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	PaletteConfig struct {
		// Semantic color name -> color expression
		Colors map[string]string `yaml:"colors" validate:"dive,keys,required,endkeys,required"`
	}

	OutputConfig struct {
		Format    OutputFmt `yaml:"format"`
		Precision int       `yaml:"precision" validate:"min=1,max=17"`
		Caret     bool      `yaml:"caret"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Palette PaletteConfig `yaml:"palette"`
		Output  OutputConfig  `yaml:"output"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

// checkConfig performs validation which cannot be expressed with tags.
func checkConfig(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	if !cfg.Output.Format.IsValid() {
		sl.ReportError(cfg.Output.Format, "Output.Format", "Format", "output_format", cfg.Output.Format.String())
	}
	// palette entries are parsed without palette, they cannot reference each other
	p := css.NewParser(nil)
	for name, expr := range cfg.Palette.Colors {
		if _, err := p.ParseColor(expr); err != nil {
			sl.ReportError(expr, "Palette.Colors["+name+"]", "Colors", "style_color", err.Error())
		}
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkConfig)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump returns actual configuration as yaml.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
