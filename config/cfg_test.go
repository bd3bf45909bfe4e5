package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Output.Format != OutputFmtText {
		t.Errorf("Default output format = %v, want text", cfg.Output.Format)
	}
	if cfg.Palette.Colors["window"] == "" {
		t.Error("Default palette has no window color")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
palette:
  colors:
    window: "#202020"
    accent: "hsl(30, 90%, 50%)"
output:
  format: yaml
  precision: 4
  caret: false
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Output.Format != OutputFmtYaml {
		t.Errorf("Format = %v, want yaml", cfg.Output.Format)
	}
	if cfg.Output.Precision != 4 {
		t.Errorf("Precision = %d, want 4", cfg.Output.Precision)
	}
	if cfg.Output.Caret {
		t.Error("Expected Caret to be false")
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("Console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
	if got := cfg.Palette.Colors["window"]; got != "#202020" {
		t.Errorf("window = %q, want #202020", got)
	}
	if _, ok := cfg.Palette.Colors["accent"]; !ok {
		t.Error("accent color missing")
	}
	// defaults are kept for names not mentioned in the file
	if _, ok := cfg.Palette.Colors["highlight"]; !ok {
		t.Error("default highlight color lost after merge")
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"invalid yaml", "version: 1\npalette:\n  colors\n  invalid indent\n", ""},
		{"unknown field", "version: 1\nunknown_field: value\n", ""},
		{"wrong version", "version: 2\n", ""},
		{"bad format", "version: 1\noutput:\n  format: pdf\n", "OutputFmt"},
		{"bad precision", "version: 1\noutput:\n  precision: 40\n", "Precision"},
		{"bad color", "version: 1\npalette:\n  colors:\n    window: \"rgb(1, 2)\"\n", "style_color"},
		{"empty color", "version: 1\npalette:\n  colors:\n    window: \"\"\n", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfiguration(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}
	if strings.Contains(string(data), "{{") {
		t.Error("Prepare() left template unexpanded")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Palette: PaletteConfig{Colors: map[string]string{"window": "white"}},
		Output:  OutputConfig{Format: OutputFmtYaml, Precision: 3},
		Logging: LoggingConfig{ConsoleLogger: LoggerConfig{Level: "normal"}, FileLogger: LoggerConfig{Level: "none"}},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: yaml") {
		t.Errorf("Dump() did not marshal format as text:\n%s", data)
	}

	// Verify we can load it back
	cfg2 := &Config{}
	_, err = unmarshalConfig(data, cfg2, false)
	if err != nil {
		t.Errorf("Dumped config cannot be loaded: %v", err)
	}

	if cfg2.Output != cfg.Output {
		t.Errorf("Output mismatch after dump/load: got %+v, want %+v", cfg2.Output, cfg.Output)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		data := []byte(`version: 1`)
		cfg := &Config{}

		result, err := unmarshalConfig(data, cfg, false)
		if err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}

		if result == nil {
			t.Fatal("unmarshalConfig() returned nil")
		}

		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		data := []byte(`invalid: [yaml`)
		cfg := &Config{}

		_, err := unmarshalConfig(data, cfg, false)
		if err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestOutputFmt_String(t *testing.T) {
	tests := []struct {
		fmt      OutputFmt
		expected string
	}{
		{OutputFmtText, "text"},
		{OutputFmtYaml, "yaml"},
		{OutputFmt(99), "OutputFmt(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := tt.fmt.String()
			if got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLoggingConfig_Prepare(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "logs", "plotstyle.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "debug", Destination: dest, Mode: "overwrite"},
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		t.Fatal(err)
	}

	log, err := conf.Prepare(false)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hello from test")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file does not contain message:\n%s", data)
	}

	if _, err := (&LoggingConfig{FileLogger: LoggerConfig{Level: "normal"}}).Prepare(false); err == nil {
		t.Error("Expected error for file logger without destination")
	}
}
