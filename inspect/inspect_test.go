package inspect

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	yaml "gopkg.in/yaml.v3"

	"plotstyle/config"
	"plotstyle/css"
	"plotstyle/state"
)

// setupTestEnv creates a test environment with default configuration and
// parser built from it
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller()))
	env.Cfg = cfg
	if err := env.PrepareParser(); err != nil {
		t.Fatalf("prepare parser: %v", err)
	}
	return ctx, env
}

// run executes action as if it was invoked from command line and returns
// what it printed.
func run(ctx context.Context, t *testing.T, action cli.ActionFunc, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := &cli.Command{
		Name:   "test",
		Writer: &out,
		Flags: append(OutputFlags(),
			&cli.BoolFlag{Name: "show"},
		),
		Action:         action,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	err := cmd.Run(ctx, append([]string{"test"}, args...))
	return out.String(), err
}

func TestNumber(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	out, err := run(ctx, t, Number, "12.5px", "50%")
	if err != nil {
		t.Fatalf("Number() error = %v", err)
	}
	want := "12.5px\tvalue=12.5 unit=\"px\" norm=12.5\n50%\tvalue=50 unit=\"%\" norm=0.5\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestNumber_NoArguments(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	if _, err := run(ctx, t, Number); err == nil {
		t.Error("Expected error without expressions")
	}
}

func TestColor(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"named", []string{"red"}, "red\t#ff0000ff rgba(1, 0, 0, 1)\n"},
		{"palette", []string{"window"}, "window\t#efefefff rgba(0.937255, 0.937255, 0.937255, 1)\n"},
		{"precision", []string{"--precision", "2", "window"}, "window\t#efefefff rgba(0.94, 0.94, 0.94, 1)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(ctx, t, Color, tt.args...)
			if err != nil {
				t.Fatalf("Color() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestColor_Errors(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	out, err := run(ctx, t, Color, "rgb(1, 2)", "blue", "nope")
	if err == nil {
		t.Fatal("Expected error")
	}
	// good expressions are still reported
	if !strings.HasPrefix(out, "blue\t") {
		t.Errorf("output = %q, want blue reported", out)
	}

	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), err)
	}
	if !css.IsKind(errs[0], css.ErrorKindWrongNumberOfArguments) {
		t.Errorf("first error = %v, want wrong number of arguments", errs[0])
	}
	if !css.IsKind(errs[1], css.ErrorKindUnconvertible) {
		t.Errorf("second error = %v, want unconvertible", errs[1])
	}
	if !strings.HasSuffix(errs[1].Error(), "\n\tnope\n\t^") {
		t.Errorf("caret context missing:\n%s", errs[1])
	}
}

func TestColor_NoCaret(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	_, err := run(ctx, t, Color, "--no-caret", "nope")
	if err == nil {
		t.Fatal("Expected error")
	}
	if strings.Contains(err.Error(), "^") {
		t.Errorf("caret reported although disabled: %v", err)
	}
}

func TestGradient(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	out, err := run(ctx, t, Gradient, "linear-gradient(to right, red, blue 80%)")
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	want := "linear-gradient(to right, red, blue 80%)\tfrom (0, 0.5) to (1, 0.5)\n\t0 #ff0000ff\n\t0.8 #0000ffff\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestGradient_Yaml(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	out, err := run(ctx, t, Gradient, "--format", "yaml", "NightFade")
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}

	var views []gradientView
	if err := yaml.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("output is not valid yaml: %v\n%s", err, out)
	}
	if len(views) != 1 {
		t.Fatalf("got %d results, want 1", len(views))
	}
	v := views[0]
	if v.Preset != "Night Fade" || v.Expr != "NightFade" {
		t.Errorf("view = %+v", v)
	}
	if v.Start != [2]float64{0.5, 1} || v.End != [2]float64{0.5, 0} {
		t.Errorf("direction = %v -> %v, want to top", v.Start, v.End)
	}
	if len(v.Stops) != 2 || v.Stops[0].Hex != "#a18cd1ff" {
		t.Errorf("stops = %+v", v.Stops)
	}
}

func TestBadFormat(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	if _, err := run(ctx, t, Number, "--format", "pdf", "1"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestPresets(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	out, err := run(ctx, t, Presets)
	if err != nil {
		t.Fatalf("Presets() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(css.Presets()) {
		t.Errorf("got %d names, want %d", len(lines), len(css.Presets()))
	}

	out, err = run(ctx, t, Presets, "--show", "--format", "yaml")
	if err != nil {
		t.Fatalf("Presets(--show) error = %v", err)
	}
	var views []gradientView
	if err := yaml.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	for _, v := range views {
		if v.Preset == "" || len(v.Stops) < 2 {
			t.Errorf("incomplete preset %+v", v)
		}
	}
}

func TestGuessKind(t *testing.T) {
	tests := []struct {
		expr string
		want EntryKind
	}{
		{"red", EntryKindColor},
		{"#fff", EntryKindColor},
		{"grey50", EntryKindColor},
		{"12px", EntryKindNumber},
		{"-0.5", EntryKindNumber},
		{"-", EntryKindColor},
		{"Linear-Gradient(red, blue)", EntryKindGradient},
		{"warm flame", EntryKindGradient},
		{"", EntryKindColor},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := guessKind(tt.expr); got != tt.want {
				t.Errorf("guessKind(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestReadStyles(t *testing.T) {
	keys, entries, err := readStyles([]byte(`
title: black
margin: {kind: number, value: 4px}
background:
  kind: gradient
  value: SunnyMorning
axis: "12"
`))
	if err != nil {
		t.Fatalf("readStyles() error = %v", err)
	}
	if strings.Join(keys, ",") != "title,margin,background,axis" {
		t.Errorf("keys = %v, want document order", keys)
	}

	want := map[string]EntryKind{
		"title":      EntryKindColor,
		"margin":     EntryKindNumber,
		"background": EntryKindGradient,
		"axis":       EntryKindNumber,
	}
	for k, kind := range want {
		if got := *entries[k].Kind; got != kind {
			t.Errorf("%s kind = %v, want %v", k, got, kind)
		}
	}
}

func TestReadStyles_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"sequence", "- red\n- blue\n"},
		{"bad kind", "title: {kind: shape, value: red}\n"},
		{"nested sequence", "title: [red]\n"},
		{"duplicate", "title: red\ntitle: blue\n"},
		{"invalid yaml", "title: [red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := readStyles([]byte(tt.data)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestCheck(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	fname := filepath.Join(t.TempDir(), "styles.yaml")
	data := `title: highlight
margin: {kind: number, value: 4px}
broken: "rgb(1, 2"
fill: "linear-gradient(45deg, red, nope)"
`
	if err := os.WriteFile(fname, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(ctx, t, Check, fname)
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(out, "title = highlight\t#308cc6ff") || !strings.Contains(out, "margin = 4px\tvalue=4") {
		t.Errorf("unexpected output:\n%s", out)
	}

	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), err)
	}
	var ee *exprError
	if !errors.As(errs[0], &ee) || ee.Key != "broken" {
		t.Errorf("first error = %v, want broken entry", errs[0])
	}
	if !strings.HasPrefix(errs[1].Error(), `entry "fill": `) {
		t.Errorf("second error = %v, want fill entry", errs[1])
	}
	if !css.IsKind(errs[1], css.ErrorKindUnconvertible) {
		t.Errorf("second error kind mismatch: %v", errs[1])
	}
}

func TestCheck_Errors(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	if _, err := run(ctx, t, Check); err == nil {
		t.Error("Expected error without file")
	}
	if _, err := run(ctx, t, Check, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	if _, err := run(ctx, t, Color, "red"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
