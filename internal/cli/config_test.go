package cli

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oscviz.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Grid.Rows != 2 || cfg.Grid.Cols != 3 {
		t.Errorf("grid = %dx%d, want 2x3", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Layout.CellSize != 150 {
		t.Errorf("cell size = %d, want 150", cfg.Layout.CellSize)
	}
	if cfg.Show.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.Show.FPS)
	}
	if cfg.Show.WindowName != vis.DefaultWindowName {
		t.Errorf("window name = %q, want %q", cfg.Show.WindowName, vis.DefaultWindowName)
	}
	if !cfg.Show.Camera || !cfg.Show.Grid {
		t.Errorf("camera/grid = %v/%v, want both true", cfg.Show.Camera, cfg.Show.Grid)
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := writeConfigFile(t, `
[grid]
rows = 4
cols = 5

[show]
camera = false
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Grid.Rows != 4 || cfg.Grid.Cols != 5 {
		t.Errorf("grid = %dx%d, want 4x5", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Show.Camera {
		t.Error("camera should be disabled")
	}

	// Untouched sections keep their defaults.
	if cfg.Layout.CellSize != 150 {
		t.Errorf("cell size = %d, want default 150", cfg.Layout.CellSize)
	}
	if !cfg.Show.Grid {
		t.Error("grid should keep its default true")
	}
	if cfg.Show.FPS != 30 {
		t.Errorf("fps = %d, want default 30", cfg.Show.FPS)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig {
		t.Errorf("code = %q, want %q", code, errors.ErrCodeInvalidConfig)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfigFile(t, "[grid\nrows = ")

	_, err := loadConfig(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig {
		t.Errorf("code = %q, want %q", code, errors.ErrCodeInvalidConfig)
	}
}

func TestResolveConfigExplicitPath(t *testing.T) {
	path := writeConfigFile(t, "[grid]\nrows = 7\ncols = 7\n")

	cfg, err := resolveConfig(path)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Grid.Rows != 7 {
		t.Errorf("rows = %d, want 7", cfg.Grid.Rows)
	}

	if _, err := resolveConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("explicit missing path should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{name: "long form", input: "#c83c3c", want: color.RGBA{R: 200, G: 60, B: 60, A: 255}},
		{name: "short form", input: "#f00", want: color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{name: "uppercase", input: "#FFFFFF", want: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{name: "missing hash", input: "c83c3c", wantErr: true},
		{name: "named color", input: "red", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseHexColor(%q) succeeded, want error", tt.input)
				}
				if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig {
					t.Errorf("code = %q, want %q", code, errors.ErrCodeInvalidConfig)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHexColor(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderOptionsInvalidColor(t *testing.T) {
	cfg := defaultConfig()
	cfg.Style.Background = "not-a-color"

	if _, err := cfg.renderOptions(); err == nil {
		t.Fatal("expected error for invalid style color")
	}
}

func TestRenderOptionsDefaults(t *testing.T) {
	cfg := defaultConfig()

	opts, err := cfg.renderOptions()
	if err != nil {
		t.Fatalf("renderOptions: %v", err)
	}
	if len(opts) != 1 {
		t.Fatalf("got %d options, want 1", len(opts))
	}
}
