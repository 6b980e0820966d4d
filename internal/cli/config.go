package cli

import (
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/render"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = appName + ".toml"

// Config mirrors the optional oscviz.toml file. Sections and fields may
// be omitted; anything absent keeps its built-in default.
type Config struct {
	Grid   GridSection   `toml:"grid"`
	Layout LayoutSection `toml:"layout"`
	Style  StyleSection  `toml:"style"`
	Show   ShowSection   `toml:"show"`
}

// GridSection sets the sampling grid dimensions.
type GridSection struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`
}

// LayoutSection sets the desired (pre-scale) block sizes.
type LayoutSection struct {
	CellSize        int `toml:"cell_size"`
	CameraWidth     int `toml:"camera_width"`
	CameraHeight    int `toml:"camera_height"`
	MaxCanvasHeight int `toml:"max_canvas_height"`
}

// StyleSection overrides renderer colors. Values are #RGB or #RRGGBB
// hex strings; empty fields keep the stock dark theme.
type StyleSection struct {
	Background        string `toml:"background"`
	Close             string `toml:"close"`
	CloseHover        string `toml:"close_hover"`
	CameraToggle      string `toml:"camera_toggle"`
	CameraToggleHover string `toml:"camera_toggle_hover"`
	GridToggle        string `toml:"grid_toggle"`
	GridToggleHover   string `toml:"grid_toggle_hover"`
	TileBorder        string `toml:"tile_border"`
}

// ShowSection configures the desktop window loop.
type ShowSection struct {
	FPS        int    `toml:"fps"`
	WindowName string `toml:"window_name"`
	Camera     bool   `toml:"camera"`
	Grid       bool   `toml:"grid"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() *Config {
	t := layout.DefaultTunables()
	return &Config{
		Grid: GridSection{Rows: 2, Cols: 3},
		Layout: LayoutSection{
			CellSize:        t.DesiredCellSize,
			CameraWidth:     t.DesiredCameraWidth,
			CameraHeight:    t.DesiredCameraHeight,
			MaxCanvasHeight: t.MaxCanvasHeight,
		},
		Show: ShowSection{
			FPS:        30,
			WindowName: vis.DefaultWindowName,
			Camera:     true,
			Grid:       true,
		},
	}
}

// loadConfig reads and parses a TOML config file. Fields absent from
// the document keep their defaults.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config %s", path)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config %s", path)
	}
	return cfg, nil
}

// resolveConfig loads the config for a command. An explicit path must
// exist; the default file is optional.
func resolveConfig(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return defaultConfig(), nil
		}
		path = defaultConfigFile
	}
	return loadConfig(path)
}

// gridConfig returns the grid dimensions from the [grid] section.
func (c *Config) gridConfig() grid.Config {
	return grid.Config{Rows: c.Grid.Rows, Cols: c.Grid.Cols}
}

// layoutOptions translates the [layout] section into engine options.
func (c *Config) layoutOptions() []layout.Option {
	return []layout.Option{
		layout.WithCellSize(c.Layout.CellSize),
		layout.WithCameraSize(c.Layout.CameraWidth, c.Layout.CameraHeight),
		layout.WithMaxCanvasHeight(c.Layout.MaxCanvasHeight),
	}
}

// renderOptions translates the [style] section into renderer options.
func (c *Config) renderOptions() ([]render.Option, error) {
	style := render.DefaultStyle()
	overrides := []struct {
		hex string
		dst *color.RGBA
	}{
		{c.Style.Background, &style.Background},
		{c.Style.Close, &style.CloseFill},
		{c.Style.CloseHover, &style.CloseHover},
		{c.Style.CameraToggle, &style.CameraToggleFill},
		{c.Style.CameraToggleHover, &style.CameraToggleHover},
		{c.Style.GridToggle, &style.GridToggleFill},
		{c.Style.GridToggleHover, &style.GridToggleHover},
		{c.Style.TileBorder, &style.TileBorder},
	}

	for _, o := range overrides {
		if o.hex == "" {
			continue
		}
		parsed, err := parseHexColor(o.hex)
		if err != nil {
			return nil, err
		}
		*o.dst = parsed
	}

	return []render.Option{render.WithStyle(style)}, nil
}

// parseHexColor converts a #RGB or #RRGGBB string to an opaque RGBA.
func parseHexColor(s string) (color.RGBA, error) {
	if err := errors.ValidateHexColor(s); err != nil {
		return color.RGBA{}, err
	}

	parsed, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid hex color %q", s)
	}

	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
