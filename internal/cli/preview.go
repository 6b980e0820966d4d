package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/input"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout"
)

// Preview styles
var (
	previewButtonStyle = lipgloss.NewStyle().Foreground(colorValue)
	previewHoverStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	previewHiddenStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

const (
	// previewFPS is the terminal redraw rate. Terminals do not need the
	// full window frame rate.
	previewFPS = 10

	// previewButtonRow is the terminal row the control row renders on.
	// Mouse hit-testing depends on the View layout staying in sync.
	previewButtonRow = 3
)

// frameMsg advances the preview animation.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/previewFPS, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// =============================================================================
// PreviewModel - Terminal visualizer preview
// =============================================================================

// buttonSpan is the clickable column range of one control-row button,
// mapped to its canvas rectangle.
type buttonSpan struct {
	start, end int
	target     layout.Bounds
}

// PreviewModel is the bubbletea model driving a headless visualizer.
// Key presses and terminal mouse clicks are translated into canvas
// pointer events, so the preview exercises the same hit-testing and
// state machine as the desktop window.
type PreviewModel struct {
	Vis    *vis.Visualizer
	Config grid.Config

	cells  []grid.Cell
	static bool
	start  time.Time
	now    float64
}

// NewPreviewModel creates a preview model. Snapshot cells stay fixed;
// without them the field animates.
func NewPreviewModel(v *vis.Visualizer, cfg grid.Config, snapshot []grid.Cell) PreviewModel {
	return PreviewModel{
		Vis:    v,
		Config: cfg,
		cells:  snapshot,
		static: snapshot != nil,
		start:  time.Now(),
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return frameTick()
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "c":
			m.pressButton(m.Vis.Geometry().ToggleCamera)
		case "g":
			m.pressButton(m.Vis.Geometry().ToggleGrid)
		case "x":
			m.pressButton(m.Vis.Geometry().Close)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case frameMsg:
		m.now = time.Since(m.start).Seconds()
		if !m.static {
			m.cells = grid.Synthesize(m.Config, m.now)
		}
		_ = m.Vis.Show(m.cells, nil)
		if m.Vis.ShouldClose() {
			return m, tea.Quit
		}
		return m, frameTick()
	}
	return m, nil
}

// pressButton synthesizes a canvas press at the center of a button.
func (m PreviewModel) pressButton(b layout.Bounds) {
	m.Vis.Enqueue(input.PointerDown(b.CenterX(), b.CenterY()))
}

// handleMouse maps terminal cells on the control row to canvas pointer
// events. Positions off the row clear any hover.
func (m PreviewModel) handleMouse(msg tea.MouseMsg) {
	_, spans := m.buttonRow()

	var target *layout.Bounds
	if msg.Y == previewButtonRow {
		for _, s := range spans {
			if msg.X >= s.start && msg.X <= s.end {
				b := s.target
				target = &b
				break
			}
		}
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if target != nil {
			m.Vis.Enqueue(input.PointerMove(target.CenterX(), target.CenterY()))
		} else {
			// Canvas origin lies above the control row, so this clears
			// hover without landing on a button.
			m.Vis.Enqueue(input.PointerMove(0, 0))
		}
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && target != nil {
			m.Vis.Enqueue(input.PointerDown(target.CenterX(), target.CenterY()))
		}
	}
}

// buttonRow renders the control row and returns the clickable span of
// each button in terminal columns.
func (m PreviewModel) buttonRow() (string, []buttonSpan) {
	st := m.Vis.State()
	geo := m.Vis.Geometry()

	camera := "Hide Camera"
	if !st.ShowCamera {
		camera = "Show Camera"
	}
	panel := "Hide Grid"
	if !st.ShowGrid {
		panel = "Show Grid"
	}

	buttons := []struct {
		label  string
		target layout.Bounds
	}{
		{"Close", geo.Close},
		{camera, geo.ToggleCamera},
		{panel, geo.ToggleGrid},
	}

	var b strings.Builder
	var spans []buttonSpan
	col := 0
	for i, btn := range buttons {
		if i > 0 {
			b.WriteString("  ")
			col += 2
		}
		text := "[ " + btn.label + " ]"
		style := previewButtonStyle
		if st.Pointer.Over(btn.target) {
			style = previewHoverStyle
		}
		spans = append(spans, buttonSpan{start: col, end: col + len(text) - 1, target: btn.target})
		b.WriteString(style.Render(text))
		col += len(text)
	}
	return b.String(), spans
}

// swatches renders the grid panel as rows of dominant-color blocks.
func (m PreviewModel) swatches() string {
	byPos := make(map[[2]int]grid.Cell, len(m.cells))
	for _, cl := range m.cells {
		byPos[[2]int{cl.Row, cl.Col}] = cl
	}

	var b strings.Builder
	for row := 0; row < m.Config.Rows; row++ {
		b.WriteString("  ")
		for col := 0; col < m.Config.Cols; col++ {
			cl, ok := byPos[[2]int{row, col}]
			if !ok {
				b.WriteString(previewHiddenStyle.Render("···"))
				b.WriteString(" ")
				continue
			}
			r, g, bb := cl.Dominant.Bytes()
			hex := fmt.Sprintf("#%02x%02x%02x", r, g, bb)
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   "))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m PreviewModel) View() string {
	st := m.Vis.State()
	geo := m.Vis.Geometry()

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Visualizer Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("c camera  g grid  x close  q quit  (buttons are clickable)"))
	b.WriteString("\n\n")

	row, _ := m.buttonRow()
	b.WriteString(row)
	b.WriteString("\n\n")

	if st.ShowCamera {
		size := fmt.Sprintf("%dx%d", geo.Sizing.CameraWidth, geo.Sizing.CameraHeight)
		b.WriteString("camera  " + StyleNumber.Render(size) + "\n")
	} else {
		b.WriteString(previewHiddenStyle.Render("camera  hidden") + "\n")
	}
	b.WriteString("\n")

	if st.ShowGrid {
		b.WriteString(m.swatches())
	} else {
		b.WriteString(previewHiddenStyle.Render("grid    hidden") + "\n")
	}

	mode := StyleSuccess.Render("live")
	if m.static {
		mode = previewHiddenStyle.Render("static")
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("canvas %dx%d px  t=%.1fs  ", geo.CanvasWidth, geo.CanvasHeight, m.now)) + mode)
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	snapshot   string
	rows       int
	cols       int
	gridFlags  bool
	hideCamera bool
	hideGrid   bool
	config     string
}

// previewCommand creates the preview command for the terminal UI.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{rows: 2, cols: 3}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the visualizer in the terminal",
		Long: `Preview the visualizer in the terminal.

The preview command runs the full interaction pipeline against a
text rendition of the frame: the control row, the camera block, and
the grid panel as colored swatches. No window is opened, which makes
it usable over SSH and in CI.

Clicks on the control row and the c/g/x keys synthesize the same
canvas pointer events the desktop window would deliver.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.gridFlags = cmd.Flags().Changed("rows") || cmd.Flags().Changed("cols")
			return c.runPreview(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.snapshot, "snapshot", "s", "", "snapshot file to display")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "grid columns")
	cmd.Flags().BoolVar(&opts.hideCamera, "hide-camera", false, "start with the camera block hidden")
	cmd.Flags().BoolVar(&opts.hideGrid, "hide-grid", false, "start with the grid panel hidden")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default: oscviz.toml if present)")

	return cmd
}

// runPreview builds the headless visualizer and runs the tea program.
func (c *CLI) runPreview(opts previewOpts) error {
	cfg, err := resolveConfig(opts.config)
	if err != nil {
		return err
	}

	gcfg := cfg.gridConfig()
	if opts.gridFlags {
		gcfg = grid.Config{Rows: opts.rows, Cols: opts.cols}
	}

	var snapCells []grid.Cell
	if opts.snapshot != "" {
		snap, err := grid.ReadSnapshotFile(opts.snapshot)
		if err != nil {
			return err
		}
		gcfg = snap.Config()
		snapCells = snap.Cells
	}

	renderOptions, err := cfg.renderOptions()
	if err != nil {
		return err
	}

	v, err := vis.New(gcfg,
		vis.WithLogger(c.Logger),
		vis.WithShowCamera(cfg.Show.Camera && !opts.hideCamera),
		vis.WithShowGrid(cfg.Show.Grid && !opts.hideGrid),
		vis.WithLayoutOptions(cfg.layoutOptions()...),
		vis.WithRenderOptions(renderOptions...),
	)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewPreviewModel(v, gcfg, snapCells),
		tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
