package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/animate"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

const (
	defaultPreviewCols = 72
	maxPreviewCols     = 160
	previewFPS         = 30
	pathSamples        = 8 // points sampled per path segment when rasterizing
)

// previewCommand creates the preview command that plays a chart's entrance
// animation in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		frames int
		cols   int
	)
	opts := renderOpts{progress: -1}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Play a chart's entrance animation in the terminal",
		Long: `Play a chart's entrance animation in the terminal.

Shapes are drawn as colored character cells, scaled to the terminal width.
Press r or space to replay the animation and q to quit.

With --frames N the preview is not interactive: N evenly spaced frames from
progress 0 to 1 are printed one after another.`,
		Example: `  chartgeom preview sales.yaml
  chartgeom preview tree.toml --frames 5 --cols 60`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], opts, frames, cols)
		},
	}

	addChartFlags(cmd, &opts)
	cmd.Flags().IntVar(&frames, "frames", 0, "print this many frames instead of playing interactively")
	cmd.Flags().IntVar(&cols, "cols", 0, "canvas width in terminal columns (default: terminal width)")

	return cmd
}

// runPreview lays the chart out and either plays or prints it.
func (c *CLI) runPreview(ctx context.Context, input string, ro renderOpts, frames, cols int) error {
	runner := c.newRunner()
	opts := ro.pipelineOptions(input)
	if err := opts.ValidateForLoad(); err != nil {
		return err
	}
	doc, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}
	l, err := runner.Layout(ctx, doc, opts)
	if err != nil {
		return err
	}

	title := string(l.Kind)
	if doc.Config.Title != "" {
		title = doc.Config.Title
	}

	if frames > 0 {
		return printFrames(c.output(), l, title, frames, cols)
	}

	m := newPreviewModel(title, l, time.Now())
	if cols > 0 {
		m.cols, m.fixedCols = min(cols, maxPreviewCols), true
	}
	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// printFrames writes n frames spread evenly over the animation.
func printFrames(w io.Writer, l chart.Layout, title string, n, cols int) error {
	if cols <= 0 {
		cols = defaultPreviewCols
	}
	cols = min(cols, maxPreviewCols)
	for i := range n {
		p := 1.0
		if n > 1 {
			p = float64(i) / float64(n-1)
		}
		cv := rasterize(l.Frame(p), l.Width, l.Height, cols)
		if _, err := fmt.Fprintf(w, "%s %s\n%s\n%s\n\n",
			StyleTitle.Render(title), StyleDim.Render(fmt.Sprintf("frame %d/%d", i+1, n)),
			cv.String(), progressBar(p, cols)); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// previewModel - Animated terminal preview
// =============================================================================

// frameMsg carries the host time of one animation tick.
type frameMsg time.Time

// previewModel is the bubbletea model driving a layout with its clock.
type previewModel struct {
	title     string
	layout    chart.Layout
	clock     *animate.Clock
	progress  float64
	done      bool
	cols      int
	fixedCols bool
}

// newPreviewModel creates a model whose animation starts at now.
func newPreviewModel(title string, l chart.Layout, now time.Time) previewModel {
	clock := l.Clock()
	clock.Restart(now)
	return previewModel{
		title:    title,
		layout:   l,
		clock:    clock,
		progress: clock.Progress(now),
		cols:     defaultPreviewCols,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/previewFPS, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m previewModel) Init() tea.Cmd {
	return tick()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		m.progress = m.clock.Progress(now)
		if m.clock.Done(now) {
			m.done = true
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r", " ":
			m.clock.Restart(time.Now())
			m.progress = 0
			if m.done {
				m.done = false
				return m, tick()
			}
		}
	case tea.WindowSizeMsg:
		if !m.fixedCols && msg.Width > 4 {
			m.cols = min(msg.Width-2, maxPreviewCols)
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · %d shapes", m.layout.Kind, len(m.layout.Shapes))))
	b.WriteString("\n\n")
	b.WriteString(rasterize(m.layout.Frame(m.progress), m.layout.Width, m.layout.Height, m.cols).String())
	b.WriteString("\n")
	b.WriteString(progressBar(m.progress, m.cols))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r: replay  q: quit"))
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// Terminal Raster
// =============================================================================

// canvas is a grid of terminal cells. Each cell is twice as tall as it is
// wide, so rows are halved relative to the chart's aspect ratio.
type canvas struct {
	cols, rows int
	sx, sy     float64
	cells      []geom.Color
	set        []bool
}

func newCanvas(width, height float64, cols int) *canvas {
	cols = max(cols, 1)
	rows := 1
	if width > 0 && height > 0 {
		rows = max(int(math.Round(float64(cols)*height/width/2)), 1)
	}
	cv := &canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]geom.Color, cols*rows),
		set:   make([]bool, cols*rows),
	}
	if width > 0 {
		cv.sx = float64(cols) / width
	}
	if height > 0 {
		cv.sy = float64(rows) / height
	}
	return cv
}

// rasterize paints the data shapes of a frame onto a canvas cols wide.
// Grid lines, backgrounds and text are left out: they do not survive the
// resolution.
func rasterize(shapes []geom.Shape, width, height float64, cols int) *canvas {
	cv := newCanvas(width, height, cols)
	for _, s := range shapes {
		switch v := s.(type) {
		case geom.Rect:
			if v.Role == geom.RoleBackground || v.Opacity <= 0 {
				continue
			}
			cv.fillRect(v.Bounds(), v.Fill)
		case geom.Path:
			if v.Role == geom.RoleGrid || v.Opacity <= 0 {
				continue
			}
			if v.Fill != nil {
				cv.fillPolygons(flatten(v.Commands), *v.Fill)
			}
			if v.Stroke != nil {
				cv.strokePolylines(flatten(v.Commands), *v.Stroke)
			}
		}
	}
	return cv
}

func (cv *canvas) put(col, row int, c geom.Color) {
	if col < 0 || row < 0 || col >= cv.cols || row >= cv.rows {
		return
	}
	cv.cells[row*cv.cols+col] = c
	cv.set[row*cv.cols+col] = true
}

// fillRect sets every cell whose center lies inside b.
func (cv *canvas) fillRect(b geom.Bounds, c geom.Color) {
	if b.W <= 0 || b.H <= 0 || cv.sx == 0 || cv.sy == 0 {
		return
	}
	for row := 0; row < cv.rows; row++ {
		y := (float64(row) + 0.5) / cv.sy
		if y < b.Y || y >= b.Bottom() {
			continue
		}
		for col := 0; col < cv.cols; col++ {
			x := (float64(col) + 0.5) / cv.sx
			if x >= b.X && x < b.Right() {
				cv.put(col, row, c)
			}
		}
	}
}

// fillPolygons sets every cell whose center lies inside any polygon,
// using the even-odd rule.
func (cv *canvas) fillPolygons(polys [][]geom.Point, c geom.Color) {
	if cv.sx == 0 || cv.sy == 0 {
		return
	}
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		for row := 0; row < cv.rows; row++ {
			y := (float64(row) + 0.5) / cv.sy
			for col := 0; col < cv.cols; col++ {
				if inside(poly, (float64(col)+0.5)/cv.sx, y) {
					cv.put(col, row, c)
				}
			}
		}
	}
}

// strokePolylines sets the cells the polylines pass through.
func (cv *canvas) strokePolylines(lines [][]geom.Point, c geom.Color) {
	for _, line := range lines {
		for i, p := range line {
			cv.put(int(p.X*cv.sx), int(p.Y*cv.sy), c)
			if i == 0 {
				continue
			}
			// Fill gaps between sample points on long segments.
			prev := line[i-1]
			steps := int(math.Max(math.Abs(p.X-prev.X)*cv.sx, math.Abs(p.Y-prev.Y)*cv.sy))
			for k := 1; k < steps; k++ {
				t := float64(k) / float64(steps)
				cv.put(int((prev.X+(p.X-prev.X)*t)*cv.sx), int((prev.Y+(p.Y-prev.Y)*t)*cv.sy), c)
			}
		}
	}
}

// flatten converts path commands into point lists, one per subpath.
// Curves are sampled at pathSamples points.
func flatten(cmds geom.Commands) [][]geom.Point {
	var (
		out [][]geom.Point
		cur []geom.Point
	)
	for i, cmd := range cmds {
		switch cmd.Op {
		case geom.OpMove:
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = []geom.Point{{X: cmd.X, Y: cmd.Y}}
		case geom.OpLine:
			cur = append(cur, geom.Point{X: cmd.X, Y: cmd.Y})
		case geom.OpQuad:
			for k := 1; k <= pathSamples; k++ {
				cur = append(cur, cmds.At(i, float64(k)/pathSamples))
			}
		case geom.OpClose:
			if len(cur) > 0 {
				cur = append(cur, cur[0])
			}
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// inside reports whether (x, y) lies inside poly by ray casting.
func inside(poly []geom.Point, x, y float64) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// String renders the canvas with one colored block per set cell. Runs of
// the same color share one style.
func (cv *canvas) String() string {
	var b strings.Builder
	for row := 0; row < cv.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cv.cols; {
			i := row*cv.cols + col
			end := col + 1
			for end < cv.cols && cv.set[row*cv.cols+end] == cv.set[i] && cv.cells[row*cv.cols+end] == cv.cells[i] {
				end++
			}
			if cv.set[i] {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(cv.cells[i].Hex()))
				b.WriteString(style.Render(strings.Repeat("█", end-col)))
			} else {
				b.WriteString(strings.Repeat(" ", end-col))
			}
			col = end
		}
	}
	return b.String()
}

// filled returns how many cells are painted.
func (cv *canvas) filled() int {
	n := 0
	for _, s := range cv.set {
		if s {
			n++
		}
	}
	return n
}

// progressBar renders p as a bar width columns wide followed by a percentage.
func progressBar(p float64, width int) string {
	width = max(width-6, 1)
	n := int(math.Round(p * float64(width)))
	n = min(max(n, 0), width)
	return StyleHighlight.Render(strings.Repeat("━", n)) +
		StyleDim.Render(strings.Repeat("─", width-n)) +
		StyleValue.Render(fmt.Sprintf(" %3.0f%%", p*100))
}
