package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/geom"
	"github.com/matzehuels/chartgeom/pkg/pipeline"
	"github.com/matzehuels/chartgeom/pkg/render/sink"
)

// layoutCommand creates the layout command for inspecting computed geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		asJSON   bool
		roleName string
	)
	opts := renderOpts{progress: -1}

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Print the shapes computed for a chart document",
		Long: `Print the shapes computed for a chart document.

The layout command runs the layout engine on a chart document and prints
one row per shape: its type, role, geometry and paint. With --json the
output is the same document 'render -f json' writes.

--progress prints an intermediate frame of the entrance animation instead
of the settled chart.`,
		Example: `  chartgeom layout sales.yaml
  chartgeom layout sales.yaml --role bar --progress 0.5
  chartgeom layout tree.toml --json > tree.layout.json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, geom.Role(roleName), asJSON)
		},
	}

	addChartFlags(cmd, &opts)
	cmd.Flags().Float64Var(&opts.progress, "progress", opts.progress, "print the animation frame at this progress in [0,1]")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	cmd.Flags().StringVar(&roleName, "role", "", "only print shapes with this role (bar, tile, cell, ...)")

	return cmd
}

// runLayout loads the document, computes the layout and prints the frame.
func (c *CLI) runLayout(ctx context.Context, input string, ro renderOpts, role geom.Role, asJSON bool) error {
	runner := c.newRunner()
	opts := ro.pipelineOptions(input)
	if err := opts.ValidateForLoad(); err != nil {
		return err
	}
	progress := 1.0
	if opts.Progress != nil {
		if err := pipeline.ValidateProgress(*opts.Progress); err != nil {
			return err
		}
		progress = *opts.Progress
	}

	doc, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}
	l, err := runner.Layout(ctx, doc, opts)
	if err != nil {
		return err
	}

	w := c.output()
	if asJSON {
		data, err := sink.RenderJSON(l, sink.WithJSONProgress(progress), sink.WithJSONSource(input))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	shapes := filterRole(l.Frame(progress), role)
	printShapeTable(w, shapes)
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("  %s · %d of %d shapes · %gx%g · progress %s",
		l.Kind, len(shapes), len(l.Shapes), l.Width, l.Height, strconv.FormatFloat(progress, 'f', -1, 64))))
	return nil
}

// output returns the writer command results go to.
func (c *CLI) output() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// filterRole keeps the shapes with the given role. An empty role keeps all.
func filterRole(shapes []geom.Shape, role geom.Role) []geom.Shape {
	if role == "" {
		return shapes
	}
	var out []geom.Shape
	for _, s := range shapes {
		if chart.RoleOf(s) == role {
			out = append(out, s)
		}
	}
	return out
}

// =============================================================================
// Shape Table
// =============================================================================

var shapeHeaders = []string{"#", "Type", "Role", "X", "Y", "W", "H", "Paint", "Text"}

// shapeRow returns the table cells for one shape.
func shapeRow(i int, s geom.Shape) []string {
	row := []string{strconv.Itoa(i), s.Kind().String(), string(chart.RoleOf(s)), "", "", "", "", "", ""}
	switch v := s.(type) {
	case geom.Rect:
		row[3], row[4], row[5], row[6] = coord(v.X), coord(v.Y), coord(v.W), coord(v.H)
		row[7] = swatch(v.Fill.Hex())
	case geom.Path:
		if len(v.Commands) > 0 {
			first := v.Commands[0]
			row[3], row[4] = coord(first.X), coord(first.Y)
		}
		switch {
		case v.Fill != nil:
			row[7] = swatch(v.Fill.Hex())
		case v.Stroke != nil:
			row[7] = swatch(v.Stroke.Hex())
		default:
			row[7] = swatch("")
		}
		row[8] = fmt.Sprintf("%d commands", len(v.Commands))
	case geom.Label:
		row[3], row[4] = coord(v.X), coord(v.Y)
		row[7] = swatch(v.Color.Hex())
		row[8] = v.Text
	}
	return row
}

// printShapeTable renders shapes as a bordered table.
func printShapeTable(w io.Writer, shapes []geom.Shape) {
	rows := make([][]string, len(shapes))
	for i, s := range shapes {
		rows[i] = shapeRow(i, s)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(shapeHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleTableHeader
			case col == 0:
				return StyleDim
			case col >= 3 && col <= 6:
				return StyleNumber
			}
			return StyleValue
		})

	fmt.Fprintln(w, t.Render())
}

// coord formats a coordinate with at most two decimals.
func coord(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
