package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/animate"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
	chartio "github.com/matzehuels/chartgeom/pkg/io"
)

// sampleOpts holds the flags of the sample command.
type sampleOpts struct {
	items    int     // items in the stagger table
	steps    int     // progress columns in the stagger table
	duration float64 // entrance duration in ms; 0 keeps the kind default
	stagger  float64 // per-item delay in ms; negative keeps the kind default
	easing   string  // easing curve name
	write    string  // write a starter document here instead of printing
}

// sampleCommand creates the sample command that shows how a kind's items
// enter, or writes a starter document for it.
func (c *CLI) sampleCommand() *cobra.Command {
	opts := sampleOpts{items: 6, steps: 5, stagger: -1, easing: animate.Linear.String()}

	cmd := &cobra.Command{
		Use:   "sample [kind]",
		Short: "Print a stagger table or write a starter chart document",
		Long: `Print how far each item of a chart kind has entered at evenly spaced
points of the animation, using the kind's default duration and stagger.

Later items start later: item i waits i*stagger before it grows, and every
item has settled once progress reaches 100%.

With --write the command instead writes a starter document for the kind with
example data. The extension (.json, .yaml, .yml, .toml) picks the encoding.

Kinds: bar (default), line, stacked-bar, stacked-area, heatmap, treemap.`,
		Example: `  chartgeom sample bar
  chartgeom sample treemap --items 10 --steps 11
  chartgeom sample heatmap --write heat.yaml`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := string(chart.KindBar)
			if len(args) == 1 {
				name = args[0]
			}
			kind, err := chart.ParseKind(name)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidKind, err, "sample")
			}
			if opts.write != "" {
				return writeStarter(kind, opts.write)
			}
			return printSampleTable(c.output(), kind, opts)
		},
	}

	cmd.Flags().IntVar(&opts.items, "items", opts.items, "number of items in the table")
	cmd.Flags().IntVar(&opts.steps, "steps", opts.steps, "number of progress columns")
	cmd.Flags().Float64Var(&opts.duration, "duration", 0, "entrance duration in ms (default: kind default)")
	cmd.Flags().Float64Var(&opts.stagger, "stagger", opts.stagger, "per-item delay in ms (default: kind default)")
	cmd.Flags().StringVar(&opts.easing, "easing", opts.easing, "easing curve: linear, ease-out")
	cmd.Flags().StringVarP(&opts.write, "write", "w", "", "write a starter document to this path")

	return cmd
}

// timing resolves the animation timing for kind from the flags.
func (o sampleOpts) timing(kind chart.Kind) (animate.Timing, error) {
	if o.items < 1 || o.steps < 2 {
		return animate.Timing{}, errors.New(errors.ErrCodeInvalidInput, "need at least 1 item and 2 steps (got %d and %d)", o.items, o.steps)
	}
	easing, err := animate.ParseEasing(o.easing)
	if err != nil {
		return animate.Timing{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "easing")
	}
	t := animate.Timing{
		Duration: kind.DefaultDuration(),
		Stagger:  kind.DefaultStagger(),
		Easing:   easing,
	}
	if o.duration > 0 {
		t.Duration = time.Duration(o.duration * float64(time.Millisecond))
	}
	if o.stagger >= 0 {
		t.Stagger = time.Duration(o.stagger * float64(time.Millisecond))
	}
	return t, nil
}

// sampleRows returns, per item, the percentage of its target shown at each
// of steps evenly spaced progress values.
func sampleRows(t animate.Timing, items, steps int) [][]float64 {
	rows := make([][]float64, items)
	for i := range rows {
		rows[i] = make([]float64, steps)
		for s := range steps {
			p := float64(s) / float64(steps-1)
			rows[i][s] = 100 * t.Fraction(p, i)
		}
	}
	return rows
}

// printSampleTable renders the stagger table for kind.
func printSampleTable(w io.Writer, kind chart.Kind, opts sampleOpts) error {
	t, err := opts.timing(kind)
	if err != nil {
		return err
	}
	values := sampleRows(t, opts.items, opts.steps)

	headers := []string{"Item", "Delay"}
	for s := range opts.steps {
		headers = append(headers, fmt.Sprintf("%.0f%%", 100*float64(s)/float64(opts.steps-1)))
	}
	rows := make([][]string, len(values))
	for i, v := range values {
		delay := time.Duration(i) * t.Stagger
		row := []string{strconv.Itoa(i), delay.String()}
		for _, pct := range v {
			row = append(row, strconv.FormatFloat(pct, 'f', 0, 64))
		}
		rows[i] = row
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleTableHeader
			case col < 2:
				return StyleDim
			case values[row][col-2] >= 100:
				return StyleSuccess
			case values[row][col-2] > 0:
				return StyleNumber
			}
			return StyleDim
		})

	fmt.Fprintln(w, StyleTitle.Render(string(kind))+" "+
		StyleDim.Render(fmt.Sprintf("duration %s · stagger %s · %s", t.Duration, t.Stagger, t.Easing)))
	fmt.Fprintln(w, tbl.Render())
	return nil
}

// writeStarter saves an example document for kind to path.
func writeStarter(kind chart.Kind, path string) error {
	if err := errors.ValidateDocumentPath(path); err != nil {
		return err
	}
	cfg := chart.DefaultConfig(kind)
	cfg.Title = starterTitles[kind]
	data := starterData(kind)
	if kind == chart.KindStackedBar || kind == chart.KindStackedArea {
		cfg.SeriesLabels = []string{"Online", "Retail", "Partners"}
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := chartio.Save(path, chartio.FromChart(kind, data, cfg)); err != nil {
		return err
	}
	printSuccess("Wrote %s starter document", kind)
	printFile(path)
	printNextStep("Render it", fmt.Sprintf("%s render %s -f svg,png", appName, path))
	return nil
}

var starterTitles = map[chart.Kind]string{
	chart.KindBar:         "Weekly signups",
	chart.KindLine:        "Monthly revenue",
	chart.KindStackedBar:  "Sales by channel",
	chart.KindStackedArea: "Sales by channel",
	chart.KindHeatmap:     "Requests by hour",
	chart.KindTreemap:     "Disk usage",
}

// starterData returns example data for kind.
func starterData(kind chart.Kind) chart.Data {
	switch kind {
	case chart.KindBar:
		return chart.Data{Categories: []chart.CategoricalPoint{
			{Label: "Mon", Value: 120}, {Label: "Tue", Value: 180}, {Label: "Wed", Value: 150},
			{Label: "Thu", Value: 210}, {Label: "Fri", Value: 90},
		}}
	case chart.KindLine:
		var pts []chart.SeriesPoint
		for i, y := range []float64{4200, 5100, 4800, 6300, 7100, 6900} {
			pts = append(pts, chart.SeriesPoint{X: chart.Num(float64(i + 1)), Y: y, Label: time.Month(i + 1).String()[:3]})
		}
		return chart.Data{Series: pts}
	case chart.KindStackedBar, chart.KindStackedArea:
		return chart.Data{Stacked: []chart.StackedPoint{
			{Label: "Q1", Values: []float64{30, 20, 10}},
			{Label: "Q2", Values: []float64{35, 25, 12}},
			{Label: "Q3", Values: []float64{28, 30, 15}},
			{Label: "Q4", Values: []float64{40, 32, 18}},
		}}
	case chart.KindHeatmap:
		var cells []chart.HeatCell
		for r, day := range []string{"Mon", "Tue", "Wed"} {
			for c, hour := range []float64{9, 12, 15, 18} {
				cells = append(cells, chart.HeatCell{Row: chart.Str(day), Col: chart.Num(hour), Value: float64((r+1)*(c+2)) * 10})
			}
		}
		return chart.Data{Cells: cells}
	case chart.KindTreemap:
		return chart.Data{Nodes: []chart.TreeNode{
			{Label: "videos", Value: 50, Children: []chart.TreeNode{{Label: "2024", Value: 30}, {Label: "2025", Value: 20}}},
			{Label: "photos", Value: 30},
			{Label: "documents", Value: 20},
		}}
	}
	return chart.Data{}
}
