package experiments

import (
	"fmt"
	"os"
	"strconv"

	"pong/experiments/metrics"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// MaxChartPoints bounds the number of points drawn per curve.
const MaxChartPoints = 1000

// Curve is the moving average of contacts per training game for one agent.
type Curve struct {
	Name  string
	Games []int // Game number at the end of each window
	Mean  []float64
}

// LearningCurve averages contacts over a sliding window of training games
// and keeps at most MaxChartPoints evenly spaced points.
func LearningCurve(name string, records []metrics.GameRecord, window int) Curve {
	curve := Curve{Name: name}
	if len(records) == 0 {
		return curve
	}
	window = min(max(window, 1), len(records))

	contacts := make([]float64, len(records))
	for i, r := range records {
		contacts[i] = float64(r.Contacts)
	}
	sums := floats.CumSum(make([]float64, len(contacts)), contacts)

	points := len(records) - window + 1
	stride := max(1, (points+MaxChartPoints-1)/MaxChartPoints)
	for end := window - 1; end < len(records); end += stride {
		total := sums[end]
		if end >= window {
			total -= sums[end-window]
		}
		curve.Games = append(curve.Games, records[end].Game)
		curve.Mean = append(curve.Mean, total/float64(window))
	}
	return curve
}

// RenderHTML writes an interactive line chart of the curves.
func RenderHTML(path, title string, curves []Curve) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "mean contacts per training game",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "game"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "contacts"}),
	)

	longest := Curve{}
	for _, c := range curves {
		if len(c.Games) > len(longest.Games) {
			longest = c
		}
	}
	xs := make([]string, len(longest.Games))
	for i, g := range longest.Games {
		xs[i] = strconv.Itoa(g)
	}
	line.SetXAxis(xs)

	for _, c := range curves {
		items := make([]opts.LineData, 0, len(c.Mean))
		for _, v := range c.Mean {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(c.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// RenderPNG writes a static version of the same chart.
func RenderPNG(path, title string, curves []Curve) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "game"
	p.Y.Label.Text = "mean contacts"

	for i, c := range curves {
		pts := make(plotter.XYs, len(c.Mean))
		for j := range c.Mean {
			pts[j].X = float64(c.Games[j])
			pts[j].Y = c.Mean[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to plot curve %s: %w", c.Name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(c.Name, line)
	}

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
