// Package charts renders the analytics series to PNG images for clients
// that want server-side charts instead of the JSON payloads.
package charts

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"ledgerd/internal/core"
)

// ErrNotEnoughData is returned when a series has too few points to plot.
var ErrNotEnoughData = errors.New("not enough data points to render chart")

// RenderTrendPNG draws the trend series as a line chart.
func RenderTrendPNG(w io.Writer, data core.TrendData) error {
	if len(data.Labels) < 2 {
		return ErrNotEnoughData
	}

	xs := make([]float64, len(data.Labels))
	ticks := make([]chart.Tick, len(data.Labels))
	for i, label := range data.Labels {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	series := make([]chart.Series, 0, len(data.Datasets))
	for _, ds := range data.Datasets {
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ds.Data,
			Style: chart.Style{
				StrokeColor: parseRGBA(ds.BorderColor),
				FillColor:   parseRGBA(ds.BackgroundColor),
			},
		})
	}

	graph := chart.Chart{
		Title:  "Transaction Trend",
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%.2f", vf)
				}
				return ""
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

// RenderCategoryPNG draws the category breakdown as a bar chart, one bar per
// emitted category in its display color.
func RenderCategoryPNG(w io.Writer, data core.CategoryData) error {
	if len(data.Labels) == 0 || len(data.Datasets) == 0 {
		return ErrNotEnoughData
	}

	ds := data.Datasets[0]
	bars := make([]chart.Value, len(data.Labels))
	for i, label := range data.Labels {
		bars[i] = chart.Value{
			Label: label,
			Value: ds.Data[i],
			Style: chart.Style{FillColor: parseRGBA(ds.BackgroundColor[i])},
		}
	}

	barChart := chart.BarChart{
		Title:  "Spending by Category",
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		BarWidth: 40,
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%.2f", vf)
				}
				return ""
			},
		},
		Bars: bars,
	}

	return barChart.Render(chart.PNG, w)
}

// parseRGBA converts an "rgba(r, g, b, a)" display color into a drawing
// color, falling back to gray for anything it cannot parse.
func parseRGBA(s string) drawing.Color {
	gray := drawing.Color{R: 156, G: 163, B: 175, A: 255}

	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "rgba(") || !strings.HasSuffix(s, ")") {
		return gray
	}
	parts := strings.Split(s[len("rgba(") : len(s)-1], ",")
	if len(parts) != 4 {
		return gray
	}
	channel := func(p string) (uint8, bool) {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return 0, false
		}
		return uint8(n), true
	}
	r, ok1 := channel(parts[0])
	g, ok2 := channel(parts[1])
	b, ok3 := channel(parts[2])
	alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if !ok1 || !ok2 || !ok3 || err != nil || alpha < 0 || alpha > 1 {
		return gray
	}
	return drawing.Color{R: r, G: g, B: b, A: uint8(alpha * 255)}
}
