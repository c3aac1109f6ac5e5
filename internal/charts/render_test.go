package charts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"ledgerd/internal/core"
)

func TestParseRGBA(t *testing.T) {
	cases := []struct {
		in   string
		want drawing.Color
	}{
		{"rgba(16, 185, 129, 0.7)", drawing.Color{R: 16, G: 185, B: 129, A: 178}},
		{"rgba(0,0,0,1)", drawing.Color{R: 0, G: 0, B: 0, A: 255}},
		{"#ff0000", drawing.Color{R: 156, G: 163, B: 175, A: 255}},
		{"rgba(300, 0, 0, 1)", drawing.Color{R: 156, G: 163, B: 175, A: 255}},
	}
	for i, tc := range cases {
		if got := parseRGBA(tc.in); got != tc.want {
			t.Fatalf("case %d: got %+v, want %+v", i, got, tc.want)
		}
	}
}

func TestRenderTrendPNG(t *testing.T) {
	data := core.TrendData{
		Labels: []string{"2024-05-01", "2024-05-02", "2024-05-03"},
		Datasets: []core.TrendDataset{
			{
				Label:           "Debits",
				Data:            []float64{10, 0, 25.5},
				BackgroundColor: core.DebitFillColor,
				BorderColor:     core.DebitBorderColor,
			},
		},
	}
	var buf bytes.Buffer
	if err := RenderTrendPNG(&buf, data); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("not a png")
	}
}

func TestRenderTrendPNGNotEnoughData(t *testing.T) {
	data := core.TrendData{Labels: []string{"2024-05-01"}}
	if err := RenderTrendPNG(&bytes.Buffer{}, data); !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("expected ErrNotEnoughData, got %v", err)
	}
}

func TestRenderCategoryPNG(t *testing.T) {
	data := core.CategoryData{
		Labels: []string{"Transport", "Health"},
		Datasets: []core.CategoryDataset{{
			Data:            []float64{35, 20},
			BackgroundColor: []string{core.CategoryColor(core.Debit, "Transport"), core.CategoryColor(core.Debit, "Health")},
		}},
	}
	var buf bytes.Buffer
	if err := RenderCategoryPNG(&buf, data); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty output")
	}

	if err := RenderCategoryPNG(&bytes.Buffer{}, core.CategoryData{}); !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("expected ErrNotEnoughData for empty breakdown")
	}
}
