package standingsservice

import (
	"bytes"
	"math"
	"strconv"

	standingsdomain "github.com/Black-And-White-Club/darts-league/app/modules/standings/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors used by rendered charts.
type ChartPalette struct {
	Background drawing.Color
	Text       drawing.Color
	Bar        drawing.Color
	BarStroke  drawing.Color
}

// DefaultPalette is a dark board-green theme with chalk text.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("12261c"),
	Text:       drawing.ColorFromHex("f2efe6"),
	Bar:        drawing.ColorFromHex("c8102e"),
	BarStroke:  drawing.ColorFromHex("e8c547"),
}

const (
	chartWidth  = 1024
	chartHeight = 480
)

// RenderLeaderboardChart produces a PNG bar chart with one bar per entry in
// rank order. An empty leaderboard renders a placeholder image.
func RenderLeaderboardChart(title string, entries []standingsdomain.LeaderboardEntry, palette ChartPalette) ([]byte, error) {
	if len(entries) == 0 {
		return renderNoDataPlaceholder(palette, "No games recorded yet")
	}

	bars := make([]chart.Value, len(entries))
	lo, hi := 0.0, 0.0
	for i, e := range entries {
		bars[i] = chart.Value{
			Label: strconv.Itoa(e.Rank) + ". " + e.PlayerName,
			Value: e.Value,
			Style: chart.Style{
				FillColor:   palette.Bar,
				StrokeColor: palette.BarStroke,
				StrokeWidth: 1,
			},
		}
		lo = math.Min(lo, e.Value)
		hi = math.Max(hi, e.Value)
	}
	// go-chart cannot plot a zero-height range.
	if hi == lo {
		hi = lo + 1
	}

	graph := chart.BarChart{
		Title: title,
		TitleStyle: chart.Style{
			FontColor: palette.Text,
		},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   60,
		BarSpacing: 30,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.Text,
			FontSize:  8,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.Text,
			},
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws msg centered on a blank canvas. It talks to
// the renderer directly because go-chart refuses to render a chart without
// series.
func renderNoDataPlaceholder(palette ChartPalette, msg string) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(palette.Text)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
