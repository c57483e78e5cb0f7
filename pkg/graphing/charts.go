package graphing

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderHTMLPage writes every series as a line chart on a single static HTML
// page in dir.
func renderHTMLPage(dir string, series []*Series) error {
	page := components.NewPage()
	page.PageTitle = "Run Metrics"

	for _, s := range series {
		page.AddCharts(createLineChart(s))
	}

	path := filepath.Join(dir, "metrics.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart page: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}

func createLineChart(s *Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: formatName(s.Name)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: s.YLabel}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)

	xLabels := make([]string, len(s.Timestamps))
	data := make([]opts.LineData, len(s.Values))
	for i, ts := range s.Timestamps {
		xLabels[i] = time.UnixMilli(ts).Format("15:04:05.000")
		data[i] = opts.LineData{Value: s.Values[i]}
	}

	line.SetXAxis(xLabels).AddSeries("", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
	)
	return line
}
