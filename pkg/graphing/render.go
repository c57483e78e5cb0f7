package graphing

import (
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	defaultWidth  = 12 * vg.Inch
	defaultHeight = 4 * vg.Inch
)

// renderPNGs writes one PNG line chart per series into dir.
func renderPNGs(dir string, series []*Series) error {
	for _, s := range series {
		if err := renderPNG(dir, s); err != nil {
			return err
		}
	}
	return nil
}

func renderPNG(dir string, s *Series) error {
	p := plot.New()
	p.Title.Text = formatName(s.Name)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = s.YLabel

	pts := make(plotter.XYs, len(s.Values))
	base := s.Timestamps[0]
	for i, v := range s.Values {
		pts[i] = plotter.XY{
			X: float64(s.Timestamps[i]-base) / 1000.0,
			Y: v,
		}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p.Save(defaultWidth, defaultHeight, filepath.Join(dir, s.Name+".png"))
}
