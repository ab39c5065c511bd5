package main

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aldebaran/libalmath/dubins"
)

type series struct {
	name    string
	pts     plotter.XYs
	scatter bool
}

// chart is the data of one PNG, built before any drawing happens so it can
// be inspected without a renderer.
type chart struct {
	title, xLabel, yLabel string
	series                []series
}

var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
}

func (c chart) plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.title
	p.X.Label.Text = c.xLabel
	p.Y.Label.Text = c.yLabel
	p.Legend.Top = true

	for i, s := range c.series {
		col := palette[i%len(palette)]
		if s.scatter {
			sc, err := plotter.NewScatter(s.pts)
			if err != nil {
				return nil, fmt.Errorf("series %s: %w", s.name, err)
			}
			sc.GlyphStyle.Color = col
			p.Add(sc)
			p.Legend.Add(s.name, sc)
			continue
		}
		line, err := plotter.NewLine(s.pts)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.name, err)
		}
		line.Width = vg.Points(1)
		line.Color = col
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	return p, nil
}

func (c chart) save(file string) error {
	p, err := c.plot()
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("save %s: %w", file, err)
	}
	return nil
}

func hullChart(cfg Config) (chart, error) {
	in := make(plotter.XYs, len(cfg.Hull.Points))
	for i, p := range cfg.Hull.Points {
		in[i] = plotter.XY{X: p[0], Y: p[1]}
	}
	h := hull(cfg)
	out := make(plotter.XYs, len(h))
	for i, p := range h {
		out[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return chart{
		title:  "Convex hull",
		xLabel: "x (m)",
		yLabel: "y (m)",
		series: []series{{name: "points", pts: in, scatter: true}, {name: "hull", pts: out}},
	}, nil
}

func dubinsChart(cfg Config) (chart, error) {
	c, err := dubins.New(cfg.Dubins.target(), cfg.Dubins.Radius)
	if err != nil {
		return chart{}, err
	}
	path, err := c.Sample(cfg.Dubins.Step)
	if err != nil {
		return chart{}, err
	}
	pts := make(plotter.XYs, len(path))
	for i, p := range path {
		pts[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	var checkpoints plotter.XYs
	for _, p := range c.Checkpoints {
		checkpoints = append(checkpoints, plotter.XY{X: p.X, Y: p.Y})
	}
	return chart{
		title:  fmt.Sprintf("Dubins %s path, length %.3f m", c.Kind, c.Length()),
		xLabel: "x (m)",
		yLabel: "y (m)",
		series: []series{{name: "path", pts: pts}, {name: "checkpoints", pts: checkpoints, scatter: true}},
	}, nil
}

func interpChart(cfg Config) (chart, error) {
	samples, err := interpSamples(cfg, zap.NewNop())
	if err != nil {
		return chart{}, err
	}
	q := make(plotter.XYs, len(samples))
	dq := make(plotter.XYs, len(samples))
	for i, s := range samples {
		q[i] = plotter.XY{X: s.t, Y: s.Q}
		dq[i] = plotter.XY{X: s.t, Y: s.DQ}
	}
	knots := make(plotter.XYs, len(cfg.Interp.Times))
	for i := range cfg.Interp.Times {
		knots[i] = plotter.XY{X: cfg.Interp.Times[i], Y: cfg.Interp.Points[i]}
	}
	return chart{
		title:  "Articular spline",
		xLabel: "t (s)",
		yLabel: "q, dq",
		series: []series{{name: "q", pts: q}, {name: "dq", pts: dq}, {name: "knots", pts: knots, scatter: true}},
	}, nil
}
