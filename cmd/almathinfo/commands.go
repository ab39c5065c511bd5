package main

import (
	"fmt"
	"io"
	"math/cmplx"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/aldebaran/libalmath/collisions"
	"github.com/aldebaran/libalmath/core"
	"github.com/aldebaran/libalmath/dubins"
	"github.com/aldebaran/libalmath/interpolation"
	"github.com/aldebaran/libalmath/polynomial"
	"github.com/aldebaran/libalmath/tools"
	"github.com/aldebaran/libalmath/types"
)

// writeTable prints a header, a dash row and the rows aligned on tabs.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	dashes := make([]string, len(header))
	for i, h := range header {
		dashes[i] = strings.Repeat("-", len(h))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(dashes, "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(r, "\t")); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func f4(v float64) string { return fmt.Sprintf("%.4f", v) }

func hull(cfg Config) []types.Position2D {
	h := collisions.ConvexHull(cfg.Hull.positions())
	if cfg.Hull.MinAngle > 0 {
		h = collisions.SimplifyConvexHull(h, cfg.Hull.MinAngle)
	}
	return h
}

func runHull(w io.Writer, cfg Config, log *zap.Logger) error {
	h := hull(cfg)
	log.Debug("convex hull", zap.Int("points", len(cfg.Hull.Points)), zap.Int("vertices", len(h)))
	rows := make([][]string, len(h))
	for i, p := range h {
		rows[i] = []string{fmt.Sprint(i), f4(p.X), f4(p.Y)}
	}
	return writeTable(w, []string{"Vertex", "X", "Y"}, rows)
}

func runDubins(w io.Writer, cfg Config, log *zap.Logger) error {
	c, err := dubins.New(cfg.Dubins.target(), cfg.Dubins.Radius)
	if err != nil {
		return err
	}
	log.Debug("dubins path", zap.String("kind", string(c.Kind)), zap.Float64("length", c.Length()))
	names := [3]string{"first arc end", "straight end", "target"}
	rows := make([][]string, 0, len(c.Checkpoints)+1)
	for i, p := range c.Checkpoints {
		rows = append(rows, []string{names[i], f4(p.X), f4(p.Y), f4(p.Theta)})
	}
	if err := writeTable(w, []string{"Checkpoint", "X", "Y", "Theta"}, rows); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\nkind %s, length %.4f\n", c.Kind, c.Length())
	return err
}

func runRoots(w io.Writer, cfg Config, log *zap.Logger) error {
	coeff := cfg.Roots.Coefficients
	roots, err := polynomial.Roots(coeff)
	if err != nil {
		return err
	}
	log.Debug("polynomial roots", zap.Int("degree", len(coeff)-1),
		zap.Float64("residual", polynomial.MaxResidual(coeff, roots)))
	rows := make([][]string, len(roots))
	for i, r := range roots {
		res := polynomial.Eval(coeff, r)
		rows[i] = []string{fmt.Sprint(i), f4(real(r)), f4(imag(r)), fmt.Sprintf("%.2e", cmplx.Abs(res))}
	}
	return writeTable(w, []string{"Root", "Re", "Im", "|p(x)|"}, rows)
}

type sample struct {
	t float64
	types.PositionAndVelocity
}

func interpSamples(cfg Config, log *zap.Logger) ([]sample, error) {
	a := interpolation.NewArticular(core.WithLogger(log))
	if err := a.Init(cfg.Interp.Times, cfg.Interp.Points, cfg.Interp.Period); err != nil {
		return nil, err
	}
	all, err := a.All(cfg.Interp.Period)
	if err != nil {
		return nil, err
	}
	out := make([]sample, len(all))
	for k, qv := range all {
		out[k] = sample{t: cfg.Interp.Times[0] + float64(k+1)*cfg.Interp.Period, PositionAndVelocity: qv}
	}
	return out, nil
}

func runInterp(w io.Writer, cfg Config, log *zap.Logger) error {
	samples, err := interpSamples(cfg, log)
	if err != nil {
		return err
	}
	rows := make([][]string, len(samples))
	for i, s := range samples {
		rows[i] = []string{f4(s.t), f4(s.Q), f4(s.DQ)}
	}
	return writeTable(w, []string{"Time", "Q", "DQ"}, rows)
}

func runTransform(w io.Writer, cfg Config, log *zap.Logger) error {
	h := tools.TransformFromPosition6D(cfg.Transform.position6D())
	v := tools.TransformLogarithm(h)
	q := tools.QuaternionFromTransform(h)
	log.Debug("transform", zap.Float64("determinant", h.Determinant()))

	rows := [][]string{
		{"row 1", f4(h.R11), f4(h.R12), f4(h.R13), f4(h.R14)},
		{"row 2", f4(h.R21), f4(h.R22), f4(h.R23), f4(h.R24)},
		{"row 3", f4(h.R31), f4(h.R32), f4(h.R33), f4(h.R34)},
	}
	if err := writeTable(w, []string{"Transform", "C1", "C2", "C3", "C4"}, rows); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nlog        %s %s %s %s %s %s\n",
		f4(v.XD), f4(v.YD), f4(v.ZD), f4(v.WXD), f4(v.WYD), f4(v.WZD)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "quaternion %s %s %s %s\n", f4(q.W), f4(q.X), f4(q.Y), f4(q.Z))
	return err
}
