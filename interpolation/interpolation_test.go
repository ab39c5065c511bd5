package interpolation

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aldebaran/libalmath/core"
	"github.com/aldebaran/libalmath/types"
)

const tol = 1e-9

var approx = cmpopts.EquateApprox(0, 1e-12)

func observedLogger() (core.Option, *observer.ObservedLogs) {
	obs, logs := observer.New(zapcore.WarnLevel)
	return core.WithLogger(zap.New(obs)), logs
}

func TestFinalTime(t *testing.T) {
	for _, tc := range []struct {
		period, t, want float64
	}{
		{0.02, 1.005, 1.0},
		{0.02, 1.011, 1.02},
		{0.02, 0.001, 0.02},
		{0, 0.3, 0.3},
	} {
		if got := FinalTime(tc.period, tc.t); math.Abs(got-tc.want) > tol {
			t.Fatalf("FinalTime(%v, %v) = %v, want %v", tc.period, tc.t, got, tc.want)
		}
	}
}

func TestJointFinalTime(t *testing.T) {
	for _, tc := range []struct {
		name                   string
		pInit, pFinal, vMaxAbs float64
		want                   float64
	}{
		{"forward", 0, 1, 1, 1.5},
		{"backward", 1, 0, 1, 1.5},
		{"faster", 0, 3, 2, 2.25},
	} {
		got, err := JointFinalTime(tc.pInit, tc.pFinal, 0, 0, tc.vMaxAbs, 0.01)
		if err != nil {
			t.Fatalf("%s: JointFinalTime() error = %v", tc.name, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: JointFinalTime() = %v, want %v", tc.name, got, tc.want)
		}
	}

	if _, err := JointFinalTime(0, 1, 0, 0, 0, 0.01); !errors.Is(err, ErrInvalidVelocity) {
		t.Fatalf("JointFinalTime() error = %v, want %v", err, ErrInvalidVelocity)
	}
}

func TestJointFinalTimeReachesVelocityLimit(t *testing.T) {
	const vMax = 1.5
	tf, err := JointFinalTime(0, 2, 0.5, 0, vMax, 0)
	if err != nil {
		t.Fatalf("JointFinalTime() error = %v", err)
	}

	a := NewArticular()
	if err := a.InitSegment(0, tf, 0, 2, 0.5, 0, 0); err != nil {
		t.Fatalf("InitSegment() error = %v", err)
	}
	peak := 0.0
	for k := range 2001 {
		peak = math.Max(peak, math.Abs(a.At(tf*float64(k)/2000).DQ))
	}
	if math.Abs(peak-vMax) > 1e-3 {
		t.Fatalf("peak velocity = %v, want %v", peak, vMax)
	}
}

func TestCartesianFinalTime(t *testing.T) {
	start := types.TransformIdentity()
	for _, tc := range []struct {
		name string
		end  types.Transform
		want float64
	}{
		{"translation", types.TransformFromPosition(0.3, 0, 0), 2},
		{"rotation", types.TransformFromRotZ(math.Pi / 2), 0.25},
	} {
		got, err := CartesianFinalTime(start, tc.end, 1, 0.01)
		if err != nil {
			t.Fatalf("%s: CartesianFinalTime() error = %v", tc.name, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: CartesianFinalTime() = %v, want %v", tc.name, got, tc.want)
		}
	}

	if _, err := CartesianFinalTime(start, start, 0, 0.01); !errors.Is(err, ErrInvalidVelocity) {
		t.Fatalf("CartesianFinalTime() error = %v, want %v", err, ErrInvalidVelocity)
	}
}

func TestLinear(t *testing.T) {
	for _, tc := range []struct {
		name                                  string
		duration, start, end, max, sampleTime float64
		want                                  []float64
	}{
		{"duration", 1, 0, 1, 1, 0.25, []float64{0.25, 0.5, 0.75, 1}},
		{"limited", 1, 0, 1, 0.1, 0.25, []float64{0.1, 0.2, 0.3, 0.4}},
		{"fraction of limit", -0.5, 0, -0.5, 0.2, 0.01, []float64{-0.1, -0.2, -0.3, -0.4, -0.5}},
		{"shorter than one sample", 0.001, 0, 1, 10, 0.01, []float64{1}},
		{"no motion", -1, 2, 2, 1, 0.01, []float64{2}},
	} {
		got, err := Linear(tc.duration, tc.start, tc.end, tc.max, tc.sampleTime)
		if err != nil {
			t.Fatalf("%s: Linear() error = %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.want, got, approx); diff != "" {
			t.Fatalf("%s: Linear() mismatch (-want +got):\n%s", tc.name, diff)
		}
	}

	if _, err := Linear(1, 0, 1, 1, 0); !errors.Is(err, ErrInvalidSampleTime) {
		t.Fatalf("Linear() error = %v, want %v", err, ErrInvalidSampleTime)
	}
	if _, err := Linear(0, 0, 1, 1, 0.01); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("Linear() error = %v, want %v", err, ErrInvalidDuration)
	}
}

func TestLinearLogsClamping(t *testing.T) {
	opt, logs := observedLogger()
	if _, err := Linear(1, 0, 1, 0.1, 0.25, opt); err != nil {
		t.Fatalf("Linear() error = %v", err)
	}
	if got := logs.FilterMessage("velocity limit reached").Len(); got != 1 {
		t.Fatalf("velocity warnings = %d, want 1", got)
	}
}

func TestLinearSamples(t *testing.T) {
	if diff := cmp.Diff([]float64{0.5, 1, 1.5, 2}, LinearSamples(4, 0, 2), approx); diff != "" {
		t.Fatalf("LinearSamples() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{3}, LinearSamples(0, 1, 3), approx); diff != "" {
		t.Fatalf("LinearSamples(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.25, 0.5}, LinearSamplesLimited(2, 0, 2, 0.25), approx); diff != "" {
		t.Fatalf("LinearSamplesLimited() mismatch (-want +got):\n%s", diff)
	}
}

func TestLinearVector(t *testing.T) {
	got, err := LinearVector(0.5, []float64{0, 1}, []float64{1, 0}, 0.25)
	if err != nil {
		t.Fatalf("LinearVector() error = %v", err)
	}
	want := [][]float64{{0.5, 0.5}, {1, 0}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("LinearVector() mismatch (-want +got):\n%s", diff)
	}

	if _, err := LinearVector(1, []float64{0}, []float64{0, 1}, 0.1); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("LinearVector() error = %v, want %v", err, ErrSizeMismatch)
	}
}

func TestLinearVectorLimitedSlowestComponentWins(t *testing.T) {
	got, err := LinearVectorLimited(-1, []float64{0, 0}, []float64{1, 0.5}, []float64{0.1, 0.1}, 0.01)
	if err != nil {
		t.Fatalf("LinearVectorLimited() error = %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if diff := cmp.Diff([]float64{1, 0.5}, got[len(got)-1], approx); diff != "" {
		t.Fatalf("last row mismatch (-want +got):\n%s", diff)
	}
}

func TestSmooth(t *testing.T) {
	got, err := Smooth(1, 0, 2, 10, 0.01)
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}
	if math.Abs(got[len(got)-1]-2) > tol {
		t.Fatalf("last = %v, want 2", got[len(got)-1])
	}
	if math.Abs(got[49]-1) > tol {
		t.Fatalf("midpoint = %v, want 1", got[49])
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("not monotone at %d: %v < %v", i, got[i], got[i-1])
		}
	}
}

func TestSmoothVelocityLimit(t *testing.T) {
	opt, logs := observedLogger()
	got, err := Smooth(1, 0, 2, 0.01, 0.01, opt)
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	if want := 8.0 / 15.0; math.Abs(got[len(got)-1]-want) > 1e-9 {
		t.Fatalf("last = %v, want %v", got[len(got)-1], want)
	}
	if logs.Len() == 0 {
		t.Fatal("expected a velocity limit warning")
	}

	got, err = Smooth(-1, 0, 1, 0.01, 0.01)
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	if len(got) != 188 {
		t.Fatalf("len = %d, want 188", len(got))
	}
}

func TestSmoothSamplesAndVector(t *testing.T) {
	got, err := SmoothSamples(4, 1, 3, 0.1)
	if err != nil {
		t.Fatalf("SmoothSamples() error = %v", err)
	}
	if math.Abs(got[3]-3) > tol || math.Abs(got[1]-2) > tol {
		t.Fatalf("SmoothSamples() = %v", got)
	}

	rows, err := SmoothVector(0.1, []float64{0, 1}, []float64{1, -1}, 0.05)
	if err != nil {
		t.Fatalf("SmoothVector() error = %v", err)
	}
	if diff := cmp.Diff([]float64{1, -1}, rows[len(rows)-1], cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("SmoothVector() last row mismatch (-want +got):\n%s", diff)
	}

	rows, err = SmoothVectorLimited(-1, []float64{0, 0}, []float64{1, 2}, []float64{0.01, 0.01}, 0.01)
	if err != nil {
		t.Fatalf("SmoothVectorLimited() error = %v", err)
	}
	if len(rows) != 375 {
		t.Fatalf("len = %d, want 375", len(rows))
	}

	if _, err := SmoothVector(1, []float64{0}, nil, 0.01); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("SmoothVector() error = %v, want %v", err, ErrSizeMismatch)
	}
}

func TestArticularPassesThroughKnots(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	points := []float64{0, 1, 0, 2}
	a := NewArticular()
	if err := a.InitWithVelocities(times, points, 0.5, -0.25, false, 0.01); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	for i, ti := range times {
		if got := a.At(ti).Q; math.Abs(got-points[i]) > 1e-9 {
			t.Fatalf("At(%v).Q = %v, want %v", ti, got, points[i])
		}
	}
	if got := a.At(0).DQ; math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("initial velocity = %v, want 0.5", got)
	}
	if got := a.At(3).DQ; got != -0.25 {
		t.Fatalf("final velocity = %v, want -0.25", got)
	}
	if got := a.At(2.99999).DQ; math.Abs(got+0.25) > 1e-3 {
		t.Fatalf("velocity before end = %v, want -0.25", got)
	}

	for _, knot := range times[1:3] {
		before, after := a.At(knot-1e-4), a.At(knot+1e-4)
		if math.Abs(before.DQ-after.DQ) > 1e-2 {
			t.Fatalf("velocity jump at %v: %v vs %v", knot, before.DQ, after.DQ)
		}
	}
	if got := a.NumTimesCalled(); got != 11 {
		t.Fatalf("NumTimesCalled() = %d, want 11", got)
	}
}

func TestArticularSegment(t *testing.T) {
	a := NewArticular()
	if err := a.InitSegment(0, 2, 0, 1, 0, 0, 0.01); err != nil {
		t.Fatalf("InitSegment() error = %v", err)
	}
	got := a.At(1)
	want := types.PositionAndVelocity{Q: 0.5, DQ: 0.75}
	if !got.IsNear(want, 1e-9) {
		t.Fatalf("At(1) = %+v, want %+v", got, want)
	}
}

func TestArticularAll(t *testing.T) {
	a := NewArticular()
	if err := a.Init([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 2}, 0.01); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	got, err := a.All(0.5)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	if last := got[len(got)-1]; !last.IsNear(types.PositionAndVelocity{Q: 2}, 1e-9) {
		t.Fatalf("last = %+v", last)
	}
	if !a.IsFinished(1) {
		t.Fatal("IsFinished() = false after All")
	}
	a.SetFinished(false)
	if a.IsFinished(1) {
		t.Fatal("IsFinished() = true after SetFinished(false)")
	}
	if _, err := a.All(0); !errors.Is(err, ErrInvalidSampleTime) {
		t.Fatalf("All(0) error = %v, want %v", err, ErrInvalidSampleTime)
	}
}

func TestArticularInitErrors(t *testing.T) {
	a := NewArticular()
	for _, tc := range []struct {
		name          string
		times, points []float64
		want          error
	}{
		{"too few", []float64{0}, []float64{0}, ErrTooFewPoints},
		{"mismatch", []float64{0, 1, 2}, []float64{0, 1}, ErrSizeMismatch},
		{"not increasing", []float64{0, 1, 1}, []float64{0, 1, 2}, ErrInvalidTimes},
	} {
		if err := a.Init(tc.times, tc.points, 0.01); !errors.Is(err, tc.want) {
			t.Fatalf("%s: Init() error = %v, want %v", tc.name, err, tc.want)
		}
	}
	if err := a.InitWithVelocityLimit(0, 1, 0, 1, 0, 0, 0, true, 0.01); !errors.Is(err, ErrInvalidVelocity) {
		t.Fatalf("InitWithVelocityLimit() error = %v, want %v", err, ErrInvalidVelocity)
	}
	if err := a.InitWithVelocityLimit(1, 1, 0, 1, 0, 0, 1, true, 0.01); !errors.Is(err, ErrInvalidTimes) {
		t.Fatalf("InitWithVelocityLimit() error = %v, want %v", err, ErrInvalidTimes)
	}
}

func TestArticularVelocityLimit(t *testing.T) {
	opt, logs := observedLogger()
	a := NewArticular(opt)
	if err := a.InitWithVelocityLimit(0, 1, 0, 3, 0, 0, 2, true, 0); err != nil {
		t.Fatalf("InitWithVelocityLimit() error = %v", err)
	}
	if got := a.FinalTime(); math.Abs(got-2.25) > 1e-9 {
		t.Fatalf("FinalTime() = %v, want 2.25", got)
	}
	if got := a.At(2.25 / 2).DQ; math.Abs(got-2) > 1e-9 {
		t.Fatalf("peak velocity = %v, want 2", got)
	}

	if err := a.InitWithVelocityLimit(0, 1, 0, 3, 0, 0, 2, false, 0); err != nil {
		t.Fatalf("InitWithVelocityLimit() error = %v", err)
	}
	if got := a.At(1).Q; math.Abs(got-4.0/3.0) > 1e-9 {
		t.Fatalf("final position = %v, want 4/3", got)
	}
	if logs.Len() != 2 {
		t.Fatalf("warnings = %d, want 2", logs.Len())
	}
}

func TestCartesianPassesThroughKeys(t *testing.T) {
	poses := []types.Transform{
		types.TransformIdentity(),
		types.TransformFromPosition(1, 0, 0),
		types.TransformFromPosition(1, 1, 0).Mul(types.TransformFromRotZ(0.5)),
	}
	times := []float64{0, 1, 2}
	c := NewCartesian()
	if err := c.Init(times, poses, 0.01); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	for i, ti := range times {
		if got := c.At(ti).H; !got.IsNear(poses[i], 1e-9) {
			t.Fatalf("At(%v).H = %+v, want %+v", ti, got, poses[i])
		}
	}
	if v := c.At(0).V; !v.IsNear(types.Velocity6D{}, 1e-9) {
		t.Fatalf("initial twist = %+v, want zero", v)
	}
}

func TestCartesianTwistIsInWorldFrame(t *testing.T) {
	start := types.TransformFromRotZ(math.Pi / 2)
	end := start.Mul(types.TransformFromPosition(0.3, 0, 0))
	c := NewCartesian()
	if err := c.Init([]float64{0, 1}, []types.Transform{start, end}, 0.01); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	got := c.At(0.5)
	if !got.H.IsNear(types.TransformFromRotZ(math.Pi/2).Mul(types.TransformFromPosition(0.15, 0, 0)), 1e-9) {
		t.Fatalf("At(0.5).H = %+v", got.H)
	}
	want := types.Velocity6D{YD: 0.45}
	if !got.V.IsNear(want, 1e-5) {
		t.Fatalf("At(0.5).V = %+v, want %+v", got.V, want)
	}
}

func TestCartesianAll(t *testing.T) {
	end := types.TransformFromPosition(0, 0, 1)
	c := NewCartesian()
	if err := c.InitPositions([]float64{0, 1}, []types.Position6D{{}, {Z: 1}}, types.Velocity6D{}, types.Velocity6D{}, 0.01); err != nil {
		t.Fatalf("InitPositions() error = %v", err)
	}
	got, err := c.All(0.25)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if !got[3].H.IsNear(end, 1e-9) {
		t.Fatalf("last pose = %+v, want %+v", got[3].H, end)
	}
	if c.NumTimesCalled() != 4 || !c.IsFinished(0.5) {
		t.Fatalf("NumTimesCalled() = %d, IsFinished = %v", c.NumTimesCalled(), c.IsFinished(0.5))
	}

	if err := c.Init([]float64{0, 1}, []types.Transform{end}, 0.01); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Init() error = %v, want %v", err, ErrSizeMismatch)
	}
}

func TestCartesianClampsOutsideKeyRange(t *testing.T) {
	end := types.TransformFromPosition(0, 0, 1)
	c := NewCartesian()
	if err := c.InitPositions([]float64{0, 1}, []types.Position6D{{}, {Z: 1}}, types.Velocity6D{}, types.Velocity6D{}, 0.01); err != nil {
		t.Fatalf("InitPositions() error = %v", err)
	}
	for _, tc := range []struct {
		t    float64
		want types.Transform
	}{
		{-1, types.TransformIdentity()},
		{1, end},
		{2, end},
		{10, end},
	} {
		got := c.At(tc.t)
		if !got.H.IsNear(tc.want, 1e-9) {
			t.Fatalf("At(%v).H = %+v, want %+v", tc.t, got.H, tc.want)
		}
		if !got.V.IsNear(types.Velocity6D{}, 1e-9) {
			t.Fatalf("At(%v).V = %+v, want zero", tc.t, got.V)
		}
	}
}

func TestBezier(t *testing.T) {
	for _, tc := range []struct {
		name           string
		p0, p1, p2, p3 types.Position2D
		sampleTime     float64
		want           []float64
	}{
		{"straight", types.Position2D{}, types.Position2D{X: 1.0 / 3, Y: 1.0 / 3}, types.Position2D{X: 2.0 / 3, Y: 2.0 / 3}, types.Position2D{X: 1, Y: 1}, 0.25, []float64{0.25, 0.5, 0.75, 1}},
		{"ease in out", types.Position2D{}, types.Position2D{X: 0.5}, types.Position2D{X: 0.5, Y: 1}, types.Position2D{X: 1, Y: 1}, 0.5, []float64{0.5, 1}},
		{"offset start", types.Position2D{X: 2, Y: 1}, types.Position2D{X: 2, Y: 1}, types.Position2D{X: 3, Y: 1}, types.Position2D{X: 3, Y: 1}, 0.4, []float64{1, 1, 1}},
	} {
		got, err := Bezier(tc.p0, tc.p1, tc.p2, tc.p3, tc.sampleTime)
		if err != nil {
			t.Fatalf("%s: Bezier() error = %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
			t.Fatalf("%s: Bezier() mismatch (-want +got):\n%s", tc.name, diff)
		}
	}

	p3 := types.Position2D{X: 1, Y: 1}
	if _, err := Bezier(types.Position2D{}, types.Position2D{X: -0.1}, p3, p3, 0.1); !errors.Is(err, ErrNonMonotonicCurve) {
		t.Fatalf("Bezier() error = %v, want %v", err, ErrNonMonotonicCurve)
	}
	if _, err := Bezier(types.Position2D{}, types.Position2D{}, p3, types.Position2D{Y: 1}, 0.1); !errors.Is(err, ErrNonMonotonicCurve) {
		t.Fatalf("Bezier() error = %v, want %v", err, ErrNonMonotonicCurve)
	}
	if _, err := Bezier(types.Position2D{}, types.Position2D{}, p3, p3, 0); !errors.Is(err, ErrInvalidSampleTime) {
		t.Fatalf("Bezier() error = %v, want %v", err, ErrInvalidSampleTime)
	}
}

func TestBezierIsMonotonicBetweenFlatKeys(t *testing.T) {
	got, err := Bezier(types.Position2D{}, types.Position2D{X: 0.4}, types.Position2D{X: 0.6, Y: 1}, types.Position2D{X: 1, Y: 1}, 0.01)
	if err != nil {
		t.Fatalf("Bezier() error = %v", err)
	}
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}
	prev := 0.0
	for i, v := range got {
		if v < prev-tol || v > 1+tol {
			t.Fatalf("sample %d = %v after %v", i, v, prev)
		}
		prev = v
	}
}

func TestBezierKeys(t *testing.T) {
	linear := Tangent{Type: TangentLinear}
	autoRight := Tangent{Type: TangentBezierAuto, Offset: types.Position2D{X: 1.0 / 3}}
	autoLeft := Tangent{Type: TangentBezierAuto, Offset: types.Position2D{X: -1.0 / 3}}
	for _, tc := range []struct {
		name       string
		from, to   Key
		start      float64
		limits     BezierLimits
		sampleTime float64
		want       []float64
	}{
		{"linear", Key{Value: 0, Right: linear}, Key{Value: 1, Left: linear}, 0, BezierLimits{}, 0.25, []float64{0.25, 0.5, 0.75, 1}},
		{"constant", Key{Value: 2, Right: Tangent{Type: TangentConstant}}, Key{Value: 3, Left: linear}, 2, BezierLimits{}, 0.25, []float64{2, 2, 2, 2}},
		{"auto", Key{Value: 0, Right: autoRight}, Key{Value: 1, Left: autoLeft}, 0, BezierLimits{}, 0.5, []float64{0.5, 1}},
		{"rounded sample count", Key{Value: 0, Right: linear}, Key{Value: 1, Left: linear}, 0, BezierLimits{}, 0.3, []float64{0.3, 0.6, 1}},
		{"explicit", Key{Value: 0, Right: Tangent{Type: TangentBezier, Offset: types.Position2D{X: 1.0 / 3, Y: 1.0 / 3}}},
			Key{Value: 1, Left: Tangent{Type: TangentBezier, Offset: types.Position2D{X: -1.0 / 3, Y: -1.0 / 3}}}, 0, BezierLimits{}, 0.5, []float64{0.5, 1}},
		{"max change", Key{Value: 0, Right: linear}, Key{Value: 1, Left: linear}, 0, BezierLimits{MaxChange: 0.1}, 0.25, []float64{0.1, 0.2, 0.3, 0.4}},
		{"max change from start", Key{Value: 0, Right: linear}, Key{Value: 1, Left: linear}, 1, BezierLimits{MaxChange: 0.5}, 0.25, []float64{0.5, 0.5, 0.75, 1}},
		{"bounds", Key{Value: 0, Right: linear}, Key{Value: 1, Left: linear}, 0, BezierLimits{Min: -1, Max: 0.6}, 0.25, []float64{0.25, 0.5, 0.6, 0.6}},
	} {
		got, err := BezierKeys(1, tc.from, tc.to, tc.start, tc.limits, tc.sampleTime)
		if err != nil {
			t.Fatalf("%s: BezierKeys() error = %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
			t.Fatalf("%s: BezierKeys() mismatch (-want +got):\n%s", tc.name, diff)
		}
	}

	backwards := Key{Right: Tangent{Type: TangentBezier, Offset: types.Position2D{X: -0.1}}}
	if _, err := BezierKeys(1, backwards, Key{Value: 1, Left: linear}, 0, BezierLimits{}, 0.1); !errors.Is(err, ErrNonMonotonicCurve) {
		t.Fatalf("BezierKeys() error = %v, want %v", err, ErrNonMonotonicCurve)
	}
	if _, err := BezierKeys(0, Key{Right: linear}, Key{Left: linear}, 0, BezierLimits{}, 0.1); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("BezierKeys() error = %v, want %v", err, ErrInvalidDuration)
	}
}

func TestBezierKeysLogsLimiting(t *testing.T) {
	opt, logs := observedLogger()
	linear := Tangent{Type: TangentLinear}
	if _, err := BezierKeys(1, Key{Right: linear}, Key{Value: 1, Left: linear}, 0, BezierLimits{MaxChange: 0.1}, 0.25, opt); err != nil {
		t.Fatalf("BezierKeys() error = %v", err)
	}
	entries := logs.FilterMessage("bezier samples limited").All()
	if len(entries) != 1 {
		t.Fatalf("limit warnings = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["samples"]; got != int64(4) {
		t.Fatalf("samples field = %v, want 4", got)
	}
}

func TestBezierAutoTangents(t *testing.T) {
	for _, tc := range []struct {
		name                 string
		dt1, dt2, da1, da2   float64
		wantLeft, wantRight types.Position2D
	}{
		{"extremum", 1, 1, 1, -1, types.Position2D{X: -1.0 / 3}, types.Position2D{X: 1.0 / 3}},
		{"flat", 2, 1, 0, 1, types.Position2D{X: -2.0 / 3}, types.Position2D{X: 1.0 / 3}},
		{"mean slope", 1, 1, 1, 1, types.Position2D{X: -1.0 / 3, Y: -1.0 / 3}, types.Position2D{X: 1.0 / 3, Y: 1.0 / 3}},
		{"overshoot", 1, 1, 0.1, 1, types.Position2D{X: -1.0 / 3, Y: -0.1}, types.Position2D{X: 1.0 / 3, Y: 0.1}},
	} {
		left, right := BezierAutoTangents(tc.dt1, tc.dt2, tc.da1, tc.da2)
		if diff := cmp.Diff(tc.wantLeft, left, cmpopts.EquateApprox(0, tol)); diff != "" {
			t.Fatalf("%s: left tangent mismatch (-want +got):\n%s", tc.name, diff)
		}
		if diff := cmp.Diff(tc.wantRight, right, cmpopts.EquateApprox(0, tol)); diff != "" {
			t.Fatalf("%s: right tangent mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}
