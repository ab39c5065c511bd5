package dubins

import (
	"errors"
	"math"
	"testing"

	"github.com/aldebaran/libalmath/types"
)

func TestSolutionsStraightAhead(t *testing.T) {
	got, err := Solutions(types.Pose2D{X: 10}, 1)
	if err != nil {
		t.Fatalf("Solutions() error = %v", err)
	}
	want := [3]types.Pose2D{{}, {X: 10}, {X: 10}}
	for i := range want {
		if !got[i].IsNear(want[i], 1e-9) {
			t.Fatalf("Solutions()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSolutionsReference(t *testing.T) {
	tests := []struct {
		target        types.Pose2D
		first, second types.Pose2D
	}{
		{
			types.Pose2D{X: 0.5, Y: 0.5},
			types.Pose2D{X: 0.0777402, Y: 0.0370996, Theta: 0.890525},
			types.Pose2D{X: 0.422260, Y: 0.462900, Theta: 0.890525},
		},
		{
			types.Pose2D{X: -0.5, Y: 0.5, Theta: 0.3},
			types.Pose2D{X: 0.0207914, Y: 0.197815, Theta: 2.93215},
			types.Pose2D{X: -0.491239, Y: 0.306652, Theta: 2.93215},
		},
		{
			types.Pose2D{Y: -1, Theta: 0.3},
			types.Pose2D{X: 0.0958873, Y: -0.128384, Theta: -1.85859},
			types.Pose2D{X: -0.125439, Y: -0.876083, Theta: -1.85859},
		},
	}
	for _, tt := range tests {
		got, err := Solutions(tt.target, 0.1)
		if err != nil {
			t.Fatalf("Solutions(%+v) error = %v", tt.target, err)
		}
		want := [3]types.Pose2D{tt.first, tt.second, tt.target}
		for i := range want {
			if !got[i].IsNear(want[i], 1e-4) {
				t.Fatalf("Solutions(%+v)[%d] = %+v, want %+v", tt.target, i, got[i], want[i])
			}
		}
	}
}

func TestSolutionsErrors(t *testing.T) {
	if _, err := Solutions(types.Pose2D{X: 3.9}, 1); !errors.Is(err, ErrTargetTooClose) {
		t.Fatalf("Solutions() error = %v, want ErrTargetTooClose", err)
	}
	if _, err := Solutions(types.Pose2D{X: 10}, 0); !errors.Is(err, ErrInvalidRadius) {
		t.Fatalf("Solutions() error = %v, want ErrInvalidRadius", err)
	}
}

func TestCurveIsContinuous(t *testing.T) {
	targets := []types.Pose2D{
		{X: 10, Y: 0, Theta: 0},
		{X: 0, Y: 10, Theta: math.Pi / 2},
		{X: -6, Y: 3, Theta: -2},
		{X: 5, Y: -8, Theta: 3},
		{X: -4, Y: -4, Theta: math.Pi},
	}
	const (
		radius = 1.0
		step   = 0.05
	)
	for _, target := range targets {
		c, err := New(target, radius)
		if err != nil {
			t.Fatalf("New(%+v) error = %v", target, err)
		}
		pts, err := c.Sample(step)
		if err != nil {
			t.Fatalf("Sample() error = %v", err)
		}
		if !pts[0].IsNear(types.Position2D{}, 1e-9) {
			t.Fatalf("%+v: path starts at %v, want origin", target, pts[0])
		}
		end := types.Position2D{X: target.X, Y: target.Y}
		if !pts[len(pts)-1].IsNear(end, 1e-9) {
			t.Fatalf("%+v: path ends at %v, want %v", target, pts[len(pts)-1], end)
		}
		for i := 1; i < len(pts); i++ {
			if d := pts[i].Distance(pts[i-1]); d > step*(1+1e-9) {
				t.Fatalf("%+v (%s): gap %v between samples %d and %d", target, c.Kind, d, i-1, i)
			}
		}
		if c.Length() < end.Norm() {
			t.Fatalf("Length() = %v, shorter than the chord %v", c.Length(), end.Norm())
		}
	}
}

func TestHeadingsEncodeTurnDirection(t *testing.T) {
	c, err := New(types.Pose2D{X: -6, Y: 3, Theta: -2}, 1)
	if err != nil {
		t.Fatal(err)
	}
	first, second, target := c.Checkpoints[0], c.Checkpoints[1], c.Checkpoints[2]
	if c.startLeft != (first.Theta >= 0) {
		t.Fatalf("first arc rotation %v does not match left=%v", first.Theta, c.startLeft)
	}
	if d := target.Theta - second.Theta; c.endLeft != (d >= 0) {
		t.Fatalf("second arc rotation %v does not match left=%v", d, c.endLeft)
	}
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		angle float64
		left  bool
		want  float64
	}{
		{1, true, 1},
		{-1, true, 2*math.Pi - 1},
		{1, false, 1 - 2*math.Pi},
		{-1, false, -1},
		{0, false, 0},
	}
	for _, tt := range tests {
		if got := unwrap(tt.angle, tt.left); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("unwrap(%v, %v) = %v, want %v", tt.angle, tt.left, got, tt.want)
		}
	}
}

func TestSampleRejectsBadStep(t *testing.T) {
	c, err := New(types.Pose2D{X: 10}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Sample(0); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("Sample(0) error = %v, want ErrInvalidStep", err)
	}
}
