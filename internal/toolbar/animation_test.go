package toolbar

import (
	"math"
	"testing"
	"time"

	"tabsview/internal/geometry"
)

func TestCurves_Endpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":      Linear,
		"ease-in-out": EaseInOut,
		"ease-out":    EaseOut,
		"spring":      Spring(6, 0.5),
	}
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			if got := c(0); math.Abs(got) > 1e-9 {
				t.Errorf("c(0) = %v, want 0", got)
			}
			if got := c(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("c(1) = %v, want 1", got)
			}
		})
	}
}

func TestEaseInOut_Symmetric(t *testing.T) {
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", got)
	}
	if EaseInOut(0.25) >= 0.25 {
		t.Error("EaseInOut should start slow")
	}
}

func TestParseCurve(t *testing.T) {
	for _, name := range []string{"", "linear", "ease-in-out", "Ease-Out", "spring"} {
		if _, err := ParseCurve(name); err != nil {
			t.Errorf("ParseCurve(%q) error = %v", name, err)
		}
	}
	if _, err := ParseCurve("bouncy"); err == nil {
		t.Error("ParseCurve(bouncy) should fail")
	}
}

func TestTween_At(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tw := tween{
		from:  geometry.Size{Width: 80, Height: 1},
		to:    geometry.Size{Width: 80, Height: 5},
		start: start,
		anim:  Animation{Duration: 200 * time.Millisecond, Curve: Linear},
	}

	tests := []struct {
		elapsed  time.Duration
		want     int
		wantDone bool
	}{
		{0, 1, false},
		{50 * time.Millisecond, 2, false},
		{100 * time.Millisecond, 3, false},
		{200 * time.Millisecond, 5, true},
		{time.Second, 5, true},
	}
	for _, tt := range tests {
		got, done := tw.at(start.Add(tt.elapsed))
		if got.Height != tt.want || done != tt.wantDone {
			t.Errorf("at(+%v) = %v, %v; want height %d, %v", tt.elapsed, got, done, tt.want, tt.wantDone)
		}
		if got.Width != 80 {
			t.Errorf("at(+%v) width = %d, want 80", tt.elapsed, got.Width)
		}
	}
}

func TestTween_ZeroDurationIsDone(t *testing.T) {
	tw := tween{to: geometry.Size{Width: 3, Height: 3}}
	got, done := tw.at(time.Now())
	if !done || got != tw.to {
		t.Errorf("at() = %v, %v; want target and done", got, done)
	}
}

func TestLerp_NeverNegative(t *testing.T) {
	// Springs overshoot; a shrinking inset must not go below zero.
	if got := lerp(2, 0, 1.3); got != 0 {
		t.Errorf("lerp(2, 0, 1.3) = %d, want 0", got)
	}
}
