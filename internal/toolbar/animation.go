// pattern: Functional Core

package toolbar

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"

	"tabsview/internal/geometry"
)

// frameInterval is the animation tick rate (~60fps).
const frameInterval = time.Second / 60

// Curve maps linear progress in [0,1] to eased progress. Springs may
// overshoot 1 before settling.
type Curve func(t float64) float64

// Linear progresses at constant speed.
func Linear(t float64) float64 { return t }

// EaseInOut is a cubic ease-in-out.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// EaseOut is a cubic ease-out.
func EaseOut(t float64) float64 {
	f := 1 - t
	return 1 - f*f*f
}

const springSamples = 120

// Spring returns a damped spring curve. The spring is simulated once over
// the unit interval and sampled.
func Spring(frequency, damping float64) Curve {
	samples := make([]float64, springSamples+1)
	s := harmonica.NewSpring(harmonica.FPS(springSamples), frequency, damping)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = s.Update(pos, vel, 1)
		samples[i] = pos
	}
	samples[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		f := t * springSamples
		i := int(f)
		frac := f - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

// Animation describes how inset changes are animated.
type Animation struct {
	Duration time.Duration
	Curve    Curve
}

// DefaultAnimation is used when no animation option is given.
func DefaultAnimation() *Animation {
	return &Animation{Duration: 350 * time.Millisecond, Curve: EaseInOut}
}

// ParseCurve resolves a curve by name.
func ParseCurve(name string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ease-in-out", "easeinout", "default":
		return EaseInOut, nil
	case "linear":
		return Linear, nil
	case "ease-out", "easeout":
		return EaseOut, nil
	case "spring":
		return Spring(6, 0.5), nil
	default:
		return nil, fmt.Errorf("unknown animation curve %q", name)
	}
}

// tween interpolates the applied inset towards the computed one.
type tween struct {
	from  geometry.Size
	to    geometry.Size
	start time.Time
	anim  Animation
	seq   uint64
}

// at returns the interpolated size at now and whether the tween is done.
func (t tween) at(now time.Time) (geometry.Size, bool) {
	if t.anim.Duration <= 0 {
		return t.to, true
	}
	elapsed := now.Sub(t.start)
	if elapsed >= t.anim.Duration {
		return t.to, true
	}
	p := float64(elapsed) / float64(t.anim.Duration)
	if p < 0 {
		p = 0
	}
	curve := t.anim.Curve
	if curve == nil {
		curve = EaseInOut
	}
	e := curve(p)
	return geometry.Size{
		Width:  lerp(t.from.Width, t.to.Width, e),
		Height: lerp(t.from.Height, t.to.Height, e),
	}, false
}

func lerp(a, b int, t float64) int {
	v := int(math.Round(float64(a) + float64(b-a)*t))
	return max(v, 0)
}
