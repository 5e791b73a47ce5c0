// pattern: Functional Core
package cli

import (
	"strings"
	"testing"

	"tabsview/internal/geometry"
	"tabsview/internal/toolbar"
)

func TestInspectLayout(t *testing.T) {
	tests := []struct {
		name        string
		params      LayoutParams
		wantContent geometry.Rect
		wantBar     geometry.Rect
		wantInset   geometry.Size
	}{
		{
			name:        "bottom bar",
			params:      LayoutParams{Width: 80, Height: 24, Position: toolbar.Bottom, BarHeight: 2, IgnoresKeyboard: true},
			wantContent: geometry.Rect{Width: 80, Height: 24},
			wantBar:     geometry.Rect{Y: 22, Width: 80, Height: 2},
			wantInset:   geometry.Size{Width: 80, Height: 2},
		},
		{
			name:        "top bar",
			params:      LayoutParams{Width: 80, Height: 24, Position: toolbar.Top, BarHeight: 1, IgnoresKeyboard: true},
			wantContent: geometry.Rect{Width: 80, Height: 24},
			wantBar:     geometry.Rect{Width: 80, Height: 1},
			wantInset:   geometry.Size{Width: 80, Height: 1},
		},
		{
			name:        "pinned bottom bar under keyboard",
			params:      LayoutParams{Width: 80, Height: 24, Position: toolbar.Bottom, BarHeight: 2, Keyboard: 8, IgnoresKeyboard: true},
			wantContent: geometry.Rect{Width: 80, Height: 16},
			wantBar:     geometry.Rect{Y: 22, Width: 80, Height: 2},
			wantInset:   geometry.Size{},
		},
		{
			name:        "bottom bar avoiding keyboard",
			params:      LayoutParams{Width: 80, Height: 24, Position: toolbar.Bottom, BarHeight: 2, Keyboard: 8},
			wantContent: geometry.Rect{Width: 80, Height: 16},
			wantBar:     geometry.Rect{Y: 14, Width: 80, Height: 2},
			wantInset:   geometry.Size{Width: 80, Height: 2},
		},
		{
			name:        "top bar is untouched by a bottom keyboard",
			params:      LayoutParams{Width: 40, Height: 10, Position: toolbar.Top, BarHeight: 2, Keyboard: 4},
			wantContent: geometry.Rect{Width: 40, Height: 6},
			wantBar:     geometry.Rect{Width: 40, Height: 2},
			wantInset:   geometry.Size{Width: 40, Height: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := InspectLayout(tt.params)

			if r.Phase != "measured" {
				t.Errorf("Phase = %q, want measured", r.Phase)
			}
			if r.ContentFrame == nil || *r.ContentFrame != tt.wantContent {
				t.Errorf("ContentFrame = %v, want %v", r.ContentFrame, tt.wantContent)
			}
			if r.BarFrame == nil || *r.BarFrame != tt.wantBar {
				t.Errorf("BarFrame = %v, want %v", r.BarFrame, tt.wantBar)
			}
			if r.Inset != tt.wantInset {
				t.Errorf("Inset = %v, want %v", r.Inset, tt.wantInset)
			}
			if r.Screen != nil {
				t.Error("Screen should be empty without Render")
			}
		})
	}
}

func TestInspectLayout_Render(t *testing.T) {
	r := InspectLayout(LayoutParams{
		Width:     10,
		Height:    6,
		Position:  toolbar.Bottom,
		BarHeight: 1,
		Keyboard:  2,
		Render:    true,
	})

	want := []string{
		"··········",
		"··········",
		"··········",
		"━━━━━━━━━━",
		"░░░░░░░░░░",
		"░░░░░░░░░░",
	}
	if strings.Join(r.Screen, "\n") != strings.Join(want, "\n") {
		t.Errorf("Screen =\n%s\nwant\n%s", strings.Join(r.Screen, "\n"), strings.Join(want, "\n"))
	}
}
