// pattern: Functional Core

package demo

import "tabsview/internal/geometry"

// Region defines a rectangular area within the terminal.
type Region struct {
	X      int // Left position (0-indexed)
	Y      int // Top position (0-indexed)
	Width  int // Width in cells
	Height int // Height in lines
}

// Rect converts the region to a geometry rectangle.
func (r Region) Rect() geometry.Rect {
	return geometry.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Layout holds computed regions for all UI components.
type Layout struct {
	Header    Region // App title (1 line)
	Content   Region // Tab container
	Separator Region // Separator between content and logs (1 line when logs open)
	Logs      Region // Log panel when open, including its header line
	StatusBar Region // Status bar (1 line)
}

// Fixed heights for chrome elements
const (
	headerHeight    = 1
	statusBarHeight = 1
	separatorHeight = 1
	minContent      = 4
)

// ComputeLayout calculates regions based on terminal dimensions.
// When logPanelOpen is true, the area between header and status bar splits
// 60/40 between the tab container and the logs.
func ComputeLayout(width, height int, logPanelOpen bool) Layout {
	available := height - headerHeight - statusBarHeight
	if available < minContent {
		available = minContent
	}

	contentHeight := available
	var sepHeight, logsHeight int
	if logPanelOpen {
		contentHeight = int(float64(available) * 0.6)
		if contentHeight < minContent {
			contentHeight = minContent
		}
		sepHeight = separatorHeight
		logsHeight = available - contentHeight - sepHeight
		if logsHeight < 0 {
			logsHeight = 0
		}
	}

	// Build layout top-to-bottom
	y := 0

	header := Region{X: 0, Y: y, Width: width, Height: headerHeight}
	y += headerHeight

	content := Region{X: 0, Y: y, Width: width, Height: contentHeight}
	y += contentHeight

	separator := Region{X: 0, Y: y, Width: width, Height: sepHeight}
	y += sepHeight

	logs := Region{X: 0, Y: y, Width: width, Height: logsHeight}
	y += logsHeight

	statusBar := Region{X: 0, Y: y, Width: width, Height: statusBarHeight}

	return Layout{
		Header:    header,
		Content:   content,
		Separator: separator,
		Logs:      logs,
		StatusBar: statusBar,
	}
}

// LogViewportHeight is the number of log lines visible below the panel header.
func (l Layout) LogViewportHeight() int {
	if l.Logs.Height <= 1 {
		return 0
	}
	return l.Logs.Height - 1
}
