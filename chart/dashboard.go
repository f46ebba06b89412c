// Package chart draws the impact dashboard: a grid of labelled bar panels
// rendered to the terminal, to an SVG document, or to a PNG through a
// headless browser.
package chart

// Bar is one bar of a panel. Text is the value label printed on top of it.
type Bar struct {
	Label string
	Value float64
	Color string
	Text  string
}

// Panel is a single bar chart in the grid.
type Panel struct {
	Title        string
	Bars         []Bar
	RotateLabels bool
}

// Dashboard is a titled grid of panels, laid out row-major with Columns per row.
type Dashboard struct {
	Title    string
	Subtitle []string
	Columns  int
	Panels   []Panel
}

// rows returns the number of grid rows needed for the panels.
func (d *Dashboard) rows() int {
	cols := d.columns()
	return (len(d.Panels) + cols - 1) / cols
}

func (d *Dashboard) columns() int {
	if d.Columns < 1 {
		return 1
	}
	return d.Columns
}

// maxValue is the tallest bar in p, or 1 for an empty or all-zero panel.
func (p *Panel) maxValue() float64 {
	top := 0.0
	for _, b := range p.Bars {
		if b.Value > top {
			top = b.Value
		}
	}
	if top <= 0 {
		return 1
	}
	return top
}
