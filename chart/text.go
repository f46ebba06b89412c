package chart

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	labelWidth = 34
	barWidth   = 30
)

// RenderText prints the dashboard as horizontal block bars, one section per
// panel, scaled to the tallest bar of that panel.
func RenderText(w io.Writer, d *Dashboard) {
	sep := strings.Repeat("═", 70)
	thin := strings.Repeat("─", 70)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  📊 %s\033[0m\n", d.Title)
	for _, line := range d.Subtitle {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	for i := range d.Panels {
		p := &d.Panels[i]
		fmt.Fprintf(w, "\033[1;33m  %s\033[0m\n", p.Title)
		fmt.Fprintf(w, "  %s\n", thin)

		top := p.maxValue()
		for _, b := range p.Bars {
			fmt.Fprintf(w, "  %s %s %s\n", padRight(flatten(b.Label), labelWidth), bar(b.Value, top), b.Text)
		}
		fmt.Fprintln(w)
	}
}

// bar scales v against top into a run of block characters; non-zero values
// always get at least one block.
func bar(v, top float64) string {
	if v <= 0 || math.IsNaN(v) {
		return strings.Repeat(" ", barWidth)
	}
	n := int(math.Round(v / top * barWidth))
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n) + strings.Repeat(" ", barWidth-n)
}

func flatten(label string) string {
	return strings.Join(strings.Fields(label), " ")
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
