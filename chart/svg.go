package chart

import (
	"fmt"
	"math"
	"strings"
)

// SVGConfig holds rendering parameters for the dashboard SVG.
type SVGConfig struct {
	Width      int
	Height     int
	HeaderH    int // space reserved for the title block
	Padding    int
	BgColor    string
	PanelColor string
	GridColor  string
	TextColor  string
	FontSize   int
	BarOpacity float64
}

// DefaultSVGConfig matches a 16x12 inch figure at 100 dpi.
func DefaultSVGConfig() SVGConfig {
	return SVGConfig{
		Width:      1600,
		Height:     1200,
		HeaderH:    110,
		Padding:    30,
		BgColor:    "#ffffff",
		PanelColor: "#fafafa",
		GridColor:  "#e8e8e8",
		TextColor:  "#333333",
		FontSize:   13,
		BarOpacity: 0.8,
	}
}

// RenderSVG draws the whole dashboard as a standalone SVG document.
func RenderSVG(d *Dashboard, cfg SVGConfig) string {
	if cfg.Width == 0 || cfg.Height == 0 {
		def := DefaultSVGConfig()
		def.Width, def.Height = orDefault(cfg.Width, def.Width), orDefault(cfg.Height, def.Height)
		cfg = def
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height))
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor))

	// Title block
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="32" font-size="20" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(d.Title)))
	for i, line := range d.Subtitle {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="15" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
			cfg.Width/2, 58+i*22, cfg.TextColor, escapeXML(line)))
	}

	cols, rows := d.columns(), d.rows()
	if rows == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}
	cellW := float64(cfg.Width-cfg.Padding*(cols+1)) / float64(cols)
	cellH := float64(cfg.Height-cfg.HeaderH-cfg.Padding*(rows+1)) / float64(rows)

	for i := range d.Panels {
		col, row := i%cols, i/cols
		x := float64(cfg.Padding) + float64(col)*(cellW+float64(cfg.Padding))
		y := float64(cfg.HeaderH+cfg.Padding) + float64(row)*(cellH+float64(cfg.Padding))
		writePanel(&sb, &d.Panels[i], x, y, cellW, cellH, cfg)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writePanel(sb *strings.Builder, p *Panel, x, y, w, h float64, cfg SVGConfig) {
	const (
		titleH  = 30.0
		labelH  = 70.0
		marginX = 40.0
		topPad  = 28.0 // room for value labels above the tallest bar
	)

	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`,
		x, y, w, h, cfg.PanelColor, cfg.GridColor))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="15" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		x+w/2, y+22, cfg.TextColor, escapeXML(p.Title)))

	plotX := x + marginX
	plotW := w - 2*marginX
	plotTop := y + titleH + topPad
	baseY := y + h - labelH
	plotH := baseY - plotTop

	// Horizontal grid lines at quarters of the max value
	for q := 0; q <= 4; q++ {
		gy := baseY - plotH*float64(q)/4
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`,
			plotX, gy, plotX+plotW, gy, cfg.GridColor))
	}

	if len(p.Bars) == 0 {
		return
	}

	top := p.maxValue()
	slot := plotW / float64(len(p.Bars))
	barW := slot * 0.6

	for i, b := range p.Bars {
		v := math.Max(0, b.Value)
		bh := v / top * plotH
		bx := plotX + float64(i)*slot + (slot-barW)/2
		by := baseY - bh
		cx := bx + barW/2

		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="%.2f"/>`,
			bx, by, barW, bh, colorOr(b.Color, "#4caf50"), cfg.BarOpacity))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%d" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
			cx, by-6, cfg.FontSize, cfg.TextColor, escapeXML(b.Text)))

		lines := strings.Split(b.Label, "\n")
		for j, line := range lines {
			ly := baseY + 18 + float64(j)*float64(cfg.FontSize+2)
			if p.RotateLabels {
				sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%d" fill="%s" text-anchor="end" transform="rotate(-45 %.1f %.1f)">%s</text>`,
					cx, ly, cfg.FontSize, cfg.TextColor, cx, ly, escapeXML(line)))
			} else {
				sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
					cx, ly, cfg.FontSize, cfg.TextColor, escapeXML(line)))
			}
		}
	}

	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999" stroke-width="1"/>`,
		plotX, baseY, plotX+plotW, baseY))
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
