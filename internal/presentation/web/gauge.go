package web

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
)

const (
	gaugeRed   = "#f44336"
	gaugeGreen = "#4caf50"
)

// gaugeBands are the fixed background bands of the risk gauge.
var gaugeBands = []struct {
	from, to float64
	color    string
}{
	{0, 30, "#e8f5e8"},
	{30, 50, "#fff3e0"},
	{50, 70, "#ffebee"},
	{70, 100, "#ffcdd2"},
}

const (
	gaugeCX = 150.0
	gaugeCY = 150.0
)

// gaugeAngle maps a percentage (0-100) to an angle in degrees, from 180 on
// the far left down to 0 on the far right.
func gaugeAngle(pct float64) float64 {
	return 180 - pct*1.8
}

func gaugePoint(angleDeg, radius float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return gaugeCX + radius*math.Cos(rad), gaugeCY - radius*math.Sin(rad)
}

// gaugeArc builds the SVG path for an annular sector between two percentages.
// Sectors never exceed a half circle, so the large-arc flag stays 0.
func gaugeArc(fromPct, toPct, rInner, rOuter float64) string {
	x1, y1 := gaugePoint(gaugeAngle(fromPct), rOuter)
	x2, y2 := gaugePoint(gaugeAngle(toPct), rOuter)
	x3, y3 := gaugePoint(gaugeAngle(toPct), rInner)
	x4, y4 := gaugePoint(gaugeAngle(fromPct), rInner)

	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 0 0 %.2f %.2f Z",
		x1, y1, rOuter, rOuter, x2, y2, x3, y3, rInner, rInner, x4, y4)
}

// renderGauge draws the semicircular risk gauge: colored bands, the value bar
// in the outcome color, a delta against the 50 reference, a reference marker
// at 50 and the intervention threshold line at 90.
func renderGauge(percentage, barColor string) template.HTML {
	pct, err := strconv.ParseFloat(percentage, 64)
	if err != nil || pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 300 170" role="img" aria-label="Risk score gauge">`)
	b.WriteString(`<text x="150" y="16" text-anchor="middle" font-size="14" fill="#444">Risk Score</text>`)

	for _, band := range gaugeBands {
		fmt.Fprintf(&b, `<path d="%s" fill="%s"/>`, gaugeArc(band.from, band.to, 72, 110), band.color)
	}

	if pct > 0 {
		fmt.Fprintf(&b, `<path d="%s" fill="%s"/>`, gaugeArc(0, pct, 76, 106), barColor)
	}

	// Reference marker at 50.
	rx1, ry1 := gaugePoint(gaugeAngle(50), 112)
	rx2, ry2 := gaugePoint(gaugeAngle(50), 122)
	fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#888" stroke-width="2"/>`, rx1, ry1, rx2, ry2)

	// Intervention threshold line at 90.
	tx1, ty1 := gaugePoint(gaugeAngle(90), 68)
	tx2, ty2 := gaugePoint(gaugeAngle(90), 114)
	fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="red" stroke-width="4"/>`, tx1, ty1, tx2, ty2)

	diff := pct - 50
	arrow, deltaColor := "▲", "#3d9970"
	if diff < 0 {
		arrow, deltaColor = "▼", "#ff4136"
		diff = -diff
	}
	fmt.Fprintf(&b, `<text x="150" y="100" text-anchor="middle" font-size="14" fill="%s">%s %.1f</text>`, deltaColor, arrow, diff)
	fmt.Fprintf(&b, `<text x="150" y="136" text-anchor="middle" font-size="34" font-weight="bold" fill="%s">%s</text>`, barColor, percentage)

	b.WriteString(`<text x="28" y="164" text-anchor="middle" font-size="11" fill="#666">0</text>`)
	b.WriteString(`<text x="272" y="164" text-anchor="middle" font-size="11" fill="#666">100</text>`)
	b.WriteString(`</svg>`)

	return template.HTML(b.String())
}
