package export

import (
	"fmt"
	"strings"
)

// Curve is a named (x, y) series with a stroke colour.
type Curve struct {
	Label string
	X     []float64
	Y     []float64
	Color string
}

// CurvesToSVG renders one or more curves into a single SVG plot with shared
// axes, sized width x height pixels.
func CurvesToSVG(curves []Curve, width, height int) string {
	if len(curves) == 0 {
		return ""
	}

	minX, maxX, minY, maxY, ok := bounds(curves)
	if !ok {
		return ""
	}

	// Pad so curves do not touch the frame.
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, c := range curves {
		if len(c.X) < 2 || len(c.X) != len(c.Y) {
			continue
		}
		color := c.Color
		if color == "" {
			color = "#00ff00"
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i := range c.X {
			px := (c.X[i] - minX) / rangeX * float64(width)
			py := float64(height) - (c.Y[i]-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(curves []Curve) (minX, maxX, minY, maxY float64, ok bool) {
	first := true
	for _, c := range curves {
		if len(c.X) != len(c.Y) {
			continue
		}
		for i := range c.X {
			if first {
				minX, maxX = c.X[i], c.X[i]
				minY, maxY = c.Y[i], c.Y[i]
				first = false
				continue
			}
			if c.X[i] < minX {
				minX = c.X[i]
			}
			if c.X[i] > maxX {
				maxX = c.X[i]
			}
			if c.Y[i] < minY {
				minY = c.Y[i]
			}
			if c.Y[i] > maxY {
				maxY = c.Y[i]
			}
		}
	}
	return minX, maxX, minY, maxY, !first
}
