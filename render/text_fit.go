package render

import (
	"github.com/rivo/uniseg"
)

// monospaceCharWidth estimates the advance width of one character in a
// monospace font at the given point size, using a fixed ratio instead of
// a full shaping pass.
func monospaceCharWidth(textSize float64) float64 {
	return textSize * 20 / 31
}

// fitLabel truncates s to fit within the given pixel width at textSize,
// appending an ellipsis when truncated. Truncation counts user-perceived
// characters (grapheme
// clusters) via uniseg rather than bytes or runes, so combining marks and
// multi-rune emoji are never split mid-cluster.
func fitLabel(s string, areaWidth, textSize float64) string {
	if areaWidth <= 0 {
		return ""
	}
	charWidth := monospaceCharWidth(textSize)
	if charWidth <= 0 {
		return ""
	}
	budget := int(areaWidth / charWidth)
	if budget <= 0 {
		return ""
	}

	clusters := graphemes(s)
	if len(clusters) <= budget {
		return s
	}
	if budget == 1 {
		return "…"
	}
	return joinGraphemes(clusters[:budget-1]) + "…"
}

// graphemes splits s into user-perceived character clusters.
func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

func joinGraphemes(clusters []string) string {
	total := 0
	for _, c := range clusters {
		total += len(c)
	}
	buf := make([]byte, 0, total)
	for _, c := range clusters {
		buf = append(buf, c...)
	}
	return string(buf)
}
