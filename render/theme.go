package render

import "github.com/tracewave/corewave"

// Theme is the set of themed colors and sizes the renderer falls back to
// when a displayed item has no per-item override.
type Theme struct {
	Background    corewave.Color
	Foreground    corewave.Color
	TickStroke    corewave.Color
	ClockBandA    corewave.Color
	ClockBandB    corewave.Color
	VariableHighImp  corewave.Color
	VariableUndef    corewave.Color
	VariableDontCare corewave.Color
	VariableWeak     corewave.Color
	CursorStroke  corewave.Color
	MarkerStroke  corewave.Color

	LineHeight float64
	TextSize   float64

	// HalfOpacityFill, ShowRiseArrow enable two optional bool-row
	// decorations: a half-opacity fill behind the high level, and a small
	// arrow glyph at each rising edge.
	HalfOpacityFill bool
	ShowRiseArrow   bool
}

// DefaultTheme returns a reasonable dark-background theme.
func DefaultTheme() Theme {
	return Theme{
		Background:       corewave.Color{R: 0.09, G: 0.09, B: 0.1, A: 1},
		Foreground:       corewave.Color{R: 0.85, G: 0.85, B: 0.85, A: 1},
		TickStroke:       corewave.Color{R: 0.3, G: 0.3, B: 0.32, A: 1},
		ClockBandA:       corewave.Color{R: 0.13, G: 0.13, B: 0.15, A: 1},
		ClockBandB:       corewave.Color{R: 0.16, G: 0.16, B: 0.19, A: 1},
		VariableHighImp:  corewave.Color{R: 0.55, G: 0.45, B: 0.1, A: 1},
		VariableUndef:    corewave.Color{R: 0.8, G: 0.15, B: 0.15, A: 1},
		VariableDontCare: corewave.Color{R: 0.4, G: 0.4, B: 0.45, A: 1},
		VariableWeak:     corewave.Color{R: 0.5, G: 0.3, B: 0.5, A: 1},
		CursorStroke:     corewave.Color{R: 0.9, G: 0.9, B: 0.2, A: 1},
		MarkerStroke:     corewave.Color{R: 0.4, G: 0.8, B: 0.9, A: 1},
		LineHeight:       18,
		TextSize:         13,
		HalfOpacityFill:  true,
		ShowRiseArrow:    true,
	}
}

// colorFor maps a translated value's kind to its themed stroke/fill color:
// Normal uses the caller-supplied default (the item's chosen color, or
// theme Foreground); other kinds map to fixed theme slots; Custom always
// forces its own color.
func (t Theme) colorFor(kind corewave.ValueKind, custom corewave.Color, deflt corewave.Color) corewave.Color {
	switch kind {
	case corewave.KindHighImp:
		return t.VariableHighImp
	case corewave.KindUndef, corewave.KindWarn:
		return t.VariableUndef
	case corewave.KindDontCare:
		return t.VariableDontCare
	case corewave.KindWeak:
		return t.VariableWeak
	case corewave.KindCustom:
		return custom
	default:
		return deflt
	}
}
