package drawcmd

import (
	"math"
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tracewave/corewave"
)

// tickPrinter formats large tick labels with grouped digits (e.g.
// "1,000,000" rather than "1e+06"). One package-level instance is shared
// by every computeTicks call; ticks are computed after the parallel sweep,
// not inside it.
var tickPrinter = message.NewPrinter(language.English)

// desiredTickCount is the rough number of axis labels to aim for across a
// canvas width, independent of the width itself — ticks are then spaced
// out to the nearest power-of-ten-times-{1,2,5} step.
const desiredTickCount = 8

// computeTicks produces pretty-rounded axis labels for the visible range,
// independent of and prior to any per-variable sweep.
func computeTicks(vp *corewave.Viewport, width float64, maxTs *corewave.Timestamp) []TickLabel {
	if width <= 0 {
		return nil
	}
	left := vp.AsTimeBigInt(0, width, maxTs)
	right := vp.AsTimeBigInt(width, width, maxTs)
	lo := bigToFloat(left)
	hi := bigToFloat(right)
	if hi <= lo {
		return nil
	}
	step := prettyStep((hi - lo) / desiredTickCount)
	if step <= 0 {
		return nil
	}

	var out []TickLabel
	start := math.Ceil(lo/step) * step
	for v := start; v <= hi; v += step {
		t := floatToBigTimestamp(v)
		px := vp.PixelFromTime(t, width, maxTs)
		out = append(out, TickLabel{Label: formatTick(v), PixelX: px})
	}
	return out
}

// bigToFloat performs the same deliberate, documented-loss conversion the
// viewport's own pixel math uses (see bigtime.go); floatToBigTimestamp
// truncates toward zero rather than rounding. Tick placement only needs
// float64 precision, never exact arithmetic.
func bigToFloat(t *corewave.Timestamp) float64 {
	f := new(big.Float).SetInt(t)
	v, _ := f.Float64()
	return v
}

func floatToBigTimestamp(v float64) *corewave.Timestamp {
	bf := big.NewFloat(v)
	n, _ := bf.Int(nil)
	return n
}

func prettyStep(raw float64) float64 {
	if raw <= 0 {
		return 0
	}
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	for _, mult := range []float64{1, 2, 5, 10} {
		if base*mult >= raw {
			return base * mult
		}
	}
	return base * 10
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return tickPrinter.Sprint(number.Decimal(int64(v)))
	}
	return tickPrinter.Sprint(number.Decimal(v))
}
