package corewave

import "math/big"

// Timestamp is a nonnegative arbitrary-precision point on the timeline.
// Waveform containers report value changes at these resolutions (VCD/FST/GHW
// time units can exceed what an int64 or float64 can represent exactly), so
// every data-boundary API in this package exchanges *big.Int rather than a
// machine integer.
type Timestamp = big.Int

// ZeroTimestamp returns a fresh zero-valued timestamp. Each call allocates a
// new value; callers must not share or mutate a cached instance.
func ZeroTimestamp() *Timestamp { return new(big.Int) }

// TimestampFromUint64 builds a Timestamp from a machine integer.
func TimestampFromUint64(v uint64) *Timestamp { return new(big.Int).SetUint64(v) }

// bigToFloat64 converts t to the nearest representable float64. Precision is
// deliberately lost once the magnitude exceeds what float64 can represent
// exactly; pixel math downstream only needs |err| within a pixel and the
// viewport's (left, right) span is always well inside float64's dynamic
// range for any realistic simulation length.
func bigToFloat64(t *Timestamp) float64 {
	if t == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(t).Float64()
	return f
}

// float64ToBigRound converts v to the nearest integer Timestamp, rounding
// half away from zero. Negative and out-of-range results are legal; callers
// that need trace-relative clamping do so themselves.
func float64ToBigRound(v float64) *Timestamp {
	bf := big.NewFloat(v)
	if v >= 0 {
		bf.Add(bf, big.NewFloat(0.5))
	} else {
		bf.Sub(bf, big.NewFloat(0.5))
	}
	i, _ := bf.Int(nil)
	return i
}
