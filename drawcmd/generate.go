package drawcmd

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tracewave/corewave"
)

// DisplayedVariable is the generator's view of one displayed Variable item:
// enough to query its container, translate its value, and resolve format
// overrides, without the generator needing to know about wavedata's
// broader item bookkeeping (avoiding an import cycle between the two
// packages).
type DisplayedVariable struct {
	Item            corewave.ItemRef
	Ref             corewave.SignalRef
	Container       corewave.WaveContainer
	Meta            corewave.VariableMeta
	Translator      corewave.Translator
	FormatOverrides map[string]corewave.Translator
}

type sample struct {
	x int
	t *corewave.Timestamp
}

// buildSamples returns one (pixel, timestamp) pair per integer pixel in
// [-cfg.MaxTransitionWidth, width+cfg.MaxTransitionWidth), keeping only
// those whose mapped timestamp falls in [0, N] — the over-scan on either
// side lets a transition that begins off-screen still render correctly at
// the canvas edge.
func buildSamples(vp *corewave.Viewport, width float64, maxTs *corewave.Timestamp, overscan float64) []sample {
	lo := int(-overscan)
	hi := int(width + overscan)
	out := make([]sample, 0, hi-lo+1)
	for x := lo; x < hi; x++ {
		t := vp.AsTimeBigInt(float64(x), width, maxTs)
		if t.Sign() < 0 || t.Cmp(maxTs) > 0 {
			continue
		}
		out = append(out, sample{x: x, t: t})
	}
	// Already produced in increasing x order; sort.SliceIsSorted would be
	// a no-op in practice, but a stable sort on (pixel, time) is kept as
	// an explicit guarantee independent of how buildSamples iterates.
	sort.SliceStable(out, func(i, j int) bool { return out[i].x < out[j].x })
	return out
}

// variableResult is one variable's sweep output, merged sequentially after
// the parallel phase.
type variableResult struct {
	item        corewave.ItemRef
	fields      map[string]DrawingCommands
	clockEdges  []float32
	resetFormat bool
}

// Generate runs the full generation pass: sample build, parallel
// per-variable sweep, sequential merge, tick computation. It returns an
// empty cache entry (not an error) when the viewport width is zero or the
// container reports no timeline, rather than treating either as an error.
func Generate(ctx context.Context, vp *corewave.Viewport, width float64, maxTs *corewave.Timestamp, cfg DrawConfig, vars []DisplayedVariable, logger *zap.Logger) (*CachedDrawData, error) {
	out := &CachedDrawData{Commands: make(map[corewave.DisplayedFieldRef]DrawingCommands)}
	if width <= 0 || maxTs.Sign() == 0 {
		return out, nil
	}

	samples := buildSamples(vp, width, maxTs, cfg.MaxTransitionWidth)
	if len(samples) < 2 {
		return out, nil
	}

	results := make([]*variableResult, len(vars))
	g, _ := errgroup.WithContext(ctx)
	for i, dv := range vars {
		i, dv := i, dv
		g.Go(func() error {
			results[i] = sweepVariable(dv, samples, vp, width, maxTs, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "drawcmd: sweep failed")
	}

	var clockEdges []float32
	for _, r := range results {
		if r == nil {
			continue
		}
		clockEdges = append(clockEdges, r.clockEdges...)
		for path, cmds := range r.fields {
			ref := corewave.DisplayedFieldRef{Item: r.item, Field: splitFieldPath(path)}
			out.Commands[ref] = cmds
		}
		if r.resetFormat {
			out.ResetFormat = append(out.ResetFormat, corewave.DisplayedFieldRef{Item: r.item})
		}
	}
	out.ClockEdges = clockEdges
	out.DrawClock = len(clockEdges) >= 2 && (clockEdges[1]-clockEdges[0]) >= clockEdgeSuppressionPixels

	out.Ticks = computeTicks(vp, width, maxTs)
	return out, nil
}

// sweepVariable builds one variable's draw-command streams by walking the
// sample points once. It owns no shared state: everything it touches
// (prevValues, local field streams, clock edges) is local to this call,
// merged by the caller after all workers finish.
func sweepVariable(dv DisplayedVariable, samples []sample, vp *corewave.Viewport, width float64, maxTs *corewave.Timestamp, logger *zap.Logger) *variableResult {
	res := &variableResult{item: dv.Item, fields: make(map[string]DrawingCommands)}

	info := dv.Translator.VariableInfo(dv.Meta)
	leafKind := make(map[string]corewave.VariableInfoKind)
	info.Leaves(func(path corewave.FieldPath, leaf corewave.VariableInfo) {
		leafKind[path.String()] = leaf.Kind
	})

	prevValues := make(map[string]corewave.TranslatedValue)
	nextChangePixel := samples[0].x
	lastIdx := len(samples) - 1

	for i := 1; i <= lastIdx; i++ {
		prevS, cur := samples[i-1], samples[i]
		isFirst := i == 1
		isLast := i == lastIdx
		if cur.x < nextChangePixel && !isFirst && !isLast {
			continue
		}

		q, err := dv.Container.QueryVariable(dv.Ref, cur.t)
		if err != nil {
			if logger != nil {
				logger.Warn("drawcmd: query_variable failed", zap.Error(err))
			}
			nextChangePixel = samples[0].x
			continue
		}
		if q == nil || q.Current == nil {
			continue
		}
		changeTime, val := q.Current.Time, q.Current.Value
		if q.Next != nil {
			nextChangePixel = int(vp.PixelFromTime(q.Next, width, maxTs))
		}

		if !isFirst && !isLast && changeTime.Cmp(prevS.t) < 0 {
			continue
		}

		translated, err := dv.Translator.Translate(dv.Meta, val)
		if err != nil {
			res.resetFormat = true
			return res
		}

		translated.Flatten(true, func(path corewave.FieldPath, tv corewave.TranslatedValue) {
			key := path.String()
			if override, ok := dv.FormatOverrides[key]; ok {
				if t2, err := override.Translate(dv.Meta, val); err == nil {
					t2.Flatten(true, func(_ corewave.FieldPath, ov corewave.TranslatedValue) { tv = ov })
				}
			}
			prev, hadPrev := prevValues[key]
			newValue := !hadPrev || prev != tv
			antiAlias := changeTime.Cmp(prevS.t) > 0 && key == "" && dv.Container.WantsAntiAliasing()

			if newValue || isLast || antiAlias {
				prevValues[key] = tv
				if leafKind[key] == corewave.VarInfoClock && tv.Text == "1" && !isFirst && !isLast {
					res.clockEdges = append(res.clockEdges, float32(cur.x))
				}
				cmds, ok := res.fields[key]
				if !ok {
					cmds.Kind = streamKindFor(leafKind[key])
				}
				cmds.Values = append(cmds.Values, PixelValue{
					PixelX: float32(cur.x),
					Region: Region{Value: &tv, ForceAntiAlias: antiAlias && !newValue},
				})
				res.fields[key] = cmds
			}
		})
	}
	return res
}

func streamKindFor(kind corewave.VariableInfoKind) StreamKind {
	switch kind {
	case corewave.VarInfoBool:
		return StreamBool
	case corewave.VarInfoClock:
		return StreamClock
	default:
		return StreamWide
	}
}

func splitFieldPath(s string) corewave.FieldPath {
	if s == "" {
		return nil
	}
	var out corewave.FieldPath
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
