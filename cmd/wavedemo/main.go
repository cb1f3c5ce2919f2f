// Command wavedemo wires the full corewave stack — WaveContainer,
// translator registry, WaveData, the draw-command cache, and the render
// package — into a minimal ebiten window over an in-memory fixture trace.
// It exists to exercise the pipeline end to end, not as a full viewer.
package main

import (
	"context"
	"log"
	"math/big"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/tracewave/corewave"
	"github.com/tracewave/corewave/drawcmd"
	"github.com/tracewave/corewave/numeric"
	"github.com/tracewave/corewave/render"
	"github.com/tracewave/corewave/wavedata"
)

// memContainer is a trivial in-memory WaveContainer fixture: every signal
// shares the same change list, scaled by a per-signal factor so the demo
// shows more than one waveform.
type memContainer struct {
	maxTs *big.Int
}

func (m *memContainer) ScopeExists(corewave.ScopePath) (bool, error) { return true, nil }
func (m *memContainer) ChildScopes(corewave.ScopePath) ([]corewave.ScopePath, error) {
	return nil, nil
}
func (m *memContainer) VariablesInScope(corewave.ScopePath) ([]corewave.SignalRef, error) {
	return []corewave.SignalRef{{Name: "clk"}, {Name: "data"}}, nil
}
func (m *memContainer) VariableMeta(ref corewave.SignalRef) (corewave.VariableMeta, error) {
	if ref.Name == "clk" {
		return corewave.VariableMeta{NumBits: 1, Encoding: corewave.EncodingBitVector}, nil
	}
	return corewave.VariableMeta{NumBits: 8, Encoding: corewave.EncodingBitVector}, nil
}
func (m *memContainer) QueryVariable(ref corewave.SignalRef, t *corewave.Timestamp) (*corewave.QueryResult, error) {
	period := int64(20)
	if ref.Name != "clk" {
		period = 50
	}
	cycle := new(big.Int).Div(t, big.NewInt(period))
	changeAt := new(big.Int).Mul(cycle, big.NewInt(period))
	next := new(big.Int).Add(changeAt, big.NewInt(period))

	var bits string
	if ref.Name == "clk" {
		if cycle.Bit(0) == 0 {
			bits = "0"
		} else {
			bits = "1"
		}
	} else {
		v := new(big.Int).Mod(cycle, big.NewInt(256))
		bits = v.Text(2)
		for len(bits) < 8 {
			bits = "0" + bits
		}
	}
	return &corewave.QueryResult{
		Current: &corewave.ValueChange{Time: changeAt, Value: corewave.RawValue{Bits: bits}},
		Next:    next,
	}, nil
}
func (m *memContainer) LoadVariables([]corewave.SignalRef) (corewave.LoadCmd, error) { return nil, nil }
func (m *memContainer) MaxTimestamp() (*corewave.Timestamp, bool)                    { return m.maxTs, true }
func (m *memContainer) Metadata() corewave.ContainerMetadata                        { return corewave.ContainerMetadata{TimescaleUnit: "ns", TimescaleMagnitude: 1} }
func (m *memContainer) WantsAntiAliasing() bool                                      { return true }
func (m *memContainer) PauseSimulation()                                            {}
func (m *memContainer) UnpauseSimulation()                                          {}

type game struct {
	container corewave.WaveContainer
	registry  *corewave.Registry
	data      *wavedata.WaveData
	viewport  *corewave.Viewport
	cache     drawcmd.Cache
	theme     render.Theme
	logger    *zap.Logger
}

func newGame() *game {
	reg := corewave.NewRegistry(corewave.DefaultTranslatorName)
	corewave.RegisterBasicTranslators(reg)
	numeric.RegisterAll(reg)

	container := &memContainer{maxTs: big.NewInt(2000)}
	wd := wavedata.New(wavedata.NameLocal)
	refs, err := container.VariablesInScope(nil)
	if err != nil {
		log.Fatal(err)
	}
	if _, _, err := wd.AddVariables(refs, container, reg); err != nil {
		log.Fatal(err)
	}
	wd.ComputeVariableDisplayNames(false)

	logger, _ := zap.NewDevelopment()
	return &game{
		container: container,
		registry:  reg,
		data:      wd,
		viewport:  corewave.NewViewport(),
		theme:     render.DefaultTheme(),
		logger:    logger,
	}
}

func (g *game) Update() error { return nil }

func (g *game) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	maxTs, _ := g.container.MaxTimestamp()

	vars := make([]drawcmd.DisplayedVariable, 0, len(g.data.Items()))
	rows := make([]render.RowLayout, 0, len(g.data.Items()))
	var order []corewave.ItemRef
	var names []string
	top := 20.0
	for _, item := range g.data.Items() {
		if item.Kind != wavedata.ItemVariable {
			continue
		}
		meta, err := g.container.VariableMeta(item.Variable.Ref)
		if err != nil {
			continue
		}
		translator, _ := g.registry.Get(item.Variable.Translator)
		vars = append(vars, drawcmd.DisplayedVariable{
			Item: item.Ref, Ref: item.Variable.Ref, Container: g.container,
			Meta: meta, Translator: translator,
		})
		field := corewave.DisplayedFieldRef{Item: item.Ref}
		rows = append(rows, render.RowLayout{Field: field, Top: top})
		order = append(order, item.Ref)
		names = append(names, item.Variable.Translator)
		top += g.theme.LineHeight
	}

	vpLeft, _ := new(big.Float).SetInt(g.viewport.AsTimeBigInt(0, float64(width), maxTs)).Float64()
	vpRight, _ := new(big.Float).SetInt(g.viewport.AsTimeBigInt(float64(width), float64(width), maxTs)).Float64()
	snap := drawcmd.Snapshot{
		ItemOrder: order, TranslatorNames: names,
		ViewportLeft: vpLeft, ViewportRight: vpRight,
		CanvasWidth: float64(width), CanvasHeight: float64(height),
	}
	data, err := g.cache.Ensure(context.Background(), g.viewport, float64(width), maxTs, drawcmd.DrawConfig{MaxTransitionWidth: 6}, vars, snap, g.logger)
	if err != nil {
		g.logger.Warn("generate failed", zap.Error(err))
		return
	}

	var overlays []render.Overlay
	if cursor, ok := g.data.Cursor(); ok {
		overlays = append(overlays, render.Overlay{
			PixelX:   g.viewport.PixelFromTime(cursor, float64(width), maxTs),
			IsCursor: true,
		})
	}
	for _, item := range g.data.Items() {
		if item.Kind != wavedata.ItemMarker {
			continue
		}
		t, ok := g.data.Marker(item.Marker.Index)
		if !ok {
			continue
		}
		overlays = append(overlays, render.Overlay{
			PixelX:      g.viewport.PixelFromTime(t, float64(width), maxTs),
			MarkerIndex: item.Marker.Index,
			Label:       item.Marker.Name,
		})
	}

	render.Draw(screen, data, rows, overlays, corewave.Rect{Width: float64(width), Height: float64(height)}, g.theme, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	ebiten.SetWindowSize(900, 400)
	ebiten.SetWindowTitle("corewave demo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
