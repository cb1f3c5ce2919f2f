// Package corewave is the core data model and viewport math for a digital
// waveform viewer: arbitrary-precision timestamps, a pixel/timestamp
// mapping viewport with animated pan and zoom, a loaded-trace container
// abstraction, and a translator framework for turning raw signal bits into
// display strings.
//
// Subpackage [corewave/numeric] holds IEEE-754, posit, and instruction-set
// translators. Subpackage drawcmd turns a displayed variable and viewport
// into per-pixel draw commands, with a cache keyed on the inputs that can
// invalidate it. Subpackage wavedata owns the list of displayed items,
// markers, and the cursor. Subpackage render walks the cached draw
// commands and paints them with [Ebitengine].
//
// # Quick start
//
//	vp := corewave.NewViewport()
//	reg := corewave.NewRegistry(corewave.DefaultTranslatorName)
//	corewave.RegisterBasicTranslators(reg)
//	t := reg.AutoSelect(meta)
//	result, err := t.Translate(meta, value)
//
// [Ebitengine]: https://ebitengine.org
package corewave
