// Package render walks a drawcmd.CachedDrawData and drives an ebiten
// drawing surface: tick lines, the clock-edge band overlay, boolean and
// wide signal rows, and the cursor/marker overlay. It owns no waveform
// state of its own — everything it draws comes from the cache entry and a
// Theme passed in by the caller.
package render
