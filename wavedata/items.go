// Package wavedata owns the ordered list of displayed items — variables,
// dividers, markers, the timeline ruler, and placeholders left behind by a
// reload — plus the cursor and markers. Every mutation is applied directly
// on a WaveData value: callers apply the returned side-effect messages
// themselves rather than WaveData reaching out to the GUI loop directly.
// The shape is an ordered collection with explicit Add/Remove/SetIndex-
// style operations, rather than a tree the caller walks and mutates by hand.
package wavedata

import "github.com/tracewave/corewave"

// ItemKind tags which variant a displayed Item carries.
type ItemKind uint8

const (
	ItemVariable ItemKind = iota
	ItemDivider
	ItemMarker
	ItemTimeline
	ItemPlaceholder
)

// DisplayNamePolicy controls how a Variable's display name is derived
// when two displayed variables would otherwise collide.
type DisplayNamePolicy uint8

const (
	NameLocal DisplayNamePolicy = iota
	NameUnique
	NameGlobal
)

// FieldFormat is one field-path override: a compound subfield rendered
// with a translator other than the variable's top-level choice.
type FieldFormat struct {
	Path      corewave.FieldPath
	Translator string
}

// VariableItem is a displayed signal: its ref, chosen translator, naming
// policy, and any per-field format overrides.
type VariableItem struct {
	Ref          corewave.SignalRef
	Translator   string
	NamePolicy   DisplayNamePolicy
	ManualName   string
	Color        *corewave.Color
	Background   *corewave.Color
	FieldFormats []FieldFormat

	// resolvedName is the last name ComputeVariableDisplayNames computed
	// for this item; read via Item.DisplayName.
	resolvedName string
}

// DividerItem is a label-only separator row.
type DividerItem struct {
	Label string
}

// MarkerItem is a named, colored position on the timeline. Index
// CursorMarkerIndex (255) is reserved for the cursor; 0-253 are ordinary
// user markers.
type MarkerItem struct {
	Index uint8
	Name  string
	Color *corewave.Color
}

// PlaceholderItem carries a Variable's display settings forward after a
// reload whose new container no longer resolves its ref.
type PlaceholderItem struct {
	Variable VariableItem
}

// Item is one row in the displayed-item order: a stable ref plus exactly
// one populated variant, selected by Kind.
type Item struct {
	Ref         corewave.ItemRef
	Kind        ItemKind
	Variable    *VariableItem
	Divider     *DividerItem
	Marker      *MarkerItem
	Placeholder *PlaceholderItem
}
