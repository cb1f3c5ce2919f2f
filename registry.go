package corewave

import (
	"sort"
	"sync"
)

// DefaultTranslatorName is the translator used when no override is set and
// no registered translator prefers the signal.
const DefaultTranslatorName = "Hex"

// bitTranslatorName is the generic 1-bit translator dropped from
// auto-selection ties, so a more specific 1-bit preference (e.g. a Clock
// translator) wins instead of the generic Bit translator whenever more
// than one translator prefers a 1-bit signal.
const bitTranslatorName = "Bit"

// Registry is a process-wide, read-shared translator list: additions
// replace entries by name. Entries are stored behind a mutex so the GUI
// loop can register translators (e.g. on plugin load) while worker
// goroutines concurrently read during a parallel sweep.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Translator
	defaultName string
}

// NewRegistry returns an empty registry with the given default translator
// name (consulted by AutoSelect when no translator prefers a signal).
func NewRegistry(defaultName string) *Registry {
	if defaultName == "" {
		defaultName = DefaultTranslatorName
	}
	return &Registry{byName: make(map[string]Translator), defaultName: defaultName}
}

// Register adds or replaces a translator by name.
func (r *Registry) Register(t Translator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[t.Name()] = t
}

// Get returns the translator with the given name, if registered.
func (r *Registry) Get(name string) (Translator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[name]
	return t, ok
}

// Default returns the registry's default translator. Panics only if the
// registry was never populated with its default name — a programmer-
// invariant violation, not a data error.
func (r *Registry) Default() Translator {
	t, ok := r.Get(r.defaultName)
	if !ok {
		panic("corewave: registry has no translator named " + r.defaultName)
	}
	return t
}

// All enumerates registered translators in a stable order (by name),
// used both for display and as the auto-selection tie-break.
func (r *Registry) All() []Translator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Translator, 0, len(r.byName))
	for _, t := range r.byName {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// AutoSelect picks a translator for a signal with the given metadata,
// deterministically for a fixed translator list and metadata:
//
//  1. Collect all translators returning PreferPrefer on m.
//  2. If more than one and m.NumBits == 1, drop the generic "Bit"
//     translator.
//  3. Sort by name; pick last. If none prefer, use the registry default.
func (r *Registry) AutoSelect(m VariableMeta) Translator {
	all := r.All() // already sorted by name
	var preferring []Translator
	for _, t := range all {
		if t.Translates(m) == PreferPrefer {
			preferring = append(preferring, t)
		}
	}
	if len(preferring) == 0 {
		return r.Default()
	}
	if len(preferring) > 1 && m.NumBits == 1 {
		filtered := preferring[:0:0]
		for _, t := range preferring {
			if t.Name() != bitTranslatorName {
				filtered = append(filtered, t)
			}
		}
		if len(filtered) > 0 {
			preferring = filtered
		}
	}
	return preferring[len(preferring)-1]
}
