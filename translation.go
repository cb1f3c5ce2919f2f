package corewave

// ValueKind is the semantic class of a decoded value. It drives color and,
// for boolean rows, height and background tint.
type ValueKind uint8

const (
	KindNormal ValueKind = iota
	KindUndef
	KindHighImp
	KindDontCare
	KindWeak
	KindWarn
	KindCustom
)

// TranslatedValue is a decoded display string plus its semantic kind.
// CustomColor is only meaningful when Kind == KindCustom.
type TranslatedValue struct {
	Text        string
	Kind        ValueKind
	CustomColor Color
}

// NamedTranslationResult is one named child of a compound TranslationResult.
type NamedTranslationResult struct {
	Name   string
	Result TranslationResult
}

// TranslationResult is a translator's output for one signal value: a root
// (text, kind) plus an ordered (possibly empty) list of named subfields,
// each itself a TranslationResult. Modeled as a tagged tree rather than a
// map for the same field-ordering reason as VariableInfo.
type TranslationResult struct {
	Value     TranslatedValue
	Subfields []NamedTranslationResult
}

// Flatten walks the tree in document order, invoking fn with the field path
// and translated value of every node (both leaves and internal Compound
// nodes carry their own Value, e.g. a struct-typed signal's root text might
// be a summary while its subfields carry individual members). Passing
// leavesOnly restricts the walk to leaf nodes only.
func (r TranslationResult) Flatten(leavesOnly bool, fn func(path FieldPath, value TranslatedValue)) {
	r.flatten(nil, leavesOnly, fn)
}

func (r TranslationResult) flatten(prefix FieldPath, leavesOnly bool, fn func(FieldPath, TranslatedValue)) {
	isLeaf := len(r.Subfields) == 0
	if isLeaf || !leavesOnly {
		path := append(FieldPath(nil), prefix...)
		fn(path, r.Value)
	}
	for _, nf := range r.Subfields {
		child := make(FieldPath, len(prefix), len(prefix)+1)
		copy(child, prefix)
		child = append(child, nf.Name)
		nf.Result.flatten(child, leavesOnly, fn)
	}
}

// ItemRef is a stable, monotonically increasing id assigned to a displayed
// item when it is added, unique within a session. Declared in this package
// (rather than in package wavedata, which owns the item lifecycle) so that
// both wavedata and drawcmd can reference it without an import cycle.
type ItemRef uint64

// DisplayedFieldRef addresses a single draw-command stream: a displayed
// item plus the field path inside that item's (possibly compound)
// translation.
type DisplayedFieldRef struct {
	Item  ItemRef
	Field FieldPath
}

// Equal reports whether two field refs name the same stream.
func (d DisplayedFieldRef) Equal(other DisplayedFieldRef) bool {
	return d.Item == other.Item && d.Field.Equal(other.Field)
}
