package corewave

// VariableInfoKind tags the shape of a VariableInfo node. Modeled as a sum
// type rather than a string-keyed map: field ordering inside a Compound is
// observable (it drives column/row order), so an ordered slice of named
// children is used instead of a map.
type VariableInfoKind uint8

const (
	VarInfoBool VariableInfoKind = iota
	VarInfoBits
	VarInfoClock
	VarInfoString
	VarInfoReal
	VarInfoCompound
)

// NamedVariableInfo is one named child of a Compound VariableInfo.
type NamedVariableInfo struct {
	Name string
	Info VariableInfo
}

// VariableInfo describes the legal field-path tree a translator produces
// for a given signal's metadata. The tree shape is stable for a fixed
// (signal, translator) pair and is the authority for which FieldPaths are
// valid format-override targets.
type VariableInfo struct {
	Kind      VariableInfoKind
	Subfields []NamedVariableInfo // populated only when Kind == VarInfoCompound
}

// FieldPath addresses a node inside a compound translation: a (possibly
// empty) sequence of subfield names. The empty path addresses the root.
type FieldPath []string

// Equal reports whether two field paths address the same node.
func (p FieldPath) Equal(other FieldPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the path dot-joined for logging and override lookup keys.
func (p FieldPath) String() string {
	s := ""
	for i, n := range p {
		if i > 0 {
			s += "."
		}
		s += n
	}
	return s
}

// Child returns the VariableInfo subfields named by the path, walking
// Compound nodes, and whether the full path resolved.
func (info VariableInfo) Child(path FieldPath) (VariableInfo, bool) {
	cur := info
	for _, name := range path {
		if cur.Kind != VarInfoCompound {
			return VariableInfo{}, false
		}
		found := false
		for _, nf := range cur.Subfields {
			if nf.Name == name {
				cur = nf.Info
				found = true
				break
			}
		}
		if !found {
			return VariableInfo{}, false
		}
	}
	return cur, true
}

// Leaves walks the tree in document order, invoking fn with the field path
// of every non-Compound node. Used to enumerate the draw-command streams a
// variable produces (one per leaf).
func (info VariableInfo) Leaves(fn func(path FieldPath, leaf VariableInfo)) {
	info.walkLeaves(nil, fn)
}

func (info VariableInfo) walkLeaves(prefix FieldPath, fn func(FieldPath, VariableInfo)) {
	if info.Kind != VarInfoCompound {
		// Copy the prefix: callers may retain it past this call.
		path := append(FieldPath(nil), prefix...)
		fn(path, info)
		return
	}
	for _, nf := range info.Subfields {
		child := make(FieldPath, len(prefix), len(prefix)+1)
		copy(child, prefix)
		child = append(child, nf.Name)
		nf.Info.walkLeaves(child, fn)
	}
}
