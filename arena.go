package regexeng

import "github.com/google/uuid"

const noParent = -1

// entry is one node in an arena. The arena owns every node; children and
// modifiers are index lists, parent is a non-owning back reference.
type entry struct {
	id        uuid.UUID
	node      Node
	parent    int
	children  []int
	modifiers []int
	root      bool // listed in a Builder's top-level fragments
}

type arena struct {
	entries []entry
}

func (a *arena) add(n Node) int {
	a.entries = append(a.entries, entry{
		id:     uuid.New(),
		node:   n,
		parent: noParent,
	})
	return len(a.entries) - 1
}

func (a *arena) get(i int) *entry {
	return &a.entries[i]
}

// owned reports whether i already belongs to a composite or to the
// top-level list.
func (a *arena) owned(i int) bool {
	e := a.get(i)
	return e.parent != noParent || e.root
}

// adopt creates a composite for n owning the given operands in order.
func (a *arena) adopt(n Node, operands []int) int {
	for _, op := range operands {
		if a.owned(op) {
			panic("regexeng: fragment already owned")
		}
	}
	seen := make(map[int]struct{}, len(operands))
	for _, op := range operands {
		if _, dup := seen[op]; dup {
			panic("regexeng: fragment used twice in one composite")
		}
		seen[op] = struct{}{}
	}

	idx := a.add(n)
	e := a.get(idx)
	e.children = append(e.children, operands...)
	for _, op := range operands {
		a.get(op).parent = idx
	}
	return idx
}

// attach appends modifier n to the modifiers of i.
func (a *arena) attach(i int, n Node) {
	m := a.add(n)
	a.get(m).parent = i
	e := a.get(i)
	e.modifiers = append(e.modifiers, m)
}

// Fragment is a handle to a node in a Builder's arena. The zero Fragment
// refers to nothing.
type Fragment struct {
	a   *arena
	idx int
}

// IsZero reports whether f refers to no node.
func (f Fragment) IsZero() bool { return f.a == nil }

func (f Fragment) entry() *entry {
	if f.a == nil {
		panic("regexeng: use of zero Fragment")
	}
	return f.a.get(f.idx)
}

// ID returns the fragment's unique identifier.
func (f Fragment) ID() uuid.UUID { return f.entry().id }

// Kind returns the fragment's kind.
func (f Fragment) Kind() FragmentKind { return f.entry().node.Kind() }

// Node returns the kind-specific payload. Callers type-switch on it.
// A *CharacterSet is returned as a copy; the stored members change only
// through AddEscaped and AddRange.
func (f Fragment) Node() Node {
	n := f.entry().node
	if cs, ok := n.(*CharacterSet); ok {
		cp := *cs
		cp.Members = append([]string(nil), cs.Members...)
		return &cp
	}
	return n
}

// Parent returns the composite that owns f, if any.
func (f Fragment) Parent() (Fragment, bool) {
	p := f.entry().parent
	if p == noParent {
		return Fragment{}, false
	}
	return Fragment{a: f.a, idx: p}, true
}

// Children returns f's content fragments in order.
func (f Fragment) Children() []Fragment {
	return f.handles(f.entry().children)
}

// Modifiers returns f's modifier fragments in order.
func (f Fragment) Modifiers() []Fragment {
	return f.handles(f.entry().modifiers)
}

func (f Fragment) handles(idxs []int) []Fragment {
	if len(idxs) == 0 {
		return nil
	}
	out := make([]Fragment, len(idxs))
	for i, idx := range idxs {
		out[i] = Fragment{a: f.a, idx: idx}
	}
	return out
}

// String returns the compiled pattern of f.
func (f Fragment) String() string { return f.Compile() }
