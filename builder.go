package regexeng

import (
	"strings"

	"go.uber.org/zap"
)

// Builder assembles a pattern from an ordered list of top-level fragments.
// All fragments made by a Builder live in its arena and may only be
// composed with fragments from the same Builder.
type Builder struct {
	arena  *arena
	roots  []int
	logger *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for compile diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New returns an empty Builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		arena:  &arena{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) leaf(n Node) Fragment {
	return Fragment{a: b.arena, idx: b.arena.add(n)}
}

// Literal returns a fragment for raw pattern text. Metacharacters in text
// keep their meaning; see EscapedLiteral.
func (b *Builder) Literal(text string) Fragment {
	return b.leaf(&Literal{Text: text})
}

// EscapedLiteral returns a fragment matching text literally.
func (b *Builder) EscapedLiteral(text string) Fragment {
	return b.leaf(&Literal{Text: EscapeLiteral(text)})
}

// CharEscape returns a fragment for the escape sequence of kind.
func (b *Builder) CharEscape(kind EscapeKind) Fragment {
	return b.leaf(&CharEscape{Escape: kind, Text: kind.Sequence()})
}

// CharacterSet returns [members]. Duplicates are dropped and a "-" member
// is moved to the end.
func (b *Builder) CharacterSet(members ...rune) Fragment {
	return b.leaf(&CharacterSet{Members: normalizeMembers(members)})
}

// NegatedCharacterSet returns [^members] with the same normalization as
// CharacterSet.
func (b *Builder) NegatedCharacterSet(members ...rune) Fragment {
	return b.leaf(&CharacterSet{Members: normalizeMembers(members), Negated: true})
}

// AnyChar returns the "." wildcard.
func (b *Builder) AnyChar() Fragment {
	return b.leaf(&Operator{Text: ".", Position: Leading})
}

// AddFragments appends frags to the top-level list.
func (b *Builder) AddFragments(frags ...Fragment) {
	for _, f := range frags {
		if f.a != b.arena {
			panic("regexeng: fragment belongs to a different builder")
		}
		if b.arena.owned(f.idx) {
			panic("regexeng: fragment already owned")
		}
		b.arena.get(f.idx).root = true
		b.roots = append(b.roots, f.idx)
	}
}

// Fragments returns the top-level fragments in order.
func (b *Builder) Fragments() []Fragment {
	out := make([]Fragment, len(b.roots))
	for i, idx := range b.roots {
		out[i] = Fragment{a: b.arena, idx: idx}
	}
	return out
}

// Compile concatenates the compiled form of every top-level fragment.
func (b *Builder) Compile() string {
	var sb strings.Builder
	for _, idx := range b.roots {
		sb.WriteString(Fragment{a: b.arena, idx: idx}.Compile())
	}
	pattern := sb.String()
	b.logger.Debug("compiled pattern",
		zap.Int("fragments", len(b.roots)),
		zap.String("pattern", pattern))
	return pattern
}

func (b *Builder) String() string { return b.Compile() }
