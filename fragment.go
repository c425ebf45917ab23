package regexeng

// FragmentKind identifies the type of a fragment node.
type FragmentKind int

const (
	KindLiteral FragmentKind = iota
	KindCharacterEscape
	KindGroup
	KindCaptureGroup
	KindNamedCaptureGroup
	KindLookaroundGroup
	KindCharacterSet
	KindNegatedCharacterSet
	KindAlternationList
	KindCombined
	KindOperator
	KindExactRepeatModifier
	KindRepeatRangeModifier
	KindAnchor
)

var kindNames = [...]string{
	KindLiteral:             "Literal",
	KindCharacterEscape:     "CharacterEscape",
	KindGroup:               "Group",
	KindCaptureGroup:        "CaptureGroup",
	KindNamedCaptureGroup:   "NamedCaptureGroup",
	KindLookaroundGroup:     "LookaroundGroup",
	KindCharacterSet:        "CharacterSet",
	KindNegatedCharacterSet: "NegatedCharacterSet",
	KindAlternationList:     "AlternationList",
	KindCombined:            "Combined",
	KindOperator:            "Operator",
	KindExactRepeatModifier: "ExactRepeatModifier",
	KindRepeatRangeModifier: "RepeatRangeModifier",
	KindAnchor:              "Anchor",
}

func (k FragmentKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "FragmentKind(?)"
	}
	return kindNames[k]
}

// Node is the kind-specific payload of a fragment. Each kind has its own
// struct carrying only the fields that kind needs.
type Node interface {
	Kind() FragmentKind
}

// Position says whether an anchor or operator's text is written before or
// after the fragment's children and modifiers.
type Position int

const (
	Leading Position = iota
	Trailing
)

// LookaroundKind selects the lookaround wrapper.
type LookaroundKind int

const (
	PositiveLookahead LookaroundKind = iota
	NegativeLookahead
	PositiveLookbehind
	NegativeLookbehind
)

// Unbounded as a RepeatRange maximum means no upper limit.
const Unbounded = 0

// Literal is raw pattern text.
type Literal struct {
	Text string
}

func (n *Literal) Kind() FragmentKind { return KindLiteral }

// CharEscape is an escape sequence from the escape table.
type CharEscape struct {
	Escape EscapeKind
	Text   string
}

func (n *CharEscape) Kind() FragmentKind { return KindCharacterEscape }

// Group is a non-capturing group (?:...).
type Group struct{}

func (n *Group) Kind() FragmentKind { return KindGroup }

// CaptureGroup is a numbered capture group (...).
type CaptureGroup struct{}

func (n *CaptureGroup) Kind() FragmentKind { return KindCaptureGroup }

// NamedCaptureGroup is (?<Name>...).
type NamedCaptureGroup struct {
	Name string
}

func (n *NamedCaptureGroup) Kind() FragmentKind { return KindNamedCaptureGroup }

// LookaroundGroup follows its children with a zero-width assertion on
// Assertion.
type LookaroundGroup struct {
	Lookaround LookaroundKind
	Assertion  string
}

func (n *LookaroundGroup) Kind() FragmentKind { return KindLookaroundGroup }

// CharacterSet represents [abc] or [^abc]. Members holds one entry per
// class member, deduplicated, with a literal "-" always last.
type CharacterSet struct {
	Members []string
	Negated bool
}

func (n *CharacterSet) Kind() FragmentKind {
	if n.Negated {
		return KindNegatedCharacterSet
	}
	return KindCharacterSet
}

// AlternationList matches one of its children.
type AlternationList struct{}

func (n *AlternationList) Kind() FragmentKind { return KindAlternationList }

// Combined concatenates its children without wrapping syntax.
type Combined struct{}

func (n *Combined) Kind() FragmentKind { return KindCombined }

// Operator is a quantifier or metacharacter such as ?, +, * or ".".
type Operator struct {
	Text     string
	Position Position

	lazy bool // appended by Lazy
}

func (n *Operator) Kind() FragmentKind { return KindOperator }

// ExactRepeat is {Count}.
type ExactRepeat struct {
	Count int
}

func (n *ExactRepeat) Kind() FragmentKind { return KindExactRepeatModifier }

// RepeatRange is {Min,Max}, or {Min,} when Max is Unbounded.
type RepeatRange struct {
	Min int
	Max int
}

func (n *RepeatRange) Kind() FragmentKind { return KindRepeatRangeModifier }

// Anchor places Text before (Leading) or after (Trailing) its children.
type Anchor struct {
	Text     string
	Position Position
}

func (n *Anchor) Kind() FragmentKind { return KindAnchor }
