package regexeng

import "fmt"

// compose folds f and extra, in that order, into a new composite n.
func (f Fragment) compose(n Node, extra []Fragment) Fragment {
	f.entry()
	operands := make([]int, 0, len(extra)+1)
	operands = append(operands, f.idx)
	for _, x := range extra {
		if x.a != f.a {
			panic("regexeng: fragments belong to different builders")
		}
		operands = append(operands, x.idx)
	}
	return Fragment{a: f.a, idx: f.a.adopt(n, operands)}
}

// Group wraps f and extra in a non-capturing group.
func (f Fragment) Group(extra ...Fragment) Fragment {
	return f.compose(&Group{}, extra)
}

// CaptureGroup wraps f and extra in a numbered capture group.
func (f Fragment) CaptureGroup(extra ...Fragment) Fragment {
	return f.compose(&CaptureGroup{}, extra)
}

// NamedCaptureGroup wraps f and extra in a capture group called name.
func (f Fragment) NamedCaptureGroup(name string, extra ...Fragment) Fragment {
	return f.compose(&NamedCaptureGroup{Name: name}, extra)
}

// LookaroundGroup follows f and extra with a lookaround of the given kind
// asserting the pattern text assertion.
//
//	b.Literal("q").LookaroundGroup(PositiveLookahead, "u") // q(?=u)
func (f Fragment) LookaroundGroup(kind LookaroundKind, assertion string, extra ...Fragment) Fragment {
	return f.compose(&LookaroundGroup{Lookaround: kind, Assertion: assertion}, extra)
}

// Combine concatenates f and extra with no wrapping syntax.
func (f Fragment) Combine(extra ...Fragment) Fragment {
	return f.compose(&Combined{}, extra)
}

// CombineAlternates matches any one of f and extra.
func (f Fragment) CombineAlternates(extra ...Fragment) Fragment {
	return f.compose(&AlternationList{}, extra)
}

// AnchorStart prefixes f with ^.
func (f Fragment) AnchorStart() Fragment {
	return f.compose(&Anchor{Text: "^", Position: Leading}, nil)
}

// AnchorEnd suffixes f with $.
func (f Fragment) AnchorEnd() Fragment {
	return f.compose(&Anchor{Text: "$", Position: Trailing}, nil)
}

// Modifiers

func (f Fragment) operator(text string) Fragment {
	f.entry()
	f.a.attach(f.idx, &Operator{Text: text, Position: Trailing})
	return f
}

// Optional appends ?.
func (f Fragment) Optional() Fragment { return f.operator("?") }

// OneOrMore appends +.
func (f Fragment) OneOrMore() Fragment { return f.operator("+") }

// ZeroOrMore appends *.
func (f Fragment) ZeroOrMore() Fragment { return f.operator("*") }

// Repeat appends {count}. count must be positive.
func (f Fragment) Repeat(count int) (Fragment, error) {
	f.entry()
	if count <= 0 {
		return f, fmt.Errorf("regexeng: repeat count %d must be positive: %w", count, ErrInvalidArgument)
	}
	f.a.attach(f.idx, &ExactRepeat{Count: count})
	return f, nil
}

// RepeatRange appends {min,max}, or {min,} when max is Unbounded. Ranges
// with a shorter spelling are written as *, + or ?.
func (f Fragment) RepeatRange(min, max int) (Fragment, error) {
	f.entry()
	if min < 0 || max < 0 {
		return f, fmt.Errorf("regexeng: repeat range {%d,%d} has a negative bound: %w", min, max, ErrInvalidArgument)
	}
	if max != Unbounded && min >= max {
		return f, fmt.Errorf("regexeng: repeat range minimum %d must be below maximum %d: %w", min, max, ErrInvalidArgument)
	}

	switch {
	case min == 0 && max == Unbounded:
		return f.ZeroOrMore(), nil
	case min == 1 && max == Unbounded:
		return f.OneOrMore(), nil
	case min == 0 && max == 1:
		return f.Optional(), nil
	}
	f.a.attach(f.idx, &RepeatRange{Min: min, Max: max})
	return f, nil
}

// Lazy makes the most recent quantifier modifier match as few times as
// possible.
func (f Fragment) Lazy() (Fragment, error) {
	e := f.entry()
	if len(e.modifiers) == 0 {
		return f, fmt.Errorf("regexeng: lazy needs a preceding quantifier: %w", ErrInvalidArgument)
	}
	if op, ok := f.a.get(e.modifiers[len(e.modifiers)-1]).node.(*Operator); ok && op.lazy {
		return f, fmt.Errorf("regexeng: quantifier is already lazy: %w", ErrInvalidArgument)
	}
	f.a.attach(f.idx, &Operator{Text: "?", Position: Trailing, lazy: true})
	return f, nil
}

// Character sets

func (f Fragment) characterSet(op string) (*CharacterSet, error) {
	cs, ok := f.entry().node.(*CharacterSet)
	if !ok {
		return nil, fmt.Errorf("regexeng: %s on %s fragment: %w", op, f.Kind(), ErrWrongKind)
	}
	return cs, nil
}

// AddEscaped adds an escape sequence as a member of a character set.
func (f Fragment) AddEscaped(kind EscapeKind) (Fragment, error) {
	cs, err := f.characterSet("AddEscaped")
	if err != nil {
		return f, err
	}
	if !kind.Valid() {
		return f, fmt.Errorf("regexeng: unknown escape kind %d: %w", int(kind), ErrInvalidArgument)
	}
	cs.Members = appendMember(cs.Members, kind.Sequence())
	return f, nil
}

// AddRange adds the range lo-hi as a member of a character set.
func (f Fragment) AddRange(lo, hi rune) (Fragment, error) {
	cs, err := f.characterSet("AddRange")
	if err != nil {
		return f, err
	}
	if lo > hi {
		return f, fmt.Errorf("regexeng: range %q-%q is reversed: %w", lo, hi, ErrInvalidArgument)
	}
	cs.Members = appendMember(cs.Members, setMember(lo)+"-"+setMember(hi))
	return f, nil
}

// setMember spells r so that it stays a plain member inside [...].
func setMember(r rune) string {
	switch r {
	case '\\', ']', '[', '^':
		return `\` + string(r)
	}
	return string(r)
}

// normalizeMembers dedups members in first-seen order and moves "-" last.
func normalizeMembers(members []rune) []string {
	out := make([]string, 0, len(members))
	for _, r := range members {
		out = appendMember(out, setMember(r))
	}
	return out
}

// appendMember adds m unless present, keeping a literal "-" at the end.
func appendMember(members []string, m string) []string {
	for _, existing := range members {
		if existing == m {
			return members
		}
	}
	if m == "-" {
		return append(members, m)
	}
	if n := len(members); n > 0 && members[n-1] == "-" {
		members = append(members, "-")
		members[n-1] = m
		return members
	}
	return append(members, m)
}
