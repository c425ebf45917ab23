package regexeng

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Tokenizer splits a pattern into descriptive components. It never fails:
// unterminated classes, groups and braced quantifiers run to the end of
// the input.
type Tokenizer struct {
	input      string
	pos        int
	components []PatternComponent
}

// NewTokenizer returns a Tokenizer over input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize is shorthand for NewTokenizer(pattern).Tokenize().
func Tokenize(pattern string) []PatternComponent {
	return NewTokenizer(pattern).Tokenize()
}

// Tokenize scans the whole input and returns its components in order.
// The Values of the result concatenate to the input.
func (t *Tokenizer) Tokenize() []PatternComponent {
	for t.pos < len(t.input) {
		start := t.pos
		switch ch := t.input[t.pos]; ch {
		case '^':
			t.add(ComponentAnchor, start+1, "Start of string/line")
		case '$':
			t.add(ComponentAnchor, start+1, "End of string/line")
		case '.':
			t.add(ComponentWildcard, start+1, "Any character except newline")
		case '\\':
			t.lexEscape()
		case '[':
			t.lexCharClass()
		case '(':
			t.lexGroup()
		case '*', '+', '?':
			t.add(ComponentQuantifier, start+1, quantifierDescription(ch))
		case '{':
			t.lexBraced()
		case '|':
			t.add(ComponentAlternation, start+1, "OR operator")
		default:
			r, w := utf8.DecodeRuneInString(t.input[start:])
			t.add(ComponentLiteral, start+w, fmt.Sprintf("Literal character '%c'", r))
		}
	}
	return t.components
}

// add records input[pos:end] as a component and moves the cursor to end.
func (t *Tokenizer) add(typ ComponentType, end int, desc string) {
	t.components = append(t.components, PatternComponent{
		Type:        typ,
		Value:       t.input[t.pos:end],
		Description: desc,
		Offset:      t.pos,
	})
	t.pos = end
}

func (t *Tokenizer) lexEscape() {
	start := t.pos
	if start+1 >= len(t.input) {
		t.add(ComponentLiteral, start+1, "Backslash")
		return
	}
	r, w := utf8.DecodeRuneInString(t.input[start+1:])
	t.add(ComponentEscape, start+1+w, escapeDescription(r))
}

func escapeDescription(r rune) string {
	switch r {
	case 'd':
		return "Any digit (0-9)"
	case 'D':
		return "Any non-digit"
	case 'w':
		return "Any word character (a-z, A-Z, 0-9, _)"
	case 'W':
		return "Any non-word character"
	case 's':
		return "Any whitespace character"
	case 'S':
		return "Any non-whitespace character"
	case 'b':
		return "Word boundary"
	case 'B':
		return "Non-word boundary"
	case 'n':
		return "Newline"
	case 't':
		return "Tab"
	case 'r':
		return "Carriage return"
	}
	return fmt.Sprintf("Escaped character '%c'", r)
}

func (t *Tokenizer) lexCharClass() {
	start := t.pos
	end, closed := len(t.input), false
	for i := start + 1; i < len(t.input); i++ {
		if t.input[i] == '\\' {
			i++
			continue
		}
		if t.input[i] == ']' {
			end, closed = i+1, true
			break
		}
	}

	value := t.input[start:end]
	negated := strings.HasPrefix(value, "[^")
	inner := value[1:]
	if negated {
		inner = value[2:]
	}
	if closed && len(inner) > 0 {
		inner = inner[:len(inner)-1]
	}

	desc := "Character class: " + inner
	if negated {
		desc = "Negated character class: NOT " + inner
	}
	t.add(ComponentCharacterClass, end, desc)
}

func (t *Tokenizer) lexGroup() {
	start := t.pos
	depth := 1
	i := start + 1
	for i < len(t.input) && depth > 0 {
		switch t.input[i] {
		case '\\':
			i += 2
			continue
		case '(':
			depth++
		case ')':
			depth--
		}
		i++
	}
	if i > len(t.input) {
		i = len(t.input)
	}

	value := t.input[start:i]
	typ, desc := ComponentGroup, "Capturing group"
	switch {
	case strings.HasPrefix(value, "(?="):
		typ, desc = ComponentLookahead, "Positive lookahead"
	case strings.HasPrefix(value, "(?!"):
		typ, desc = ComponentLookahead, "Negative lookahead"
	case strings.HasPrefix(value, "(?<="):
		desc = "Positive lookbehind"
	case strings.HasPrefix(value, "(?<!"):
		desc = "Negative lookbehind"
	case strings.HasPrefix(value, "(?:"):
		desc = "Non-capturing group"
	default:
		if name, ok := groupName(value); ok {
			desc = fmt.Sprintf("Named capturing group '%s'", name)
		}
	}
	t.add(typ, i, desc)
}

// groupName extracts name from a value starting with (?<name> or (?P<name>.
func groupName(value string) (string, bool) {
	var rest string
	switch {
	case strings.HasPrefix(value, "(?<"):
		rest = value[3:]
	case strings.HasPrefix(value, "(?P<"):
		rest = value[4:]
	default:
		return "", false
	}
	end := strings.IndexByte(rest, '>')
	if end <= 0 {
		return "", false
	}
	return rest[:end], true
}

func (t *Tokenizer) lexBraced() {
	start := t.pos
	end := len(t.input)
	inner := t.input[start+1:]
	if i := strings.IndexByte(t.input[start:], '}'); i >= 0 {
		end = start + i + 1
		inner = t.input[start+1 : end-1]
	}

	t.add(ComponentQuantifier, end, fmt.Sprintf("Quantifier: %s occurrences", inner))
}

func quantifierDescription(q byte) string {
	switch q {
	case '*':
		return "Zero or more times"
	case '+':
		return "One or more times"
	case '?':
		return "Zero or one time (optional)"
	}
	return "Unknown quantifier"
}
