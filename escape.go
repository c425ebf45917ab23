package regexeng

import "strings"

// EscapeKind names a two-character escape sequence.
type EscapeKind int

const (
	WordBoundary EscapeKind = iota
	Tab
	CarriageReturn
	NewLine
	FormFeed
	VerticalTab
	Backspace // \b is backspace only inside a character set
	Null
	Digit
	NonDigit
	Whitespace
	NonWhitespace
	Word
	NonWord
	Bell
	Escape
	Backslash
	NonWordBoundary
)

var escapeTable = [...]string{
	WordBoundary:    `\b`,
	Tab:             `\t`,
	CarriageReturn:  `\r`,
	NewLine:         `\n`,
	FormFeed:        `\f`,
	VerticalTab:     `\v`,
	Backspace:       `\b`,
	Null:            `\0`,
	Digit:           `\d`,
	NonDigit:        `\D`,
	Whitespace:      `\s`,
	NonWhitespace:   `\S`,
	Word:            `\w`,
	NonWord:         `\W`,
	Bell:            `\a`,
	Escape:          `\e`,
	Backslash:       `\\`,
	NonWordBoundary: `\B`,
}

var escapeNames = [...]string{
	WordBoundary:    "WordBoundary",
	Tab:             "Tab",
	CarriageReturn:  "CarriageReturn",
	NewLine:         "NewLine",
	FormFeed:        "FormFeed",
	VerticalTab:     "VerticalTab",
	Backspace:       "Backspace",
	Null:            "Null",
	Digit:           "Digit",
	NonDigit:        "NonDigit",
	Whitespace:      "Whitespace",
	NonWhitespace:   "NonWhitespace",
	Word:            "Word",
	NonWord:         "NonWord",
	Bell:            "Bell",
	Escape:          "Escape",
	Backslash:       "Backslash",
	NonWordBoundary: "NonWordBoundary",
}

// Valid reports whether k is one of the declared escape kinds.
func (k EscapeKind) Valid() bool {
	return k >= 0 && int(k) < len(escapeTable)
}

// Sequence returns the escape sequence for k, or "" if k is not valid.
func (k EscapeKind) Sequence() string {
	if !k.Valid() {
		return ""
	}
	return escapeTable[k]
}

func (k EscapeKind) String() string {
	if !k.Valid() {
		return "EscapeKind(?)"
	}
	return escapeNames[k]
}

// metaChars are escaped by EscapeLiteral.
const metaChars = `+*?|()[]{}\^$.`

// EscapeLiteral returns s with every pattern metacharacter prefixed by a
// backslash, so the result matches s literally.
func EscapeLiteral(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(metaChars, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
