package regexeng

import "fmt"

// ComponentType classifies a PatternComponent.
type ComponentType int

const (
	ComponentAnchor         ComponentType = iota // ^ $
	ComponentWildcard                            // .
	ComponentEscape                              // \d, \., ...
	ComponentCharacterClass                      // [...]
	ComponentGroup                               // (...) (?:...) (?<name>...) (?<=...)
	ComponentLookahead                           // (?=...) (?!...)
	ComponentQuantifier                          // * + ? {n,m}
	ComponentAlternation                         // |
	ComponentLiteral
)

var componentNames = [...]string{
	ComponentAnchor:         "Anchor",
	ComponentWildcard:       "Wildcard",
	ComponentEscape:         "Escape",
	ComponentCharacterClass: "CharacterClass",
	ComponentGroup:          "Group",
	ComponentLookahead:      "Lookahead",
	ComponentQuantifier:     "Quantifier",
	ComponentAlternation:    "Alternation",
	ComponentLiteral:        "Literal",
}

func (t ComponentType) String() string {
	if t < 0 || int(t) >= len(componentNames) {
		return fmt.Sprintf("ComponentType(%d)", int(t))
	}
	return componentNames[t]
}

// MarshalText encodes t by name.
func (t ComponentType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a name produced by MarshalText.
func (t *ComponentType) UnmarshalText(text []byte) error {
	for i, name := range componentNames {
		if name == string(text) {
			*t = ComponentType(i)
			return nil
		}
	}
	return fmt.Errorf("regexeng: unknown component type %q", text)
}

// PatternComponent is one classified lexeme of a pattern. Value is the
// exact text consumed and Offset the byte index where it starts.
type PatternComponent struct {
	Type        ComponentType `json:"type" yaml:"type"`
	Value       string        `json:"value" yaml:"value"`
	Description string        `json:"description" yaml:"description"`
	Offset      int           `json:"offset" yaml:"offset"`
}
