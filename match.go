package regexeng

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Regexp compiles the builder's pattern with regexp2, whose syntax covers
// every construct a Builder can emit.
func (b *Builder) Regexp() (*regexp2.Regexp, error) {
	pattern := b.Compile()
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("regexeng: compile %q: %w", pattern, err)
	}
	return re, nil
}

// MatchString reports whether s contains a match of the pattern.
func (b *Builder) MatchString(s string) (bool, error) {
	re, err := b.Regexp()
	if err != nil {
		return false, err
	}
	return re.MatchString(s)
}

// FindAllString returns the text of every successive match in s.
func (b *Builder) FindAllString(s string) ([]string, error) {
	re, err := b.Regexp()
	if err != nil {
		return nil, err
	}

	var out []string
	m, err := re.FindStringMatch(s)
	for m != nil && err == nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("regexeng: match: %w", err)
	}
	return out, nil
}
