package regexeng

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeAnchoredClass(t *testing.T) {
	got := Tokenize("^[a-z]+$")
	want := []PatternComponent{
		{ComponentAnchor, "^", "Start of string/line", 0},
		{ComponentCharacterClass, "[a-z]", "Character class: a-z", 1},
		{ComponentQuantifier, "+", "One or more times", 6},
		{ComponentAnchor, "$", "End of string/line", 7},
	}
	assert.Equal(t, want, got)
}

func TestTokenizeUnterminatedGroup(t *testing.T) {
	got := Tokenize("(abc")
	require.Len(t, got, 1)
	assert.Equal(t, PatternComponent{ComponentGroup, "(abc", "Capturing group", 0}, got[0])
}

func TestTokenizeSingleComponent(t *testing.T) {
	tests := []struct {
		pattern string
		typ     ComponentType
		desc    string
	}{
		{".", ComponentWildcard, "Any character except newline"},
		{"|", ComponentAlternation, "OR operator"},
		{"*", ComponentQuantifier, "Zero or more times"},
		{"?", ComponentQuantifier, "Zero or one time (optional)"},
		{"x", ComponentLiteral, "Literal character 'x'"},
		{"é", ComponentLiteral, "Literal character 'é'"},
		{`\`, ComponentLiteral, "Backslash"},
		{`\d`, ComponentEscape, "Any digit (0-9)"},
		{`\D`, ComponentEscape, "Any non-digit"},
		{`\w`, ComponentEscape, "Any word character (a-z, A-Z, 0-9, _)"},
		{`\W`, ComponentEscape, "Any non-word character"},
		{`\s`, ComponentEscape, "Any whitespace character"},
		{`\S`, ComponentEscape, "Any non-whitespace character"},
		{`\b`, ComponentEscape, "Word boundary"},
		{`\B`, ComponentEscape, "Non-word boundary"},
		{`\n`, ComponentEscape, "Newline"},
		{`\t`, ComponentEscape, "Tab"},
		{`\r`, ComponentEscape, "Carriage return"},
		{`\.`, ComponentEscape, "Escaped character '.'"},
		{`\é`, ComponentEscape, "Escaped character 'é'"},
		{"[abc]", ComponentCharacterClass, "Character class: abc"},
		{"[^abc]", ComponentCharacterClass, "Negated character class: NOT abc"},
		{"[abc", ComponentCharacterClass, "Character class: abc"},
		{"[^", ComponentCharacterClass, "Negated character class: NOT "},
		{"[", ComponentCharacterClass, "Character class: "},
		{`[a\]b]`, ComponentCharacterClass, `Character class: a\]b`},
		{`[a\]`, ComponentCharacterClass, `Character class: a\]`},
		{"(a)", ComponentGroup, "Capturing group"},
		{"(?:a)", ComponentGroup, "Non-capturing group"},
		{"(?=a)", ComponentLookahead, "Positive lookahead"},
		{"(?!a)", ComponentLookahead, "Negative lookahead"},
		{"(?<=a)", ComponentGroup, "Positive lookbehind"},
		{"(?<!a)", ComponentGroup, "Negative lookbehind"},
		{`(?<year>\d+)`, ComponentGroup, "Named capturing group 'year'"},
		{`(?P<year>\d+)`, ComponentGroup, "Named capturing group 'year'"},
		{"(a(b)c)", ComponentGroup, "Capturing group"},
		{`(a\)b)`, ComponentGroup, "Capturing group"},
		{`(a\`, ComponentGroup, "Capturing group"},
		{"(?:a(?=b)", ComponentGroup, "Non-capturing group"},
		{"{3}", ComponentQuantifier, "Quantifier: 3 occurrences"},
		{"{2,5}", ComponentQuantifier, "Quantifier: 2,5 occurrences"},
		{"{2,", ComponentQuantifier, "Quantifier: 2, occurrences"},
		{"{2,5", ComponentQuantifier, "Quantifier: 2,5 occurrences"},
		{"{", ComponentQuantifier, "Quantifier:  occurrences"},
	}
	for _, tc := range tests {
		got := Tokenize(tc.pattern)
		require.Len(t, got, 1, "Tokenize(%q) = %+v", tc.pattern, got)
		assert.Equal(t, tc.typ, got[0].Type, tc.pattern)
		assert.Equal(t, tc.pattern, got[0].Value)
		assert.Equal(t, tc.desc, got[0].Description, tc.pattern)
		assert.Equal(t, 0, got[0].Offset)
	}
}

func TestTokenizeSequence(t *testing.T) {
	got := Tokenize(`(a(b)c)d\.{2}|é!`)
	values := make([]string, len(got))
	offsets := make([]int, len(got))
	for i, c := range got {
		values[i] = c.Value
		offsets[i] = c.Offset
	}
	assert.Equal(t, []string{"(a(b)c)", "d", `\.`, "{2}", "|", "é", "!"}, values)
	assert.Equal(t, []int{0, 7, 8, 10, 13, 14, 16}, offsets)
}

func TestTokenizeUnterminatedQuantifierAfterLiteral(t *testing.T) {
	got := Tokenize("a{2,5")
	require.Len(t, got, 2)
	assert.Equal(t, PatternComponent{ComponentQuantifier, "{2,5", "Quantifier: 2,5 occurrences", 1}, got[1])
}

func TestTokenizeLookbehindIsGroup(t *testing.T) {
	got := Tokenize("(?<=a)b")
	require.Len(t, got, 2)
	assert.Equal(t, PatternComponent{ComponentGroup, "(?<=a)", "Positive lookbehind", 0}, got[0])
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestTokenizeCompiledPattern(t *testing.T) {
	b := New()
	helloWorld(b)
	got := Tokenize(b.Compile())
	require.Len(t, got, 3)
	assert.Equal(t, "(?:[Hh]ello)", got[0].Value)
	assert.Equal(t, "Non-capturing group", got[0].Description)
	assert.Equal(t, "[ ]", got[1].Value)
	assert.Equal(t, "(?:[Ww]orld)", got[2].Value)
}

func TestTokenizerReentrant(t *testing.T) {
	tk := NewTokenizer("a+")
	first := tk.Tokenize()
	assert.Equal(t, first, tk.Tokenize())
	assert.Equal(t, first, Tokenize("a+"))
}

var partitionCorpus = []string{
	"",
	"^[a-z]+$",
	"(abc",
	`\`,
	`a\`,
	`(a\`,
	`[a\`,
	"{",
	"a{2,",
	"[^]]",
	"((((",
	"))))",
	`(?<name>[^\]]+)\k<name>`,
	`^(?:\+?1[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}$`,
	"日本語|中文",
	"\xff\xfe(\xff",
}

func checkPartition(t *testing.T, pattern string) {
	t.Helper()
	comps := Tokenize(pattern)
	var sb strings.Builder
	last := -1
	for _, c := range comps {
		require.NotEmpty(t, c.Value, "empty component in %q", pattern)
		require.Equal(t, sb.Len(), c.Offset, "offset gap in %q", pattern)
		require.Greater(t, c.Offset, last)
		last = c.Offset
		sb.WriteString(c.Value)
	}
	require.Equal(t, pattern, sb.String())
}

func TestTokenizePartitionsInput(t *testing.T) {
	for _, p := range partitionCorpus {
		checkPartition(t, p)
	}
}

func FuzzTokenizePartitionsInput(f *testing.F) {
	for _, p := range partitionCorpus {
		f.Add(p)
	}
	f.Fuzz(func(t *testing.T, pattern string) {
		checkPartition(t, pattern)
	})
}

func TestComponentJSON(t *testing.T) {
	c := PatternComponent{ComponentLookahead, "(?=a)", "Positive lookahead", 4}
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Lookahead","value":"(?=a)","description":"Positive lookahead","offset":4}`, string(data))

	var back PatternComponent
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)

	var typ ComponentType
	assert.Error(t, typ.UnmarshalText([]byte("Nope")))
	assert.Equal(t, "ComponentType(42)", ComponentType(42).String())
}
