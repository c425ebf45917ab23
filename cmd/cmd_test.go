package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"regexeng"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := Execute()
	return out.String(), err
}

func TestParseTable(t *testing.T) {
	out, err := run(t, "parse", "--format", "table", "^[a-z]+$")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"Position", "Type", "Value", "Description"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "CharacterClass", "[a-z]", "Character", "class:", "a-z"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"7", "Anchor", "$", "End", "of", "string/line"}, strings.Fields(lines[4]))
}

func TestParseJSON(t *testing.T) {
	out, err := run(t, "parse", "--format", "json", "(abc")
	require.NoError(t, err)

	var comps []regexeng.PatternComponent
	require.NoError(t, json.Unmarshal([]byte(out), &comps))
	require.Len(t, comps, 1)
	assert.Equal(t, regexeng.ComponentGroup, comps[0].Type)
	assert.Equal(t, "(abc", comps[0].Value)
}

func TestParseYAML(t *testing.T) {
	out, err := run(t, "parse", "--format", "yaml", `a\d`)
	require.NoError(t, err)

	var comps []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &comps))
	require.Len(t, comps, 2)
	assert.Equal(t, "Literal", comps[0]["type"])
	assert.Equal(t, "Escape", comps[1]["type"])
	assert.Equal(t, 1, comps[1]["offset"])
}

func TestParseUnknownFormat(t *testing.T) {
	out, err := run(t, "parse", "--format", "xml", "a")
	require.Error(t, err)
	assert.Contains(t, out, "Error:")
}

func TestParseNeedsPattern(t *testing.T) {
	out, err := run(t, "parse", "--format", "table")
	require.Error(t, err)
	assert.Contains(t, out, "Error: accepts 1 arg(s), received 0")
}

func TestUnknownFlagReported(t *testing.T) {
	out, err := run(t, "parse", "--bogus", "a")
	require.Error(t, err)
	assert.Contains(t, out, "unknown flag: --bogus")
}

func TestSamples(t *testing.T) {
	out, err := run(t, "samples")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Test 1: (?:[Hh]ello)[ ](?:[Ww]orld)",
		"All tests passed.",
		`Test 2: \d+[ ]?`,
		"All tests passed.",
		"",
	}, "\n"), out)
}

func TestRunSampleReportsFailures(t *testing.T) {
	var out bytes.Buffer
	err := runSample(&out, sample{
		name: "digits",
		build: func(b *regexeng.Builder) {
			b.AddFragments(b.CharEscape(regexeng.Digit).OneOrMore().AnchorStart().AnchorEnd())
		},
		inputs: []string{"42", "4x2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "digits: ^\\d+$\nThe following tests failed:\n4x2\n", out.String())
}
