package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexeng"
)

type sample struct {
	name   string
	build  func(b *regexeng.Builder)
	inputs []string
}

var samples = []sample{
	{
		name: "Test 1",
		build: func(b *regexeng.Builder) {
			b.AddFragments(
				b.CharacterSet('H', 'h').Combine(b.Literal("ello")).Group(),
				b.CharacterSet(' '),
				b.CharacterSet('W', 'w').Combine(b.Literal("orld")).Group(),
			)
		},
		inputs: []string{"Hello World", "hello world", "Hello world!", "Hello World!!"},
	},
	{
		name: "Test 2",
		build: func(b *regexeng.Builder) {
			b.AddFragments(b.CharEscape(regexeng.Digit).OneOrMore().Combine(b.CharacterSet(' ').Optional()))
		},
		inputs: []string{"100", "100 101 102", "123 32123"},
	},
}

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Build the sample patterns and check them against their inputs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range samples {
			if err := runSample(cmd.OutOrStdout(), s); err != nil {
				return err
			}
		}
		return nil
	},
}

func runSample(w io.Writer, s sample) error {
	b := regexeng.New(regexeng.WithLogger(logger))
	s.build(b)

	var failed []string
	for _, input := range s.inputs {
		ok, err := b.MatchString(input)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if !ok {
			failed = append(failed, input)
		}
	}
	logger.Debug("sample checked",
		zap.String("sample", s.name),
		zap.String("pattern", b.Compile()),
		zap.Int("failed", len(failed)))

	fmt.Fprintf(w, "%s: %s\n", s.name, b.Compile())
	if len(failed) == 0 {
		fmt.Fprintln(w, "All tests passed.")
		return nil
	}
	fmt.Fprintln(w, "The following tests failed:")
	for _, f := range failed {
		fmt.Fprintln(w, f)
	}
	return nil
}
