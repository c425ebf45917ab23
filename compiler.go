package regexeng

import (
	"strconv"
	"strings"
)

// compiler folds a fragment tree into pattern text.
type compiler struct {
	a   *arena
	buf strings.Builder
}

func newCompiler(a *arena) *compiler {
	return &compiler{a: a}
}

// Compile returns the pattern text for f.
func (f Fragment) Compile() string {
	f.entry()
	c := newCompiler(f.a)
	c.compileNode(f.idx)
	return c.buf.String()
}

func (c *compiler) emit(s string) {
	c.buf.WriteString(s)
}

func (c *compiler) compileNode(idx int) {
	e := c.a.get(idx)
	switch n := e.node.(type) {
	case *Group:
		c.wrap("(?:", e.children, "", ")")
		c.compileList(e.modifiers, "")

	case *CaptureGroup:
		c.wrap("(", e.children, "", ")")
		c.compileList(e.modifiers, "")

	case *NamedCaptureGroup:
		c.wrap("(?<"+n.Name+">", e.children, "", ")")
		c.compileList(e.modifiers, "")

	case *CharacterSet:
		open := "["
		if n.Negated {
			open = "[^"
		}
		c.emit(open)
		c.emit(strings.Join(n.Members, ""))
		c.emit("]")
		c.compileList(e.modifiers, "")

	case *ExactRepeat:
		c.emit("{" + strconv.Itoa(n.Count) + "}")

	case *RepeatRange:
		c.emit("{" + strconv.Itoa(n.Min) + ",")
		if n.Max != Unbounded {
			c.emit(strconv.Itoa(n.Max))
		}
		c.emit("}")

	case *Anchor:
		c.positioned(n.Text, n.Position, e)

	case *Operator:
		c.positioned(n.Text, n.Position, e)

	case *LookaroundGroup:
		c.compileList(e.children, "")
		c.compileList(e.modifiers, "")
		c.emit(lookaroundOpen(n.Lookaround))
		c.emit(n.Assertion)
		c.emit(")")

	case *AlternationList:
		c.wrap("(?:", e.children, "|", ")")
		c.compileList(e.modifiers, "")

	case *Combined:
		c.compileList(e.children, "")
		c.compileList(e.modifiers, "")

	case *Literal:
		c.emit(n.Text)
		c.compileList(e.modifiers, "")

	case *CharEscape:
		c.emit(n.Text)
		c.compileList(e.modifiers, "")
	}
}

func (c *compiler) compileList(idxs []int, sep string) {
	for i, idx := range idxs {
		if i > 0 {
			c.emit(sep)
		}
		c.compileNode(idx)
	}
}

func (c *compiler) wrap(open string, idxs []int, sep, end string) {
	c.emit(open)
	c.compileList(idxs, sep)
	c.emit(end)
}

func (c *compiler) positioned(text string, pos Position, e *entry) {
	if pos == Leading {
		c.emit(text)
	}
	c.compileList(e.children, "")
	c.compileList(e.modifiers, "")
	if pos == Trailing {
		c.emit(text)
	}
}

func lookaroundOpen(k LookaroundKind) string {
	switch k {
	case NegativeLookahead:
		return "(?!"
	case PositiveLookbehind:
		return "(?<="
	case NegativeLookbehind:
		return "(?<!"
	}
	return "(?="
}
