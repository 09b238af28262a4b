package gen

import (
	"fmt"
	"strings"
)

// Code accumulates the statements of a method body. Nesting is tracked so
// If/Block/Case/End produce correctly indented blocks.
type Code struct {
	lines []string
	depth int
}

func (c *Code) add(line string) *Code {
	c.lines = append(c.lines, strings.Repeat("\t", c.depth)+line)
	return c
}

// Stmt appends one statement.
func (c *Code) Stmt(format string, args ...any) *Code {
	return c.add(fmt.Sprintf(format, args...))
}

// If opens an if block; cond is a format string.
func (c *Code) If(cond string, args ...any) *Code {
	c.add("if " + fmt.Sprintf(cond, args...) + " {")
	c.depth++
	return c
}

// Block opens a block with an arbitrary header such as "switch x {".
func (c *Code) Block(header string, args ...any) *Code {
	c.add(fmt.Sprintf(header, args...) + " {")
	c.depth++
	return c
}

// Case starts a switch clause. It sits one level out from its statements.
func (c *Code) Case(format string, args ...any) *Code {
	c.depth--
	c.add(fmt.Sprintf(format, args...) + ":")
	c.depth++
	return c
}

// End closes the innermost block.
func (c *Code) End() *Code {
	c.depth--
	return c.add("}")
}

// Lines returns the accumulated statements.
func (c *Code) Lines() []string {
	if c.depth != 0 {
		panic(fmt.Sprintf("gen: unbalanced code block (depth %d)", c.depth))
	}
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}
