package diag

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Context stores information derived from a range in some text. It is used for
// errors that point to a part of the source code.
type Context struct {
	Name   string
	Source string
	Ranging

	// 1-based line and column numbers of the start of the range.
	StartLine, StartCol int
	// The text of the lines covered by the range, split at the culprit.
	head, culprit, tail string
	endLine             int
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	rg := r.Range()
	c := &Context{Name: name, Source: source, Ranging: rg}
	if rg.From < 0 || rg.To > len(source) || rg.From > rg.To {
		return c
	}
	before := source[:rg.From]
	c.head = before[strings.LastIndexByte(before, '\n')+1:]
	c.StartLine = strings.Count(before, "\n") + 1
	c.StartCol = len(c.head) + 1

	c.culprit = source[rg.From:rg.To]
	if strings.HasSuffix(c.culprit, "\n") {
		c.culprit = c.culprit[:len(c.culprit)-1]
	} else {
		after := source[rg.To:]
		if i := strings.IndexByte(after, '\n'); i != -1 {
			after = after[:i]
		}
		c.tail = after
	}
	c.endLine = c.StartLine + strings.Count(c.culprit, "\n")
	return c
}

// Variables controlling the style of the culprit.
var (
	culpritStart       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceHolder = "^"
)

// Describe returns the name and position of the context, like
// "[tty 1]:1:5".
func (c *Context) Describe() string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%s:%d:%d", c.Name, c.StartLine, c.StartCol)
}

// Show shows the context, with the source excerpt on its own line.
func (c *Context) Show(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Describe() + ":\n" + indent + c.relevantSource(indent)
}

// ShowCompact shows the context, with no line break between the position
// and the source excerpt.
func (c *Context) ShowCompact(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.Describe() + ": "
	// Extra indent so that following lines line up with the first line.
	descIndent := strings.Repeat(" ", uniseg.StringWidth(desc))
	return desc + c.relevantSource(indent+descIndent)
}

func (c *Context) checkPosition() error {
	switch {
	case c.From == -1:
		return fmt.Errorf("%s, unknown position", c.Name)
	case c.From < 0 || c.To > len(c.Source) || c.From > c.To:
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) relevantSource(indent string) string {
	var sb strings.Builder
	sb.WriteString(c.head)

	culprit := c.culprit
	if culprit == "" {
		culprit = culpritPlaceHolder
	}
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(indent)
		}
		sb.WriteString(culpritStart)
		sb.WriteString(line)
		sb.WriteString(culpritEnd)
	}

	sb.WriteString(c.tail)
	return sb.String()
}
