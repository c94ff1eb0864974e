package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/confsync/confsync/tree"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	CreateColor
	DeleteColor
	ReplaceColor
	MergeColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[FieldColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[ValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[CreateColor] = color.GreenString
	colors.Map[DeleteColor] = color.RedString
	colors.Map[ReplaceColor] = color.YellowString
	colors.Map[MergeColor] = color.CyanString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

func opAttr(op tree.OpTag) ColorAttr {
	switch op {
	case tree.OpCreate:
		return CreateColor
	case tree.OpDelete:
		return DeleteColor
	case tree.OpReplace:
		return ReplaceColor
	default:
		return MergeColor
	}
}
