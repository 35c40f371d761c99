// Package fixture loads flex layout scenarios from TOML documents. A
// document describes a box tree with CSS-ish keys plus optional geometry
// expectations, and is the input format of both the test corpus and the
// flexdump command.
package fixture

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/chrisuehlinger/flexkit/layout"
	"github.com/chrisuehlinger/flexkit/style"
)

// Node is one box in a fixture document. Keywords are spelled the way CSS
// spells them; sizes are bare numbers in pixels. Margins are strings so
// that "auto" stays representable.
type Node struct {
	Kind string `toml:"kind"` // "flex", "box" or "text"; root defaults to flex
	Text string `toml:"text"`

	Width     *float64 `toml:"width"`
	Height    *float64 `toml:"height"`
	MinWidth  *float64 `toml:"min-width"`
	MaxWidth  *float64 `toml:"max-width"`
	MinHeight *float64 `toml:"min-height"`
	MaxHeight *float64 `toml:"max-height"`

	Padding *float64 `toml:"padding"` // uniform, all four sides
	Border  *float64 `toml:"border"`

	MarginTop    string `toml:"margin-top"`
	MarginRight  string `toml:"margin-right"`
	MarginBottom string `toml:"margin-bottom"`
	MarginLeft   string `toml:"margin-left"`

	Direction    string   `toml:"direction"`
	Wrap         string   `toml:"wrap"`
	Justify      string   `toml:"justify"`
	AlignItems   string   `toml:"align-items"`
	AlignContent string   `toml:"align-content"`
	RowGap       *float64 `toml:"row-gap"`
	ColumnGap    *float64 `toml:"column-gap"`

	Grow        *float64 `toml:"grow"`
	Shrink      *float64 `toml:"shrink"`
	Basis       string   `toml:"basis"` // "auto", "content" or a number
	Order       *int     `toml:"order"`
	AlignSelf   string   `toml:"align-self"`
	AspectRatio *float64 `toml:"aspect-ratio"`
	FontSize    *float64 `toml:"font-size"`
	Display     string   `toml:"display"`
	Position    string   `toml:"position"`

	Children []Node `toml:"child"`
}

// Expectation pins the absolute content rect of one box, addressed by child
// indexes from the root. Nil fields are unchecked.
type Expectation struct {
	Path   []int    `toml:"path"`
	X      *float64 `toml:"x"`
	Y      *float64 `toml:"y"`
	Width  *float64 `toml:"width"`
	Height *float64 `toml:"height"`
}

// Document is a parsed fixture: the root node plus its expectations.
type Document struct {
	Node
	Expect []Expectation `toml:"expect"`
}

// Load reads and parses a fixture file. Unknown keys are errors so that a
// typoed property fails loudly instead of silently meaning "initial value".
func Load(path string) (*Document, error) {
	var doc Document
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("fixture: decode %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("fixture: %s: unknown key %q", path, undec[0].String())
	}
	return &doc, nil
}

// Parse is Load for in-memory documents.
func Parse(data string) (*Document, error) {
	var doc Document
	md, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("fixture: unknown key %q", undec[0].String())
	}
	return &doc, nil
}

// Build converts the document into a box tree ready for layout.
func (d *Document) Build() (*layout.Tree, layout.NodeID, error) {
	tr := layout.NewTree(countNodes(&d.Node))
	root, err := buildNode(tr, &d.Node, true)
	if err != nil {
		return nil, layout.None, err
	}
	return tr, root, nil
}

// Verify compares the laid-out tree against the document's expectations.
func (d *Document) Verify(tr *layout.Tree, root layout.NodeID) error {
	for i, e := range d.Expect {
		id, err := resolvePath(tr, root, e.Path)
		if err != nil {
			return fmt.Errorf("fixture: expect %d: %w", i, err)
		}
		r := tr.AbsoluteContentRect(id)
		check := func(name string, want *float64, got float64) error {
			if want != nil && !approx(*want, got) {
				return fmt.Errorf("fixture: expect %d (path %v): %s = %g, want %g", i, e.Path, name, got, *want)
			}
			return nil
		}
		for _, err := range []error{
			check("x", e.X, r.X),
			check("y", e.Y, r.Y),
			check("width", e.Width, r.Width),
			check("height", e.Height, r.Height),
		} {
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}

func countNodes(n *Node) int {
	total := 1
	for i := range n.Children {
		total += countNodes(&n.Children[i])
	}
	return total
}

func buildNode(tr *layout.Tree, n *Node, root bool) (layout.NodeID, error) {
	if n.Kind == "text" {
		id := tr.NewText(n.Text)
		if n.FontSize != nil {
			tr.Box(id).Style.FontSize = *n.FontSize
		}
		return id, nil
	}

	s, err := n.style(root)
	if err != nil {
		return layout.None, err
	}
	id := tr.NewBox(layout.ElementBox, s)
	for i := range n.Children {
		child, err := buildNode(tr, &n.Children[i], false)
		if err != nil {
			return layout.None, err
		}
		tr.AppendChild(id, child)
	}
	return id, nil
}

func resolvePath(tr *layout.Tree, root layout.NodeID, path []int) (layout.NodeID, error) {
	id := root
	for _, idx := range path {
		child := tr.Box(id).FirstChild
		for i := 0; i < idx && child != layout.None; i++ {
			child = tr.Box(child).NextSibling
		}
		if child == layout.None {
			return layout.None, fmt.Errorf("no child %d under box %d", idx, id)
		}
		id = child
	}
	return id, nil
}

func (n *Node) style(root bool) (*style.Style, error) {
	s := &style.Style{
		Width:     length(n.Width),
		Height:    length(n.Height),
		MinWidth:  length(n.MinWidth),
		MaxWidth:  length(n.MaxWidth),
		MinHeight: length(n.MinHeight),
		MaxHeight: length(n.MaxHeight),
	}
	if n.Padding != nil {
		v := *n.Padding
		s.Padding = style.Edges{Top: v, Right: v, Bottom: v, Left: v}
	}
	if n.Border != nil {
		v := *n.Border
		s.Border = style.Edges{Top: v, Right: v, Bottom: v, Left: v}
	}

	var err error
	if s.Margin.Top, err = margin(n.MarginTop); err != nil {
		return nil, fmt.Errorf("fixture: margin-top: %w", err)
	}
	if s.Margin.Right, err = margin(n.MarginRight); err != nil {
		return nil, fmt.Errorf("fixture: margin-right: %w", err)
	}
	if s.Margin.Bottom, err = margin(n.MarginBottom); err != nil {
		return nil, fmt.Errorf("fixture: margin-bottom: %w", err)
	}
	if s.Margin.Left, err = margin(n.MarginLeft); err != nil {
		return nil, fmt.Errorf("fixture: margin-left: %w", err)
	}

	kind := n.Kind
	if kind == "" && root {
		kind = "flex"
	}
	switch kind {
	case "flex":
		s.Display = style.DisplayFlex
	case "", "box":
	default:
		return nil, fmt.Errorf("fixture: unknown kind %q", n.Kind)
	}
	if n.Display != "" {
		if s.Display, err = display(n.Display); err != nil {
			return nil, err
		}
	}
	if s.Position, err = position(n.Position); err != nil {
		return nil, err
	}

	if s.FlexDirection, err = direction(n.Direction); err != nil {
		return nil, err
	}
	if s.FlexWrap, err = wrap(n.Wrap); err != nil {
		return nil, err
	}
	if s.JustifyContent, err = justify(n.Justify); err != nil {
		return nil, err
	}
	if s.AlignItems, err = alignItems(n.AlignItems); err != nil {
		return nil, err
	}
	if s.AlignContent, err = alignContent(n.AlignContent); err != nil {
		return nil, err
	}
	if s.AlignSelf, err = alignSelf(n.AlignSelf); err != nil {
		return nil, err
	}
	if n.RowGap != nil {
		s.RowGap = *n.RowGap
	}
	if n.ColumnGap != nil {
		s.ColumnGap = *n.ColumnGap
	}

	if n.Grow != nil {
		s.FlexGrow = *n.Grow
	}
	if n.Shrink != nil {
		s.FlexShrink = style.ShrinkFactor(*n.Shrink)
	}
	if s.FlexBasis, err = basis(n.Basis); err != nil {
		return nil, err
	}
	if n.Order != nil {
		s.Order = *n.Order
	}
	if n.AspectRatio != nil {
		s.AspectRatio = *n.AspectRatio
	}
	if n.FontSize != nil {
		s.FontSize = *n.FontSize
	}
	return s, nil
}

func length(p *float64) style.Length {
	if p == nil {
		return style.Length{}
	}
	return style.Px(*p)
}

func margin(v string) (style.Margin, error) {
	switch v {
	case "":
		return style.Margin{}, nil
	case "auto":
		return style.MarginAuto, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return style.Margin{}, fmt.Errorf("bad margin %q", v)
	}
	return style.MarginPx(f), nil
}

func basis(v string) (style.Basis, error) {
	switch v {
	case "", "auto":
		return style.Basis{}, nil
	case "content":
		return style.Basis{Kind: style.BasisContent}, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return style.Basis{}, fmt.Errorf("fixture: bad basis %q", v)
	}
	return style.BasisPx(f), nil
}

func display(v string) (style.Display, error) {
	switch v {
	case "block":
		return style.DisplayBlock, nil
	case "flex":
		return style.DisplayFlex, nil
	case "inline":
		return style.DisplayInline, nil
	case "none":
		return style.DisplayNone, nil
	}
	return 0, fmt.Errorf("fixture: unknown display %q", v)
}

func position(v string) (style.Position, error) {
	switch v {
	case "", "static":
		return style.PositionStatic, nil
	case "relative":
		return style.PositionRelative, nil
	case "absolute":
		return style.PositionAbsolute, nil
	case "fixed":
		return style.PositionFixed, nil
	}
	return 0, fmt.Errorf("fixture: unknown position %q", v)
}

func direction(v string) (style.FlexDirection, error) {
	switch v {
	case "", "row":
		return style.DirectionRow, nil
	case "row-reverse":
		return style.DirectionRowReverse, nil
	case "column":
		return style.DirectionColumn, nil
	case "column-reverse":
		return style.DirectionColumnReverse, nil
	}
	return 0, fmt.Errorf("fixture: unknown direction %q", v)
}

func wrap(v string) (style.FlexWrap, error) {
	switch v {
	case "", "nowrap":
		return style.WrapNone, nil
	case "wrap":
		return style.Wrap, nil
	case "wrap-reverse":
		return style.WrapReverse, nil
	}
	return 0, fmt.Errorf("fixture: unknown wrap %q", v)
}

func justify(v string) (style.Justify, error) {
	switch v {
	case "", "flex-start":
		return style.JustifyFlexStart, nil
	case "flex-end":
		return style.JustifyFlexEnd, nil
	case "center":
		return style.JustifyCenter, nil
	case "space-between":
		return style.JustifySpaceBetween, nil
	case "space-around":
		return style.JustifySpaceAround, nil
	case "space-evenly":
		return style.JustifySpaceEvenly, nil
	}
	return 0, fmt.Errorf("fixture: unknown justify %q", v)
}

func alignItems(v string) (style.AlignItems, error) {
	switch v {
	case "", "stretch":
		return style.AlignItemsStretch, nil
	case "flex-start":
		return style.AlignItemsFlexStart, nil
	case "flex-end":
		return style.AlignItemsFlexEnd, nil
	case "center":
		return style.AlignItemsCenter, nil
	case "baseline":
		return style.AlignItemsBaseline, nil
	}
	return 0, fmt.Errorf("fixture: unknown align-items %q", v)
}

func alignContent(v string) (style.AlignContent, error) {
	switch v {
	case "", "stretch":
		return style.AlignContentStretch, nil
	case "flex-start":
		return style.AlignContentFlexStart, nil
	case "flex-end":
		return style.AlignContentFlexEnd, nil
	case "center":
		return style.AlignContentCenter, nil
	case "space-between":
		return style.AlignContentSpaceBetween, nil
	case "space-around":
		return style.AlignContentSpaceAround, nil
	}
	return 0, fmt.Errorf("fixture: unknown align-content %q", v)
}

func alignSelf(v string) (style.AlignSelf, error) {
	switch v {
	case "", "auto":
		return style.AlignSelfAuto, nil
	case "flex-start":
		return style.AlignSelfFlexStart, nil
	case "flex-end":
		return style.AlignSelfFlexEnd, nil
	case "center":
		return style.AlignSelfCenter, nil
	case "baseline":
		return style.AlignSelfBaseline, nil
	case "stretch":
		return style.AlignSelfStretch, nil
	}
	return 0, fmt.Errorf("fixture: unknown align-self %q", v)
}
