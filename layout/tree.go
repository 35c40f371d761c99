package layout

import (
	"fmt"
	"iter"
	"strings"

	"github.com/chrisuehlinger/flexkit/style"
)

// NodeID addresses a box inside a Tree. IDs are stable for the lifetime of
// the tree; boxes are stored in an arena and linked by ID rather than by
// pointer.
type NodeID int32

// None marks the absence of a node (no parent, no sibling, and so on).
const None NodeID = -1

// BoxKind discriminates element boxes from raw text runs. Text runs never
// become flex items; they are content measured and laid out by the flow
// primitive of their enclosing element.
type BoxKind int

const (
	ElementBox BoxKind = iota
	TextBox
)

// Box is a single node of the layout tree. Geometry is written by the layout
// engine; everything else is input. Content coordinates are relative to the
// parent's border box, so translating a parent never touches its children.
type Box struct {
	Kind  BoxKind
	Style *style.Style
	Text  string

	Parent      NodeID
	FirstChild  NodeID
	LastChild   NodeID
	NextSibling NodeID

	Dimensions Dimensions
}

// Tree is an arena of boxes. The zero Tree is empty and ready to use.
type Tree struct {
	boxes []Box
}

// NewTree returns a tree with capacity for n boxes.
func NewTree(n int) *Tree {
	return &Tree{boxes: make([]Box, 0, n)}
}

// NewBox appends an unlinked box and returns its ID. A nil style means
// "all CSS initial values".
func (t *Tree) NewBox(kind BoxKind, s *style.Style) NodeID {
	if s == nil {
		s = &style.Style{}
	}
	t.boxes = append(t.boxes, Box{
		Kind:        kind,
		Style:       s,
		Parent:      None,
		FirstChild:  None,
		LastChild:   None,
		NextSibling: None,
	})
	return NodeID(len(t.boxes) - 1)
}

// NewText appends an unlinked text box holding the given run.
func (t *Tree) NewText(text string) NodeID {
	id := t.NewBox(TextBox, nil)
	t.boxes[id].Text = text
	return id
}

// Box returns the box for id. The pointer stays valid until the next NewBox
// call; hold IDs, not pointers, across mutations.
func (t *Tree) Box(id NodeID) *Box {
	return &t.boxes[id]
}

// Len returns the number of boxes in the arena.
func (t *Tree) Len() int { return len(t.boxes) }

// AppendChild links child as the last child of parent. The child must be
// unlinked.
func (t *Tree) AppendChild(parent, child NodeID) {
	c := &t.boxes[child]
	if c.Parent != None {
		panic("layout: AppendChild of an already linked box")
	}
	c.Parent = parent
	p := &t.boxes[parent]
	if p.FirstChild == None {
		p.FirstChild = child
	} else {
		t.boxes[p.LastChild].NextSibling = child
	}
	p.LastChild = child
}

// Children iterates over the direct children of id in document order.
func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for c := t.boxes[id].FirstChild; c != None; c = t.boxes[c].NextSibling {
			if !yield(c) {
				return
			}
		}
	}
}

// ChildCount returns the number of direct children of id.
func (t *Tree) ChildCount(id NodeID) int {
	n := 0
	for c := t.boxes[id].FirstChild; c != None; c = t.boxes[c].NextSibling {
		n++
	}
	return n
}

// AbsoluteContentRect returns the content rect of id with ancestor offsets
// accumulated, i.e. in the coordinate space of the tree's root. Stored
// geometry stays parent-relative; absolute coordinates are always derived.
func (t *Tree) AbsoluteContentRect(id NodeID) Rect {
	r := t.boxes[id].Dimensions.Content
	for p := t.boxes[id].Parent; p != None; p = t.boxes[p].Parent {
		bb := t.boxes[p].Dimensions.BorderBox()
		r.X += bb.X
		r.Y += bb.Y
	}
	return r
}

// AbsoluteBorderRect is AbsoluteContentRect for the border box.
func (t *Tree) AbsoluteBorderRect(id NodeID) Rect {
	r := t.boxes[id].Dimensions.BorderBox()
	for p := t.boxes[id].Parent; p != None; p = t.boxes[p].Parent {
		bb := t.boxes[p].Dimensions.BorderBox()
		r.X += bb.X
		r.Y += bb.Y
	}
	return r
}

// Dump renders the subtree geometry as indented lines, one box per line:
//
//	flex 0,0 300x100
//	  box 10,0 80x100
//
// Coordinates are the stored parent-relative content coordinates.
func (t *Tree) Dump(root NodeID) string {
	var sb strings.Builder
	t.dump(&sb, root, 0)
	return sb.String()
}

func (t *Tree) dump(sb *strings.Builder, id NodeID, depth int) {
	b := &t.boxes[id]
	c := b.Dimensions.Content
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, "%s %g,%g %gx%g\n", t.kindName(id), c.X, c.Y, c.Width, c.Height)
	for child := range t.Children(id) {
		t.dump(sb, child, depth+1)
	}
}

func (t *Tree) kindName(id NodeID) string {
	b := &t.boxes[id]
	switch {
	case b.Kind == TextBox:
		return "text"
	case b.Style != nil && b.Style.Display == style.DisplayFlex:
		return "flex"
	default:
		return "box"
	}
}
