package layout

import (
	"github.com/chrisuehlinger/flexkit/style"
)

// flexContainer holds a container's resolved properties for one layout run.
// It is built once from the container box's style and read-only afterwards;
// the zero value of every style enum is its CSS initial value, so defaulting
// happens by construction.
type flexContainer struct {
	direction     style.FlexDirection
	wrap          style.FlexWrap
	justify       style.Justify
	alignItems    style.AlignItems
	alignContent  style.AlignContent
	textDirection style.TextDirection

	// mainHorizontal is true when the main axis runs along the page's
	// horizontal axis, after combining direction with the writing mode.
	mainHorizontal bool

	// mainReversed is true when items flow against the physical axis
	// direction (row-reverse, or RTL text in a row container).
	mainReversed bool

	mainGap  float64 // gap between adjacent items on the main axis
	crossGap float64 // gap between adjacent lines on the cross axis
}

func newFlexContainer(b *Box) flexContainer {
	s := b.Style
	if s == nil {
		s = &style.Style{}
	}
	horizontalWriting := s.WritingMode == style.HorizontalTB
	rowLike := s.FlexDirection.RowLike()

	c := flexContainer{
		direction:      s.FlexDirection,
		wrap:           s.FlexWrap,
		justify:        s.JustifyContent,
		alignItems:     s.AlignItems,
		alignContent:   s.AlignContent,
		textDirection:  s.TextDirection,
		mainHorizontal: rowLike == horizontalWriting,
		mainReversed:   s.FlexDirection.Reversed(),
	}
	if rowLike {
		c.mainGap, c.crossGap = s.ColumnGap, s.RowGap
	} else {
		c.mainGap, c.crossGap = s.RowGap, s.ColumnGap
	}
	if rowLike && s.TextDirection == style.RTL {
		c.mainReversed = !c.mainReversed
	}
	return c
}

// layoutRun is the transient state of one container's layout. Allocated at
// container-layout entry, discarded at exit; only box geometry persists.
type layoutRun struct {
	tree  *Tree
	ctx   *Context
	box   NodeID
	props flexContainer

	items []*flexItem
	lines []*flexLine

	// lineOffsets holds each line's cross offset within the container's
	// content box, filled by alignLines.
	lineOffsets []float64

	// Content-box sizes of the container along each axis.
	mainSize  float64
	crossSize float64

	// needsBaseline marks that at least one item aligns to baseline and the
	// corrective pass must run after content dispatch.
	needsBaseline bool
}

// applyContainerBoxModel copies the container's padding, border and margin
// from style into its dimensions. Auto margins on the container itself
// resolve to zero; the container is positioned by its own parent.
func applyContainerBoxModel(b *Box) {
	s := b.Style
	if s == nil {
		return
	}
	b.Dimensions.Padding = EdgeSizes(s.Padding)
	b.Dimensions.Border = EdgeSizes(s.Border)
	b.Dimensions.Margin = EdgeSizes{
		Top:    s.Margin.Top.Or(0),
		Right:  s.Margin.Right.Or(0),
		Bottom: s.Margin.Bottom.Or(0),
		Left:   s.Margin.Left.Or(0),
	}
}

// mainCross splits a width/height pair into main/cross per the container's
// axes.
func (c *flexContainer) mainCross(w, h float64) (main, cross float64) {
	if c.mainHorizontal {
		return w, h
	}
	return h, w
}

// widthHeight is the inverse of mainCross.
func (c *flexContainer) widthHeight(main, cross float64) (w, h float64) {
	if c.mainHorizontal {
		return main, cross
	}
	return cross, main
}
