// Package layout computes the geometry of boxes arranged under the CSS
// flexible-box layout model.
// Reference: https://drafts.csswg.org/css-flexbox-1/
package layout

// Rect represents a rectangular area. X and Y are relative to the parent
// box's border box, never absolute; see Tree.AbsoluteContentRect.
type Rect struct {
	X, Y, Width, Height float64
}

// EdgeSizes represents the sizes of edges (top, right, bottom, left).
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns the sum of the left and right edges.
func (e EdgeSizes) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the sum of the top and bottom edges.
func (e EdgeSizes) Vertical() float64 { return e.Top + e.Bottom }

// Dimensions represents the dimensions of a laid-out box. Content holds the
// content rect; padding, border and margin expand outward from it.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// PaddingBox returns the area covered by content and padding.
func (d *Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox returns the area covered by content, padding, and border.
func (d *Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox returns the area covered by content, padding, border, and margin.
func (d *Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// ExpandedBy returns a rectangle expanded by the given edge sizes.
func (r Rect) ExpandedBy(edge EdgeSizes) Rect {
	return Rect{
		X:      r.X - edge.Left,
		Y:      r.Y - edge.Top,
		Width:  r.Width + edge.Left + edge.Right,
		Height: r.Height + edge.Top + edge.Bottom,
	}
}
