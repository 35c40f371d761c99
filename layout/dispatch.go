package layout

// positionItems converts the resolved main/cross geometry into box
// dimensions and hands each item's content to the right layer: nested flex
// containers recurse, everything else goes to the content backend.
func (run *layoutRun) positionItems() {
	c := run.tree.Box(run.box)
	originX := c.Dimensions.Border.Left + c.Dimensions.Padding.Left
	originY := c.Dimensions.Border.Top + c.Dimensions.Padding.Top

	for li, line := range run.lines {
		for _, it := range line.items {
			run.placeItem(it, run.lineOffsets[li], originX, originY)
		}
	}
}

// placeItem writes one item's dimensions into the tree and lays out its
// content. The item's main/cross sizes are border-box; its positions are
// margin-box offsets from the container's content box.
func (run *layoutRun) placeItem(it *flexItem, lineOffset, originX, originY float64) {
	b := run.tree.Box(it.id)

	b.Dimensions.Padding = EdgeSizes(b.Style.Padding)
	b.Dimensions.Border = EdgeSizes(b.Style.Border)
	if run.props.mainHorizontal {
		b.Dimensions.Margin = EdgeSizes{
			Left:   it.marginMainStart,
			Right:  it.marginMainEnd,
			Top:    it.marginCrossStart,
			Bottom: it.marginCrossEnd,
		}
	} else {
		b.Dimensions.Margin = EdgeSizes{
			Top:    it.marginMainStart,
			Bottom: it.marginMainEnd,
			Left:   it.marginCrossStart,
			Right:  it.marginCrossEnd,
		}
	}

	contentMain := it.mainSize - it.padBorderMain
	if contentMain < 0 {
		contentMain = 0
	}
	contentCross := it.crossSize - it.padBorderCross
	if contentCross < 0 {
		contentCross = 0
	}

	borderX, borderY := run.props.widthHeight(
		it.mainPos+it.marginMainStart,
		lineOffset+it.crossPos+it.marginCrossStart,
	)
	w, h := run.props.widthHeight(contentMain, contentCross)

	b.Dimensions.Content = Rect{
		X:      originX + borderX + b.Dimensions.Border.Left + b.Dimensions.Padding.Left,
		Y:      originY + borderY + b.Dimensions.Border.Top + b.Dimensions.Padding.Top,
		Width:  w,
		Height: h,
	}

	run.layoutContent(it, b)
}

func (run *layoutRun) layoutContent(it *flexItem, b *Box) {
	if it.content == nestedContainer {
		run.ctx.layoutFlexNode(run.tree, it.id)
		return
	}
	if run.ctx.Backend == nil {
		return
	}
	inner := Rect{
		X:      b.Dimensions.Border.Left + b.Dimensions.Padding.Left,
		Y:      b.Dimensions.Border.Top + b.Dimensions.Padding.Top,
		Width:  b.Dimensions.Content.Width,
		Height: b.Dimensions.Content.Height,
	}
	run.ctx.Backend.Layout(run.tree, it.id, inner)
}
