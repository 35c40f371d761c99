package layout

import "github.com/chrisuehlinger/flexkit/style"

// LayoutFlexContainer performs a full flex layout of the subtree rooted at
// id. The container's own position is never written; callers place the root
// box. Calling it again on the same tree reproduces the same geometry: every
// run starts from style, not from a previous run's output.
func LayoutFlexContainer(ctx *Context, t *Tree, id NodeID) {
	ctx.beginRun()
	ctx.layoutFlexNode(t, id)
}

func (ctx *Context) layoutFlexNode(t *Tree, id NodeID) {
	if ctx.depth >= ctx.maxDepth() {
		ctx.logger().Warn("flex nesting exceeds recursion cap, keeping subtree as a leaf",
			"box", id, "depth", ctx.depth)
		return
	}
	ctx.depth++
	defer func() { ctx.depth-- }()

	b := t.Box(id)
	applyContainerBoxModel(b)

	run := &layoutRun{tree: t, ctx: ctx, box: id, props: newFlexContainer(b)}

	mainDefinite, crossDefinite := run.resolveContainerSizes(b)

	run.items = run.collectItems()
	if len(run.items) == 0 {
		if !crossDefinite {
			run.crossSize = 0
		}
		run.writeContainerSize(b)
		return
	}

	if !mainDefinite && run.mainSize == 0 {
		// No constraint at all on the main axis: size to content.
		for _, it := range run.items {
			run.mainSize += it.outerHypoMain()
		}
		run.mainSize += gapsTotal(run.props.mainGap, len(run.items))
	}

	run.lines = run.buildLines(run.mainSize)
	for _, line := range run.lines {
		run.resolveLine(line, run.mainSize)
		run.determineLineCross(line)
	}

	if len(run.lines) == 1 && crossDefinite {
		run.lines[0].crossSize = run.crossSize
	}
	if !crossDefinite {
		total := gapsTotal(run.props.crossGap, len(run.lines))
		for _, line := range run.lines {
			total += line.crossSize
		}
		run.crossSize = run.clampContainerCross(b.Style, total)
	}

	// Line distribution first: align-content stretch grows the lines that
	// the per-item cross alignment then sizes and positions against.
	run.lineOffsets = run.alignLines(run.crossSize)
	for _, line := range run.lines {
		run.alignCrossAxis(line)
		run.justifyMainAxis(line, run.mainSize)
	}

	run.writeContainerSize(b)
	run.positionItems()
	run.finalizeBaselines()
}

// resolveContainerSizes fixes the container's content-box main and cross
// sizes for this run. A definite style size wins; otherwise the box keeps
// whatever content size its parent already gave it, and the reported
// definiteness tells the pipeline whether that axis may still grow.
func (run *layoutRun) resolveContainerSizes(b *Box) (mainDefinite, crossDefinite bool) {
	s := b.Style
	w := s.Width.Or(b.Dimensions.Content.Width)
	h := s.Height.Or(b.Dimensions.Content.Height)
	w = clamp(w, s.MinWidth.Or(0), s.MaxWidth.Or(Unconstrained))
	h = clamp(h, s.MinHeight.Or(0), s.MaxHeight.Or(Unconstrained))

	run.mainSize, run.crossSize = run.props.mainCross(w, h)

	wDef := s.Width.Definite || b.Dimensions.Content.Width > 0
	hDef := s.Height.Definite || b.Dimensions.Content.Height > 0
	if run.props.mainHorizontal {
		return wDef, hDef
	}
	return hDef, wDef
}

func (run *layoutRun) clampContainerCross(s *style.Style, v float64) float64 {
	if run.props.mainHorizontal {
		return clamp(v, s.MinHeight.Or(0), s.MaxHeight.Or(Unconstrained))
	}
	return clamp(v, s.MinWidth.Or(0), s.MaxWidth.Or(Unconstrained))
}

func (run *layoutRun) writeContainerSize(b *Box) {
	w, h := run.props.widthHeight(run.mainSize, run.crossSize)
	b.Dimensions.Content.Width = w
	b.Dimensions.Content.Height = h
}
