package layout

import "github.com/chrisuehlinger/flexkit/style"

// finalizeBaselines re-derives baselines from laid-out geometry and shifts
// baseline-aligned items whose provisional position no longer matches. Only
// nested containers can move here: their real baseline comes from their
// first item, which does not exist until after content dispatch.
func (run *layoutRun) finalizeBaselines() {
	if !run.needsBaseline || !run.props.mainHorizontal {
		return
	}

	for _, line := range run.lines {
		changed := false
		for _, it := range line.items {
			if !run.itemAlignsToBaseline(it) || it.content != nestedContainer {
				continue
			}
			bl := it.outerCross()
			if inner, ok := run.boxBaseline(it.id); ok {
				bl = it.marginCrossStart + inner
			}
			if bl != it.baseline {
				it.baseline = bl
				it.hasBaseline = true
				changed = true
			}
		}
		if !changed {
			continue
		}

		var maxBaseline float64
		for _, it := range line.items {
			if run.itemAlignsToBaseline(it) && it.baselineOrSynth() > maxBaseline {
				maxBaseline = it.baselineOrSynth()
			}
		}
		line.maxBaseline = maxBaseline

		for _, it := range line.items {
			if !run.itemAlignsToBaseline(it) {
				continue
			}
			pos := maxBaseline - it.baselineOrSynth()
			if delta := pos - it.crossPos; delta != 0 {
				it.crossPos = pos
				run.tree.Box(it.id).Dimensions.Content.Y += delta
			}
		}
	}
}

// boxBaseline returns a laid-out box's first baseline measured from its
// border-box top. Text runs expose their ascent; elements defer to their
// first in-flow child, offset by that child's position.
func (run *layoutRun) boxBaseline(id NodeID) (float64, bool) {
	b := run.tree.Box(id)
	if b.Kind == TextBox {
		return b.Dimensions.Border.Top + b.Dimensions.Padding.Top +
			fontSize(b)*ascentRatio, true
	}
	for child := range run.tree.Children(id) {
		cb := run.tree.Box(child)
		if cb.Kind == ElementBox && cb.Style != nil {
			if cb.Style.Display == style.DisplayNone {
				continue
			}
			p := cb.Style.Position
			if p == style.PositionAbsolute || p == style.PositionFixed {
				continue
			}
		}
		inner, ok := run.boxBaseline(child)
		if !ok {
			continue
		}
		top := cb.Dimensions.Content.Y - cb.Dimensions.Padding.Top - cb.Dimensions.Border.Top
		return top + inner, true
	}
	return 0, false
}
