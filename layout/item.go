package layout

import (
	"math"
	"sort"

	"github.com/chrisuehlinger/flexkit/style"
)

// contentKind is resolved once during preparation so later passes never
// re-inspect styles to decide how an item's content is laid out.
type contentKind int

const (
	flowContent contentKind = iota
	nestedContainer
)

// flexItem is the per-item record of one layout run. Sizes are border-box
// sizes along the container's main/cross axes; positions are margin-box
// offsets from the container's content box.
type flexItem struct {
	id      NodeID
	order   int
	grow    float64
	shrink  float64
	content contentKind
	align   style.AlignSelf

	baseSize float64 // flex base size
	hypoMain float64 // base size clamped by min/max

	minMain, maxMain   float64
	minCross, maxCross float64

	marginMainStart, marginMainEnd   float64
	marginCrossStart, marginCrossEnd float64
	autoMainStart, autoMainEnd       bool
	autoCrossStart, autoCrossEnd     bool

	padBorderMain, padBorderCross float64

	definiteCross bool    // explicit or ratio-derived; exempt from stretch
	crossHint     float64 // cross size before stretch: definite or content-based

	measurement Measurement

	// Flexible-length resolver state.
	targetMain float64
	frozen     bool
	violation  float64

	// Final geometry.
	mainSize, crossSize float64
	mainPos, crossPos   float64

	baseline    float64 // from margin-box top; corrected after content dispatch
	hasBaseline bool
}

func (it *flexItem) outerHypoMain() float64 {
	return it.hypoMain + it.marginMainStart + it.marginMainEnd
}

func (it *flexItem) outerMain() float64 {
	return it.mainSize + it.marginMainStart + it.marginMainEnd
}

func (it *flexItem) outerCross() float64 {
	return it.crossSize + it.marginCrossStart + it.marginCrossEnd
}

// baselineOrSynth is the item's baseline from its margin-box top. Items
// without a real baseline synthesize one at the margin-box bottom edge.
func (it *flexItem) baselineOrSynth() float64 {
	if it.hasBaseline {
		return it.baseline
	}
	return it.outerCross()
}

// resolvedAlign maps align-self:auto to the container's align-items.
func (it *flexItem) resolvedAlign(c *flexContainer) style.AlignSelf {
	if it.align != style.AlignSelfAuto {
		return it.align
	}
	switch c.alignItems {
	case style.AlignItemsFlexStart:
		return style.AlignSelfFlexStart
	case style.AlignItemsFlexEnd:
		return style.AlignSelfFlexEnd
	case style.AlignItemsCenter:
		return style.AlignSelfCenter
	case style.AlignItemsBaseline:
		return style.AlignSelfBaseline
	default:
		return style.AlignSelfStretch
	}
}

// collectItems walks the container's children once: non-element and
// out-of-flow children are skipped, everything else is measured and turned
// into an item record. The result is ordered by the CSS order property with
// source order preserved among equal values.
func (run *layoutRun) collectItems() []*flexItem {
	t := run.tree
	items := make([]*flexItem, 0, t.ChildCount(run.box))

	for child := range t.Children(run.box) {
		cb := t.Box(child)
		if cb.Kind != ElementBox {
			continue
		}
		s := cb.Style
		if s == nil {
			s = &style.Style{}
		}
		if s.Display == style.DisplayNone {
			continue
		}
		if s.Position == style.PositionAbsolute || s.Position == style.PositionFixed {
			continue
		}
		items = append(items, run.prepareItem(child, cb, s))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].order < items[j].order
	})
	return items
}

func (run *layoutRun) prepareItem(id NodeID, b *Box, s *style.Style) *flexItem {
	isRow := run.props.mainHorizontal
	m := run.ctx.measure(run.tree, id, Constraint{
		AvailableWidth:  Unconstrained,
		AvailableHeight: Unconstrained,
	})

	it := &flexItem{
		id:          id,
		order:       s.Order,
		grow:        s.Grow(),
		shrink:      s.Shrink(),
		align:       s.AlignSelf,
		measurement: m,
	}
	if s.Display == style.DisplayFlex {
		it.content = nestedContainer
	}

	// Box-model sums and margins, mapped onto the container's axes.
	padH := s.Padding.Left + s.Padding.Right + s.Border.Left + s.Border.Right
	padV := s.Padding.Top + s.Padding.Bottom + s.Border.Top + s.Border.Bottom
	if isRow {
		it.padBorderMain, it.padBorderCross = padH, padV
		it.marginMainStart, it.autoMainStart = resolveMargin(s.Margin.Left)
		it.marginMainEnd, it.autoMainEnd = resolveMargin(s.Margin.Right)
		it.marginCrossStart, it.autoCrossStart = resolveMargin(s.Margin.Top)
		it.marginCrossEnd, it.autoCrossEnd = resolveMargin(s.Margin.Bottom)
	} else {
		it.padBorderMain, it.padBorderCross = padV, padH
		it.marginMainStart, it.autoMainStart = resolveMargin(s.Margin.Top)
		it.marginMainEnd, it.autoMainEnd = resolveMargin(s.Margin.Bottom)
		it.marginCrossStart, it.autoCrossStart = resolveMargin(s.Margin.Left)
		it.marginCrossEnd, it.autoCrossEnd = resolveMargin(s.Margin.Right)
	}

	mainLen, crossLen := s.Width, s.Height
	minMainLen, minCrossLen := s.MinWidth, s.MinHeight
	maxMainLen, maxCrossLen := s.MaxWidth, s.MaxHeight
	if !isRow {
		mainLen, crossLen = crossLen, mainLen
		minMainLen, minCrossLen = minCrossLen, minMainLen
		maxMainLen, maxCrossLen = maxCrossLen, maxMainLen
	}

	// Flex base size: definite basis wins, auto falls back to the main-size
	// property, and everything else is content-based.
	contentMain := run.contentMainSize(it, s, crossLen, isRow)
	switch s.FlexBasis.Kind {
	case style.BasisLength:
		it.baseSize = s.FlexBasis.Px + it.padBorderMain
	case style.BasisContent:
		it.baseSize = contentMain + it.padBorderMain
	default: // auto
		if mainLen.Definite {
			it.baseSize = mainLen.Value + it.padBorderMain
		} else {
			it.baseSize = contentMain + it.padBorderMain
		}
	}

	// Min/max constraints, border-box. The automatic minimum is the
	// min-content size, clamped by any explicit max.
	it.maxMain = math.Inf(1)
	if maxMainLen.Definite {
		it.maxMain = maxMainLen.Value + it.padBorderMain
	}
	if minMainLen.Definite {
		it.minMain = minMainLen.Value + it.padBorderMain
	} else {
		contentMin := m.MinContent
		if !isRow {
			contentMin = m.Height
		}
		it.minMain = math.Min(contentMin+it.padBorderMain, it.maxMain)
	}

	it.maxCross = math.Inf(1)
	if maxCrossLen.Definite {
		it.maxCross = maxCrossLen.Value + it.padBorderCross
	}
	if minCrossLen.Definite {
		it.minCross = minCrossLen.Value + it.padBorderCross
	}

	// Cross-size hint: explicit size, aspect-ratio transfer, or content.
	// A ratio-derived size is as definite as an explicit one; stretching
	// over it would throw the transfer away.
	switch {
	case crossLen.Definite:
		it.definiteCross = true
		it.crossHint = crossLen.Value + it.padBorderCross
	case s.AspectRatio > 0:
		it.definiteCross = true
		mainContent := it.baseSize - it.padBorderMain
		if isRow {
			it.crossHint = mainContent/s.AspectRatio + it.padBorderCross
		} else {
			it.crossHint = mainContent*s.AspectRatio + it.padBorderCross
		}
	default:
		if isRow {
			it.crossHint = m.Height + it.padBorderCross
		} else {
			it.crossHint = m.Width + it.padBorderCross
		}
	}
	it.crossHint = clamp(it.crossHint, it.minCross, it.maxCross)

	it.hypoMain = clamp(it.baseSize, it.minMain, it.maxMain)
	it.mainSize = it.hypoMain
	it.crossSize = it.crossHint

	if m.HasBaseline {
		it.hasBaseline = true
		it.baseline = it.marginCrossStart + crossToBaseline(it, s, isRow)
	}
	return it
}

// contentMainSize is the content-based main size used when the basis is
// content (or auto without a definite main size). An aspect ratio with a
// definite cross size transfers across axes.
func (run *layoutRun) contentMainSize(it *flexItem, s *style.Style, crossLen style.Length, isRow bool) float64 {
	if s.AspectRatio > 0 && crossLen.Definite {
		if isRow {
			return crossLen.Value * s.AspectRatio
		}
		return crossLen.Value / s.AspectRatio
	}
	if isRow {
		return it.measurement.MaxContent
	}
	return it.measurement.Height
}

// crossToBaseline converts the measured content baseline into a distance
// from the border-box top along the cross axis.
func crossToBaseline(it *flexItem, s *style.Style, isRow bool) float64 {
	if !isRow {
		// Baselines run along the inline axis; column containers fall back
		// to synthesized baselines later.
		return 0
	}
	return s.Border.Top + s.Padding.Top + it.measurement.Baseline
}

func resolveMargin(m style.Margin) (value float64, auto bool) {
	if m.Auto {
		return 0, true
	}
	return m.Value, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
