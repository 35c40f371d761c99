package layout

import "github.com/chrisuehlinger/flexkit/style"

// determineLineCross computes a line's cross size. Baseline-aligned items
// are collected around a shared baseline: the line must hold the largest
// ascent plus the largest descent; everything else contributes its outer
// cross size.
func (run *layoutRun) determineLineCross(line *flexLine) {
	var maxAbove, maxBelow, maxOuter float64
	for _, it := range line.items {
		if run.itemAlignsToBaseline(it) {
			above := it.baselineOrSynth()
			below := it.outerCross() - above
			if above > maxAbove {
				maxAbove = above
			}
			if below > maxBelow {
				maxBelow = below
			}
			run.needsBaseline = true
			continue
		}
		if oc := it.outerCross(); oc > maxOuter {
			maxOuter = oc
		}
	}
	line.maxBaseline = maxAbove
	line.crossSize = maxOuter
	if maxAbove+maxBelow > line.crossSize {
		line.crossSize = maxAbove + maxBelow
	}
}

// itemAlignsToBaseline reports whether the item participates in baseline
// alignment: baseline only applies on the inline axis and loses to auto
// cross margins.
func (run *layoutRun) itemAlignsToBaseline(it *flexItem) bool {
	return it.resolvedAlign(&run.props) == style.AlignSelfBaseline &&
		run.props.mainHorizontal &&
		!it.autoCrossStart && !it.autoCrossEnd
}

// justifyMainAxis assigns each item's main position (margin-box start,
// relative to the container's content box). Auto margins absorb positive
// free space before any justification happens; reversed directions mirror
// positions afterwards.
func (run *layoutRun) justifyMainAxis(line *flexLine, availMain float64) {
	items := line.items
	if len(items) == 0 {
		return
	}

	free := line.freeSpace
	if free > 0 {
		autoCount := 0
		for _, it := range items {
			if it.autoMainStart {
				autoCount++
			}
			if it.autoMainEnd {
				autoCount++
			}
		}
		if autoCount > 0 {
			share := free / float64(autoCount)
			for _, it := range items {
				if it.autoMainStart {
					it.marginMainStart = share
				}
				if it.autoMainEnd {
					it.marginMainEnd = share
				}
			}
			free = 0
			line.freeSpace = 0
		}
	}
	if free < 0 {
		free = 0
	}

	var start, between float64
	n := float64(len(items))
	switch run.props.justify {
	case style.JustifyFlexEnd:
		start = free
	case style.JustifyCenter:
		start = free / 2
	case style.JustifySpaceBetween:
		if len(items) > 1 {
			between = free / (n - 1)
		}
	case style.JustifySpaceAround:
		between = free / n
		start = between / 2
	case style.JustifySpaceEvenly:
		between = free / (n + 1)
		start = between
	}

	pos := start
	for i, it := range items {
		it.mainPos = pos
		pos += it.outerMain()
		if i < len(items)-1 {
			pos += run.props.mainGap + between
		}
	}

	if run.props.mainReversed {
		for _, it := range items {
			it.mainPos = availMain - it.mainPos - it.outerMain()
		}
	}
}

// alignCrossAxis assigns each item's cross position within its line
// (margin-box start, relative to the line's cross start) and applies
// stretch sizing. Baseline positions set here are provisional; the
// corrective pass after content dispatch finalizes them.
func (run *layoutRun) alignCrossAxis(line *flexLine) {
	for _, it := range line.items {
		align := it.resolvedAlign(&run.props)

		if align == style.AlignSelfStretch && !it.definiteCross &&
			!it.autoCrossStart && !it.autoCrossEnd {
			stretched := line.crossSize - it.marginCrossStart - it.marginCrossEnd
			it.crossSize = clamp(stretched, it.minCross, it.maxCross)
		}

		if it.autoCrossStart || it.autoCrossEnd {
			if extra := line.crossSize - it.outerCross(); extra > 0 {
				switch {
				case it.autoCrossStart && it.autoCrossEnd:
					it.marginCrossStart = extra / 2
					it.marginCrossEnd = extra / 2
				case it.autoCrossStart:
					it.marginCrossStart = extra
				default:
					it.marginCrossEnd = extra
				}
			}
			it.crossPos = 0
			continue
		}

		switch align {
		case style.AlignSelfFlexEnd:
			it.crossPos = line.crossSize - it.outerCross()
		case style.AlignSelfCenter:
			it.crossPos = (line.crossSize - it.outerCross()) / 2
		case style.AlignSelfBaseline:
			if run.itemAlignsToBaseline(it) {
				it.crossPos = line.maxBaseline - it.baselineOrSynth()
			} else {
				it.crossPos = 0
			}
		default: // flex-start, stretch
			it.crossPos = 0
		}
	}
}

// alignLines returns the cross offset of each line within the container's
// content box, distributing extra cross space per align-content when the
// container is multi-line, then mirroring for wrap-reverse.
func (run *layoutRun) alignLines(availCross float64) []float64 {
	lines := run.lines
	offsets := make([]float64, len(lines))
	if len(lines) == 0 {
		return offsets
	}

	total := gapsTotal(run.props.crossGap, len(lines))
	for _, l := range lines {
		total += l.crossSize
	}

	var start, between float64
	if extra := availCross - total; len(lines) > 1 && extra > 0 {
		n := float64(len(lines))
		switch run.props.alignContent {
		case style.AlignContentStretch:
			for _, l := range lines {
				l.crossSize += extra / n
			}
		case style.AlignContentFlexEnd:
			start = extra
		case style.AlignContentCenter:
			start = extra / 2
		case style.AlignContentSpaceBetween:
			between = extra / (n - 1)
		case style.AlignContentSpaceAround:
			between = extra / n
			start = between / 2
		}
	}

	pos := start
	for i, l := range lines {
		offsets[i] = pos
		pos += l.crossSize
		if i < len(lines)-1 {
			pos += run.props.crossGap + between
		}
	}

	if run.props.wrap == style.WrapReverse {
		span := availCross
		if span < total {
			span = total
		}
		for i, l := range lines {
			offsets[i] = span - offsets[i] - l.crossSize
		}
	}
	return offsets
}
