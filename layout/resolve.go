package layout

import "math"

// resolveLine runs the flexible-length resolution loop for one line,
// assigning each item's final main-axis size. Lines are independent of each
// other. See https://drafts.csswg.org/css-flexbox-1/#resolve-flexible-lengths
//
// Each round either freezes at least one item or terminates, so the loop is
// bounded by the item count; the explicit cap below turns a violation of
// that invariant into a logged freeze-everything instead of a hang.
func (run *layoutRun) resolveLine(line *flexLine, availMain float64) {
	items := line.items
	if len(items) == 0 {
		return
	}
	gaps := gapsTotal(run.props.mainGap, len(items))

	growing := line.mainSize < availMain

	// Freeze inflexible items: factor zero, or already past the size the
	// flexing would move them toward.
	for _, it := range items {
		factor := it.grow
		if !growing {
			factor = it.shrink
		}
		if factor == 0 ||
			(growing && it.baseSize > it.hypoMain) ||
			(!growing && it.baseSize < it.hypoMain) {
			it.targetMain = it.hypoMain
			it.frozen = true
		} else {
			it.targetMain = it.baseSize
			it.frozen = false
		}
	}

	initialFree := line.remainingFree(availMain, gaps)

	for round := 0; !line.allFrozen(); round++ {
		if round > len(items) {
			run.ctx.logger().Error("flex resolver did not converge, freezing line",
				"container", run.box, "items", len(items))
			for _, it := range items {
				it.frozen = true
			}
			break
		}

		remaining := line.remainingFree(availMain, gaps)
		var factorSum float64
		for _, it := range items {
			if it.frozen {
				continue
			}
			if growing {
				factorSum += it.grow
			} else {
				factorSum += it.shrink
			}
		}
		if factorSum < 1 {
			if scaled := initialFree * factorSum; math.Abs(scaled) < math.Abs(remaining) {
				remaining = scaled
			}
		}

		if remaining != 0 {
			line.distribute(remaining, growing)
		} else {
			for _, it := range items {
				if !it.frozen {
					it.targetMain = it.baseSize
				}
			}
		}

		// Clamp to min/max; a clamped item's size is final.
		var totalViolation float64
		for _, it := range items {
			if it.frozen {
				continue
			}
			clamped := clamp(it.targetMain, it.minMain, it.maxMain)
			it.violation = clamped - it.targetMain
			it.targetMain = clamped
			totalViolation += it.violation
		}
		for _, it := range items {
			if it.frozen {
				continue
			}
			switch {
			case totalViolation == 0:
				it.frozen = true
			case totalViolation > 0 && it.violation > 0:
				it.frozen = true
			case totalViolation < 0 && it.violation < 0:
				it.frozen = true
			}
		}
	}

	line.freeSpace = availMain - gaps
	for _, it := range items {
		it.mainSize = it.targetMain
		line.freeSpace -= it.outerMain()
	}
}

// remainingFree is the main-axis free space against the current targets:
// frozen items count at their target size, unfrozen ones at their base size.
func (l *flexLine) remainingFree(availMain, gaps float64) float64 {
	free := availMain - gaps
	for _, it := range l.items {
		size := it.baseSize
		if it.frozen {
			size = it.targetMain
		}
		free -= size + it.marginMainStart + it.marginMainEnd
	}
	return free
}

// distribute hands out free space to the unfrozen items: growth in
// proportion to the grow factor, shrinkage in proportion to the shrink
// factor scaled by the base size so that larger items give up more.
func (l *flexLine) distribute(remaining float64, growing bool) {
	if growing {
		var growSum float64
		for _, it := range l.items {
			if !it.frozen {
				growSum += it.grow
			}
		}
		if growSum == 0 {
			return
		}
		for _, it := range l.items {
			if !it.frozen {
				it.targetMain = it.baseSize + remaining*(it.grow/growSum)
			}
		}
		return
	}

	var scaledSum float64
	for _, it := range l.items {
		if !it.frozen {
			scaledSum += it.shrink * it.baseSize
		}
	}
	if scaledSum == 0 {
		for _, it := range l.items {
			if !it.frozen {
				it.targetMain = it.baseSize
			}
		}
		return
	}
	for _, it := range l.items {
		if !it.frozen {
			ratio := it.shrink * it.baseSize / scaledSum
			it.targetMain = it.baseSize + remaining*ratio
			if it.targetMain < 0 {
				it.targetMain = 0
			}
		}
	}
}
