package layout

import "github.com/chrisuehlinger/flexkit/style"

// flexLine is an ordered, non-owning view of the items assigned to one line.
// Lines are computed per run and discarded with it.
type flexLine struct {
	items []*flexItem

	mainSize  float64 // sum of outer hypothetical main sizes plus gaps
	crossSize float64
	freeSpace float64 // residual main-axis space after resolution

	maxBaseline float64 // from margin-box top of the line
}

// gapsTotal returns the main-axis space consumed by gaps between n items.
func gapsTotal(gap float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return gap * float64(n-1)
}

// buildLines groups the prepared items into lines. With wrapping disabled
// every item lands on a single line. With wrapping enabled items accumulate
// while the running sum of outer hypothetical sizes plus gaps fits the
// available main size; an item that does not fit starts a new line, and an
// item too large for any line still gets a line of its own.
func (run *layoutRun) buildLines(availMain float64) []*flexLine {
	items := run.items
	if len(items) == 0 {
		return nil
	}

	var lines []*flexLine
	if run.props.wrap == style.WrapNone {
		lines = []*flexLine{{items: items}}
	} else {
		line := &flexLine{}
		running := 0.0
		for _, it := range items {
			outer := it.outerHypoMain()
			next := running + outer
			if len(line.items) > 0 {
				next += run.props.mainGap
			}
			if len(line.items) > 0 && next > availMain {
				lines = append(lines, line)
				line = &flexLine{items: []*flexItem{it}}
				running = outer
				continue
			}
			line.items = append(line.items, it)
			running = next
		}
		if len(line.items) > 0 {
			lines = append(lines, line)
		}
	}

	for _, line := range lines {
		line.aggregate(run.props.mainGap)
	}
	return lines
}

// aggregate fills the line's hypothetical main size, gaps included.
func (l *flexLine) aggregate(gap float64) {
	l.mainSize = gapsTotal(gap, len(l.items))
	for _, it := range l.items {
		l.mainSize += it.outerHypoMain()
	}
}

func (l *flexLine) allFrozen() bool {
	for _, it := range l.items {
		if !it.frozen {
			return false
		}
	}
	return true
}
