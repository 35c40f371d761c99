package layout

import (
	"math"
	"strings"
)

// Typographic constants for the built-in measurement heuristic, matching the
// classic 16px default font: average glyph advance and line height as
// fractions of the font size.
const (
	defaultFontSize = 16.0
	charWidthRatio  = 0.6
	lineHeightRatio = 1.2
	ascentRatio     = 0.8
)

// measure returns the measurement for id, consulting the cache first. The
// cache is keyed by box identity and lives for one top-level layout run, so
// the preparer and the resolver of the same run never measure a box twice.
// Measuring is read-only on the tree.
func (ctx *Context) measure(t *Tree, id NodeID, c Constraint) Measurement {
	if m, ok := ctx.cache[id]; ok {
		return m
	}
	var m Measurement
	if ctx.Backend != nil {
		var err error
		m, err = ctx.Backend.Measure(t, id, c)
		if err != nil {
			ctx.logger().Warn("content measurement failed, falling back to text heuristic",
				"node", id, "err", err)
			m = ctx.heuristicMeasure(t, id, c)
		}
	} else {
		m = ctx.heuristicMeasure(t, id, c)
	}
	if ctx.cache == nil {
		ctx.cache = make(map[NodeID]Measurement)
	}
	ctx.cache[id] = m
	return m
}

// heuristicMeasure estimates content size without a backend: text runs are
// measured from character counts, elements stack their children vertically.
// It exists so that measurement can never abort a layout run.
func (ctx *Context) heuristicMeasure(t *Tree, id NodeID, c Constraint) Measurement {
	b := t.Box(id)
	if b.Kind == TextBox {
		return measureText(b.Text, fontSize(b), c.AvailableWidth)
	}

	var m Measurement
	y := 0.0
	for child := range t.Children(id) {
		cb := t.Box(child)
		cm := ctx.heuristicMeasure(t, child, c)
		extraH, extraV := childExtra(cb)

		outerW := cm.Width + extraH
		if outerW > m.Width {
			m.Width = outerW
		}
		if min := cm.MinContent + extraH; min > m.MinContent {
			m.MinContent = min
		}
		if max := cm.MaxContent + extraH; max > m.MaxContent {
			m.MaxContent = max
		}
		if !m.HasBaseline && cm.HasBaseline {
			m.Baseline = y + cb.Style.Padding.Top + cb.Style.Border.Top + cm.Baseline
			m.HasBaseline = true
		}
		y += cm.Height + extraV
	}
	m.Height = y

	// Explicit sizes override the natural estimate on their axis. The
	// intrinsic widths stay intrinsic: MaxContent always reports the
	// content's unwrapped width, and the explicit width may only cap
	// MinContent, never raise it, so the automatic minimum cannot floor a
	// box at its own width.
	s := b.Style
	if s != nil && s.Width.Definite {
		m.Width = s.Width.Value
		if m.MinContent > s.Width.Value {
			m.MinContent = s.Width.Value
		}
	}
	if s != nil && s.Height.Definite {
		m.Height = s.Height.Value
	}
	return m
}

// childExtra returns the horizontal and vertical padding+border+margin a
// child contributes around its content when stacked inside a parent.
func childExtra(b *Box) (horizontal, vertical float64) {
	s := b.Style
	if s == nil {
		return 0, 0
	}
	horizontal = s.Padding.Left + s.Padding.Right + s.Border.Left + s.Border.Right +
		s.Margin.Left.Or(0) + s.Margin.Right.Or(0)
	vertical = s.Padding.Top + s.Padding.Bottom + s.Border.Top + s.Border.Bottom +
		s.Margin.Top.Or(0) + s.Margin.Bottom.Or(0)
	return horizontal, vertical
}

func fontSize(b *Box) float64 {
	if b.Style != nil && b.Style.FontSize > 0 {
		return b.Style.FontSize
	}
	return defaultFontSize
}

// measureText estimates a text run. Max-content is the unwrapped width,
// min-content the width of the longest unbreakable word.
func measureText(text string, fs, availWidth float64) Measurement {
	charW := fs * charWidthRatio
	lineH := fs * lineHeightRatio

	maxContent := float64(len([]rune(text))) * charW
	minContent := 0.0
	for _, word := range strings.Fields(text) {
		if w := float64(len([]rune(word))) * charW; w > minContent {
			minContent = w
		}
	}

	width := maxContent
	lines := 1.0
	if !math.IsInf(availWidth, 1) && availWidth > 0 && maxContent > availWidth {
		width = math.Max(availWidth, minContent)
		lines = math.Ceil(maxContent / width)
	}
	if text == "" {
		return Measurement{}
	}
	return Measurement{
		Width:       width,
		Height:      lines * lineH,
		MinContent:  minContent,
		MaxContent:  maxContent,
		Baseline:    fs * ascentRatio,
		HasBaseline: true,
	}
}
