package layout

import (
	"testing"

	"github.com/chrisuehlinger/flexkit/style"
)

func TestAlignItemsModes(t *testing.T) {
	tests := []struct {
		name  string
		align style.AlignItems
		wantY float64
	}{
		{"flex-start", style.AlignItemsFlexStart, 0},
		{"center", style.AlignItemsCenter, 30},
		{"flex-end", style.AlignItemsFlexEnd, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, root := buildContainer(
				&style.Style{Width: style.Px(300), Height: style.Px(100), AlignItems: tt.align},
				&style.Style{Width: style.Px(50), Height: style.Px(40)},
			)
			layoutNow(t, tr, root)

			if r := childRects(tr, root)[0]; !almost(r.Y, tt.wantY) {
				t.Errorf("Item should sit at y=%v, got %v", tt.wantY, r.Y)
			}
		})
	}
}

func TestAlignSelfOverridesAlignItems(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(300), Height: style.Px(100), AlignItems: style.AlignItemsFlexStart},
		&style.Style{Width: style.Px(50), Height: style.Px(40)},
		&style.Style{Width: style.Px(50), Height: style.Px(40), AlignSelf: style.AlignSelfFlexEnd},
	)
	layoutNow(t, tr, root)

	rects := childRects(tr, root)
	if !almost(rects[0].Y, 0) {
		t.Errorf("First item should follow align-items, got y=%v", rects[0].Y)
	}
	if !almost(rects[1].Y, 60) {
		t.Errorf("Second item should follow its own align-self, got y=%v", rects[1].Y)
	}
}

func TestStretchFillsLine(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(300), Height: style.Px(100)},
		&style.Style{Width: style.Px(50)},
	)
	layoutNow(t, tr, root)

	if r := childRects(tr, root)[0]; !almost(r.Height, 100) {
		t.Errorf("Auto-height item should stretch to the line, got %v", r.Height)
	}
}

func TestStretchRespectsMaxAndExplicitSize(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(300), Height: style.Px(100)},
		&style.Style{Width: style.Px(50), MaxHeight: style.Px(70)},
		&style.Style{Width: style.Px(50), Height: style.Px(40)},
	)
	layoutNow(t, tr, root)

	rects := childRects(tr, root)
	if !almost(rects[0].Height, 70) {
		t.Errorf("Stretch should clamp at max-height, got %v", rects[0].Height)
	}
	if !almost(rects[1].Height, 40) {
		t.Errorf("An explicit cross size must not stretch, got %v", rects[1].Height)
	}
}

func TestAutoCrossMargins(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(300), Height: style.Px(100)},
		&style.Style{Width: style.Px(50), Height: style.Px(40), Margin: style.Margins{Top: style.MarginAuto}},
		&style.Style{Width: style.Px(50), Height: style.Px(40), Margin: style.Margins{Top: style.MarginAuto, Bottom: style.MarginAuto}},
	)
	layoutNow(t, tr, root)

	rects := childRects(tr, root)
	if !almost(rects[0].Y, 60) {
		t.Errorf("A top auto margin should push the item to the bottom, got y=%v", rects[0].Y)
	}
	if !almost(rects[1].Y, 30) {
		t.Errorf("Opposing auto margins should center the item, got y=%v", rects[1].Y)
	}
}

func TestAutoMainMarginsAbsorbFreeSpace(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(300), Height: style.Px(100), JustifyContent: style.JustifyCenter},
		&style.Style{Width: style.Px(50)},
		&style.Style{Width: style.Px(50), Margin: style.Margins{Left: style.MarginAuto}},
	)
	layoutNow(t, tr, root)

	rects := childRects(tr, root)
	if !almost(rects[0].X, 0) {
		t.Errorf("Auto margins win over justification, first item at x=%v", rects[0].X)
	}
	if !almost(rects[1].X, 250) {
		t.Errorf("The auto margin should absorb all free space, got x=%v", rects[1].X)
	}
}

func TestWrapProducesLines(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(250), Height: style.Px(100), FlexWrap: style.Wrap},
		&style.Style{Width: style.Px(100), Height: style.Px(40)},
		&style.Style{Width: style.Px(100), Height: style.Px(40)},
		&style.Style{Width: style.Px(100), Height: style.Px(40)},
	)
	layoutNow(t, tr, root)

	rects := childRects(tr, root)
	if !almost(rects[0].Y, 0) || !almost(rects[1].Y, 0) {
		t.Errorf("First two items should share the first line, got y=%v and y=%v", rects[0].Y, rects[1].Y)
	}
	if !almost(rects[2].X, 0) {
		t.Errorf("Wrapped item should restart at the main start, got x=%v", rects[2].X)
	}
	// align-content stretch splits the 20px of leftover cross space between
	// the two lines, so the second line starts at 50.
	if !almost(rects[2].Y, 50) {
		t.Errorf("Wrapped item should start on the second line, got y=%v", rects[2].Y)
	}
}

func TestAlignContentModes(t *testing.T) {
	tests := []struct {
		name  string
		align style.AlignContent
		wantY []float64
	}{
		{"flex-start", style.AlignContentFlexStart, []float64{0, 40}},
		{"flex-end", style.AlignContentFlexEnd, []float64{20, 60}},
		{"center", style.AlignContentCenter, []float64{10, 50}},
		{"space-between", style.AlignContentSpaceBetween, []float64{0, 60}},
		{"stretch", style.AlignContentStretch, []float64{0, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, root := buildContainer(
				&style.Style{Width: style.Px(250), Height: style.Px(100), FlexWrap: style.Wrap, AlignContent: tt.align},
				&style.Style{Width: style.Px(200), Height: style.Px(40)},
				&style.Style{Width: style.Px(200), Height: style.Px(40)},
			)
			layoutNow(t, tr, root)

			for i, r := range childRects(tr, root) {
				if !almost(r.Y, tt.wantY[i]) {
					t.Errorf("Line %d should sit at y=%v, got %v", i, tt.wantY[i], r.Y)
				}
			}
		})
	}
}

func TestAlignContentStretchFillsItems(t *testing.T) {
	// Two auto-height items on separate lines: align-content stretch grows
	// each line from 0 to 30, and the items stretch to fill the grown lines.
	tr, root := buildContainer(
		&style.Style{Width: style.Px(200), Height: style.Px(60), FlexWrap: style.Wrap},
		&style.Style{Width: style.Px(150)},
		&style.Style{Width: style.Px(150)},
	)
	layoutNow(t, tr, root)

	rects := childRects(tr, root)
	if !almost(rects[0].Height, 30) || !almost(rects[0].Y, 0) {
		t.Errorf("First item should fill its stretched line, got y=%v h=%v", rects[0].Y, rects[0].Height)
	}
	if !almost(rects[1].Height, 30) || !almost(rects[1].Y, 30) {
		t.Errorf("Second item should fill the second stretched line, got y=%v h=%v", rects[1].Y, rects[1].Height)
	}
}

func TestAlignContentStretchRealignsItems(t *testing.T) {
	// Lines grow from 20 to 40 each; a flex-end item must align against the
	// grown line, not the line's pre-stretch size.
	tr, root := buildContainer(
		&style.Style{Width: style.Px(200), Height: style.Px(80), FlexWrap: style.Wrap},
		&style.Style{Width: style.Px(150), Height: style.Px(20)},
		&style.Style{Width: style.Px(150), Height: style.Px(20), AlignSelf: style.AlignSelfFlexEnd},
	)
	layoutNow(t, tr, root)

	rects := childRects(tr, root)
	if !almost(rects[0].Y, 0) || !almost(rects[0].Height, 20) {
		t.Errorf("Explicitly sized item keeps its height at the line start, got y=%v h=%v", rects[0].Y, rects[0].Height)
	}
	if !almost(rects[1].Y, 60) {
		t.Errorf("Flex-end item should sit at the bottom of the stretched line, got y=%v", rects[1].Y)
	}
}

func TestWrapReverseMirrorsLines(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{
			Width: style.Px(250), Height: style.Px(100),
			FlexWrap: style.WrapReverse, AlignContent: style.AlignContentFlexStart,
		},
		&style.Style{Width: style.Px(200), Height: style.Px(40)},
		&style.Style{Width: style.Px(200), Height: style.Px(40)},
	)
	layoutNow(t, tr, root)

	rects := childRects(tr, root)
	if !almost(rects[0].Y, 60) {
		t.Errorf("First line should flip to the cross end, got y=%v", rects[0].Y)
	}
	if !almost(rects[1].Y, 20) {
		t.Errorf("Second line should sit above the first, got y=%v", rects[1].Y)
	}
}

func TestGaps(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{
			Width: style.Px(250), Height: style.Px(100),
			FlexWrap: style.Wrap, AlignContent: style.AlignContentFlexStart,
			ColumnGap: 10, RowGap: 8,
		},
		&style.Style{Width: style.Px(100), Height: style.Px(40)},
		&style.Style{Width: style.Px(100), Height: style.Px(40)},
		&style.Style{Width: style.Px(100), Height: style.Px(40)},
	)
	layoutNow(t, tr, root)

	rects := childRects(tr, root)
	if !almost(rects[1].X, 110) {
		t.Errorf("Column-gap should separate row items by 10, got x=%v", rects[1].X)
	}
	if !almost(rects[2].Y, 48) {
		t.Errorf("Row-gap should separate lines by 8, got y=%v", rects[2].Y)
	}
}

func TestColumnGapsSwapAxes(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{
			Width: style.Px(200), Height: style.Px(300),
			FlexDirection: style.DirectionColumn, RowGap: 10,
		},
		&style.Style{Height: style.Px(50)},
		&style.Style{Height: style.Px(50)},
	)
	layoutNow(t, tr, root)

	if r := childRects(tr, root)[1]; !almost(r.Y, 60) {
		t.Errorf("Row-gap is the main gap of a column container, got y=%v", r.Y)
	}
}
