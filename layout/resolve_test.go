package layout

import (
	"testing"

	"github.com/chrisuehlinger/flexkit/style"
)

func TestGrowFactorSumBelowOne(t *testing.T) {
	// A total grow factor under 1 only claims that fraction of the free
	// space.
	tr, root := buildContainer(
		&style.Style{Width: style.Px(300), Height: style.Px(100)},
		&style.Style{FlexGrow: 0.5, FlexBasis: style.BasisPx(100)},
	)
	layoutNow(t, tr, root)

	if r := childRects(tr, root)[0]; !almost(r.Width, 200) {
		t.Errorf("Half a grow factor should claim half the free space, got %v", r.Width)
	}
}

func TestShrinkFactorSumBelowOne(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(300), Height: style.Px(100)},
		&style.Style{FlexBasis: style.BasisPx(200), FlexShrink: style.ShrinkFactor(0.25)},
		&style.Style{FlexBasis: style.BasisPx(200), FlexShrink: style.ShrinkFactor(0.25)},
	)
	layoutNow(t, tr, root)

	// Deficit is 100 but the factors only absorb half of it; the rest
	// overflows.
	for i, r := range childRects(tr, root) {
		if !almost(r.Width, 175) {
			t.Errorf("Item %d should shrink by a quarter of its share, got %v", i, r.Width)
		}
	}
}

func TestZeroFactorsKeepHypotheticalSizes(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(500), Height: style.Px(100)},
		&style.Style{FlexBasis: style.BasisPx(60)},
		&style.Style{FlexBasis: style.BasisPx(80)},
	)
	layoutNow(t, tr, root)

	rects := childRects(tr, root)
	if !almost(rects[0].Width, 60) || !almost(rects[1].Width, 80) {
		t.Errorf("Inflexible items keep their base sizes, got %v and %v", rects[0].Width, rects[1].Width)
	}
}

func TestShrinkNeverGoesNegative(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(50), Height: style.Px(100)},
		&style.Style{FlexBasis: style.BasisPx(10)},
		&style.Style{FlexBasis: style.BasisPx(400)},
	)
	layoutNow(t, tr, root)

	for i, r := range childRects(tr, root) {
		if r.Width < 0 {
			t.Errorf("Item %d resolved to a negative size: %v", i, r.Width)
		}
	}
}

func TestConservationAfterGrow(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(640), Height: style.Px(100), ColumnGap: 20},
		&style.Style{FlexGrow: 1, FlexBasis: style.BasisPx(100)},
		&style.Style{FlexGrow: 3, FlexBasis: style.BasisPx(100)},
		&style.Style{FlexGrow: 1, FlexBasis: style.BasisPx(200)},
	)
	layoutNow(t, tr, root)

	sum := 40.0 // two gaps
	for _, r := range childRects(tr, root) {
		sum += r.Width
	}
	if !almost(sum, 640) {
		t.Errorf("Grown sizes plus gaps should fill the container exactly, got %v", sum)
	}
}

func TestBasisContentUsesIntrinsicSize(t *testing.T) {
	tr := NewTree(3)
	root := tr.NewBox(ElementBox, &style.Style{
		Display: style.DisplayFlex, Width: style.Px(400), Height: style.Px(100),
	})
	item := tr.NewBox(ElementBox, &style.Style{
		Width:     style.Px(300), // ignored by basis: content
		FlexBasis: style.Basis{Kind: style.BasisContent},
	})
	tr.AppendChild(root, item)
	tr.AppendChild(item, tr.NewText("hi"))
	layoutNow(t, tr, root)

	if r := tr.Box(item).Dimensions.Content; !almost(r.Width, 2*9.6) {
		t.Errorf("Basis content should size from the intrinsic width, got %v", r.Width)
	}
}

func TestAutomaticMinimumSize(t *testing.T) {
	// Shrinking stops at the content's min-content size even without an
	// explicit min-width.
	tr := NewTree(4)
	root := tr.NewBox(ElementBox, &style.Style{
		Display: style.DisplayFlex, Width: style.Px(100), Height: style.Px(100),
	})
	a := tr.NewBox(ElementBox, &style.Style{})
	tr.AppendChild(root, a)
	tr.AppendChild(a, tr.NewText("unbreakable"))
	b := tr.NewBox(ElementBox, &style.Style{Width: style.Px(200)})
	tr.AppendChild(root, b)
	layoutNow(t, tr, root)

	// "unbreakable" is 11 characters, min-content 105.6.
	if r := tr.Box(a).Dimensions.Content; r.Width < 105.6-1e-6 {
		t.Errorf("Automatic minimum should floor at min-content, got %v", r.Width)
	}
}

func TestAspectRatioTransfersCrossToMain(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(500), Height: style.Px(200)},
		&style.Style{Height: style.Px(100), AspectRatio: 2},
	)
	layoutNow(t, tr, root)

	if r := childRects(tr, root)[0]; !almost(r.Width, 200) {
		t.Errorf("Aspect ratio should derive the main size from the cross size, got %v", r.Width)
	}
}

func TestAspectRatioTransfersMainToCross(t *testing.T) {
	tr, root := buildContainer(
		&style.Style{Width: style.Px(500), Height: style.Px(200)},
		&style.Style{Width: style.Px(100), AspectRatio: 2},
	)
	layoutNow(t, tr, root)

	if r := childRects(tr, root)[0]; !almost(r.Height, 50) {
		t.Errorf("Aspect ratio should derive the cross size from the main size, got %v", r.Height)
	}
}
