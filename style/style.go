// Package style holds resolved style values consumed by the layout engine.
//
// A Style is the output of an external cascade/resolution step: every field
// is already a typed enum or a resolved pixel value, never a raw string. The
// zero value of every enum is its CSS initial value, so a zero Style is a
// fully valid "all defaults" style and unknown inputs degrade to defaults by
// construction.
package style

// Display determines whether a box participates in layout and how its
// children are laid out.
type Display int

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayInline
	DisplayNone
)

// Position is the positioning scheme of a box. Absolutely and fixed
// positioned boxes do not participate in flex layout.
type Position int

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// FlexDirection represents the flex-direction property values.
type FlexDirection int

const (
	DirectionRow FlexDirection = iota
	DirectionRowReverse
	DirectionColumn
	DirectionColumnReverse
)

// Reversed reports whether the direction runs against the normal flow.
func (d FlexDirection) Reversed() bool {
	return d == DirectionRowReverse || d == DirectionColumnReverse
}

// RowLike reports whether the direction lays items along the inline axis.
func (d FlexDirection) RowLike() bool {
	return d == DirectionRow || d == DirectionRowReverse
}

// FlexWrap represents the flex-wrap property values.
type FlexWrap int

const (
	WrapNone FlexWrap = iota
	Wrap
	WrapReverse
)

// Justify represents the justify-content property values.
type Justify int

const (
	JustifyFlexStart Justify = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignItems represents the align-items property values.
type AlignItems int

const (
	AlignItemsStretch AlignItems = iota
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
)

// AlignContent represents the align-content property values, used to
// distribute lines in a multi-line container.
type AlignContent int

const (
	AlignContentStretch AlignContent = iota
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

// AlignSelf represents the align-self property values. AlignSelfAuto defers
// to the container's align-items.
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

// WritingMode selects the inline axis. VerticalRL and VerticalLR swap the
// meaning of row and column directions.
type WritingMode int

const (
	HorizontalTB WritingMode = iota
	VerticalRL
	VerticalLR
)

// TextDirection is the inline base direction.
type TextDirection int

const (
	LTR TextDirection = iota
	RTL
)

// BasisKind discriminates the flex-basis value.
type BasisKind int

const (
	BasisAuto BasisKind = iota
	BasisLength
	BasisContent
)

// Basis is a resolved flex-basis value.
type Basis struct {
	Kind BasisKind
	Px   float64
}

// BasisPx returns a definite flex-basis of v pixels.
func BasisPx(v float64) Basis { return Basis{Kind: BasisLength, Px: v} }

// Length is a resolved length. The zero value is "auto"; percentages are
// assumed to already be resolved against the proper base by the caller.
type Length struct {
	Definite bool
	Value    float64
}

// Px returns a definite length of v pixels.
func Px(v float64) Length { return Length{Definite: true, Value: v} }

// Or returns the length's value, or fallback when the length is auto.
func (l Length) Or(fallback float64) float64 {
	if l.Definite {
		return l.Value
	}
	return fallback
}

// Margin is a resolved margin value. The zero value is 0px, matching the
// CSS initial value; auto margins absorb free space during alignment.
type Margin struct {
	Auto  bool
	Value float64
}

// MarginAuto is the auto margin value.
var MarginAuto = Margin{Auto: true}

// MarginPx returns a definite margin of v pixels.
func MarginPx(v float64) Margin { return Margin{Value: v} }

// Or returns the margin's value, or fallback when the margin is auto.
func (m Margin) Or(fallback float64) float64 {
	if m.Auto {
		return fallback
	}
	return m.Value
}

// Margins holds per-side margin values.
type Margins struct {
	Top, Right, Bottom, Left Margin
}

// Edges holds per-side padding or border widths.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Style is the resolved style of a single box. All lengths are in pixels.
type Style struct {
	Display  Display
	Position Position

	Width, Height       Length
	MinWidth, MinHeight Length
	MaxWidth, MaxHeight Length

	Margin  Margins
	Padding Edges
	Border  Edges

	// Container properties.
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent Justify
	AlignItems     AlignItems
	AlignContent   AlignContent
	RowGap         float64
	ColumnGap      float64
	WritingMode    WritingMode
	TextDirection  TextDirection

	// Item properties.
	FlexGrow  float64
	FlexBasis Basis
	Order     int
	AlignSelf AlignSelf

	// FlexShrink defaults to 1 when nil; a pointer keeps the zero Style at
	// the CSS initial value without a constructor.
	FlexShrink *float64

	// AspectRatio is width/height; 0 means none.
	AspectRatio float64

	// FontSize feeds the built-in text measurement heuristic. 0 means the
	// default of 16px.
	FontSize float64
}

// Shrink returns the resolved flex-shrink factor.
func (s *Style) Shrink() float64 {
	if s == nil || s.FlexShrink == nil {
		return 1
	}
	if *s.FlexShrink < 0 {
		return 0
	}
	return *s.FlexShrink
}

// Grow returns the resolved flex-grow factor, clamped to be non-negative.
func (s *Style) Grow() float64 {
	if s == nil || s.FlexGrow < 0 {
		return 0
	}
	return s.FlexGrow
}

// ShrinkFactor is a convenience for building a *float64 FlexShrink value.
func ShrinkFactor(v float64) *float64 { return &v }
