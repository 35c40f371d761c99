// Package render paints laid-out box trees into images for visual
// debugging. Painting follows CSS order: each box's background and border
// first, then its children.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/chrisuehlinger/flexkit/layout"
)

// Options control the painted output.
type Options struct {
	// Scale is the number of device pixels per layout pixel. Zero means 1.
	Scale float64

	// Background fills the canvas before painting. Nil means white.
	Background color.Color
}

// palette tints boxes by tree depth so nesting stays readable.
var palette = []color.RGBA{
	{R: 0x90, G: 0xca, B: 0xf9, A: 0xff},
	{R: 0xa5, G: 0xd6, B: 0xa7, A: 0xff},
	{R: 0xff, G: 0xcc, B: 0x80, A: 0xff},
	{R: 0xce, G: 0x93, B: 0xd8, A: 0xff},
	{R: 0xef, G: 0x9a, B: 0x9a, A: 0xff},
}

var borderColor = color.RGBA{R: 0x37, G: 0x47, B: 0x4f, A: 0xff}

// command is a single painting operation in the display list.
type command interface {
	paint(dc *gg.Context)
}

type fillCommand struct {
	rect layout.Rect
	col  color.Color
}

func (c fillCommand) paint(dc *gg.Context) {
	dc.SetColor(c.col)
	dc.DrawRectangle(c.rect.X, c.rect.Y, c.rect.Width, c.rect.Height)
	dc.Fill()
}

type strokeCommand struct {
	rect  layout.Rect
	width float64
	col   color.Color
}

func (c strokeCommand) paint(dc *gg.Context) {
	dc.SetColor(c.col)
	dc.SetLineWidth(c.width)
	dc.DrawRectangle(c.rect.X, c.rect.Y, c.rect.Width, c.rect.Height)
	dc.Stroke()
}

type textCommand struct {
	x, y float64
	text string
}

func (c textCommand) paint(dc *gg.Context) {
	dc.SetColor(color.Black)
	dc.DrawString(c.text, c.x, c.y)
}

// Paint renders the subtree rooted at root onto a width x height canvas.
func Paint(t *layout.Tree, root layout.NodeID, width, height int) image.Image {
	return PaintWithOptions(t, root, width, height, Options{})
}

// PaintWithOptions is Paint with explicit options.
func PaintWithOptions(t *layout.Tree, root layout.NodeID, width, height int, opts Options) image.Image {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}

	dc := gg.NewContext(int(float64(width)*scale), int(float64(height)*scale))
	dc.SetColor(bg)
	dc.Clear()
	dc.Scale(scale, scale)

	for _, cmd := range buildDisplayList(t, root, 0) {
		cmd.paint(dc)
	}
	return dc.Image()
}

// SavePNG paints the subtree and writes it to path.
func SavePNG(path string, t *layout.Tree, root layout.NodeID, width, height int) error {
	return gg.SavePNG(path, Paint(t, root, width, height))
}

func buildDisplayList(t *layout.Tree, id layout.NodeID, depth int) []command {
	var list []command
	b := t.Box(id)

	if b.Kind == layout.TextBox {
		if b.Text != "" {
			r := t.AbsoluteContentRect(id)
			list = append(list, textCommand{x: r.X, y: r.Y + 12, text: b.Text})
		}
		return list
	}

	border := t.AbsoluteBorderRect(id)
	list = append(list, fillCommand{rect: border, col: palette[depth%len(palette)]})
	list = append(list, strokeCommand{rect: border, width: 1, col: borderColor})

	for child := range t.Children(id) {
		list = append(list, buildDisplayList(t, child, depth+1)...)
	}
	return list
}
