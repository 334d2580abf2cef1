// Package preview renders a converted node forest as a wireframe image.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/mj1618/designer-cli/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	// ErrNothingToDraw is returned when no node has a usable position and size.
	ErrNothingToDraw = errors.New("no node has both a position and a size")
	// ErrCanvasTooLarge is returned when the canvas would exceed MaxCanvasSize
	// in either dimension.
	ErrCanvasTooLarge = errors.New("canvas too large")
)

// MaxCanvasSize bounds both canvas dimensions, fitted or fixed.
const MaxCanvasSize = 8192

// basicfont.Face7x13 glyph metrics.
const (
	glyphWidth  = 7
	glyphHeight = 13
)

// Options control rendering.
type Options struct {
	// Width and Height fix the canvas size. Zero fits the canvas to the
	// drawn nodes plus Margin.
	Width  int
	Height int
	Margin int
}

// Box is a node's absolute rectangle on the canvas.
type Box struct {
	Node   *model.Node
	Rect   image.Rectangle
	Depth  int
	Parent *model.Node
}

var (
	background   = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	textColor    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	outlineColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	defaultColor = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// typeColors maps base node types to outline colors.
var typeColors = map[string]color.RGBA{
	model.TypeButton:    {R: 30, G: 100, B: 220, A: 255},
	model.TypeLabel:     {R: 120, G: 120, B: 120, A: 255},
	model.TypeTextbox:   {R: 20, G: 150, B: 80, A: 255},
	model.TypeCheckbox:  {R: 200, G: 120, B: 0, A: 255},
	model.TypeCombobox:  {R: 150, G: 60, B: 180, A: 255},
	model.TypeRadio:     {R: 200, G: 50, B: 120, A: 255},
	model.TypeImage:     {R: 0, G: 150, B: 160, A: 255},
	model.TypeList:      {R: 110, G: 80, B: 40, A: 255},
	model.TypeContainer: {R: 200, G: 30, B: 30, A: 255},
}

// ParsePair parses raw designer coordinate text such as "10, 20".
func ParsePair(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two comma-separated values, got %q", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return a, b, nil
}

// Layout computes absolute rectangles in depth-first order. A child's
// position is relative to its parent's position. Nodes without a parseable
// position or size are skipped, but their children are still laid out,
// relative to the nearest positioned ancestor.
func Layout(nodes []*model.Node) []Box {
	var boxes []Box
	for _, n := range nodes {
		layoutRecursive(n, nil, image.Point{}, 0, &boxes)
	}
	return boxes
}

func layoutRecursive(n, parent *model.Node, origin image.Point, depth int, boxes *[]Box) {
	childOrigin := origin
	if n.Position != nil {
		if x, y, err := ParsePair(*n.Position); err == nil {
			pos := origin.Add(image.Pt(x, y))
			childOrigin = pos
			if n.Size != nil {
				if w, h, err := ParsePair(*n.Size); err == nil && w > 0 && h > 0 {
					*boxes = append(*boxes, Box{
						Node:   n,
						Rect:   image.Rect(pos.X, pos.Y, pos.X+w, pos.Y+h),
						Depth:  depth,
						Parent: parent,
					})
				}
			}
		}
	}
	for _, child := range n.Children {
		layoutRecursive(child, n, childOrigin, depth+1, boxes)
	}
}

// Render draws each laid-out node as an outlined rectangle with its label.
func Render(nodes []*model.Node, opts Options) (*image.RGBA, error) {
	boxes := Layout(nodes)
	if len(boxes) == 0 {
		return nil, ErrNothingToDraw
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		var extent image.Rectangle
		for _, b := range boxes {
			extent = extent.Union(b.Rect)
		}
		if width <= 0 {
			width = extent.Max.X + opts.Margin
		}
		if height <= 0 {
			height = extent.Max.Y + opts.Margin
		}
	}

	if width > MaxCanvasSize || height > MaxCanvasSize {
		return nil, fmt.Errorf("%dx%d exceeds %dx%d: %w", width, height, MaxCanvasSize, MaxCanvasSize, ErrCanvasTooLarge)
	}
	if width <= 0 || height <= 0 {
		return nil, ErrNothingToDraw
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for _, b := range boxes {
		c, ok := typeColors[model.BaseType(b.Node.Type)]
		if !ok {
			c = defaultColor
		}
		drawRectangle(img, b.Rect, c)
		drawLabel(img, Label(b.Node), b.Rect)
	}
	return img, nil
}

// Label is the text drawn for a node: its text, or its name when it has none.
func Label(n *model.Node) string {
	if n.Text != nil && *n.Text != "" {
		return *n.Text
	}
	return n.Name
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// drawRectangle draws a rectangle outline clipped to the image.
func drawRectangle(img *image.RGBA, r image.Rectangle, c color.Color) {
	bounds := img.Bounds()
	r = r.Intersect(bounds)
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawLabel draws text at the top-left of r, truncated to r's width, with
// a one-pixel outline so it stays legible over other boxes.
func drawLabel(img *image.RGBA, text string, r image.Rectangle) {
	maxChars := (r.Dx() - 4) / glyphWidth
	if maxChars <= 0 {
		return
	}
	if runes := []rune(text); len(runes) > maxChars {
		text = string(runes[:maxChars])
	}

	x := r.Min.X + 2
	y := r.Min.Y + glyphHeight
	if r.Dy() < glyphHeight {
		y = r.Max.Y - 1
	}

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, x+dx, y+dy, outlineColor)
		}
	}
	drawString(img, text, x, y, textColor)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
