// Package ebitensurface draws widgets onto ebiten images.
package ebitensurface

import (
	"image"
	"image/color"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/canvasui/surface"
)

var (
	_ surface.Surface       = (*Canvas)(nil)
	_ surface.PolygonFiller = (*Canvas)(nil)
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Canvas implements surface.Surface on top of an *ebiten.Image. Point the
// canvas at the frame's screen with SetTarget before rendering.
type Canvas struct {
	dst       *ebiten.Image
	fonts     *FontBook
	white     *ebiten.Image
	AntiAlias bool
}

func NewCanvas(fonts *FontBook) *Canvas {
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)
	return &Canvas{
		fonts:     fonts,
		white:     whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		AntiAlias: true,
	}
}

// SetTarget sets the image subsequent draw calls render onto.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) DrawRect(x, y, w, h float64, filled bool, lineWidth float64, clr color.Color) {
	if filled {
		vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, c.AntiAlias)
		return
	}
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), clr, c.AntiAlias)
}

func (c *Canvas) DrawLine(x1, y1, x2, y2, lineWidth float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(lineWidth), clr, c.AntiAlias)
}

func (c *Canvas) DrawText(x, y float64, clr color.Color, s string, st surface.TextStyle) {
	face := c.fonts.Face(st.Font, st.Bold, st.Size)

	op := &text.DrawOptions{}
	switch st.Align {
	case surface.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case surface.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	switch st.Baseline {
	case surface.BaselineMiddle:
		op.SecondaryAlign = text.AlignCenter
	case surface.BaselineBottom:
		op.SecondaryAlign = text.AlignEnd
	case surface.BaselineAlphabetic:
		// text/v2 anchors at the top of the line box; shift up by the ascent.
		op.SecondaryAlign = text.AlignStart
		y -= face.Metrics().HAscent
	default:
		op.SecondaryAlign = text.AlignStart
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(c.dst, s, face, op)
}

func (c *Canvas) MeasureTextWidth(s string, st surface.TextStyle) float64 {
	w, _ := text.Measure(s, c.fonts.Face(st.Font, st.Bold, st.Size), 0)
	return w
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}
	c.dst.SubImage(r).(*ebiten.Image).Clear()
}

// FillPolygon tessellates the polygon and draws it as triangles.
func (c *Canvas) FillPolygon(pts []float64, clr color.Color) {
	indices, err := surface.Triangulate(pts)
	if err != nil {
		logger.Warn("fill polygon", "err", err)
		return
	}

	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	r, g, b, a := float32(n.R)/255, float32(n.G)/255, float32(n.B)/255, float32(n.A)/255

	vertices := make([]ebiten.Vertex, 0, len(pts)/2)
	for i := 0; i < len(pts); i += 2 {
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(pts[i]),
			DstY:   float32(pts[i+1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: c.AntiAlias}
	c.dst.DrawTriangles(vertices, indices, c.white, op)
}
