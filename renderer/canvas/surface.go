package canvasrenderer

import (
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/inktrace/layout"
)

// Surface adapts a canvas context to layout.Surface.
// Layout coordinates are logical px with a top-left origin; the canvas keeps its default
// bottom-left origin, so y is flipped against the logical page height. Every call sets the
// complete fill/stroke state it needs.
type Surface struct {
	r      *Renderer
	ctx    *canvas.Context
	height float64 // logical page height (px)
	scale  float64 // canvas units per logical px
}

var _ layout.Surface = (*Surface)(nil)

// NewSurface wraps ctx. height is the logical page height and scale the number of canvas
// units per logical pixel (e.g. the print oversampling factor, or px→mm for vector output).
func (r *Renderer) NewSurface(ctx *canvas.Context, height, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	return &Surface{r: r, ctx: ctx, height: height, scale: scale}
}

func (s *Surface) x(v float64) float64 { return v * s.scale }
func (s *Surface) y(v float64) float64 { return (s.height - v) * s.scale }

// MeasureText returns widths in logical px, independent of the surface scale.
func (s *Surface) MeasureText(text string, font layout.FontSpec) float64 {
	return s.r.MeasureText(text, font)
}

func (s *Surface) FillRect(x, y, w, h float64, fill layout.Color) {
	if fill.Transparent() || w <= 0 || h <= 0 {
		return
	}
	s.ctx.SetFillColor(colorFromLayout(fill))
	s.ctx.SetStrokeColor(color.RGBA{})
	s.ctx.SetStrokeWidth(0)
	s.ctx.SetDashes(0)
	s.ctx.DrawPath(s.x(x), s.y(y+h), canvas.Rectangle(w*s.scale, h*s.scale))
}

func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, stroke layout.Stroke) {
	if stroke.Width <= 0 || stroke.Color.Transparent() {
		return
	}
	s.ctx.SetFillColor(color.RGBA{})
	s.applyStroke(stroke)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo((x2-x1)*s.scale, -(y2-y1)*s.scale)
	s.ctx.DrawPath(s.x(x1), s.y(y1), p)
}

func (s *Surface) FillCircle(cx, cy, r float64, fill layout.Color) {
	if fill.Transparent() || r <= 0 {
		return
	}
	s.ctx.SetFillColor(colorFromLayout(fill))
	s.ctx.SetStrokeColor(color.RGBA{})
	s.ctx.SetStrokeWidth(0)
	s.ctx.SetDashes(0)
	s.ctx.DrawPath(s.x(cx), s.y(cy), canvas.Circle(r*s.scale))
}

// DrawText draws text with its left end at x and baseline at baseline.
// Plain fills go through the canvas text layout; strokes, dashes and horizontal scaling
// need the glyph outlines.
func (s *Surface) DrawText(text string, x, baseline float64, style layout.TextStyle) {
	if text == "" || style.Font.Size <= 0 {
		return
	}
	hasStroke := style.Stroke.Width > 0 && !style.Stroke.Color.Transparent()
	if style.Fill.Transparent() && !hasStroke {
		return
	}
	scaleX := style.ScaleX
	if scaleX == 0 {
		scaleX = 1
	}
	face, err := s.r.fontFace(style.Font.Family, style.Font.Size*s.scale, colorFromLayout(style.Fill))
	if err != nil {
		return
	}

	if !hasStroke && scaleX == 1 {
		s.ctx.DrawText(s.x(x), s.y(baseline), canvas.NewTextLine(face, text, canvas.Left))
		return
	}

	p, _, err := face.ToPath(text)
	if err != nil {
		return
	}
	if scaleX != 1 {
		p = p.Transform(canvas.Identity.Scale(scaleX, 1))
	}
	s.ctx.SetFillColor(colorFromLayout(style.Fill))
	if hasStroke {
		s.applyStroke(style.Stroke)
	} else {
		s.ctx.SetStrokeColor(color.RGBA{})
		s.ctx.SetStrokeWidth(0)
		s.ctx.SetDashes(0)
	}
	s.ctx.DrawPath(s.x(x), s.y(baseline), p)
}

func (s *Surface) applyStroke(stroke layout.Stroke) {
	s.ctx.SetStrokeColor(colorFromLayout(stroke.Color))
	s.ctx.SetStrokeWidth(stroke.Width * s.scale)
	if len(stroke.Dash) == 0 {
		s.ctx.SetDashes(0)
		return
	}
	dashes := make([]float64, len(stroke.Dash))
	for i, d := range stroke.Dash {
		dashes[i] = d * s.scale
	}
	s.ctx.SetDashes(0, dashes...)
}
