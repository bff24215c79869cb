package layout

import (
	"strings"
	"unicode"
)

var (
	traceInk      = Color{A: 1}
	startDotColor = Color{R: 255, G: 0, B: 0, A: 1}

	dottedTraceDash = []float64{2, 3}
	dashedTraceDash = []float64{8, 4}
)

const (
	traceStrokeWidth = 1.0
	outlineAlpha     = 0.7
)

// TraceTextStyle 返回描红样式对应的显式绘制样式。
func TraceTextStyle(t TraceSettings, font FontSpec, scaleX float64) TextStyle {
	style := TextStyle{Font: font, ScaleX: scaleX}
	switch t.Style.Resolve() {
	case TraceSolid:
		style.Fill = traceInk.WithAlpha(t.Opacity)
	case TraceOutline:
		style.Stroke = Stroke{Color: traceInk.WithAlpha(outlineAlpha), Width: traceStrokeWidth}
	case TraceDashed:
		style.Stroke = Stroke{Color: traceInk.WithAlpha(t.Opacity * 0.8), Width: traceStrokeWidth, Dash: dashedTraceDash}
	default:
		style.Stroke = Stroke{Color: traceInk.WithAlpha(t.Opacity * 0.8), Width: traceStrokeWidth, Dash: dottedTraceDash}
		style.Fill = traceInk.WithAlpha(t.Opacity * 0.3)
	}
	return style
}

// DrawTracedText 在 (x, baseline) 处绘制一行描红文字。
// 字符宽度缩放以 x 为中心作用于整行：字距、词距与字形一起被缩放。
func DrawTracedText(s Surface, text string, x, baseline float64, t TraceSettings, ty Typography) {
	if text == "" {
		return
	}
	font := FontSpec{Family: ty.FontFamily, Size: ty.FontSize}
	scale := CharacterWidthScale(ty.CharacterWidth)
	style := TraceTextStyle(t, font, scale)

	if ty.WordSpacing <= 0 {
		drawTraceRun(s, text, x, baseline, style, t.StartingDots, ty.LetterSpacing)
		return
	}
	cursor := 0.0
	for _, word := range strings.Split(text, " ") {
		if word != "" {
			drawTraceRun(s, word, x+cursor*scale, baseline, style, t.StartingDots, ty.LetterSpacing)
		}
		cursor += runAdvance(s, word, font, ty.LetterSpacing) + ty.WordSpacing
	}
}

func drawTraceRun(s Surface, run string, x, baseline float64, style TextStyle, dots bool, letterSpacing float64) {
	scale := style.ScaleX
	if scale == 0 {
		scale = 1
	}
	if letterSpacing <= 0 {
		if dots && strings.TrimSpace(run) != "" {
			drawStartingDot(s, x, baseline, style.Font.Size)
		}
		s.DrawText(run, x, baseline, style)
		return
	}
	cursor := 0.0
	for _, r := range run {
		ch := string(r)
		cx := x + cursor*scale
		if dots && !unicode.IsSpace(r) {
			drawStartingDot(s, cx, baseline, style.Font.Size)
		}
		s.DrawText(ch, cx, baseline, style)
		cursor += s.MeasureText(ch, style.Font) + letterSpacing
	}
}

// runAdvance 返回一段文字未缩放时的横向前进量。
func runAdvance(m Measurer, run string, font FontSpec, letterSpacing float64) float64 {
	if run == "" {
		return 0
	}
	if letterSpacing <= 0 {
		return m.MeasureText(run, font)
	}
	total := 0.0
	for _, r := range run {
		total += m.MeasureText(string(r), font) + letterSpacing
	}
	return total
}

// drawStartingDot 在字符左上方画一个红色起笔点。
func drawStartingDot(s Surface, x, baseline, fontSize float64) {
	r := fontSize * 0.05
	if r < 2 {
		r = 2
	}
	s.FillCircle(x-r*1.5, baseline-fontSize*0.7, r, startDotColor)
}
