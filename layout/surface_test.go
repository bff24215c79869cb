package layout

import (
	"strings"
	"unicode/utf8"
)

// stubSurface 记录所有绘制调用，文字宽度按固定规则计算，避免依赖真实字体。
type stubSurface struct {
	widths map[string]float64 // 指定单词宽度；其余按字符数×字号×0.5
	space  float64            // 空格宽度，为 0 时取 10

	calls []call
}

type call struct {
	Op     string
	Text   string
	X, Y   float64
	X2, Y2 float64
	Style  TextStyle
	Stroke Stroke
	Fill   Color
}

func (s *stubSurface) MeasureText(text string, font FontSpec) float64 {
	space := s.space
	if space == 0 {
		space = 10
	}
	total := 0.0
	for i, word := range strings.Split(text, " ") {
		if i > 0 {
			total += space
		}
		if w, ok := s.widths[word]; ok {
			total += w
			continue
		}
		total += float64(utf8.RuneCountInString(word)) * font.Size * 0.5
	}
	return total
}

func (s *stubSurface) FillRect(x, y, w, h float64, fill Color) {
	s.calls = append(s.calls, call{Op: "rect", X: x, Y: y, X2: x + w, Y2: y + h, Fill: fill})
}

func (s *stubSurface) StrokeLine(x1, y1, x2, y2 float64, stroke Stroke) {
	s.calls = append(s.calls, call{Op: "line", X: x1, Y: y1, X2: x2, Y2: y2, Stroke: stroke})
}

func (s *stubSurface) FillCircle(cx, cy, r float64, fill Color) {
	s.calls = append(s.calls, call{Op: "circle", X: cx, Y: cy, X2: r, Fill: fill})
}

func (s *stubSurface) DrawText(text string, x, baseline float64, style TextStyle) {
	s.calls = append(s.calls, call{Op: "text", Text: text, X: x, Y: baseline, Style: style})
}

func (s *stubSurface) ops(op string) []call {
	var out []call
	for _, c := range s.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func eq(a, b float64) bool { return abs(a-b) < 1e-6 }
