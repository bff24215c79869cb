package layout

import (
	"strings"
	"unicode/utf8"
)

const (
	defaultMargin     = 50.0
	fullGuidesMargin  = 20.0
	headerBandHeight  = 40.0
	footerBandHeight  = 30.0
	lineSetFontFactor = 1.5

	// 行距或格线组高度低于 1px 时不再排版，游标必须能向下推进
	minPitch = 1.0
)

// 允许一行略微超出内容宽度的容差。重复填充模式的容差更大，两者保持独立可调。
const (
	SinglePassSlack = 1.08
	RepeatFillSlack = 1.12
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// PlanPage 计算一页练字纸的几何布局：边距、行距、换行结果与每组格线的位置。
// 它只测量文字，不绘制任何内容；相同输入总是得到相同结果。
func PlanPage(m Measurer, width, height float64, prefs Preferences, pageNumber, totalPages int) PagePlan {
	prefs = prefs.Normalize()
	ty := prefs.Typography
	g := prefs.Guidelines
	doc := prefs.Document

	margin := defaultMargin
	if g.FullMarginGuides {
		margin = fullGuidesMargin
	}
	plan := PagePlan{
		Width:      width,
		Height:     height,
		PageNumber: pageNumber,
		TotalPages: totalPages,
		Margin:     margin,
		LineHeight: LineHeightPx(g, ty.FontSize),
	}
	if doc.ShowHeader {
		plan.HeaderHeight = headerBandHeight
	}
	if doc.ShowFooter || doc.ShowPageNumbers {
		plan.FooterHeight = footerBandHeight
	}
	plan.TopMargin = margin + plan.HeaderHeight
	plan.ContentWidth = width - 2*margin
	plan.ContentHeight = height - margin - plan.FooterHeight

	lh := plan.LineHeight
	baseFrac := BaselineFraction(g.Style.Resolve())
	y := plan.TopMargin + ty.FontSize

	if prefs.Content.EmptyPaper {
		if !(lh >= minPitch) {
			return plan
		}
		for ; y < plan.ContentHeight; y += lh {
			plan.Sets = append(plan.Sets, LineSet{Top: y - baseFrac*lh, Baseline: y, Lines: 1})
		}
		return plan
	}

	text := lineBreaks.Replace(TransformCase(ResolveContent(prefs.Content), ty.TextCase))
	plan.Text = text
	plan.LineSetHeight = lh*float64(g.LineCount-1) + ty.FontSize*lineSetFontFactor
	if strings.TrimSpace(text) == "" || !(lh >= minPitch) || !(plan.LineSetHeight >= minPitch) {
		return plan
	}

	repeat := prefs.Content.RepeatText
	plan.Slack = SinglePassSlack
	if repeat {
		plan.Slack = RepeatFillSlack
	}
	w := wrapper{
		m:     m,
		font:  FontSpec{Family: ty.FontFamily, Size: ty.FontSize},
		ty:    ty,
		scale: CharacterWidthScale(ty.CharacterWidth),
		limit: plan.ContentWidth * plan.Slack,
	}
	// 按单个空格切分，保留连续空格产生的空词，使字符组之间的间隔得以保留
	words := strings.Split(text, " ")
	flush := func(line string) {
		line = strings.TrimRight(line, " ")
		plan.Sets = append(plan.Sets, LineSet{
			Top:      y - baseFrac*lh,
			Baseline: y,
			Text:     line,
			Width:    w.measure(line),
			Lines:    g.LineCount,
		})
		y += plan.LineSetHeight
	}

	for y < plan.ContentHeight {
		emitted := len(plan.Sets)
		current := ""
		full := false
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if current != "" && w.measure(candidate) > w.limit {
				flush(current)
				current = word
				if y >= plan.ContentHeight {
					full = true
					break
				}
				continue
			}
			current = candidate
		}
		if !full && strings.TrimSpace(current) != "" && y < plan.ContentHeight {
			flush(current)
		}
		if !repeat || len(plan.Sets) == emitted {
			break
		}
	}
	return plan
}

type wrapper struct {
	m     Measurer
	font  FontSpec
	ty    Typography
	scale float64
	limit float64
}

// measure 返回一行文字计入字距、词距与宽度缩放后的宽度。
func (w wrapper) measure(line string) float64 {
	return MeasureLine(w.m, line, w.font, w.ty.LetterSpacing, w.ty.WordSpacing, w.scale)
}

// MeasureLine 计算一行的排版宽度：(自然宽度 + 字符数×字距 + 空格数×词距) × 宽度缩放。
func MeasureLine(m Measurer, line string, font FontSpec, letterSpacing, wordSpacing, scale float64) float64 {
	if line == "" {
		return 0
	}
	natural := m.MeasureText(line, font)
	extra := float64(utf8.RuneCountInString(line))*letterSpacing + float64(strings.Count(line, " "))*wordSpacing
	return (natural + extra) * scale
}
