package layout

import "fmt"

var (
	pageBackground  = Color{R: 255, G: 255, B: 255, A: 1}
	marginLineColor = Color{R: 255, G: 150, B: 150, A: 0.6}
	footerInk       = Color{R: 128, G: 128, B: 128, A: 1}
	headerInk       = Color{R: 80, G: 80, B: 80, A: 1}
	headerRuleColor = Color{R: 200, G: 200, B: 200, A: 1}

	marginLineDash = []float64{5, 5}
)

const (
	footerFontSize = 12.0
	headerFontSize = 14.0
)

// DrawPage 在 s 上绘制一页练字纸。pageNumber 与 totalPages 为 0 时不绘制页码。
func DrawPage(s Surface, width, height float64, prefs Preferences, pageNumber, totalPages int) PagePlan {
	plan := PlanPage(s, width, height, prefs, pageNumber, totalPages)
	Paint(s, plan, prefs.Normalize())
	return plan
}

// Paint 按规划结果依次绘制背景、页边线、格线、描红文字、页眉与页脚。
func Paint(s Surface, plan PagePlan, prefs Preferences) {
	ty := prefs.Typography
	g := prefs.Guidelines
	doc := prefs.Document

	s.FillRect(0, 0, plan.Width, plan.Height, pageBackground)

	if g.ShowMarginLines {
		stroke := Stroke{Color: marginLineColor, Width: 1, Dash: marginLineDash}
		left, right := plan.Margin, plan.Width-plan.Margin
		s.StrokeLine(left, plan.TopMargin, left, plan.ContentHeight, stroke)
		s.StrokeLine(right, plan.TopMargin, right, plan.ContentHeight, stroke)
	}

	offset := VerticalOffset(ty.VerticalAlignment, ty.FontSize, plan.LineHeight)
	for _, set := range plan.Sets {
		if !g.Hidden {
			for i := 0; i < set.Lines; i++ {
				top := set.Top + float64(i)*plan.LineHeight
				DrawGuidelineSet(s, plan.Margin, top, plan.ContentWidth, g, ty.FontSize, plan.LineHeight)
			}
		}
		if set.Text != "" {
			DrawTracedText(s, set.Text, plan.Margin, set.Baseline+offset, prefs.Trace, ty)
		}
	}

	if doc.ShowHeader && doc.HeaderText != "" {
		font := FontSpec{Family: ty.FontFamily, Size: headerFontSize}
		baseline := plan.Margin + plan.HeaderHeight/2
		s.DrawText(doc.HeaderText, plan.Margin, baseline, TextStyle{Font: font, Fill: headerInk})
		ruleY := plan.Margin + plan.HeaderHeight - 8
		s.StrokeLine(plan.Margin, ruleY, plan.Width-plan.Margin, ruleY, Stroke{Color: headerRuleColor, Width: 0.5})
	}

	if plan.FooterHeight <= 0 {
		return
	}
	font := FontSpec{Family: ty.FontFamily, Size: footerFontSize}
	style := TextStyle{Font: font, Fill: footerInk}
	baseline := plan.Height - plan.Margin - plan.FooterHeight/2 + footerFontSize/3
	if doc.ShowFooter && doc.FooterText != "" {
		s.DrawText(doc.FooterText, plan.Margin, baseline, style)
	}
	if doc.ShowPageNumbers && plan.PageNumber > 0 && plan.TotalPages > 0 {
		label := PageLabel(plan.PageNumber, plan.TotalPages)
		x := plan.Width - plan.Margin - s.MeasureText(label, font)
		s.DrawText(label, x, baseline, style)
	}
}

// PageLabel 返回页脚中的页码文字。
func PageLabel(n, total int) string {
	return fmt.Sprintf("Page %d of %d", n, total)
}
