package layout

// RuleRole 标识格线中的一条线。
type RuleRole string

const (
	RoleTop      RuleRole = "top"
	RoleMiddle   RuleRole = "middle"
	RoleBaseline RuleRole = "baseline"
	RoleBottom   RuleRole = "bottom"
)

// Rule 是一条已确定位置与样式的水平格线。
type Rule struct {
	Role   RuleRole `json:"role"`
	Y      float64  `json:"y"`
	Stroke Stroke   `json:"stroke"`
}

// 格线在一组内的纵向比例。
const (
	legacyMiddleFraction      = 0.35
	legacyBaselineFraction    = 0.625
	educationalBaseFraction   = 0.25
	educationalMiddleFraction = 0.625
)

var (
	uniformGuideDash = []float64{6, 4}
	midlineDash      = []float64{3, 3}
)

// BaselineFraction 返回基线相对一组格线顶部的比例。
func BaselineFraction(style GuidelineStyle) float64 {
	if style.RuleCount == 4 && style.Educational {
		return educationalBaseFraction
	}
	return legacyBaselineFraction
}

type ruleSlot struct {
	role     RuleRole
	fraction float64
	midline  bool
}

func ruleSlots(style GuidelineStyle) []ruleSlot {
	switch {
	case style.RuleCount == 2:
		return []ruleSlot{{RoleTop, 0, false}, {RoleBottom, 1, false}}
	case style.RuleCount == 4 && style.Educational:
		return []ruleSlot{
			{RoleTop, 0, false},
			{RoleBaseline, educationalBaseFraction, false},
			{RoleMiddle, educationalMiddleFraction, true},
			{RoleBottom, 1, false},
		}
	case style.RuleCount == 4:
		return []ruleSlot{
			{RoleTop, 0, false},
			{RoleMiddle, legacyMiddleFraction, true},
			{RoleBaseline, legacyBaselineFraction, false},
			{RoleBottom, 1, false},
		}
	default:
		// 三线格的中间线同时是基线
		return []ruleSlot{{RoleTop, 0, false}, {RoleBaseline, legacyBaselineFraction, true}, {RoleBottom, 1, false}}
	}
}

// GuidelineRules 计算一组格线中每条线的位置与描边样式。
func GuidelineRules(topY float64, g GuidelineSettings, fontSize, lineHeight float64) []Rule {
	total := lineHeight
	if total <= 0 {
		total = fontSize
	}
	palette := g.ColorStyle.Resolve(g.CustomColors)
	slots := ruleSlots(g.Style.Resolve())

	rules := make([]Rule, 0, len(slots))
	for _, slot := range slots {
		width := g.Thickness
		if slot.role == RoleBaseline && g.EmphasizeBaseline {
			width = g.BaselineThickness
		}
		var dash []float64
		switch {
		case g.Dashed:
			dash = uniformGuideDash
		case slot.midline && g.Style.Resolve().DottedMidline:
			dash = midlineDash
		}
		rules = append(rules, Rule{
			Role: slot.role,
			Y:    topY + total*slot.fraction,
			Stroke: Stroke{
				Color: palette.color(slot.role).WithAlpha(g.Opacity),
				Width: width,
				Dash:  dash,
			},
		})
	}
	return rules
}

// DrawGuidelineSet 在 topY 处绘制一组格线，横跨 [x, x+width]。
func DrawGuidelineSet(s Surface, x, topY, width float64, g GuidelineSettings, fontSize, lineHeight float64) {
	for _, r := range GuidelineRules(topY, g, fontSize, lineHeight) {
		s.StrokeLine(x, r.Y, x+width, r.Y, r.Stroke)
	}
}

func (p Palette) color(role RuleRole) Color {
	switch role {
	case RoleTop:
		return p.Top
	case RoleMiddle:
		return p.Middle
	case RoleBaseline:
		return p.Baseline
	default:
		return p.Bottom
	}
}
