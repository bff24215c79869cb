package layout

// 该文件定义各类枚举及其解析函数。未知取值一律落到 default 分支的安全默认值。

// GuidelineStyleID 是格线样式编号。
type GuidelineStyleID string

const (
	StyleStandard         GuidelineStyleID = "standard"
	StyleElementary       GuidelineStyleID = "elementary"
	StyleDotted           GuidelineStyleID = "dotted"
	StyleDouble           GuidelineStyleID = "double"
	StyleElementaryDotted GuidelineStyleID = "elementary-dotted"
	StyleClassic          GuidelineStyleID = "classic"
)

// GuidelineStyle 是解析后的格线样式。
type GuidelineStyle struct {
	RuleCount     int  `json:"ruleCount"`
	DottedMidline bool `json:"dottedMidline"`
	Educational   bool `json:"educational"` // 3:3:2 比例
}

// Resolve 解析格线样式，未知样式按 standard 处理。
func (id GuidelineStyleID) Resolve() GuidelineStyle {
	switch id {
	case StyleElementary:
		return GuidelineStyle{RuleCount: 4, Educational: true}
	case StyleDotted:
		return GuidelineStyle{RuleCount: 3, DottedMidline: true}
	case StyleDouble:
		return GuidelineStyle{RuleCount: 2}
	case StyleElementaryDotted:
		return GuidelineStyle{RuleCount: 4, DottedMidline: true, Educational: true}
	case StyleClassic:
		return GuidelineStyle{RuleCount: 4}
	case StyleStandard:
		return GuidelineStyle{RuleCount: 3}
	default:
		return GuidelineStyle{RuleCount: 3}
	}
}

// ColorStyleID 是格线配色编号。
type ColorStyleID string

const (
	ColorsDefault    ColorStyleID = "default"
	ColorsRainbow    ColorStyleID = "rainbow"
	ColorsPastel     ColorStyleID = "pastel"
	ColorsMonochrome ColorStyleID = "monochrome"
	ColorsCustom     ColorStyleID = "custom"
)

// Palette 为四条线各自的颜色。
type Palette struct {
	Top      Color `json:"top"`
	Middle   Color `json:"middle"`
	Baseline Color `json:"baseline"`
	Bottom   Color `json:"bottom"`
}

func rgb(r, g, b int) Color { return Color{R: r, G: g, B: b, A: 1} }

var defaultPalette = Palette{
	Top:      rgb(153, 153, 153),
	Middle:   rgb(204, 204, 204),
	Baseline: rgb(153, 153, 153),
	Bottom:   rgb(153, 153, 153),
}

// Resolve 解析配色。custom 配色中无法解析的颜色回退到默认配色的对应线。
func (id ColorStyleID) Resolve(custom CustomColors) Palette {
	switch id {
	case ColorsRainbow:
		return Palette{Top: rgb(255, 99, 71), Middle: rgb(255, 165, 0), Baseline: rgb(50, 205, 50), Bottom: rgb(30, 144, 255)}
	case ColorsPastel:
		return Palette{Top: rgb(255, 182, 193), Middle: rgb(221, 160, 221), Baseline: rgb(176, 224, 230), Bottom: rgb(152, 251, 152)}
	case ColorsMonochrome:
		return Palette{Top: rgb(0, 0, 0), Middle: rgb(100, 100, 100), Baseline: rgb(0, 0, 0), Bottom: rgb(0, 0, 0)}
	case ColorsCustom:
		return Palette{
			Top:      ParseHexColor(custom.Top, defaultPalette.Top),
			Middle:   ParseHexColor(custom.Middle, defaultPalette.Middle),
			Baseline: ParseHexColor(custom.Baseline, defaultPalette.Baseline),
			Bottom:   ParseHexColor(custom.Bottom, defaultPalette.Bottom),
		}
	default:
		return defaultPalette
	}
}

// TraceStyle 是描红文字样式。
type TraceStyle string

const (
	TraceDotted  TraceStyle = "dotted"
	TraceDashed  TraceStyle = "dashed"
	TraceOutline TraceStyle = "outline"
	TraceSolid   TraceStyle = "solid"
)

// Resolve 返回合法的描红样式，未知样式按 dotted 处理。
func (s TraceStyle) Resolve() TraceStyle {
	switch s {
	case TraceDotted, TraceDashed, TraceOutline, TraceSolid:
		return s
	default:
		return TraceDotted
	}
}

// CharacterWidth 是字符宽度档位。
type CharacterWidth string

const (
	CharWidthCondensed CharacterWidth = "condensed"
	CharWidthNormal    CharacterWidth = "normal"
	CharWidthExpanded  CharacterWidth = "expanded"
)

// TextCase 是大小写转换方式。
type TextCase string

const (
	CaseNone  TextCase = "none"
	CaseUpper TextCase = "uppercase"
	CaseLower TextCase = "lowercase"
	CaseTitle TextCase = "titlecase"
)

// VerticalAlignment 决定描红文字相对基线的偏移。
type VerticalAlignment string

const (
	AlignTop      VerticalAlignment = "top"
	AlignCenter   VerticalAlignment = "center"
	AlignBaseline VerticalAlignment = "baseline"
)

// WorksheetType 是内容类型。
type WorksheetType string

const (
	ContentText     WorksheetType = "text"
	ContentLetters  WorksheetType = "letters"
	ContentAlphabet WorksheetType = "alphabet"
	ContentNumbers  WorksheetType = "numbers"
)

// AlphabetCase 决定字母表输出大写、小写或两者。
type AlphabetCase string

const (
	AlphabetUpper AlphabetCase = "uppercase"
	AlphabetLower AlphabetCase = "lowercase"
	AlphabetBoth  AlphabetCase = "both"
)
