package layout

// 该文件定义练字纸的偏好设置与页面规划结果，供布局计算、渲染与调试 JSON 共用。
// 所有长度单位均为 96 DPI 下的逻辑像素（px）。

// Preferences 是一次渲染所需的全部配置，按值传递，渲染过程中不会被修改。
type Preferences struct {
	Typography Typography        `json:"typography"`
	Guidelines GuidelineSettings `json:"guidelines"`
	Trace      TraceSettings     `json:"trace"`
	Content    Content           `json:"content"`
	Document   DocumentSettings  `json:"document"`
}

// Typography 描述字体与字符间距。
type Typography struct {
	FontFamily        string            `json:"fontFamily"`
	FontSize          float64           `json:"fontSize"`
	LetterSpacing     float64           `json:"letterSpacing"`
	WordSpacing       float64           `json:"wordSpacing"`
	CharacterWidth    CharacterWidth    `json:"characterWidth"`
	TextCase          TextCase          `json:"textCase"`
	VerticalAlignment VerticalAlignment `json:"verticalAlignment"`
}

// GuidelineSettings 描述一组书写格线的外观与行距。
type GuidelineSettings struct {
	Style             GuidelineStyleID `json:"style"`
	Spacing           SpacingPreset    `json:"spacing"`
	CustomSpacingMM   float64          `json:"customSpacingMm"`
	Thickness         float64          `json:"thickness"`
	Opacity           float64          `json:"opacity"`
	ColorStyle        ColorStyleID     `json:"colorStyle"`
	CustomColors      CustomColors     `json:"customColors"`
	Dashed            bool             `json:"dashed"`
	EmphasizeBaseline bool             `json:"emphasizeBaseline"`
	BaselineThickness float64          `json:"baselineThickness"`
	ShowMarginLines   bool             `json:"showMarginLines"`
	FullMarginGuides  bool             `json:"fullMarginGuides"`
	LineCount         int              `json:"lineCount"` // 每组格线包含的行数，第一行为描红行
	Hidden            bool             `json:"hidden"`    // 只保留排版，不绘制格线
}

// CustomColors 为 custom 配色下四条线各自的十六进制颜色。
type CustomColors struct {
	Top      string `json:"top"`
	Middle   string `json:"middle"`
	Baseline string `json:"baseline"`
	Bottom   string `json:"bottom"`
}

// TraceSettings 描述描红文字的外观。
type TraceSettings struct {
	Style        TraceStyle `json:"style"`
	Opacity      float64    `json:"opacity"`
	StartingDots bool       `json:"startingDots"`
}

// Content 决定每页要排的文字。多页模式下每页可单独覆盖。
type Content struct {
	Type           WorksheetType `json:"type"`
	Text           string        `json:"text"`
	Letters        string        `json:"letters"`
	AlphabetCase   AlphabetCase  `json:"alphabetCase"`
	IncludeNumbers bool          `json:"includeNumbers"`
	IncludeSymbols bool          `json:"includeSymbols"`
	EmptyPaper     bool          `json:"emptyPaper"`
	RepeatText     bool          `json:"repeatText"`
}

// DocumentSettings 描述纸张、分页与页眉页脚。
type DocumentSettings struct {
	Paper           PaperSize    `json:"paper"`
	Landscape       bool         `json:"landscape"`
	PageCount       int          `json:"pageCount"`
	MultiPage       bool         `json:"multiPage"`
	Pages           []PageConfig `json:"pages,omitempty"`
	Quality         PrintQuality `json:"quality"`
	ShowPageNumbers bool         `json:"showPageNumbers"`
	ShowFooter      bool         `json:"showFooter"`
	FooterText      string       `json:"footerText"`
	ShowHeader      bool         `json:"showHeader"`
	HeaderText      string       `json:"headerText"`
	Title           string       `json:"title"`
	Author          string       `json:"author"`
}

// PageConfig 是多页模式下单页的内容配置，只覆盖内容相关字段。
type PageConfig struct {
	ID      string  `json:"id"`
	Content Content `json:"content"`
}

// Defaults 返回默认偏好设置。
func Defaults() Preferences {
	return Preferences{
		Typography: Typography{
			FontFamily:        "Go",
			FontSize:          48,
			WordSpacing:       5,
			CharacterWidth:    CharWidthNormal,
			TextCase:          CaseNone,
			VerticalAlignment: AlignBaseline,
		},
		Guidelines: GuidelineSettings{
			Style:             StyleElementary,
			Spacing:           SpacingGrade1To3,
			CustomSpacingMM:   12.7,
			Thickness:         0.5,
			Opacity:           1,
			ColorStyle:        ColorsDefault,
			CustomColors:      CustomColors{Top: "#999999", Middle: "#cccccc", Baseline: "#999999", Bottom: "#999999"},
			BaselineThickness: 1.5,
			LineCount:         3,
		},
		Trace: TraceSettings{
			Style:   TraceDotted,
			Opacity: 0.3,
		},
		Content: Content{
			Type:           ContentText,
			Text:           "The quick brown fox jumps over the lazy dog",
			Letters:        "Aa Bb Cc Dd",
			AlphabetCase:   AlphabetBoth,
			IncludeNumbers: true,
			IncludeSymbols: true,
		},
		Document: DocumentSettings{
			Paper:           PaperA4,
			PageCount:       1,
			Quality:         QualityHigh,
			ShowPageNumbers: true,
			ShowFooter:      true,
			FooterText:      "Generated by InkTrace",
		},
	}
}

// Normalize 把越界数值收敛到合法范围，返回新值。
func (p Preferences) Normalize() Preferences {
	if p.Guidelines.LineCount < 1 {
		p.Guidelines.LineCount = 1
	}
	p.Guidelines.Opacity = clamp01(p.Guidelines.Opacity)
	p.Trace.Opacity = clamp01(p.Trace.Opacity)
	p.Typography.FontSize = nonNegative(p.Typography.FontSize)
	p.Typography.LetterSpacing = nonNegative(p.Typography.LetterSpacing)
	p.Typography.WordSpacing = nonNegative(p.Typography.WordSpacing)
	p.Guidelines.Thickness = nonNegative(p.Guidelines.Thickness)
	p.Guidelines.BaselineThickness = nonNegative(p.Guidelines.BaselineThickness)
	p.Guidelines.CustomSpacingMM = nonNegative(p.Guidelines.CustomSpacingMM)
	if p.Document.PageCount < 1 {
		p.Document.PageCount = 1
	}
	if len(p.Document.Pages) > 0 {
		// 拷贝一份，避免与调用方共享底层数组
		p.Document.Pages = append([]PageConfig(nil), p.Document.Pages...)
	}
	return p
}

// TotalPages 返回导出时的总页数。
func (p Preferences) TotalPages() int {
	if p.Document.MultiPage {
		return len(p.Document.Pages)
	}
	if p.Document.PageCount < 1 {
		return 1
	}
	return p.Document.PageCount
}

// ForPage 返回第 i 页（从 0 开始）的有效设置：多页模式下用 Pages[i] 的内容覆盖全局内容，
// 其余排版、格线与页面设置保持共享。
func (p Preferences) ForPage(i int) Preferences {
	if !p.Document.MultiPage || i < 0 || i >= len(p.Document.Pages) {
		return p
	}
	p.Content = p.Document.Pages[i].Content
	return p
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Color 采用 0-255 的 RGB 数值，A 为 0-1 的不透明度。
type Color struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"a"`
}

// WithAlpha 返回乘上 alpha 后的颜色。
func (c Color) WithAlpha(alpha float64) Color {
	c.A = clamp01(c.A * alpha)
	return c
}

// Transparent 表示不填充/不描边。
func (c Color) Transparent() bool { return c.A <= 0 }

// FontSpec 描述绘制文字所用字体。Size 为 px。
type FontSpec struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
}

// Stroke 为显式的描边样式，Width 为 0 表示不描边。
type Stroke struct {
	Color Color     `json:"color"`
	Width float64   `json:"width"`
	Dash  []float64 `json:"dash,omitempty"`
}

// TextStyle 是一次文字绘制的完整样式，不依赖绘图面的环境状态。
type TextStyle struct {
	Font   FontSpec `json:"font"`
	Fill   Color    `json:"fill"`
	Stroke Stroke   `json:"stroke"`
	ScaleX float64  `json:"scaleX"` // 以绘制起点为中心的水平缩放，0 视为 1
}

// PagePlan 是单页的几何规划结果，DrawPage 按它绘制，调试 JSON 也输出它。
type PagePlan struct {
	Width         float64   `json:"width"`
	Height        float64   `json:"height"`
	PageNumber    int       `json:"pageNumber"`
	TotalPages    int       `json:"totalPages"`
	Margin        float64   `json:"margin"`
	TopMargin     float64   `json:"topMargin"`
	HeaderHeight  float64   `json:"headerHeight"`
	FooterHeight  float64   `json:"footerHeight"`
	ContentWidth  float64   `json:"contentWidth"`
	ContentHeight float64   `json:"contentHeight"`
	LineHeight    float64   `json:"lineHeight"`
	LineSetHeight float64   `json:"lineSetHeight"`
	Slack         float64   `json:"slack"`
	Text          string    `json:"text"`
	Sets          []LineSet `json:"sets"`
}

// LineSet 是一组格线：第一行描红，其余为空白练习行。
type LineSet struct {
	Top      float64 `json:"top"`
	Baseline float64 `json:"baseline"`
	Lines    int     `json:"lines"` // 组内行数，空白纸模式下为 1
	Text     string  `json:"text,omitempty"`
	Width    float64 `json:"width,omitempty"` // 计入字距、词距与宽度缩放后的测量宽度
}
