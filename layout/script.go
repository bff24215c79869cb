package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/inktrace/binding"
	"github.com/ByLCY/inktrace/dsl"
)

// FromScript 将练字纸脚本应用到默认设置上。
// 字符串值中的 ${...} 占位符通过 data 解析；未知段落或键会报错并给出行号。
func FromScript(doc *dsl.Document, data any) (Preferences, error) {
	return ApplyScript(Defaults(), doc, data)
}

// ApplyScript 与 FromScript 相同，但以 base 为起点。
func ApplyScript(base Preferences, doc *dsl.Document, data any) (Preferences, error) {
	prefs := base
	prefs.Document.Pages = append([]PageConfig(nil), base.Document.Pages...)
	if doc == nil {
		return prefs, fmt.Errorf("文档为空")
	}
	var pages []*dsl.Section
	for _, section := range doc.Sections {
		if section == nil || section.Block == nil {
			continue
		}
		kind := strings.ToLower(section.Kind)
		switch kind {
		case "page":
			pages = append(pages, section)
			continue
		case "meta", "typography", "guidelines", "trace", "content", "document":
		default:
			return prefs, fmt.Errorf("第 %d 行：未知段落 %q", section.Pos.Line, section.Kind)
		}
		for _, stmt := range section.Block.Statements {
			if stmt == nil || stmt.Assignment == nil {
				continue
			}
			a := scriptValue{assign: stmt.Assignment, data: data}
			var err error
			switch kind {
			case "meta":
				err = applyMeta(&prefs.Document, a)
			case "typography":
				err = applyTypography(&prefs.Typography, a)
			case "guidelines":
				err = applyGuidelines(&prefs.Guidelines, a)
			case "trace":
				err = applyTrace(&prefs.Trace, a)
			case "content":
				err = applyContent(&prefs.Content, a)
			case "document":
				err = applyDocument(&prefs.Document, a)
			}
			if err != nil {
				return prefs, err
			}
		}
	}

	// 页面段落以全局内容为起点，只覆盖内容字段
	for i, section := range pages {
		page := PageConfig{ID: section.Label, Content: prefs.Content}
		if page.ID == "" {
			page.ID = fmt.Sprintf("page-%d", i+1)
		}
		for _, stmt := range section.Block.Statements {
			if stmt == nil || stmt.Assignment == nil {
				continue
			}
			if err := applyContent(&page.Content, scriptValue{assign: stmt.Assignment, data: data}); err != nil {
				return prefs, err
			}
		}
		prefs.Document.Pages = append(prefs.Document.Pages, page)
	}
	if len(prefs.Document.Pages) > 0 {
		prefs.Document.MultiPage = true
	}
	return prefs.Normalize(), nil
}

type scriptValue struct {
	assign *dsl.Assignment
	data   any
}

func (v scriptValue) key() string { return strings.ToLower(v.assign.Key) }

func (v scriptValue) errorf(format string, args ...any) error {
	return fmt.Errorf("第 %d 行 %s: %s", v.assign.Pos.Line, v.assign.Key, fmt.Sprintf(format, args...))
}

func (v scriptValue) unknown(section string) error {
	return v.errorf("%s 段落不支持该键", section)
}

func (v scriptValue) text() string {
	return binding.Interpolate(v.assign.Value.Text(), v.data)
}

func (v scriptValue) ident() string { return strings.ToLower(strings.TrimSpace(v.text())) }

func (v scriptValue) px() (float64, error) {
	l, ok := ParseLength(v.text())
	if !ok {
		return 0, v.errorf("无法解析长度 %q", v.text())
	}
	return l.ToPx(), nil
}

// mm 解析毫米值，不带单位时按毫米处理。
func (v scriptValue) mm() (float64, error) {
	l, ok := ParseLength(v.text())
	if !ok {
		return 0, v.errorf("无法解析长度 %q", v.text())
	}
	if l.Unit == UnitNone {
		return l.Value, nil
	}
	return l.ToMM(), nil
}

func (v scriptValue) asFloat() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v.text()), 64)
	if err != nil {
		return 0, v.errorf("无法解析数值 %q", v.text())
	}
	return f, nil
}

func (v scriptValue) asInt() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v.text()))
	if err != nil {
		return 0, v.errorf("无法解析整数 %q", v.text())
	}
	return n, nil
}

func (v scriptValue) asBool() (bool, error) {
	switch v.ident() {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, v.errorf("无法解析布尔值 %q", v.text())
	}
}

func applyMeta(d *DocumentSettings, v scriptValue) error {
	switch v.key() {
	case "title":
		d.Title = v.text()
	case "author":
		d.Author = v.text()
	default:
		return v.unknown("meta")
	}
	return nil
}

func applyTypography(t *Typography, v scriptValue) (err error) {
	switch v.key() {
	case "font", "font-family":
		t.FontFamily = strings.TrimSpace(v.text())
	case "size", "font-size":
		t.FontSize, err = v.px()
	case "letter-spacing":
		t.LetterSpacing, err = v.px()
	case "word-spacing":
		t.WordSpacing, err = v.px()
	case "width", "character-width":
		t.CharacterWidth = CharacterWidth(v.ident())
	case "case", "text-case":
		t.TextCase = TextCase(v.ident())
	case "align", "vertical-alignment":
		t.VerticalAlignment = VerticalAlignment(v.ident())
	default:
		return v.unknown("typography")
	}
	return err
}

func applyGuidelines(g *GuidelineSettings, v scriptValue) (err error) {
	switch v.key() {
	case "style":
		g.Style = GuidelineStyleID(v.ident())
	case "spacing":
		g.Spacing = SpacingPreset(v.ident())
	case "custom-spacing":
		g.CustomSpacingMM, err = v.mm()
		if err == nil {
			g.Spacing = SpacingCustom
		}
	case "thickness":
		g.Thickness, err = v.px()
	case "opacity":
		g.Opacity, err = v.asFloat()
	case "color", "color-style":
		g.ColorStyle = ColorStyleID(v.ident())
	case "color-top":
		g.CustomColors.Top = v.text()
	case "color-middle":
		g.CustomColors.Middle = v.text()
	case "color-baseline":
		g.CustomColors.Baseline = v.text()
	case "color-bottom":
		g.CustomColors.Bottom = v.text()
	case "dashed":
		g.Dashed, err = v.asBool()
	case "emphasize-baseline":
		g.EmphasizeBaseline, err = v.asBool()
	case "baseline-thickness":
		g.BaselineThickness, err = v.px()
	case "margin-lines":
		g.ShowMarginLines, err = v.asBool()
	case "full-margin":
		g.FullMarginGuides, err = v.asBool()
	case "lines", "line-count":
		g.LineCount, err = v.asInt()
	case "hidden":
		g.Hidden, err = v.asBool()
	default:
		return v.unknown("guidelines")
	}
	return err
}

func applyTrace(t *TraceSettings, v scriptValue) (err error) {
	switch v.key() {
	case "style":
		t.Style = TraceStyle(v.ident())
	case "opacity":
		t.Opacity, err = v.asFloat()
	case "dots", "starting-dots":
		t.StartingDots, err = v.asBool()
	default:
		return v.unknown("trace")
	}
	return err
}

func applyContent(c *Content, v scriptValue) (err error) {
	switch v.key() {
	case "type":
		c.Type = WorksheetType(v.ident())
	case "text":
		c.Text = v.text()
	case "letters":
		c.Letters = v.text()
	case "alphabet-case":
		c.AlphabetCase = AlphabetCase(v.ident())
	case "numbers":
		c.IncludeNumbers, err = v.asBool()
	case "symbols":
		c.IncludeSymbols, err = v.asBool()
	case "empty", "empty-paper":
		c.EmptyPaper, err = v.asBool()
	case "repeat":
		c.RepeatText, err = v.asBool()
	default:
		return v.unknown("content")
	}
	return err
}

func applyDocument(d *DocumentSettings, v scriptValue) (err error) {
	switch v.key() {
	case "paper":
		d.Paper = PaperSize(v.ident())
	case "landscape":
		d.Landscape, err = v.asBool()
	case "pages", "page-count":
		d.PageCount, err = v.asInt()
	case "quality":
		d.Quality = PrintQuality(v.ident())
	case "page-numbers":
		d.ShowPageNumbers, err = v.asBool()
	case "footer":
		d.FooterText = v.text()
		d.ShowFooter = d.FooterText != ""
	case "show-footer":
		d.ShowFooter, err = v.asBool()
	case "header":
		d.HeaderText = v.text()
		d.ShowHeader = d.HeaderText != ""
	case "show-header":
		d.ShowHeader, err = v.asBool()
	default:
		return v.unknown("document")
	}
	return err
}
