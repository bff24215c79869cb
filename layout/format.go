package layout

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CharacterWidthScale 返回字符宽度档位对应的水平缩放。
func CharacterWidthScale(w CharacterWidth) float64 {
	switch w {
	case CharWidthCondensed:
		return 0.85
	case CharWidthExpanded:
		return 1.15
	default:
		return 1
	}
}

// VerticalOffset 返回描红文字相对基线的纵向偏移（向下为正）。
// lineHeight 目前不参与计算，保留在签名里以便按行距调整。
func VerticalOffset(a VerticalAlignment, fontSize, lineHeight float64) float64 {
	switch a {
	case AlignTop:
		return fontSize * 0.2
	case AlignCenter:
		return 0
	case AlignBaseline:
		return -fontSize * 0.1
	default:
		return 0
	}
}

// TransformCase 按大小写模式转换文本。titlecase 以空白分词，每个词首字母大写、其余小写，
// 连字符等不算分词，"x-ray" 得到 "X-ray"。
func TransformCase(text string, mode TextCase) string {
	switch mode {
	case CaseUpper:
		return cases.Upper(language.Und).String(text)
	case CaseLower:
		return cases.Lower(language.Und).String(text)
	case CaseTitle:
		return titleWords(text)
	default:
		return text
	}
}

// titleWords 逐个处理空白分隔的词，空白原样保留。
func titleWords(text string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	var b strings.Builder
	rest := text
	for rest != "" {
		start := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsSpace(r) })
		if start < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])
		rest = rest[start:]
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			end = len(rest)
		}
		b.WriteString(titleWord(rest[:end], upper, lower))
		rest = rest[end:]
	}
	return b.String()
}

// titleWord 从词中第一个字母或数字起首字母大写，之前的标点不变。
func titleWord(word string, upper, lower cases.Caser) string {
	i := strings.IndexFunc(word, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	})
	if i < 0 {
		return word
	}
	_, n := utf8.DecodeRuneInString(word[i:])
	return word[:i] + upper.String(word[i:i+n]) + lower.String(word[i+n:])
}

// ParseHexColor 解析 #rgb、#rrggbb 或 #rrggbbaa，失败时返回 fallback。
func ParseHexColor(s string, fallback Color) Color {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6, 8:
	default:
		return fallback
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return fallback
	}
	if len(h) == 8 {
		return Color{R: int(v >> 24 & 0xff), G: int(v >> 16 & 0xff), B: int(v >> 8 & 0xff), A: float64(v&0xff) / 255}
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff), A: 1}
}
