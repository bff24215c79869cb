package layout

import (
	"strings"
	"testing"
)

func TestResolveContent(t *testing.T) {
	cases := []struct {
		name string
		in   Content
		want string
	}{
		{"text", Content{Type: ContentText, Text: "hello"}, "hello"},
		{"letters", Content{Type: ContentLetters, Letters: "Aa Bb"}, "Aa Bb"},
		{"upper", Content{Type: ContentAlphabet, AlphabetCase: AlphabetUpper}, upperAlphabet},
		{"lower", Content{Type: ContentAlphabet, AlphabetCase: AlphabetLower}, lowerAlphabet},
		{"both", Content{Type: ContentAlphabet, AlphabetCase: AlphabetBoth}, upperAlphabet + "   " + lowerAlphabet},
		{"digits only", Content{Type: ContentNumbers, IncludeNumbers: true}, digits},
		{"symbols only", Content{Type: ContentNumbers, IncludeSymbols: true}, symbols},
		{"numbers none", Content{Type: ContentNumbers}, ""},
		{"unknown type", Content{Type: "poem", Text: "roses"}, "roses"},
	}
	for _, c := range cases {
		if got := ResolveContent(c.in); got != c.want {
			t.Fatalf("%s: got %q want %q", c.name, got, c.want)
		}
	}
	if !strings.HasPrefix(upperAlphabet, "A B C") || strings.Count(upperAlphabet, " ") != 25 {
		t.Fatalf("字母表应以单个空格分隔 26 个字母")
	}
}

func TestTransformCase(t *testing.T) {
	cases := map[TextCase]string{
		CaseNone:  "hELLO wORLD",
		CaseUpper: "HELLO WORLD",
		CaseLower: "hello world",
		CaseTitle: "Hello World",
		"weird":   "hELLO wORLD",
	}
	for mode, want := range cases {
		if got := TransformCase("hELLO wORLD", mode); got != want {
			t.Fatalf("%s: got %q want %q", mode, got, want)
		}
	}

	titles := []struct{ in, want string }{
		{"hello-world x-ray", "Hello-world X-ray"},
		{"  mIXED   spacing ", "  Mixed   Spacing "},
		{"(quoted) it's", "(Quoted) It's"},
		{"ÉCOLE élève", "École Élève"},
		{"--- 3rd", "--- 3rd"},
	}
	for _, c := range titles {
		if got := TransformCase(c.in, CaseTitle); got != c.want {
			t.Fatalf("TransformCase(%q, title) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestCharacterWidthAndOffset(t *testing.T) {
	for w, want := range map[CharacterWidth]float64{CharWidthCondensed: 0.85, CharWidthNormal: 1, CharWidthExpanded: 1.15, "": 1} {
		if got := CharacterWidthScale(w); got != want {
			t.Fatalf("CharacterWidthScale(%q) = %g", w, got)
		}
	}
	if got := VerticalOffset("middle", 48, 80); got != 0 {
		t.Fatalf("未知对齐方式不偏移，得到 %g", got)
	}
}

func TestParseHexColor(t *testing.T) {
	fb := Color{R: 1, G: 2, B: 3, A: 1}
	cases := map[string]Color{
		"#336699":   {R: 0x33, G: 0x66, B: 0x99, A: 1},
		" #abc ":    {R: 0xaa, G: 0xbb, B: 0xcc, A: 1},
		"#000000ff": {A: 1},
		"":          fb,
		"#12345":    fb,
		"#gggggg":   fb,
	}
	for in, want := range cases {
		if got := ParseHexColor(in, fb); got != want {
			t.Fatalf("ParseHexColor(%q) = %+v, want %+v", in, got, want)
		}
	}
}

func TestStyleResolversDefaultArms(t *testing.T) {
	if got := GuidelineStyleID("").Resolve(); got != (GuidelineStyle{RuleCount: 3}) {
		t.Fatalf("未知格线样式应为 standard: %+v", got)
	}
	if got := StyleElementaryDotted.Resolve(); !got.Educational || !got.DottedMidline || got.RuleCount != 4 {
		t.Fatalf("elementary-dotted 解析不符: %+v", got)
	}
	if got := TraceStyle("").Resolve(); got != TraceDotted {
		t.Fatalf("未知描红样式应为 dotted: %q", got)
	}
	if BaselineFraction(StyleClassic.Resolve()) != 0.625 || BaselineFraction(StyleElementary.Resolve()) != 0.25 {
		t.Fatalf("基线比例不符")
	}
}
