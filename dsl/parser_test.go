package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/inktrace/dsl"
)

const sampleScript = `
// 练字纸示例
worksheet Alphabet v1 {
  meta {
    title: "Letters for \"Sam\""
    keywords: [
      "letters"
      "grade-1"
    ]
  }

  typography { font: Go Mono; size: 48px; letter-spacing: 0.5mm }

  guidelines {
    style: elementary-dotted   # 四线格
    spacing: grade1-3
    color-top: #FF6347
    offset: -2
  }

  content {
    text: "Hello ${student.name|friend}"
    source: data.words
  }

  page first { type: letters; letters: "Aa Bb" }
}
`

func TestParseWorksheet(t *testing.T) {
	doc, err := dsl.ParseString(sampleScript)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Name != "Alphabet" || doc.Version != "v1" {
		t.Fatalf("unexpected header: %s %s", doc.Name, doc.Version)
	}
	if len(doc.Sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(doc.Sections))
	}

	meta := doc.Sections[0]
	if meta.Kind != "meta" || meta.Label != "" {
		t.Fatalf("unexpected meta section: %+v", meta)
	}
	title := meta.Block.Statements[0].Assignment
	if title.Key != "title" || title.Value.String == nil || title.Value.Text() != `Letters for "Sam"` {
		t.Fatalf("unexpected title: %+v", title.Value)
	}
	keywords := meta.Block.Statements[1].Assignment.Value
	if got := keywords.Strings(); strings.Join(got, ",") != "letters,grade-1" {
		t.Fatalf("unexpected keywords: %v", got)
	}
	if got := keywords.Text(); got != "letters, grade-1" {
		t.Fatalf("array text should be joined: %q", got)
	}

	typo := doc.Sections[1].Block.Statements
	if len(typo) != 3 {
		t.Fatalf("semicolons should separate statements, got %d", len(typo))
	}
	if got := typo[0].Assignment.Value.Text(); got != "Go Mono" {
		t.Fatalf("bare words should keep a single space, got %q", got)
	}
	if v := typo[1].Assignment.Value; v.Number == nil || *v.Number != "48px" {
		t.Fatalf("number with unit expected, got %+v", v)
	}
	if got := typo[2].Assignment.Key; got != "letter-spacing" {
		t.Fatalf("hyphenated keys should be one identifier, got %q", got)
	}

	guides := doc.Sections[2].Block.Statements
	if got := guides[0].Assignment.Value.Text(); got != "elementary-dotted" {
		t.Fatalf("trailing hash comment should be dropped, got %q", got)
	}
	if got := guides[1].Assignment.Value.Text(); got != "grade1-3" {
		t.Fatalf("unexpected spacing: %q", got)
	}
	if v := guides[2].Assignment.Value; v.Color == nil || *v.Color != "#FF6347" {
		t.Fatalf("color literal expected, got %+v", v)
	}
	if got := guides[3].Assignment.Value.Text(); got != "-2" {
		t.Fatalf("signed number should be rebuilt without spaces, got %q", got)
	}

	content := doc.Sections[3].Block.Statements
	if got := content[0].Assignment.Value.Text(); !strings.Contains(got, "${student.name|friend}") {
		t.Fatalf("placeholder should survive parsing, got %q", got)
	}
	if got := wordsToString(content[1].Assignment.Value.Bare.Words); got != "data . words" {
		t.Fatalf("unexpected bare value words: %s", got)
	}
	if got := content[1].Assignment.Value.Text(); got != "data.words" {
		t.Fatalf("unexpected bare value text: %s", got)
	}

	page := doc.Sections[4]
	if page.Kind != "page" || page.Label != "first" || len(page.Block.Statements) != 2 {
		t.Fatalf("unexpected page section: %+v", page)
	}
	if a := page.Block.Statements[1].Assignment; a.Pos.Line != 26 {
		t.Fatalf("assignment position should be recorded, got line %d", a.Pos.Line)
	}
}

func TestParseRejectsMalformedScripts(t *testing.T) {
	bad := map[string]string{
		"wrong root":    `doc X v1 { meta { title: "x" } }`,
		"missing brace": `worksheet X { meta { title: "x" }`,
		"missing colon": `worksheet X { meta { title "x" } }`,
	}
	for name, src := range bad {
		if _, err := dsl.ParseString(src); err == nil {
			t.Fatalf("%s: expected parse error", name)
		}
	}
}

func TestParseEmptyWorksheet(t *testing.T) {
	doc, err := dsl.Parse(strings.NewReader("worksheet Empty {\n}\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Version != "" || len(doc.Sections) != 0 {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func wordsToString(words []*dsl.Word) string {
	values := make([]string, 0, len(words))
	for _, w := range words {
		values = append(values, w.Text)
	}
	return strings.Join(values, " ")
}
