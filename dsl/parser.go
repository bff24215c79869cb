package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:px|pt|mm|cm|in)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][(),.=+\-*/%<>!?;:]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	kindNames        = kindsByType(dslLexer.Symbols())
	newlineTokenType = mustTokenType("Newline")
	lbraceTokenType  = mustTokenType("LBrace")
	rbraceTokenType  = mustTokenType("RBrace")
	symbolTokenType  = mustTokenType("Symbol")
	stringTokenType  = mustTokenType("String")

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node of a worksheet script.
//
//	worksheet Alphabet v1 {
//	  typography { size: 48 }
//	  page first { type: letters; letters: "Aa Bb" }
//	}
type Document struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Name     string         `parser:"Newline* 'worksheet' @Ident"`
	Version  string         `parser:"@Ident?"`
	Sections []*Section     `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Section is a named block of settings, e.g. `guidelines { ... }` or `page intro { ... }`.
type Section struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Kind  string         `parser:"@Ident"`
	Label string         `parser:"@Ident?"`
	Block *Block         `parser:"@@"`
}

// Block is a delimited list of statements.
type Block struct {
	Statements []*Statement `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Statement inside a block. Only assignments are allowed for now.
type Statement struct {
	Assignment *Assignment `parser:"@@"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' Newline* @@"`
}

// Value represents generic property values.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Array  *ArrayValue    `parser:"| @@"`
	Bare   *BareValue     `parser:"| @@"`
}

// Text returns the value as plain text. Arrays are joined with ", ".
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	switch {
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Color != nil:
		return *v.Color
	case v.Array != nil:
		return strings.Join(v.Strings(), ", ")
	case v.Bare != nil:
		return v.Bare.String()
	default:
		return ""
	}
}

// Strings returns array items as text; scalar values become a one-element slice.
func (v *Value) Strings() []string {
	if v == nil {
		return nil
	}
	if v.Array == nil {
		if s := v.Text(); s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(v.Array.Values))
	for _, item := range v.Array.Values {
		if s := item.Text(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ArrayValue captures `[ ... ]` expressions.
type ArrayValue struct {
	Values []*Value `parser:"'[' Newline* ( @@ ( (',' | ';' | Newline+) Newline* @@ )* )? Newline* ']'"`
}

// BareValue is an unquoted value such as `grade1-3`, `true` or `Go Mono`. It runs until the
// end of the line, `;`, `,` or a brace outside of brackets.
type BareValue struct {
	Words []*Word
}

// Parse implements participle.Parseable.
func (b *BareValue) Parse(lex *lexer.PeekingLexer) error {
	var words []*Word
	depth := 0 // ( 与 [ 的嵌套层数
	for {
		tok := lex.Peek()
		if endsBareValue(tok, depth) {
			break
		}
		w, err := toWord(*lex.Next())
		if err != nil {
			return err
		}
		switch w.Raw {
		case "(", "[":
			depth++
		case ")", "]":
			if depth > 0 {
				depth--
			}
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return participle.NextMatch
	}
	b.Words = words
	return nil
}

// String rebuilds the source text, keeping a single space where words were separated.
func (b *BareValue) String() string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	end := -1
	for _, w := range b.Words {
		if end >= 0 && w.Pos.Offset > end {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Text)
		end = w.Pos.Offset + len(w.Raw)
	}
	return sb.String()
}

// Word is one token of a bare value. Text is unquoted for strings.
type Word struct {
	Kind string
	Text string
	Raw  string
	Pos  lexer.Position
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("字符串缺少内容")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a worksheet script from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses a worksheet script from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

func endsBareValue(tok *lexer.Token, depth int) bool {
	if tok == nil || tok.EOF() {
		return true
	}
	switch tok.Type {
	case newlineTokenType, rbraceTokenType, lbraceTokenType:
		return depth == 0
	case symbolTokenType:
		switch tok.Value {
		case ";", ",", "]":
			return depth == 0
		}
	}
	return false
}

func toWord(tok lexer.Token) (*Word, error) {
	kind, ok := kindNames[tok.Type]
	if !ok {
		kind = fmt.Sprintf("#%d", tok.Type)
	}
	text := tok.Value
	if tok.Type == stringTokenType {
		unquoted, err := strconv.Unquote(tok.Value)
		if err != nil {
			return nil, err
		}
		text = unquoted
	}
	return &Word{Kind: kind, Text: text, Raw: tok.Value, Pos: tok.Pos}, nil
}

func kindsByType(symbols map[string]lexer.TokenType) map[lexer.TokenType]string {
	out := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		out[tt] = name
	}
	return out
}

func mustTokenType(name string) lexer.TokenType {
	tt, ok := dslLexer.Symbols()[name]
	if !ok {
		panic(fmt.Sprintf("lexer 未定义 %s", name))
	}
	return tt
}
