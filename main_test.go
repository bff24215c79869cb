package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ByLCY/inktrace/internal/config"
	canvasrenderer "github.com/ByLCY/inktrace/renderer/canvas"
)

const testScript = `worksheet Test v1 {
  content { type: letters; letters: "${letters|Aa}" }
  document { paper: a5; pages: 2 }
}
`

func writeScript(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "test.ink")
	if err := os.WriteFile(path, []byte(testScript), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

func TestRunWritesPDF(t *testing.T) {
	dir, in := writeScript(t)
	out := filepath.Join(dir, "out", "sheet.pdf")
	debug := filepath.Join(dir, "debug", "plan.json")

	written, err := run(runOptions{
		Input:   in,
		Output:  out,
		Format:  "pdf",
		Quality: "standard",
		Debug:   debug,
		Data:    map[string]any{"letters": "Bb Cc"},
		Config:  config.Defaults(),
	}, canvasrenderer.NewRenderer())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(written) != 1 || written[0] != out {
		t.Fatalf("written = %v", written)
	}
	data, err := os.ReadFile(out)
	if err != nil || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("输出不是 PDF: %v", err)
	}
	plan, err := os.ReadFile(debug)
	if err != nil || !bytes.Contains(plan, []byte(`"Bb Cc"`)) {
		t.Fatalf("调试 JSON 应包含绑定后的内容: %v", err)
	}
}

func TestRunWritesPNGPerPage(t *testing.T) {
	dir, in := writeScript(t)
	cfg := config.Defaults()
	cfg.Export.Quality = "standard"
	cfg.Export.OutDir = filepath.Join(dir, "png")

	written, err := run(runOptions{Input: in, Format: "png", Config: cfg}, canvasrenderer.NewRenderer())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{filepath.Join(dir, "png", "test-1.png"), filepath.Join(dir, "png", "test-2.png")}
	if len(written) != 2 || written[0] != want[0] || written[1] != want[1] {
		t.Fatalf("written = %v, want %v", written, want)
	}
}

func TestRunErrors(t *testing.T) {
	dir, in := writeScript(t)
	r := canvasrenderer.NewRenderer()
	if _, err := run(runOptions{Input: filepath.Join(dir, "missing.ink")}, r); err == nil {
		t.Fatalf("缺少脚本应报错")
	}
	if _, err := run(runOptions{Input: in, Format: "tiff", Output: filepath.Join(dir, "x.tiff")}, r); err == nil {
		t.Fatalf("不支持的格式应报错")
	}
	if _, err := run(runOptions{Input: in}, nil); err == nil {
		t.Fatalf("renderer 为空应报错")
	}
}

func TestLoadData(t *testing.T) {
	if v, err := loadData(""); err != nil || v != nil {
		t.Fatalf("空参数应返回 nil")
	}
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := loadData("@" + path)
	if err != nil {
		t.Fatalf("loadData: %v", err)
	}
	if m, ok := v.(map[string]any); !ok || m["a"] != float64(1) {
		t.Fatalf("数据不符: %v", v)
	}
	if _, err := loadData("{broken"); err == nil {
		t.Fatalf("非法 JSON 应报错")
	}
}

func TestDefaultOutput(t *testing.T) {
	if got := defaultOutput("a/b/sheet.ink", "", "pdf"); got != filepath.Join("output", "sheet.pdf") {
		t.Fatalf("got %q", got)
	}
	if got := defaultOutput("sheet.ink", "out", "png"); got != filepath.Join("out", "sheet.png") {
		t.Fatalf("got %q", got)
	}
}

func TestFontKnown(t *testing.T) {
	files := map[string]string{"Comic Hand": "/fonts/comic.ttf"}
	for family, want := range map[string]bool{
		"Go Mono":    true,
		"sans":       true,
		"comic_hand": true,
		"Helvetica":  false,
	} {
		if got := fontKnown(family, files); got != want {
			t.Fatalf("fontKnown(%q) = %v; want %v", family, got, want)
		}
	}
}
