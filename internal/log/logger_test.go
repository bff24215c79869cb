package log

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "warn")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvSource, "yes")
	t.Setenv(EnvFile, "")

	opts := FromEnv()
	if opts.Level != "warn" || opts.Format != "json" || !opts.AddSource || opts.File != "" {
		t.Fatalf("FromEnv 结果不符: %+v", opts)
	}
	if v := getenv("INKTRACE_SURELY_UNSET", "fallback"); v != "fallback" {
		t.Fatalf("getenv 未回退: %q", v)
	}
}

func TestInitJSONConsoleCarriesContext(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Console: &buf})

	WithOperation(WithComponent("export"), "pdf").Debug("page rendered", slog.Int("page", 2))

	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("解析 JSON 日志失败: %v (%q)", err, buf.String())
	}
	for key, want := range map[string]any{"app": App, "component": "export", "op": "pdf", "msg": "page rendered"} {
		if m[key] != want {
			t.Fatalf("%s = %v, want %v", key, m[key], want)
		}
	}
	if m["page"] != float64(2) {
		t.Fatalf("page = %v", m["page"])
	}
}

func TestInitWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inktrace.log")
	var console bytes.Buffer
	Init(Options{Level: "info", File: path, Console: &console})

	L().Info("exported", slog.String("out", "a.pdf"))
	L().Debug("filtered")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) != 1 {
		t.Fatalf("期望 1 行文件日志，得到 %d: %q", len(lines), data)
	}
	if !strings.Contains(lines[0], `"out":"a.pdf"`) {
		t.Fatalf("文件日志缺少字段: %s", lines[0])
	}
	if !strings.Contains(console.String(), "INF exported") {
		t.Fatalf("控制台日志缺失: %q", console.String())
	}
}

func TestLineHandlerFormatting(t *testing.T) {
	var buf bytes.Buffer
	var h slog.Handler = &lineHandler{level: slog.LevelWarn, w: &buf}

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("warn 级别下 info 不应输出")
	}
	h = h.WithAttrs([]slog.Attr{slog.String("k", "v")}).WithGroup("page")

	r := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	r.AddAttrs(slog.Int("n", 2), slog.Float64("scale", 3.125), slog.Bool("ok", true), slog.String("text", "a b"))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("handle: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ERR boom", " k=v", " page.n=2", " page.scale=3.125", " page.ok=true", ` page.text="a b"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("输出缺少 %q: %q", want, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
