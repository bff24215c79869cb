package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/inktrace/dsl"
	"github.com/ByLCY/inktrace/export"
	"github.com/ByLCY/inktrace/fonts"
	"github.com/ByLCY/inktrace/internal/config"
	ilog "github.com/ByLCY/inktrace/internal/log"
	"github.com/ByLCY/inktrace/layout"
	"github.com/ByLCY/inktrace/renderer"
	canvasrenderer "github.com/ByLCY/inktrace/renderer/canvas"
)

func main() {
	input := flag.String("in", "examples/alphabet.ink", "练字纸脚本路径")
	output := flag.String("out", "", "输出路径；为空时按输入文件名生成")
	format := flag.String("format", "", "输出格式 pdf|vector|png，默认取配置")
	quality := flag.String("quality", "", "打印质量 standard|high|ultra，覆盖脚本设置")
	dataJSON := flag.String("data", "", "绑定到脚本的 JSON 数据，@path 表示从文件读取")
	debug := flag.String("debug", "", "页面规划调试 JSON 输出路径")
	configPath := flag.String("config", "", "YAML 配置文件路径")
	saveConfig := flag.String("save-config", "", "将生效的配置写到该路径后退出")
	flag.Parse()

	cfg, cfgErr := config.LoadFile(*configPath)
	logger := ilog.Init(ilog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	if cfgErr != nil {
		logger.Warn("配置文件无效，使用默认配置", "err", cfgErr)
	}
	for _, key := range envKeys {
		if env, ok := config.EnvOverrideFor(key); ok {
			logger.Info("环境变量覆盖配置", "key", key, "env", env)
		}
	}
	if *saveConfig != "" {
		if err := config.Save(*saveConfig, cfg); err != nil {
			logger.Error("保存配置失败", "err", err)
			os.Exit(1)
		}
		fmt.Printf("已保存配置：%s\n", *saveConfig)
		return
	}

	opts := runOptions{
		Input:   *input,
		Output:  *output,
		Format:  firstNonEmpty(*format, cfg.Export.Format),
		Quality: *quality,
		Debug:   *debug,
		Config:  cfg,
	}
	data, err := loadData(*dataJSON)
	if err != nil {
		logger.Error("解析 data 失败", "err", err)
		os.Exit(1)
	}
	opts.Data = data

	fontRes := map[string]canvasrenderer.Resource{}
	for name, path := range cfg.Fonts.Files {
		fontRes[name] = canvasrenderer.Resource{Path: path}
	}
	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{Fonts: fontRes})

	written, err := run(opts, r)
	if err != nil {
		logger.Error("生成练字纸失败", "err", err)
		os.Exit(1)
	}
	for _, path := range written {
		fmt.Printf("已生成：%s\n", path)
	}
}

var envKeys = []string{"logging.level", "logging.format", "logging.source", "logging.file", "export.format", "export.quality"}

type runOptions struct {
	Input   string
	Output  string
	Format  string
	Quality string
	Debug   string
	Data    any
	Config  config.AppConfig
}

// canvasBackend 是 run 需要的渲染能力：测量、矢量输出与光栅页面。
type canvasBackend interface {
	renderer.Renderer
	layout.Measurer
	Rasterizer() export.Rasterizer
}

// run 串联解析、设置、规划与导出，返回写出的文件路径。
func run(opts runOptions, r canvasBackend) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer 不能为空")
	}
	log := ilog.WithOperation(ilog.WithComponent("cli"), "run")

	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("无法打开脚本 %s: %w", opts.Input, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析脚本失败: %w", err)
	}

	// 优先级：内置默认 < 配置文件 < 脚本 < 命令行
	base := layout.Defaults()
	if q := opts.Config.Export.Quality; q != "" {
		base.Document.Quality = layout.PrintQuality(q)
	}
	prefs, err := layout.ApplyScript(base, doc, opts.Data)
	if err != nil {
		return nil, fmt.Errorf("应用脚本设置失败: %w", err)
	}
	if opts.Quality != "" {
		prefs.Document.Quality = layout.PrintQuality(strings.ToLower(opts.Quality))
	}
	if family := prefs.Typography.FontFamily; !fontKnown(family, opts.Config.Fonts.Files) {
		log.Warn("未知字体，使用默认字体", "font", family, "default", fonts.Default)
	}
	log.Debug("preferences resolved", "pages", prefs.TotalPages(), "paper", string(prefs.Document.Paper), "quality", string(prefs.Document.Quality))

	if opts.Debug != "" {
		if err := writeDebug(layout.PlanDocument(r, prefs), opts.Debug); err != nil {
			return nil, err
		}
	}

	format := strings.ToLower(firstNonEmpty(opts.Format, "pdf"))
	out := opts.Output
	if out == "" {
		out = defaultOutput(opts.Input, opts.Config.Export.OutDir, format)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}

	exp := &export.Exporter{Rasterizer: r.Rasterizer(), Logger: ilog.WithComponent("export")}
	switch format {
	case "pdf":
		data, err := exp.PDF(prefs)
		if err != nil {
			return nil, fmt.Errorf("导出 PDF 失败: %w", err)
		}
		return writeFile(out, data)
	case "vector":
		data, err := r.Render(prefs)
		if err != nil {
			return nil, fmt.Errorf("渲染矢量 PDF 失败: %w", err)
		}
		return writeFile(out, data)
	case "png":
		pages, err := exp.PNG(prefs)
		if err != nil {
			return nil, fmt.Errorf("导出 PNG 失败: %w", err)
		}
		return writePNGs(out, pages)
	default:
		return nil, fmt.Errorf("不支持的输出格式 %q", format)
	}
}

func writeFile(path string, data []byte) ([]string, error) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("写入文件 %s 失败: %w", path, err)
	}
	return []string{path}, nil
}

// writePNGs 单页直接写到 path，多页写为 name-1.png、name-2.png ...
func writePNGs(path string, pages [][]byte) ([]string, error) {
	if len(pages) == 1 {
		return writeFile(path, pages[0])
	}
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	written := make([]string, 0, len(pages))
	for i, data := range pages {
		p, err := writeFile(fmt.Sprintf("%s-%d.png", stem, i+1), data)
		if err != nil {
			return written, err
		}
		written = append(written, p...)
	}
	return written, nil
}

func defaultOutput(input, outDir, format string) string {
	if outDir == "" {
		outDir = "output"
	}
	ext := ".pdf"
	if format == "png" {
		ext = ".png"
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, stem+ext)
}

func loadData(arg string) (any, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}
	raw := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		b, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("读取数据文件失败: %w", err)
		}
		raw = b
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}
	return data, nil
}

func writeDebug(dump *layout.DebugDump, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(dump, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// fontKnown 判断字体是内置字体或在配置中提供了文件。
func fontKnown(family string, files map[string]string) bool {
	if fonts.Has(family) {
		return true
	}
	key := fonts.Normalize(family)
	for name := range files {
		if fonts.Normalize(name) == key {
			return true
		}
	}
	return false
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
