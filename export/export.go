// Package export 将练字纸按页光栅化，输出 PNG 或内嵌整页图片的 PDF。
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"

	"github.com/jung-kurt/gofpdf"

	"github.com/ByLCY/inktrace/layout"
)

const creator = "InkTrace"

// PageSurface 是一张可绘制、可导出为位图的页面。
type PageSurface interface {
	layout.Surface
	Image() image.Image
}

// Rasterizer 按逻辑像素尺寸和放大倍数创建页面。
type Rasterizer interface {
	NewPage(width, height, scale float64) (PageSurface, error)
}

// RasterizerFunc adapts a function to Rasterizer.
type RasterizerFunc func(width, height, scale float64) (PageSurface, error)

func (f RasterizerFunc) NewPage(width, height, scale float64) (PageSurface, error) {
	return f(width, height, scale)
}

// Exporter 逐页绘制并编码。Logger 为空时使用 slog.Default()。
type Exporter struct {
	Rasterizer Rasterizer
	Logger     *slog.Logger
}

// Page 是单页的导出结果。
type Page struct {
	Number int
	Plan   layout.PagePlan
	PNG    []byte
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// Pages 按打印质量绘制全部页面并编码为 PNG。
// 任一页创建绘图面失败时整体失败，不会输出空白页。
func (e *Exporter) Pages(prefs layout.Preferences) ([]Page, error) {
	if e == nil || e.Rasterizer == nil {
		return nil, fmt.Errorf("未配置光栅化器")
	}
	prefs = prefs.Normalize()
	total := prefs.TotalPages()
	if total == 0 {
		return nil, fmt.Errorf("缺少可导出的页面")
	}
	w, h := prefs.Document.PageSize()
	scale := prefs.Document.Quality.Scale()
	log := e.logger().With("op", "export.pages")

	pages := make([]Page, 0, total)
	for i := 0; i < total; i++ {
		surface, err := e.Rasterizer.NewPage(w, h, scale)
		if err != nil {
			return nil, fmt.Errorf("第 %d 页创建绘图面失败: %w", i+1, err)
		}
		plan := layout.DrawPage(surface, w, h, prefs.ForPage(i), i+1, total)
		var buf bytes.Buffer
		if err := png.Encode(&buf, surface.Image()); err != nil {
			return nil, fmt.Errorf("第 %d 页编码 PNG 失败: %w", i+1, err)
		}
		log.Debug("page rendered", "page", i+1, "total", total, "line_sets", len(plan.Sets), "bytes", buf.Len())
		pages = append(pages, Page{Number: i + 1, Plan: plan, PNG: buf.Bytes()})
	}
	return pages, nil
}

// PNG 返回每页一张 PNG。
func (e *Exporter) PNG(prefs layout.Preferences) ([][]byte, error) {
	pages, err := e.Pages(prefs)
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(pages))
	for i, p := range pages {
		out[i] = p.PNG
	}
	return out, nil
}

// PDF 将每页位图铺满一页，页面尺寸按 96 DPI 换算为 pt。
func (e *Exporter) PDF(prefs layout.Preferences) ([]byte, error) {
	prefs = prefs.Normalize()
	pages, err := e.Pages(prefs)
	if err != nil {
		return nil, err
	}
	w, h := prefs.Document.PageSize()
	size := gofpdf.SizeType{Wd: w * layout.PxToPt, Ht: h * layout.PxToPt}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: size})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	if prefs.Document.Title != "" {
		pdf.SetTitle(prefs.Document.Title, true)
	}
	if prefs.Document.Author != "" {
		pdf.SetAuthor(prefs.Document.Author, true)
	}
	pdf.SetCreator(creator, false)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	for _, p := range pages {
		pdf.AddPageFormat("P", size)
		name := fmt.Sprintf("page-%d", p.Number)
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(p.PNG))
		pdf.ImageOptions(name, 0, 0, size.Wd, size.Ht, false, opts, 0, "")
		if pdf.Err() {
			return nil, fmt.Errorf("第 %d 页写入 PDF 失败: %w", p.Number, pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	e.logger().Info("pdf exported", "pages", len(pages), "bytes", buf.Len(), "quality", string(prefs.Document.Quality))
	return buf.Bytes(), nil
}
