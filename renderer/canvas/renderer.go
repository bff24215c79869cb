package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/inktrace/fonts"
	"github.com/ByLCY/inktrace/layout"
	"github.com/ByLCY/inktrace/renderer"
)

const creator = "InkTrace"

// Renderer draws worksheets via github.com/tdewolff/canvas. It measures text for the
// layout engine, creates raster pages for export and writes vector PDFs.
type Renderer struct {
	// injected resources
	fontBlobs map[string][]byte // by normalized family name

	fontMu       sync.Mutex
	fontFamilies map[string]*canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	Fonts map[string]Resource // extra font families by name, take precedence over built-ins
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer creates a renderer that only knows the built-in fonts.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with injected font resources.
// Unreadable font files are skipped; the family then falls back to the default font.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		fontBlobs:    map[string][]byte{},
		fontFamilies: map[string]*canvas.FontFamily{},
	}
	for name, res := range opts.Fonts {
		if name == "" {
			continue
		}
		key := fonts.Normalize(name)
		if len(res.Bytes) > 0 {
			r.fontBlobs[key] = res.Bytes
			continue
		}
		if res.Path != "" {
			data, _ := os.ReadFile(res.Path)
			if len(data) > 0 {
				r.fontBlobs[key] = data
			}
		}
	}
	return r
}

// MeasureText 实现 layout.Measurer，返回逻辑像素宽度。
func (r *Renderer) MeasureText(s string, font layout.FontSpec) float64 {
	if s == "" || font.Size <= 0 {
		return 0
	}
	face, err := r.fontFace(font.Family, font.Size, color.Black)
	if err != nil {
		return 0
	}
	return face.TextWidth(s)
}

// Render renders every page of the worksheet into a vector PDF.
func (r *Renderer) Render(prefs layout.Preferences) ([]byte, error) {
	prefs = prefs.Normalize()
	total := prefs.TotalPages()
	if total == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}
	w, h := prefs.Document.PageSize()
	scale := layout.PxToMM(1)
	wMM, hMM := w*scale, h*scale

	var buf bytes.Buffer
	writer := pdf.New(&buf, wMM, hMM, nil)
	writer.SetInfo(prefs.Document.Title, "", "", prefs.Document.Author, creator)
	for i := 0; i < total; i++ {
		if i > 0 {
			writer.NewPage(wMM, hMM)
		}
		c := canvas.New(wMM, hMM)
		ctx := canvas.NewContext(c)
		layout.DrawPage(r.NewSurface(ctx, h, scale), w, h, prefs.ForPage(i), i+1, total)
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// Page is one raster page backed by its own canvas.
type Page struct {
	*Surface
	c *canvas.Canvas
}

// NewPage creates a drawing surface of width×height logical pixels, oversampled by scale.
func (r *Renderer) NewPage(width, height, scale float64) (*Page, error) {
	if width <= 0 || height <= 0 || scale <= 0 {
		return nil, fmt.Errorf("无效的页面尺寸 %gx%g@%g", width, height, scale)
	}
	c := canvas.New(width*scale, height*scale)
	return &Page{Surface: r.NewSurface(canvas.NewContext(c), height, scale), c: c}, nil
}

// Image rasterizes the page; one canvas unit maps to one device pixel.
func (p *Page) Image() image.Image {
	return rasterizer.Draw(p.c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
}

func (r *Renderer) fontFace(family string, sizePx float64, col color.Color) (*canvas.FontFace, error) {
	fam, err := r.ensureFontFamily(family)
	if err != nil {
		return nil, err
	}
	// 1 个画布单位对应 1 px，字号按 mm→pt 换算即可得到以 px 计的字形
	return fam.Face(sizePx*layout.MmToPt, col, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(name string) (*canvas.FontFamily, error) {
	key := fonts.Normalize(name)
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if fam, ok := r.fontFamilies[key]; ok {
		return fam, nil
	}
	data, ok := r.fontBlobs[key]
	if !ok {
		// 未知字体退回默认字体，保证总能测量
		data, _ = fonts.Load(key)
	}
	fam := canvas.NewFontFamily(key)
	if err := fam.LoadFont(data, 0, canvas.FontRegular); err != nil {
		fallback, _ := fonts.Load(fonts.Default)
		fam = canvas.NewFontFamily(key)
		if fbErr := fam.LoadFont(fallback, 0, canvas.FontRegular); fbErr != nil {
			return nil, fmt.Errorf("加载字体 %s 失败: %w", name, err)
		}
	}
	r.fontFamilies[key] = fam
	return fam, nil
}

func colorFromLayout(c layout.Color) color.Color {
	if c.Transparent() {
		return color.RGBA{}
	}
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, c.A)
}
