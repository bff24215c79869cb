package canvasrenderer

import "github.com/ByLCY/inktrace/export"

var _ export.PageSurface = (*Page)(nil)

// Rasterizer 返回供 export 使用的页面工厂。
func (r *Renderer) Rasterizer() export.Rasterizer {
	return export.RasterizerFunc(func(width, height, scale float64) (export.PageSurface, error) {
		p, err := r.NewPage(width, height, scale)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}
