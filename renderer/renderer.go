package renderer

import "github.com/ByLCY/inktrace/layout"

// Renderer 将整份练字纸设置输出为最终文件，例如矢量 PDF。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(prefs layout.Preferences) ([]byte, error)
}
