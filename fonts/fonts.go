// Package fonts 提供内置字体（Go 字体家族），无需额外字体文件即可测量与绘制文字。
package fonts

import (
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// Default 是未知字体名时使用的字体。
const Default = "Go"

var builtin = map[string][]byte{
	"go":           goregular.TTF,
	"go-bold":      gobold.TTF,
	"go-italic":    goitalic.TTF,
	"go-medium":    gomedium.TTF,
	"go-mono":      gomono.TTF,
	"go-smallcaps": gosmallcaps.TTF,
}

var aliases = map[string]string{
	"":           "go",
	"default":    "go",
	"sans":       "go",
	"sans-serif": "go",
	"regular":    "go",
	"bold":       "go-bold",
	"italic":     "go-italic",
	"medium":     "go-medium",
	"mono":       "go-mono",
	"monospace":  "go-mono",
	"smallcaps":  "go-smallcaps",
}

// Normalize 将 "Go Mono"、"go_mono" 等写法统一为内置字体键。
func Normalize(family string) string {
	key := strings.ToLower(strings.TrimSpace(family))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	if alias, ok := aliases[key]; ok {
		return alias
	}
	return key
}

// Has 判断是否为内置字体。
func Has(family string) bool {
	_, ok := builtin[Normalize(family)]
	return ok
}

// Load 返回字体的 TTF 数据；未知字体回退到 Go Regular，第二个返回值表示是否命中。
func Load(family string) ([]byte, bool) {
	if data, ok := builtin[Normalize(family)]; ok {
		return data, true
	}
	return goregular.TTF, false
}

// Families 返回所有内置字体键，按字母排序。
func Families() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
