package layout

// Measurer 负责测量文本宽度（px）。布局规划只依赖它，方便用桩实现做测试。
type Measurer interface {
	MeasureText(s string, font FontSpec) float64
}

// Surface 是绘制一页练字纸所需的最小绘图能力。
// 每次调用都携带完整样式，实现不得依赖上一次调用留下的状态。
// 颜色 A 为 0 表示不填充，Stroke.Width 为 0 表示不描边。
type Surface interface {
	Measurer
	FillRect(x, y, w, h float64, fill Color)
	StrokeLine(x1, y1, x2, y2 float64, stroke Stroke)
	FillCircle(cx, cy, r float64, fill Color)
	// DrawText 以 (x, baseline) 为起点绘制一段文字。
	DrawText(s string, x, baseline float64, style TextStyle)
}
