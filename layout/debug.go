package layout

import (
	"encoding/json"
	"os"
)

// DebugDump 汇总整份文档的设置与每页规划结果。
type DebugDump struct {
	Preferences Preferences `json:"preferences"`
	Pages       []PagePlan  `json:"pages"`
}

// PlanDocument 按导出时的分页规则规划所有页面，不做任何绘制。
func PlanDocument(m Measurer, prefs Preferences) *DebugDump {
	prefs = prefs.Normalize()
	w, h := prefs.Document.PageSize()
	total := prefs.TotalPages()
	dump := &DebugDump{Preferences: prefs, Pages: make([]PagePlan, 0, total)}
	for i := 0; i < total; i++ {
		dump.Pages = append(dump.Pages, PlanPage(m, w, h, prefs.ForPage(i), i+1, total))
	}
	return dump
}

// WriteDebugJSON 将规划结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(dump *DebugDump, path string) error {
	if dump == nil {
		return nil
	}
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
