package layout

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		back := pt * PtToMm * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
}

// TestMMPxRoundTrip 验证 mm↔px 往返。
func TestMMPxRoundTrip(t *testing.T) {
	for _, mm := range []float64{0.01, 1, 6.4, 8.7, 12.7, 19, 25.4, 297, 1e4} {
		if back := PxToMM(MMToPx(mm)); math.Abs(back-mm) > 1e-9*math.Max(1, mm) {
			t.Fatalf("mm→px→mm 往返误差过大: in=%g back=%g", mm, back)
		}
	}
	if got := MMToPx(25.4); math.Abs(got-96) > 1e-9 {
		t.Fatalf("25.4mm 应为 96px，实际 %g", got)
	}
}

// TestLengthToConversions 覆盖 Length 在常见单位上的转换。
func TestLengthToConversions(t *testing.T) {
	cases := []struct {
		in     Length
		wantMM float64
		wantPx float64
	}{
		{Length{Value: 1, Unit: UnitIN}, 25.4, 96},
		{Length{Value: 2.54, Unit: UnitCM}, 25.4, 96},
		{Length{Value: 12, Unit: UnitPT}, 12 * PtToMm, 16},
		{Length{Value: 48, Unit: UnitPX}, PxToMM(48), 48},
		{Length{Value: 48}, PxToMM(48), 48},
	}
	for _, c := range cases {
		if got := c.in.ToMM(); math.Abs(got-c.wantMM) > 1e-6 {
			t.Fatalf("%+v 转 mm 期望 %g，实际 %g", c.in, c.wantMM, got)
		}
		if got := c.in.ToPx(); math.Abs(got-c.wantPx) > 1e-6 {
			t.Fatalf("%+v 转 px 期望 %g，实际 %g", c.in, c.wantPx, got)
		}
	}
}

func TestParseLength(t *testing.T) {
	cases := map[string]Length{
		"12.7mm": {Value: 12.7, Unit: UnitMM},
		" 48PX ": {Value: 48, Unit: UnitPX},
		"0.5in":  {Value: 0.5, Unit: UnitIN},
		"1cm":    {Value: 1, Unit: UnitCM},
		"10pt":   {Value: 10, Unit: UnitPT},
		"3":      {Value: 3, Unit: UnitNone},
	}
	for in, want := range cases {
		got, ok := ParseLength(in)
		if !ok || got != want {
			t.Fatalf("ParseLength(%q) = %+v, %v; want %+v", in, got, ok, want)
		}
		if back, ok := ParseLength(got.String()); !ok || back != got {
			t.Fatalf("ParseLength(%q) = %+v; want %+v", got.String(), back, got)
		}
	}
	for _, bad := range []string{"", "mm", "abc", "12 apples"} {
		if _, ok := ParseLength(bad); ok {
			t.Fatalf("ParseLength(%q) 应失败", bad)
		}
	}
}

func TestLineHeightPx(t *testing.T) {
	g := Defaults().Guidelines

	g.Spacing = SpacingKindergarten
	if got := LineHeightPx(g, 48); math.Abs(got-71.81) > 0.01 {
		t.Fatalf("kindergarten 行距期望约 71.81px，实际 %g", got)
	}

	g.Spacing = SpacingGrade1To3
	preset := LineHeightPx(g, 48)
	g.Spacing = SpacingCustom
	g.CustomSpacingMM = 12.7
	if custom := LineHeightPx(g, 48); custom != preset {
		t.Fatalf("custom 12.7mm (%g) 应与 grade1-3 (%g) 相同", custom, preset)
	}

	// 行距与字号无关
	g.Spacing = SpacingNarrowRuled
	if LineHeightPx(g, 12) != LineHeightPx(g, 96) {
		t.Fatalf("预设行距不应随字号变化")
	}

	g.Spacing = SpacingPreset("huge")
	if got := LineHeightPx(g, 40); got != 72 {
		t.Fatalf("未知预设应按字号×1.8，实际 %g", got)
	}
}

func TestPageSizeAndQuality(t *testing.T) {
	d := DocumentSettings{Paper: PaperLetter}
	if w, h := d.PageSize(); w != 816 || h != 1056 {
		t.Fatalf("letter = %gx%g", w, h)
	}
	d.Landscape = true
	if w, h := d.PageSize(); w != 1056 || h != 816 {
		t.Fatalf("横向 letter = %gx%g", w, h)
	}
	if w, h := PaperSize("b5").Dimensions(); w != 794 || h != 1122 {
		t.Fatalf("未知纸张应回退 A4，得到 %gx%g", w, h)
	}

	for q, dpi := range map[PrintQuality]float64{QualityStandard: 150, QualityHigh: 300, QualityUltra: 600, "draft": 300} {
		if got := q.DPI(); got != dpi {
			t.Fatalf("%s DPI = %g, want %g", q, got, dpi)
		}
	}
	if got := QualityHigh.Scale(); math.Abs(got-3.125) > 1e-12 {
		t.Fatalf("high 放大倍数应为 3.125，实际 %g", got)
	}
}
