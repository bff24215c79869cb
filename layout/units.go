package layout

import (
	"strconv"
	"strings"
)

// This file defines unit conversion, spacing presets, paper sizes and print quality tiers.
// All layout coordinates are logical pixels at 96 DPI.

// Unit represents the original unit of a length value as written in a worksheet script.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers, treated as px
	UnitPX
	UnitMM
	UnitCM
	UnitIN
	UnitPT
)

// Conversion constants.
const (
	CSSDPI  = 96.0
	MMPerIn = 25.4
	PtToPx  = CSSDPI / 72.0
	PxToPt  = 72.0 / CSSDPI
	PtToMm  = 0.352777
	MmToPt  = 1.0 / PtToMm
)

// MMToPx converts millimeters to logical pixels.
func MMToPx(mm float64) float64 { return mm * CSSDPI / MMPerIn }

// PxToMM converts logical pixels to millimeters.
func PxToMM(px float64) float64 { return px * MMPerIn / CSSDPI }

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPX:
		return "px"
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// String formats the length the way ParseLength accepts it, e.g. "12.7mm".
func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + UnitToString(l.Unit)
}

// ToPx converts the length to logical pixels. Unit-less values are already px.
func (l Length) ToPx() float64 {
	switch l.Unit {
	case UnitMM:
		return MMToPx(l.Value)
	case UnitCM:
		return MMToPx(l.Value * 10)
	case UnitIN:
		return l.Value * CSSDPI
	case UnitPT:
		return l.Value * PtToPx
	default:
		return l.Value
	}
}

// ToMM converts the length to millimeters. Unit-less values are taken as px.
func (l Length) ToMM() float64 {
	switch l.Unit {
	case UnitMM:
		return l.Value
	case UnitCM:
		return l.Value * 10
	case UnitIN:
		return l.Value * MMPerIn
	case UnitPT:
		return l.Value * PtToMm
	default:
		return PxToMM(l.Value)
	}
}

// ParseLength parses a length string such as "12.7mm" or "48", preserving its unit.
func ParseLength(value string) (Length, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, false
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"px", UnitPX}, {"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Value: f, Unit: unit}, true
}

// SpacingPreset names a baseline-to-baseline distance standard.
type SpacingPreset string

const (
	SpacingKindergarten SpacingPreset = "kindergarten"
	SpacingGrade1To3    SpacingPreset = "grade1-3"
	SpacingGrade4To6    SpacingPreset = "grade4-6"
	SpacingWideRuled    SpacingPreset = "wide-ruled"
	SpacingNarrowRuled  SpacingPreset = "narrow-ruled"
	SpacingCustom       SpacingPreset = "custom"
)

// fallbackLineHeightFactor is used when the preset id is unknown.
const fallbackLineHeightFactor = 1.8

// MM returns the preset distance in millimeters, false for custom or unknown ids.
func (p SpacingPreset) MM() (float64, bool) {
	switch p {
	case SpacingKindergarten:
		return 19, true
	case SpacingGrade1To3:
		return 12.7, true
	case SpacingGrade4To6, SpacingWideRuled:
		return 8.7, true
	case SpacingNarrowRuled:
		return 6.4, true
	default:
		return 0, false
	}
}

// LineHeightPx resolves the guideline spacing into pixels. The result does not depend on
// the font size unless the preset id is unknown.
func LineHeightPx(g GuidelineSettings, fontSize float64) float64 {
	if g.Spacing == SpacingCustom {
		return MMToPx(g.CustomSpacingMM)
	}
	if mm, ok := g.Spacing.MM(); ok {
		return MMToPx(mm)
	}
	return fontSize * fallbackLineHeightFactor
}

// PaperSize names a sheet format.
type PaperSize string

const (
	PaperA4     PaperSize = "a4"
	PaperLetter PaperSize = "letter"
	PaperLegal  PaperSize = "legal"
	PaperA5     PaperSize = "a5"
)

// Dimensions returns the portrait size in px. Unknown sizes resolve to A4.
func (p PaperSize) Dimensions() (w, h float64) {
	switch p {
	case PaperLetter:
		return 816, 1056
	case PaperLegal:
		return 816, 1344
	case PaperA5:
		return 559, 794
	default:
		return 794, 1122
	}
}

// PageSize returns the page size in px for the document settings, honoring orientation.
func (d DocumentSettings) PageSize() (w, h float64) {
	w, h = d.Paper.Dimensions()
	if d.Landscape {
		return h, w
	}
	return w, h
}

// PrintQuality names an export resolution tier.
type PrintQuality string

const (
	QualityStandard PrintQuality = "standard"
	QualityHigh     PrintQuality = "high"
	QualityUltra    PrintQuality = "ultra"
)

// DPI returns the target print resolution. Unknown tiers resolve to high.
func (q PrintQuality) DPI() float64 {
	switch q {
	case QualityStandard:
		return 150
	case QualityUltra:
		return 600
	default:
		return 300
	}
}

// Scale returns the oversampling factor relative to the 96 DPI layout.
func (q PrintQuality) Scale() float64 { return q.DPI() / CSSDPI }
