package editorfsm

import (
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/units"
)

// Memory carries the "last used" parameters each drawing tool restores
// on its next Entry, so switching away from DrawCircle and back resumes
// with the same line width instead of resetting to a hardcoded default.
// It is owned by the orchestrator and injected into Machine, not held
// globally.
type Memory struct {
	Layer     units.GraphicsLayerName
	LineWidth units.UnsignedLength
	Filled    bool
	GrabArea  bool

	PadFunction geo.PadFunction
	PadShape    geo.PadShape
	PadWidth    units.PositiveLength
	PadHeight   units.PositiveLength
	PadRadius   units.UnsignedLimitedRatio

	TextHeight      units.PositiveLength
	TextStrokeWidth units.UnsignedLength

	HoleDiameter units.PositiveLength
}

// DefaultMemory returns sensible out-of-the-box tool parameters: 0.2mm
// line width on the top legend/documentation layer, 1.0mm pad/hole
// sizes, matching the library's conventional defaults.
func DefaultMemory() *Memory {
	mm := func(v int64) units.Length { return units.NewLength(v * 1000) }
	return &Memory{
		Layer:           units.LayerTopLegend,
		LineWidth:       units.MustUnsignedLength(mm(200)),
		GrabArea:        true,
		PadFunction:     geo.PadFunctionStandardPad,
		PadShape:        geo.PadShapeRoundedRect,
		PadWidth:        units.MustPositiveLength(mm(1000)),
		PadHeight:       units.MustPositiveLength(mm(1000)),
		PadRadius:       units.MustUnsignedLimitedRatio(units.RatioFromPercent(25)),
		TextHeight:      units.MustPositiveLength(mm(1000)),
		TextStrokeWidth: units.MustUnsignedLength(mm(200)),
		HoleDiameter:    units.MustPositiveLength(mm(1000)),
	}
}
