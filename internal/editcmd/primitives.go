package editcmd

import "github.com/librepcb/pkgeditor/internal/geo"

// The constructors below are thin, named entry points onto the generic
// CmdEditElement engine, one per primitive type in internal/geo. They
// exist so call sites and undo-menu descriptions read in terms of the
// domain object being edited ("Change circle properties") rather than
// the generic machinery doing the work.

// NewCmdCircleEdit wraps a batch of Circle setter calls as a single
// undo step.
func NewCmdCircleEdit(target *geo.Circle, description string, mutate func(*geo.Circle)) *CmdEditElement[geo.Circle, *geo.Circle] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdPolygonEdit wraps a batch of Polygon setter calls as a single
// undo step.
func NewCmdPolygonEdit(target *geo.Polygon, description string, mutate func(*geo.Polygon)) *CmdEditElement[geo.Polygon, *geo.Polygon] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdHoleEdit wraps a batch of Hole setter calls as a single undo
// step.
func NewCmdHoleEdit(target *geo.Hole, description string, mutate func(*geo.Hole)) *CmdEditElement[geo.Hole, *geo.Hole] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdStrokeTextEdit wraps a batch of StrokeText setter calls as a
// single undo step.
func NewCmdStrokeTextEdit(target *geo.StrokeText, description string, mutate func(*geo.StrokeText)) *CmdEditElement[geo.StrokeText, *geo.StrokeText] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdAttributeEdit wraps a batch of Attribute setter calls as a
// single undo step.
func NewCmdAttributeEdit(target *geo.Attribute, description string, mutate func(*geo.Attribute)) *CmdEditElement[geo.Attribute, *geo.Attribute] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdZoneEdit wraps a batch of Zone setter calls as a single undo
// step.
func NewCmdZoneEdit(target *geo.Zone, description string, mutate func(*geo.Zone)) *CmdEditElement[geo.Zone, *geo.Zone] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdNetLabelEdit wraps a batch of NetLabel setter calls as a single
// undo step.
func NewCmdNetLabelEdit(target *geo.NetLabel, description string, mutate func(*geo.NetLabel)) *CmdEditElement[geo.NetLabel, *geo.NetLabel] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdFootprintPadEdit wraps a batch of FootprintPad setter calls as a
// single undo step.
func NewCmdFootprintPadEdit(target *geo.FootprintPad, description string, mutate func(*geo.FootprintPad)) *CmdEditElement[geo.FootprintPad, *geo.FootprintPad] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdPackagePadEdit wraps a batch of PackagePad setter calls (in
// practice just a rename) as a single undo step.
func NewCmdPackagePadEdit(target *geo.PackagePad, description string, mutate func(*geo.PackagePad)) *CmdEditElement[geo.PackagePad, *geo.PackagePad] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdComponentSignalEdit wraps a batch of ComponentSignal setter
// calls as a single undo step.
func NewCmdComponentSignalEdit(target *geo.ComponentSignal, description string, mutate func(*geo.ComponentSignal)) *CmdEditElement[geo.ComponentSignal, *geo.ComponentSignal] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdTraceEdit wraps a batch of Trace setter calls as a single undo
// step.
func NewCmdTraceEdit(target *geo.Trace, description string, mutate func(*geo.Trace)) *CmdEditElement[geo.Trace, *geo.Trace] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdNetLineEdit wraps a batch of NetLine setter calls as a single
// undo step.
func NewCmdNetLineEdit(target *geo.NetLine, description string, mutate func(*geo.NetLine)) *CmdEditElement[geo.NetLine, *geo.NetLine] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdComponentSymbolVariantItemEdit wraps a batch of
// ComponentSymbolVariantItem setter calls as a single undo step.
func NewCmdComponentSymbolVariantItemEdit(target *geo.ComponentSymbolVariantItem, description string, mutate func(*geo.ComponentSymbolVariantItem)) *CmdEditElement[geo.ComponentSymbolVariantItem, *geo.ComponentSymbolVariantItem] {
	return NewCmdEditElement(target, description, mutate)
}

// NewCmdDevicePadSignalMapItemEdit wraps a batch of
// DevicePadSignalMapItem setter calls as a single undo step.
func NewCmdDevicePadSignalMapItemEdit(target *geo.DevicePadSignalMapItem, description string, mutate func(*geo.DevicePadSignalMapItem)) *CmdEditElement[geo.DevicePadSignalMapItem, *geo.DevicePadSignalMapItem] {
	return NewCmdEditElement(target, description, mutate)
}
