package library

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/sexpr"
	"github.com/librepcb/pkgeditor/internal/units"
)

func newRoundTripPackage(t *testing.T) *Package {
	t.Helper()
	pkg := NewPackage(ident.MustCircuitIdentifier("R_0603"), ident.MustVersion("0.2"))
	pkg.Metadata.Description = "0603 resistor footprint"
	pkg.Metadata.Author = "test"
	pkg.Metadata.Keywords = []string{"resistor", "smt"}

	pad := geo.NewPackagePad(ident.MustCircuitIdentifier("1"))
	if err := pkg.PackagePads.Append(pad); err != nil {
		t.Fatalf("Append pad: %v", err)
	}

	fp := NewFootprint(ident.MustCircuitIdentifier("default"))
	fpPad := geo.NewFootprintPad(pad.UUID(), units.NewPoint(units.NewLength(-800000), 0), 0,
		geo.PadShapeRoundedRect,
		units.MustPositiveLength(units.NewLength(900000)), units.MustPositiveLength(units.NewLength(1100000)),
		units.MustUnsignedLimitedRatio(units.RatioFromPercent(25)),
		geo.PadFunctionStandardPad, geo.PadSideTop,
		geo.StopMaskConfig{Mode: geo.StopMaskAuto}, geo.SolderPasteConfig{Mode: geo.StopMaskAuto},
		units.UnsignedLength{})
	if err := fp.Pads.Append(fpPad); err != nil {
		t.Fatalf("Append footprint pad: %v", err)
	}
	circle := geo.NewCircle(units.LayerTopCopper, units.MustUnsignedLength(units.NewLength(100000)),
		false, true, units.NewPoint(0, 0), units.MustPositiveLength(units.NewLength(200000)))
	if err := fp.Circles.Append(circle); err != nil {
		t.Fatalf("Append circle: %v", err)
	}
	pkg.Footprints = append(pkg.Footprints, fp)
	return pkg
}

func TestPackageSExprRoundTrip(t *testing.T) {
	pkg := newRoundTripPackage(t)

	round, err := sexpr.Parse(pkg.ToSExpr().String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := NewPackage(ident.CircuitIdentifier{}, ident.Version{})
	if err := got.FromSExpr(round); err != nil {
		t.Fatalf("FromSExpr: %v", err)
	}

	if !got.Metadata.Name.Equal(pkg.Metadata.Name) {
		t.Errorf("name = %v, want %v", got.Metadata.Name, pkg.Metadata.Name)
	}
	if got.Metadata.Description != pkg.Metadata.Description {
		t.Errorf("description = %q, want %q", got.Metadata.Description, pkg.Metadata.Description)
	}
	if diff := cmp.Diff(pkg.Metadata.Keywords, got.Metadata.Keywords); diff != "" {
		t.Errorf("keywords round-trip mismatch (-want +got):\n%s", diff)
	}
	if got.PackagePads.Len() != 1 {
		t.Fatalf("PackagePads.Len() = %d, want 1", got.PackagePads.Len())
	}
	if len(got.Footprints) != 1 {
		t.Fatalf("len(Footprints) = %d, want 1", len(got.Footprints))
	}
	gotFp := got.Footprints[0]
	if gotFp.Pads.Len() != 1 || gotFp.Circles.Len() != 1 {
		t.Fatalf("footprint contents mismatch: pads=%d circles=%d", gotFp.Pads.Len(), gotFp.Circles.Len())
	}
	if gotFp.IsInterfaceBrokenAgainst(got.PadUUIDSet()) {
		t.Error("round-tripped footprint should not report a broken interface against its own package")
	}
}
