package editcmd

import (
	"testing"

	"github.com/librepcb/pkgeditor/internal/geo"
	"github.com/librepcb/pkgeditor/internal/ident"
	"github.com/librepcb/pkgeditor/internal/units"
)

func TestNewCmdComponentSymbolVariantItemEditExecuteUndo(t *testing.T) {
	item := geo.NewComponentSymbolVariantItem(ident.NewUUID(), "A", units.Origin, units.Angle(0))
	newPos := units.NewPoint(units.NewLength(1000000), units.NewLength(2000000))

	cmd := NewCmdComponentSymbolVariantItemEdit(item, "Move symbol", func(v *geo.ComponentSymbolVariantItem) {
		v.SetSymbolPosition(newPos)
	})
	if item.SymbolPosition() != units.Origin {
		t.Fatalf("constructing the command should leave the target unchanged, got %v", item.SymbolPosition())
	}

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if item.SymbolPosition() != newPos {
		t.Fatalf("SymbolPosition() after Execute = %v, want %v", item.SymbolPosition(), newPos)
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if item.SymbolPosition() != units.Origin {
		t.Fatalf("SymbolPosition() after Undo = %v, want origin", item.SymbolPosition())
	}
}

func TestNewCmdComponentSymbolVariantItemEditIsNoOp(t *testing.T) {
	item := geo.NewComponentSymbolVariantItem(ident.NewUUID(), "A", units.Origin, units.Angle(0))
	cmd := NewCmdComponentSymbolVariantItemEdit(item, "no change", func(v *geo.ComponentSymbolVariantItem) {
		v.SetSuffix("A")
	})
	if !cmd.IsNoOp() {
		t.Error("expected IsNoOp() when mutate leaves the item unchanged")
	}
}

func TestNewCmdDevicePadSignalMapItemEditExecuteUndoRedo(t *testing.T) {
	padUUID := ident.NewUUID()
	item := geo.NewDevicePadSignalMapItem(padUUID, ident.UUID{})
	signalUUID := ident.NewUUID()

	cmd := NewCmdDevicePadSignalMapItemEdit(item, "Connect pad to signal", func(m *geo.DevicePadSignalMapItem) {
		m.SetComponentSignalUUID(signalUUID)
	})
	if item.IsConnected() {
		t.Fatal("constructing the command should leave the target unchanged")
	}

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if item.ComponentSignalUUID() != signalUUID {
		t.Fatalf("ComponentSignalUUID() after Execute = %v, want %v", item.ComponentSignalUUID(), signalUUID)
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if item.IsConnected() {
		t.Fatal("Undo should restore the unconnected state")
	}

	if err := cmd.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if item.ComponentSignalUUID() != signalUUID {
		t.Fatalf("ComponentSignalUUID() after Redo = %v, want %v", item.ComponentSignalUUID(), signalUUID)
	}
}
