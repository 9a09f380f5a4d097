package layer

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/librepcb/pkgeditor/internal/units"
)

func TestNewDefaultRegistryStyleAndNames(t *testing.T) {
	r := NewDefaultRegistry()

	names := r.Names()
	if len(names) == 0 {
		t.Fatal("Names() returned no layers")
	}

	style, err := r.Style(units.LayerTopCopper)
	if err != nil {
		t.Fatalf("Style(LayerTopCopper): %v", err)
	}
	if !style.Visible {
		t.Error("top copper should start visible")
	}
	if style.FillAlpha != 1.0 {
		t.Errorf("top copper FillAlpha = %v, want 1.0", style.FillAlpha)
	}
}

func TestRegistryStyleUnknownLayerErrors(t *testing.T) {
	r := NewDefaultRegistry()
	unknown, err := units.NewGraphicsLayerName("nonexistent_layer")
	if err != nil {
		t.Fatalf("NewGraphicsLayerName: %v", err)
	}
	if _, err := r.Style(unknown); err == nil {
		t.Fatal("expected error for unregistered layer")
	}
}

func TestRegistrySetVisible(t *testing.T) {
	r := NewDefaultRegistry()
	if err := r.SetVisible(units.LayerTopLegend, false); err != nil {
		t.Fatalf("SetVisible: %v", err)
	}
	style, err := r.Style(units.LayerTopLegend)
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if style.Visible {
		t.Error("expected layer to be hidden after SetVisible(false)")
	}
}

func TestRegistrySetColor(t *testing.T) {
	r := NewDefaultRegistry()
	red, _ := colorful.Hex("#ff0000")
	if err := r.SetColor(units.LayerTopDocument, red); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	style, err := r.Style(units.LayerTopDocument)
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if style.Color != red {
		t.Errorf("Color = %v, want %v", style.Color, red)
	}
}

func TestRegistrySetVisibleUnknownLayerErrors(t *testing.T) {
	r := NewDefaultRegistry()
	unknown, _ := units.NewGraphicsLayerName("nonexistent_layer")
	if err := r.SetVisible(unknown, true); err == nil {
		t.Fatal("expected error setting visibility on unregistered layer")
	}
}
