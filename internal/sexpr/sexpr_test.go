package sexpr

import "testing"

func TestWriteAtomQuoting(t *testing.T) {
	n := New("name", "bare", "needs quoting", "")
	got := n.String()
	want := `(name bare "needs quoting" "")`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	src := `(pad "1a2b" "GND" (position 1.500000 -2.000000))`
	n, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Tag != "pad" {
		t.Errorf("Tag = %q, want pad", n.Tag)
	}
	if n.Value(0) != "1a2b" || n.Value(1) != "GND" {
		t.Errorf("values = %v", n.Values)
	}
	pos := n.Child("position")
	if pos == nil || pos.Value(0) != "1.500000" || pos.Value(1) != "-2.000000" {
		t.Fatalf("position child = %v", pos)
	}
}

func TestParseNestedChildren(t *testing.T) {
	src := `(zone "u" (layers top bottom) (rules no_copper) (outline (position 0.000000 0.000000) (position 1.000000 0.000000)))`
	n, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	layers := n.Child("layers")
	if layers == nil || len(layers.Values) != 2 {
		t.Fatalf("layers = %v", layers)
	}
	outline := n.Child("outline")
	if outline == nil || len(outline.ChildrenWithTag("position")) != 2 {
		t.Fatalf("outline = %v", outline)
	}
}

func TestParseThenWriteIsStable(t *testing.T) {
	src := `(circle u (layer top_cu) (width 0.200000) (fill true) (grab_area false) (diameter 2.000000) (position 0.000000 0.000000))`
	n, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := n.String(); got != src {
		t.Errorf("round trip mismatch:\n got  %s\n want %s", got, src)
	}
}

func TestBoolAtomRoundTrip(t *testing.T) {
	if BoolAtom(true) != "true" || BoolAtom(false) != "false" {
		t.Fatal("BoolAtom mismatch")
	}
	if !BoolAtom(true).Bool() || BoolAtom(false).Bool() {
		t.Fatal("Bool() mismatch")
	}
}

func TestFloatAtomFixedPrecision(t *testing.T) {
	if got := FloatAtom(1.5); got != "1.500000" {
		t.Errorf("FloatAtom(1.5) = %q", got)
	}
	f, err := Atom("1.500000").Float()
	if err != nil || f != 1.5 {
		t.Errorf("Float() = %v, %v", f, err)
	}
}

func TestParseUnterminatedNodeErrors(t *testing.T) {
	if _, err := Parse(`(pad "1"`); err == nil {
		t.Fatal("expected error for unterminated node")
	}
}

func TestParseEmptyInputErrors(t *testing.T) {
	if _, err := Parse(``); err == nil {
		t.Fatal("expected error for empty input")
	}
}
