package model

import "testing"

func TestParseEnums(t *testing.T) {
	t.Parallel()

	if _, ok := ParseClientStatus("scheduling"); !ok {
		t.Fatalf("scheduling should parse")
	}
	if _, ok := ParseClientStatus("Scheduling"); ok {
		t.Fatalf("enums are lowercase only")
	}
	if _, ok := ParseClientStatus("paused"); ok {
		t.Fatalf("unknown status should not parse")
	}

	if _, ok := ParsePhase("filming"); !ok {
		t.Fatalf("filming should parse")
	}
	if _, ok := ParsePhase("editing"); ok {
		t.Fatalf("unknown phase should not parse")
	}

	for _, s := range []string{"task", "event", "item"} {
		if _, ok := ParseEntryType(s); !ok {
			t.Fatalf("%s should parse", s)
		}
	}
	if _, ok := ParseEntryType("meeting"); ok {
		t.Fatalf("unknown type should not parse")
	}
}

func TestValidColor(t *testing.T) {
	t.Parallel()

	if len(Palette) != 8 {
		t.Fatalf("expected 8 palette colors; got %d", len(Palette))
	}
	for _, c := range Palette {
		if !ValidColor(c) {
			t.Fatalf("palette color %s should validate", c)
		}
	}
	if ValidColor("#123456") {
		t.Fatalf("off-palette color should not validate")
	}
	if ValidColor(NeutralColor) {
		t.Fatalf("the neutral fallback is not a palette color")
	}
}
