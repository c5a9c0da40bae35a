package j1939

import "testing"

func TestParsePgnScenario(t *testing.T) {
	pgn, err := ParsePgn(0x30000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pgn.ExtendedDataPage() || !pgn.DataPage() {
		t.Error("expected both data page bits set")
	}
	if pgn.PduFormat() != 0x00 || pgn.PduSpecific() != 0x00 {
		t.Errorf("pdu format/specific = %#x/%#x, want 0/0", pgn.PduFormat(), pgn.PduSpecific())
	}

	if _, err := ParsePgn(0x40000); err == nil {
		t.Fatal("expected InvalidPgnLength error")
	}
}

func TestPgnDestinationSpecificClassification(t *testing.T) {
	tests := []struct {
		raw  uint32
		dest bool
	}{
		{0x0EE00, true},
		{0x0EF00, true},
		{0x0F000, false},
		{0x0FEFF, false},
		{0x0FF00, false},
		{0x0FFFF, false},
		{0x10000, true},
		{0x1EE00, true},
		{0x1EF00, true},
		{0x1F000, false},
		{0x1FEFF, false},
		{0x1FF00, false},
		{0x1FFFF, false},
	}
	for _, tt := range tests {
		pgn, err := ParsePgn(tt.raw)
		if err != nil {
			t.Fatalf("ParsePgn(%#x): %v", tt.raw, err)
		}
		if got := pgn.IsDestinationSpecific(); got != tt.dest {
			t.Errorf("ParsePgn(%#x).IsDestinationSpecific() = %v, want %v", tt.raw, got, tt.dest)
		}
	}
}

func TestPgnNullIsOutsideValidRange(t *testing.T) {
	if PgnNull.Raw() <= PgnMax {
		t.Error("PgnNull must be unreachable via ParsePgn")
	}
	if _, err := ParsePgn(PgnNull.Raw()); err == nil {
		t.Error("PgnNull's raw value must not parse successfully")
	}
}
