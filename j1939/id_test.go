package j1939

import "testing"

func TestDecodeScenarios(t *testing.T) {
	tests := []struct {
		name        string
		raw         uint32
		priority    Priority
		pgn         uint32
		source      Address
		destination Address
	}{
		{"scenario 1", 0x18EF1CF5, 6, 0x0EF00, 0xF5, 0x1C},
		{"scenario 2", 0x18FF3F13, 6, 0x0FF3F, 0x13, AddressGlobal},
		{"scenario 3", 0x0CAC1C13, 3, 0x0AC00, 0x13, 0x1C},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := Decode(tt.raw)
			if !id.IsExtended() {
				t.Fatalf("expected extended id")
			}
			if got := id.Priority(); got != tt.priority {
				t.Errorf("priority = %d, want %d", got, tt.priority)
			}
			if got := id.Pgn().Raw(); got != tt.pgn {
				t.Errorf("pgn = %#x, want %#x", got, tt.pgn)
			}
			if got := id.SourceAddress(); got != tt.source {
				t.Errorf("source = %#x, want %#x", got, tt.source)
			}
			if got := id.DestinationAddress(); got != tt.destination {
				t.Errorf("destination = %#x, want %#x", got, tt.destination)
			}
		})
	}
}

func TestStandardVsExtendedClassification(t *testing.T) {
	if Decode(0x7FF).Type() != Standard {
		t.Error("0x7FF must classify as standard")
	}
	if Decode(0x800).Type() != Extended {
		t.Error("0x800 must classify as extended")
	}
}

func TestStandardIdentifierSemantics(t *testing.T) {
	id := Decode(0x705)
	if id.Priority() != PriorityHighest {
		t.Errorf("standard id priority = %d, want highest", id.Priority())
	}
	if id.SourceAddress() != AddressGlobal {
		t.Errorf("standard id source = %#x, want global", id.SourceAddress())
	}
	if !id.Pgn().IsNull() {
		t.Error("standard id must carry a null pgn")
	}
	if id.DestinationAddress() != AddressGlobal {
		t.Error("standard id destination must be global")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	raws := []uint32{0x18EF1CF5, 0x18FF3F13, 0x0CAC1C13, 0x18EEFF1C}
	for _, raw := range raws {
		id := Decode(raw)
		pgn := id.Pgn()
		dest := id.DestinationAddress()
		encoded := EncodeExtended(id.Priority(), pgn, id.SourceAddress(), dest)
		if encoded.Raw() != raw {
			t.Errorf("round trip of %#x: got %#x", raw, encoded.Raw())
		}
	}
}
