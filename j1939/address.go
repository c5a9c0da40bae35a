// Package j1939 implements the bit-exact SAE J1939 identifier codec:
// Address, Priority, Pgn and the 11-/29-bit CanID that packs them. It
// carries forward the teacher's split between control-field parsing
// (apci.go) and data-unit parsing (asdu.go) as a split between the
// identifier (this file and id.go) and the PGN (pgn.go).
package j1939

// Address is an 8-bit bus address. 0x00-0x7F are preferred/fixed,
// 0x80-0xF7 are arbitrary-assignable, 0xF8-0xFD are reserved.
type Address uint8

const (
	// AddressNull marks an ECU with no claimed address (e.g. mid-claim).
	AddressNull Address = 0xFE
	// AddressGlobal is the broadcast address for destination-specific PGNs.
	AddressGlobal Address = 0xFF
	// AddressBroadcast is an alias of AddressGlobal.
	AddressBroadcast Address = 0xFF

	// ArbitraryAddressRangeStart is the first address available for
	// arbitrary (self-configurable) claiming.
	ArbitraryAddressRangeStart Address = 128
	// ArbitraryAddressRangeEnd is the last address (inclusive) available
	// for arbitrary claiming.
	ArbitraryAddressRangeEnd Address = 247
)

// IsGlobal reports whether a is the global/broadcast address.
func (a Address) IsGlobal() bool { return a == AddressGlobal }

// IsBroadcast is an alias of IsGlobal.
func (a Address) IsBroadcast() bool { return a == AddressBroadcast }

// IsNull reports whether a is the null (unclaimed) address.
func (a Address) IsNull() bool { return a == AddressNull }

// IsPreferred reports whether a falls in the preferred/fixed range.
func (a Address) IsPreferred() bool { return a <= 0x7F }

// IsArbitrary reports whether a falls in the arbitrary-assignable range.
func (a Address) IsArbitrary() bool { return a >= 0x80 && a <= 0xF7 }
