package j1939

import "fmt"

// PgnMax is the largest raw value that fits in the 18-bit PGN field.
const PgnMax uint32 = 0x3FFFF

// ErrInvalidPgnLength is returned by ParsePgn when the raw value does
// not fit in 18 bits.
type ErrInvalidPgnLength struct {
	Raw uint32
}

func (e *ErrInvalidPgnLength) Error() string {
	return fmt.Sprintf("j1939: pgn %#x exceeds the 18-bit range (max %#x)", e.Raw, PgnMax)
}

// Pgn is the 18-bit Parameter Group Number: extended data page, data
// page, PDU format and PDU specific (destination address or group
// extension, depending on PduFormat). It is stored as a single packed
// raw value so that PgnNull (0xFFFFFFFF) is unambiguously outside the
// 18-bit range of every real PGN.
type Pgn struct {
	raw uint32
}

// PgnNull is the sentinel PGN returned for 11-bit standard identifiers,
// which carry no PGN at all.
var PgnNull = Pgn{raw: 0xFFFFFFFF}

// IsNull reports whether p equals the NULL sentinel.
func (p Pgn) IsNull() bool { return p == PgnNull }

// NewPgn constructs a Pgn from its four fields, each masked to its bit
// width (out-of-range inputs are silently clamped, never rejected).
func NewPgn(extendedDataPage, dataPage bool, pduFormat, pduSpecific uint8) Pgn {
	var raw uint32
	if extendedDataPage {
		raw |= 1 << 17
	}
	if dataPage {
		raw |= 1 << 16
	}
	raw |= uint32(pduFormat) << 8
	raw |= uint32(pduSpecific)
	return Pgn{raw: raw}
}

// ParsePgn decodes a raw PGN value, failing if it exceeds the 18-bit range.
func ParsePgn(raw uint32) (Pgn, error) {
	if raw > PgnMax {
		return Pgn{}, &ErrInvalidPgnLength{Raw: raw}
	}
	return Pgn{raw: raw}, nil
}

// FromCanRaw derives the PGN carried by a raw 29-bit extended CAN
// identifier, applying the PDU1/PDU2 rule: destination-specific (PDU1)
// identifiers have their PDU-specific byte (the destination address)
// masked out of the PGN, since it is not part of the PGN's identity.
func FromCanRaw(canID uint32) Pgn {
	pduFormat := uint8(canID >> 16)
	if pduFormat <= 0xEF {
		return Pgn{raw: (canID >> 8) & 0x03FF00}
	}
	return Pgn{raw: (canID >> 8) & 0x03FFFF}
}

// Raw returns the packed representation. For PgnNull this is 0xFFFFFFFF;
// for any successfully-parsed PGN it is at most PgnMax.
func (p Pgn) Raw() uint32 { return p.raw }

// ExtendedDataPage returns the EDP bit.
func (p Pgn) ExtendedDataPage() bool { return p.raw&(1<<17) != 0 }

// DataPage returns the DP bit.
func (p Pgn) DataPage() bool { return p.raw&(1<<16) != 0 }

// PduFormat returns the PDU format byte.
func (p Pgn) PduFormat() uint8 { return uint8(p.raw >> 8) }

// PduSpecific returns the PDU specific byte (destination address for
// PDU1 PGNs, group extension for PDU2 PGNs).
func (p Pgn) PduSpecific() uint8 { return uint8(p.raw) }

// IsDestinationSpecific reports whether this PGN addresses a specific
// destination (PDU1, PduFormat <= 0xEF) rather than broadcasting
// (PDU2, PduFormat >= 0xF0).
func (p Pgn) IsDestinationSpecific() bool {
	return p.PduFormat() <= 0xEF
}

// IsBroadcast is the PDU2 counterpart of IsDestinationSpecific.
func (p Pgn) IsBroadcast() bool {
	return !p.IsDestinationSpecific()
}

// IsGroupExtension is an alias of IsBroadcast kept for readability at
// call sites that talk about group extensions rather than broadcast.
func (p Pgn) IsGroupExtension() bool { return p.IsBroadcast() }

// DestinationAddress returns the destination address carried in
// PduSpecific when this is a PDU1 (destination-specific) PGN.
func (p Pgn) DestinationAddress() (Address, bool) {
	if !p.IsDestinationSpecific() {
		return 0, false
	}
	return Address(p.PduSpecific()), true
}

// SetDestinationAddress sets PduSpecific to addr's raw value, but only
// when this PGN is destination-specific; it is a no-op for PDU2 PGNs
// (their PduSpecific is the group extension byte, not an address).
func (p *Pgn) SetDestinationAddress(addr Address) {
	if p.IsDestinationSpecific() {
		p.raw = (p.raw &^ 0xFF) | uint32(addr)
	}
}

// GroupExtension returns the group extension byte carried in
// PduSpecific when this is a PDU2 (broadcast) PGN.
func (p Pgn) GroupExtension() (uint8, bool) {
	if p.IsDestinationSpecific() {
		return 0, false
	}
	return p.PduSpecific(), true
}

// AsKey returns the canonical form of p used as a lookup/equality key:
// PDU1 PGNs have PduSpecific forced to zero (the destination address is
// not part of the PGN identity), PDU2 PGNs are returned unchanged.
func (p Pgn) AsKey() Pgn {
	if p.IsDestinationSpecific() {
		p.raw &^= 0xFF
	}
	return p
}
