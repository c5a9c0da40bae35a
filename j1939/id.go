package j1939

// IDType discriminates the two CAN identifier lengths.
type IDType uint8

const (
	Standard IDType = iota
	Extended
)

// maxStandardRaw is the largest raw value an 11-bit identifier can hold.
const maxStandardRaw uint32 = 0x7FF

// maxExtendedRaw is the largest raw value a 29-bit identifier can hold.
const maxExtendedRaw uint32 = 0x1FFFFFFF

// CanID is a decoded 11- or 29-bit CAN identifier. Standard identifiers
// carry no priority/PGN/source semantics of their own (J1939 assigns
// them the implicit highest priority, a NULL PGN and the global source
// address); extended identifiers pack priority, EDP/DP, PDU format,
// PDU specific and source address as laid out in spec §6.
type CanID struct {
	raw  uint32
	kind IDType
}

// Decode classifies a raw CAN identifier by magnitude: raw <= 0x7FF is
// an 11-bit standard identifier, anything else is treated as a 29-bit
// extended identifier (raw is still masked to 29 bits).
func Decode(raw uint32) CanID {
	if raw <= maxStandardRaw {
		return CanID{raw: raw, kind: Standard}
	}
	return CanID{raw: raw & maxExtendedRaw, kind: Extended}
}

// Raw returns the identifier's raw value.
func (id CanID) Raw() uint32 { return id.raw }

// Type reports whether id is Standard or Extended.
func (id CanID) Type() IDType { return id.kind }

// IsExtended reports whether id is a 29-bit identifier.
func (id CanID) IsExtended() bool { return id.kind == Extended }

// Priority returns the 3-bit arbitration priority. Standard identifiers
// are always reported as PriorityHighest.
func (id CanID) Priority() Priority {
	if id.kind == Standard {
		return PriorityHighest
	}
	return Priority((id.raw >> 26) & 0x7)
}

// SourceAddress returns the source address encoded in the low byte of
// an extended identifier. Standard identifiers report AddressGlobal,
// since J1939 assigns them no source-address semantics.
func (id CanID) SourceAddress() Address {
	if id.kind == Standard {
		return AddressGlobal
	}
	return Address(id.raw & 0xFF)
}

// Pgn derives the Parameter Group Number carried by id, applying the
// PDU1/PDU2 rule of spec §4.1. Standard identifiers carry no PGN and
// report PgnNull.
func (id CanID) Pgn() Pgn {
	if id.kind == Standard {
		return PgnNull
	}
	return FromCanRaw(id.raw)
}

// DestinationAddress returns the destination address for id: the global
// address for broadcasts and standard identifiers, otherwise the raw
// PDU-specific byte of the identifier itself (not the PGN's, which has
// already had its destination masked out for PDU1 groups).
func (id CanID) DestinationAddress() Address {
	pgn := id.Pgn()
	if pgn.IsNull() || pgn.IsBroadcast() {
		return AddressGlobal
	}
	return Address((id.raw >> 8) & 0xFF)
}

// EncodeExtended packs priority, pgn and source into a 29-bit extended
// identifier. For a destination-specific (PDU1) pgn, destination is
// written into the PDU-specific field; for a PDU2 pgn, destination is
// ignored and the pgn's own group-extension byte is used unchanged.
func EncodeExtended(priority Priority, pgn Pgn, source Address, destination Address) CanID {
	raw := uint32(priority&0x7) << 26
	if pgn.ExtendedDataPage() {
		raw |= 1 << 25
	}
	if pgn.DataPage() {
		raw |= 1 << 24
	}
	raw |= uint32(pgn.PduFormat()) << 16
	if pgn.IsDestinationSpecific() {
		raw |= uint32(destination) << 8
	} else {
		raw |= uint32(pgn.PduSpecific()) << 8
	}
	raw |= uint32(source)
	return CanID{raw: raw, kind: Extended}
}

// EncodeStandard packs an 11-bit standard identifier. J1939 defines no
// internal structure for standard identifiers; raw is taken verbatim
// and masked to 11 bits.
func EncodeStandard(raw uint32) CanID {
	return CanID{raw: raw & maxStandardRaw, kind: Standard}
}
