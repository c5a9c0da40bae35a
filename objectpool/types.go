// Package objectpool implements the ISO 11783-6 binary object-pool
// codec: the ~45 tagged UI object variants a Virtual Terminal pool is
// built from, a streaming reader/writer pair, and an in-memory pool
// container. Grounded on the original stack's object_pool module
// (mod.rs, reader.rs, writer.rs), re-expressed in the teacher's own
// struct-per-record, method-per-direction style.
package objectpool

import "fmt"

// ObjectType tags every object variant on the wire. Numeric values are
// load-bearing: they are the wire tag, not an internal enumeration.
type ObjectType uint8

const (
	ObjectTypeWorkingSet                     ObjectType = 0
	ObjectTypeDataMask                       ObjectType = 1
	ObjectTypeAlarmMask                      ObjectType = 2
	ObjectTypeContainer                      ObjectType = 3
	ObjectTypeSoftKeyMask                    ObjectType = 4
	ObjectTypeKey                            ObjectType = 5
	ObjectTypeButton                         ObjectType = 6
	ObjectTypeInputBoolean                   ObjectType = 7
	ObjectTypeInputString                    ObjectType = 8
	ObjectTypeInputNumber                    ObjectType = 9
	ObjectTypeInputList                      ObjectType = 10
	ObjectTypeOutputString                   ObjectType = 11
	ObjectTypeOutputNumber                   ObjectType = 12
	ObjectTypeOutputLine                     ObjectType = 13
	ObjectTypeOutputRectangle                ObjectType = 14
	ObjectTypeOutputEllipse                  ObjectType = 15
	ObjectTypeOutputPolygon                  ObjectType = 16
	ObjectTypeOutputMeter                    ObjectType = 17
	ObjectTypeOutputLinearBarGraph           ObjectType = 18
	ObjectTypeOutputArchedBarGraph           ObjectType = 19
	ObjectTypePictureGraphic                 ObjectType = 20
	ObjectTypeNumberVariable                 ObjectType = 21
	ObjectTypeStringVariable                 ObjectType = 22
	ObjectTypeFontAttributes                 ObjectType = 23
	ObjectTypeLineAttributes                 ObjectType = 24
	ObjectTypeFillAttributes                 ObjectType = 25
	ObjectTypeInputAttributes                ObjectType = 26
	ObjectTypeObjectPointer                  ObjectType = 27
	ObjectTypeMacro                          ObjectType = 28
	ObjectTypeAuxiliaryFunctionType1         ObjectType = 29
	ObjectTypeAuxiliaryInputType1            ObjectType = 30
	ObjectTypeAuxiliaryFunctionType2         ObjectType = 31
	ObjectTypeAuxiliaryInputType2            ObjectType = 32
	ObjectTypeAuxiliaryControlDesignatorType2 ObjectType = 33
	ObjectTypeWindowMask                     ObjectType = 34
	ObjectTypeKeyGroup                       ObjectType = 35
	ObjectTypeGraphicsContext                ObjectType = 36
	ObjectTypeOutputList                     ObjectType = 37
	ObjectTypeExtendedInputAttributes        ObjectType = 38
	ObjectTypeColourMap                      ObjectType = 39
	ObjectTypeObjectLabelReferenceList       ObjectType = 40
	ObjectTypeExternalObjectDefinition       ObjectType = 41
	ObjectTypeExternalReferenceName          ObjectType = 42
	ObjectTypeExternalObjectPointer          ObjectType = 43
	ObjectTypeAnimation                      ObjectType = 44
	ObjectTypeColourPalette                  ObjectType = 45
	ObjectTypeGraphicData                    ObjectType = 46
	ObjectTypeWorkingSetSpecialControls      ObjectType = 47
	ObjectTypeScaledGraphic                  ObjectType = 48

	maxObjectType = ObjectTypeScaledGraphic
)

// ObjectID identifies an object within a pool.
type ObjectID uint16

// NullableObjectID is an ObjectID where 0xFFFF denotes absence.
type NullableObjectID uint16

const nullObjectID NullableObjectID = 0xFFFF

// IsNull reports whether id denotes absence.
func (id NullableObjectID) IsNull() bool { return id == nullObjectID }

// Get returns the underlying ObjectID and false if id is null.
func (id NullableObjectID) Get() (ObjectID, bool) {
	if id.IsNull() {
		return 0, false
	}
	return ObjectID(id), true
}

// ObjectRef is a child object reference with a signed placement offset
// relative to its parent (spec §4.6).
type ObjectRef struct {
	ID NullableObjectID
	X  int16
	Y  int16
}

// MacroRef binds an event to the macro object run when it fires.
type MacroRef struct {
	EventID uint8
	MacroID ObjectID
}

// ObjectLabel names an object for the Object Label Reference List.
type ObjectLabel struct {
	ID                   ObjectID
	StringVariableID     NullableObjectID
	FontType             uint8
	GraphicRepresentation NullableObjectID
}

// Point is a generic 2D coordinate, used for polygon vertices.
type Point[T any] struct {
	X T
	Y T
}

// Colour is a standard-palette index. The actual RGBA value is resolved
// through a Pool's colour map (Pool.ColourByIndex), never stored inline.
type Colour uint8

// HorizontalAlignment is the bits 0-1 field of an Alignment byte.
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignMiddle
	AlignRight
	alignHorizontalReserved
)

// VerticalAlignment is the bits 2-3 field of an Alignment byte.
type VerticalAlignment uint8

const (
	AlignTop VerticalAlignment = iota
	AlignCenter
	AlignBottom
	alignVerticalReserved
)

// Alignment packs horizontal and vertical text alignment into one byte:
// bits 0-1 horizontal, bits 2-3 vertical, bits 4-7 zero (spec §6).
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

func (a Alignment) pack() uint8 {
	return uint8(a.Horizontal&0x3) | uint8(a.Vertical&0x3)<<2
}

func unpackAlignment(b uint8) Alignment {
	return Alignment{
		Horizontal: HorizontalAlignment(b & 0x3),
		Vertical:   VerticalAlignment((b >> 2) & 0x3),
	}
}

// ParseErrorKind distinguishes the pool codec's three failure modes
// (spec §7).
type ParseErrorKind uint8

const (
	ErrKindDataEmpty ParseErrorKind = iota
	ErrKindUnknownObjectType
	ErrKindUnsupportedVtVersion
)

// ParseError reports why the pool reader stopped partway through an
// object. Objects parsed before the failure are retained by the caller.
type ParseError struct {
	Kind ParseErrorKind
	Tag  uint8 // populated for ErrKindUnknownObjectType
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrKindDataEmpty:
		return "objectpool: stream ended mid-object"
	case ErrKindUnknownObjectType:
		return fmt.Sprintf("objectpool: unknown object type tag %d", e.Tag)
	case ErrKindUnsupportedVtVersion:
		return "objectpool: unsupported VT version"
	default:
		return "objectpool: parse error"
	}
}

// Object is satisfied by every object variant. Type returns the wire
// tag; ID returns the object's pool-unique identifier.
type Object interface {
	Type() ObjectType
	ID() ObjectID
}
