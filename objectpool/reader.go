package objectpool

import (
	"github.com/greenfield-iso/j1939stack/internal/wire"
	"github.com/greenfield-iso/j1939stack/name"
)

// byteReader is a forward-only cursor over a pool's byte stream, the
// Go counterpart of the original stack's byte iterator (spec §4.7).
type byteReader struct {
	buf []byte
	pos int
}

func newByteReader(buf []byte) *byteReader { return &byteReader{buf: buf} }

func (r *byteReader) remaining() int { return len(r.buf) - r.pos }

func (r *byteReader) take(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, &ParseError{Kind: ErrKindDataEmpty}
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *byteReader) u8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) boolean() (bool, error) {
	b, err := r.u8()
	return b != 0, err
}

func (r *byteReader) u16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return wire.Uint16LE(b), nil
}

func (r *byteReader) u32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return wire.Uint32LE(b), nil
}

func (r *byteReader) i32() (int32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return wire.Int32LE(b), nil
}

func (r *byteReader) i16() (int16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return wire.Int16LE(b), nil
}

func (r *byteReader) f32() (float32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return wire.Float32LE(b), nil
}

func (r *byteReader) objectID() (ObjectID, error) {
	v, err := r.u16()
	return ObjectID(v), err
}

func (r *byteReader) nullableObjectID() (NullableObjectID, error) {
	v, err := r.u16()
	return NullableObjectID(v), err
}

func (r *byteReader) colour() (Colour, error) {
	v, err := r.u8()
	return Colour(v), err
}

func (r *byteReader) nameField() (name.Name, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return name.Name(wire.Uint64LE(b)), nil
}

func (r *byteReader) objectRef() (ObjectRef, error) {
	id, err := r.nullableObjectID()
	if err != nil {
		return ObjectRef{}, err
	}
	x, err := r.i16()
	if err != nil {
		return ObjectRef{}, err
	}
	y, err := r.i16()
	if err != nil {
		return ObjectRef{}, err
	}
	return ObjectRef{ID: id, X: x, Y: y}, nil
}

func (r *byteReader) objectRefs() ([]ObjectRef, error) {
	n, err := r.u8()
	if err != nil {
		return nil, err
	}
	var out []ObjectRef
	for i := uint8(0); i < n; i++ {
		ref, err := r.objectRef()
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

func (r *byteReader) macroRef() (MacroRef, error) {
	event, err := r.u8()
	if err != nil {
		return MacroRef{}, err
	}
	macro, err := r.objectID()
	if err != nil {
		return MacroRef{}, err
	}
	return MacroRef{EventID: event, MacroID: macro}, nil
}

func (r *byteReader) macroRefs() ([]MacroRef, error) {
	n, err := r.u8()
	if err != nil {
		return nil, err
	}
	var out []MacroRef
	for i := uint8(0); i < n; i++ {
		ref, err := r.macroRef()
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

func (r *byteReader) objectIDs() ([]ObjectID, error) {
	n, err := r.u8()
	if err != nil {
		return nil, err
	}
	var out []ObjectID
	for i := uint8(0); i < n; i++ {
		id, err := r.objectID()
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func (r *byteReader) nullableObjectIDs() ([]NullableObjectID, error) {
	n, err := r.u8()
	if err != nil {
		return nil, err
	}
	var out []NullableObjectID
	for i := uint8(0); i < n; i++ {
		id, err := r.nullableObjectID()
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func (r *byteReader) objectLabels() ([]ObjectLabel, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	var out []ObjectLabel
	for i := uint16(0); i < n; i++ {
		id, err := r.objectID()
		if err != nil {
			return nil, err
		}
		sv, err := r.nullableObjectID()
		if err != nil {
			return nil, err
		}
		font, err := r.u8()
		if err != nil {
			return nil, err
		}
		gr, err := r.nullableObjectID()
		if err != nil {
			return nil, err
		}
		out = append(out, ObjectLabel{ID: id, StringVariableID: sv, FontType: font, GraphicRepresentation: gr})
	}
	return out, nil
}

func (r *byteReader) stringN(n int) (string, error) {
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *byteReader) bytesU8Len() ([]byte, error) {
	n, err := r.u8()
	if err != nil {
		return nil, err
	}
	return r.take(int(n))
}

func (r *byteReader) bytesU16Len() ([]byte, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	return r.take(int(n))
}

func (r *byteReader) bytesU32Len() ([]byte, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	return r.take(int(n))
}

// ReadObject parses exactly one object (id, type tag, body) from r.
func ReadObject(r *byteReader) (Object, error) {
	id, err := r.objectID()
	if err != nil {
		return nil, err
	}
	tag, err := r.u8()
	if err != nil {
		return nil, err
	}
	fn, ok := objectReaders[ObjectType(tag)]
	if !ok {
		return nil, &ParseError{Kind: ErrKindUnknownObjectType, Tag: tag}
	}
	return fn(r, id)
}

// Load parses every object in buf in sequence, stopping and returning
// what was already parsed (plus the error) on the first failure (spec
// §4.7: "earlier-parsed objects are retained").
func Load(buf []byte) ([]Object, error) {
	r := newByteReader(buf)
	var objects []Object
	for r.remaining() > 0 {
		obj, err := ReadObject(r)
		if err != nil {
			return objects, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
