package objectpool

import (
	"github.com/greenfield-iso/j1939stack/internal/wire"
	"github.com/greenfield-iso/j1939stack/name"
)

// byteWriter accumulates the serialized form of a pool, the inverse of
// byteReader (spec §4.8).
type byteWriter struct {
	buf []byte
}

func newByteWriter() *byteWriter { return &byteWriter{} }

func (w *byteWriter) Bytes() []byte { return w.buf }

func (w *byteWriter) raw(b []byte) { w.buf = append(w.buf, b...) }

func (w *byteWriter) u8(v uint8) { w.buf = append(w.buf, v) }

func (w *byteWriter) boolean(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *byteWriter) u16(v uint16) { w.raw(wire.PutUint16LE(v)) }
func (w *byteWriter) u32(v uint32) { w.raw(wire.PutUint32LE(v)) }
func (w *byteWriter) i32(v int32)  { w.raw(wire.PutInt32LE(v)) }
func (w *byteWriter) i16(v int16)  { w.raw(wire.PutInt16LE(v)) }
func (w *byteWriter) f32(v float32) { w.raw(wire.PutFloat32LE(v)) }

func (w *byteWriter) objectID(id ObjectID)                 { w.u16(uint16(id)) }
func (w *byteWriter) nullableObjectID(id NullableObjectID) { w.u16(uint16(id)) }
func (w *byteWriter) colour(c Colour)                      { w.u8(uint8(c)) }
func (w *byteWriter) nameField(n name.Name)                { w.raw(wire.PutUint64LE(n.Raw())) }

func (w *byteWriter) objectRef(ref ObjectRef) {
	w.nullableObjectID(ref.ID)
	w.i16(ref.X)
	w.i16(ref.Y)
}

func (w *byteWriter) objectRefs(refs []ObjectRef) {
	w.u8(uint8(len(refs)))
	for _, r := range refs {
		w.objectRef(r)
	}
}

func (w *byteWriter) macroRef(m MacroRef) {
	w.u8(m.EventID)
	w.objectID(m.MacroID)
}

func (w *byteWriter) macroRefs(refs []MacroRef) {
	w.u8(uint8(len(refs)))
	for _, r := range refs {
		w.macroRef(r)
	}
}

func (w *byteWriter) objectIDs(ids []ObjectID) {
	w.u8(uint8(len(ids)))
	for _, id := range ids {
		w.objectID(id)
	}
}

func (w *byteWriter) nullableObjectIDs(ids []NullableObjectID) {
	w.u8(uint8(len(ids)))
	for _, id := range ids {
		w.nullableObjectID(id)
	}
}

func (w *byteWriter) objectLabels(labels []ObjectLabel) {
	w.u16(uint16(len(labels)))
	for _, l := range labels {
		w.objectID(l.ID)
		w.nullableObjectID(l.StringVariableID)
		w.u8(l.FontType)
		w.nullableObjectID(l.GraphicRepresentation)
	}
}

func (w *byteWriter) stringN(s string, n int) {
	b := make([]byte, n)
	copy(b, s)
	w.raw(b)
}

func (w *byteWriter) bytesU8Len(b []byte) {
	w.u8(uint8(len(b)))
	w.raw(b)
}

func (w *byteWriter) bytesU16Len(b []byte) {
	w.u16(uint16(len(b)))
	w.raw(b)
}

func (w *byteWriter) bytesU32Len(b []byte) {
	w.u32(uint32(len(b)))
	w.raw(b)
}

// WriteObject serializes id, the object's type tag, and its body.
func WriteObject(w *byteWriter, o Object) {
	w.objectID(o.ID())
	w.u8(uint8(o.Type()))
	writeBody(w, o)
}

// Dump serializes every object in objects, in order, concatenated —
// the inverse of Load.
func Dump(objects []Object) []byte {
	w := newByteWriter()
	for _, o := range objects {
		WriteObject(w, o)
	}
	return w.Bytes()
}
