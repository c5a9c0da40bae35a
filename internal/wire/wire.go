// Package wire holds the little-endian byte helpers shared by the
// j1939 identifier codec and the object-pool codec, the way the teacher's
// define.go centralized its own endian helpers for the ASDU codec.
package wire

import (
	"encoding/binary"
	"math"
)

func PutUint16LE(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func Uint16LE(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func PutUint32LE(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func Uint32LE(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func PutUint64LE(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func Uint64LE(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

func Int32LE(b []byte) int32 {
	return int32(Uint32LE(b))
}

func PutInt32LE(v int32) []byte {
	return PutUint32LE(uint32(v))
}

func Int16LE(b []byte) int16 {
	return int16(Uint16LE(b))
}

func PutInt16LE(v int16) []byte {
	return PutUint16LE(uint16(v))
}

func Float32LE(b []byte) float32 {
	return math.Float32frombits(Uint32LE(b))
}

func PutFloat32LE(v float32) []byte {
	return PutUint32LE(math.Float32bits(v))
}
