// Package endian provides byte order utilities for serialized text payloads.
//
// Wide texts hold their 16-bit units little-endian in memory. Blob encoding
// can store them in either byte order; the chosen order is recorded in the
// blob header and restored on decode.
//
//	engine := endian.GetBigEndianEngine()
//	payload := endian.AppendUnits(engine, nil, wideUnits)
//
// All functions are safe for concurrent use. The returned EndianEngine values
// are immutable.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness determines the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 stores 0x01 first on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEndianEngine returns the engine matching the host byte order.
func GetNativeEndianEngine() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// AppendUnits appends the little-endian 16-bit units in src to dst using
// engine's byte order. A trailing odd byte in src is ignored.
func AppendUnits(engine EndianEngine, dst []byte, src []byte) []byte {
	if engine == binary.LittleEndian {
		return append(dst, src[:len(src)&^1]...)
	}

	for i := 0; i+1 < len(src); i += 2 {
		dst = engine.AppendUint16(dst, binary.LittleEndian.Uint16(src[i:]))
	}

	return dst
}

// ReadUnits converts 16-bit units stored in engine's byte order to the
// little-endian layout, appending them to dst.
func ReadUnits(engine EndianEngine, dst []byte, src []byte) []byte {
	if engine == binary.LittleEndian {
		return append(dst, src[:len(src)&^1]...)
	}

	for i := 0; i+1 < len(src); i += 2 {
		dst = binary.LittleEndian.AppendUint16(dst, engine.Uint16(src[i:]))
	}

	return dst
}
