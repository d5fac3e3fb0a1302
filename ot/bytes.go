package ot

import "math"

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// view returns n bytes of b starting at offset, or false if out of bounds.
func view(b []byte, offset, n uint32) ([]byte, bool) {
	end, ok := checkedAddUint32(offset, n)
	if !ok || uint64(end) > uint64(len(b)) {
		return nil, false
	}
	return b[offset:end], true
}

// checkedAddUint32 adds a and b, reporting false on overflow.
func checkedAddUint32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}
