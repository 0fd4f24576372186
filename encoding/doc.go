// Package encoding classifies and converts the unit buffers behind ctext values.
//
// A unit is a 16-bit text element. Buffers store units either narrow (one byte
// per unit, valid only when every unit is <= 0xFF) or wide (two bytes per unit,
// little-endian in memory). Unit indices always address units, never bytes;
// Coder.Shift converts an index into a byte offset.
//
// # Optimistic narrowing
//
// Producers of fresh content assume it is narrow, and fall back to wide on the
// first unit that does not fit:
//
//	buf, failAt := encoding.TryBuildNarrow(units)
//	if failAt >= 0 {
//	    wide := encoding.PromotePrefix(buf, failAt, len(units))
//	    encoding.PutUnits(wide, failAt, units[failAt:])
//	}
//
// The same shape recurs in the text builder and in case mapping.
//
// # Length arithmetic
//
// Required lengths are computed with AddLength, MulLength and NewCapacity,
// which report errs.ErrLengthOverflow instead of wrapping.
package encoding
