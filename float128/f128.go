package float128

import (
	"math"
	"math/bits"
)

// A Float128 is an IEEE-754 binary128 value: 1 sign bit, 15 exponent
// bits (bias 16383) and 112 fraction bits. The hi word carries the
// sign, the exponent and the top 48 fraction bits; the lo word carries
// the remaining 64 fraction bits. The zero value is +0.
type Float128 struct {
	hi, lo uint64
}

// Some useful constants (all on the hi word):
//   bNN    2^NN
//   mNN    2^NN - 1

const b48 = uint64(0x0001000000000000) // implicit mantissa bit
const b63 = uint64(0x8000000000000000) // sign bit

const m48 = uint64(0x0000FFFFFFFFFFFF) // fraction mask
const m63 = uint64(0x7FFFFFFFFFFFFFFF)

const expBias = 16383
const expField = uint64(0x7FFF000000000000) // exponent field of Inf/NaN
const qnanBit = uint64(0x0000800000000000)  // quiet bit (top fraction bit)

// FromBits makes a Float128 from the two 64-bit words of its binary128
// encoding, most significant word first.
func FromBits(hi, lo uint64) Float128 {
	return Float128{hi, lo}
}

// Bits returns the two 64-bit words of the binary128 encoding of x,
// most significant word first.
func (x Float128) Bits() (hi, lo uint64) {
	return x.hi, x.lo
}

// FromWords32 makes a Float128 from the four 32-bit words of its
// encoding, most significant word first (w0 carries the sign, the
// exponent and the top 16 fraction bits).
func FromWords32(w0, w1, w2, w3 uint32) Float128 {
	return Float128{uint64(w0)<<32 | uint64(w1), uint64(w2)<<32 | uint64(w3)}
}

// Words32 returns the four 32-bit words of the encoding of x, most
// significant word first.
func (x Float128) Words32() (w0, w1, w2, w3 uint32) {
	return uint32(x.hi >> 32), uint32(x.hi), uint32(x.lo >> 32), uint32(x.lo)
}

// NaN returns the default quiet NaN.
func NaN() Float128 {
	return Float128{expField | qnanBit, 0}
}

// Inf returns an infinity: positive if sign >= 0, negative if
// sign < 0.
func Inf(sign int) Float128 {
	if sign < 0 {
		return Float128{b63 | expField, 0}
	}
	return Float128{expField, 0}
}

// IsNaN reports whether x is a NaN (quiet or signaling).
func (x Float128) IsNaN() bool {
	return x.hi&expField == expField && (x.hi&m48|x.lo) != 0
}

// IsInf reports whether x is an infinity, according to sign: positive
// infinity if sign > 0, negative infinity if sign < 0, either one if
// sign == 0.
func (x Float128) IsInf(sign int) bool {
	if x.hi&m63 != expField || x.lo != 0 {
		return false
	}
	return sign == 0 || (sign > 0) == (x.hi>>63 == 0)
}

// IsZero reports whether x is +0 or -0.
func (x Float128) IsZero() bool {
	return x.hi&m63|x.lo == 0
}

// Signbit reports whether the sign bit of x is set.
func (x Float128) Signbit() bool {
	return x.hi>>63 != 0
}

// Exponent field all ones (infinity or NaN).
func (x Float128) isInfOrNaN() bool {
	return x.hi&expField == expField
}

// 128-bit helpers on (hi, lo) word pairs.

func add128(xh, xl, yh, yl uint64) (uint64, uint64) {
	l, c := bits.Add64(xl, yl, 0)
	h, _ := bits.Add64(xh, yh, c)
	return h, l
}

func sub128(xh, xl, yh, yl uint64) (uint64, uint64) {
	l, bw := bits.Sub64(xl, yl, 0)
	h, _ := bits.Sub64(xh, yh, bw)
	return h, l
}

func lt128(xh, xl, yh, yl uint64) bool {
	return xh < yh || (xh == yh && xl < yl)
}

// Left shift of (h:l) by n bits, 0 <= n < 128.
func shl128(h, l uint64, n uint32) (uint64, uint64) {
	if n == 0 {
		return h, l
	}
	if n >= 64 {
		return l << (n - 64), 0
	}
	return h<<n | l>>(64-n), l << n
}

// Right shift of (h:l) by n bits, any n; every dropped non-zero bit is
// jammed into the least significant bit of the result (sticky bit).
func shr128jam(h, l uint64, n uint32) (uint64, uint64) {
	switch {
	case n == 0:
		return h, l
	case n < 64:
		st := uint64(0)
		if l<<(64-n) != 0 {
			st = 1
		}
		return h >> n, (h<<(64-n) | l>>n) | st
	case n < 128:
		st := uint64(0)
		if l != 0 || h<<(128-n) != 0 {
			st = 1
		}
		return 0, h>>(n-64) | st
	default:
		if h|l != 0 {
			return 0, 1
		}
		return 0, 0
	}
}

func clz128(h, l uint64) uint32 {
	if h != 0 {
		return uint32(bits.LeadingZeros64(h))
	}
	return 64 + uint32(bits.LeadingZeros64(l))
}

// Adjust (h:l) and e such that (h:l)*2^e is preserved and bit 127 is
// set. If, on input, (h:l) is 0, then on output it is still 0 and e is
// replaced with e-127.
func norm128(h, l uint64, e int32) (uint64, uint64, int32) {
	c := clz128(h, l|1)
	h, l = shl128(h, l, c)
	return h, l, e - int32(c)
}

// Make a value out of the sign bit s, exponent e, and mantissa (mh:ml).
// Rules:
//
//	only the low bit of s is used (0 or 1), other bits are ignored
//	2^114 <= m < 2^115; the two lowest bits are beyond the target
//	  precision, with the sticky bit jammed into the lowest one
//	value is (-1)^s * 2^e * m, with round-to-nearest-even applied
//
// Exponent overflow yields an infinity; values too small for a normal
// encoding are denormalized, with correct rounding (a rounding carry
// can promote the result back to the smallest normal).
func f128_build(s uint64, e int32, mh, ml uint64) Float128 {
	// Biased exponent of the finished value.
	eb := e + 16497
	if eb >= 0x7FFF {
		return Float128{s<<63 | expField, 0}
	}
	if eb < 1 {
		mh, ml = shr128jam(mh, ml, uint32(1-eb))
		eb = 1
		// m is now below 2^114: the packing below encodes an exponent
		// field of zero.
	}
	cc := uint64((uint32(0xC8) >> uint32(ml&7)) & 1)
	lo, c := bits.Add64(ml>>2|mh<<62, cc, 0)
	hi := s<<63 + uint64(eb-1)<<48 + mh>>2 + c
	return Float128{hi, lo}
}

// Split a finite non-zero value into its sign bit, an exponent e and
// an integer significand (mh:ml) in [2^112, 2^113), such that the
// value is (-1)^s * 2^e * m. Subnormals are normalized.
func f128_split(x Float128) (s uint64, e int32, mh, ml uint64) {
	s = x.hi >> 63
	ef := int32((x.hi >> 48) & 0x7FFF)
	mh = x.hi & m48
	ml = x.lo
	if ef == 0 {
		// Subnormal: shift the fraction up to the implicit bit
		// position.
		c := clz128(mh, ml) - 15
		mh, ml = shl128(mh, ml, c)
		e = 1 - int32(c) - expBias - 112
		return
	}
	mh |= b48
	e = ef - expBias - 112
	return
}

// FromFloat64 converts a float64 to a Float128. The conversion is
// exact; NaN payloads move to the top of the wider fraction.
func FromFloat64(v float64) Float128 {
	b := math.Float64bits(v)
	s := b >> 63
	ef := int32((b >> 52) & 0x7FF)
	f := b & (1<<52 - 1)
	if ef == 0x7FF {
		return Float128{s<<63 | expField | f>>4, f << 60}
	}
	if ef == 0 {
		if f == 0 {
			return Float128{s << 63, 0}
		}
		// Subnormal float64: normalize (every float64 subnormal is a
		// normal binary128 value).
		c := int32(bits.LeadingZeros64(f)) - 11
		f = f << uint32(c) &^ (1 << 52)
		ef = 1 - c
	}
	e := ef - 1023 + expBias
	return Float128{s<<63 | uint64(e)<<48 | f>>4, f << 60}
}

// Float64 converts x to a float64, rounding to nearest with ties to
// even. Out-of-range values become infinities; tiny values
// denormalize or flush to zero.
func (x Float128) Float64() float64 {
	s := x.hi >> 63
	if x.isInfOrNaN() {
		if x.hi&m48|x.lo == 0 {
			return math.Float64frombits(s<<63 | 0x7FF0000000000000)
		}
		// NaN: keep the top payload bits, force the quiet bit.
		p := (x.hi&m48)<<4 | x.lo>>60
		return math.Float64frombits(s<<63 | 0x7FF8000000000000 | p)
	}
	if x.IsZero() {
		return math.Float64frombits(s << 63)
	}
	_, e, mh, ml := f128_split(x)
	eb := e + 112 + 1023
	if eb >= 0x7FF {
		return math.Float64frombits(s<<63 | 0x7FF0000000000000)
	}
	// Collapse the significand to 55 bits (53 plus two rounding bits)
	// and pack the same way as the 128-bit build.
	_, ml = shr128jam(mh, ml, 58)
	if eb < 1 {
		_, ml = shr128jam(0, ml, uint32(1-eb))
		eb = 1
	}
	cc := uint64((uint32(0xC8) >> uint32(ml&7)) & 1)
	return math.Float64frombits(s<<63 + uint64(eb-1)<<52 + ml>>2 + cc)
}

// FromInt64 converts an integer to a Float128, exactly (the format
// holds 113 bits of significand).
func FromInt64(i int64) Float128 {
	s := uint64(i) >> 63
	m := uint64(i)
	if i < 0 {
		m = -m
	}
	if m == 0 {
		return Float128{}
	}
	p := 63 - int32(bits.LeadingZeros64(m))
	mh, ml := shl128(0, m, uint32(112-p))
	return Float128{s<<63 | uint64(p+expBias)<<48 | mh&m48, ml}
}

// Frexp breaks x into a fraction and an integral power of two, such
// that x = frac * 2^exp with 0.5 <= |frac| < 1. Zeros, infinities and
// NaNs are returned unchanged with a zero exponent. Subnormal inputs
// are normalized.
func (x Float128) Frexp() (frac Float128, exp int) {
	if x.IsZero() || x.isInfOrNaN() {
		return x, 0
	}
	s, e, mh, ml := f128_split(x)
	return Float128{s<<63 | uint64(expBias-1)<<48 | mh&^b48, ml}, int(e) + 113
}

// Ldexp returns x * 2^n, with overflow to infinity and gradual
// underflow.
func (x Float128) Ldexp(n int) Float128 {
	if x.IsZero() || x.isInfOrNaN() {
		return x
	}
	if n > 0x10000 {
		n = 0x10000
	} else if n < -0x10000 {
		n = -0x10000
	}
	s, e, mh, ml := f128_split(x)
	return f128_build(s, e+int32(n)-2, mh<<2|ml>>62, ml<<2)
}

// Cmp compares x and y numerically: -1 if x < y, 0 if x == y, +1 if
// x > y. Both zeros compare equal. If either operand is a NaN, the
// result is -2 (NaNs are unordered).
func (x Float128) Cmp(y Float128) int {
	if x.IsNaN() || y.IsNaN() {
		return -2
	}
	if x.IsZero() && y.IsZero() {
		return 0
	}
	sx := x.hi >> 63
	if sx != y.hi>>63 {
		if sx != 0 {
			return -1
		}
		return 1
	}
	c := 0
	if lt128(x.hi, x.lo, y.hi, y.lo) {
		c = -1
	} else if x.hi != y.hi || x.lo != y.lo {
		c = 1
	}
	if sx != 0 {
		c = -c
	}
	return c
}

// Eq reports whether x == y numerically. NaNs are equal to nothing,
// including themselves; both zeros are equal.
func (x Float128) Eq(y Float128) bool { return x.Cmp(y) == 0 }

// Lt reports whether x < y. False if either operand is a NaN.
func (x Float128) Lt(y Float128) bool { return x.Cmp(y) == -1 }

// Le reports whether x <= y. False if either operand is a NaN.
func (x Float128) Le(y Float128) bool {
	c := x.Cmp(y)
	return c == 0 || c == -1
}
