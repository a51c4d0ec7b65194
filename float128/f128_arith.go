package float128

import (
	"math/bits"
)

// Emulated binary128 arithmetic. All operations round to nearest with
// ties to even and implement the usual IEEE-754 special-value rules:
// NaNs propagate (first NaN operand, quieted, payload preserved),
// invalid combinations (inf - inf, 0 * inf, 0/0, inf/inf) yield the
// default NaN, and division of a non-zero finite value by zero yields
// a correctly signed infinity.

// Return the first NaN operand, quieted, payload preserved.
func propagateNaN(x, y Float128) Float128 {
	if x.IsNaN() {
		return Float128{x.hi | qnanBit, x.lo}
	}
	return Float128{y.hi | qnanBit, y.lo}
}

// Addition.
func f128_add(x, y Float128) Float128 {
	if x.IsNaN() || y.IsNaN() {
		return propagateNaN(x, y)
	}
	if x.isInfOrNaN() {
		if y.isInfOrNaN() && (x.hi^y.hi)>>63 != 0 {
			// inf - inf
			return NaN()
		}
		return x
	}
	if y.isInfOrNaN() {
		return y
	}
	if x.IsZero() {
		if y.IsZero() {
			// The sum of two zeros is -0 only when both are -0.
			return Float128{x.hi & y.hi & b63, 0}
		}
		return y
	}
	if y.IsZero() {
		return x
	}

	sx, ex, xh, xl := f128_split(x)
	sy, ey, yh, yl := f128_split(y)

	// Order the operands such that x has the greater magnitude; the
	// result then takes the sign of x. Since both significands are
	// normalized to the same range, magnitude order is (e, m) order.
	if ex < ey || (ex == ey && lt128(xh, xl, yh, yl)) {
		sx, sy = sy, sx
		ex, ey = ey, ex
		xh, yh = yh, xh
		xl, yl = yl, xl
	}

	// Scale the significands up by 2^3 to make room for rounding, and
	// align y on x. The shifted-out bits of y collapse into a sticky
	// bit, which alignment and renormalization below cannot promote
	// past the guard positions.
	xh, xl = shl128(xh, xl, 3)
	yh, yl = shl128(yh, yl, 3)
	e := ex - 3
	yh, yl = shr128jam(yh, yl, uint32(ex-ey))

	var zh, zl uint64
	if sx == sy {
		zh, zl = add128(xh, xl, yh, yl)
	} else {
		zh, zl = sub128(xh, xl, yh, yl)
		if zh|zl == 0 {
			// Exact cancellation rounds to +0.
			return Float128{}
		}
	}

	// Normalize to [2^127, 2^128), then shrink back to the build range
	// [2^114, 2^115) with a sticky bit.
	zh, zl, e = norm128(zh, zl, e)
	st := uint64(0)
	if zl&0x1FFF != 0 {
		st = 1
	}
	zl = zl>>13 | zh<<51 | st
	zh = zh >> 13
	return f128_build(sx, e+13, zh, zl)
}

// Subtraction.
func f128_sub(x, y Float128) Float128 {
	return f128_add(x, f128_neg(y))
}

// Negation.
func f128_neg(x Float128) Float128 {
	return Float128{x.hi ^ b63, x.lo}
}

// Absolute value.
func f128_abs(x Float128) Float128 {
	return Float128{x.hi & m63, x.lo}
}

// Halving. For values whose half stays normal this is a bare exponent
// decrement; subnormal results go through the rounding path.
func f128_half(x Float128) Float128 {
	ef := (x.hi >> 48) & 0x7FFF
	if ef >= 2 && ef < 0x7FFF {
		return Float128{x.hi - b48, x.lo}
	}
	if x.IsZero() || x.isInfOrNaN() {
		return x
	}
	s, e, mh, ml := f128_split(x)
	return f128_build(s, e-3, mh<<2|ml>>62, ml<<2)
}

// Doubling.
func f128_double(x Float128) Float128 {
	if x.IsZero() || x.isInfOrNaN() {
		return x
	}
	s, e, mh, ml := f128_split(x)
	return f128_build(s, e-1, mh<<2|ml>>62, ml<<2)
}

// Full 256-bit product of two 128-bit values, as four 64-bit limbs,
// most significant first.
func mul256(xh, xl, yh, yl uint64) (p3, p2, p1, p0 uint64) {
	var c uint64
	h, l := bits.Mul64(xl, yl)
	p0 = l
	p1 = h
	h, l = bits.Mul64(xh, yl)
	p1, c = bits.Add64(p1, l, 0)
	p2, _ = bits.Add64(h, 0, c)
	h, l = bits.Mul64(xl, yh)
	p1, c = bits.Add64(p1, l, 0)
	p2, c = bits.Add64(p2, h, c)
	p3 = c
	h, l = bits.Mul64(xh, yh)
	p2, c = bits.Add64(p2, l, 0)
	p3, _ = bits.Add64(p3, h, c)
	return
}

// Multiplication.
func f128_mul(x, y Float128) Float128 {
	if x.IsNaN() || y.IsNaN() {
		return propagateNaN(x, y)
	}
	s := (x.hi ^ y.hi) >> 63
	if x.isInfOrNaN() || y.isInfOrNaN() {
		if x.IsZero() || y.IsZero() {
			// 0 * inf
			return NaN()
		}
		return Float128{s<<63 | expField, 0}
	}
	if x.IsZero() || y.IsZero() {
		return Float128{s << 63, 0}
	}
	_, ex, xh, xl := f128_split(x)
	_, ey, yh, yl := f128_split(y)

	// 113x113-bit product over four limbs; the result is in
	// [2^224, 2^226).
	p3, p2, p1, p0 := mul256(xh, xl, yh, yl)

	// Collapse to the build range [2^114, 2^115): shift right by 110
	// with a sticky bit, then by one more position if needed (lsb
	// stays sticky).
	st := uint64(0)
	if p0 != 0 || p1&0x3FFFFFFFFFFF != 0 {
		st = 1
	}
	zl := p1>>46 | p2<<18 | st
	zh := p2>>46 | p3<<18
	es := int32(0)
	if zh >= 1<<51 {
		es = 1
		zl = zl>>1 | zh<<63 | zl&1
		zh >>= 1
	}
	return f128_build(s, ex+ey+110+es, zh, zl)
}

// Division, bit by bit.
func f128_div(x, y Float128) Float128 {
	if x.IsNaN() || y.IsNaN() {
		return propagateNaN(x, y)
	}
	s := (x.hi ^ y.hi) >> 63
	if x.isInfOrNaN() {
		if y.isInfOrNaN() {
			// inf / inf
			return NaN()
		}
		return Float128{s<<63 | expField, 0}
	}
	if y.isInfOrNaN() {
		return Float128{s << 63, 0}
	}
	if y.IsZero() {
		if x.IsZero() {
			// 0 / 0: the invalid-operation NaN.
			return NaN()
		}
		// x / 0: a correctly signed infinity.
		return Float128{s<<63 | expField, 0}
	}
	if x.IsZero() {
		return Float128{s << 63, 0}
	}

	_, ex, xh, xl := f128_split(x)
	_, ey, yh, yl := f128_split(y)
	e := ex - ey - 114

	// Pre-align the dividend into [y, 2y) so that the quotient has a
	// leading 1 and the loop produces exactly 114 further bits (112
	// fraction bits plus two rounding bits).
	if lt128(xh, xl, yh, yl) {
		xh = xh<<1 | xl>>63
		xl <<= 1
		e -= 1
	}
	rh, rl := sub128(xh, xl, yh, yl)
	qh, ql := uint64(0), uint64(1)
	for i := 0; i < 114; i++ {
		rh = rh<<1 | rl>>63
		rl <<= 1
		qh = qh<<1 | ql>>63
		ql <<= 1
		if !lt128(rh, rl, yh, yl) {
			rh, rl = sub128(rh, rl, yh, yl)
			ql |= 1
		}
	}
	// A non-zero remainder sets the sticky bit.
	if rh|rl != 0 {
		ql |= 1
	}
	return f128_build(s, e, qh, ql)
}

// Add returns x + y.
func (x Float128) Add(y Float128) Float128 { return f128_add(x, y) }

// Sub returns x - y.
func (x Float128) Sub(y Float128) Float128 { return f128_sub(x, y) }

// Mul returns x * y.
func (x Float128) Mul(y Float128) Float128 { return f128_mul(x, y) }

// Div returns x / y.
func (x Float128) Div(y Float128) Float128 { return f128_div(x, y) }

// Neg returns -x.
func (x Float128) Neg() Float128 { return f128_neg(x) }

// Abs returns the absolute value of x.
func (x Float128) Abs() Float128 { return f128_abs(x) }
