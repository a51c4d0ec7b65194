package float128

import (
	"encoding/binary"
	"math/big"
)

// Conversions between Float128 and math/big.Float, used to check the
// emulated arithmetic and the logarithm against a trusted reference.
// Go has no native binary128, so big.Float at 113-bit precision with
// ToNearestEven rounding plays the role a hardware unit would play.

const refPrec = 113

// Exact conversion of a finite Float128 to a big.Float.
func bigFromF128(x Float128) *big.Float {
	if x.IsZero() {
		f := new(big.Float)
		if x.Signbit() {
			f.Neg(f)
		}
		return f
	}
	s, e, mh, ml := f128_split(x)
	m := new(big.Int).SetUint64(mh)
	m.Lsh(m, 64)
	m.Or(m, new(big.Int).SetUint64(ml))
	f := new(big.Float).SetPrec(refPrec).SetInt(m)
	f.SetMantExp(f, int(e))
	if s != 0 {
		f.Neg(f)
	}
	return f
}

// Conversion of a big.Float back to a Float128. The callers only pass
// values already rounded to 113 bits with exponents in the normal
// range, so the conversion is exact.
func f128FromBig(f *big.Float) Float128 {
	if f.Sign() == 0 {
		if f.Signbit() {
			return Float128{b63, 0}
		}
		return Float128{}
	}
	mant := new(big.Float)
	exp := f.MantExp(mant)
	mant.SetMantExp(mant, 113) // |mant| now integral, in [2^112, 2^113)
	mi, _ := mant.Int(nil)
	s := uint64(0)
	if mi.Sign() < 0 {
		s = 1
		mi.Neg(mi)
	}
	var buf [16]byte
	mi.FillBytes(buf[:])
	mh := binary.BigEndian.Uint64(buf[0:8])
	ml := binary.BigEndian.Uint64(buf[8:16])
	return Float128{s<<63 | uint64(exp+16382)<<48 | mh&m48, ml}
}

const logRefPrec = 256

// log(1-y) for 0 < y <= 0.5, by the Maclaurin series
// -y - y^2/2 - y^3/3 - ..., at logRefPrec bits.
func refLogSeries(y *big.Float) *big.Float {
	sum := new(big.Float).SetPrec(logRefPrec)
	yN := new(big.Float).SetPrec(logRefPrec).Set(y)
	term := new(big.Float).SetPrec(logRefPrec)
	n := new(big.Float).SetPrec(logRefPrec)
	for i := 1; ; i++ {
		term.Quo(yN, n.SetInt64(int64(i)))
		sum.Sub(sum, term)
		if term.MantExp(nil) < -(logRefPrec + 24) {
			return sum
		}
		yN.Mul(yN, y)
	}
}

var refLn2Cache *big.Float

// ln(2) at logRefPrec bits.
func refLn2() *big.Float {
	if refLn2Cache == nil {
		half := new(big.Float).SetPrec(logRefPrec).SetFloat64(0.5)
		refLn2Cache = new(big.Float).Neg(refLogSeries(half))
	}
	return refLn2Cache
}

// Natural logarithm of a finite positive x, at about logRefPrec bits:
// split off the exponent, then run the series on the mantissa.
func refLog(x *big.Float) *big.Float {
	mant := new(big.Float).SetPrec(logRefPrec)
	exp := x.MantExp(mant) // mant in [0.5, 1)
	one := new(big.Float).SetPrec(logRefPrec).SetInt64(1)
	y := new(big.Float).SetPrec(logRefPrec).Sub(one, mant)
	var sum *big.Float
	if y.Sign() == 0 {
		sum = new(big.Float).SetPrec(logRefPrec)
	} else {
		sum = refLogSeries(y)
	}
	e := new(big.Float).SetPrec(logRefPrec).SetInt64(int64(exp))
	e.Mul(e, refLn2())
	return sum.Add(sum, e)
}
