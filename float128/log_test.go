package float128

import (
	"math/big"
	"testing"
)

// Tolerance for the relative error of Log: the documented peak is
// 1.2e-34 (rms 4.1e-35), plus an allowance for the rounding of the
// reference comparison itself.
var logErrBound = big.NewFloat(1.5e-34)

// Check Log(x) against the big.Float reference, for finite positive x.
func checkLog(t *testing.T, x Float128) {
	ref := refLog(bigFromF128(x))
	got := bigFromF128(Log(x))
	diff := new(big.Float).SetPrec(logRefPrec).Sub(got, ref)
	if diff.Sign() == 0 {
		return
	}
	if ref.Sign() == 0 {
		t.Fatalf("ERR log(0x%016X_%016X): got %g, want 0", x.hi, x.lo, got)
	}
	rel := diff.Abs(diff)
	rel.Quo(rel, new(big.Float).SetPrec(logRefPrec).Abs(ref))
	if rel.Cmp(logErrBound) > 0 {
		t.Fatalf("ERR log(0x%016X_%016X): relative error %g\n",
			x.hi, x.lo, rel)
	}
}

func TestLogSpecials(t *testing.T) {
	// log(+0) = log(-0) = -infinity.
	eqf(t, Log(pzero), Inf(-1))
	eqf(t, Log(nzero), Inf(-1))

	// log(x < 0) = NaN, for every negative class.
	for _, x := range []Float128{FromInt64(-1), FromFloat64(-0.5),
		f128_neg(minSub), f128_neg(maxFinite), Inf(-1)} {
		if !Log(x).IsNaN() {
			t.Fatalf("ERR log(0x%016X_%016X) is not NaN", x.hi, x.lo)
		}
	}

	// log(+infinity) = +infinity.
	eqf(t, Log(Inf(1)), Inf(1))

	// NaN inputs: quiet payloads survive self-addition bit for bit,
	// signaling payloads come back quieted.
	qnan := Float128{expField | qnanBit | 0xBEEF, 0xCAFE}
	snan := Float128{expField | 0xBEEF, 0xCAFE}
	eqf(t, Log(qnan), qnan)
	eqf(t, Log(snan), Float128{snan.hi | qnanBit, snan.lo})
	nqnan := Float128{qnan.hi | b63, qnan.lo}
	eqf(t, Log(nqnan), nqnan)

	// log(1) is exactly +0, not a tiny residual.
	eqf(t, Log(one), pzero)
}

func TestLogAccuracy(t *testing.T) {
	r := newShakeRNG([]byte("log accuracy"))

	// The two documented accuracy bins.
	n := 0
	for n < 1500 {
		// [0.875, 1.125]: exponents -1 and 0, rejecting the parts of
		// each octave outside the bin.
		x := rand_f128_pos(r, -1, 0)
		if x.Cmp(FromFloat64(0.875)) < 0 || x.Cmp(FromFloat64(1.125)) > 0 {
			continue
		}
		checkLog(t, x)
		n++
	}
	for i := 0; i < 1500; i++ {
		// [0.125, 8): exponents -3 to 2.
		checkLog(t, rand_f128_pos(r, -3, 2))
	}

	// The full exponent range, including values far from 1 where the
	// e*ln2 split carries the result.
	for i := 0; i < 1000; i++ {
		checkLog(t, rand_f128_pos(r, -16382, 16382))
	}

	// Subnormal arguments.
	for i := 0; i < 200; i++ {
		x := Float128{r.next_u64() & m48, r.next_u64()}
		if x.IsZero() {
			continue
		}
		checkLog(t, x)
	}
	checkLog(t, minSub)
	checkLog(t, minNormal)
	checkLog(t, maxFinite)
	checkLog(t, FromInt64(2))
	checkLog(t, FromFloat64(2.718281828459045))
}

func TestLogNarrowBand(t *testing.T) {
	r := newShakeRNG([]byte("log band"))

	// The override interval [0.9921875, 1.0078125], where z = x - 1 is
	// used directly: above 1 ...
	for i := 0; i < 1500; i++ {
		frac := r.next_u64() & (1<<41 - 1) // below 1 + 1/128
		x := Float128{one.hi | frac, r.next_u64()}
		if x == one {
			continue
		}
		checkLog(t, x)
	}
	// ... and below 1.
	for i := 0; i < 1500; i++ {
		frac := bandLow.hi&m48 | r.next_u64()&(1<<42-1)
		x := Float128{bandLow.hi&^m48 | frac, r.next_u64()}
		checkLog(t, x)
	}

	// The band edges themselves, inside and out.
	for _, x := range []Float128{bandLow, bandHigh} {
		checkLog(t, x)
		checkLog(t, next_up(x))
		checkLog(t, next_down(x))
	}
	// Neighbors of 1 take the z = x - 1 branch with a one-ulp z.
	checkLog(t, next_up(one))
	checkLog(t, next_down(one))
}

// Next representable value up (positive finite input).
func next_up(x Float128) Float128 {
	lo := x.lo + 1
	hi := x.hi
	if lo == 0 {
		hi++
	}
	return Float128{hi, lo}
}

// Next representable value down (positive finite input).
func next_down(x Float128) Float128 {
	lo := x.lo - 1
	hi := x.hi
	if x.lo == 0 {
		hi--
	}
	return Float128{hi, lo}
}

func TestLogMonotonic(t *testing.T) {
	// Dense ladders of adjacent representable values across the
	// sensitive points: the reduction grid tier change, table cell
	// boundaries, the narrow-band edges and 1 itself. Within a ladder
	// the output must never decrease.
	starts := []Float128{
		FromFloat64(0.703125),
		FromFloat64(1.40625),
		FromFloat64(0.84765625), // t boundary inside the table
		bandLow,
		bandHigh,
		one,
		FromFloat64(2),
	}
	for _, s := range starts {
		x := s
		for i := 0; i < 300; i++ {
			x = next_down(x)
		}
		prev := Log(x)
		for i := 0; i < 600; i++ {
			x = next_up(x)
			y := Log(x)
			if prev.Cmp(y) > 0 {
				t.Fatalf("ERR not monotonic at 0x%016X_%016X", x.hi, x.lo)
			}
			prev = y
		}
	}

	// Strict increase over multiplicatively separated points: with a
	// ratio of 1 + 2^-20 the true difference in log always exceeds
	// one ulp of the result over this range.
	step := Float128{one.hi | 1<<28, 0} // 1 + 2^-20
	x := FromFloat64(0.01)
	prev := Log(x)
	for i := 0; i < 2000; i++ {
		x = f128_mul(x, step)
		y := Log(x)
		if prev.Cmp(y) >= 0 {
			t.Fatalf("ERR not strictly increasing at 0x%016X_%016X", x.hi, x.lo)
		}
		prev = y
	}
}

func TestLogScaling(t *testing.T) {
	// log(x * 2^n) = log(x) + n*log(2), with the scaling applied
	// exactly through the exponent field.
	r := newShakeRNG([]byte("log scaling"))
	for i := 0; i < 500; i++ {
		x := rand_f128_pos(r, -2, 1)
		n := int(r.next_u64()%20001) - 10000
		xs := x.Ldexp(n)
		if xs.IsZero() || xs.isInfOrNaN() {
			continue
		}

		a := bigFromF128(Log(xs))
		b := bigFromF128(Log(x))
		nl2 := new(big.Float).SetPrec(logRefPrec).SetInt64(int64(n))
		nl2.Mul(nl2, refLn2())

		diff := new(big.Float).SetPrec(logRefPrec).Sub(a, b)
		diff.Sub(diff, nl2)
		diff.Abs(diff)

		// Both logs carry the relative bound; scale it by the larger
		// magnitude involved.
		mag := new(big.Float).SetPrec(logRefPrec).Abs(a)
		if m2 := new(big.Float).SetPrec(logRefPrec).Abs(b); mag.Cmp(m2) < 0 {
			mag = m2
		}
		mag.Add(mag, big.NewFloat(1))
		bound := new(big.Float).SetPrec(logRefPrec).SetFloat64(3e-34)
		bound.Mul(bound, mag)
		if diff.Cmp(bound) > 0 {
			t.Fatalf("ERR scaling law at n=%d, x=0x%016X_%016X: off by %g",
				n, x.hi, x.lo, diff)
		}
	}
}

func TestLogGridContinuity(t *testing.T) {
	// Walk across every table cell boundary: the index ik changes by
	// one while the output must stay within the error bound of the
	// smooth reference on both sides.
	for ik := int32(27); ik <= 91; ik++ {
		// Boundary between cells ik-1 and ik in the high tier lives
		// at significand (0xfe00 + (ik << 10)) / 2^17, value scaled
		// into [0.703125, 1.40625).
		mm := uint64(0xfe00) + uint64(ik)<<10
		if mm < 0x16800 || mm >= 0x20000 {
			continue
		}
		x := Float128{uint64(expBias-1)<<48 | (mm-0x10000)<<32, 0}
		for i := 0; i < 3; i++ {
			checkLog(t, x)
			x = next_down(x)
		}
		x = next_up(x)
		for i := 0; i < 3; i++ {
			checkLog(t, x)
			x = next_up(x)
		}
	}
	// The tier threshold itself (significand 0x16800, value 0.703125).
	x := FromFloat64(0.703125)
	for i := 0; i < 4; i++ {
		checkLog(t, x)
		x = next_down(x)
	}
	x = FromFloat64(0.703125)
	for i := 0; i < 4; i++ {
		x = next_up(x)
		checkLog(t, x)
	}
}
