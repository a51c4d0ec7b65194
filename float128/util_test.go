package float128

import (
	sha3 "golang.org/x/crypto/sha3"
)

// A deterministic PRNG over SHAKE256, so that the randomized sweeps
// below are reproducible from their seed strings.
type shakeRNG struct {
	state sha3.ShakeHash
	buf   [136]byte
	ptr   int
}

// Create a new PRNG initialized with the provided seed.
func newShakeRNG(seed []byte) *shakeRNG {
	r := new(shakeRNG)
	r.state = sha3.NewShake256()
	r.state.Write(seed)
	r.ptr = len(r.buf)
	return r
}

// Get next 64-bit value from the PRNG.
func (r *shakeRNG) next_u64() uint64 {
	if r.ptr >= len(r.buf)-7 {
		r.state.Read(r.buf[:])
		r.ptr = 0
	}
	x := uint64(0)
	for i := 0; i < 8; i++ {
		x += uint64(r.buf[r.ptr+i]) << (i << 3)
	}
	r.ptr += 8
	return x
}

// Random finite non-zero value with a biased exponent within +-2000 of
// the bias, so that emulated results in the sweeps stay clear of
// overflow and underflow.
func rand_f128(r *shakeRNG) Float128 {
	hi := r.next_u64()
	lo := r.next_u64()
	e := (hi>>48&0x7FFF)%4001 + (expBias - 2000)
	hi = hi&0x8000FFFFFFFFFFFF | e<<48
	return Float128{hi, lo}
}

// Random positive finite value with an unbiased exponent in
// [emin, emax] and a uniform fraction.
func rand_f128_pos(r *shakeRNG, emin, emax int) Float128 {
	hi := r.next_u64()
	lo := r.next_u64()
	span := uint64(emax - emin + 1)
	e := uint64(int64(expBias)+int64(emin)) + (hi>>48&0x7FFF)%span
	hi = hi&0x0000FFFFFFFFFFFF | e<<48
	return Float128{hi, lo}
}
