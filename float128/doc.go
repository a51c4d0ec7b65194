// This package implements IEEE-754 binary128 ("quadruple precision")
// floating-point values in software, along with a natural logarithm
// for that format.
//
// Go has no native 128-bit floating-point type, so values are carried
// as a pair of 64-bit words holding the standard binary128 encoding
// (1 sign bit, 15 exponent bits with bias 16383, 112 fraction bits),
// and all arithmetic is emulated with integer operations. The emulated
// operations implement full IEEE-754 semantics: round to nearest with
// ties to even, gradual underflow, signed zeros and infinities, and
// NaN propagation with payload preservation.
//
// The [Log] function is the main point of the package. It computes
// ln(x) to nearly the full precision of the format (peak relative
// error around 1.2e-34), using a lookup table of logarithms tabulated
// at intervals of 1/128 over [0.703125, 1.40625), a degree-15 minimax
// polynomial for the reduced argument, and a carefully ordered final
// summation with ln(2) split into two parts so that the exponent
// contribution does not absorb the low-order bits of the smaller
// terms.
//
// All functions are pure: no allocation, no shared mutable state, no
// I/O. The constant tables are compile-time data; the package is safe
// for concurrent use from any number of goroutines without
// synchronization.
package float128
