// Package field implements the integer arithmetic modulo a prime that the
// curve engine is built on.
//
// # Contents
//
//   - Reduction into [0, p) for possibly negative values (Reduce)
//   - Square-and-multiply exponentiation (Exp)
//   - Extended Euclid and modular inverses (ExtendedGCD, Inverse)
//   - Euler's criterion and square roots for p ≡ 3 (mod 4)
//     (IsQuadraticResidue, Sqrt)
//   - Trial-division primality (IsPrime)
//
// # Errors
//
// ErrNoInverse is returned when an inverse is requested for an element that
// shares a factor with the modulus. ErrUnsupportedModulus is returned by Sqrt
// for moduli that are not 3 mod 4.
//
// All functions allocate their results and never modify their arguments.
package field
