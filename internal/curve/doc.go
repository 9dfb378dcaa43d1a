// Package curve implements the group of points of a short Weierstrass curve
// y² = x³ + Ax + B over a prime field.
//
// # Lifecycle
//
// A Curve moves through three states. The zero value is uninitialised and
// every group operation on it fails with ErrEngineNotReady. New and
// FromParams validate the parameters (prime modulus, non-zero discriminant)
// and then establish a prime group order, either by counting the points
// (New) or by checking a tabulated order (FromParams). Only a curve that
// passes every check is returned, and it is Ready.
//
// # Points
//
// Point is an immutable value. The zero Point is the point at infinity, the
// group identity. NewPoint copies its coordinates and the accessors return
// copies, so a Point can be shared freely between goroutines.
//
// # Errors
//
//   - ErrInvalidModulus: p is not a prime greater than 3
//   - ErrSingularCurve: 4A³ + 27B² ≡ 0 (mod p)
//   - ErrCompositeOrder: the group order is not prime
//   - ErrOrderMismatch: a tabulated order is inconsistent with the curve
//   - ErrEngineNotReady: group operation on an unvalidated Curve
//   - ErrInvalidScalar: negative scalar
//   - ErrNotOnCurve, ErrInvalidEncoding: rejected point encodings
//
// Inside a Ready curve every non-zero field element is invertible, so a
// failed inversion in the group law is a broken invariant and panics.
//
// Nothing here runs in constant time.
package curve
