// Package curvegen searches for new prime-order curves.
//
// Each attempt takes a random safe prime p from the prime table and random
// coefficients A, B in [1, MaxCoefficient], then counts the points of
// y² = x³ + Ax + B over F_p. Singular curves and curves of composite order
// are discarded and the search retries.
package curvegen
