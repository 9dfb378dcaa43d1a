// Package search recovers every private-key pair consistent with the public
// transcript of an ecdh exchange by brute force.
//
// A pair (a, b) is consistent when a·G = K_A, b·G = K_B, and both a·K_B and
// b·K_A have y-coordinate equal to the published secret. The cost is
// O(order²) scalar multiplications, so Run refuses curves whose order exceeds
// MaxOrder.
package search
