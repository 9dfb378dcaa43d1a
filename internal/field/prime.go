package field

import "math/big"

// smallPrimes are tried before the odd-divisor walk.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41,
	43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// trialDivisionBits bounds the odd-divisor walk to values whose square root
// fits comfortably in a loop; larger inputs go to Miller-Rabin.
const trialDivisionBits = 48

const millerRabinRounds = 32

// IsPrime reports whether n is prime. Values up to 2^48 are decided by trial
// division (small primes, then odd divisors up to √n); larger values fall back
// to big.Int.ProbablyPrime.
func IsPrime(n *big.Int) bool {
	if n.Cmp(two) < 0 {
		return false
	}
	m := new(big.Int)
	for _, sp := range smallPrimes {
		p := big.NewInt(sp)
		if n.Cmp(p) == 0 {
			return true
		}
		if m.Mod(n, p).Sign() == 0 {
			return false
		}
	}
	if n.BitLen() > trialDivisionBits {
		return n.ProbablyPrime(millerRabinRounds)
	}

	v := n.Uint64()
	for d := uint64(101); d*d <= v; d += 2 {
		if v%d == 0 {
			return false
		}
	}
	return true
}
