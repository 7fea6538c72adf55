// Package numseq holds the built-in numeric lazy sequences.
// All of them use arbitrary-precision integers, since their values grow without bound.
package numseq

import (
	"math/big"

	"github.com/libreim/enumerators/pkg/lazyseq"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// Pair is the running state of the Fibonacci sequence.
type Pair struct {
	A, B *big.Int
}

// Fibonacci returns the sequence F(0)=0, F(1)=1, F(k)=F(k-1)+F(k-2).
func Fibonacci() *lazyseq.Source[Pair, *big.Int] {
	return lazyseq.New(Pair{A: big.NewInt(0), B: big.NewInt(1)}, fibonacciStep)
}

func fibonacciStep(p Pair) (*big.Int, Pair, error) {
	next := Pair{
		A: p.B,
		B: new(big.Int).Add(p.A, p.B),
	}
	return new(big.Int).Set(p.A), next, nil
}

// Primes returns the sequence of prime numbers, starting at 2.
// The state is the largest candidate checked so far.
func Primes() *lazyseq.Source[*big.Int, *big.Int] {
	return lazyseq.New(big.NewInt(1), primeStep)
}

func primeStep(last *big.Int) (*big.Int, *big.Int, error) {
	candidate := new(big.Int).Set(last)
	for {
		candidate.Add(candidate, one)
		if IsPrime(candidate) {
			return new(big.Int).Set(candidate), candidate, nil
		}
	}
}

// IsPrime tells whether c has no divisor in [2, isqrt(c)], using trial division.
// Values below 2 are not prime.
func IsPrime(c *big.Int) bool {
	if c.Cmp(two) < 0 {
		return false
	}
	var (
		limit = new(big.Int).Sqrt(c)
		rem   = new(big.Int)
	)
	for i := big.NewInt(2); i.Cmp(limit) <= 0; i.Add(i, one) {
		if rem.Rem(c, i).Cmp(zero) == 0 {
			return false
		}
	}
	return true
}

// Naturals counts up from the given number.
func Naturals(from int64) *lazyseq.Source[*big.Int, *big.Int] {
	return lazyseq.New(big.NewInt(from), func(n *big.Int) (*big.Int, *big.Int, error) {
		return new(big.Int).Set(n), new(big.Int).Add(n, one), nil
	})
}
