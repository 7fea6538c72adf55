package numseq_test

import (
	"math/big"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/libreim/enumerators/pkg/numseq"
)

func ints(vs []*big.Int) []int64 {
	var out = make([]int64, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Int64())
	}
	return out
}

func TestPrimes(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("first 10 primes", func(t *testcase.T) {
		vs, err := numseq.Primes().Take(10)
		assert.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, ints(vs))
	})

	s.Test("values are strictly increasing primes and no prime is skipped", func(t *testcase.T) {
		n := t.Random.IntBetween(1, 200)
		vs, err := numseq.Primes().Take(n)
		assert.NoError(t, err)
		assert.Equal(t, n, len(vs))

		var prev int64 = 1
		for _, v := range vs {
			assert.True(t, prev < v.Int64())
			assert.True(t, isPrimeNaive(v.Int64()))
			for c := prev + 1; c < v.Int64(); c++ {
				assert.False(t, isPrimeNaive(c), assert.Message("skipped prime"))
			}
			prev = v.Int64()
		}
	})

	s.Test("emitted values can be mutated without corrupting the sequence", func(t *testcase.T) {
		src := numseq.Primes()
		vs, err := src.Take(3)
		assert.NoError(t, err)
		for _, v := range vs {
			v.SetInt64(0)
		}
		next, err := src.Take(2)
		assert.NoError(t, err)
		assert.Equal(t, []int64{7, 11}, ints(next))
	})

	s.Test("DetectFirst finds the first prime above a threshold", func(t *testcase.T) {
		threshold := big.NewInt(1000)
		v, err := numseq.Primes().DetectFirst(func(p *big.Int) bool { return p.Cmp(threshold) > 0 })
		assert.NoError(t, err)
		assert.Equal(t, int64(1009), v.Int64())
	})
}

func isPrimeNaive(n int64) bool {
	if n < 2 {
		return false
	}
	for i := int64(2); i < n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func TestIsPrime(t *testing.T) {
	for n, exp := range map[int64]bool{
		-7: false,
		0:  false,
		1:  false,
		2:  true,
		3:  true,
		4:  false,
		9:  false,
		25: false,
		29: true,
		49: false,
		97: true,
	} {
		assert.Equal(t, exp, numseq.IsPrime(big.NewInt(n)), assert.Message(big.NewInt(n).String()))
	}
}

func TestFibonacci(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("first terms", func(t *testcase.T) {
		vs, err := numseq.Fibonacci().Take(12)
		assert.NoError(t, err)
		assert.Equal(t, []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89}, ints(vs))
	})

	s.Test("0-indexed terms 199 and 200", func(t *testcase.T) {
		vs, err := numseq.Fibonacci().Take(201)
		assert.NoError(t, err)
		assert.Equal(t, 201, len(vs))
		assert.Equal(t, "173402521172797813159685037284371942044301", vs[199].String())
		assert.Equal(t, "280571172992510140037611932413038677189525", vs[200].String())
	})

	s.Test("every term follows the recurrence", func(t *testcase.T) {
		n := t.Random.IntBetween(3, 300)
		vs, err := numseq.Fibonacci().Take(n)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), vs[0].Int64())
		assert.Equal(t, int64(1), vs[1].Int64())
		for k := 2; k < n; k++ {
			sum := new(big.Int).Add(vs[k-1], vs[k-2])
			assert.Equal(t, sum.String(), vs[k].String())
		}
	})

	s.Test("At matches Take", func(t *testcase.T) {
		idx := t.Random.IntBetween(0, 100)
		v, err := numseq.Fibonacci().At(idx)
		assert.NoError(t, err)
		vs, err := numseq.Fibonacci().Take(idx + 1)
		assert.NoError(t, err)
		assert.Equal(t, vs[idx].String(), v.String())
	})

	s.Test("emitted values can be mutated without corrupting the sequence", func(t *testcase.T) {
		src := numseq.Fibonacci()
		vs, err := src.Take(t.Random.IntBetween(2, 20))
		assert.NoError(t, err)
		for _, v := range vs {
			v.Add(v, big.NewInt(42))
		}
		exp, err := numseq.Fibonacci().Take(len(vs) + 3)
		assert.NoError(t, err)
		next, err := src.Take(3)
		assert.NoError(t, err)
		assert.Equal(t, ints(exp[len(vs):]), ints(next))
	})

	s.Test("Take(0) does not advance the state", func(t *testcase.T) {
		src := numseq.Fibonacci()
		vs, err := src.Take(0)
		assert.NoError(t, err)
		assert.Empty(t, vs)
		assert.Equal(t, 0, src.Pulled())
		vs, err = src.Take(2)
		assert.NoError(t, err)
		assert.Equal(t, []int64{0, 1}, ints(vs))
	})
}

func TestNaturals(t *testing.T) {
	vs, err := numseq.Naturals(5).Take(4)
	assert.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 7, 8}, ints(vs))
}
