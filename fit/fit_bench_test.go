package fit

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
)

func generateBenchmarkSamples(n int, withDX bool) Samples {
	rng := rand.New(rand.NewSource(42))
	s := Samples{
		X:  make([]float64, n),
		Y:  make([]float64, n),
		DY: make([]float64, n),
	}
	if withDX {
		s.DX = make([]float64, n)
	}
	for i := range n {
		s.X[i] = float64(i)
		s.DY[i] = 0.1 + rng.Float64()
		s.Y[i] = 3*s.X[i] - 2 + rng.NormFloat64()*s.DY[i]
		if withDX {
			s.DX[i] = 0.05 * rng.Float64()
		}
	}

	return s
}

func BenchmarkFit(b *testing.B) {
	for _, size := range []int{10, 100, 1000, 10000} {
		for _, withDX := range []bool{false, true} {
			b.Run(fmt.Sprintf("Points_%d/dx_%t", size, withDX), func(b *testing.B) {
				s := generateBenchmarkSamples(size, withDX)
				b.ReportAllocs()
				b.ResetTimer()

				for b.Loop() {
					if _, err := FitSamples(s); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkFitEach(b *testing.B) {
	sets := make([]Samples, 64)
	for i := range sets {
		sets[i] = generateBenchmarkSamples(1000, true)
	}
	b.ResetTimer()

	for b.Loop() {
		if _, err := FitEach(context.Background(), sets); err != nil {
			b.Fatal(err)
		}
	}
}
