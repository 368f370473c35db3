package sampling_test

import (
	"testing"

	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/sampling"
)

// BenchmarkCategoricalIndex draws from 32 uneven weights.
func BenchmarkCategoricalIndex(b *testing.B) {
	weights := make([]float64, 32)
	for i := range weights {
		weights[i] = float64(i%5) + 0.5
	}
	rng := sampling.NewRand(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampling.CategoricalIndex(weights, rng); err != nil {
			b.Fatalf("CategoricalIndex failed: %v", err)
		}
	}
}
