// Package matrix_test provides benchmarks for the covariance path,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/collocation/matrix"
)

// benchShapes are (samples, systems) pairs typical of collocation inputs.
var benchShapes = [][2]int{{500, 3}, {5000, 4}, {20000, 8}}

// sinks to defeat dead-code elimination
var sinkM matrix.Matrix

func BenchmarkCovariance(b *testing.B) {
	b.ReportAllocs()
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("n=%d,m=%d", sh[0], sh[1]), func(b *testing.B) {
			X := RandFilledDense(b, sh[0], sh[1], 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				cov, _, err := matrix.Covariance(X)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = cov
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 11)
			B := RandFilledDense(b, n, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
