// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sparsedist/matrix"
)

func benchTriangle(b *testing.B, n int) (*matrix.Triangular, []string) {
	b.Helper()
	tri, err := matrix.NewTriangular(n)
	if err != nil {
		b.Fatal(err)
	}
	labels := make([]string, n)
	var i, j int
	for i = 0; i < n; i++ {
		labels[i] = fmt.Sprintf("cell%05d", i)
		for j = 0; j <= i; j++ {
			if err = tri.Set(i, j, float64(i-j)/float64(n)); err != nil {
				b.Fatal(err)
			}
		}
	}

	return tri, labels
}

func BenchmarkAssemble(b *testing.B) {
	for _, n := range []int{64, 512, 2048} {
		tri, labels := benchTriangle(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Assemble(labels, tri); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
