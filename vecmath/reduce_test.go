// Copyright 2026 crfsuite Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func testDot[T Floats](t *testing.T, eps float64) {
	tests := []struct {
		name string
		x, y []T
		n    int
		want float64
	}{
		{"basic", []T{1, 2, 3}, []T{4, 5, 6}, 3, 32},
		{"self", []T{1, 2, 3}, []T{1, 2, 3}, 3, 14},
		{"with negatives", []T{1, -2, 3}, []T{-4, 5, 6}, 3, 4},
		{"partial n", []T{1, 2, 3}, []T{4, 5, 6}, 2, 14},
		{"empty", []T{}, []T{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.x, tt.y, tt.n)
			require.InDelta(t, tt.want, float64(got), eps)

			// commutativity: exact, same products summed in the same order
			require.Equal(t, got, Dot(tt.y, tt.x, tt.n))
		})
	}
}

func TestDot(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testDot[float32](t, epsilon32) })
	t.Run("float64", func(t *testing.T) { testDot[float64](t, epsilon64) })
}

func testSum[T Floats](t *testing.T, eps float64) {
	tests := []struct {
		name string
		x    []T
		n    int
		want float64
	}{
		{"basic", []T{1, 2, 3}, 3, 6},
		{"five threes", []T{3, 3, 3, 3, 3}, 5, 15},
		{"cancellation", []T{5, -5, 2}, 3, 2},
		{"partial n", []T{1, 2, 3}, 1, 1},
		{"empty", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, float64(Sum(tt.x, tt.n)), eps)
		})
	}
}

func TestSum(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testSum[float32](t, epsilon32) })
	t.Run("float64", func(t *testing.T) { testSum[float64](t, epsilon64) })
}

func testSumLog[T Floats](t *testing.T, eps float64) {
	x := []T{0.5, 1, 2, 3, 10}

	var want float64
	for _, v := range x {
		want += math.Log(float64(v))
	}
	require.InDelta(t, want, float64(SumLog(x, len(x))), eps)

	// n == 0
	require.Zero(t, SumLog(x, 0))
}

func TestSumLog(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testSumLog[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testSumLog[float64](t, epsilon64) })
}

func TestSumLogNonPositive(t *testing.T) {
	// log(0) = -Inf propagates into the sum
	require.True(t, math.IsInf(SumLog([]float64{1, 0, 2}, 3), -1))

	// log of a negative value is NaN and poisons the sum
	require.True(t, math.IsNaN(SumLog([]float64{1, -1, 2}, 3)))
}
