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

import "math"

// Dot returns the dot product of the first n elements of x and y.
//
// Accumulates left to right in index order; returns 0 for n == 0.
func Dot[T Floats](x, y []T, n int) T {
	var s T
	for i := 0; i < n; i++ {
		s += x[i] * y[i]
	}
	return s
}

// Sum returns the sum of the first n elements of x.
//
// Accumulates left to right in index order; returns 0 for n == 0.
func Sum[T Floats](x []T, n int) T {
	var s T
	for i := 0; i < n; i++ {
		s += x[i]
	}
	return s
}

// SumLog returns the sum of the natural logarithms of the first n elements
// of x, using the exact math.Log rather than an approximation.
//
// Zero or negative elements contribute -Inf or NaN per math.Log, and that
// propagates into the accumulated sum.
func SumLog[T Floats](x []T, n int) T {
	var s T
	for i := 0; i < n; i++ {
		s += T(math.Log(float64(x[i])))
	}
	return s
}
