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

// Zero sets the first n elements of x to 0.
func Zero[T Floats](x []T, n int) {
	clear(x[:n])
}

// Set fills the first n elements of x with the scalar a.
func Set[T Floats](x []T, a T, n int) {
	for i := 0; i < n; i++ {
		x[i] = a
	}
}

// Copy copies the first n elements of x into y: y[i] = x[i].
func Copy[T Floats](y, x []T, n int) {
	copy(y[:n], x[:n])
}

// Add performs in-place element-wise addition: y[i] += x[i].
func Add[T Floats](y, x []T, n int) {
	for i := 0; i < n; i++ {
		y[i] += x[i]
	}
}

// AddScaled performs an in-place scaled addition: y[i] += a * x[i].
func AddScaled[T Floats](y []T, a T, x []T, n int) {
	for i := 0; i < n; i++ {
		y[i] += a * x[i]
	}
}

// Sub performs in-place element-wise subtraction: y[i] -= x[i].
func Sub[T Floats](y, x []T, n int) {
	for i := 0; i < n; i++ {
		y[i] -= x[i]
	}
}

// SubScaled performs an in-place scaled subtraction: y[i] -= a * x[i].
func SubScaled[T Floats](y []T, a T, x []T, n int) {
	for i := 0; i < n; i++ {
		y[i] -= a * x[i]
	}
}

// Mul performs in-place element-wise multiplication: y[i] *= x[i].
func Mul[T Floats](y, x []T, n int) {
	for i := 0; i < n; i++ {
		y[i] *= x[i]
	}
}

// Inv replaces each of the first n elements of y with its reciprocal:
// y[i] = 1 / y[i]. A zero element yields +Inf per IEEE-754 division.
func Inv[T Floats](y []T, n int) {
	for i := 0; i < n; i++ {
		y[i] = 1 / y[i]
	}
}

// Scale multiplies the first n elements of y by the scalar a: y[i] *= a.
func Scale[T Floats](y []T, a T, n int) {
	for i := 0; i < n; i++ {
		y[i] *= a
	}
}
