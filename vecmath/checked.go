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
	"fmt"
	"unsafe"
)

// Checked mirrors every package operation with argument validation layered on
// top of the unchecked core. Each method panics if n is negative, if any
// buffer holds fewer than n elements, or if the two buffers of a binary
// operation partially overlap. Passing the same slice for both buffers is
// allowed; every binary operation here reads and writes element i exactly
// once per iteration.
//
// The zero value is ready to use:
//
//	var v vecmath.Checked[float64]
//	v.AddScaled(y, eta, x, n)
type Checked[T Floats] struct{}

func checkLen[T Floats](op string, n int, bufs ...[]T) {
	if n < 0 {
		panic(fmt.Sprintf("vecmath: %s: negative length %d", op, n))
	}
	for _, b := range bufs {
		if len(b) < n {
			panic(fmt.Sprintf("vecmath: %s: buffer holds %d elements, need %d", op, len(b), n))
		}
	}
}

// checkAlias panics if y[:n] and x[:n] partially overlap. Identical base
// pointers are fine; only a shifted overlap between the two windows is
// rejected.
func checkAlias[T Floats](op string, y, x []T, n int) {
	if n == 0 {
		return
	}
	py := uintptr(unsafe.Pointer(unsafe.SliceData(y)))
	px := uintptr(unsafe.Pointer(unsafe.SliceData(x)))
	if py == px {
		return
	}
	size := uintptr(n) * unsafe.Sizeof(y[0])
	if py < px+size && px < py+size {
		panic(fmt.Sprintf("vecmath: %s: buffers partially overlap", op))
	}
}

// Zero sets the first n elements of x to 0.
func (Checked[T]) Zero(x []T, n int) {
	checkLen("Zero", n, x)
	Zero(x, n)
}

// Set fills the first n elements of x with the scalar a.
func (Checked[T]) Set(x []T, a T, n int) {
	checkLen("Set", n, x)
	Set(x, a, n)
}

// Copy copies the first n elements of x into y.
func (Checked[T]) Copy(y, x []T, n int) {
	checkLen("Copy", n, y, x)
	checkAlias("Copy", y, x, n)
	Copy(y, x, n)
}

// Add performs y[i] += x[i] over the first n elements.
func (Checked[T]) Add(y, x []T, n int) {
	checkLen("Add", n, y, x)
	checkAlias("Add", y, x, n)
	Add(y, x, n)
}

// AddScaled performs y[i] += a * x[i] over the first n elements.
func (Checked[T]) AddScaled(y []T, a T, x []T, n int) {
	checkLen("AddScaled", n, y, x)
	checkAlias("AddScaled", y, x, n)
	AddScaled(y, a, x, n)
}

// Sub performs y[i] -= x[i] over the first n elements.
func (Checked[T]) Sub(y, x []T, n int) {
	checkLen("Sub", n, y, x)
	checkAlias("Sub", y, x, n)
	Sub(y, x, n)
}

// SubScaled performs y[i] -= a * x[i] over the first n elements.
func (Checked[T]) SubScaled(y []T, a T, x []T, n int) {
	checkLen("SubScaled", n, y, x)
	checkAlias("SubScaled", y, x, n)
	SubScaled(y, a, x, n)
}

// Mul performs y[i] *= x[i] over the first n elements.
func (Checked[T]) Mul(y, x []T, n int) {
	checkLen("Mul", n, y, x)
	checkAlias("Mul", y, x, n)
	Mul(y, x, n)
}

// Inv replaces the first n elements of y with their reciprocals.
func (Checked[T]) Inv(y []T, n int) {
	checkLen("Inv", n, y)
	Inv(y, n)
}

// Scale multiplies the first n elements of y by a.
func (Checked[T]) Scale(y []T, a T, n int) {
	checkLen("Scale", n, y)
	Scale(y, a, n)
}

// Dot returns the dot product of the first n elements of x and y.
func (Checked[T]) Dot(x, y []T, n int) T {
	checkLen("Dot", n, x, y)
	return Dot(x, y, n)
}

// Sum returns the sum of the first n elements of x.
func (Checked[T]) Sum(x []T, n int) T {
	checkLen("Sum", n, x)
	return Sum(x, n)
}

// Exp exponentiates the first n elements of x in place.
func (Checked[T]) Exp(x []T, n int) {
	checkLen("Exp", n, x)
	Exp(x, n)
}

// SumLog returns the sum of natural logs of the first n elements of x.
func (Checked[T]) SumLog(x []T, n int) T {
	checkLen("SumLog", n, x)
	return SumLog(x, n)
}
