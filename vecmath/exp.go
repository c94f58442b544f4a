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

// FastExp returns an approximation of e^x, trading roughly single-precision
// relative error (~1e-7) for avoiding math.Exp on the hot path.
//
// Inputs above the overflow threshold return +Inf; inputs below the
// underflow threshold return 0. FastExp(0) is not guaranteed to be exactly 1;
// Exp special-cases zero elements for callers that need that.
//
// The evaluation is always done in float64, so the float32 instantiation is
// just a narrowing of the float64 result.
func FastExp[T Floats](x T) T {
	return T(fastexp(float64(x)))
}

func fastexp(x float64) float64 {
	if x > expMaxLog {
		return math.Inf(1)
	}
	if x < expMinLog {
		return 0
	}

	// Range reduction: e^x = e^r * 2^n with n ~ round(x/ln 2).
	// The int conversion truncates toward zero, so for negative x this is
	// not exact round-to-nearest; the polynomial domain absorbs the
	// difference.
	n := int(expLog2E*x + 0.5)

	// Subtract n*ln(2) in two steps to limit cancellation error.
	pn := float64(n)
	x -= pn * expC1
	x -= pn * expC2
	xx := x * x

	// r*P(r^2) and Q(r^2) by Horner's method.
	px := ((expP2*xx+expP1)*xx + expP0) * x
	qx := ((expQ3*xx+expQ2)*xx+expQ1)*xx + expQ0

	// e^r = 1 + 2r*P(r^2) / (Q(r^2) - r*P(r^2))
	er := 1 + 2*px/(qx-px)

	// Build 2^n directly from its bit pattern: sign 0, biased exponent
	// n+1023, zero mantissa. n is in [-1022, 1022] after the clamp above,
	// so the biased exponent never leaves the normal range.
	scale := math.Float64frombits(uint64(n+1023) << 52)

	return er * scale
}

// Exp replaces each of the first n elements of x with its exponential,
// using FastExp for nonzero elements. Zero elements become exactly 1,
// sidestepping FastExp's approximation error at 0.
func Exp[T Floats](x []T, n int) {
	for i := 0; i < n; i++ {
		if x[i] == 0 {
			x[i] = 1
		} else {
			x[i] = FastExp(x[i])
		}
	}
}
