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

// =============================================================================
// Constants for FastExp
// =============================================================================

// Domain bounds and range-reduction constants. expMaxLog/expMinLog are
// log(2^1022) and log(2^-1022), the points where a double-precision
// exponential over/underflows. expC1+expC2 is ln(2) split into a high part
// exactly representable in few bits and a low correction, so subtracting
// n*ln(2) loses as little as possible to cancellation.
var (
	expMaxLog float64 = 7.08396418532264106224e2
	expMinLog float64 = -7.08396418532264106224e2
	expLog2E  float64 = 1.4426950408889634073599
	expC1     float64 = 6.93145751953125e-1
	expC2     float64 = 1.42860682030941723212e-6
)

// Minimax rational coefficients for e^r on the reduced interval,
// e^r = 1 + 2r*P(r^2)/(Q(r^2) - r*P(r^2)).
var (
	expP0 float64 = 9.99999999999999999910e-1
	expP1 float64 = 3.02994407707441961300e-2
	expP2 float64 = 1.26177193074810590878e-4

	expQ0 float64 = 2.00000000000000000009e0
	expQ1 float64 = 2.27265548208155028766e-1
	expQ2 float64 = 2.52448340349684104192e-3
	expQ3 float64 = 3.00198505138664455042e-6
)
