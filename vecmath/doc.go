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

// Package vecmath provides element-wise vector arithmetic and a fast
// approximate exponential for the training hot path.
//
// All operations work on caller-owned slices with an explicit element count n,
// carried separately from the slice itself. The package never allocates and
// keeps no state between calls. Core functions do not validate n against the
// buffers; callers that want length and aliasing validation can go through the
// Checked wrapper instead.
//
// Every operation is generic over the floating-point element type:
//
//	grad := make([]float64, n)
//	vecmath.Zero(grad, n)
//	vecmath.AddScaled(grad, eta, delta, n)
//	ll := vecmath.SumLog(probs, n)
//
// Reductions (Dot, Sum, SumLog) accumulate strictly left to right, so results
// are reproducible for a fixed input order.
//
// Concurrent calls are safe only on disjoint buffers; the package does no
// locking of its own.
package vecmath
