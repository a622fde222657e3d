// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num holds the tolerance-based scalar primitives shared by the
// rest of the core: fuzzy equality and half-open/closed/unbounded ranges.
package num

import "math"

// DefaultTolerance is the global fuzzy-equality tolerance ε used when a
// caller has none of its own (spec default 1e-7).
const DefaultTolerance = 1e-7

// Verbose enables diagnostic printing from this package's tests.
var Verbose = false

// FuzzyEqual reports whether a and b differ by no more than tol.
func FuzzyEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// FuzzyLessEqual reports whether a <= b within tol.
func FuzzyLessEqual(a, b, tol float64) bool {
	return a <= b+tol
}

// FuzzyGreaterEqual reports whether a >= b within tol.
func FuzzyGreaterEqual(a, b, tol float64) bool {
	return a >= b-tol
}
