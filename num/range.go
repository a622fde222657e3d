// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "math"

// BoundKind classifies one endpoint of a Range.
type BoundKind int

const (
	// Closed means the endpoint value itself belongs to the range.
	Closed BoundKind = iota
	// Open means the endpoint value is excluded.
	Open
	// Unbounded means there is no limit on this side; the endpoint value
	// is ignored (by convention ±Inf).
	Unbounded
)

// Endpoint is one side of a Range.
type Endpoint struct {
	Value float64
	Kind  BoundKind
}

// Range is a pair of lower/upper endpoints, each independently open,
// closed or unbounded.
type Range struct {
	Lower Endpoint
	Upper Endpoint
}

// ClosedRange builds a [lo, hi] range.
func ClosedRange(lo, hi float64) Range {
	return Range{Endpoint{lo, Closed}, Endpoint{hi, Closed}}
}

// ClosedOpenRange builds a [lo, hi) range.
func ClosedOpenRange(lo, hi float64) Range {
	return Range{Endpoint{lo, Closed}, Endpoint{hi, Open}}
}

// OpenClosedRange builds a (lo, hi] range.
func OpenClosedRange(lo, hi float64) Range {
	return Range{Endpoint{lo, Open}, Endpoint{hi, Closed}}
}

// AtLeast builds a [lo, +∞) range.
func AtLeast(lo float64) Range {
	return Range{Endpoint{lo, Closed}, Endpoint{math.Inf(1), Unbounded}}
}

// Below builds a (-∞, hi) range.
func Below(hi float64) Range {
	return Range{Endpoint{math.Inf(-1), Unbounded}, Endpoint{hi, Open}}
}

// All is the unbounded (-∞, +∞) range.
func All() Range {
	return Range{Endpoint{math.Inf(-1), Unbounded}, Endpoint{math.Inf(1), Unbounded}}
}

// LowerBounded reports whether the range has a finite lower limit.
func (r Range) LowerBounded() bool { return r.Lower.Kind != Unbounded }

// UpperBounded reports whether the range has a finite upper limit.
func (r Range) UpperBounded() bool { return r.Upper.Kind != Unbounded }

// Bounded reports whether both endpoints are finite.
func (r Range) Bounded() bool { return r.LowerBounded() && r.UpperBounded() }

// Width returns Upper.Value - Lower.Value; meaningless if unbounded.
func (r Range) Width() float64 { return r.Upper.Value - r.Lower.Value }

// Contains reports strict membership of x in the range.
func (r Range) Contains(x float64) bool {
	if r.Lower.Kind != Unbounded {
		if x < r.Lower.Value {
			return false
		}
		if r.Lower.Kind == Open && x == r.Lower.Value {
			return false
		}
	}
	if r.Upper.Kind != Unbounded {
		if x > r.Upper.Value {
			return false
		}
		if r.Upper.Kind == Open && x == r.Upper.Value {
			return false
		}
	}
	return true
}

// ContainsFuzzy reports membership of x, treating points within tol of a
// bound as inside it regardless of open/closed.
func (r Range) ContainsFuzzy(x, tol float64) bool {
	if r.Contains(x) {
		return true
	}
	if r.LowerBounded() && FuzzyEqual(x, r.Lower.Value, tol) {
		return true
	}
	if r.UpperBounded() && FuzzyEqual(x, r.Upper.Value, tol) {
		return true
	}
	return false
}

// NearLowerBoundary reports whether x is within tol of the lower endpoint.
func (r Range) NearLowerBoundary(x, tol float64) bool {
	return r.LowerBounded() && FuzzyEqual(x, r.Lower.Value, tol)
}

// NearUpperBoundary reports whether x is within tol of the upper endpoint.
func (r Range) NearUpperBoundary(x, tol float64) bool {
	return r.UpperBounded() && FuzzyEqual(x, r.Upper.Value, tol)
}

// Intersect returns the intersection of r and o, and false if it is empty.
func (r Range) Intersect(o Range) (Range, bool) {
	lower := r.Lower
	if o.lowerStricterThan(r) {
		lower = o.Lower
	}
	upper := r.Upper
	if o.upperStricterThan(r) {
		upper = o.Upper
	}
	out := Range{lower, upper}
	if out.LowerBounded() && out.UpperBounded() {
		if out.Lower.Value > out.Upper.Value {
			return Range{}, false
		}
		if out.Lower.Value == out.Upper.Value && (out.Lower.Kind == Open || out.Upper.Kind == Open) {
			return Range{}, false
		}
	}
	return out, true
}

func (o Range) lowerStricterThan(r Range) bool {
	if o.Lower.Kind == Unbounded {
		return false
	}
	if r.Lower.Kind == Unbounded {
		return true
	}
	if o.Lower.Value != r.Lower.Value {
		return o.Lower.Value > r.Lower.Value
	}
	return o.Lower.Kind == Open && r.Lower.Kind == Closed
}

func (o Range) upperStricterThan(r Range) bool {
	if o.Upper.Kind == Unbounded {
		return false
	}
	if r.Upper.Kind == Unbounded {
		return true
	}
	if o.Upper.Value != r.Upper.Value {
		return o.Upper.Value < r.Upper.Value
	}
	return o.Upper.Kind == Open && r.Upper.Kind == Closed
}

func lowerEqual(a, b Endpoint) bool {
	return a.Kind == b.Kind && (a.Kind == Unbounded || a.Value == b.Value)
}

func upperEqual(a, b Endpoint) bool {
	return a.Kind == b.Kind && (a.Kind == Unbounded || a.Value == b.Value)
}

// ContainsRange reports whether o lies entirely within r, i.e. r ∩ o == o.
func (r Range) ContainsRange(o Range) bool {
	lowerOK := o.lowerStricterThan(r) || lowerEqual(o.Lower, r.Lower)
	upperOK := o.upperStricterThan(r) || upperEqual(o.Upper, r.Upper)
	return lowerOK && upperOK
}
