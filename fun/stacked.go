// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fun

import (
	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/rerr"
)

// Combiner reduces the values of a StackedFunction's members at a point
// into a single value. It must be pure and total over the stacked
// function's domain.
type Combiner func(values []float64) float64

// StackedFunction evaluates to combiner(v1...vn) where vi = memberi.Value(x);
// its domain is the intersection of all member domains (spec §3/§4.1).
type StackedFunction struct {
	Members  []UnivariateFunction
	Combiner Combiner
	dom      num.Range
}

// NewStacked builds a StackedFunction over members, intersecting their
// domains.
func NewStacked(combiner Combiner, members ...UnivariateFunction) (StackedFunction, error) {
	if len(members) == 0 {
		return StackedFunction{}, rerr.New(rerr.IllegalState, "stacked function requires at least one member")
	}
	dom := members[0].Domain()
	for _, m := range members[1:] {
		next, ok := dom.Intersect(m.Domain())
		if !ok {
			return StackedFunction{}, rerr.New(rerr.IllegalState, "stacked function members have no common domain")
		}
		dom = next
	}
	return StackedFunction{Members: members, Combiner: combiner, dom: dom}, nil
}

// OfSum builds a StackedFunction that sums its members' values —
// StackedFunction.ofSum in spec terms.
func OfSum(members ...UnivariateFunction) (StackedFunction, error) {
	return NewStacked(func(values []float64) float64 {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum
	}, members...)
}

func (f StackedFunction) Domain() num.Range { return f.dom }

func (f StackedFunction) Value(x float64) (float64, error) {
	if err := checkDomain(f.dom, x); err != nil {
		return 0, err
	}
	values := make([]float64, len(f.Members))
	for i, m := range f.Members {
		v, err := m.Value(x)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	return f.Combiner(values), nil
}

func (f StackedFunction) Slope(x float64) (float64, error) {
	if err := checkDomain(f.dom, x); err != nil {
		return 0, err
	}
	// The combiner is generally non-linear, but every combiner this core
	// uses (sum, weighted sum) is linear, so the slope is the same
	// combiner applied to the members' slopes.
	values := make([]float64, len(f.Members))
	for i, m := range f.Members {
		v, err := m.Slope(x)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	return f.Combiner(values), nil
}

func (f StackedFunction) ValueFuzzy(x, tol float64) (float64, error) {
	if err := checkDomainFuzzy(f.dom, x, tol); err != nil {
		return 0, err
	}
	values := make([]float64, len(f.Members))
	for i, m := range f.Members {
		v, err := m.ValueFuzzy(x, tol)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	return f.Combiner(values), nil
}

// WeightedSum builds a StackedFunction that computes Σ weights[i]*vi.
func WeightedSum(weights []float64, members ...UnivariateFunction) (StackedFunction, error) {
	if len(weights) != len(members) {
		return StackedFunction{}, rerr.New(rerr.IllegalState, "weights and members must have the same length (%d != %d)", len(weights), len(members))
	}
	return NewStacked(func(values []float64) float64 {
		sum := 0.0
		for i, v := range values {
			sum += weights[i] * v
		}
		return sum
	}, members...)
}
