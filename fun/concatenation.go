// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fun

import (
	"sort"

	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/rerr"
)

// Member is one (localFunction, absoluteStart) pair of a
// ConcatenationContainer.
type Member[F UnivariateFunction] struct {
	Fn            F
	AbsoluteStart float64
}

// ConcatenationContainer arranges a list of member functions end-to-end,
// starting at a caller-provided absolute origin, into one contiguous
// domain (spec §3 "ConcatenationContainer<F>").
type ConcatenationContainer[F UnivariateFunction] struct {
	Members []Member[F]
	Dom     num.Range
}

// NewConcatenationContainer lays members out end-to-end starting at
// origin, using each member's own domain width to place the next one. It
// fails if any member's domain is unbounded below, or if any member but
// the last is unbounded above (it would leave no room to tile the next
// member against it).
func NewConcatenationContainer[F UnivariateFunction](members []F, origin float64) (*ConcatenationContainer[F], error) {
	if len(members) == 0 {
		return nil, rerr.New(rerr.IllegalState, "concatenation container requires at least one member")
	}
	out := make([]Member[F], len(members))
	start := origin
	for i, m := range members {
		dom := m.Domain()
		if !dom.LowerBounded() {
			return nil, rerr.New(rerr.IllegalState, "member %d has an unbounded lower domain and cannot be concatenated", i)
		}
		out[i] = Member[F]{Fn: m, AbsoluteStart: start}
		if i < len(members)-1 {
			if !dom.UpperBounded() {
				return nil, rerr.New(rerr.IllegalState, "member %d must tile against the next member but has an unbounded domain", i)
			}
			start += dom.Width()
		}
	}
	return newContainerFromMembers(out)
}

// NewConcatenationContainerAt builds a container directly from pre-placed
// (function, absoluteStart) pairs, validating the tiling invariants
// (starts strictly ascending, member domains tile without gaps).
func NewConcatenationContainerAt[F UnivariateFunction](members []Member[F]) (*ConcatenationContainer[F], error) {
	return newContainerFromMembers(members)
}

func newContainerFromMembers[F UnivariateFunction](members []Member[F]) (*ConcatenationContainer[F], error) {
	if len(members) == 0 {
		return nil, rerr.New(rerr.IllegalState, "concatenation container requires at least one member")
	}
	sorted := make([]Member[F], len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		return absoluteDomainOf(sorted[i]).Lower.Value < absoluteDomainOf(sorted[j]).Lower.Value
	})
	for i := 1; i < len(sorted); i++ {
		a, b := absoluteDomainOf(sorted[i-1]).Lower.Value, absoluteDomainOf(sorted[i]).Lower.Value
		if !(a < b) {
			return nil, rerr.New(rerr.IllegalState, "member starts must be strictly ascending: %g then %g", a, b)
		}
	}
	lower := absoluteDomainOf(sorted[0]).Lower
	upper := absoluteDomainOf(sorted[len(sorted)-1]).Upper
	return &ConcatenationContainer[F]{Members: sorted, Dom: num.Range{Lower: lower, Upper: upper}}, nil
}

// absoluteDomainOf returns a member's domain translated into global
// coordinates: global = local + AbsoluteStart, where AbsoluteStart is
// the global point that local coordinate 0 maps to.
func absoluteDomainOf[F UnivariateFunction](m Member[F]) num.Range {
	dom := m.Fn.Domain()
	lower := num.Endpoint{Value: m.AbsoluteStart + dom.Lower.Value, Kind: dom.Lower.Kind}
	upper := num.Endpoint{Value: m.AbsoluteStart + dom.Upper.Value, Kind: dom.Upper.Kind}
	return num.Range{Lower: lower, Upper: upper}
}

// absoluteDomain returns the member's domain translated into the
// container's global coordinates.
func (c *ConcatenationContainer[F]) absoluteDomain(m Member[F]) num.Range {
	return absoluteDomainOf(m)
}

// StrictSelectMember returns the unique member whose absolute domain
// contains x, failing with OutOfDomain otherwise.
func (c *ConcatenationContainer[F]) StrictSelectMember(x float64) (Member[F], error) {
	for _, m := range c.Members {
		if c.absoluteDomain(m).Contains(x) {
			return m, nil
		}
	}
	var zero Member[F]
	return zero, rerr.New(rerr.OutOfDomain, "x=%g is not in any member's domain", x)
}

// FuzzySelectMember resolves x to a member: if x is within tol of an
// internal boundary the member containing that boundary point (the later
// member, whose domain starts there) is chosen; if x is within tol of an
// outer endpoint the boundary member is chosen; otherwise it falls back
// to strict selection.
func (c *ConcatenationContainer[F]) FuzzySelectMember(x, tol float64) (Member[F], error) {
	for i, m := range c.Members {
		dom := c.absoluteDomain(m)
		if i+1 < len(c.Members) {
			next := c.absoluteDomain(c.Members[i+1])
			if dom.NearUpperBoundary(x, tol) || next.NearLowerBoundary(x, tol) {
				return c.Members[i+1], nil
			}
		} else if dom.NearUpperBoundary(x, tol) {
			return m, nil
		}
	}
	if m, err := c.StrictSelectMember(x); err == nil {
		return m, nil
	}
	// outside the whole container: fall back to the nearest boundary
	// member if within tol of the outer domain endpoints.
	if c.Dom.NearLowerBoundary(x, tol) {
		return c.Members[0], nil
	}
	if c.Dom.NearUpperBoundary(x, tol) {
		return c.Members[len(c.Members)-1], nil
	}
	var zero Member[F]
	return zero, rerr.New(rerr.OutOfDomain, "x=%g is not within tol=%g of any member's domain", x, tol)
}

// ConcatenatedFunction is a UnivariateFunction backed by a
// ConcatenationContainer of UnivariateFunction members.
type ConcatenatedFunction struct {
	Container *ConcatenationContainer[UnivariateFunction]
}

func (f ConcatenatedFunction) Domain() num.Range { return f.Container.Dom }

func (f ConcatenatedFunction) Value(x float64) (float64, error) {
	m, err := f.Container.StrictSelectMember(x)
	if err != nil {
		return 0, err
	}
	return m.Fn.Value(x - m.AbsoluteStart)
}

func (f ConcatenatedFunction) Slope(x float64) (float64, error) {
	m, err := f.Container.StrictSelectMember(x)
	if err != nil {
		return 0, err
	}
	return m.Fn.Slope(x - m.AbsoluteStart)
}

func (f ConcatenatedFunction) ValueFuzzy(x, tol float64) (float64, error) {
	m, err := f.Container.FuzzySelectMember(x, tol)
	if err != nil {
		return 0, err
	}
	local := x - m.AbsoluteStart
	return m.Fn.ValueFuzzy(local, tol)
}
