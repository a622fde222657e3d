// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fun implements the univariate function combinators that make
// up the road-reference curve, superelevation, lateral shape, lane
// offset and lane width models (spec §3 "UnivariateFunction", §4.1).
//
// A UnivariateFunction is a partial function from real to real with a
// declared domain; Value/Slope fail with an OutOfDomain error outside
// it, and ValueFuzzy extends the domain by a caller-supplied tolerance
// at the boundary.
package fun

import (
	"fmt"

	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/rerr"
)

// Verbose enables diagnostic printing from this package's tests.
var Verbose = false

// UnivariateFunction is the abstract contract every member of this
// package's combinator tree implements.
type UnivariateFunction interface {
	// Domain returns the range this function is declared over.
	Domain() num.Range
	// Value evaluates the function at x; fails with OutOfDomain if x is
	// not in Domain().
	Value(x float64) (float64, error)
	// Slope evaluates the function's derivative at x.
	Slope(x float64) (float64, error)
	// ValueFuzzy evaluates the function at x, succeeding if x is in the
	// domain or within tol of one of its endpoints.
	ValueFuzzy(x, tol float64) (float64, error)
}

// checkDomain returns an OutOfDomain error unless x lies in dom.
func checkDomain(dom num.Range, x float64) error {
	if !dom.Contains(x) {
		return rerr.New(rerr.OutOfDomain, "x=%g is not in domain [%v, %v]", x, dom.Lower, dom.Upper)
	}
	return nil
}

// checkDomainFuzzy returns an OutOfDomain error unless x lies in dom or
// within tol of one of its endpoints.
func checkDomainFuzzy(dom num.Range, x, tol float64) error {
	if !dom.ContainsFuzzy(x, tol) {
		return rerr.New(rerr.OutOfDomain, "x=%g is not within tol=%g of domain [%v, %v]", x, tol, dom.Lower, dom.Upper)
	}
	return nil
}

// clampToDomain pulls x back onto the nearest bound of dom, assuming x
// is already known to be within tol of that bound.
func clampToDomain(dom num.Range, x float64) float64 {
	if dom.LowerBounded() && x < dom.Lower.Value {
		return dom.Lower.Value
	}
	if dom.UpperBounded() && x > dom.Upper.Value {
		return dom.Upper.Value
	}
	return x
}

// Report accumulates non-fatal warnings emitted while building a
// function from piecewise OpenDRIVE data (spec §7 "Report" kind, design
// note 9 "Result-with-message idiom").
type Report []string

// Addf appends a formatted warning.
func (r *Report) Addf(format string, args ...interface{}) {
	*r = append(*r, fmt.Sprintf(format, args...))
}

// Append concatenates another report's messages onto r.
func (r *Report) Append(other Report) {
	*r = append(*r, other...)
}

// Built pairs a constructed function with the warnings accumulated while
// building it — the Go rendering of "{ value, messages[] }".
type Built struct {
	Fn       UnivariateFunction
	Messages Report
}
