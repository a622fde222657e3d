// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fun

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/wangruoyi123456/rtron/num"
)

func Test_linear01(tst *testing.T) {
	chk.PrintTitle("linear01")
	v, err := X_AXIS.Value(3.5)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "X_AXIS(3.5)", 1e-15, v, 3.5)
}

func Test_concatenatedPolynomial_prefix(tst *testing.T) {
	chk.PrintTitle("concatenatedPolynomial with zero prefix")

	zero := 0.0
	built, err := NewConcatenatedPolynomial(
		[]float64{10, 20},
		[][]float64{{1.0}, {2.0}},
		&zero,
	)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	// property 1: f(x) = 0 for all x < starts[0]
	for _, x := range []float64{-100, -1, 0, 5, 9.999999} {
		v, err := built.Fn.Value(x)
		if err != nil {
			tst.Fatalf("unexpected error at x=%g: %v", x, err)
		}
		chk.Float64(tst, "prefix", 1e-9, v, 0)
	}

	v10, err := built.Fn.Value(10)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "f(10)", 1e-15, v10, 1.0)

	v20, err := built.Fn.Value(20)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "f(20)", 1e-15, v20, 2.0)
}

func Test_concatenatedPolynomial_continuity(tst *testing.T) {
	chk.PrintTitle("concatenatedPolynomial continuity at boundary")

	// property 2: continuous at the boundary iff the adjacent
	// polynomials agree there.
	built, err := NewConcatenatedPolynomial(
		[]float64{0, 10},
		[][]float64{{5.0}, {5.0}}, // both constant 5: agree at x=10
		nil,
	)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	left, _ := built.Fn.ValueFuzzy(10-1e-9, 1e-7)
	right, _ := built.Fn.ValueFuzzy(10+1e-9, 1e-7)
	chk.Float64(tst, "agree at boundary", 1e-6, left, right)

	built2, err := NewConcatenatedPolynomial(
		[]float64{0, 10},
		[][]float64{{5.0}, {7.0}}, // disagree at x=10
		nil,
	)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	v, err := built2.Fn.Value(9.999999999)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	v2, err := built2.Fn.Value(10)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if num.FuzzyEqual(v, v2, 1e-9) {
		tst.Errorf("expected a discontinuity at the boundary")
	}
}

func Test_concatenatedPolynomial_equalKeyDropped(tst *testing.T) {
	chk.PrintTitle("concatenatedPolynomial drops zero-length entries")

	// mirrors S6: equal-key entries collapse because the length between
	// them is zero once duplicates are passed through.
	built, err := NewConcatenatedPolynomial(
		[]float64{0, 10, 10, 20},
		[][]float64{{1}, {2}, {3}, {4}},
		nil,
	)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(built.Messages) == 0 {
		tst.Errorf("expected a report message about the dropped zero-length entry")
	}
	v, err := built.Fn.Value(12)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "second of the two equal-key entries wins the span", 1e-15, v, 3)
}

func Test_sectioned01(tst *testing.T) {
	chk.PrintTitle("sectioned")

	// property 3: Sectioned(source, [a,b]).Value(x) == source.Value(a+x)
	source := LinearFunction{SlopeValue: 2, InterceptValue: 1, Dom: num.All()}
	sec, err := NewSectioned(source, num.ClosedRange(5, 15))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for _, x := range []float64{0, 3, 10} {
		got, err := sec.Value(x)
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		want, _ := source.Value(5 + x)
		chk.Float64(tst, "sectioned value", 1e-12, got, want)
	}

	// property 11: sectioning a bounded function by its own domain yields
	// the original on shifted coordinates.
	bounded := LinearFunction{SlopeValue: 2, InterceptValue: 1, Dom: num.ClosedRange(5, 15)}
	selfSec, err := NewSectioned(bounded, bounded.Domain())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for _, x := range []float64{0, 5, 10} {
		got, err := selfSec.Value(x)
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		want, _ := bounded.Value(5 + x)
		chk.Float64(tst, "self-sectioned value", 1e-12, got, want)
	}

	// sectioning by a range the source does not contain must fail eagerly.
	_, err = NewSectioned(bounded, num.ClosedRange(-10, 0))
	if err == nil {
		tst.Fatalf("expected IllegalState sectioning outside the source domain")
	}
}

func Test_stackedSum01(tst *testing.T) {
	chk.PrintTitle("stacked sum")

	a := LinearFunction{SlopeValue: 1, InterceptValue: 0, Dom: num.ClosedRange(0, 10)}
	b := LinearFunction{SlopeValue: 0, InterceptValue: 3, Dom: num.ClosedRange(0, 10)}
	s, err := OfSum(a, b)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	// property 4
	v, err := s.Value(4)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	av, _ := a.Value(4)
	bv, _ := b.Value(4)
	chk.Float64(tst, "sum", 1e-15, v, av+bv)
}

func Test_fuzzySelectMember_stable(tst *testing.T) {
	chk.PrintTitle("fuzzy member selection is stable near a boundary")

	built, err := NewConcatenatedPolynomial([]float64{0, 10}, [][]float64{{1}, {2}}, nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	cf := built.Fn.(ConcatenatedFunction)
	tol := 1e-7
	// property 9: fuzzySelectMember(boundary ± δ, ε) returns the same
	// member for all |δ| < ε.
	for _, delta := range []float64{-5e-8, 0, 5e-8} {
		m, err := cf.Container.FuzzySelectMember(10+delta, tol)
		if err != nil {
			tst.Fatalf("unexpected error at delta=%g: %v", delta, err)
		}
		if m.AbsoluteStart != 10 {
			tst.Errorf("expected the member starting at 10, got start=%g (delta=%g)", m.AbsoluteStart, delta)
		}
	}
}
