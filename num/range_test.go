// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_range01(tst *testing.T) {

	chk.PrintTitle("range01")

	r := ClosedRange(0, 10)
	if !r.Contains(0) || !r.Contains(10) || !r.Contains(5) {
		tst.Errorf("closed range should contain its endpoints")
	}
	if r.Contains(-0.1) || r.Contains(10.1) {
		tst.Errorf("closed range should not contain points outside it")
	}

	co := ClosedOpenRange(0, 10)
	if co.Contains(10) {
		tst.Errorf("closed-open range should not contain its upper endpoint")
	}
	if !co.Contains(0) {
		tst.Errorf("closed-open range should contain its lower endpoint")
	}
}

func Test_range02(tst *testing.T) {

	chk.PrintTitle("range02")

	a := ClosedRange(0, 10)
	b := ClosedRange(5, 15)
	x, ok := a.Intersect(b)
	if !ok {
		tst.Fatalf("expected non-empty intersection")
	}
	chk.Float64(tst, "lower", 1e-15, x.Lower.Value, 5)
	chk.Float64(tst, "upper", 1e-15, x.Upper.Value, 10)

	c := ClosedRange(20, 30)
	_, ok = a.Intersect(c)
	if ok {
		tst.Fatalf("expected empty intersection")
	}
}

func Test_range03(tst *testing.T) {

	chk.PrintTitle("range03 (fuzzy)")

	co := ClosedOpenRange(0, 10)
	tol := 1e-7
	if !co.ContainsFuzzy(10+5e-8, tol) {
		tst.Errorf("fuzzy containment should accept points within tol of the open upper bound")
	}
	if co.ContainsFuzzy(10.1, tol) {
		tst.Errorf("fuzzy containment should reject points far outside the range")
	}
}

func Test_range04_containment(tst *testing.T) {

	chk.PrintTitle("range04 (sub-range containment)")

	whole := AtLeast(0)
	sub := ClosedRange(10, 20)
	if !whole.ContainsRange(sub) {
		tst.Errorf("[0,+inf) should contain [10,20]")
	}
	if sub.ContainsRange(whole) {
		tst.Errorf("[10,20] should not contain [0,+inf)")
	}
}
