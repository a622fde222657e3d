// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opendrive

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_road01_planViewLengthSum(tst *testing.T) {

	chk.PrintTitle("road01")

	r := Road{
		Length: 100,
		PlanView: RoadPlanView{Geometry: []RoadPlanViewGeometry{
			{S: 0, Length: 40, Line: &GeometryLine{}},
			{S: 40, Length: 60, Line: &GeometryLine{}},
		}},
	}
	chk.Float64(tst, "length sum", 1e-12, r.PlanViewLengthSum(), 100)
}

func Test_road02_mismatchedLengthSum(tst *testing.T) {

	chk.PrintTitle("road02 (S5 — length mismatch)")

	r := Road{
		Length: 100,
		PlanView: RoadPlanView{Geometry: []RoadPlanViewGeometry{
			{S: 0, Length: 99.5, Line: &GeometryLine{}},
		}},
	}
	diff := math.Abs(r.PlanViewLengthSum() - r.Length)
	if diff <= 1e-7 {
		tst.Errorf("expected a detectable length mismatch, got diff=%g", diff)
	}
}
