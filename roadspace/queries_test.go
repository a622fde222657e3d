// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadspace

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/wangruoyi123456/rtron/fun"
	"github.com/wangruoyi123456/rtron/num"
)

func straightRoad(tst *testing.T, width1, width2 float64, laneOffset fun.UnivariateFunction) *Road {
	ref := NewReferenceLine([]ReferenceSegment{{S: 0, X: 0, Y: 0, Hdg: 0, Length: 100}}, nil)
	surf := &RoadSurface{Reference: ref}
	lanes := map[int]*Lane{
		1:  {ID: 1, Width: fun.NewConstant(width1, num.All()), InnerHeightOffset: fun.NewConstant(0, num.All()), OuterHeightOffset: fun.NewConstant(0, num.All())},
		-1: {ID: -1, Width: fun.NewConstant(width2, num.All()), InnerHeightOffset: fun.NewConstant(0, num.All()), OuterHeightOffset: fun.NewConstant(0, num.All())},
	}
	section, err := NewLaneSection(0, 0, lanes)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	hasOffset := laneOffset != nil
	if laneOffset == nil {
		laneOffset = fun.NewConstant(0, num.All())
	}
	road, err := NewRoad(RoadIdentifier{RoadID: "r1"}, 100, surf, surf, laneOffset, []*LaneSection{section}, false, hasOffset)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return road
}

// Test_s1_straightSingleSection covers end-to-end scenario S1.
func Test_s1_straightSingleSection(tst *testing.T) {

	chk.PrintTitle("s1")

	road := straightRoad(tst, 3.5, 3.5, nil)

	curve, err := road.GetCurveOnLane(0, 1, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	p, err := curve.PointAt(10)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "inner boundary y (lane 1, f=0)", 1e-9, p.Y, 0)

	curve1, _ := road.GetCurveOnLane(0, 1, 1)
	p1, _ := curve1.PointAt(10)
	chk.Float64(tst, "outer boundary y (lane 1, f=1)", 1e-9, p1.Y, 3.5)

	curveC, _ := road.GetCurveOnLane(0, 1, 0.5)
	pC, _ := curveC.PointAt(10)
	chk.Float64(tst, "centerline y (lane 1, f=0.5)", 1e-9, pC.Y, 1.75)

	curveR1, _ := road.GetCurveOnLane(0, -1, 1)
	pr1, _ := curveR1.PointAt(10)
	chk.Float64(tst, "outer boundary y (lane -1, f=1)", 1e-9, pr1.Y, -3.5)

	fillers, err := road.GetAllFillerSurfaces(1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(fillers) != 0 {
		tst.Errorf("expected no filler surfaces for a flat single section, got %d", len(fillers))
	}
}

// Test_s3_laneOffsetPresent covers end-to-end scenario S3.
func Test_s3_laneOffsetPresent(tst *testing.T) {

	chk.PrintTitle("s3")

	road := straightRoad(tst, 3.5, 3.5, fun.NewConstant(0.5, num.All()))

	inner, _ := road.GetCurveOnLane(0, 1, 0)
	pInner, _ := inner.PointAt(10)
	chk.Float64(tst, "inner boundary with lane offset", 1e-9, pInner.Y, 0.5)

	outer, _ := road.GetCurveOnLane(0, 1, 1)
	pOuter, _ := outer.PointAt(10)
	chk.Float64(tst, "outer boundary with lane offset", 1e-9, pOuter.Y, 4.0)
}

// Test_s4_heightOffsetOnShoulder covers end-to-end scenario S4.
func Test_s4_heightOffsetOnShoulder(tst *testing.T) {

	chk.PrintTitle("s4")

	ref := NewReferenceLine([]ReferenceSegment{{S: 0, X: 0, Y: 0, Hdg: 0, Length: 100}}, nil)
	surf := &RoadSurface{Reference: ref}
	lane := &Lane{
		ID: -1, Width: fun.NewConstant(3.5, num.All()),
		InnerHeightOffset: fun.NewConstant(0, num.All()),
		OuterHeightOffset: fun.NewConstant(-0.15, num.All()),
	}
	section, err := NewLaneSection(0, 0, map[int]*Lane{-1: lane})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	road, err := NewRoad(RoadIdentifier{RoadID: "r1"}, 100, surf, surf, fun.NewConstant(0, num.All()), []*LaneSection{section}, false, false)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	center, _ := road.GetCurveOnLane(0, -1, 0.5)
	pCenter, _ := center.PointAt(10)
	chk.Float64(tst, "centerline height offset", 1e-9, pCenter.Z, -0.075)

	outer, _ := road.GetCurveOnLane(0, -1, 1)
	pOuter, _ := outer.PointAt(10)
	chk.Float64(tst, "outer height offset", 1e-9, pOuter.Z, -0.15)
}

// Test_property8_laneZeroAbsent checks §8 property 8.
func Test_property8_laneZeroAbsent(tst *testing.T) {

	chk.PrintTitle("property8")

	lanes := map[int]*Lane{
		0: {ID: 0, Width: fun.NewConstant(0, num.All()), InnerHeightOffset: fun.NewConstant(0, num.All()), OuterHeightOffset: fun.NewConstant(0, num.All())},
	}
	_, err := NewLaneSection(0, 0, lanes)
	if err == nil {
		tst.Fatalf("expected an IllegalState error for lane id 0 in the lane map")
	}
}

// Test_property13_coincidentBoundariesEmptyFiller checks §8 property 13.
func Test_property13_coincidentBoundariesEmptyFiller(tst *testing.T) {

	chk.PrintTitle("property13")

	road := straightRoad(tst, 0, 3.5, nil)
	surf, err := road.GetLaneSurface(0, 1, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !surf.Empty() {
		tst.Errorf("a zero-width lane should yield an empty surface")
	}
}

// Test_laneSectionForS_tieBreak checks the §9 open-question decision:
// the lower-id section owns a shared boundary s.
func Test_laneSectionForS_tieBreak(tst *testing.T) {

	chk.PrintTitle("laneSectionForS tie-break")

	ref := NewReferenceLine([]ReferenceSegment{{S: 0, X: 0, Y: 0, Hdg: 0, Length: 100}}, nil)
	surf := &RoadSurface{Reference: ref}
	lanes := map[int]*Lane{1: {ID: 1, Width: fun.NewConstant(3.5, num.All()), InnerHeightOffset: fun.NewConstant(0, num.All()), OuterHeightOffset: fun.NewConstant(0, num.All())}}
	sec0, _ := NewLaneSection(0, 0, lanes)
	sec1, _ := NewLaneSection(1, 50, lanes)
	road, err := NewRoad(RoadIdentifier{RoadID: "r1"}, 100, surf, surf, fun.NewConstant(0, num.All()), []*LaneSection{sec0, sec1}, false, false)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	owner, err := road.LaneSectionForS(50)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if owner.ID != 0 {
		tst.Errorf("expected the lower-id section (0) to own the shared boundary s=50, got %d", owner.ID)
	}
}
