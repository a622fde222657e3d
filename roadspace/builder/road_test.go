// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/wangruoyi123456/rtron/config"
	"github.com/wangruoyi123456/rtron/opendrive"
)

func straightPlanView(length float64) opendrive.RoadPlanView {
	return opendrive.RoadPlanView{Geometry: []opendrive.RoadPlanViewGeometry{
		{S: 0, X: 0, Y: 0, Hdg: 0, Length: length, Line: &opendrive.GeometryLine{}},
	}}
}

// Test_s1_buildStraightRoad covers end-to-end scenario S1 through the
// builder, not just the hand-assembled roadspace model.
func Test_s1_buildStraightRoad(tst *testing.T) {

	chk.PrintTitle("builder s1")

	src := opendrive.Road{
		ID: "road1", Length: 100,
		PlanView: straightPlanView(100),
		Lanes: opendrive.RoadLanes{
			LaneSection: []opendrive.RoadLanesLaneSection{
				{S: 0,
					Left:  []opendrive.LaneRecord{{ID: 1, Type: "driving", Width: []opendrive.LaneWidthRecord{{SOffset: 0, A: 3.5}}}},
					Right: []opendrive.LaneRecord{{ID: -1, Type: "driving", Width: []opendrive.LaneWidthRecord{{SOffset: 0, A: 3.5}}}},
				},
			},
		},
	}

	road, _, err := BuildRoad(src, config.DefaultOpenDriveToRoadspace())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if err := road.IsProcessable(src.PlanViewLengthSum(), 1e-7); err != nil {
		tst.Fatalf("expected road to be processable: %v", err)
	}

	curve, err := road.GetCurveOnLane(0, 1, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	p, err := curve.PointAt(10)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "outer boundary y", 1e-9, p.Y, 3.5)
}

// Test_s2_widthDiscontinuity covers end-to-end scenario S2: two lane
// sections, lane 1's width jumps from 3.5 to 3.0 at s=50.
func Test_s2_widthDiscontinuity(tst *testing.T) {

	chk.PrintTitle("builder s2")

	src := opendrive.Road{
		ID: "road1", Length: 100,
		PlanView: straightPlanView(100),
		Lanes: opendrive.RoadLanes{
			LaneSection: []opendrive.RoadLanesLaneSection{
				{S: 0, Left: []opendrive.LaneRecord{{ID: 1, Width: []opendrive.LaneWidthRecord{{SOffset: 0, A: 3.5}}}}},
				{S: 50, Left: []opendrive.LaneRecord{{ID: 1, Width: []opendrive.LaneWidthRecord{{SOffset: 0, A: 3.0}}}}},
			},
		},
	}

	road, _, err := BuildRoad(src, config.DefaultOpenDriveToRoadspace())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	before, err := road.GetLeftLaneBoundary(0, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	pBefore, err := before.PointAt(49)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "width before discontinuity", 1e-9, pBefore.Y, 3.5)

	after, err := road.GetLeftLaneBoundary(1, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	pAfter, err := after.PointAt(50)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "width at/after discontinuity", 1e-9, pAfter.Y, 3.0)

	owner, err := road.LaneSectionForS(50)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if owner.ID != 0 {
		tst.Errorf("expected section 0 (lower id) to own the shared boundary s=50")
	}
}

// Test_s5_invalidLengthMismatch covers end-to-end scenario S5.
func Test_s5_invalidLengthMismatch(tst *testing.T) {

	chk.PrintTitle("builder s5")

	src := opendrive.Road{
		ID: "road1", Length: 100,
		PlanView: straightPlanView(99.5),
		Lanes: opendrive.RoadLanes{
			LaneSection: []opendrive.RoadLanesLaneSection{
				{S: 0, Left: []opendrive.LaneRecord{{ID: 1, Width: []opendrive.LaneWidthRecord{{SOffset: 0, A: 3.5}}}}},
			},
		},
	}

	road, _, err := BuildRoad(src, config.DefaultOpenDriveToRoadspace())
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if err := road.IsProcessable(src.PlanViewLengthSum(), 1e-7); err == nil {
		tst.Fatalf("expected isProcessable to fail on a length mismatch")
	}
}

// Test_s6_equalKeyWidthEntries covers end-to-end scenario S6: the
// earlier of two sOffset=10 entries is dropped and a report message is
// recorded.
func Test_s6_equalKeyWidthEntries(tst *testing.T) {

	chk.PrintTitle("builder s6")

	records := []opendrive.LaneWidthRecord{
		{SOffset: 0, A: 1},
		{SOffset: 10, A: 2},
		{SOffset: 10, A: 3},
		{SOffset: 20, A: 4},
	}
	built, err := BuildLaneWidth(records, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	v, err := built.Fn.Value(12)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Float64(tst, "surviving entry value", 1e-9, v, 3)

	found := false
	for _, msg := range built.Messages {
		if strings.Contains(msg, "removing") {
			found = true
		}
	}
	if !found {
		tst.Errorf("expected a report message about the dropped equal-key entry, got %v", built.Messages)
	}
}
