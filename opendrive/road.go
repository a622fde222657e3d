// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opendrive

// Road is one complete OpenDRIVE road record: a reference line (plan
// view), its elevation and lateral profiles, and its lane structure
// (spec §3 "OpenDRIVE records"). It is the single input C7's builder
// translates into a roadspace.Road.
type Road struct {
	ID     string  `json:"id"`
	Name   string  `json:"name,omitempty"`
	Length float64 `json:"length"`

	PlanView         RoadPlanView       `json:"planView"`
	ElevationProfile RoadElevationProfile `json:"elevationProfile,omitempty"`
	LateralProfile   RoadLateralProfile `json:"lateralProfile,omitempty"`
	Lanes            RoadLanes          `json:"lanes"`
}

// PlanViewLengthSum adds up the declared length of every plan-view
// geometry segment, for comparison against Length in a length-mismatch
// check (spec §8 property 12 / scenario S5).
func (r Road) PlanViewLengthSum() float64 {
	var sum float64
	for _, g := range r.PlanView.Geometry {
		sum += g.Length
	}
	return sum
}
