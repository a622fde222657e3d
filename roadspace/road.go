// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadspace

import (
	"github.com/wangruoyi123456/rtron/fun"
	"github.com/wangruoyi123456/rtron/geom"
	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/rerr"
)

// Road is the assembled road-space model for one OpenDRIVE road (spec
// §3 "Road"): the full-s surfaces and lane-offset function, plus the
// ordered lane sections that subdivide them. Built once by
// roadspace/builder; read-only thereafter (spec §5).
type Road struct {
	ID                    RoadIdentifier
	Length                float64
	HasLateralShape       bool // true if the source lateralProfile carried a shape
	HasLaneOffset         bool // true if the source lanes carried a non-empty laneOffset
	Surface               *RoadSurface
	SurfaceWithoutTorsion *RoadSurface
	LaneOffset            fun.UnivariateFunction
	LaneSections          []*LaneSection
}

// NewRoad validates the Road invariants from spec §3 eagerly: both
// surfaces share the same bounded s-domain, and lane sections are
// non-empty, sorted, and form 0..N-1 without gaps.
func NewRoad(id RoadIdentifier, length float64, surface, surfaceWithoutTorsion *RoadSurface, laneOffset fun.UnivariateFunction, sections []*LaneSection, hasShape, hasLaneOffset bool) (*Road, error) {
	if len(sections) == 0 {
		return nil, rerr.New(rerr.IllegalState, "road %s has no lane sections", id)
	}
	if !surface.SDomain().Bounded() {
		return nil, rerr.New(rerr.IllegalState, "road %s surface has an unbounded s-domain", id)
	}
	if surface.SDomain() != surfaceWithoutTorsion.SDomain() {
		return nil, rerr.New(rerr.IllegalState, "road %s: surface and surfaceWithoutTorsion s-domains disagree", id)
	}
	for i, sec := range sections {
		if sec.ID != i {
			return nil, rerr.New(rerr.IllegalState, "road %s: lane sections must be sorted 0..N-1 without gaps, found id %d at position %d", id, sec.ID, i)
		}
	}
	return &Road{
		ID: id, Length: length,
		HasLateralShape: hasShape, HasLaneOffset: hasLaneOffset,
		Surface: surface, SurfaceWithoutTorsion: surfaceWithoutTorsion,
		LaneOffset: laneOffset, LaneSections: sections,
	}, nil
}

// IsProcessable runs the road-level pre-check from spec §4.3: the
// plan-view's declared segment lengths must sum to within ε of the
// road's own length, and a lateral shape may not coexist with a
// non-empty lane offset.
func (r *Road) IsProcessable(planViewLengthSum, eps float64) error {
	if diff := planViewLengthSum - r.Length; diff > eps || -diff > eps {
		return rerr.New(rerr.IllegalState, "road %s: plan-view length sum %g disagrees with road length %g by more than ε=%g", r.ID, planViewLengthSum, r.Length, eps)
	}
	if r.HasLateralShape && r.HasLaneOffset {
		return rerr.New(rerr.IllegalState, "road %s: lateral shape and lane offset may not be present simultaneously", r.ID)
	}
	return nil
}

// LaneSectionDomains returns the curve-relative s-domain each lane
// section owns: [start_i, start_{i+1}] for all but the last, and
// [start_last, road s-upper] for the last, preserving its upper-bound
// kind (spec §4.3). Adjacent domains share their boundary s closed on
// both sides (spec §9 open question); callers resolving a boundary
// point must apply the documented tie-break: the lower-id section
// owns it (see LaneSectionForS).
func (r *Road) LaneSectionDomains() []num.Range {
	domains := make([]num.Range, len(r.LaneSections))
	upper := r.Surface.SDomain().Upper
	for i, sec := range r.LaneSections {
		lo := sec.CurvePositionStart
		if i+1 < len(r.LaneSections) {
			domains[i] = num.ClosedRange(lo, r.LaneSections[i+1].CurvePositionStart)
		} else {
			domains[i] = num.Range{Lower: num.Endpoint{Value: lo, Kind: num.Closed}, Upper: upper}
		}
	}
	return domains
}

// LaneSectionForS resolves the lane section owning s, applying the
// lower-id tie-break at a shared boundary (spec §9 open question:
// "choose the section whose id is lower").
func (r *Road) LaneSectionForS(s float64) (*LaneSection, error) {
	domains := r.LaneSectionDomains()
	for i, dom := range domains {
		if dom.Contains(s) {
			return r.LaneSections[i], nil
		}
	}
	return nil, rerr.New(rerr.NotFound, "road %s: no lane section contains s=%g", r.ID, s)
}

// SectionedSurface restricts the road's surface (or its
// surfaceWithoutTorsion twin, per lane.Level) to one lane section's
// s-domain (spec §4.3 "surface selection").
func (r *Road) SectionedSurface(sec *LaneSection, level bool) (*geom.SectionedCurveRelativeParametricSurface3D, error) {
	domains := r.LaneSectionDomains()
	var subS num.Range
	found := false
	for i, s := range r.LaneSections {
		if s.ID == sec.ID {
			subS = domains[i]
			found = true
			break
		}
	}
	if !found {
		return nil, rerr.New(rerr.NotFound, "road %s: lane section %d not found", r.ID, sec.ID)
	}
	var source geom.CurveRelativeSurface3D = r.Surface
	if level {
		source = r.SurfaceWithoutTorsion
	}
	return geom.NewSectionedSurface(source, subS)
}
