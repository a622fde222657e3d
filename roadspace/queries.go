// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements C8, the road-space queries (spec §4.3): lane
// curves at a query factor f, lane surfaces, and lateral filler
// surfaces. All of it is read-only over the Road built by
// roadspace/builder — no operation here mutates the model (spec §5).
package roadspace

import (
	"github.com/wangruoyi123456/rtron/fun"
	"github.com/wangruoyi123456/rtron/geom"
	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/rerr"
)

func sign(id int) float64 {
	if id < 0 {
		return -1
	}
	return 1
}

// lateralLaneOffset implements fun.UnivariateFunction for the per-lane
// lateral offset derived in spec §4.3 "Per-lane lateral offset": the
// cumulative width of every lane strictly between the reference (id 0)
// and laneID, plus f × width(laneID), signed by sign(laneID).
type lateralLaneOffset struct {
	section *LaneSection
	laneID  int
	f       float64
}

func (o *lateralLaneOffset) innerLaneIDs() []int {
	s := sign(o.laneID)
	var ids []int
	for _, id := range o.section.SortedLaneIDs() {
		if s > 0 && id > 0 && id < o.laneID {
			ids = append(ids, id)
		}
		if s < 0 && id < 0 && id > o.laneID {
			ids = append(ids, id)
		}
	}
	return ids
}

func (o *lateralLaneOffset) Domain() num.Range {
	lane, err := o.section.Lane(o.laneID)
	if err != nil {
		return num.Range{}
	}
	dom := lane.Width.Domain()
	for _, id := range o.innerLaneIDs() {
		inner, err := o.section.Lane(id)
		if err != nil {
			continue
		}
		if d, ok := dom.Intersect(inner.Width.Domain()); ok {
			dom = d
		}
	}
	return dom
}

func (o *lateralLaneOffset) Value(s float64) (float64, error) {
	return o.valueAt(s, func(f fun.UnivariateFunction, x float64) (float64, error) { return f.Value(x) })
}

func (o *lateralLaneOffset) ValueFuzzy(s, tol float64) (float64, error) {
	return o.valueAt(s, func(f fun.UnivariateFunction, x float64) (float64, error) { return f.ValueFuzzy(x, tol) })
}

func (o *lateralLaneOffset) valueAt(s float64, eval func(fun.UnivariateFunction, float64) (float64, error)) (float64, error) {
	lane, err := o.section.Lane(o.laneID)
	if err != nil {
		return 0, err
	}
	cumulative := 0.0
	for _, id := range o.innerLaneIDs() {
		inner, err := o.section.Lane(id)
		if err != nil {
			return 0, err
		}
		w, err := eval(inner.Width, s)
		if err != nil {
			return 0, err
		}
		cumulative += w
	}
	w, err := eval(lane.Width, s)
	if err != nil {
		return 0, err
	}
	return sign(o.laneID) * (cumulative + o.f*w), nil
}

func (o *lateralLaneOffset) Slope(s float64) (float64, error) {
	lane, err := o.section.Lane(o.laneID)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, id := range o.innerLaneIDs() {
		inner, err := o.section.Lane(id)
		if err != nil {
			return 0, err
		}
		ds, err := inner.Width.Slope(s)
		if err != nil {
			return 0, err
		}
		total += ds
	}
	ds, err := lane.Width.Slope(s)
	if err != nil {
		return 0, err
	}
	return sign(o.laneID) * (total + o.f*ds), nil
}

// GetLateralLaneOffset returns the per-lane lateral offset function for
// (laneID, f) within section — spec §8 properties 5 and 6.
func GetLateralLaneOffset(section *LaneSection, laneID int, f float64) fun.UnivariateFunction {
	return &lateralLaneOffset{section: section, laneID: laneID, f: f}
}

// heightOffsetFunc implements fun.UnivariateFunction for the height
// blend inner×(1−f) + outer×f (spec §4.3 "Height offset").
type heightOffsetFunc struct {
	lane *Lane
	f    float64
}

func (h *heightOffsetFunc) Domain() num.Range { return h.lane.InnerHeightOffset.Domain() }
func (h *heightOffsetFunc) Value(s float64) (float64, error) {
	return h.blend(s, func(f fun.UnivariateFunction, x float64) (float64, error) { return f.Value(x) })
}
func (h *heightOffsetFunc) ValueFuzzy(s, tol float64) (float64, error) {
	return h.blend(s, func(f fun.UnivariateFunction, x float64) (float64, error) { return f.ValueFuzzy(x, tol) })
}
func (h *heightOffsetFunc) blend(s float64, eval func(fun.UnivariateFunction, float64) (float64, error)) (float64, error) {
	inner, err := eval(h.lane.InnerHeightOffset, s)
	if err != nil {
		return 0, err
	}
	outer, err := eval(h.lane.OuterHeightOffset, s)
	if err != nil {
		return 0, err
	}
	return inner*(1-h.f) + outer*h.f, nil
}
func (h *heightOffsetFunc) Slope(s float64) (float64, error) {
	di, err := h.lane.InnerHeightOffset.Slope(s)
	if err != nil {
		return 0, err
	}
	do, err := h.lane.OuterHeightOffset.Slope(s)
	if err != nil {
		return 0, err
	}
	return di*(1-h.f) + do*h.f, nil
}

// GetCurveOnLane returns the 3D curve traced on the lane identified by
// (sectionID, laneID) at query factor f ∈ [0,1] — 0 the inner boundary,
// 1 the outer, 0.5 the centerline (spec §4.3).
func (r *Road) GetCurveOnLane(sectionID, laneID int, f float64) (*geom.CurveOnParametricSurface3D, error) {
	section, err := r.laneSectionByID(sectionID)
	if err != nil {
		return nil, err
	}
	lane, err := section.Lane(laneID)
	if err != nil {
		return nil, err
	}
	sectioned, err := r.SectionedSurface(section, lane.Level)
	if err != nil {
		return nil, err
	}
	perLane := GetLateralLaneOffset(section, laneID, f)
	lateral := func(s float64) (float64, error) {
		a, err := r.LaneOffset.Value(s)
		if err != nil {
			return 0, err
		}
		b, err := perLane.Value(s)
		if err != nil {
			return 0, err
		}
		return a + b, nil
	}
	height := &heightOffsetFunc{lane: lane, f: f}
	return &geom.CurveOnParametricSurface3D{
		Surface:       sectioned,
		LateralOffset: lateral,
		HeightOffset:  height.Value,
	}, nil
}

// leftBoundaryFactor and rightBoundaryFactor implement spec §4.3's
// "left/right boundary mapping": for a left lane (id>0) the left
// boundary is the outer (f=1) side; for a right lane (id<0) the left
// boundary is the inner (f=0) side — and the reverse for the right
// boundary.
func leftBoundaryFactor(laneID int) float64 {
	if laneID > 0 {
		return 1
	}
	return 0
}

func rightBoundaryFactor(laneID int) float64 {
	if laneID > 0 {
		return 0
	}
	return 1
}

// GetLeftLaneBoundary is GetCurveOnLane at the lane's left-boundary
// factor (spec §8 property 7).
func (r *Road) GetLeftLaneBoundary(sectionID, laneID int) (*geom.CurveOnParametricSurface3D, error) {
	return r.GetCurveOnLane(sectionID, laneID, leftBoundaryFactor(laneID))
}

// GetRightLaneBoundary is GetCurveOnLane at the lane's right-boundary
// factor.
func (r *Road) GetRightLaneBoundary(sectionID, laneID int) (*geom.CurveOnParametricSurface3D, error) {
	return r.GetCurveOnLane(sectionID, laneID, rightBoundaryFactor(laneID))
}

// GetLaneSurface builds the lane's surface by sampling its left and
// right boundary curves at step Δ and ruling a composite surface
// between them (spec §4.3 "Lane surface").
func (r *Road) GetLaneSurface(sectionID, laneID int, delta float64) (geom.CompositeSurface3D, error) {
	left, err := r.GetLeftLaneBoundary(sectionID, laneID)
	if err != nil {
		return geom.CompositeSurface3D{}, err
	}
	right, err := r.GetRightLaneBoundary(sectionID, laneID)
	if err != nil {
		return geom.CompositeSurface3D{}, err
	}
	leftPts, err := geom.Polyline(left, delta)
	if err != nil {
		return geom.CompositeSurface3D{}, err
	}
	rightPts, err := geom.Polyline(right, delta)
	if err != nil {
		return geom.CompositeSurface3D{}, err
	}
	if geom.PointsEqual(leftPts, rightPts, num.DefaultTolerance) {
		return geom.CompositeSurface3D{}, nil
	}
	return geom.RuledSurfaceFromBoundaries(leftPts, rightPts, num.DefaultTolerance)
}

// LaneSurfaceEntry is one element of GetAllLanes's result (spec §6
// output contract).
type LaneSurfaceEntry struct {
	ID      LaneIdentifier
	Surface geom.CompositeSurface3D
	Attrs   AttributeSet
}

// GetAllLanes returns every lane's surface across every section (spec
// §6 "getAllLanes(Δ)").
func (r *Road) GetAllLanes(delta float64) ([]LaneSurfaceEntry, error) {
	var out []LaneSurfaceEntry
	for _, sec := range r.LaneSections {
		for _, laneID := range sec.SortedLaneIDs() {
			surf, err := r.GetLaneSurface(sec.ID, laneID, delta)
			if err != nil {
				return nil, err
			}
			lane, _ := sec.Lane(laneID)
			out = append(out, LaneSurfaceEntry{
				ID:      r.laneIdentifier(sec, laneID),
				Surface: surf,
				Attrs:   lane.Attributes,
			})
		}
	}
	return out, nil
}

// LaneCurveEntry is one element of GetAllLeftLaneBoundaries /
// GetAllRightLaneBoundaries / GetAllCurvesOnLanes's result.
type LaneCurveEntry struct {
	ID    LaneIdentifier
	Curve *geom.CurveOnParametricSurface3D
	Attrs AttributeSet
}

func (r *Road) curvesOverAllLanes(curveOf func(sectionID, laneID int) (*geom.CurveOnParametricSurface3D, error)) ([]LaneCurveEntry, error) {
	var out []LaneCurveEntry
	for _, sec := range r.LaneSections {
		for _, laneID := range sec.SortedLaneIDs() {
			curve, err := curveOf(sec.ID, laneID)
			if err != nil {
				return nil, err
			}
			lane, _ := sec.Lane(laneID)
			out = append(out, LaneCurveEntry{ID: r.laneIdentifier(sec, laneID), Curve: curve, Attrs: lane.Attributes})
		}
	}
	return out, nil
}

// GetAllLeftLaneBoundaries returns every lane's left boundary curve.
func (r *Road) GetAllLeftLaneBoundaries() ([]LaneCurveEntry, error) {
	return r.curvesOverAllLanes(r.GetLeftLaneBoundary)
}

// GetAllRightLaneBoundaries returns every lane's right boundary curve.
func (r *Road) GetAllRightLaneBoundaries() ([]LaneCurveEntry, error) {
	return r.curvesOverAllLanes(r.GetRightLaneBoundary)
}

// GetAllCurvesOnLanes returns every lane's curve at query factor f.
func (r *Road) GetAllCurvesOnLanes(f float64) ([]LaneCurveEntry, error) {
	return r.curvesOverAllLanes(func(sectionID, laneID int) (*geom.CurveOnParametricSurface3D, error) {
		return r.GetCurveOnLane(sectionID, laneID, f)
	})
}

// neighborToTheLeft returns the id of the lane laterally adjacent to
// laneID on its left, or (0, false) if laneID is the outermost lane —
// this core's resolution of the spec §9 open question: neighbors are
// derived from the sorted id sequence, skipping the sign transition at
// id 0 (id 1's left neighbor is id 2, not id -1, and id -1 has no left
// neighbor inside id 0's gap — it is the innermost right lane).
func neighborToTheLeft(sortedIDs []int, laneID int) (int, bool) {
	for i, id := range sortedIDs {
		if id == laneID && i+1 < len(sortedIDs) {
			next := sortedIDs[i+1]
			if sign(id) != sign(next) {
				// crossing the id-0 gap: id -1's "left" neighbor would
				// be id 1, but they sit on opposite sides of the
				// reference lane and are not laterally adjacent.
				return 0, false
			}
			return next, true
		}
	}
	return 0, false
}

// GetAllFillerSurfaces builds the lateral filler surfaces bridging
// vertical discontinuities between adjacent lanes, for every section
// (spec §4.3 "Lateral filler surfaces").
func (r *Road) GetAllFillerSurfaces(delta float64) ([]geom.CompositeSurface3D, error) {
	var out []geom.CompositeSurface3D
	for _, sec := range r.LaneSections {
		ids := sec.SortedLaneIDs()
		for _, laneID := range ids {
			leftNeighbor, ok := neighborToTheLeft(ids, laneID)
			if !ok {
				continue
			}
			laneLeftBoundary, err := r.GetLeftLaneBoundary(sec.ID, laneID)
			if err != nil {
				return nil, err
			}
			neighborRightBoundary, err := r.GetRightLaneBoundary(sec.ID, leftNeighbor)
			if err != nil {
				return nil, err
			}
			a, err := geom.Polyline(laneLeftBoundary, delta)
			if err != nil {
				return nil, err
			}
			b, err := geom.Polyline(neighborRightBoundary, delta)
			if err != nil {
				return nil, err
			}
			if geom.PointsEqual(a, b, num.DefaultTolerance) {
				continue
			}
			surf, err := geom.RuledSurfaceFromBoundaries(a, b, num.DefaultTolerance)
			if err != nil {
				return nil, err
			}
			if !surf.Empty() {
				out = append(out, surf)
			}
		}
	}
	return out, nil
}

func (r *Road) laneSectionByID(id int) (*LaneSection, error) {
	for _, sec := range r.LaneSections {
		if sec.ID == id {
			return sec, nil
		}
	}
	return nil, rerr.New(rerr.NotFound, "road %s has no lane section %d", r.ID, id)
}

func (r *Road) laneIdentifier(sec *LaneSection, laneID int) LaneIdentifier {
	return LaneIdentifier{
		LaneID: laneID,
		LaneSectionIdentifier: LaneSectionIdentifier{
			LaneSectionID:                 sec.ID,
			LaneSectionCurveRelativeStart: sec.CurvePositionStart,
			RoadspaceIdentifier:           r.ID,
		},
	}
}
