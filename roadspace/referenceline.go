// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadspace

import (
	"math"
	"sort"

	"github.com/wangruoyi123456/rtron/fun"
	"github.com/wangruoyi123456/rtron/geom"
	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/rerr"
)

// ReferenceSegment is one plan-view geometry piece reduced to the only
// two shapes this core evaluates in closed form — line and arc; other
// OpenDRIVE shapes (spiral, poly3, paramPoly3) are carried as plain
// data in opendrive.RoadPlanViewGeometry but are not evaluable here
// (spec §1 out-of-scope: arc-length parameterisation of clothoids and
// cubic curves belongs to the external writer). roadspace/builder is
// responsible for deciding how to degrade an unsupported shape into
// one of these two.
type ReferenceSegment struct {
	S, X, Y, Hdg, Length float64
	Curvature            float64 // 0 for a line, 1/radius for an arc
	IsArc                bool
}

func (seg ReferenceSegment) pointAt(ds float64) geom.Vector3D {
	if !seg.IsArc || seg.Curvature == 0 {
		return geom.Vector3D{
			X: seg.X + ds*math.Cos(seg.Hdg),
			Y: seg.Y + ds*math.Sin(seg.Hdg),
		}
	}
	k := seg.Curvature
	return geom.Vector3D{
		X: seg.X + (math.Sin(seg.Hdg+ds*k)-math.Sin(seg.Hdg))/k,
		Y: seg.Y - (math.Cos(seg.Hdg+ds*k)-math.Cos(seg.Hdg))/k,
	}
}

func (seg ReferenceSegment) headingAt(ds float64) float64 {
	if !seg.IsArc || seg.Curvature == 0 {
		return seg.Hdg
	}
	return seg.Hdg + ds*seg.Curvature
}

// ReferenceLine is the road's central parametric curve (spec §4
// "Reference line"), built by C7 from an opendrive.RoadPlanView plus an
// optional elevation function for the z-coordinate.
type ReferenceLine struct {
	segments  []ReferenceSegment
	Elevation fun.UnivariateFunction // may be nil, meaning z=0 everywhere
}

// NewReferenceLine builds a ReferenceLine from ordered plan-view
// segments; it does not sort or validate s ordering, and neither does
// roadspace/builder's BuildReferenceLine, which passes the plan view's
// segments through in the order given. Segment lookup assumes that
// order is ascending in s.
func NewReferenceLine(segments []ReferenceSegment, elevation fun.UnivariateFunction) *ReferenceLine {
	return &ReferenceLine{segments: segments, Elevation: elevation}
}

// Domain returns [firstSegment.S, lastSegment.S+lastSegment.Length).
func (r *ReferenceLine) Domain() num.Range {
	if len(r.segments) == 0 {
		return num.Range{}
	}
	first := r.segments[0]
	last := r.segments[len(r.segments)-1]
	return num.ClosedOpenRange(first.S, last.S+last.Length)
}

// selectSegment finds the segment whose [S, S+Length) contains s via
// binary search over the (already sorted) segment starts — the same
// strict-member-selection idiom as fun.ConcatenationContainer, just
// specialised to a Vector3D-valued rather than scalar-valued piece
// (spec §4.1's selection rule applies equally here).
func (r *ReferenceLine) selectSegment(s float64) (ReferenceSegment, error) {
	dom := r.Domain()
	if !dom.ContainsFuzzy(s, num.DefaultTolerance) {
		return ReferenceSegment{}, rerr.New(rerr.OutOfDomain, "s=%g is not on the reference line domain [%v,%v]", s, dom.Lower, dom.Upper)
	}
	i := sort.Search(len(r.segments), func(i int) bool {
		seg := r.segments[i]
		return seg.S+seg.Length > s
	})
	if i == len(r.segments) {
		i = len(r.segments) - 1
	}
	return r.segments[i], nil
}

// PointAt implements geom.Curve3D, adding the elevation profile's z
// contribution on top of the (x,y) plan-view point.
func (r *ReferenceLine) PointAt(s float64) (geom.Vector3D, error) {
	seg, err := r.selectSegment(s)
	if err != nil {
		return geom.Vector3D{}, err
	}
	p := seg.pointAt(s - seg.S)
	if r.Elevation != nil {
		z, err := r.Elevation.ValueFuzzy(s, 1e-7)
		if err != nil {
			return geom.Vector3D{}, err
		}
		p.Z = z
	}
	return p, nil
}

// HeadingAt returns the tangent heading at s, used to orient the
// cross-section pose a surface's (t,h) offsets are applied in.
func (r *ReferenceLine) HeadingAt(s float64) (float64, error) {
	seg, err := r.selectSegment(s)
	if err != nil {
		return 0, err
	}
	return seg.headingAt(s - seg.S), nil
}
