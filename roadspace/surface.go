// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadspace

import (
	"sort"

	"github.com/wangruoyi123456/rtron/fun"
	"github.com/wangruoyi123456/rtron/geom"
	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/rerr"
)

func outOfSDomain(s float64, dom num.Range) error {
	return rerr.New(rerr.OutOfDomain, "s=%g is outside the surface's s-domain [%v,%v]", s, dom.Lower, dom.Upper)
}

// LateralShapeProfile carries the lateral road-surface shape (spec §3
// "lateralProfile ... optional shape"): at each of a set of stations
// s₁ < s₂ < …, a height(t) function describing the cross-section
// cut at that station. A query at an s between stations uses the last
// station at or before it — the shape "holds" until superseded, the
// same piecewise-constant-in-s convention every other OpenDRIVE
// per-station record follows.
type LateralShapeProfile struct {
	Stations  []float64
	Functions []fun.UnivariateFunction
}

// HeightAt evaluates the shape at (s,t); an empty profile contributes 0
// everywhere.
func (p *LateralShapeProfile) HeightAt(s, t float64) (float64, error) {
	if p == nil || len(p.Stations) == 0 {
		return 0, nil
	}
	i := sort.Search(len(p.Stations), func(i int) bool { return p.Stations[i] > s }) - 1
	if i < 0 {
		i = 0
	}
	return p.Functions[i].ValueFuzzy(t, 1e-7)
}

// RoadSurface is the concrete geom.CurveRelativeSurface3D this core
// binds to a reference line plus superelevation and (optional) lateral
// shape (spec §3 "AbstractCurveRelativeSurface3D", §4.3 "surface" /
// "surfaceWithoutTorsion"). IgnoreTorsion selects the
// surfaceWithoutTorsion variant by forcing roll to 0 regardless of the
// superelevation function.
type RoadSurface struct {
	Reference      *ReferenceLine
	Superelevation fun.UnivariateFunction // roll(s); nil means always 0
	Shape          *LateralShapeProfile   // nil means always 0
	IgnoreTorsion  bool
}

func (s *RoadSurface) SDomain() num.Range { return s.Reference.Domain() }

// TDomain is unbounded; OpenDRIVE does not itself cap how far a lane
// offset or lane width can carry a point laterally.
func (s *RoadSurface) TDomain() num.Range { return num.All() }

func (s *RoadSurface) PointAt(sv, t, h float64) (geom.Vector3D, error) {
	if !s.SDomain().ContainsFuzzy(sv, 1e-7) {
		return geom.Vector3D{}, outOfSDomain(sv, s.SDomain())
	}
	pos, err := s.Reference.PointAt(sv)
	if err != nil {
		return geom.Vector3D{}, err
	}
	hdg, err := s.Reference.HeadingAt(sv)
	if err != nil {
		return geom.Vector3D{}, err
	}
	roll := 0.0
	if !s.IgnoreTorsion && s.Superelevation != nil {
		roll, err = s.Superelevation.ValueFuzzy(sv, 1e-7)
		if err != nil {
			return geom.Vector3D{}, err
		}
	}
	shapeHeight, err := s.Shape.HeightAt(sv, t)
	if err != nil {
		return geom.Vector3D{}, err
	}
	pose := geom.Pose3D{Position: pos, Heading: hdg, Roll: roll}
	return pose.Transform(t, shapeHeight+h), nil
}
