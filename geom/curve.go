// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/rerr"
)

// Curve3D is the capability every concrete 3D curve shares: it produces
// a global-coordinate point for an s in its domain, and a sampled point
// list at a given step size (spec §3 "AbstractCurve3D").
type Curve3D interface {
	Domain() num.Range
	PointAt(s float64) (Vector3D, error)
}

// Polyline samples c at step Δ over its domain, always including both
// endpoints. Fails with Geometry if Δ <= 0 or the domain is unbounded.
func Polyline(c Curve3D, delta float64) ([]Vector3D, error) {
	dom := c.Domain()
	if delta <= 0 {
		return nil, rerr.New(rerr.Geometry, "sampling step must be positive, got %g", delta)
	}
	if !dom.Bounded() {
		return nil, rerr.New(rerr.Geometry, "cannot sample an unbounded curve domain")
	}
	lo, hi := dom.Lower.Value, dom.Upper.Value
	if hi < lo {
		return nil, rerr.New(rerr.Geometry, "empty domain [%g,%g]", lo, hi)
	}
	var pts []Vector3D
	for s := lo; s < hi; s += delta {
		p, err := c.PointAt(s)
		if err != nil {
			return nil, rerr.New(rerr.Geometry, "sampling curve at s=%g: %v", s, err)
		}
		pts = append(pts, p)
	}
	last, err := c.PointAt(hi)
	if err != nil {
		return nil, rerr.New(rerr.Geometry, "sampling curve at s=%g: %v", hi, err)
	}
	pts = append(pts, last)
	return pts, nil
}

// CurveRelativeSurface3D is a surface parameterised by (s,t) over a
// rectangular curve-relative domain (spec §3
// "AbstractCurveRelativeSurface3D").
type CurveRelativeSurface3D interface {
	SDomain() num.Range
	TDomain() num.Range
	// PointAt evaluates the surface at (s,t); h is an additional local
	// height offset applied after the surface's own cross-section shape
	// (e.g. superelevation) so that a Lane's stored height-offset
	// functions can perturb the surface without needing to know its
	// internal shape representation.
	PointAt(s, t, h float64) (Vector3D, error)
}

// SectionedCurveRelativeParametricSurface3D restricts a
// CurveRelativeSurface3D to a sub-range of its s-domain.
type SectionedCurveRelativeParametricSurface3D struct {
	Source  CurveRelativeSurface3D
	SubS    num.Range
}

// NewSectionedSurface validates subS ⊆ source.SDomain() eagerly.
func NewSectionedSurface(source CurveRelativeSurface3D, subS num.Range) (*SectionedCurveRelativeParametricSurface3D, error) {
	if !source.SDomain().ContainsRange(subS) {
		return nil, rerr.New(rerr.Geometry, "surface restriction [%v,%v] is outside the source s-domain [%v,%v]",
			subS.Lower, subS.Upper, source.SDomain().Lower, source.SDomain().Upper)
	}
	return &SectionedCurveRelativeParametricSurface3D{Source: source, SubS: subS}, nil
}

func (s *SectionedCurveRelativeParametricSurface3D) SDomain() num.Range { return s.SubS }
func (s *SectionedCurveRelativeParametricSurface3D) TDomain() num.Range { return s.Source.TDomain() }
func (s *SectionedCurveRelativeParametricSurface3D) PointAt(sv, t, h float64) (Vector3D, error) {
	if !s.SubS.ContainsFuzzy(sv, num.DefaultTolerance) {
		return Vector3D{}, rerr.New(rerr.OutOfDomain, "s=%g is outside the sectioned domain [%v,%v]", sv, s.SubS.Lower, s.SubS.Upper)
	}
	return s.Source.PointAt(sv, t, h)
}

// CurveOnParametricSurface3D is a 3D curve traced on a
// CurveRelativeSurface3D at a lateral offset function of s (and an
// optional height-offset function of s) — spec §3
// "CurveOnParametricSurface3D".
type CurveOnParametricSurface3D struct {
	Surface       CurveRelativeSurface3D
	LateralOffset func(s float64) (float64, error)
	HeightOffset  func(s float64) (float64, error) // nil means zero height offset
}

func (c CurveOnParametricSurface3D) Domain() num.Range { return c.Surface.SDomain() }

func (c CurveOnParametricSurface3D) PointAt(s float64) (Vector3D, error) {
	t, err := c.LateralOffset(s)
	if err != nil {
		return Vector3D{}, err
	}
	h := 0.0
	if c.HeightOffset != nil {
		h, err = c.HeightOffset(s)
		if err != nil {
			return Vector3D{}, err
		}
	}
	return c.Surface.PointAt(s, t, h)
}
