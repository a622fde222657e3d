// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opendrive is the plain-data record tree this core consumes:
// a validated, already-parsed OpenDRIVE document (spec §3 "OpenDRIVE
// records", §6 "Input contract"). It has no behavior of its own — XML
// schema binding is an external collaborator's concern (spec §1) — and
// every record is JSON-tagged the way this teacher's `inp` package
// tags its own plain-data records.
package opendrive

// RoadPlanView is the ordered list of the road reference line's
// geometry segments.
type RoadPlanView struct {
	Geometry []RoadPlanViewGeometry `json:"geometry"`
}

// RoadPlanViewGeometry is one piecewise segment of the plan view,
// carrying the shared header fields (start s, start position/heading,
// length) plus exactly one of the five shape variants.
type RoadPlanViewGeometry struct {
	S      float64 `json:"s"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Hdg    float64 `json:"hdg"`
	Length float64 `json:"length"`

	Line       *GeometryLine       `json:"line,omitempty"`
	Arc        *GeometryArc        `json:"arc,omitempty"`
	Spiral     *GeometrySpiral     `json:"spiral,omitempty"`
	Poly3      *GeometryPoly3      `json:"poly3,omitempty"`
	ParamPoly3 *GeometryParamPoly3 `json:"paramPoly3,omitempty"`
}

// GeometryLine is a straight segment; it needs no extra parameters.
type GeometryLine struct{}

// GeometryArc is a constant-curvature segment.
type GeometryArc struct {
	Curvature float64 `json:"curvature"`
}

// GeometrySpiral is a clothoid (linearly varying curvature) segment.
// Its arc-length parameterisation (Fresnel integrals) is left to the
// external CityGML-writer collaborator (spec §1 Out-of-scope); this
// core does not read its parameters: BuildReferenceLine degrades the
// segment to a straight line over its declared length, and that length
// still counts in the plan-view length sum.
type GeometrySpiral struct {
	CurvStart float64 `json:"curvStart"`
	CurvEnd   float64 `json:"curvEnd"`
}

// GeometryPoly3 is a cubic polynomial segment v = a + b*u + c*u^2 + d*u^3
// in the segment-local (u,v) frame. Evaluating it is left to the
// external CityGML-writer collaborator, for the same reason as
// GeometrySpiral.
type GeometryPoly3 struct {
	A, B, C, D float64
}

// GeometryParamPoly3 is a pair of cubic polynomials u(p), v(p)
// parameterised by p over [0,1] or [0,length) depending on PRange.
type GeometryParamPoly3 struct {
	AU, BU, CU, DU float64
	AV, BV, CV, DV float64
	PRange         string // "arcLength" or "normalized"
}
