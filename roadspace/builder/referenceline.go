// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/wangruoyi123456/rtron/fun"
	"github.com/wangruoyi123456/rtron/opendrive"
	"github.com/wangruoyi123456/rtron/roadspace"
)

// BuildReferenceLine translates a RoadPlanView into a
// roadspace.ReferenceLine. Line and arc segments are evaluated exactly;
// a segment of any other shape is degraded to a straight line over its
// declared length and a warning is recorded — this core's graceful
// repair of a shape whose arc-length parameterisation (Fresnel
// integrals for a spiral, root-finding for a cubic) is left to the
// external CityGML writer (spec §1 out-of-scope).
func BuildReferenceLine(planView opendrive.RoadPlanView, elevation fun.UnivariateFunction) (*roadspace.ReferenceLine, fun.Report) {
	var rep fun.Report
	segments := make([]roadspace.ReferenceSegment, len(planView.Geometry))
	for i, g := range planView.Geometry {
		seg := roadspace.ReferenceSegment{S: g.S, X: g.X, Y: g.Y, Hdg: g.Hdg, Length: g.Length}
		switch {
		case g.Line != nil:
			// straight: default zero-value fields are already correct.
		case g.Arc != nil:
			seg.IsArc = true
			seg.Curvature = g.Arc.Curvature
		default:
			rep.Addf("plan-view segment at s=%g has no evaluable shape (spiral/poly3/paramPoly3); degrading to a straight line", g.S)
		}
		segments[i] = seg
	}
	return roadspace.NewReferenceLine(segments, elevation), rep
}
