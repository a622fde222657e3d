// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/wangruoyi123456/rtron/rerr"

// RuledSurfaceFromBoundaries builds a CompositeSurface3D connecting two
// equally-sampled ordered point lists — the left and right boundary
// curves of a lane, or the two sides of a lateral filler — into a strip
// of quadrilateral rings (spec §4.3 "Lane surface"). Adjacent duplicate
// points (fuzzy at tol) are removed from each boundary before pairing,
// and a degenerate segment (where both corresponding quad edges
// collapse to points) is silently skipped rather than failing the whole
// surface.
func RuledSurfaceFromBoundaries(left, right []Vector3D, tol float64) (CompositeSurface3D, error) {
	left = removeAdjacentDuplicates(left, tol)
	right = removeAdjacentDuplicates(right, tol)
	if len(left) != len(right) {
		return CompositeSurface3D{}, rerr.New(rerr.Geometry, "boundary point lists must have equal length after dedup (%d != %d)", len(left), len(right))
	}
	if len(left) < 2 {
		return CompositeSurface3D{}, rerr.New(rerr.Geometry, "need at least 2 points per boundary to build a surface, got %d", len(left))
	}
	var patches []Polygon3D
	for i := 0; i+1 < len(left); i++ {
		quad := []Vector3D{left[i], left[i+1], right[i+1], right[i]}
		ring, err := NewLinearRing(quad, tol)
		if err != nil {
			// a degenerate quad (e.g. both boundaries coincide over
			// this segment) contributes no patch rather than failing
			// the whole surface.
			continue
		}
		patches = append(patches, NewPolygon(ring))
	}
	return CompositeSurface3D{Patches: patches}, nil
}
