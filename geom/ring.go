// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/wangruoyi123456/rtron/rerr"

// LinearRing3D is a closed loop of at least 3 distinct points (spec §3
// "LinearRing3D"). Points are stored open (the ring is implicitly closed
// from the last point back to the first).
type LinearRing3D struct {
	Points []Vector3D
}

// NewLinearRing removes adjacent duplicate points (fuzzy equality at
// tol) and fails with Geometry if fewer than 3 distinct points remain
// (spec §7 Geometry "degenerate ring", §8 property 13).
func NewLinearRing(points []Vector3D, tol float64) (LinearRing3D, error) {
	deduped := removeAdjacentDuplicates(points, tol)
	if len(deduped) >= 2 && deduped[0].FuzzyEqual(deduped[len(deduped)-1], tol) {
		deduped = deduped[:len(deduped)-1]
	}
	if len(deduped) < 3 {
		return LinearRing3D{}, rerr.New(rerr.Geometry, "linear ring requires at least 3 distinct points, got %d", len(deduped))
	}
	return LinearRing3D{Points: deduped}, nil
}

// removeAdjacentDuplicates drops any point that is a fuzzy-equal repeat
// of its immediate predecessor.
func removeAdjacentDuplicates(points []Vector3D, tol float64) []Vector3D {
	if len(points) == 0 {
		return nil
	}
	out := make([]Vector3D, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		if p.FuzzyEqual(out[len(out)-1], tol) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Polygon3D is a planar-ish polygon embedded in 3D: an outer boundary
// ring plus zero or more hole rings (spec §3 "Polygon3D").
type Polygon3D struct {
	Outer LinearRing3D
	Holes []LinearRing3D
}

// NewPolygon builds a Polygon3D with no holes.
func NewPolygon(outer LinearRing3D) Polygon3D {
	return Polygon3D{Outer: outer}
}

// PointsEqual reports whether two point lists are element-wise
// fuzzy-equal — used to detect coincident lane boundaries before
// producing a filler surface (spec §4.3, §8 property 13).
func PointsEqual(a, b []Vector3D, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].FuzzyEqual(b[i], tol) {
			return false
		}
	}
	return true
}
