// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// CompositeSurface3D is an unordered collection of polygon patches that
// together make up one logical surface — a lane surface or a filler
// surface (spec §3, §4.3).
type CompositeSurface3D struct {
	Patches []Polygon3D
}

// NewCompositeSurface wraps a set of rings, each as a hole-free patch.
func NewCompositeSurface(rings ...LinearRing3D) CompositeSurface3D {
	patches := make([]Polygon3D, len(rings))
	for i, r := range rings {
		patches[i] = NewPolygon(r)
	}
	return CompositeSurface3D{Patches: patches}
}

// Empty reports whether the surface has no patches — the result of a
// lane boundary pair that coincided and so produced no filler (spec §8
// property 13).
func (c CompositeSurface3D) Empty() bool { return len(c.Patches) == 0 }

// Append merges another composite surface's patches into c.
func (c *CompositeSurface3D) Append(o CompositeSurface3D) {
	c.Patches = append(c.Patches, o.Patches...)
}
