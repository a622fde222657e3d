// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Cuboid3D is an axis-aligned (in its own pose's local frame) box of the
// given length (local X), width (local Y) and height (local Z), centred
// at its pose's position (spec §3 "Cuboid3D").
type Cuboid3D struct {
	Pose                   Pose3D
	Length, Width, Height float64
}

// ToCompositeSurface builds the 6 rectangular faces of the cuboid.
func (c Cuboid3D) ToCompositeSurface() CompositeSurface3D {
	hl, hw, hh := c.Length/2, c.Width/2, c.Height/2
	local := [8]Vector3D{
		{-hl, -hw, -hh}, {hl, -hw, -hh}, {hl, hw, -hh}, {-hl, hw, -hh},
		{-hl, -hw, hh}, {hl, -hw, hh}, {hl, hw, hh}, {-hl, hw, hh},
	}
	g := func(i int) Vector3D {
		v := local[i]
		return c.Pose.Transform(v.Y, v.Z+0).addX(v.X, c.Pose)
	}
	// faces: bottom, top, and the 4 sides, each wound consistently.
	faceIdx := [6][4]int{
		{0, 1, 2, 3}, // bottom
		{4, 7, 6, 5}, // top
		{0, 4, 5, 1}, // front
		{1, 5, 6, 2}, // right
		{2, 6, 7, 3}, // back
		{3, 7, 4, 0}, // left
	}
	var patches []Polygon3D
	for _, f := range faceIdx {
		pts := []Vector3D{g(f[0]), g(f[1]), g(f[2]), g(f[3])}
		ring, err := NewLinearRing(pts, 1e-9)
		if err != nil {
			continue
		}
		patches = append(patches, NewPolygon(ring))
	}
	return CompositeSurface3D{Patches: patches}
}

// addX offsets a pose-transformed point further along the pose's local
// X axis (heading direction) by dx — Pose3D.Transform only exposes
// lateral/height offsets, so a cuboid's along-heading extent is applied
// as a small additional rotation-aware shift here.
func (p Vector3D) addX(dx float64, pose Pose3D) Vector3D {
	return p.Add(pose.rotate(Vector3D{dx, 0, 0}))
}

// Cylinder3D is a right circular cylinder of the given radius and
// height, centred at its pose's position with its axis along the pose's
// local Z (spec §3 "Cylinder3D").
type Cylinder3D struct {
	Pose         Pose3D
	Radius       float64
	Height       float64
	CircleSlices int // number of discretization slices around the circle
}

// ToCompositeSurface discretizes the cylinder into CircleSlices side
// quads plus one CircleSlices-gon each for the bottom and top caps.
func (c Cylinder3D) ToCompositeSurface() CompositeSurface3D {
	slices := c.CircleSlices
	if slices < 3 {
		slices = 3
	}
	hh := c.Height / 2
	bottom := make([]Vector3D, slices)
	top := make([]Vector3D, slices)
	for i := 0; i < slices; i++ {
		theta := 2 * math.Pi * float64(i) / float64(slices)
		x, y := c.Radius*math.Cos(theta), c.Radius*math.Sin(theta)
		bottom[i] = c.Pose.Transform(y, -hh).addX(x, c.Pose)
		top[i] = c.Pose.Transform(y, hh).addX(x, c.Pose)
	}
	var patches []Polygon3D
	if ring, err := NewLinearRing(bottom, 1e-9); err == nil {
		patches = append(patches, NewPolygon(ring))
	}
	if ring, err := NewLinearRing(top, 1e-9); err == nil {
		patches = append(patches, NewPolygon(ring))
	}
	for i := 0; i < slices; i++ {
		j := (i + 1) % slices
		quad := []Vector3D{bottom[i], bottom[j], top[j], top[i]}
		if ring, err := NewLinearRing(quad, 1e-9); err == nil {
			patches = append(patches, NewPolygon(ring))
		}
	}
	return CompositeSurface3D{Patches: patches}
}

// ParametricSweep3D sweeps a closed 2D cross-section (in the local Y/Z
// plane: lateral t and height h pairs) along a spine of poses, producing
// a ruled surface between consecutive cross-sections (spec §3
// "ParametricSweep3D").
type ParametricSweep3D struct {
	CrossSection [][2]float64 // (t, h) pairs, in order around the profile
	Spine        AffineSequence3D
}

// ToCompositeSurface builds one ruled patch per spine segment, per
// cross-section edge.
func (sw ParametricSweep3D) ToCompositeSurface() CompositeSurface3D {
	n := sw.Spine.Len()
	if n < 2 || len(sw.CrossSection) < 2 {
		return CompositeSurface3D{}
	}
	var patches []Polygon3D
	for i := 0; i+1 < n; i++ {
		p0, p1 := sw.Spine.At(i), sw.Spine.At(i+1)
		for k := 0; k < len(sw.CrossSection); k++ {
			l := (k + 1) % len(sw.CrossSection)
			a, b := sw.CrossSection[k], sw.CrossSection[l]
			quad := []Vector3D{
				p0.Transform(a[0], a[1]),
				p0.Transform(b[0], b[1]),
				p1.Transform(b[0], b[1]),
				p1.Transform(a[0], a[1]),
			}
			if ring, err := NewLinearRing(quad, 1e-9); err == nil {
				patches = append(patches, NewPolygon(ring))
			}
		}
	}
	return CompositeSurface3D{Patches: patches}
}
