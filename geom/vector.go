// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the 3D geometry kit (spec §3/§4's C4):
// vectors, poses, affine transform sequences, curves and curve-relative
// parametric surfaces, linear rings, composite surfaces, and the small
// set of solid primitives (cuboid, cylinder, parametric sweep) the
// road-space model composes into lane surfaces and filler surfaces.
package geom

import "math"

// Verbose enables diagnostic printing from this package's tests.
var Verbose = false

// DefaultTolerance mirrors num.DefaultTolerance for fuzzy point
// comparisons without importing num into every small helper.
const DefaultTolerance = 1e-7

// Vector3D is a point or free vector in global Euclidean space.
type Vector3D struct {
	X, Y, Z float64
}

func (v Vector3D) Add(o Vector3D) Vector3D { return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3D) Sub(o Vector3D) Vector3D { return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3D) Scale(s float64) Vector3D { return Vector3D{v.X * s, v.Y * s, v.Z * s} }

func (v Vector3D) Dot(o Vector3D) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3D) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length; the zero vector is returned
// unchanged.
func (v Vector3D) Normalize() Vector3D {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// FuzzyEqual reports whether v and o are within tol in each coordinate.
func (v Vector3D) FuzzyEqual(o Vector3D, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}
