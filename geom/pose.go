// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Pose3D is a rigid transform: a translation plus a rotation expressed
// as heading/pitch/roll (rad), the convention the road-reference curve,
// superelevation and shape functions compose into a point in global
// space.
type Pose3D struct {
	Position Vector3D
	Heading  float64 // rotation about Z (yaw), tangent direction of travel
	Pitch    float64 // rotation about Y
	Roll     float64 // rotation about X (superelevation / torsion)
}

// rotate applies the pose's heading/pitch/roll to a local-frame vector,
// in roll-pitch-heading application order (roll first, matching how
// superelevation is applied before the tangent heading).
func (p Pose3D) rotate(v Vector3D) Vector3D {
	cr, sr := math.Cos(p.Roll), math.Sin(p.Roll)
	v = Vector3D{v.X, cr*v.Y - sr*v.Z, sr*v.Y + cr*v.Z}

	cp, sp := math.Cos(p.Pitch), math.Sin(p.Pitch)
	v = Vector3D{cp*v.X + sp*v.Z, v.Y, -sp*v.X + cp*v.Z}

	ch, sh := math.Cos(p.Heading), math.Sin(p.Heading)
	v = Vector3D{ch*v.X - sh*v.Y, sh*v.X + ch*v.Y, v.Z}

	return v
}

// Transform maps a point expressed in the pose's local frame (lateral
// offset t to the left, height offset h) into global coordinates.
func (p Pose3D) Transform(t, h float64) Vector3D {
	return p.Position.Add(p.rotate(Vector3D{0, t, h}))
}

// AffineSequence3D is an ordered list of poses applied in sequence; used
// to compose a sweep's cross-sections along a spine (spec §3).
type AffineSequence3D struct {
	Poses []Pose3D
}

// At returns the i-th pose in the sequence.
func (a AffineSequence3D) At(i int) Pose3D { return a.Poses[i] }

// Len returns the number of poses.
func (a AffineSequence3D) Len() int { return len(a.Poses) }
