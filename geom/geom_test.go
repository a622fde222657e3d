// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_linearRing_dedup(tst *testing.T) {
	pts := []Vector3D{
		{0, 0, 0}, {0, 0, 1e-9}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	}
	ring, err := NewLinearRing(pts, 1e-7)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(ring.Points) != 4 {
		tst.Errorf("expected 4 distinct points after dedup, got %d: %v", len(ring.Points), ring.Points)
	}
}

func Test_linearRing_degenerate(tst *testing.T) {
	pts := []Vector3D{{0, 0, 0}, {0, 0, 1e-9}, {0, 0, 2e-9}}
	_, err := NewLinearRing(pts, 1e-7)
	if err == nil {
		tst.Fatalf("expected a Geometry error for a degenerate ring")
	}
}

func Test_ruledSurface_coincidentBoundaries(tst *testing.T) {
	left := []Vector3D{{0, 0, 0}, {10, 0, 0}}
	right := []Vector3D{{0, 0, 0}, {10, 0, 0}}
	surf, err := RuledSurfaceFromBoundaries(left, right, 1e-7)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !surf.Empty() {
		tst.Errorf("coincident boundaries should yield an empty surface (§8 property 13)")
	}
}

func Test_ruledSurface_basicStrip(tst *testing.T) {
	left := []Vector3D{{0, 1, 0}, {10, 1, 0}}
	right := []Vector3D{{0, -1, 0}, {10, -1, 0}}
	surf, err := RuledSurfaceFromBoundaries(left, right, 1e-7)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(surf.Patches) != 1 {
		tst.Fatalf("expected 1 patch, got %d", len(surf.Patches))
	}
	want := []Vector3D{{0, 1, 0}, {10, 1, 0}, {10, -1, 0}, {0, -1, 0}}
	if diff := cmp.Diff(want, surf.Patches[0].Outer.Points); diff != "" {
		tst.Errorf("unexpected ring points (-want +got):\n%s", diff)
	}
}

func Test_cylinder_sideFaceCount(tst *testing.T) {
	cyl := Cylinder3D{Pose: Pose3D{}, Radius: 1, Height: 2, CircleSlices: 8}
	surf := cyl.ToCompositeSurface()
	// 8 side quads + top + bottom
	if len(surf.Patches) != 10 {
		tst.Errorf("expected 10 patches, got %d", len(surf.Patches))
	}
}
