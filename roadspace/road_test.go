// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadspace

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_property12_isProcessable checks §8 property 12's two failure
// modes and its passing case.
func Test_property12_isProcessable(tst *testing.T) {

	chk.PrintTitle("property12")

	road := straightRoad(tst, 3.5, 3.5, nil)

	if err := road.IsProcessable(100, 1e-7); err != nil {
		tst.Errorf("expected a matching length sum to be processable: %v", err)
	}
	if err := road.IsProcessable(99.5, 1e-7); err == nil {
		tst.Errorf("expected a length mismatch beyond ε to fail isProcessable")
	}

	road.HasLateralShape = true
	road.HasLaneOffset = true
	if err := road.IsProcessable(100, 1e-7); err == nil {
		tst.Errorf("expected simultaneous shape and lane offset to fail isProcessable")
	}
}
