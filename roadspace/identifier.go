// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roadspace implements the road-space data model (spec §3 "C6"):
// Road, LaneSection, Lane, their identifiers and attributes, and the
// curve/surface geometry they bind their C3 function trees to. The
// model is built once by roadspace/builder and is read-only thereafter
// (spec §5 "Concurrency & resource model"), the way this teacher's
// fem.Domain is assembled once from inp.Data and never mutated again.
package roadspace

import "fmt"

// RoadIdentifier names one road within the road network — a thin
// wrapper, not a bare string, so LaneSectionIdentifier and
// LaneIdentifier can re-export it without ambiguity (spec §9
// "Delegation chains").
type RoadIdentifier struct {
	RoadID string
}

func (r RoadIdentifier) String() string { return r.RoadID }

// LaneSectionIdentifier names one lane section within one road: its
// own id plus the curve-relative s at which it begins, plus the
// identifier of the road it belongs to (spec §3).
type LaneSectionIdentifier struct {
	LaneSectionID               int
	LaneSectionCurveRelativeStart float64
	RoadspaceIdentifier          RoadIdentifier
}

func (l LaneSectionIdentifier) String() string {
	return fmt.Sprintf("%s/section%d", l.RoadspaceIdentifier, l.LaneSectionID)
}

// LaneIdentifier names one lane: its own id plus the identifier of the
// lane section that contains it (spec §3).
type LaneIdentifier struct {
	LaneID                int
	LaneSectionIdentifier LaneSectionIdentifier
}

func (l LaneIdentifier) String() string {
	return fmt.Sprintf("%s/lane%d", l.LaneSectionIdentifier, l.LaneID)
}
