// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadspace

import (
	"sort"

	"github.com/wangruoyi123456/rtron/fun"
	"github.com/wangruoyi123456/rtron/rerr"
)

// Lane is one lane's width and height-offset functions plus its
// attributes (spec §3 "Lane"). Lane 0, the reference/center lane, is
// never represented by a Lane value — it is implicit in every
// LaneSection's lane map.
type Lane struct {
	ID                int
	Width             fun.UnivariateFunction
	InnerHeightOffset fun.UnivariateFunction
	OuterHeightOffset fun.UnivariateFunction
	Level             bool
	Type              string
	Attributes        AttributeSet
}

// LaneSection is a contiguous s-range of a road over which the lane
// count is fixed (spec §3 "LaneSection").
type LaneSection struct {
	ID                 int
	CurvePositionStart float64
	Lanes              map[int]*Lane
}

// NewLaneSection validates the invariants spec §3 lists for a
// LaneSection — non-empty, key equals lane id, ids form a contiguous
// range excluding 0 — eagerly, refusing to build an invalid section
// (spec §7 "Propagation policy").
func NewLaneSection(id int, curvePositionStart float64, lanes map[int]*Lane) (*LaneSection, error) {
	if len(lanes) == 0 {
		return nil, rerr.New(rerr.IllegalState, "lane section %d has no lanes", id)
	}
	ids := make([]int, 0, len(lanes))
	for key, lane := range lanes {
		if key == 0 {
			return nil, rerr.New(rerr.IllegalState, "lane section %d: lane id 0 is the reference lane and must not appear in the lane map", id)
		}
		if lane == nil {
			return nil, rerr.New(rerr.IllegalState, "lane section %d: nil lane at key %d", id, key)
		}
		if lane.ID != key {
			return nil, rerr.New(rerr.IllegalState, "lane section %d: map key %d does not match lane.ID %d", id, key, lane.ID)
		}
		ids = append(ids, key)
	}
	sort.Ints(ids)
	if err := checkContiguousExcludingZero(ids); err != nil {
		return nil, rerr.New(rerr.IllegalState, "lane section %d: %v", id, err)
	}
	return &LaneSection{ID: id, CurvePositionStart: curvePositionStart, Lanes: lanes}, nil
}

// checkContiguousExcludingZero verifies the sorted ids form one
// unbroken range of negatives and one unbroken range of positives that,
// together, tile a single contiguous integer range around the missing
// 0 (spec §8 property 8).
func checkContiguousExcludingZero(sortedIDs []int) error {
	var negatives, positives []int
	for _, id := range sortedIDs {
		if id < 0 {
			negatives = append(negatives, id)
		} else {
			positives = append(positives, id)
		}
	}
	if len(negatives) > 0 {
		// negatives sorted ascending, e.g. -3,-2,-1: must end at -1 and
		// be contiguous.
		if negatives[len(negatives)-1] != -1 {
			return rerr.New(rerr.IllegalState, "right-side lane ids must reach -1, got max %d", negatives[len(negatives)-1])
		}
		for i := 1; i < len(negatives); i++ {
			if negatives[i] != negatives[i-1]+1 {
				return rerr.New(rerr.IllegalState, "right-side lane ids are not contiguous: %v", negatives)
			}
		}
	}
	if len(positives) > 0 {
		if positives[0] != 1 {
			return rerr.New(rerr.IllegalState, "left-side lane ids must start at 1, got min %d", positives[0])
		}
		for i := 1; i < len(positives); i++ {
			if positives[i] != positives[i-1]+1 {
				return rerr.New(rerr.IllegalState, "left-side lane ids are not contiguous: %v", positives)
			}
		}
	}
	return nil
}

// SortedLaneIDs returns this section's lane ids in ascending order —
// used by C8's filler-surface and lateral-offset algorithms, which both
// need a deterministic neighbor ordering (spec §4.3, §9 open question).
func (s *LaneSection) SortedLaneIDs() []int {
	ids := make([]int, 0, len(s.Lanes))
	for id := range s.Lanes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Lane looks up a lane by id, failing with NotFound rather than
// returning the zero value silently.
func (s *LaneSection) Lane(id int) (*Lane, error) {
	lane, ok := s.Lanes[id]
	if !ok {
		return nil, rerr.New(rerr.NotFound, "lane section %d has no lane %d", s.ID, id)
	}
	return lane, nil
}
