// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opendrive

// RoadElevationProfile carries the road's height-above-ground-plane
// polynomial segments (not otherwise used by the core's lateral
// reconstruction, but part of a complete OpenDRIVE record tree).
type RoadElevationProfile struct {
	Elevation []ElevationRecord `json:"elevation"`
}

// ElevationRecord is one cubic polynomial elevation(s) = a+b*ds+c*ds^2+d*ds^3.
type ElevationRecord struct {
	S float64 `json:"s"`
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// RoadLateralProfile carries superelevation and (optional) shape.
type RoadLateralProfile struct {
	Superelevation []SuperelevationRecord `json:"superelevation"`
	Shape          []ShapeRecord          `json:"shape,omitempty"`
}

// SuperelevationRecord is one cubic polynomial roll(s) = a+b*ds+c*ds^2+d*ds^3.
type SuperelevationRecord struct {
	S float64 `json:"s"`
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// ShapeRecord is one (s,t)-indexed cubic polynomial describing the
// lateral road-surface shape at station s: height(t) = a+b*dt+c*dt^2+d*dt^3.
type ShapeRecord struct {
	S float64 `json:"s"`
	T float64 `json:"t"`
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// RoadLanes carries the lane offset and the ordered lane sections.
type RoadLanes struct {
	LaneOffset  []LaneOffsetRecord     `json:"laneOffset,omitempty"`
	LaneSection []RoadLanesLaneSection `json:"laneSection"`
}

// LaneOffsetRecord is one cubic polynomial offset(s) = a+b*ds+c*ds^2+d*ds^3,
// the reference line's own lateral shift (distinct from any one lane's
// width).
type LaneOffsetRecord struct {
	S float64 `json:"s"`
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// RoadLanesLaneSection is a contiguous s-range over which the lane
// count is fixed (spec §3 "RoadLanesLaneSection").
type RoadLanesLaneSection struct {
	S      float64      `json:"s"`
	Left   []LaneRecord `json:"left,omitempty"`
	Center []LaneRecord `json:"center,omitempty"`
	Right  []LaneRecord `json:"right,omitempty"`
}

// LaneRecord is one lane's plain-data description.
type LaneRecord struct {
	ID     int                 `json:"id"`
	Type   string              `json:"type"`
	Level  bool                `json:"level"`
	Width  []LaneWidthRecord   `json:"width,omitempty"`
	Height []LaneHeightRecord  `json:"height,omitempty"`
}

// LaneWidthRecord is one cubic polynomial width(sOffset) =
// a+b*ds+c*ds^2+d*ds^3, local to the owning lane section.
type LaneWidthRecord struct {
	SOffset float64 `json:"sOffset"`
	A       float64 `json:"a"`
	B       float64 `json:"b"`
	C       float64 `json:"c"`
	D       float64 `json:"d"`
}

// LaneHeightRecord is one constant inner/outer height offset applying
// from sOffset until the next record (or the section's end).
type LaneHeightRecord struct {
	SOffset     float64 `json:"sOffset"`
	InnerOffset float64 `json:"inner"`
	OuterOffset float64 `json:"outer"`
}
