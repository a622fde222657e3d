// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder

import (
	"fmt"
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/wangruoyi123456/rtron/config"
	"github.com/wangruoyi123456/rtron/fun"
	"github.com/wangruoyi123456/rtron/opendrive"
	"github.com/wangruoyi123456/rtron/roadspace"
)

// BuildRoad is C7's top-level entry point: it translates one
// opendrive.Road into a roadspace.Road, returning every non-fatal
// repair warning gathered along the way (spec §3 "Lifecycle": "all
// data is constructed by C7 in a single pass").
func BuildRoad(src opendrive.Road, cfg config.OpenDriveToRoadspace) (*roadspace.Road, fun.Report, error) {
	var rep fun.Report

	elevation, elevRep, err := buildTracked(func() (fun.Built, error) { return BuildElevation(src.ElevationProfile) })
	if err != nil {
		return nil, rep, fmt.Errorf("building elevation: %w", err)
	}
	rep.Append(elevRep)

	refLine, refRep := BuildReferenceLine(src.PlanView, elevation.Fn)
	rep.Append(refRep)

	superelevation, superRep, err := buildTracked(func() (fun.Built, error) { return BuildSuperelevation(src.LateralProfile) })
	if err != nil {
		return nil, rep, fmt.Errorf("building superelevation: %w", err)
	}
	rep.Append(superRep)

	shape, shapeRep, err := BuildLateralShape(src.LateralProfile.Shape)
	if err != nil {
		return nil, rep, fmt.Errorf("building lateral shape: %w", err)
	}
	rep.Append(shapeRep)

	laneOffset, offsetRep, err := buildTracked(func() (fun.Built, error) { return BuildLaneOffset(src.Lanes.LaneOffset) })
	if err != nil {
		return nil, rep, fmt.Errorf("building lane offset: %w", err)
	}
	rep.Append(offsetRep)

	surface := &roadspace.RoadSurface{Reference: refLine, Superelevation: superelevation.Fn, Shape: shape}
	surfaceNoTorsion := &roadspace.RoadSurface{Reference: refLine, Superelevation: superelevation.Fn, Shape: shape, IgnoreTorsion: true}

	sortedSections := append([]opendrive.RoadLanesLaneSection(nil), src.Lanes.LaneSection...)
	sort.SliceStable(sortedSections, func(i, j int) bool { return sortedSections[i].S < sortedSections[j].S })

	sections := make([]*roadspace.LaneSection, len(sortedSections))
	for i, sec := range sortedSections {
		built, secRep, err := buildLaneSection(i, sec, cfg)
		if err != nil {
			return nil, rep, fmt.Errorf("building lane section %d: %w", i, err)
		}
		rep.Append(secRep)
		sections[i] = built
	}

	hasShape := len(src.LateralProfile.Shape) > 0
	hasLaneOffset := len(src.Lanes.LaneOffset) > 0

	id := roadspace.RoadIdentifier{RoadID: src.ID}
	road, err := roadspace.NewRoad(id, src.Length, surface, surfaceNoTorsion, laneOffset.Fn, sections, hasShape, hasLaneOffset)
	if err != nil {
		return nil, rep, err
	}

	if cfg.Verbose {
		for _, msg := range rep {
			io.Pfyel("rtron: %s: %s\n", src.ID, msg)
		}
	}

	return road, rep, nil
}

// buildTracked adapts a fun.Built-returning step into (fn, report,
// error) for inline use above.
func buildTracked(step func() (fun.Built, error)) (fun.Built, fun.Report, error) {
	built, err := step()
	if err != nil {
		return fun.Built{}, nil, err
	}
	return built, built.Messages, nil
}

// buildLaneSection translates one RoadLanesLaneSection into a
// roadspace.LaneSection, anchoring every lane-local record at this
// section's absolute curve-position start.
func buildLaneSection(index int, sec opendrive.RoadLanesLaneSection, cfg config.OpenDriveToRoadspace) (*roadspace.LaneSection, fun.Report, error) {
	var rep fun.Report
	lanes := make(map[int]*roadspace.Lane)
	for _, rec := range append(append([]opendrive.LaneRecord(nil), sec.Left...), sec.Right...) {
		if rec.ID == 0 {
			continue
		}
		lane, laneRep, err := buildLane(rec, sec.S, cfg)
		if err != nil {
			return nil, rep, fmt.Errorf("lane %d: %w", rec.ID, err)
		}
		rep.Append(laneRep)
		lanes[rec.ID] = lane
	}
	laneSection, err := roadspace.NewLaneSection(index, sec.S, lanes)
	if err != nil {
		return nil, rep, err
	}
	return laneSection, rep, nil
}

func buildLane(rec opendrive.LaneRecord, sectionStart float64, cfg config.OpenDriveToRoadspace) (*roadspace.Lane, fun.Report, error) {
	var rep fun.Report
	width, err := BuildLaneWidth(rec.Width, sectionStart)
	if err != nil {
		return nil, rep, err
	}
	rep.Append(width.Messages)

	inner, outer, err := BuildLaneHeightOffset(rec.Height, sectionStart)
	if err != nil {
		return nil, rep, err
	}
	rep.Append(inner.Messages)
	rep.Append(outer.Messages)

	attrs := roadspace.AttributeSet{}.
		Add(roadspace.NewStringAttribute("laneType", rec.Type)).
		Add(roadspace.NewIntAttribute("laneId", rec.ID)).
		WithPrefix(cfg.AttributesPrefix)

	return &roadspace.Lane{
		ID:                rec.ID,
		Width:             width.Fn,
		InnerHeightOffset: inner.Fn,
		OuterHeightOffset: outer.Fn,
		Level:             rec.Level,
		Type:              rec.Type,
		Attributes:        attrs,
	}, rep, nil
}
