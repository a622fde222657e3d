// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder implements C7: translating an opendrive.Road's
// piecewise-polynomial records into the fun/geom trees a roadspace.Road
// is built from, accumulating non-fatal repair warnings along the way
// (spec §4.2, §9 "Result-with-message idiom") the way this teacher's
// inp package builds a fun.TimeSpace tree from raw FuncData records and
// reports what it had to coerce via gosl/io.
package builder

import (
	"sort"

	"github.com/samber/lo"

	"github.com/wangruoyi123456/rtron/fun"
	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/opendrive"
	"github.com/wangruoyi123456/rtron/roadspace"
)

// keyed is any piecewise record carrying a position key (s or sOffset)
// and four polynomial coefficients.
type keyed struct {
	key        float64
	a, b, c, d float64
}

// stripEqualKeys sorts entries by key ascending and drops all but the
// last of any run of equal keys, recording a report entry per drop
// (spec §4.2 step 1): the earlier of an equal-key pair is dropped, so
// the surviving entry is the later one in input order, which after a
// stable sort by key is the one that appears last among equal keys.
func stripEqualKeys(entries []keyed, label string, rep *fun.Report) []keyed {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	out := make([]keyed, 0, len(entries))
	for i, e := range entries {
		if i+1 < len(entries) && entries[i+1].key == e.key {
			rep.Addf("removing %s entry at key=%g: a later entry with the same key takes precedence", label, e.key)
			continue
		}
		out = append(out, e)
	}
	return out
}

// buildPiecewisePolynomial is the shared path for every piecewise
// record group: elevation, superelevation, laneOffset, laneWidth and
// each lateral-shape station. Each gets a constant prefixValue prepended
// over (-∞, starts[0]) per spec §4.2 step 2; an empty group yields that
// constant (0 if prefixValue is nil) over the whole real line.
func buildPiecewisePolynomial(entries []keyed, label string, prefixValue *float64) (fun.Built, error) {
	var rep fun.Report
	entries = stripEqualKeys(entries, label, &rep)
	if len(entries) == 0 {
		value := 0.0
		if prefixValue != nil {
			value = *prefixValue
		}
		return fun.Built{Fn: fun.NewConstant(value, num.All()), Messages: rep}, nil
	}
	starts := make([]float64, len(entries))
	coeffs := make([][]float64, len(entries))
	for i, e := range entries {
		starts[i] = e.key
		coeffs[i] = []float64{e.a, e.b, e.c, e.d}
	}
	built, err := fun.NewConcatenatedPolynomial(starts, coeffs, prefixValue)
	if err != nil {
		return fun.Built{}, err
	}
	built.Messages.Append(rep)
	return built, nil
}

func zeroPrefix() *float64 {
	v := 0.0
	return &v
}

// BuildElevation translates a RoadElevationProfile into a
// fun.UnivariateFunction over absolute s (spec §3 "elevationProfile").
func BuildElevation(profile opendrive.RoadElevationProfile) (fun.Built, error) {
	entries := lo.Map(profile.Elevation, func(r opendrive.ElevationRecord, _ int) keyed {
		return keyed{key: r.S, a: r.A, b: r.B, c: r.C, d: r.D}
	})
	return buildPiecewisePolynomial(entries, "elevation", zeroPrefix())
}

// BuildSuperelevation translates a lateral profile's superelevation
// entries into roll(s) (spec §4.2 step 2: "for superelevation ...
// prepends a constant 0 prefix").
func BuildSuperelevation(profile opendrive.RoadLateralProfile) (fun.Built, error) {
	entries := lo.Map(profile.Superelevation, func(r opendrive.SuperelevationRecord, _ int) keyed {
		return keyed{key: r.S, a: r.A, b: r.B, c: r.C, d: r.D}
	})
	return buildPiecewisePolynomial(entries, "superelevation", zeroPrefix())
}

// BuildLaneOffset translates the road's laneOffset entries into
// offset(s) (spec §4.2 step 2).
func BuildLaneOffset(records []opendrive.LaneOffsetRecord) (fun.Built, error) {
	entries := lo.Map(records, func(r opendrive.LaneOffsetRecord, _ int) keyed {
		return keyed{key: r.S, a: r.A, b: r.B, c: r.C, d: r.D}
	})
	return buildPiecewisePolynomial(entries, "laneOffset", zeroPrefix())
}

// BuildLaneWidth translates one lane's width entries, anchoring each
// entry's section-local sOffset at the lane section's absolute start so
// the resulting function is defined over the road's global s (spec §3
// "every piecewise entry has ... sOffset (for lane-local) key"; §4.2
// step 2: prepends a constant 0 prefix, and if the first entry's
// sOffset > 0, warns that the undefined region defaults to zero width).
func BuildLaneWidth(records []opendrive.LaneWidthRecord, sectionStart float64) (fun.Built, error) {
	var rep fun.Report
	if len(records) > 0 {
		sorted := append([]opendrive.LaneWidthRecord(nil), records...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SOffset < sorted[j].SOffset })
		if sorted[0].SOffset > 0 {
			rep.Addf("lane width undefined before sOffset=%g: defaulting to zero width", sorted[0].SOffset)
		}
	}
	entries := lo.Map(records, func(r opendrive.LaneWidthRecord, _ int) keyed {
		return keyed{key: sectionStart + r.SOffset, a: r.A, b: r.B, c: r.C, d: r.D}
	})
	built, err := buildPiecewisePolynomial(entries, "laneWidth", zeroPrefix())
	if err != nil {
		return fun.Built{}, err
	}
	built.Messages.Append(rep)
	return built, nil
}

// BuildLaneHeightOffset translates one lane's height entries into a
// pair of piecewise-constant functions (inner, outer), anchored the
// same way as BuildLaneWidth. An empty list yields a constant-zero
// function for both (spec §3 "innerHeightOffset, outerHeightOffset").
func BuildLaneHeightOffset(records []opendrive.LaneHeightRecord, sectionStart float64) (innerBuilt, outerBuilt fun.Built, err error) {
	if len(records) == 0 {
		zero := fun.NewConstant(0, num.All())
		return fun.Built{Fn: zero}, fun.Built{Fn: zero}, nil
	}
	sorted := append([]opendrive.LaneHeightRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SOffset < sorted[j].SOffset })
	starts := make([]float64, len(sorted))
	inners := make([]float64, len(sorted))
	outers := make([]float64, len(sorted))
	for i, r := range sorted {
		starts[i] = sectionStart + r.SOffset
		inners[i] = r.InnerOffset
		outers[i] = r.OuterOffset
	}
	innerBuilt, err = fun.NewConcatenatedLinear(starts, inners, nil)
	if err != nil {
		return fun.Built{}, fun.Built{}, err
	}
	outerBuilt, err = fun.NewConcatenatedLinear(starts, outers, nil)
	if err != nil {
		return fun.Built{}, fun.Built{}, err
	}
	return innerBuilt, outerBuilt, nil
}

// BuildLateralShape groups shape entries by station s and builds one
// concatenated height(t) function per station (spec §4.2 step 3). An
// empty input yields an empty profile (HeightAt then reports 0
// everywhere).
func BuildLateralShape(records []opendrive.ShapeRecord) (*roadspace.LateralShapeProfile, fun.Report, error) {
	if len(records) == 0 {
		return &roadspace.LateralShapeProfile{}, nil, nil
	}
	grouped := lo.GroupBy(records, func(r opendrive.ShapeRecord) float64 { return r.S })
	stations := lo.Keys(grouped)
	sort.Float64s(stations)

	profile := &roadspace.LateralShapeProfile{Stations: stations}
	var rep fun.Report
	for _, s := range stations {
		group := grouped[s]
		sort.SliceStable(group, func(i, j int) bool { return group[i].T < group[j].T })
		entries := lo.Map(group, func(r opendrive.ShapeRecord, _ int) keyed {
			return keyed{key: r.T, a: r.A, b: r.B, c: r.C, d: r.D}
		})
		built, err := buildPiecewisePolynomial(entries, "shape", zeroPrefix())
		if err != nil {
			return nil, nil, err
		}
		rep.Append(built.Messages)
		profile.Functions = append(profile.Functions, built.Fn)
	}
	return profile, rep, nil
}
