// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fun

import (
	"math"

	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/rerr"
)

// NewConcatenatedPolynomial implements
// "ConcatenatedFunction.ofPolynomialFunctions" (spec §4.1): starts must
// be ascending (equal neighbours allowed, descending ones rejected); each
// member's length is the distance to the next start, the last member
// running to +∞. A zero-length entry (one followed by an equal start) is
// dropped and recorded in the returned report. If prependConstant is
// non-nil, a constant-valued member is inserted on (-∞, starts[0]) —
// OpenDRIVE piecewise entries often begin at s > 0 even though the
// reference must be defined at s = 0.
func NewConcatenatedPolynomial(starts []float64, coefficients [][]float64, prependConstant *float64) (Built, error) {
	var rep Report
	if len(starts) != len(coefficients) {
		return Built{}, rerr.New(rerr.IllegalState, "starts and coefficients must have the same length (%d != %d)", len(starts), len(coefficients))
	}
	if len(starts) == 0 {
		return Built{Fn: X_AXIS}, nil
	}
	for i := 1; i < len(starts); i++ {
		if starts[i] < starts[i-1] {
			return Built{}, rerr.New(rerr.IllegalState, "starts must be ascending: %g then %g", starts[i-1], starts[i])
		}
	}

	members := make([]UnivariateFunction, 0, len(starts)+1)
	memberStarts := make([]float64, 0, len(starts)+1)

	if prependConstant != nil {
		// Local domain (-∞, 0), anchored so that local 0 maps to the
		// global point starts[0]: global = local + AbsoluteStart gives
		// the absolute domain (-∞, starts[0]).
		members = append(members, LinearFunction{SlopeValue: 0, InterceptValue: *prependConstant, Dom: num.Below(0)})
		memberStarts = append(memberStarts, starts[0])
	}

	for i, start := range starts {
		length := math.Inf(1)
		if i < len(starts)-1 {
			length = starts[i+1] - start
		}
		if length == 0 {
			rep.Addf("dropping entry at s=%g: zero-length after a duplicate start", start)
			continue
		}
		members = append(members, PolynomialFunction{Coefficients: coefficients[i], Length: length})
		memberStarts = append(memberStarts, start)
	}

	placed := make([]Member[UnivariateFunction], len(members))
	for i := range members {
		placed[i] = Member[UnivariateFunction]{Fn: members[i], AbsoluteStart: memberStarts[i]}
	}
	container, err := NewConcatenationContainerAt(placed)
	if err != nil {
		return Built{}, err
	}
	return Built{Fn: ConcatenatedFunction{Container: container}, Messages: rep}, nil
}

// NewConcatenatedLinear implements "ofLinearFunctions": slopes default to
// zero; each member is a LinearFunction over [0, length) except the
// last, which is unbounded above.
func NewConcatenatedLinear(starts, intercepts []float64, slopes []float64) (Built, error) {
	if len(starts) != len(intercepts) {
		return Built{}, rerr.New(rerr.IllegalState, "starts and intercepts must have the same length (%d != %d)", len(starts), len(intercepts))
	}
	if slopes == nil {
		slopes = make([]float64, len(starts))
	}
	if len(slopes) != len(starts) {
		return Built{}, rerr.New(rerr.IllegalState, "starts and slopes must have the same length (%d != %d)", len(starts), len(slopes))
	}
	if len(starts) == 0 {
		return Built{Fn: X_AXIS}, nil
	}
	for i := 1; i < len(starts); i++ {
		if !(starts[i-1] < starts[i]) {
			return Built{}, rerr.New(rerr.IllegalState, "starts must be strictly ascending: %g then %g", starts[i-1], starts[i])
		}
	}

	placed := make([]Member[UnivariateFunction], len(starts))
	for i, start := range starts {
		var dom num.Range
		if i < len(starts)-1 {
			dom = num.ClosedOpenRange(0, starts[i+1]-start)
		} else {
			dom = num.AtLeast(0)
		}
		placed[i] = Member[UnivariateFunction]{
			Fn:            LinearFunction{SlopeValue: slopes[i], InterceptValue: intercepts[i], Dom: dom},
			AbsoluteStart: start,
		}
	}
	container, err := NewConcatenationContainerAt(placed)
	if err != nil {
		return Built{}, err
	}
	return Built{Fn: ConcatenatedFunction{Container: container}}, nil
}
