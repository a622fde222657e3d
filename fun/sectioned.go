// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fun

import (
	"github.com/wangruoyi123456/rtron/num"
	"github.com/wangruoyi123456/rtron/rerr"
)

// SectionedUnivariateFunction restricts Source to SubRange ⊆
// Source.Domain(); its own domain begins at 0 with the width of
// SubRange (spec §3/§4.1).
type SectionedUnivariateFunction struct {
	Source   UnivariateFunction
	SubRange num.Range
}

// NewSectioned validates subRange ⊆ source.Domain() eagerly (§7
// IllegalState on violation) and returns the sectioned view.
func NewSectioned(source UnivariateFunction, subRange num.Range) (SectionedUnivariateFunction, error) {
	if !source.Domain().ContainsRange(subRange) {
		return SectionedUnivariateFunction{}, rerr.New(rerr.IllegalState,
			"sub-range [%v,%v] is not contained in the source domain [%v,%v]",
			subRange.Lower, subRange.Upper, source.Domain().Lower, source.Domain().Upper)
	}
	return SectionedUnivariateFunction{Source: source, SubRange: subRange}, nil
}

func (f SectionedUnivariateFunction) Domain() num.Range {
	lower := num.Endpoint{Value: 0, Kind: f.SubRange.Lower.Kind}
	var upper num.Endpoint
	if f.SubRange.UpperBounded() {
		upper = num.Endpoint{Value: f.SubRange.Width(), Kind: f.SubRange.Upper.Kind}
	} else {
		upper = num.Endpoint{Value: f.SubRange.Upper.Value, Kind: num.Unbounded}
	}
	return num.Range{Lower: lower, Upper: upper}
}

func (f SectionedUnivariateFunction) translate(x float64) float64 {
	return f.SubRange.Lower.Value + x
}

func (f SectionedUnivariateFunction) Value(x float64) (float64, error) {
	if err := checkDomain(f.Domain(), x); err != nil {
		return 0, err
	}
	return f.Source.Value(f.translate(x))
}

func (f SectionedUnivariateFunction) Slope(x float64) (float64, error) {
	if err := checkDomain(f.Domain(), x); err != nil {
		return 0, err
	}
	return f.Source.Slope(f.translate(x))
}

func (f SectionedUnivariateFunction) ValueFuzzy(x, tol float64) (float64, error) {
	if err := checkDomainFuzzy(f.Domain(), x, tol); err != nil {
		return 0, err
	}
	return f.Source.ValueFuzzy(f.translate(clampToDomain(f.Domain(), x)), tol)
}
