// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fun

import "github.com/wangruoyi123456/rtron/num"

// LinearFunction is slope*x + intercept restricted to Dom.
type LinearFunction struct {
	SlopeValue     float64
	InterceptValue float64
	Dom            num.Range
}

// X_AXIS is the identity function: slope 1, intercept 0, unbounded domain.
var X_AXIS = LinearFunction{SlopeValue: 1, InterceptValue: 0, Dom: num.All()}

// NewConstant builds a constant-valued linear function (slope 0) over dom.
func NewConstant(value float64, dom num.Range) LinearFunction {
	return LinearFunction{SlopeValue: 0, InterceptValue: value, Dom: dom}
}

func (f LinearFunction) Domain() num.Range { return f.Dom }

func (f LinearFunction) Value(x float64) (float64, error) {
	if err := checkDomain(f.Dom, x); err != nil {
		return 0, err
	}
	return f.SlopeValue*x + f.InterceptValue, nil
}

func (f LinearFunction) Slope(x float64) (float64, error) {
	if err := checkDomain(f.Dom, x); err != nil {
		return 0, err
	}
	return f.SlopeValue, nil
}

func (f LinearFunction) ValueFuzzy(x, tol float64) (float64, error) {
	if err := checkDomainFuzzy(f.Dom, x, tol); err != nil {
		return 0, err
	}
	return f.SlopeValue*x + f.InterceptValue, nil
}
