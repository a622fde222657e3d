// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fun

import (
	"math"

	"github.com/wangruoyi123456/rtron/num"
)

// PolynomialFunction is Σ Coefficients[i] * x^i on [0, Length).
type PolynomialFunction struct {
	Coefficients []float64
	Length       float64 // use math.Inf(1) for an unbounded final member
}

func (f PolynomialFunction) Domain() num.Range {
	if math.IsInf(f.Length, 1) {
		return num.AtLeast(0)
	}
	return num.ClosedOpenRange(0, f.Length)
}

func (f PolynomialFunction) Value(x float64) (float64, error) {
	if err := checkDomain(f.Domain(), x); err != nil {
		return 0, err
	}
	return f.evalValue(x), nil
}

func (f PolynomialFunction) Slope(x float64) (float64, error) {
	if err := checkDomain(f.Domain(), x); err != nil {
		return 0, err
	}
	return f.evalSlope(x), nil
}

func (f PolynomialFunction) ValueFuzzy(x, tol float64) (float64, error) {
	dom := f.Domain()
	if err := checkDomainFuzzy(dom, x, tol); err != nil {
		return 0, err
	}
	return f.evalValue(clampToDomain(dom, x)), nil
}

func (f PolynomialFunction) evalValue(x float64) float64 {
	v := 0.0
	pow := 1.0
	for _, a := range f.Coefficients {
		v += a * pow
		pow *= x
	}
	return v
}

func (f PolynomialFunction) evalSlope(x float64) float64 {
	v := 0.0
	pow := 1.0
	for i := 1; i < len(f.Coefficients); i++ {
		v += float64(i) * f.Coefficients[i] * pow
		pow *= x
	}
	return v
}
