// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_config01_defaults(tst *testing.T) {

	chk.PrintTitle("config01")

	o := DefaultOpenDriveToRoadspace()
	chk.Float64(tst, "tolerance", 1e-15, o.Tolerance, 1e-7)
	if o.AttributesPrefix != "opendrive_" {
		tst.Errorf("unexpected default attributesPrefix: %s", o.AttributesPrefix)
	}
	if o.CrsEPSG != 0 {
		tst.Errorf("unexpected default crsEpsg: %d", o.CrsEPSG)
	}

	c := DefaultRoadspaceToCityGML()
	if c.GMLIDPrefix != "UUID_" {
		tst.Errorf("unexpected default gmlIdPrefix: %s", c.GMLIDPrefix)
	}
	if c.IdentifierAttributesPrefix != "identifier_" {
		tst.Errorf("unexpected default identifierAttributesPrefix: %s", c.IdentifierAttributesPrefix)
	}
	if !c.FlattenGenericAttributeSets {
		tst.Errorf("expected flattenGenericAttributeSets to default to true")
	}
	chk.Float64(tst, "discretizationStepSize", 1e-15, c.DiscretizationStepSize, 0.7)
}
