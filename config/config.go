// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the two top-level option structs that steer the
// core's two transformation directions (spec §5 "External interfaces").
// Both follow this teacher's `inp.Data`-style convention: a plain JSON-
// tagged struct plus a DefaultXxx constructor, rather than functional
// options or a builder type.
package config

// OpenDriveToRoadspace steers C7's translation of an opendrive.Road
// into a roadspace.Road.
type OpenDriveToRoadspace struct {
	Tolerance        float64 `json:"tolerance"`        // fuzzy-equality epsilon used throughout the builder
	AttributesPrefix string  `json:"attributesPrefix"` // prefix applied to every derived roadspace.Attribute key
	CrsEPSG          int     `json:"crsEpsg"`           // EPSG code of the source document's coordinate system; 0 means unset
	Verbose          bool    `json:"verbose"`          // emit per-segment build warnings to the log
}

// DefaultOpenDriveToRoadspace returns the option set this core uses
// when none is supplied.
func DefaultOpenDriveToRoadspace() OpenDriveToRoadspace {
	return OpenDriveToRoadspace{
		Tolerance:        1e-7,
		AttributesPrefix: "opendrive_",
		CrsEPSG:          0,
		Verbose:          false,
	}
}

// RoadspaceToCityGML steers the external collaborator's serialization
// of a roadspace.Road into CityGML (spec §1 Out-of-scope, §5 External
// interfaces) — carried here because the discretization step sizes it
// controls are consumed by this core's C8 queries (GetAllLanes,
// GetAllFillerSurfaces), not by the writer itself.
type RoadspaceToCityGML struct {
	GMLIDPrefix                 string  `json:"gmlIdPrefix"`                 // prefix applied to every emitted gml:id
	IdentifierAttributesPrefix  string  `json:"identifierAttributesPrefix"`  // prefix applied to generic attributes carrying lane/section identifiers
	FlattenGenericAttributeSets bool    `json:"flattenGenericAttributeSets"` // emit nested AttributeSets as a flat, prefixed key set
	DiscretizationStepSize      float64 `json:"discretizationStepSize"`      // default curve/surface sampling step, in metres
	SweepDiscretizationStepSize float64 `json:"sweepDiscretizationStepSize"` // sampling step along a ParametricSweep3D's spine
	CircleSlices                int     `json:"circleSlices"`                // number of discretization slices for a Cylinder3D
}

// DefaultRoadspaceToCityGML returns the option set this core uses when
// none is supplied.
func DefaultRoadspaceToCityGML() RoadspaceToCityGML {
	return RoadspaceToCityGML{
		GMLIDPrefix:                 "UUID_",
		IdentifierAttributesPrefix:  "identifier_",
		FlattenGenericAttributeSets: true,
		DiscretizationStepSize:      0.7,
		SweepDiscretizationStepSize: 0.7,
		CircleSlices:                16,
	}
}
