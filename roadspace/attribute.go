// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadspace

// AttributeType discriminates the kind of value an Attribute carries —
// a CityGML generic attribute can be a string, a double, an int or a
// boolean, and the writer needs the type tag to pick the right XML
// element, not just a Go interface{} it would have to re-sniff.
type AttributeType int

const (
	AttributeString AttributeType = iota
	AttributeDouble
	AttributeInt
	AttributeBool
)

// Attribute is one generic, writer-facing key/value pair attached to a
// Lane, LaneSection or Road — e.g. the OpenDRIVE lane type, or the
// identifier fields a LaneIdentifier re-exports as flattened attributes
// (spec §6 output contract "AttributeList").
type Attribute struct {
	Name   string        `json:"name"`
	Type   AttributeType `json:"type"`
	String string        `json:"stringValue,omitempty"`
	Double float64       `json:"doubleValue,omitempty"`
	Int    int           `json:"intValue,omitempty"`
	Bool   bool          `json:"boolValue,omitempty"`
}

func NewStringAttribute(name, value string) Attribute {
	return Attribute{Name: name, Type: AttributeString, String: value}
}

func NewDoubleAttribute(name string, value float64) Attribute {
	return Attribute{Name: name, Type: AttributeDouble, Double: value}
}

func NewIntAttribute(name string, value int) Attribute {
	return Attribute{Name: name, Type: AttributeInt, Int: value}
}

func NewBoolAttribute(name string, value bool) Attribute {
	return Attribute{Name: name, Type: AttributeBool, Bool: value}
}

// AttributeSet is an ordered collection of Attributes belonging to one
// model object; order is preserved because a writer emitting XML cares
// about deterministic attribute ordering.
type AttributeSet struct {
	Attributes []Attribute
}

// Add appends an attribute, returning the set for chaining.
func (a AttributeSet) Add(attr Attribute) AttributeSet {
	a.Attributes = append(a.Attributes, attr)
	return a
}

// WithPrefix returns a copy of a with every attribute name prefixed —
// the road-space→CityGML transformer's identifierAttributesPrefix and
// the OpenDRIVE→road-space transformer's attributesPrefix are both
// applied this way (spec §6 "Configuration").
func (a AttributeSet) WithPrefix(prefix string) AttributeSet {
	out := AttributeSet{Attributes: make([]Attribute, len(a.Attributes))}
	for i, attr := range a.Attributes {
		attr.Name = prefix + attr.Name
		out.Attributes[i] = attr
	}
	return out
}
