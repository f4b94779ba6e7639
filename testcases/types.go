// seehuhn.de/go/fbdraw - direct rendering to linux framebuffer devices
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases defines triangle scenarios shared by the package
// tests and the reference generator commands. It deliberately uses
// only plain types so that it can be imported from the fbdraw tests
// without a cycle.
package testcases

import "seehuhn.de/go/geom/vec"

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string       // lowercase a-z and _ only
	Width  int          // surface width in pixels
	Height int          // surface height in pixels
	Verts  [3]vec.Vec2  // screen-space vertices
	Attrs  [3]Attribute // per-vertex attributes, paired by position
	Op     Operation    // how pixel colours are resolved
}

// Attribute is one per-vertex attribute vector: texture coordinates in
// the first two components, or an RGB colour in [0,1] per component.
type Attribute [3]float64

// Operation is the colour-resolution mode of a test case.
type Operation interface {
	isOperation()
}

// Flat fills with a single colour, given as 0xRRGGBB.
type Flat struct {
	RGB uint32
}

func (Flat) isOperation() {}

// Shaded resolves each pixel from the interpolated attribute,
// interpreted as an RGB colour.
type Shaded struct{}

func (Shaded) isOperation() {}

// Textured samples a checkerboard texture of the given size, with the
// interpolated attribute's first two components as texture coordinates.
type Textured struct {
	TexWidth  int
	TexHeight int
}

func (Textured) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// triangle builds the three vertices of a triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) [3]vec.Vec2 {
	return [3]vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}
