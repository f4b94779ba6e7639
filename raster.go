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

package fbdraw

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Triangle is three screen-space vertices with sub-pixel precision.
type Triangle [3]vec.Vec2

// VertexAttrs binds one attribute vector (texture coordinates, colour)
// to each vertex of a [Triangle], by position. The pairing survives the
// rasterizer's internal vertex reordering: attribute i always belongs
// to vertex i, whatever role that vertex ends up in after sorting.
type VertexAttrs [3]Vec3

// FillTriangle fills tri with a single colour.
//
// The triangle is not clipped; vertices outside the framebuffer make
// the underlying [Surface.Set] panic. A triangle with zero vertical
// extent draws nothing.
func (s *Surface) FillTriangle(tri Triangle, colour Colour) {
	s.shadeTriangle(tri, VertexAttrs{}, func(Vec3) Colour { return colour })
}

// TextureTriangle fills tri, resolving each pixel through smp with the
// interpolated attribute's X and Y as texture coordinates.
// Clipping and degenerate handling are as for [Surface.FillTriangle].
func (s *Surface) TextureTriangle(tri Triangle, attrs VertexAttrs, smp Sampler) {
	s.shadeTriangle(tri, attrs, func(a Vec3) Colour { return smp.Sample(a.X, a.Y) })
}

// ShadeTriangle fills tri, calling shade with the interpolated
// attribute vector for every pixel. The interpolation is affine: a
// plain barycentric blend of the three vertex attributes, with no
// perspective term.
func (s *Surface) ShadeTriangle(tri Triangle, attrs VertexAttrs, shade func(Vec3) Colour) {
	s.shadeTriangle(tri, attrs, shade)
}

// shadeTriangle is the scanline worker shared by the public entry
// points. It walks the triangle in two phases, the rows above the
// middle vertex and the rows below, advancing a pair of boundary x
// values by the edges' inverse gradients.
func (s *Surface) shadeTriangle(tri Triangle, attrs VertexAttrs, shade func(Vec3) Colour) {
	// Y-ascending vertex order, ties broken by original index.
	// Attributes travel with their originating vertices.
	i0, i1, i2 := 0, 1, 2
	if tri[i1].Y < tri[i0].Y {
		i0, i1 = i1, i0
	}
	if tri[i2].Y < tri[i1].Y {
		i1, i2 = i2, i1
		if tri[i1].Y < tri[i0].Y {
			i0, i1 = i1, i0
		}
	}
	a, b, c := tri[i0], tri[i1], tri[i2]
	attrA, attrB, attrC := attrs[i0], attrs[i1], attrs[i2]

	high := c.Sub(a)  // long edge, top to bottom vertex
	upper := b.Sub(a) // top to middle vertex
	lower := c.Sub(b) // middle to bottom vertex

	if high.Y == 0 {
		return // zero vertical extent
	}

	// x of the long edge at the middle vertex's height; tells us
	// whether the long edge runs along the left or the right side.
	splitX := a.X + upper.Y/high.Y*high.X
	leftTriangle := splitX < b.X

	span := func(y int, x0, x1 float64) {
		for x := int(math.Floor(x0)); x < int(math.Floor(x1)); x++ {
			p := vec.Vec2{X: float64(x), Y: float64(y)}
			s.Set(x, y, shade(interpolate(p, a, b, c, attrA, attrB, attrC)))
		}
	}

	// Upper half: rows [floor(a.Y), floor(b.Y)), both boundaries
	// starting at the top vertex.
	if math.Floor(a.Y) != math.Floor(b.Y) {
		left, right := upper, high
		if leftTriangle {
			left, right = high, upper
		}
		xStart, xEnd := a.X, a.X
		for y := int(math.Floor(a.Y)); y < int(math.Floor(b.Y)); y++ {
			span(y, xStart, xEnd)
			if left.Y != 0 {
				xStart += invGradient(left)
			}
			if right.Y != 0 {
				xEnd += invGradient(right)
			}
		}
	}

	// Lower half: rows [floor(b.Y), floor(c.Y)], boundaries starting
	// at the middle vertex and at the long edge's split point.
	if math.Floor(b.Y) != math.Floor(c.Y) {
		left, right := lower, high
		xStart, xEnd := b.X, splitX
		if leftTriangle {
			left, right = high, lower
			xStart, xEnd = splitX, b.X
		}
		for y := int(math.Floor(b.Y)); y <= int(math.Floor(c.Y)); y++ {
			span(y, xStart, xEnd)
			if left.Y != 0 {
				xStart += invGradient(left)
			}
			if right.Y != 0 {
				xEnd += invGradient(right)
			}
		}
	}
}

// invGradient returns dx/dy of an edge vector, used to advance a row
// boundary by one scanline. Only defined for e.Y != 0.
func invGradient(e vec.Vec2) float64 {
	return e.X / e.Y
}

// cross returns the scalar cross product of two 2D vectors.
func cross(u, v vec.Vec2) float64 {
	return u.X*v.Y - u.Y*v.X
}

// interpolate evaluates the affine combination of the three vertex
// attributes at p, by solving p's barycentric weights with respect to
// the triangle (a, b, c) and applying them to the attributes.
func interpolate(p, a, b, c vec.Vec2, attrA, attrB, attrC Vec3) Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)
	d := cross(ab, ac)
	wb := cross(ap, ac) / d
	wc := cross(ab, ap) / d
	wa := 1 - wb - wc
	return attrA.Mul(wa).Add(attrB.Mul(wb)).Add(attrC.Mul(wc))
}
