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

package testcases

var texturedCases = []TestCase{
	{
		// texture coordinates in [0,1), no wrapping
		Name:   "unit_uv",
		Width:  32,
		Height: 32,
		Verts:  triangle(0, 0, 31, 0, 0, 31),
		Attrs: [3]Attribute{
			{0, 0, 0},
			{0.99, 0, 0},
			{0, 0.99, 0},
		},
		Op: Textured{TexWidth: 8, TexHeight: 8},
	},
	{
		// coordinates up to 4 repeat the checker pattern four times
		Name:   "wrap_repeat",
		Width:  32,
		Height: 32,
		Verts:  triangle(0, 0, 31, 0, 0, 31),
		Attrs: [3]Attribute{
			{0, 0, 0},
			{4, 0, 0},
			{0, 4, 0},
		},
		Op: Textured{TexWidth: 2, TexHeight: 2},
	},
}
