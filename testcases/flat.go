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

var flatCases = []TestCase{
	{
		// upper-left half of a 4x4 surface, one pixel less per row
		Name:   "corner_quarter",
		Width:  4,
		Height: 4,
		Verts:  triangle(0, 0, 4, 0, 0, 4),
		Op:     Flat{RGB: 0xff0000},
	},
	{
		Name:   "right_angle",
		Width:  64,
		Height: 64,
		Verts:  triangle(0, 0, 63, 0, 0, 63),
		Op:     Flat{RGB: 0x00ff00},
	},
	{
		// long edge on the right-hand side
		Name:   "long_edge_right",
		Width:  64,
		Height: 64,
		Verts:  triangle(60, 3, 3, 60, 60, 60),
		Op:     Flat{RGB: 0x0000ff},
	},
	{
		// three distinct vertex heights, both scanline phases active
		Name:   "mid_split",
		Width:  64,
		Height: 64,
		Verts:  triangle(10, 5, 50, 30, 20, 60),
		Op:     Flat{RGB: 0xffffff},
	},
	{
		// vertices given bottom-first so that the Y-sort permutes them
		Name:   "unsorted_input",
		Width:  16,
		Height: 16,
		Verts:  triangle(2, 14, 2, 2, 14, 2),
		Op:     Flat{RGB: 0x808080},
	},
}
