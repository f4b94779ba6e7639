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

var shadedCases = []TestCase{
	{
		// one primary colour per corner, blending towards the centre
		Name:   "rgb_corners",
		Width:  64,
		Height: 64,
		Verts:  triangle(32, 4, 4, 60, 60, 60),
		Attrs: [3]Attribute{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		Op: Shaded{},
	},
	{
		// greyscale ramp along the vertical extent
		Name:   "grey_ramp",
		Width:  32,
		Height: 32,
		Verts:  triangle(2, 2, 29, 2, 2, 29),
		Attrs: [3]Attribute{
			{0, 0, 0},
			{0, 0, 0},
			{1, 1, 1},
		},
		Op: Shaded{},
	},
}
