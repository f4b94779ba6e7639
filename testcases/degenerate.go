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

// Degenerate cases have zero vertical extent and must draw nothing.
var degenerateCases = []TestCase{
	{
		Name:   "horizontal_line",
		Width:  64,
		Height: 64,
		Verts:  triangle(5, 10, 30, 10, 60, 10),
		Op:     Flat{RGB: 0xff00ff},
	},
	{
		Name:   "single_point",
		Width:  64,
		Height: 64,
		Verts:  triangle(7, 7, 7, 7, 7, 7),
		Op:     Flat{RGB: 0xff00ff},
	},
}
