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

// Package fbdraw draws filled, texture-mapped triangles directly into the
// pixel memory of a linux framebuffer device, without a GPU pipeline.
//
// A [Surface] wraps the mapped device buffer and performs bounds-checked,
// channel-order-aware pixel access. Triangles are filled by an affine
// scanline rasterizer; per-pixel colours come from a constant, from a
// nearest-neighbour [Sampler] over a [Texture], or from an arbitrary
// shading callback.
//
// The package deliberately does not clip: destination coordinates outside
// the framebuffer are programmer errors and cause a panic rather than
// being silently discarded.
package fbdraw
