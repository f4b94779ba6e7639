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
	"fmt"
	"testing"
)

func benchSurface(size int) *Surface {
	s, err := NewSurface(Buffer{
		Pix:           make([]uint32, size*size),
		Format:        PixelFormat{RedOffset: 16, GreenOffset: 8, BlueOffset: 0},
		XRes:          size,
		YRes:          size,
		LineLength:    size,
		BytesPerPixel: 4,
	})
	if err != nil {
		panic(err)
	}
	return s
}

func benchTriangle(size int) Triangle {
	f := float64(size)
	return Triangle{
		{X: f / 12, Y: f * 5 / 6},
		{X: f * 11 / 12, Y: f * 5 / 6},
		{X: f / 2, Y: f / 6},
	}
}

func BenchmarkFillTriangle(b *testing.B) {
	for _, size := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := benchSurface(size)
			tri := benchTriangle(size)
			c := RGB(200, 100, 50)

			b.ReportAllocs()
			for b.Loop() {
				s.FillTriangle(tri, c)
			}
		})
	}
}

func BenchmarkTextureTriangle(b *testing.B) {
	pix := make([]Colour, 64*64)
	for i := range pix {
		pix[i] = RGB(uint8(i), uint8(i>>6), 0)
	}
	tex, err := NewTexture(64, 64, pix)
	if err != nil {
		b.Fatal(err)
	}
	smp := NewSampler(tex)
	attrs := VertexAttrs{
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 0.5, Y: 0},
	}

	for _, size := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := benchSurface(size)
			tri := benchTriangle(size)

			b.ReportAllocs()
			for b.Loop() {
				s.TextureTriangle(tri, attrs, smp)
			}
		})
	}
}
