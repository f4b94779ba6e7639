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
	"image"
	"math"
)

// Texture is an immutable row-major grid of colours.
type Texture struct {
	pix    []Colour
	width  int
	height int
}

// NewTexture builds a texture from row-major pixel data. The pixel
// slice must hold exactly width*height colours.
func NewTexture(width, height int, pix []Colour) (*Texture, error) {
	if len(pix) != width*height {
		return nil, fmt.Errorf("texture data: got %d pixels, want %d×%d", len(pix), width, height)
	}
	return &Texture{pix: pix, width: width, height: height}, nil
}

// TextureFromImage copies an image into a texture, dropping any alpha.
// Decoders for formats beyond the stdlib ones (BMP, TIFF, WebP, ...)
// must be registered by the caller, e.g. by blank-importing
// golang.org/x/image/bmp.
func TextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]Colour, w*h)
	for y := range h {
		for x := range w {
			r, g, bb, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			pix[x+y*w] = RGB(uint8(r>>8), uint8(g>>8), uint8(bb>>8))
		}
	}
	return &Texture{pix: pix, width: w, height: h}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// At returns the texel at (x, y), i.e. pix[x + y*width].
//
// x >= width panics with an explicit message. y is not checked here:
// for any y >= height the linear index reaches past the buffer and the
// runtime bounds check fires instead. The asymmetry is deliberate and
// pinned by a test; see DESIGN.md.
func (t *Texture) At(x, y int) Colour {
	if x >= t.width {
		panic(fmt.Sprintf("fbdraw: texel x = %d outside texture of width %d", x, t.width))
	}
	return t.pix[x+y*t.width]
}

// Sampler reads colours from a texture with nearest-neighbour filtering
// and periodic wrap addressing. A Sampler does not own its texture and
// must not outlive it.
type Sampler struct {
	tex *Texture
}

// NewSampler returns a sampler over tex.
func NewSampler(tex *Texture) Sampler {
	return Sampler{tex: tex}
}

// Sample returns the texel at texture coordinates (u, v). The texel is
// pix[floor(|frac(u)|·w), floor(|frac(v)|·h)] where frac is the signed
// fractional part, so any finite coordinate wraps with period 1.
// The result is undefined for non-finite input.
func (s Sampler) Sample(u, v float64) Colour {
	x := int(math.Abs(math.Mod(u, 1)) * float64(s.tex.width))
	y := int(math.Abs(math.Mod(v, 1)) * float64(s.tex.height))
	return s.tex.At(x, y)
}
