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

// Colour is a colour in canonical layout: the most significant byte is
// red, followed by green and blue; the least significant byte is unused.
type Colour uint32

// RGB builds a Colour from its three channels.
func RGB(r, g, b uint8) Colour {
	return Colour(r)<<24 | Colour(g)<<16 | Colour(b)<<8
}

// R returns the red channel.
func (c Colour) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Colour) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Colour) B() uint8 { return uint8(c >> 8) }

// PixelFormat gives the bit position of each colour channel within a
// native 32-bit pixel word, as reported by the framebuffer device.
type PixelFormat struct {
	RedOffset   uint32
	GreenOffset uint32
	BlueOffset  uint32
}

// Encode shifts each 8-bit channel of c into the bit position given by
// the corresponding offset. No bits outside the three channels are set.
// The offsets are trusted; they originate from a successfully
// constructed [Surface].
func (f PixelFormat) Encode(c Colour) uint32 {
	return (uint32(c)&0xff00_0000)>>24<<f.RedOffset |
		(uint32(c)&0x00ff_0000)>>16<<f.GreenOffset |
		(uint32(c)&0x0000_ff00)>>8<<f.BlueOffset
}

// Decode is the inverse of [PixelFormat.Encode]. The unused low byte of
// the result is always zero.
func (f PixelFormat) Decode(v uint32) Colour {
	return RGB(
		uint8(v>>f.RedOffset),
		uint8(v>>f.GreenOffset),
		uint8(v>>f.BlueOffset),
	)
}
