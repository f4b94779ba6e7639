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

// Package fbdev maps linux framebuffer devices into memory.
//
// Opening a device requires read/write access to the device node,
// typically granted by membership in the video group.
package fbdev

// DefaultDevice is the device node of the first framebuffer.
const DefaultDevice = "/dev/fb0"

// Bitfield describes the position of one colour channel within a pixel
// word, as reported by the device.
type Bitfield struct {
	Offset   uint32 // bit position of the field's LSB
	Length   uint32 // field width in bits
	MSBRight uint32 // nonzero if the MSB comes first
}

// Device is a memory-mapped framebuffer device.
type Device struct {
	// Mem is the mapped screen memory. Writes appear on screen
	// immediately.
	Mem []byte

	BitsPerPixel uint32
	Red          Bitfield
	Green        Bitfield
	Blue         Bitfield

	XRes, YRes       uint32 // visible resolution
	XOffset, YOffset uint32 // panning offsets of the visible area
	LineLength       uint32 // row stride in bytes

	closer func() error
}

// Close unmaps the screen memory and closes the device node. The first
// call releases the mapping; further calls return nil.
func (d *Device) Close() error {
	if d.closer == nil {
		return nil
	}
	c := d.closer
	d.closer = nil
	d.Mem = nil
	return c()
}
