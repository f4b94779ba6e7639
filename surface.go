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
	"errors"
	"fmt"
	"unsafe"

	"seehuhn.de/go/fbdraw/internal/fbdev"
)

// ErrNoDevice indicates that no framebuffer device could be acquired,
// for example because the device node does not exist or the caller may
// not open it.
var ErrNoDevice = errors.New("framebuffer device unavailable")

// Buffer describes a pixel buffer as reported by the device which owns
// it. The core only depends on this contract, not on how the mapping
// was obtained.
type Buffer struct {
	// Pix is the mapped pixel memory in the device's native word order.
	// A nil Pix means the device could not be acquired.
	Pix []uint32

	// Format gives the bit position of each colour channel within a
	// pixel word.
	Format PixelFormat

	// XOffset and YOffset are the panning offsets of the visible area.
	XOffset, YOffset int

	// XRes and YRes are the visible resolution in pixels.
	XRes, YRes int

	// LineLength is the row stride in pixels (not bytes).
	LineLength int

	// BytesPerPixel is the device pixel size. Only 4 is supported.
	BytesPerPixel int

	// Release returns the buffer to the device. May be nil.
	Release func() error
}

// Surface provides bounds-checked access to a framebuffer pixel buffer.
//
// A Surface is a single exclusively-owned mutable resource; callers
// serialize draw calls themselves.
type Surface struct {
	pix        []uint32
	format     PixelFormat
	xOffset    int
	yOffset    int
	xRes, yRes int
	lineLength int

	release  func() error
	released bool
}

// Open acquires the default linux framebuffer device (/dev/fb0) and
// wraps it in a Surface. It returns an error wrapping [ErrNoDevice] if
// the device cannot be acquired; this is the only recoverable failure.
// The caller must release the device with [Surface.Close].
func Open() (*Surface, error) {
	return OpenDevice(fbdev.DefaultDevice)
}

// OpenDevice is like [Open] for an explicit device node.
func OpenDevice(device string) (*Surface, error) {
	dev, err := fbdev.Open(device)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	mem := dev.Mem
	pix := unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(mem))), len(mem)/4)
	return NewSurface(Buffer{
		Pix: pix,
		Format: PixelFormat{
			RedOffset:   dev.Red.Offset,
			GreenOffset: dev.Green.Offset,
			BlueOffset:  dev.Blue.Offset,
		},
		XOffset:       int(dev.XOffset),
		YOffset:       int(dev.YOffset),
		XRes:          int(dev.XRes),
		YRes:          int(dev.YRes),
		LineLength:    int(dev.LineLength) / 4,
		BytesPerPixel: int(dev.BitsPerPixel) / 8,
		Release:       dev.Close,
	})
}

// NewSurface wraps a device buffer in a Surface.
//
// A nil buf.Pix yields an error wrapping [ErrNoDevice]. A pixel size
// other than 4 bytes means the hardware format is unsupported; this is
// treated as a fatal configuration violation and panics.
func NewSurface(buf Buffer) (*Surface, error) {
	if buf.Pix == nil {
		return nil, fmt.Errorf("%w: device reported no buffer", ErrNoDevice)
	}
	if buf.BytesPerPixel != 4 {
		panic(fmt.Sprintf("fbdraw: unsupported pixel format: %d bytes per pixel", buf.BytesPerPixel))
	}
	return &Surface{
		pix:        buf.Pix,
		format:     buf.Format,
		xOffset:    buf.XOffset,
		yOffset:    buf.YOffset,
		xRes:       buf.XRes,
		yRes:       buf.YRes,
		lineLength: buf.LineLength,
		release:    buf.Release,
	}, nil
}

// Width returns the visible horizontal resolution in pixels.
func (s *Surface) Width() int { return s.xRes }

// Height returns the visible vertical resolution in pixels.
func (s *Surface) Height() int { return s.yRes }

// Format returns the surface's channel layout.
func (s *Surface) Format() PixelFormat { return s.format }

// pos computes the linear buffer index for (x, y), panicking if the
// index falls outside the buffer. A negative index from wrapped integer
// arithmetic is caught by the same guard.
func (s *Surface) pos(x, y int) int {
	p := (x + s.xOffset) + (y+s.yOffset)*s.lineLength
	if p < 0 || p >= len(s.pix) {
		panic(fmt.Sprintf("fbdraw: pixel (%d, %d) outside framebuffer", x, y))
	}
	return p
}

// Get returns the native pixel word at (x, y).
//
// Coordinates outside the buffer are programmer errors; Get panics,
// naming the offending coordinate.
func (s *Surface) Get(x, y int) uint32 {
	return s.pix[s.pos(x, y)]
}

// At returns the colour at (x, y) in canonical layout.
// Bounds are checked as in [Surface.Get].
func (s *Surface) At(x, y int) Colour {
	return s.format.Decode(s.Get(x, y))
}

// Set writes colour at (x, y), encoded in the surface's channel order.
//
// Coordinates outside the buffer are programmer errors; Set panics,
// naming the offending coordinate. Callers must either clip beforehand
// or accept termination on overflow.
func (s *Surface) Set(x, y int, colour Colour) {
	s.pix[s.pos(x, y)] = s.format.Encode(colour)
}

// Close releases the underlying device buffer. Only the first call
// releases; further calls return nil. After Close the surface must not
// be used.
func (s *Surface) Close() error {
	if s.released {
		return nil
	}
	s.released = true
	s.pix = nil
	if s.release == nil {
		return nil
	}
	return s.release()
}
