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

//go:build linux

package fbdev

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl request numbers from <linux/fb.h>.
const (
	fbioGetVScreenInfo = 0x4600
	fbioPutVScreenInfo = 0x4601
	fbioGetFScreenInfo = 0x4602
)

// fixScreenInfo mirrors struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

// varScreenInfo mirrors struct fb_var_screeninfo.
type varScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          Bitfield
	Green        Bitfield
	Blue         Bitfield
	Transp       Bitfield
	NonStd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	PixClock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HSyncLen     uint32
	VSyncLen     uint32
	Sync         uint32
	VMode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

func ioctl(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Open maps the framebuffer device at the given path.
//
// The device is asked to switch to 32 bits per pixel, non-grayscale; if
// the driver refuses, the previous configuration is read back and
// reported unchanged.
func Open(device string) (*Device, error) {
	f, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	fd := int(f.Fd())

	var fix fixScreenInfo
	if err := ioctl(fd, fbioGetFScreenInfo, unsafe.Pointer(&fix)); err != nil {
		f.Close()
		return nil, fmt.Errorf("FBIOGET_FSCREENINFO: %w", err)
	}
	var vinfo varScreenInfo
	if err := ioctl(fd, fbioGetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		f.Close()
		return nil, fmt.Errorf("FBIOGET_VSCREENINFO: %w", err)
	}

	vinfo.BitsPerPixel = 32
	vinfo.Grayscale = 0
	if err := ioctl(fd, fbioPutVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		// The driver rejected the requested mode, so reload whatever
		// is actually in effect.
		if err := ioctl(fd, fbioGetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
			f.Close()
			return nil, fmt.Errorf("FBIOGET_VSCREENINFO: %w", err)
		}
	}

	mem, err := unix.Mmap(fd, 0, int(fix.SmemLen),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", device, err)
	}

	return &Device{
		Mem:          mem,
		BitsPerPixel: vinfo.BitsPerPixel,
		Red:          vinfo.Red,
		Green:        vinfo.Green,
		Blue:         vinfo.Blue,
		XRes:         vinfo.XRes,
		YRes:         vinfo.YRes,
		XOffset:      vinfo.XOffset,
		YOffset:      vinfo.YOffset,
		LineLength:   fix.LineLength,
		closer: func() error {
			err := unix.Munmap(mem)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			return err
		},
	}, nil
}
