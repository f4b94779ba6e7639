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
	"strings"
	"testing"
)

// testFormat is an xRGB-style channel layout used throughout the tests.
var testFormat = PixelFormat{RedOffset: 16, GreenOffset: 8, BlueOffset: 0}

// memSurface builds a surface over plain memory, standing in for the
// device mapping.
func memSurface(t *testing.T, width, height int) (*Surface, []uint32) {
	t.Helper()
	pix := make([]uint32, width*height)
	s, err := NewSurface(Buffer{
		Pix:           pix,
		Format:        testFormat,
		XRes:          width,
		YRes:          height,
		LineLength:    width,
		BytesPerPixel: 4,
	})
	if err != nil {
		t.Fatal(err)
	}
	return s, pix
}

func TestNewSurfaceNoBuffer(t *testing.T) {
	_, err := NewSurface(Buffer{BytesPerPixel: 4})
	if !errors.Is(err, ErrNoDevice) {
		t.Errorf("got error %v, want ErrNoDevice", err)
	}
}

func TestNewSurfaceBadPixelSize(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("no panic for 2 bytes per pixel")
		}
		if msg := r.(string); !strings.Contains(msg, "2 bytes per pixel") {
			t.Errorf("panic message %q does not name the pixel size", msg)
		}
	}()
	NewSurface(Buffer{
		Pix:           make([]uint32, 16),
		LineLength:    4,
		BytesPerPixel: 2,
	})
}

func TestSetGet(t *testing.T) {
	// stride wider than the visible area, nonzero panning offsets
	pix := make([]uint32, 6*5)
	s, err := NewSurface(Buffer{
		Pix:           pix,
		Format:        testFormat,
		XOffset:       1,
		YOffset:       1,
		XRes:          4,
		YRes:          3,
		LineLength:    6,
		BytesPerPixel: 4,
	})
	if err != nil {
		t.Fatal(err)
	}

	c := RGB(10, 20, 30)
	s.Set(2, 1, c)

	idx := (2 + 1) + (1+1)*6
	if pix[idx] != testFormat.Encode(c) {
		t.Errorf("pix[%d] = %#08x, want %#08x", idx, pix[idx], testFormat.Encode(c))
	}
	for i, v := range pix {
		if i != idx && v != 0 {
			t.Errorf("pix[%d] = %#08x, want untouched", i, v)
		}
	}

	if got := s.Get(2, 1); got != testFormat.Encode(c) {
		t.Errorf("Get(2, 1) = %#08x", got)
	}
	if got := s.At(2, 1); got != c {
		t.Errorf("At(2, 1) = %#08x, want %#08x", uint32(got), uint32(c))
	}
}

func TestOutOfBounds(t *testing.T) {
	type testCase struct {
		name string
		x, y int
	}
	cases := []testCase{
		{"below", 0, 4},
		{"far_below", 3, 100},
		{"past_buffer_end", 5, 3},
		{"negative", -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := memSurface(t, 4, 4)
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Set(%d, %d) did not panic", tc.x, tc.y)
				}
			}()
			s.Set(tc.x, tc.y, RGB(1, 1, 1))
		})
	}
}

func TestOutOfBoundsMessage(t *testing.T) {
	s, _ := memSurface(t, 4, 4)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("no panic")
		}
		if msg := r.(string); !strings.Contains(msg, "(0, 4)") {
			t.Errorf("panic message %q does not name the coordinate", msg)
		}
	}()
	s.Get(0, 4)
}

func TestClose(t *testing.T) {
	released := 0
	s, err := NewSurface(Buffer{
		Pix:           make([]uint32, 16),
		XRes:          4,
		YRes:          4,
		LineLength:    4,
		BytesPerPixel: 4,
		Release: func() error {
			released++
			return nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if released != 1 {
		t.Errorf("device released %d times, want exactly once", released)
	}
}

func TestCloseError(t *testing.T) {
	wantErr := errors.New("munmap failed")
	s, err := NewSurface(Buffer{
		Pix:           make([]uint32, 16),
		XRes:          4,
		YRes:          4,
		LineLength:    4,
		BytesPerPixel: 4,
		Release:       func() error { return wantErr },
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); !errors.Is(err, wantErr) {
		t.Errorf("Close = %v, want %v", err, wantErr)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
}
