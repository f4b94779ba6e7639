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
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// WriteImage encodes a width×height image read through the per-pixel
// getter and writes it to path. The encoder is chosen by file
// extension: .png, .bmp or .tif/.tiff.
func WriteImage(path string, width, height int, at func(x, y int) Colour) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			c := at(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R()
			img.Pix[i+1] = c.G()
			img.Pix[i+2] = c.B()
			img.Pix[i+3] = 0xff
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		err = fmt.Errorf("unsupported image format %q", ext)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Dump writes a screenshot of the visible framebuffer area to path,
// in the format given by the file extension (see [WriteImage]).
func (s *Surface) Dump(path string) error {
	return WriteImage(path, s.xRes, s.yRes, s.At)
}
