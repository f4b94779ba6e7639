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

// Command fbtri draws a triangle directly into a framebuffer device.
// With no options it draws an RGB gradient triangle covering most of
// the screen; --texture maps an image file onto the triangle instead.
// Running it usually requires membership in the video group.
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/fbdraw"
)

var cli struct {
	Device     string `default:"/dev/fb0" help:"Framebuffer device node."`
	Texture    string `help:"Image file to map onto the triangle."`
	Screenshot string `help:"Write a screenshot (.png, .bmp or .tiff) after drawing."`
	Verbose    bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("fbtri"),
		kong.Description("Draw a triangle directly into a linux framebuffer device."))

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		logger.Error("drawing failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	surf, err := fbdraw.OpenDevice(cli.Device)
	if err != nil {
		return err
	}
	defer surf.Close()

	logger.Info("framebuffer acquired",
		"device", cli.Device,
		"width", surf.Width(),
		"height", surf.Height())

	w := float64(surf.Width())
	h := float64(surf.Height())
	tri := fbdraw.Triangle{
		{X: w / 12, Y: h * 5 / 6},
		{X: w * 11 / 12, Y: h * 5 / 6},
		{X: w / 2, Y: h / 6},
	}

	if cli.Texture != "" {
		tex, err := loadTexture(cli.Texture)
		if err != nil {
			return err
		}
		logger.Debug("texture loaded",
			"path", cli.Texture,
			"width", tex.Width(),
			"height", tex.Height())
		attrs := fbdraw.VertexAttrs{
			{X: 0, Y: 1},
			{X: 1, Y: 1},
			{X: 0.5, Y: 0},
		}
		surf.TextureTriangle(tri, attrs, fbdraw.NewSampler(tex))
	} else {
		attrs := fbdraw.VertexAttrs{
			{X: 1},
			{Y: 1},
			{Z: 1},
		}
		surf.ShadeTriangle(tri, attrs, func(a fbdraw.Vec3) fbdraw.Colour {
			return fbdraw.RGB(channel(a.X), channel(a.Y), channel(a.Z))
		})
	}

	if cli.Screenshot != "" {
		if err := surf.Dump(cli.Screenshot); err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		logger.Info("screenshot written", "path", cli.Screenshot)
	}

	return surf.Close()
}

func loadTexture(path string) (*fbdraw.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return fbdraw.TextureFromImage(img), nil
}

// channel converts an interpolated attribute component to a colour
// channel, clamping to [0, 1].
func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
