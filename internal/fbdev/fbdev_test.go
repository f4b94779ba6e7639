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

package fbdev

import "testing"

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open("/dev/fb-does-not-exist")
	if err == nil {
		t.Fatal("opening a missing device succeeded")
	}
}

func TestCloseNil(t *testing.T) {
	var d Device
	if err := d.Close(); err != nil {
		t.Errorf("Close on an unopened device: %v", err)
	}
}
