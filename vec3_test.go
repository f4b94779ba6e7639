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
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	v := Vec3{1, 2, 3}
	w := Vec3{4, 5, 6}

	if got := v.Add(w); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %+v", got)
	}
	if got := w.Sub(v); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := v.Mul(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Mul = %+v", got)
	}
	if got := v.Div(2); got != (Vec3{0.5, 1, 1.5}) {
		t.Errorf("Div = %+v", got)
	}
	if got := v.Dot(w); got != 32 {
		t.Errorf("Dot = %g", got)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 5}
	if d := v.Length() - math.Sqrt(50); math.Abs(d) > 1e-12 {
		t.Errorf("Length off by %g", d)
	}

	n := v.Norm()
	if d := n.Length() - 1; math.Abs(d) > 1e-12 {
		t.Errorf("Norm().Length() off by %g", d)
	}
	if c := n.Dot(v) - v.Length(); math.Abs(c) > 1e-12 {
		t.Errorf("Norm changed direction: %g", c)
	}
}
