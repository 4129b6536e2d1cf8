// seehuhn.de/go/mandel - a Mandelbrot set renderer
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

// Package testcases lists views of the Mandelbrot set used for tests,
// benchmarks and reference images.
package testcases

import "seehuhn.de/go/mandel"

// TestCase defines a single rendering test.
type TestCase struct {
	Name     string          // lowercase a-z and _ only
	Viewport mandel.Viewport // the region of the complex plane
	Width    int             // image width in pixels
	Height   int             // image height in pixels
	Limit    int             // iteration limit (zero-value means DefaultLimit)
}

// region converts the bounding box xMin <= re <= xMax, yMin <= im <= yMax
// into a viewport with the imaginary axis pointing up.
func region(xMin, xMax, yMin, yMax float64) mandel.Viewport {
	return mandel.Viewport{
		UpperLeft:  complex(xMin, yMax),
		LowerRight: complex(xMax, yMin),
	}
}
