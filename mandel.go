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

// Package mandel renders the Mandelbrot set into grayscale pixel buffers.
//
// Each pixel is mapped to a point c of the complex plane, and the escape
// time of the recurrence z ← z² + c, starting at z = 0, determines the
// intensity of the pixel.  Points inside the set are black, points which
// escape immediately are white.
package mandel

//go:generate go run ./testcases/genref

// DefaultLimit is the default iteration limit.  With this value every
// escape count maps directly onto one 8-bit intensity level.
const DefaultLimit = 255

// MaxLimit is the largest iteration limit for which [Intensity] does not
// wrap around.
const MaxLimit = 255

// Viewport is the rectangular region of the complex plane which is mapped
// onto the pixel grid of an image.
//
// UpperLeft corresponds to the top-left corner of pixel (0, 0), LowerRight
// to the bottom-right corner of the image.  The corners may be given in any
// orientation.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

// PixelToPoint returns the point of the complex plane corresponding to the
// pixel in column col and row row of a width×height image.
//
// Both axes are interpolated linearly and independently.  Pixel (0, 0)
// maps exactly to v.UpperLeft.
func (v Viewport) PixelToPoint(col, row, width, height int) complex128 {
	ul, lr := v.UpperLeft, v.LowerRight
	re := real(ul) + (float64(col)/float64(width))*(real(lr)-real(ul))
	im := imag(ul) + (float64(row)/float64(height))*(imag(lr)-imag(ul))
	return complex(re, im)
}

// Step returns the distance between neighbouring pixels of a width×height
// image, along the real axis in the real part and along the imaginary axis
// in the imaginary part.  The components carry the sign of the direction
// in which column and row indices increase.
func (v Viewport) Step(width, height int) complex128 {
	ul, lr := v.UpperLeft, v.LowerRight
	return complex(
		(real(lr)-real(ul))/float64(width),
		(imag(lr)-imag(ul))/float64(height),
	)
}

// EscapeTime iterates z ← z² + c, starting from z = 0, at most limit times.
// If |z| exceeds 2 after the update in iteration i (counting from 0), i is
// returned.  If c does not escape within limit iterations, limit is
// returned.  The result is always in the range [0, max(limit, 0)].
func EscapeTime(c complex128, limit int) int {
	var z complex128
	for i := range limit {
		z = z*z + c
		// compare |z|² with 4 to avoid the square root
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i
		}
	}
	return max(limit, 0)
}

// Intensity converts an escape count into a gray level.  Points which never
// escape (count == limit) give 0, points which escape in the first
// iteration give limit.
//
// limit must be in the range [0, MaxLimit] and count in [0, limit].
func Intensity(count, limit int) uint8 {
	return uint8(limit - count)
}
