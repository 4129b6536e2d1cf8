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

// Command genref generates reference images for the rendering tests.
// Every test case is rendered with a single worker and stored as a PNG
// file.  With -pdf, a PDF version is written next to each PNG file.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mandel"
	"seehuhn.de/go/mandel/output"
	"seehuhn.de/go/mandel/testcases"
)

const refDir = "testdata/reference"

func main() {
	withPDF := flag.Bool("pdf", false, "also write PDF versions of the reference images")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			// A single worker gives the plain row-by-row order, which
			// the parallel renderer must reproduce exactly.
			r := &mandel.Renderer{Limit: tc.Limit, Workers: 1}
			img := r.Image(tc.Width, tc.Height, tc.Viewport)

			pngPath := filepath.Join(refDir, name+".png")
			if err := output.WriteFile(pngPath, img); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *withPDF {
				pdfPath := filepath.Join(refDir, name+".pdf")
				if err := output.WriteFile(pdfPath, img); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}
