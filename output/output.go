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

// Package output writes grayscale images to files.
//
// The file format is chosen by the file name extension.  PNG, TIFF and BMP
// files store the pixels unchanged.  PDF files contain one page with one
// point per pixel, where each row is drawn as runs of equal gray level.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an output file format.
type Format int

// These are the supported output formats.
const (
	PNG Format = iota + 1
	TIFF
	BMP
	PDF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case PDF:
		return "PDF"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned if the output format cannot be determined
// from the file name.
var ErrUnknownFormat = errors.New("unknown output format")

var extensions = map[string]Format{
	".png":  PNG,
	".tif":  TIFF,
	".tiff": TIFF,
	".bmp":  BMP,
	".pdf":  PDF,
}

// FormatFor returns the output format for the given file name.  The
// extension is matched case-insensitively.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%q: %w (use .png, .tif, .tiff, .bmp or .pdf)", path, ErrUnknownFormat)
	}
	return f, nil
}

// Encode writes img to w in one of the raster formats PNG, TIFF or BMP.
// PDF files need random access and are only supported by [WriteFile].
func Encode(w io.Writer, img *image.Gray, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("cannot stream %s: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	return nil
}

// WriteFile writes img to the named file, in the format given by the file
// name extension.
//
// The image is first written to a temporary file in the same directory,
// which is then renamed.  If an error occurs, the temporary file is
// removed and no file is left at path.
func WriteFile(path string, img *image.Gray) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if f == PDF {
		// the PDF writer creates the file itself
		if err := tmp.Close(); err != nil {
			return err
		}
		if err := writePDF(tmpName, img); err != nil {
			return fmt.Errorf("encoding %s: %w", f, err)
		}
	} else {
		if err := Encode(tmp, img, f); err != nil {
			tmp.Close()
			return err
		}
		if err := tmp.Close(); err != nil {
			return err
		}
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
