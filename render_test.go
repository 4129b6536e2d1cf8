package mandel_test

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/mandel"
	"seehuhn.de/go/mandel/testcases"
)

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				// load reference image
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("reference image missing, run \"go generate\"")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				// render
				r := &mandel.Renderer{Limit: tc.Limit}
				img := r.Image(tc.Width, tc.Height, tc.Viewport)

				// compare
				if err := compareImages(name, ref, img.Pix, tc.Width, tc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// TestScenario renders the view from the usage example with different
// numbers of workers.  All results must agree with a pixel-by-pixel
// computation.
func TestScenario(t *testing.T) {
	tc := testcases.Scenario
	want := make([]byte, tc.Width*tc.Height)
	for y := range tc.Height {
		for x := range tc.Width {
			c := tc.Viewport.PixelToPoint(x, y, tc.Width, tc.Height)
			want[y*tc.Width+x] = mandel.Intensity(mandel.EscapeTime(c, tc.Limit), tc.Limit)
		}
	}

	first := mandel.NewRenderer().Image(tc.Width, tc.Height, tc.Viewport)
	if b := first.Bounds(); b.Dx() != 320 || b.Dy() != 200 || len(first.Pix) != 320*200 {
		t.Fatalf("unexpected image size %v with %d pixels", b, len(first.Pix))
	}

	for _, workers := range []int{0, 1, 2, 3, 7, 8, 199, 200, 1000} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			r := &mandel.Renderer{Limit: tc.Limit, Workers: workers}
			for range 2 {
				img := r.Image(tc.Width, tc.Height, tc.Viewport)
				if err := compareImages("scenario", want, img.Pix, tc.Width, tc.Height); err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(img.Pix, first.Pix) {
					t.Fatal("result differs between runs")
				}
			}
		})
	}

	// the view contains both interior and exterior points
	if !bytes.Contains(want, []byte{0}) {
		t.Error("no interior points in the scenario view")
	}
	if slices.Max(want) == 0 {
		t.Error("no exterior points in the scenario view")
	}
}

func loadGray(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]byte, w*h)

	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages requires the two images to be identical, since the
// computation is deterministic.
func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h
	if len(expected) != total || len(actual) != total {
		return fmt.Errorf("expected %d pixels, got %d and %d", total, len(expected), len(actual))
	}

	diffCount := 0
	for i := range total {
		if expected[i] != actual[i] {
			diffCount++
		}
	}

	if diffCount > 0 {
		writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%d of %d pixels differ", diffCount, total)
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) {
	os.MkdirAll("debug", 0755)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			img.Set(x, y, color.RGBA{
				R: expected[i], // expected in red
				G: actual[i],   // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
