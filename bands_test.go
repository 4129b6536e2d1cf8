package mandel

import (
	"bytes"
	"testing"
)

func TestBandsPartition(t *testing.T) {
	for height := 0; height <= 70; height++ {
		for n := -1; n <= 80; n++ {
			bands := Bands(height, n)
			if len(bands) > max(n, 1) {
				t.Fatalf("Bands(%d, %d): %d bands", height, n, len(bands))
			}

			seen := make([]int, height)
			next := 0
			for _, b := range bands {
				if b.Y0 != next || b.Y1 <= b.Y0 {
					t.Fatalf("Bands(%d, %d): unexpected band %v after row %d", height, n, b, next)
				}
				for y := b.Y0; y < b.Y1; y++ {
					seen[y]++
				}
				next = b.Y1
			}
			if next != height {
				t.Fatalf("Bands(%d, %d): rows %d... not covered", height, n, next)
			}
			for y, k := range seen {
				if k != 1 {
					t.Fatalf("Bands(%d, %d): row %d covered %d times", height, n, y, k)
				}
			}
		}
	}
}

func TestBandsEqualSize(t *testing.T) {
	bands := Bands(1000, 7)
	for _, b := range bands {
		if size := b.Y1 - b.Y0; size != 142 && size != 143 {
			t.Errorf("band %v has %d rows", b, size)
		}
	}
}

// renderSerial computes the image one pixel after the other, without
// using bands.
func renderSerial(width, height int, v Viewport, limit int) []byte {
	buf := make([]byte, width*height)
	for y := range height {
		for x := range width {
			c := v.PixelToPoint(x, y, width, height)
			buf[y*width+x] = Intensity(EscapeTime(c, limit), limit)
		}
	}
	return buf
}

func TestRenderStride(t *testing.T) {
	const width, height, stride = 37, 23, 41
	const fill = 0xAA
	v := Viewport{UpperLeft: complex(-2, 1.2), LowerRight: complex(0.6, -1.2)}
	want := renderSerial(width, height, v, DefaultLimit)

	for _, workers := range []int{1, 2, 5, 23, 100} {
		// one spare byte at the end, which must not be touched either
		buf := bytes.Repeat([]byte{fill}, (height-1)*stride+width+1)
		r := &Renderer{Workers: workers}
		r.Render(buf, width, height, stride, v)

		for y := range height {
			row := buf[y*stride : y*stride+width]
			if !bytes.Equal(row, want[y*width:(y+1)*width]) {
				t.Errorf("workers=%d: row %d differs", workers, y)
			}
			end := min(y*stride+stride, len(buf))
			for i := y*stride + width; i < end; i++ {
				if buf[i] != fill {
					t.Errorf("workers=%d: padding byte %d overwritten", workers, i)
				}
			}
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	r := NewRenderer()
	v := Viewport{UpperLeft: complex(-2, 1), LowerRight: complex(1, -1)}

	r.Render(nil, 0, 10, 0, v)
	r.Render(nil, 10, 0, 10, v)

	for _, size := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		img := r.Image(size[0], size[1], v)
		if len(img.Pix) != 0 {
			t.Errorf("%dx%d: image has %d pixels", size[0], size[1], len(img.Pix))
		}
	}
}

func TestRenderShortBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Render with short buffer did not panic")
		}
	}()
	r := NewRenderer()
	r.Render(make([]byte, 99), 10, 10, 10, Viewport{})
}

func TestRendererLimit(t *testing.T) {
	cases := []struct {
		limit, want int
	}{
		{-5, DefaultLimit},
		{0, DefaultLimit},
		{1, 1},
		{100, 100},
		{MaxLimit, MaxLimit},
		{1000, MaxLimit},
	}
	for _, c := range cases {
		r := &Renderer{Limit: c.limit}
		if got := r.limit(); got != c.want {
			t.Errorf("Limit %d: effective limit %d, want %d", c.limit, got, c.want)
		}
	}

	// the interior of the set is black for every limit
	for _, limit := range []int{1, 16, 255} {
		r := &Renderer{Limit: limit, Workers: 2}
		img := r.Image(3, 3, Viewport{UpperLeft: complex(-0.1, 0.1), LowerRight: complex(0.1, -0.1)})
		for i, b := range img.Pix {
			if b != 0 {
				t.Errorf("limit %d: pixel %d = %d, want 0", limit, i, b)
			}
		}
	}
}

func TestNewRenderer(t *testing.T) {
	r := NewRenderer()
	if r.Limit != DefaultLimit {
		t.Errorf("Limit = %d, want %d", r.Limit, DefaultLimit)
	}
	if r.Workers <= 0 {
		t.Errorf("Workers = %d, want positive", r.Workers)
	}
}
