package mandel

import (
	"fmt"
	"image"
	"runtime"
	"sync"
)

// DefaultWorkers is the number of workers used when the number of
// available CPUs cannot be determined.
const DefaultWorkers = 8

// Band is a contiguous range of image rows, Y0 <= y < Y1.
type Band struct {
	Y0, Y1 int
}

// Bands splits the rows 0, ..., height-1 into at most n contiguous bands of
// (almost) equal size.  Every row belongs to exactly one band and the bands
// are returned in increasing order.  Empty bands are omitted, so fewer than
// n bands are returned if height < n.  Values n <= 0 are treated as 1.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = min(max(n, 1), height)

	bands := make([]Band, n)
	for i := range bands {
		bands[i] = Band{
			Y0: i * height / n,
			Y1: (i + 1) * height / n,
		}
	}
	return bands
}

// Renderer renders views of the Mandelbrot set into grayscale buffers.
// The zero value uses the defaults of [NewRenderer].
//
// A Renderer is safe for concurrent use, as long as its fields are not
// modified while a render is in progress.
type Renderer struct {
	// Limit is the maximal number of iterations per pixel.  Values outside
	// the range [1, MaxLimit] are replaced by DefaultLimit (for values <= 0)
	// or MaxLimit.
	Limit int

	// Workers is the number of goroutines used for rendering.  Each
	// goroutine fills one band of rows.  Values <= 0 select
	// runtime.GOMAXPROCS(0).
	Workers int
}

// NewRenderer returns a Renderer which uses DefaultLimit iterations and
// one worker per available CPU.
func NewRenderer() *Renderer {
	return &Renderer{
		Limit:   DefaultLimit,
		Workers: defaultWorkers(),
	}
}

func defaultWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return DefaultWorkers
}

func (r *Renderer) limit() int {
	switch {
	case r.Limit <= 0:
		return DefaultLimit
	case r.Limit > MaxLimit:
		return MaxLimit
	default:
		return r.Limit
	}
}

func (r *Renderer) workers() int {
	if r.Workers <= 0 {
		return defaultWorkers()
	}
	return r.Workers
}

// Image allocates a new width×height grayscale image and renders the
// viewport v into it.  If width or height is zero, the image is empty.
func (r *Renderer) Image(width, height int, v Viewport) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	r.Render(img.Pix, width, height, img.Stride, v)
	return img
}

// Render fills buf with a width×height image of the viewport v.  The
// buffer is in row-major order, with row y starting at buf[y*stride].
// Render returns once all pixels have been written.
//
// The rows are split into bands, one per worker, and every worker receives
// its own sub-slice of buf.  The sub-slices do not overlap, so no
// synchronisation is needed while the workers write.
func (r *Renderer) Render(buf []byte, width, height, stride int, v Viewport) {
	if width <= 0 || height <= 0 {
		return
	}
	if stride < width {
		panic(fmt.Sprintf("mandel: stride %d is smaller than width %d", stride, width))
	}
	if need := (height-1)*stride + width; len(buf) < need {
		panic(fmt.Sprintf("mandel: buffer has %d bytes, need %d", len(buf), need))
	}

	limit := r.limit()

	var wg sync.WaitGroup
	for _, band := range Bands(height, r.workers()) {
		// The capacity is limited as well, so that a band cannot even be
		// resliced into the rows of the next band.
		end := (band.Y1-1)*stride + width
		rows := buf[band.Y0*stride : end : end]

		wg.Add(1)
		go func() {
			defer wg.Done()
			renderBand(rows, band, width, height, stride, v, limit)
		}()
	}
	wg.Wait()
}

// renderBand computes the pixels of the rows band.Y0, ..., band.Y1-1.
// rows[0] is the first pixel of row band.Y0.
func renderBand(rows []byte, band Band, width, height, stride int, v Viewport, limit int) {
	for y := band.Y0; y < band.Y1; y++ {
		line := rows[(y-band.Y0)*stride:]
		for x := range width {
			c := v.PixelToPoint(x, y, width, height)
			line[x] = Intensity(EscapeTime(c, limit), limit)
		}
	}
}
