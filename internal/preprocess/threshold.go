package preprocess

import (
	"image"
	"image/color"
	"math"

	"github.com/sujinee01/Image-Verification-Automation-System/internal/mempool"
)

// gaussianKernel returns a normalized 1D Gaussian kernel of the given odd size.
// Sigma follows the common convention for deriving it from the kernel size:
// 0.3*((size-1)*0.5 - 1) + 0.8.
func gaussianKernel(size int) []float64 {
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	k := make([]float64, size)
	mid := size / 2
	var sum float64
	for i := range k {
		d := float64(i - mid)
		k[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// clampIndex clamps i into [0, n-1], replicating the border pixel.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// AdaptiveThreshold binarizes a grayscale image using a Gaussian-weighted
// local mean. A pixel becomes white (255) when its value exceeds the local
// mean minus the constant offset, black (0) otherwise. The output always has
// the same dimensions as the input.
func AdaptiveThreshold(gray *image.Gray, blockSize int, constant float64) *image.Gray {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}

	kernel := gaussianKernel(blockSize)
	mid := blockSize / 2

	// Separable convolution: horizontal pass, then vertical.
	tmp := mempool.GetFloat64(w * h)
	defer mempool.PutFloat64(tmp)
	for y := range h {
		for x := range w {
			var acc float64
			for i, kv := range kernel {
				sx := clampIndex(x+i-mid, w)
				acc += kv * float64(gray.GrayAt(b.Min.X+sx, b.Min.Y+y).Y)
			}
			tmp[y*w+x] = acc
		}
	}
	for y := range h {
		for x := range w {
			var mean float64
			for i, kv := range kernel {
				sy := clampIndex(y+i-mid, h)
				mean += kv * tmp[sy*w+x]
			}
			src := float64(gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			if src > mean-constant {
				out.SetGray(x, y, color.Gray{Y: 255})
			} else {
				out.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	return out
}
