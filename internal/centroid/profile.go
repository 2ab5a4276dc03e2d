// Copyright (C) 2026 The Guidecentroid Authors
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

package centroid

import (
	"math"

	"github.com/klauspost/cpuid/v2"
)

// radialProfile holds the per-annulus accumulators of component B: for
// bin k = 0..r, nPix[k] unmasked pixels summing to sum[k] ADU, with
// mean[k] = sum[k]/nPix[k] where nPix[k] > 0.
type radialProfile struct {
	r    int
	nPix []int64
	sum  []int64
}

// bin assigns a pixel offset to its radial bin, or -1 if it falls outside
// radius r. Bin assignment rounds the Euclidean distance to the nearest
// integer, per spec: k = round(sqrt(di^2+dj^2)).
func bin(di, dj, r int) int {
	k := int(math.Round(math.Sqrt(float64(di*di + dj*dj))))
	if k > r {
		return -1
	}
	return k
}

// forEachPixel calls visit(k, value) for every pixel inside the disc of
// radius r around (ci, cj) that is in-image and unmasked. Traversal order
// never affects the result: every accumulation driven by this iterator is
// a commutative integer or floating-point sum over a fixed bin index.
//
// Dispatches between a scalar row scan and a 4-wide unrolled row scan
// based on reported AVX2 support, mirroring the arch-dispatch idiom used
// elsewhere in this codebase's lineage for per-pixel accumulation loops;
// both paths are plain Go; see DESIGN.md for why no assembly kernel
// backs the AVX2 path here.
func forEachPixel(img *Image, mask *Mask, ci, cj, r int, visit func(k int, value uint16)) {
	if cpuid.CPU.Supports(cpuid.AVX2) {
		forEachPixelUnrolled(img, mask, ci, cj, r, visit)
		return
	}
	forEachPixelScalar(img, mask, ci, cj, r, visit)
}

func forEachPixelScalar(img *Image, mask *Mask, ci, cj, r int, visit func(k int, value uint16)) {
	for di := -r; di <= r; di++ {
		i := ci + di
		for dj := -r; dj <= r; dj++ {
			j := cj + dj
			k := bin(di, dj, r)
			if k < 0 {
				continue
			}
			v, ok := img.At(i, j)
			if !ok || mask.Masked(i, j) {
				continue
			}
			visit(k, v)
		}
	}
}

// forEachPixelUnrolled processes each row 4 columns at a time. It visits
// exactly the same (k, value) pairs as forEachPixelScalar, in the same
// row-major order, so every caller-supplied accumulation ends with an
// identical result.
func forEachPixelUnrolled(img *Image, mask *Mask, ci, cj, r int, visit func(k int, value uint16)) {
	for di := -r; di <= r; di++ {
		i := ci + di
		dj := -r
		for ; dj+3 <= r; dj += 4 {
			for lane := 0; lane < 4; lane++ {
				ddj := dj + lane
				j := cj + ddj
				k := bin(di, ddj, r)
				if k < 0 {
					continue
				}
				v, ok := img.At(i, j)
				if !ok || mask.Masked(i, j) {
					continue
				}
				visit(k, v)
			}
		}
		for ; dj <= r; dj++ {
			j := cj + dj
			k := bin(di, dj, r)
			if k < 0 {
				continue
			}
			v, ok := img.At(i, j)
			if !ok || mask.Masked(i, j) {
				continue
			}
			visit(k, v)
		}
	}
}

// accumulateRadialProfile runs component B: it produces nPix[k] and
// sum[k] for k = 0..r over the disc of radius r around center (ci, cj).
// The returned profile's arrays are borrowed from a pool; callers must
// call release() exactly once when done with it.
func accumulateRadialProfile(img *Image, mask *Mask, ci, cj, r int) (p radialProfile, release func()) {
	nPix, sum := getRadialArrays(r)
	forEachPixel(img, mask, ci, cj, r, func(k int, value uint16) {
		nPix[k]++
		sum[k] += int64(value)
	})
	p = radialProfile{r: r, nPix: nPix, sum: sum}
	return p, func() { putRadialArrays(nPix, sum) }
}

// mean returns sum[k]/nPix[k] in double precision, and whether nPix[k] > 0.
func (p *radialProfile) mean(k int) (float64, bool) {
	if p.nPix[k] <= 0 {
		return 0, false
	}
	return float64(p.sum[k]) / float64(p.nPix[k]), true
}
