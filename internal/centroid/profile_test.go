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

import "testing"

func TestBinAssignment(t *testing.T) {
	cases := []struct {
		di, dj, r, want int
	}{
		{0, 0, 3, 0},
		{1, 0, 3, 1},
		{0, 1, 3, 1},
		{3, 4, 5, 5},
		{3, 4, 4, -1},
		{-2, 0, 3, 2},
	}
	for _, c := range cases {
		if got := bin(c.di, c.dj, c.r); got != c.want {
			t.Errorf("bin(%d,%d,%d) = %d, want %d", c.di, c.dj, c.r, got, c.want)
		}
	}
}

func TestForEachPixelScalarAndUnrolledAgree(t *testing.T) {
	img := gaussianImage(40, 40, 20.3, 19.6, 1.3, 5000, 10)
	mask := &Mask{Data: make([]bool, 40*40), Width: 40, Height: 40}
	mask.Data[19*40+21] = true

	r := 9
	ci, cj := 20, 20

	scalarSum := make(map[int]int64)
	scalarCount := make(map[int]int64)
	forEachPixelScalar(img, mask, ci, cj, r, func(k int, v uint16) {
		scalarSum[k] += int64(v)
		scalarCount[k]++
	})

	unrolledSum := make(map[int]int64)
	unrolledCount := make(map[int]int64)
	forEachPixelUnrolled(img, mask, ci, cj, r, func(k int, v uint16) {
		unrolledSum[k] += int64(v)
		unrolledCount[k]++
	})

	for k := 0; k <= r; k++ {
		if scalarSum[k] != unrolledSum[k] {
			t.Errorf("bin %d: scalar sum %d != unrolled sum %d", k, scalarSum[k], unrolledSum[k])
		}
		if scalarCount[k] != unrolledCount[k] {
			t.Errorf("bin %d: scalar count %d != unrolled count %d", k, scalarCount[k], unrolledCount[k])
		}
	}
}

func TestAccumulateRadialProfileExcludesMaskedAndOutOfImage(t *testing.T) {
	img := &Image{Data: make([]uint16, 10*10), Width: 10, Height: 10}
	for i := range img.Data {
		img.Data[i] = 5
	}
	mask := &Mask{Data: make([]bool, 10*10), Width: 10, Height: 10}
	mask.Data[5*10+5] = true // mask the center pixel itself

	p, release := accumulateRadialProfile(img, mask, 5, 5, 3)
	defer release()

	if n, ok := p.mean(0); ok || n != 0 {
		t.Errorf("bin 0 (masked center): mean=%v ok=%v, want ok=false", n, ok)
	}

	// Near the (9,9) corner, bins beyond radius 0 run off the image edge,
	// so their pixel counts must fall short of a full annulus.
	pCorner, releaseCorner := accumulateRadialProfile(img, mask, 9, 9, 3)
	defer releaseCorner()
	if n, ok := pCorner.mean(3); ok && n != 5 {
		t.Errorf("bin 3 near corner: mean=%v, want 5 or no data", n)
	}
	total := int64(0)
	for k := 0; k <= pCorner.r; k++ {
		total += pCorner.nPix[k]
	}
	if total == 0 || total >= int64((2*3+1)*(2*3+1)) {
		t.Errorf("corner disc pixel count = %d, want >0 and < full disc (edge clipping)", total)
	}
}

func TestRadialArrayPoolZeroesOnReuse(t *testing.T) {
	nPix, sum := getRadialArrays(4)
	nPix[2] = 7
	sum[2] = 99
	putRadialArrays(nPix, sum)

	nPix2, sum2 := getRadialArrays(4)
	defer putRadialArrays(nPix2, sum2)
	for i, v := range nPix2 {
		if v != 0 {
			t.Errorf("nPix2[%d] = %d, want 0 (pool must zero on reuse)", i, v)
		}
	}
	for i, v := range sum2 {
		if v != 0 {
			t.Errorf("sum2[%d] = %d, want 0 (pool must zero on reuse)", i, v)
		}
	}
}

func TestVarSumArrayPoolZeroesOnReuse(t *testing.T) {
	varSum := getVarSumArray(4)
	varSum[2] = 3.5
	putVarSumArray(varSum)

	varSum2 := getVarSumArray(4)
	defer putVarSumArray(varSum2)
	for i, v := range varSum2 {
		if v != 0 {
			t.Errorf("varSum2[%d] = %g, want 0 (pool must zero on reuse)", i, v)
		}
	}
}
