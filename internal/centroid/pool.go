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

import "sync"

// Pools of radial-bin arrays of length r+1, keyed by that length, to
// reduce allocation overhead for callers that centroid many stars per
// frame at the same radius. Each Centroid call borrows three such arrays
// per grid cell it evaluates (nPix, sum, varSum) and returns them before
// it returns.
var (
	nPixPool = struct {
		sync.RWMutex
		m map[int]*sync.Pool
	}{m: make(map[int]*sync.Pool)}

	sumPool = struct {
		sync.RWMutex
		m map[int]*sync.Pool
	}{m: make(map[int]*sync.Pool)}

	varSumPool = struct {
		sync.RWMutex
		m map[int]*sync.Pool
	}{m: make(map[int]*sync.Pool)}
)

func sizedPool(p *struct {
	sync.RWMutex
	m map[int]*sync.Pool
}, size int) *sync.Pool {
	p.RLock()
	pool := p.m[size]
	p.RUnlock()
	if pool != nil {
		return pool
	}
	pool = &sync.Pool{New: func() interface{} { return make([]int64, size) }}
	p.Lock()
	p.m[size] = pool
	p.Unlock()
	return pool
}

// getRadialArrays borrows a pair of zeroed length-(r+1) int64 arrays for
// nPix and sum accumulation.
func getRadialArrays(r int) (nPix, sum []int64) {
	size := r + 1
	nPix = sizedPool(&nPixPool, size).Get().([]int64)[:size]
	sum = sizedPool(&sumPool, size).Get().([]int64)[:size]
	for i := range nPix {
		nPix[i] = 0
		sum[i] = 0
	}
	return nPix, sum
}

// putRadialArrays returns a pair of arrays borrowed from getRadialArrays.
func putRadialArrays(nPix, sum []int64) {
	sizedPool(&nPixPool, cap(nPix)).Put(nPix[:cap(nPix)])
	sizedPool(&sumPool, cap(sum)).Put(sum[:cap(sum)])
}

func sizedFloatPool(p *struct {
	sync.RWMutex
	m map[int]*sync.Pool
}, size int) *sync.Pool {
	p.RLock()
	pool := p.m[size]
	p.RUnlock()
	if pool != nil {
		return pool
	}
	pool = &sync.Pool{New: func() interface{} { return make([]float64, size) }}
	p.Lock()
	p.m[size] = pool
	p.Unlock()
	return pool
}

// getVarSumArray borrows a zeroed length-(r+1) float64 array for the
// per-annulus variance-sum accumulation in evaluateAsymmetryWeighted.
func getVarSumArray(r int) []float64 {
	size := r + 1
	varSum := sizedFloatPool(&varSumPool, size).Get().([]float64)[:size]
	for i := range varSum {
		varSum[i] = 0
	}
	return varSum
}

// putVarSumArray returns an array borrowed from getVarSumArray.
func putVarSumArray(varSum []float64) {
	sizedFloatPool(&varSumPool, cap(varSum)).Put(varSum[:cap(varSum)])
}
