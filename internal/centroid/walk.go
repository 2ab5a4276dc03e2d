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
	"errors"
	"fmt"
	"math"
)

// grid3x3 is the explicit 9-cell record component E walks over, replacing
// the N-dimensional array shift/minimum-position primitives the original
// centroiding code relied on (see DESIGN.md). Indices [a][b] each range
// over {0,1,2}; [1][1] is the current candidate center.
type grid3x3 struct {
	filled [3][3]bool
	cell   [3][3]cellResult
}

// shiftBy replaces the grid in place so that the new cell [a][b] holds
// whatever the old cell [a+di][b+dj] held (unfilled if that index falls
// outside the 3x3 window). Called with (di, dj) equal to the (Δi, Δj) the
// candidate center just moved by, so that interior cells are carried
// forward and cells that rotated out of the window are marked unfilled
// for re-evaluation.
func (g *grid3x3) shiftBy(di, dj int) {
	var next grid3x3
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			sa, sb := a+di, b+dj
			if sa < 0 || sa > 2 || sb < 0 || sb > 2 || !g.filled[sa][sb] {
				continue
			}
			next.filled[a][b] = true
			next.cell[a][b] = g.cell[sa][sb]
		}
	}
	*g = next
}

// argmin scans the grid in row-major order and returns the indices of the
// lowest asymmetry score, breaking ties by keeping the first (lowest)
// index encountered — the documented tie-break convention for this
// reimplementation's 9-cell scan, replacing the array library's
// first-minimum convention the original relied on.
func (g *grid3x3) argmin() (a, b int) {
	minVal := g.cell[0][0].asymm
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if g.cell[i][j].asymm < minVal {
				minVal = g.cell[i][j].asymm
				a, b = i, j
			}
		}
	}
	return a, b
}

// allUnfilled reports whether every cell of the grid is unfilled, meaning
// every candidate center in the current 3x3 neighborhood returned
// ErrNoData (all pixels in its disc masked or out of image). The walk
// must surface that as ErrNoData rather than shift toward an all-Inf
// grid, which would otherwise wander until it either hits the iteration
// cap or walks outside the search radius.
func (g *grid3x3) allUnfilled() bool {
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			if g.filled[a][b] {
				return false
			}
		}
	}
	return true
}

// gridWalkMinimize implements component E: it iterates the asymmetry
// evaluator over a 3x3 neighborhood of the current candidate center,
// shifting toward the minimum cell until the minimum settles at the
// center or the walk leaves the search disc.
func gridWalkMinimize(img *Image, mask *Mask, guess Point2D, r int, ccd CCDParams) (g grid3x3, ci, cj int, err error) {
	ci0, cj0, err := ijFromXY(guess)
	if err != nil {
		return grid3x3{}, 0, 0, err
	}
	ci, cj = ci0, cj0
	radSq := r * r
	traceEntry(guess, r, ccd)

	for iter := 1; ; iter++ {
		if iter > maxIterations {
			return grid3x3{}, 0, 0, fmt.Errorf("%w: no minimum found after %d iterations", ErrNoConvergence, maxIterations)
		}

		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				if g.filled[a][b] {
					continue
				}
				res, evalErr := evaluateAsymmetry(img, mask, ci+a-1, cj+b-1, r, ccd)
				if evalErr != nil {
					if !errors.Is(evalErr, ErrNoData) {
						return grid3x3{}, 0, 0, evalErr
					}
					g.cell[a][b] = cellResult{asymm: math.Inf(1)}
					g.filled[a][b] = false
					continue
				}
				g.cell[a][b] = res
				g.filled[a][b] = true
			}
		}

		if g.allUnfilled() {
			return grid3x3{}, 0, 0, fmt.Errorf("%w: every pixel in the 3x3 search neighborhood around (%d,%d) is masked or out of image", ErrNoData, ci, cj)
		}

		traceGrid(&g)
		a, b := g.argmin()
		if a == 1 && b == 1 {
			return g, ci, cj, nil
		}

		deltaI, deltaJ := a-1, b-1
		ci += deltaI
		cj += deltaJ
		traceShift(ci, cj, a, b, g.cell[a][b].asymm)
		if (ci-ci0)*(ci-ci0)+(cj-cj0)*(cj-cj0) >= radSq {
			return grid3x3{}, 0, 0, fmt.Errorf("%w: center moved beyond radius %d of initial guess", ErrWalkedTooFar, r)
		}
		g.shiftBy(deltaI, deltaJ)
	}
}
