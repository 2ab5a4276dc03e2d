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
	"fmt"
	"math"
)

// refinement is the output of component F's parabolic fit: the sub-pixel
// index-space offset from the integer center, and the curvature
// coefficients the error estimate is derived from.
type refinement struct {
	di, dj     float64
	ai, aj     float64
	asymmFloor float64
}

// refineParabolic implements component F: it fits y(x) = ymin + a(x-xmin)^2
// independently along the row and column axes of the final 3x3 asymmetry
// grid, ignoring the diagonal cells by design so the two axes stay
// uncoupled.
func refineParabolic(g *grid3x3) (refinement, error) {
	ai := 0.5 * (g.cell[2][1].asymm - 2*g.cell[1][1].asymm + g.cell[0][1].asymm)
	bi := 0.5 * (g.cell[2][1].asymm - g.cell[0][1].asymm)
	aj := 0.5 * (g.cell[1][2].asymm - 2*g.cell[1][1].asymm + g.cell[1][0].asymm)
	bj := 0.5 * (g.cell[1][2].asymm - g.cell[1][0].asymm)

	if !(ai > 0) || !(aj > 0) {
		return refinement{}, fmt.Errorf("%w: fit is not concave upward (ai=%g, aj=%g)", ErrBadFit, ai, aj)
	}

	di := -0.5 * bi / ai
	dj := -0.5 * bj / aj
	if math.IsNaN(di) || math.IsInf(di, 0) || math.IsNaN(dj) || math.IsInf(dj, 0) {
		return refinement{}, fmt.Errorf("%w: non-finite sub-pixel offset", ErrBadFit)
	}

	return refinement{di: di, dj: dj, ai: ai, aj: aj, asymmFloor: g.cell[1][1].asymm}, nil
}

// positionalError derives the 1-sigma error estimate along each axis from
// the asymmetry floor at the minimum, used as a crude noise proxy per
// spec's documented limitation.
func (r *refinement) positionalError() (iErr, jErr float64, err error) {
	iErr = math.Sqrt(r.asymmFloor / r.ai)
	jErr = math.Sqrt(r.asymmFloor / r.aj)
	if math.IsNaN(iErr) || math.IsInf(iErr, 0) || iErr < 0 ||
		math.IsNaN(jErr) || math.IsInf(jErr, 0) || jErr < 0 {
		return 0, 0, fmt.Errorf("%w: non-finite or negative error estimate", ErrBadFit)
	}
	return iErr, jErr, nil
}
