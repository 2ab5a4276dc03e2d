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

// Centroid locates the sub-pixel centroid of a single compact feature near
// xyGuess, within rad pixels of it (rad is clamped to a minimum of 3 and
// rounded to the nearest integer). mask may be nil, equivalent to an
// all-false mask of img's shape. The call is synchronous, bounded by a
// 40-iteration cap, and never mutates img or mask.
//
// On failure the returned error wraps one of ErrBadInput, ErrNoData,
// ErrWalkedTooFar, ErrNoConvergence, or ErrBadFit; callers should branch on
// it with errors.Is, never by inspecting the message.
func Centroid(img *Image, mask *Mask, xyGuess Point2D, rad float64, ccd CCDParams) (CentroidResult, error) {
	if mask != nil && (mask.Width != img.Width || mask.Height != img.Height) {
		return CentroidResult{}, fmt.Errorf("%w: mask shape %dx%d does not match image shape %dx%d",
			ErrBadInput, mask.Height, mask.Width, img.Height, img.Width)
	}
	if ccd.CCDGain <= 0 {
		return CentroidResult{}, fmt.Errorf("%w: ccdGain must be positive, got %g", ErrBadInput, ccd.CCDGain)
	}
	if ccd.ReadNoise < 0 {
		return CentroidResult{}, fmt.Errorf("%w: readNoise must be non-negative, got %g", ErrBadInput, ccd.ReadNoise)
	}
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return CentroidResult{}, fmt.Errorf("%w: radius must be finite, got %v", ErrBadInput, rad)
	}

	r := int(math.Round(rad))
	if r < minRadius {
		r = minRadius
	}

	g, ci, cj, err := gridWalkMinimize(img, mask, xyGuess, r, ccd)
	if err != nil {
		return CentroidResult{}, err
	}

	ref, err := refineParabolic(&g)
	if err != nil {
		return CentroidResult{}, err
	}
	iErr, jErr, err := ref.positionalError()
	if err != nil {
		return CentroidResult{}, err
	}

	xyCtr := xyFromIJ(float64(ci)+ref.di, float64(cj)+ref.dj)
	center := g.cell[1][1]

	return CentroidResult{
		XYCtr:  xyCtr,
		XYErr:  Point2D{X: jErr, Y: iErr},
		Asymm:  center.asymm,
		Pix:    center.pix,
		Counts: center.counts,
		Rad:    r,
	}, nil
}
