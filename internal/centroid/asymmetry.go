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

import "fmt"

// cellResult is the per-candidate-center outcome component D produces:
// the noise-weighted radial asymmetry score, plus the totals that flow
// through to the final CentroidResult when this cell wins.
type cellResult struct {
	asymm  float64
	counts float64
	pix    int
}

// evaluateAsymmetry implements component D: it combines the radial
// profile (B) and the noise model (C) into a single asymmetry score for
// candidate center (ci, cj).
func evaluateAsymmetry(img *Image, mask *Mask, ci, cj, r int, ccd CCDParams) (cellResult, error) {
	return evaluateAsymmetryWeighted(img, mask, ci, cj, r, ccd, true)
}

// AsymmetryUnweighted computes the radial asymmetry score without the
// noise-based annulus weighting PyGuide.Centroid's historical comments
// describe as an alternative form. It is exposed for diagnostic use only;
// Centroid's grid-walk and parabolic refinement always use the weighted
// form, per spec.
func AsymmetryUnweighted(img *Image, mask *Mask, ci, cj, r int) (float64, error) {
	res, err := evaluateAsymmetryWeighted(img, mask, ci, cj, r, CCDParams{CCDGain: 1}, false)
	if err != nil {
		return 0, err
	}
	return res.asymm, nil
}

func evaluateAsymmetryWeighted(img *Image, mask *Mask, ci, cj, r int, ccd CCDParams, weighted bool) (cellResult, error) {
	profile, release := accumulateRadialProfile(img, mask, ci, cj, r)
	defer release()

	totalCounts, totalPix := int64(0), int64(0)
	for k := 0; k <= r; k++ {
		totalCounts += profile.sum[k]
		totalPix += profile.nPix[k]
	}
	if totalPix == 0 {
		return cellResult{}, fmt.Errorf("%w: all pixels masked or out of image in disc of radius %d", ErrNoData, r)
	}

	varSum := getVarSumArray(r)
	defer putVarSumArray(varSum)
	forEachPixel(img, mask, ci, cj, r, func(k int, value uint16) {
		if profile.nPix[k] < 2 {
			return
		}
		mean, _ := profile.mean(k)
		d := float64(value) - mean
		varSum[k] += d * d
	})

	asymm, contributed := 0.0, false
	for k := 0; k <= r; k++ {
		if profile.nPix[k] < 2 {
			continue
		}
		mean, _ := profile.mean(k)
		varK := varSum[k] / float64(profile.nPix[k])
		if weighted {
			w, ok := annulusWeight(mean, profile.nPix[k], ccd)
			if !ok || w <= 0 {
				continue
			}
			asymm += varK * varK / w
		} else {
			asymm += varK * varK
		}
		contributed = true
	}
	if !contributed {
		return cellResult{}, fmt.Errorf("%w: no annulus with two or more unmasked pixels in disc of radius %d", ErrNoData, r)
	}

	return cellResult{asymm: asymm, counts: float64(totalCounts), pix: int(totalPix)}, nil
}
