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

import "math"

// pixNoise is the expected per-pixel noise sigma, in ADU, for an annulus
// with the given mean ADU level. The shot-noise term is clipped to zero
// below bias rather than going imaginary.
func pixNoise(meanADU float64, ccd CCDParams) float64 {
	shotTerm := (meanADU - ccd.Bias) / ccd.CCDGain
	if shotTerm < 0 {
		shotTerm = 0
	}
	readTerm := ccd.ReadNoise / ccd.CCDGain
	return math.Sqrt(readTerm*readTerm + shotTerm)
}

// annulusWeight is the expected sigma of the annulus variance estimate due
// to pixel noise, defined only for nPix >= 2; bins with fewer pixels
// carry no weight and are excluded from the asymmetry sum.
func annulusWeight(meanADU float64, nPix int64, ccd CCDParams) (weight float64, ok bool) {
	if nPix < 2 {
		return 0, false
	}
	pn := pixNoise(meanADU, ccd)
	return pn * math.Sqrt(2*float64(nPix-1)) / float64(nPix), true
}
