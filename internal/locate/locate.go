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

package locate

import (
	"errors"
	"math"

	"github.com/valyala/fastrand"

	"github.com/starwatch/guidecentroid/internal/centroid"
	"github.com/starwatch/guidecentroid/internal/stats"
)

// ErrNoStarFound is returned when no unmasked pixel exceeds the background
// mean by more than the requested number of standard deviations.
var ErrNoStarFound = errors.New("locate: no pixel above background threshold")

// DefaultSigma is the default brightness cutoff above the background
// mean, expressed in standard deviations, mirroring the teacher's
// starSig parameter to FindStars.
const DefaultSigma = 5.0

// comRadius bounds the center-of-mass refinement window, matching the
// teacher's shiftToCenterOfMass radius for a first-pass acquisition guess.
const comRadius = 5
const comMaxRounds = 10
const comConvergedSq = 0.0001

// FindBrightestGuess returns a position-space guess for the single
// brightest compact feature in img, refined to its local center of mass.
// mask may be nil. nSigma sets the background-relative brightness
// threshold (DefaultSigma is a reasonable default); the background is
// estimated from a random sample of about 1% of the pixels, drawn via
// fastrand, to keep it cheap on large frames, mirroring the teacher's
// rejectBadPixels sampling approach.
func FindBrightestGuess(img *centroid.Image, mask *centroid.Mask, nSigma float64) (centroid.Point2D, error) {
	bg := sampleBackground(img, mask)
	threshold := stats.Threshold(bg, nSigma)

	bestI, bestJ, bestV := -1, -1, -1.0
	for i := 0; i < img.Height; i++ {
		for j := 0; j < img.Width; j++ {
			if mask.Masked(i, j) {
				continue
			}
			v, _ := img.At(i, j)
			fv := float64(v)
			if fv > threshold && fv > bestV {
				bestI, bestJ, bestV = i, j, fv
			}
		}
	}
	if bestI < 0 {
		return centroid.Point2D{}, ErrNoStarFound
	}

	ci, cj := centerOfMass(img, mask, bestI, bestJ, bg.Mean)
	return centroid.Point2D{X: cj + centroid.PosMinusIndex, Y: ci + centroid.PosMinusIndex}, nil
}

func sampleBackground(img *centroid.Image, mask *centroid.Mask) stats.Summary {
	n := len(img.Data) / 100
	if n < 16 {
		n = len(img.Data)
	}
	samples := make([]float64, 0, n)
	rng := fastrand.RNG{}
	maxAttempts := n * 8
	if maxAttempts < len(img.Data) {
		maxAttempts = len(img.Data)
	}
	for attempt := 0; len(samples) < n && attempt < maxAttempts; attempt++ {
		idx := int(rng.Uint32n(uint32(len(img.Data))))
		i, j := idx/img.Width, idx%img.Width
		if mask.Masked(i, j) {
			continue
		}
		samples = append(samples, float64(img.Data[idx]))
	}
	return stats.Calc(samples)
}

// centerOfMass iteratively refines (i0, j0) to the local center of mass
// of pixel values above background, within comRadius, capped at
// comMaxRounds rounds or until the shift falls below comConvergedSq.
func centerOfMass(img *centroid.Image, mask *centroid.Mask, i0, j0 int, background float64) (ci, cj float64) {
	ci, cj = float64(i0), float64(j0)
	for round := 0; round < comMaxRounds; round++ {
		mass, iMoment, jMoment := 0.0, 0.0, 0.0
		baseI, baseJ := int(math.Round(ci)), int(math.Round(cj))
		for di := -comRadius; di <= comRadius; di++ {
			i := baseI + di
			for dj := -comRadius; dj <= comRadius; dj++ {
				j := baseJ + dj
				v, ok := img.At(i, j)
				if !ok || mask.Masked(i, j) {
					continue
				}
				value := float64(v) - background
				if value < 0 {
					continue
				}
				mass += value
				iMoment += float64(di) * value
				jMoment += float64(dj) * value
			}
		}
		if mass <= 0 {
			break
		}
		newCi := float64(baseI) + iMoment/mass
		newCj := float64(baseJ) + jMoment/mass
		shiftSq := (newCi-ci)*(newCi-ci) + (newCj-cj)*(newCj-cj)
		ci, cj = newCi, newCj
		if shiftSq < comConvergedSq {
			break
		}
	}
	return ci, cj
}
