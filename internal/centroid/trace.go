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

import "github.com/starwatch/guidecentroid/internal/log"

// Verbose enables per-call tracing of the grid-walk minimizer (entry
// parameters and the chosen shift each iteration), carried over from the
// original centroiding code's _CTRDEBUG toggle.
var Verbose = false

// VerboseIterations additionally dumps the full 3x3 asymmetry grid on
// every iteration; the original code's _CTRITERDEBUG toggle. Has no
// effect unless Verbose is also set.
var VerboseIterations = false

func traceEntry(guess Point2D, r int, ccd CCDParams) {
	if !Verbose {
		return
	}
	log.Printf("centroid: guess=%v rad=%d bias=%g readNoise=%g ccdGain=%g\n",
		guess, r, ccd.Bias, ccd.ReadNoise, ccd.CCDGain)
}

func traceShift(ci, cj, a, b int, minAsymm float64) {
	if !Verbose {
		return
	}
	log.Printf("centroid: grid min at [%d][%d]=%.1f, shifting center to (%d,%d)\n", a, b, minAsymm, ci, cj)
}

func traceGrid(g *grid3x3) {
	if !Verbose || !VerboseIterations {
		return
	}
	log.Printf("centroid: asymmetry grid = %v\n", g.cell)
}
