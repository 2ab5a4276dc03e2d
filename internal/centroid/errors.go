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

import "errors"

// Sentinel errors returned by Centroid. Callers branch on failure mode via
// errors.Is, never by matching error strings.
var (
	// ErrBadInput indicates a malformed guess, a mask shape mismatch, or
	// non-positive CCD parameters. Rejected at entry before any work starts.
	ErrBadInput = errors.New("centroid: bad input")

	// ErrNoData indicates every pixel in the search disc is masked or falls
	// outside the image.
	ErrNoData = errors.New("centroid: no unmasked data in search disc")

	// ErrWalkedTooFar indicates the grid-walk minimizer left the disc of
	// radius rad around the initial guess before converging.
	ErrWalkedTooFar = errors.New("centroid: walked too far from initial guess")

	// ErrNoConvergence indicates the iteration cap was reached without the
	// asymmetry minimum settling on the center cell of the 3x3 grid.
	ErrNoConvergence = errors.New("centroid: no convergence within iteration cap")

	// ErrBadFit indicates the parabolic refinement along one or both axes
	// was not concave upward, or produced a non-finite offset or error.
	ErrBadFit = errors.New("centroid: parabolic fit is degenerate")
)
