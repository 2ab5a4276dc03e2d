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

// Package centroid locates the sub-pixel centroid of a single compact
// star-like feature on a CCD image.
//
// Given an image, an optional validity mask, an initial position guess and
// a search radius, Centroid minimizes a noise-weighted radial asymmetry
// score over a 3x3 neighborhood of integer pixels, then refines the
// integer minimum to sub-pixel precision with a parabolic fit along each
// axis. It reports a 1-sigma positional uncertainty derived from the CCD's
// photon and read noise.
//
// The package is synchronous, allocates no persistent state, and never
// mutates its inputs; see Centroid for the full contract.
package centroid
