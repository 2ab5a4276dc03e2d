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

// Package fitsimage reads and writes the single-HDU FITS frames this
// library centroids stars on: a 2-D image plus the CCD calibration
// keywords the noise model needs, and an optional bad-pixel mask.
//
// It implements the subset of the FITS 4.0 standard a guide camera frame
// actually uses: mandatory keywords (SIMPLE, BITPIX, NAXIS, NAXISn),
// BZERO/BSCALE rescaling, and three vendor-style calibration keywords
// (BIAS, RDNOISE, GAINE). Multi-extension files, WCS, and compression
// other than a .gz-compressed whole file are out of scope.
package fitsimage
