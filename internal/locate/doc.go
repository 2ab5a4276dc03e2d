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

// Package locate supplies an initial guess position for a single compact
// feature on a frame, for callers that have no a priori estimate (e.g. a
// first acquisition frame in a guiding loop). It is a coarse, single-star
// simplification of the teacher's multi-star detector and is never
// imported by internal/centroid: the core algorithm only ever consumes a
// guess, never produces one.
package locate
