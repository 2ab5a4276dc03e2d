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

// ijFromXY converts a position-space guess to the integer pixel that
// contains it: any point within a pixel selects that pixel, so the
// conversion truncates (floors) rather than rounds.
func ijFromXY(p Point2D) (i, j int, err error) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return 0, 0, fmt.Errorf("%w: guess %v is not finite", ErrBadInput, p)
	}
	i = int(math.Floor(p.Y - PosMinusIndex))
	j = int(math.Floor(p.X - PosMinusIndex))
	return i, j, nil
}

// xyFromIJ converts an (i, j) index-space coordinate to position space.
// i and j need not be integral; the final sub-pixel centroid is derived
// this way.
func xyFromIJ(i, j float64) Point2D {
	return Point2D{X: j + PosMinusIndex, Y: i + PosMinusIndex}
}
