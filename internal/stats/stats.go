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

// Package stats provides the lightweight background statistics the guess
// supplier needs: mean and standard deviation over ADU samples, used to
// pick a brightness threshold above background noise.
package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Summary is a reduced-form replacement for the teacher's hand-rolled,
// architecture-dispatched BasicStats: min/max/mean/standard deviation
// over a sample of pixel values.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

func (s Summary) String() string {
	return fmt.Sprintf("min=%.6g max=%.6g mean=%.6g stddev=%.6g", s.Min, s.Max, s.Mean, s.StdDev)
}

// Calc computes a Summary over data. Panics are never raised for empty
// input; instead the caller receives a zero Summary, since this is
// exercised on live camera frames where an empty background sample is a
// possible (if degenerate) input, not a programmer error.
func Calc(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := stat.Mean(data, nil)
	stddev := stat.StdDev(data, nil)
	return Summary{Min: min, Max: max, Mean: mean, StdDev: stddev}
}

// Threshold returns the background-relative brightness cutoff used to
// separate candidate star pixels from background noise: the mean plus a
// multiple of the standard deviation, the same sigma-above-background
// rule the teacher's star detector applies before its center-of-mass
// refinement.
func Threshold(s Summary, nSigma float64) float64 {
	return s.Mean + nSigma*s.StdDev
}
