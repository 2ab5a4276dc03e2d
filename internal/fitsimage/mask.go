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

package fitsimage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/starwatch/guidecentroid/internal/centroid"
)

// LoadMask looks for a bad-pixel mask to go with the science frame loaded
// from fileName: a sibling file with "-mask" inserted before the
// extension, e.g. "guide0042.fits" -> "guide0042-mask.fits". Any non-zero
// pixel in that frame marks the corresponding science pixel invalid.
// Returns (nil, nil) if no such file exists; that is not an error, since
// most frames have no mask.
func LoadMask(fileName string, width, height int) (*centroid.Mask, error) {
	sibling := maskSiblingPath(fileName)
	if _, err := os.Stat(sibling); err != nil {
		return nil, nil
	}
	frame, err := ReadFile(sibling)
	if err != nil {
		return nil, fmt.Errorf("fitsimage: reading mask file %s: %w", sibling, err)
	}
	if frame.Image.Width != width || frame.Image.Height != height {
		return nil, fmt.Errorf("fitsimage: mask shape %dx%d does not match image shape %dx%d",
			frame.Image.Width, frame.Image.Height, width, height)
	}
	data := make([]bool, width*height)
	for i, v := range frame.Image.Data {
		data[i] = v != 0
	}
	return &centroid.Mask{Data: data, Width: width, Height: height}, nil
}

func maskSiblingPath(fileName string) string {
	dir := filepath.Dir(fileName)
	base := filepath.Base(fileName)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+"-mask"+ext)
}
