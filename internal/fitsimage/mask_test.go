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
	"path/filepath"
	"testing"

	"github.com/starwatch/guidecentroid/internal/centroid"
)

func TestLoadMaskReturnsNilWhenNoSiblingExists(t *testing.T) {
	dir := t.TempDir()
	sciPath := filepath.Join(dir, "guide0001.fits")
	if err := WriteFile(sciPath, smallImage(5, 5)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	mask, err := LoadMask(sciPath, 5, 5)
	if err != nil {
		t.Fatalf("LoadMask: %v", err)
	}
	if mask != nil {
		t.Fatalf("expected a nil mask when no sibling -mask file exists")
	}
}

func TestLoadMaskReadsSiblingFile(t *testing.T) {
	dir := t.TempDir()
	sciPath := filepath.Join(dir, "guide0002.fits")
	maskPath := filepath.Join(dir, "guide0002-mask.fits")

	width, height := 4, 3
	data := make([]uint16, width*height)
	data[5] = 1 // flag pixel (1,1)
	maskImg := &centroid.Image{Data: data, Width: width, Height: height}
	if err := WriteFile(maskPath, maskImg); err != nil {
		t.Fatalf("WriteFile mask: %v", err)
	}

	mask, err := LoadMask(sciPath, width, height)
	if err != nil {
		t.Fatalf("LoadMask: %v", err)
	}
	if mask == nil {
		t.Fatalf("expected a non-nil mask")
	}
	if !mask.Masked(1, 1) {
		t.Errorf("pixel (1,1) should be masked")
	}
	if mask.Masked(0, 0) {
		t.Errorf("pixel (0,0) should not be masked")
	}
}

func TestLoadMaskRejectsShapeMismatch(t *testing.T) {
	dir := t.TempDir()
	sciPath := filepath.Join(dir, "guide0003.fits")
	maskPath := filepath.Join(dir, "guide0003-mask.fits")
	if err := WriteFile(maskPath, smallImage(10, 10)); err != nil {
		t.Fatalf("WriteFile mask: %v", err)
	}
	if _, err := LoadMask(sciPath, 5, 5); err == nil {
		t.Fatalf("expected a shape-mismatch error")
	}
}

func TestMaskSiblingPathInsertsSuffixBeforeExtension(t *testing.T) {
	got := maskSiblingPath("/data/guide0042.fits")
	want := "/data/guide0042-mask.fits"
	if got != want {
		t.Errorf("maskSiblingPath = %q, want %q", got, want)
	}
}
