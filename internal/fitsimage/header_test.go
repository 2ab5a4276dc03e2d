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
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// buildHeaderBlock renders lines as 80-column FITS header cards, padded to
// a whole number of 2880-byte blocks, the way a real FITS writer would.
func buildHeaderBlock(lines ...string) []byte {
	var sb strings.Builder
	for _, l := range lines {
		if len(l) > headerLineSize {
			l = l[:headerLineSize]
		}
		sb.WriteString(fmt.Sprintf("%-80s", l))
	}
	sb.WriteString(fmt.Sprintf("%-80s", "END"))
	raw := sb.String()
	if pad := len(raw) % blockSize; pad > 0 {
		raw += strings.Repeat(" ", blockSize-pad)
	}
	return []byte(raw)
}

func TestHeaderReadParsesAllValueKinds(t *testing.T) {
	block := buildHeaderBlock(
		"SIMPLE  =                    T / conforms to FITS standard",
		"BITPIX  =                   16 / bits per pixel",
		"NAXIS   =                    2 / number of axes",
		"NAXIS1  =                  100 / axis 1 length",
		"NAXIS2  =                   80 / axis 2 length",
		"BZERO   =               0.0000 / zero offset",
		"BSCALE  =               1.0000 / scale factor",
		"OBJECT  = 'M42 guide star'     / target name",
	)
	h := newHeader()
	if err := h.read(bytes.NewReader(block)); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !h.End {
		t.Fatalf("expected End to be set after the END card")
	}
	if !h.Bools["SIMPLE"] {
		t.Errorf("SIMPLE = %v, want true", h.Bools["SIMPLE"])
	}
	if h.Ints["NAXIS1"] != 100 || h.Ints["NAXIS2"] != 80 {
		t.Errorf("NAXIS1/2 = %d/%d, want 100/80", h.Ints["NAXIS1"], h.Ints["NAXIS2"])
	}
	if h.Floats["BZERO"] != 0 || h.Floats["BSCALE"] != 1 {
		t.Errorf("BZERO/BSCALE = %v/%v, want 0/1", h.Floats["BZERO"], h.Floats["BSCALE"])
	}
	if h.Strings["OBJECT"] != "M42 guide star" {
		t.Errorf("OBJECT = %q, want %q", h.Strings["OBJECT"], "M42 guide star")
	}
}

func TestHeaderFloatFallsBackToIntsThenDefault(t *testing.T) {
	h := newHeader()
	h.Ints["BIAS"] = 500
	if v := h.float("BIAS", -1); v != 500 {
		t.Errorf("float(BIAS) = %v, want 500 (from Ints)", v)
	}
	if v := h.float("MISSING", 42); v != 42 {
		t.Errorf("float(MISSING) = %v, want fallback 42", v)
	}
	h.Floats["GAINE"] = 1.5
	if v := h.float("GAINE", -1); v != 1.5 {
		t.Errorf("float(GAINE) = %v, want 1.5 (from Floats)", v)
	}
}

func TestHeaderReadStopsAtEndWithoutConsumingExtraBlocks(t *testing.T) {
	block := buildHeaderBlock("SIMPLE  =                    T / ok")
	trailer := []byte("not a header block, should never be read")
	stream := append(append([]byte{}, block...), trailer...)

	h := newHeader()
	r := bytes.NewReader(stream)
	if err := h.read(r); err != nil {
		t.Fatalf("read: %v", err)
	}
	if r.Len() != len(trailer) {
		t.Errorf("reader left with %d bytes, want exactly the %d-byte trailer untouched", r.Len(), len(trailer))
	}
}
