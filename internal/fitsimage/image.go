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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/starwatch/guidecentroid/internal/centroid"
	"github.com/starwatch/guidecentroid/internal/log"
)

// Frame is a single loaded FITS science frame: the pixel data and the CCD
// calibration parameters the noise model needs.
type Frame struct {
	Image *centroid.Image
	CCD   centroid.CCDParams
}

// ReadFile loads a FITS frame from disk, transparently decompressing a
// .gz/.gzip suffixed file.
func ReadFile(fileName string) (*Frame, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if ext := strings.ToLower(path.Ext(fileName)); ext == ".gz" || ext == ".gzip" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return Read(r)
}

// Read parses one FITS HDU (header plus data unit) from r into a Frame.
// Only 2-D images are supported; BITPIX 8, 16, 32 and -32 are understood,
// each widened or clamped to the uint16 representation centroid.Image
// uses, since guide-camera frames are the only source this library reads.
func Read(r io.Reader) (*Frame, error) {
	h := newHeader()
	if err := h.read(r); err != nil {
		return nil, err
	}
	if !h.Bools["SIMPLE"] {
		return nil, errors.New("fitsimage: not a valid FITS stream, SIMPLE=T missing")
	}

	naxis := h.Ints["NAXIS"]
	if naxis != 2 {
		return nil, fmt.Errorf("fitsimage: NAXIS=%d, only 2-D images are supported", naxis)
	}
	width := int(h.Ints["NAXIS1"])
	height := int(h.Ints["NAXIS2"])
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("fitsimage: invalid dimensions %dx%d", width, height)
	}

	bzero := h.float("BZERO", 0)
	bscale := h.float("BSCALE", 1)
	bitpix := h.Ints["BITPIX"]

	data, err := readPixels(r, bitpix, width*height, bzero, bscale)
	if err != nil {
		return nil, err
	}
	log.Printf("fitsimage: read %dbpp frame, %s\n", bitpix, dimensionsToString(width, height))

	ccd := centroid.CCDParams{
		Bias:      h.float("BIAS", 0),
		ReadNoise: h.float("RDNOISE", 0),
		CCDGain:   h.float("GAINE", h.float("GAIN", 1)),
	}

	return &Frame{
		Image: &centroid.Image{Data: data, Width: width, Height: height},
		CCD:   ccd,
	}, nil
}

const readBufLen = 16 * 1024

func readPixels(r io.Reader, bitpix int64, count int, bzero, bscale float64) ([]uint16, error) {
	switch bitpix {
	case 8:
		return readFixed(r, count, 1, bzero, bscale, func(b []byte) float64 { return float64(b[0]) })
	case 16:
		return readFixed(r, count, 2, bzero, bscale, func(b []byte) float64 {
			return float64(int16(uint16(b[0])<<8 | uint16(b[1])))
		})
	case 32:
		return readFixed(r, count, 4, bzero, bscale, func(b []byte) float64 {
			return float64(int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])))
		})
	case -32:
		return readFixed(r, count, 4, bzero, bscale, func(b []byte) float64 {
			bits := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
			return float64(math.Float32frombits(bits))
		})
	default:
		return nil, fmt.Errorf("fitsimage: unsupported BITPIX %d", bitpix)
	}
}

// readFixed reads count fixed-width big-endian values, applies the
// BSCALE/BZERO affine rescaling, and rounds/clamps into uint16.
func readFixed(r io.Reader, count, width int, bzero, bscale float64, decode func([]byte) float64) ([]uint16, error) {
	out := make([]uint16, count)
	buf := make([]byte, readBufLen)
	leftover := 0
	produced := 0

	for produced < count {
		want := (count-produced)*width - leftover
		if want > len(buf)-leftover {
			want = len(buf) - leftover
		}
		n, err := r.Read(buf[leftover : leftover+want])
		if err != nil {
			return nil, err
		}
		avail := leftover + n
		whole := avail - avail%width
		for i := 0; i < whole; i += width {
			raw := decode(buf[i : i+width])
			v := raw*bscale + bzero
			out[produced] = clampUint16(v)
			produced++
		}
		leftover = avail - whole
		copy(buf[:leftover], buf[whole:avail])
	}
	return out, nil
}

func clampUint16(v float64) uint16 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// dimensionsToString renders NAXISn-style dimensions for log output, kept
// for parity with callers that report frame shape alongside file names.
func dimensionsToString(width, height int) string {
	return strconv.Itoa(width) + "x" + strconv.Itoa(height)
}
