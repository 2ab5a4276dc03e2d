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
	"io"
	"os"
	"strings"

	"github.com/starwatch/guidecentroid/internal/centroid"
)

// bzero16 is the conventional offset FITS uses to store unsigned 16-bit
// pixel data in the format's signed BITPIX=16 representation.
const bzero16 = 32768

// WriteFile writes img as a single-HDU, BITPIX=16 FITS file, overwriting
// fileName if it already exists. Used by this package's round-trip and
// mask tests; production guide-camera frames are normally read-only input
// to this library.
func WriteFile(fileName string, img *centroid.Image) error {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, img)
}

func Write(w io.Writer, img *centroid.Image) error {
	sb := strings.Builder{}
	writeBool(&sb, "SIMPLE", true, "FITS standard 4.0")
	writeInt(&sb, "BITPIX", 16, "16-bit integer, offset binary")
	writeInt(&sb, "NAXIS", 2, "2-D image")
	writeInt(&sb, "NAXIS1", img.Width, "image width")
	writeInt(&sb, "NAXIS2", img.Height, "image height")
	writeFloat(&sb, "BZERO", bzero16, "offset for unsigned 16-bit storage")
	writeFloat(&sb, "BSCALE", 1, "no additional scaling")
	writeEnd(&sb)

	if pad := sb.Len() % blockSize; pad > 0 {
		sb.WriteString(strings.Repeat(" ", blockSize-pad))
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	buf := make([]byte, 0, blockSize)
	for _, v := range img.Data {
		signed := int32(v) - bzero16
		buf = append(buf, byte(signed>>8), byte(signed))
	}
	if pad := len(buf) % blockSize; pad > 0 {
		buf = append(buf, make([]byte, blockSize-pad)...)
	}
	_, err := w.Write(buf)
	return err
}

func writeBool(w io.Writer, key string, value bool, comment string) {
	v := "F"
	if value {
		v = "T"
	}
	fmt.Fprintf(w, "%-8s= %20s / %-47s", key, v, comment)
}

func writeInt(w io.Writer, key string, value int, comment string) {
	fmt.Fprintf(w, "%-8s= %20d / %-47s", key, value, comment)
}

func writeFloat(w io.Writer, key string, value float64, comment string) {
	fmt.Fprintf(w, "%-8s= %20g / %-47s", key, value, comment)
}

func writeEnd(w io.Writer) {
	fmt.Fprintf(w, "END%s", strings.Repeat(" ", 80-3))
}
