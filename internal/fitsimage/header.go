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
	"io"
	"regexp"
	"strconv"

	"github.com/starwatch/guidecentroid/internal/log"
)

const blockSize = 2880
const headerLineSize = 80

// header holds the keyword/value pairs of one FITS header unit, typed by
// the value grammar each line matched.
type header struct {
	Bools   map[string]bool
	Ints    map[string]int64
	Floats  map[string]float64
	Strings map[string]string
	End     bool
	Length  int64
}

func newHeader() header {
	return header{
		Bools:   make(map[string]bool),
		Ints:    make(map[string]int64),
		Floats:  make(map[string]float64),
		Strings: make(map[string]string),
	}
}

var headerLineRE = compileHeaderRE()

// compileHeaderRE builds the named-group regexp that classifies a single
// 80-column FITS header line, mirroring the grammar a real header parser
// needs: boolean, integer, float, string and blank/comment/end lines.
func compileHeaderRE() *regexp.Regexp {
	white := `\s+`
	whiteOpt := `\s*`

	end := `(?P<E>END)`
	endLine := end + whiteOpt

	key := `(?P<k>[A-Z0-9_-]+)`
	equals := "="

	boo := `(?P<b>[TF])`
	inte := `(?P<i>[+-]?[0-9]+)`
	floa := `(?P<f>[+-]?[0-9]*\.[0-9]+(?:[ED][+-]?[0-9]+)?)`
	stri := `'(?P<s>[^']*)'`
	val := "(?:" + boo + "|" + floa + "|" + inte + "|" + stri + ")"

	commOpt := `(?:/(?P<c>.*))?`
	keyLine := key + whiteOpt + equals + whiteOpt + val + whiteOpt + commOpt

	lineRe := "^(?:" + white + "|" + keyLine + "|" + endLine + ")$"
	return regexp.MustCompile(lineRe)
}

// read consumes whole 2880-byte header blocks from r until the END
// keyword is found, classifying each 80-column line as it goes.
func (h *header) read(r io.Reader) error {
	buf := make([]byte, blockSize)
	parser := headerLineRE.Copy()

	for h.Length = 0; !h.End; {
		n, err := io.ReadFull(r, buf)
		if err != nil || n != blockSize {
			return err
		}
		h.Length += int64(n)

		for line := 0; line < blockSize/headerLineSize && !h.End; line++ {
			raw := buf[line*headerLineSize : (line+1)*headerLineSize]
			sub := parser.FindSubmatch(raw)
			if sub == nil {
				log.Printf("fitsimage: skipping unparseable header line %q\n", string(raw))
				continue
			}
			h.readLine(parser.SubexpNames(), sub)
		}
	}
	return nil
}

func (h *header) readLine(names []string, values [][]byte) {
	key := ""
	for i := 1; i < len(names); i++ {
		if values[i] == nil || len(names[i]) != 1 {
			continue
		}
		switch names[i][0] {
		case 'E':
			h.End = true
		case 'k':
			key = string(values[i])
		case 'b':
			if len(values[i]) > 0 {
				v := values[i][0]
				h.Bools[key] = v == 't' || v == 'T'
			}
		case 'i':
			if v, err := strconv.ParseInt(string(values[i]), 10, 64); err == nil {
				h.Ints[key] = v
			}
		case 'f':
			if v, err := strconv.ParseFloat(string(values[i]), 64); err == nil {
				h.Floats[key] = v
			}
		case 's':
			h.Strings[key] = string(values[i])
		}
	}
}

// float looks a key up across both the float and integer tables, since a
// header writer may emit a whole-valued calibration keyword without a
// decimal point.
func (h *header) float(key string, fallback float64) float64 {
	if v, ok := h.Floats[key]; ok {
		return v
	}
	if v, ok := h.Ints[key]; ok {
		return float64(v)
	}
	return fallback
}
