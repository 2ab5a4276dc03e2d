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

package httpapi

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func gaussianPixels(width, height int, cx, cy, sigma, amplitude float64) []uint16 {
	data := make([]uint16, width*height)
	norm := amplitude / (2 * math.Pi * sigma * sigma)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			x, y := float64(j)+0.5, float64(i)+0.5
			dx, dy := x-cx, y-cy
			v := norm * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
			data[i*width+j] = uint16(math.Round(v))
		}
	}
	return data
}

func TestPing(t *testing.T) {
	router := Router()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestPostCentroidSuccess(t *testing.T) {
	router := Router()
	body := centroidRequest{
		Width:  48,
		Height: 48,
		Pixels: gaussianPixels(48, 48, 24.3, 23.1, 1.4, 8000),
		Guess:  point2D{X: 24, Y: 23},
		Radius: 8,
		CCD:    ccdParams{Bias: 0, ReadNoise: 0.01, CCDGain: 1},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/centroid", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestPostCentroidRejectsMismatchedPixelCount(t *testing.T) {
	router := Router()
	body := centroidRequest{
		Width:  10,
		Height: 10,
		Pixels: []uint16{1, 2, 3},
		Guess:  point2D{X: 5, Y: 5},
		Radius: 3,
		CCD:    ccdParams{CCDGain: 1},
	}
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/centroid", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPostCentroidReportsCentroidError(t *testing.T) {
	router := Router()
	data := make([]uint16, 20*20)
	for i := range data {
		data[i] = 50
	}
	body := centroidRequest{
		Width:  20,
		Height: 20,
		Pixels: data,
		Guess:  point2D{X: 10, Y: 10},
		Radius: 5,
		CCD:    ccdParams{CCDGain: 1, ReadNoise: 0.5},
	}
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/centroid", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body=%s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["code"] == "" {
		t.Errorf("expected a non-empty error code in the response")
	}
}
