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
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starwatch/guidecentroid/internal/centroid"
)

// centroidRequest is the JSON body POST /api/v1/centroid expects.
type centroidRequest struct {
	Width  int       `json:"width" binding:"required"`
	Height int       `json:"height" binding:"required"`
	Pixels []uint16  `json:"pixels" binding:"required"`
	Mask   []bool    `json:"mask"`
	Guess  point2D   `json:"guess" binding:"required"`
	Radius float64   `json:"radius" binding:"required"`
	CCD    ccdParams `json:"ccd" binding:"required"`
}

type point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ccdParams struct {
	Bias      float64 `json:"bias"`
	ReadNoise float64 `json:"readNoise"`
	CCDGain   float64 `json:"ccdGain"`
}

// Serve starts the HTTP API on the default gin address (0.0.0.0:8080).
func Serve() error {
	return Router().Run()
}

// Router builds the gin engine, split out from Serve so tests can drive
// it without binding a real socket.
func Router() *gin.Engine {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping", getPing)
			v1.POST("/centroid", postCentroid)
		}
	}
	return r
}

func getPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func postCentroid(c *gin.Context) {
	var req centroidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Pixels) != req.Width*req.Height {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pixels length does not match width*height"})
		return
	}

	img := &centroid.Image{Data: req.Pixels, Width: req.Width, Height: req.Height}
	var mask *centroid.Mask
	if len(req.Mask) > 0 {
		if len(req.Mask) != req.Width*req.Height {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mask length does not match width*height"})
			return
		}
		mask = &centroid.Mask{Data: req.Mask, Width: req.Width, Height: req.Height}
	}

	ccd := centroid.CCDParams{Bias: req.CCD.Bias, ReadNoise: req.CCD.ReadNoise, CCDGain: req.CCD.CCDGain}
	guess := centroid.Point2D{X: req.Guess.X, Y: req.Guess.Y}

	result, err := centroid.Centroid(img, mask, guess, req.Radius, ccd)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": errorCode(err)})
		return
	}
	c.JSON(http.StatusOK, result)
}

// errorCode maps a centroid sentinel error to a stable string clients can
// branch on, since the HTTP boundary can't hand back a Go error value.
func errorCode(err error) string {
	switch {
	case errors.Is(err, centroid.ErrBadInput):
		return "bad_input"
	case errors.Is(err, centroid.ErrNoData):
		return "no_data"
	case errors.Is(err, centroid.ErrWalkedTooFar):
		return "walked_too_far"
	case errors.Is(err, centroid.ErrNoConvergence):
		return "no_convergence"
	case errors.Is(err, centroid.ErrBadFit):
		return "bad_fit"
	default:
		return "unknown"
	}
}
