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

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pbnjay/memory"

	"github.com/starwatch/guidecentroid/internal/centroid"
	"github.com/starwatch/guidecentroid/internal/fitsimage"
	"github.com/starwatch/guidecentroid/internal/httpapi"
	"github.com/starwatch/guidecentroid/internal/locate"
	"github.com/starwatch/guidecentroid/internal/log"
)

const version = "0.1.0"

var totalMiBs = memory.TotalMemory() / 1024 / 1024

var serve = flag.Bool("serve", false, "serve the HTTP API instead of centroiding a file")

var guessX = flag.Float64("guessX", -1, "initial guess x position, position-space; <0 = auto-locate the brightest feature")
var guessY = flag.Float64("guessY", -1, "initial guess y position, position-space; <0 = auto-locate the brightest feature")
var radius = flag.Float64("radius", 8, "search radius in pixels")

var bias = flag.Float64("bias", -1, "CCD bias in ADU; <0 = use the frame header, default 0")
var readNoise = flag.Float64("readNoise", -1, "CCD read noise in electrons; <0 = use the frame header, default 0")
var ccdGain = flag.Float64("ccdGain", -1, "CCD gain in electrons/ADU; <0 = use the frame header, default 1")

var verbose = flag.Bool("verbose", false, "trace grid-walk iterations to the log")
var logFile = flag.String("log", "", "also write log output to `file`")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stdout, `guidecentroid Copyright (c) 2026 The Guidecentroid Authors
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (frame.fits | -serve)

Flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	start := time.Now()

	if *logFile != "" {
		if err := log.AlsoToFile(*logFile); err != nil {
			fmt.Fprintf(os.Stderr, "unable to open log file %s: %s\n", *logFile, err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	log.Printf("guidecentroid %s, %d MiB physical memory available\n", version, totalMiBs)
	centroid.Verbose = *verbose
	centroid.VerboseIterations = *verbose

	if *serve {
		log.Printf("serving HTTP API on :8080\n")
		if err := httpapi.Serve(); err != nil {
			log.Fatalf("error serving HTTP API: %s\n", err)
		}
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(args[0]); err != nil {
		log.Printf("error: %s\n", err)
		os.Exit(1)
	}

	log.Printf("done after %s\n", time.Since(start).Round(time.Millisecond*10))
}

func run(fileName string) error {
	frame, err := fitsimage.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("reading %s: %w", fileName, err)
	}
	mask, err := fitsimage.LoadMask(fileName, frame.Image.Width, frame.Image.Height)
	if err != nil {
		return fmt.Errorf("reading mask for %s: %w", fileName, err)
	}

	ccd := frame.CCD
	if *bias >= 0 {
		ccd.Bias = *bias
	}
	if *readNoise >= 0 {
		ccd.ReadNoise = *readNoise
	}
	if *ccdGain >= 0 {
		ccd.CCDGain = *ccdGain
	}

	guess := centroid.Point2D{X: *guessX, Y: *guessY}
	if *guessX < 0 || *guessY < 0 {
		guess, err = locate.FindBrightestGuess(frame.Image, mask, locate.DefaultSigma)
		if err != nil {
			if errors.Is(err, locate.ErrNoStarFound) {
				return fmt.Errorf("auto-locating a guess in %s: %w", fileName, err)
			}
			return err
		}
		log.Printf("auto-located guess at %v\n", guess)
	}

	result, err := centroid.Centroid(frame.Image, mask, guess, *radius, ccd)
	if err != nil {
		return fmt.Errorf("centroiding %s: %w", fileName, err)
	}

	fmt.Println("xCtr,yCtr,xErr,yErr,asymm,pix,counts,rad")
	fmt.Printf("%.4f,%.4f,%.4f,%.4f,%.6g,%d,%.6g,%d\n",
		result.XYCtr.X, result.XYCtr.Y, result.XYErr.X, result.XYErr.Y,
		result.Asymm, result.Pix, result.Counts, result.Rad)
	return nil
}
