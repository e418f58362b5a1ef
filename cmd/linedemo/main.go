// seehuhn.de/go/lines - procedural line geometry for stroke rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Command linedemo builds a shape, submits it to a stroke renderer and
// writes a preview of the packed result as a PNG file.
//
// Usage:
//
//	linedemo -text HELLO -width 2 -out hello.png
//	linedemo -shape circle -out circle.png
//	linedemo -case scatter_dots -out dots.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/font"
	"seehuhn.de/go/lines/history"
	"seehuhn.de/go/lines/preview"
	"seehuhn.de/go/lines/stroke"
	"seehuhn.de/go/lines/testcases"
)

var (
	text    = flag.String("text", "", "text to draw")
	shape   = flag.String("shape", "circle", "shape to draw if no text is given: circle, jittered, polygon, scatter")
	tcName  = flag.String("case", "", "catalog shape to draw, e.g. text_word")
	width   = flag.Float64("width", 2, "stroke width")
	seed    = flag.Uint64("seed", 1, "seed for random shapes")
	size    = flag.Int("size", 256, "image size in pixels")
	out     = flag.String("out", "lines.png", "output file")
	destroy = flag.Bool("destroy", false, "break the shape into debris after drawing")
	debug   = flag.Bool("debug", false, "enable debug logging")
)

func buildShape() (lines.Group, float64, error) {
	if *tcName != "" {
		for category, cases := range testcases.All {
			for _, tc := range cases {
				if category+"_"+tc.Name == *tcName {
					return tc.Shape(), tc.Width, nil
				}
			}
		}
		return nil, 0, fmt.Errorf("unknown case %q", *tcName)
	}

	if *text != "" {
		return font.Text(*text).Centered(), *width, nil
	}

	rng := testcases.NewRand(*seed)
	switch strings.ToLower(*shape) {
	case "circle":
		return lines.Circle(50, 8), *width, nil
	case "jittered":
		return lines.JitteredCircle(rng, 50, 8, 5), *width, nil
	case "polygon":
		return lines.RegularPolygon(50, 7), *width, nil
	case "scatter":
		return lines.Scatter(rng, lines.RegularPolygon(4, 5), 50, 25, true), *width, nil
	default:
		return nil, 0, fmt.Errorf("unknown shape %q", *shape)
	}
}

func _main() error {
	g, w, err := buildShape()
	if err != nil {
		return err
	}

	pool := &stroke.MemoryPool{}
	r := stroke.NewRenderer(pool, nil, stroke.WithLogger(log.StandardLogger()))

	id := history.NewID()
	h, err := r.Submit(id, g, w)
	if err != nil {
		return err
	}
	log.WithField("id", id).Infof("submitted %d segments, quad half-size %.3g", len(g), h.HalfSize)

	settings, err := pool.Material(h.Material)
	if err != nil {
		return err
	}
	img := preview.Image(settings, *size)

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	err = errors.Join(err, f.Close())
	if err != nil {
		return err
	}
	log.Infof("wrote %s", *out)

	if *destroy {
		debris, err := r.Destroy(id)
		if err != nil {
			return err
		}
		for _, d := range debris {
			log.Debugf("\t debris at (%.3g, %.3g), %d segments", d.Position.X, d.Position.Y, len(d.Shape))
		}
		log.Infof("destroyed into %d pieces", len(debris))
	}
	return nil
}

func main() {
	flag.Parse()

	formatter := &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	}
	log.SetFormatter(formatter)
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	lines.SetLogger(log.StandardLogger())

	err := _main()
	if err != nil {
		log.Fatal(err)
	}
}
