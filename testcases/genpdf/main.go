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

// Command genpdf generates reference images for the preview rasteriser.
// It creates PDFs from the shape catalog and, unless -pdf-only is given,
// renders them to PNGs using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/pack"
	"seehuhn.de/go/lines/testcases"
)

func main() {
	refDir := flag.String("dir", "testdata/reference", "output directory")
	pdfOnly := flag.Bool("pdf-only", false, "do not run Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *pdfOnly {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// generatePDF draws the shape of tc the way the stroke shader does: the
// page is the quad of the packed shape and every segment is stroked with
// round caps.
func generatePDF(tc testcases.TestCase, pdfPath string) error {
	g := tc.Shape()
	res, err := pack.Pack(g, tc.Width)
	if err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	size := float64(tc.Size)
	paper := &pdf.Rectangle{URx: size, URy: size}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that gray values are coverage values
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, size, size)
	page.Fill()

	// Both PDF and the shapes have y pointing up.  Map the quad
	// [-h, h]² onto the page.
	s := size / (2 * res.HalfSize)
	page.Transform(matrix.Matrix{s, 0, 0, s, size / 2, size / 2})

	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(tc.Width)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	// The shader skips zero-length segments, where PDF would draw a dot.
	visible := slices.DeleteFunc(g.Clone(), func(l lines.Line) bool { return l.A == l.B })
	for cmd, pts := range visible.Path() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		}
	}
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
