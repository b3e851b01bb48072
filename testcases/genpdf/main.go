// seehuhn.de/go/fill - filled and shaded regions for PDF and PostScript
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

// Command genpdf draws all test cases as PDF and EPS files, together with
// PNG previews.  With -gs, the PDF files are also rendered using
// Ghostscript, for visual comparison with the previews.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/fill"
	"seehuhn.de/go/fill/pdfdev"
	"seehuhn.de/go/fill/preview"
	"seehuhn.de/go/fill/psdev"
	"seehuhn.de/go/fill/testcases"
)

func main() {
	outDir := flag.String("out", "testdata/reference", "output directory")
	withPNG := flag.Bool("png", true, "write PNG previews")
	withGS := flag.Bool("gs", false, "render the PDF files using Ghostscript")
	scale := flag.Float64("scale", 4, "pixels per point for the PNG previews")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			base := filepath.Join(*outDir, name)

			d, err := tc.Drawer()
			if err != nil {
				log.Fatalf("%s: %v", name, err)
			}

			if err := writePDF(tc, d, base+".pdf"); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if err := writeEPS(tc, d, base+".eps"); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if *withPNG {
				err := writePNG(tc, d, *scale, base+".png")
				if errors.Is(err, preview.ErrEvenOdd) {
					log.Printf("%s: no preview (%v)", name, err)
				} else if err != nil {
					log.Fatalf("%s: %v", name, err)
				}
			}
			if *withGS {
				if err := renderGS(base+".pdf", base+"-gs.png", *scale); err != nil {
					log.Fatalf("%s: %v", name, err)
				}
			}
		}
	}
}

func writePDF(tc testcases.TestCase, d fill.Drawer, fileName string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	dev := pdfdev.New(page.Builder)
	if err := fill.Draw(dev, d); err != nil {
		return err
	}
	return page.Close()
}

func writeEPS(tc testcases.TestCase, d fill.Drawer, fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}

	w := psdev.New(f)
	w.WriteHeader(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	err = fill.Draw(w, d)
	w.WriteTrailer()
	if err == nil {
		err = w.Err()
	}

	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

func writePNG(tc testcases.TestCase, d fill.Drawer, scale float64, fileName string) error {
	width := int(float64(tc.Width)*scale + 0.5)
	height := int(float64(tc.Height)*scale + 0.5)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	dev, err := preview.New(img, preview.PageTransform(float64(tc.Height), scale))
	if err != nil {
		return err
	}
	if err := fill.Draw(dev, d); err != nil {
		return err
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

func renderGS(pdfPath, pngPath string, scale float64) error {
	// -sDEVICE=png16m: 24-bit RGB
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		fmt.Sprintf("-r%d", int(72*scale+0.5)),
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
