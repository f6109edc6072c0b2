/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package raster decodes logos and other images handed to the driver for
// printing. Dithering and the raster command encoding happen elsewhere;
// this package only turns bytes into an image.Image and reports failures
// through the escpos taxonomy.
package raster

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"dirpx.dev/escpos"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxWidth is the widest raster, in dots, that an 80 mm printer head accepts.
const MaxWidth = 576

// Decode reads an image in any registered format (PNG, JPEG, GIF, BMP,
// WebP). A nil reader reports KindNoPrintData; every decode failure is
// wrapped unchanged in a KindImage error.
func Decode(r io.Reader) (image.Image, string, error) {
	if r == nil {
		return nil, "", escpos.NoPrintData()
	}
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", escpos.Image(err)
	}
	return img, format, nil
}

// DecodeBytes is Decode over an in-memory buffer. Empty input reports
// KindNoPrintData.
func DecodeBytes(b []byte) (image.Image, string, error) {
	if len(b) == 0 {
		return nil, "", escpos.NoPrintData()
	}
	return Decode(bytes.NewReader(b))
}

// Fits reports whether img is narrow enough to print without scaling.
// Oversized images are an image error carrying the width as detail; a nil
// image reports KindNoPrintData.
func Fits(img image.Image) error {
	if img == nil {
		return escpos.NoPrintData()
	}
	w := img.Bounds().Dx()
	if w > MaxWidth {
		return escpos.Image(errWidth,
			escpos.WithDetailOption("width", w),
			escpos.WithDetailOption("max_width", MaxWidth),
		)
	}
	return nil
}
