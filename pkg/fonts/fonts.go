// Package fonts provides the font used to draw chart text.
//
// Charts use Go Regular from golang.org/x/image, which is compiled into the
// binary, so raster output looks the same on every host and SVG output can
// embed the face instead of depending on system fonts.
package fonts

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name of the embedded face.
const FontFamily = "Go"

// FallbackFontFamily lists fonts to use when the embedded face is not loaded.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// RegularTTF returns the TTF font data.
func RegularTTF() []byte {
	return goregular.TTF
}

// Cache for base64-encoded fonts (computed once on first access).
var (
	ttfBase64     string
	ttfBase64Once sync.Once
)

// RegularTTFBase64 returns the TTF font data as a base64 string, for
// embedding in an SVG @font-face rule. The result is cached after first
// computation.
func RegularTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

var (
	source     *text.FontSource
	sourceErr  error
	sourceOnce sync.Once
)

// Source returns the parsed font, shared by all raster renders.
func Source() (*text.FontSource, error) {
	sourceOnce.Do(func() {
		source, sourceErr = text.NewFontSource(goregular.TTF)
		if sourceErr != nil {
			sourceErr = fmt.Errorf("load Go Regular: %w", sourceErr)
		}
	})
	return source, sourceErr
}

// Face returns the embedded font at size points.
func Face(size float64) (text.Face, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}
