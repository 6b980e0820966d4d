// Package fonts provides the typeface used by the raster renderer.
//
// The Go Regular typeface ships as TTF data inside golang.org/x/image,
// so it compiles into the binary without external font files or embed
// assets. The font is parsed once and faces are cached per point size.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
)

// FontFamily is the name of the bundled typeface.
const FontFamily = "Go Regular"

var (
	parseOnce sync.Once
	parsed    *truetype.Font
	parseErr  error
)

func parse() (*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = truetype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// Cache for faces (one per requested point size).
var (
	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// Face returns a font.Face for the bundled typeface at the given point
// size. Faces are cached and shared; callers must not close them.
// Rendering through a face is not goroutine-safe, which matches the
// single-threaded frame loop contract of the visualizer.
func Face(size float64) (font.Face, error) {
	f, err := parse()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontLoad, err, "parsing bundled typeface")
	}

	facesMu.Lock()
	defer facesMu.Unlock()

	if face, ok := faces[size]; ok {
		return face, nil
	}

	face := truetype.NewFace(f, &truetype.Options{Size: size})
	faces[size] = face
	return face, nil
}

// MustFace is like Face but panics on error. The bundled typeface data
// always parses, so this is safe for package-level defaults.
func MustFace(size float64) font.Face {
	face, err := Face(size)
	if err != nil {
		panic(err)
	}
	return face
}
