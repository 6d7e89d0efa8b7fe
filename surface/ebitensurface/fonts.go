package ebitensurface

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFamily is the family used for any font name not registered.
const DefaultFamily = "Go"

type family struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
}

type faceKey struct {
	family string
	bold   bool
	size   float64
}

// FontBook resolves font names to ebiten text faces. Faces are cached per
// family, weight and size.
type FontBook struct {
	families map[string]family
	faces    map[faceKey]*text.GoTextFace
}

// NewFontBook returns a book holding the Go fonts as DefaultFamily.
func NewFontBook() (*FontBook, error) {
	b := &FontBook{
		families: make(map[string]family),
		faces:    make(map[faceKey]*text.GoTextFace),
	}
	if err := b.Register(DefaultFamily, goregular.TTF, gobold.TTF); err != nil {
		return nil, err
	}
	return b, nil
}

// Register adds a family from TrueType/OpenType data. bold may be nil, in
// which case bold text uses the regular face.
func (b *FontBook) Register(name string, regular, bold []byte) error {
	reg, err := text.NewGoTextFaceSource(bytes.NewReader(regular))
	if err != nil {
		return fmt.Errorf("loading font %q: %w", name, err)
	}
	f := family{regular: reg, bold: reg}
	if bold != nil {
		f.bold, err = text.NewGoTextFaceSource(bytes.NewReader(bold))
		if err != nil {
			return fmt.Errorf("loading bold font %q: %w", name, err)
		}
	}
	b.families[name] = f

	for k := range b.faces {
		if k.family == name {
			delete(b.faces, k)
		}
	}
	return nil
}

// Face returns the face for name, falling back to DefaultFamily.
func (b *FontBook) Face(name string, bold bool, size float64) *text.GoTextFace {
	if _, ok := b.families[name]; !ok {
		name = DefaultFamily
	}
	key := faceKey{family: name, bold: bold, size: size}
	if f, ok := b.faces[key]; ok {
		return f
	}

	fam := b.families[name]
	src := fam.regular
	if bold {
		src = fam.bold
	}
	f := &text.GoTextFace{Source: src, Size: size}
	b.faces[key] = f
	return f
}
