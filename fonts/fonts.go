package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{
		HUD:   basicfont.Face7x13,
		Title: basicfont.Face7x13,
	}
)

// Register replaces or adds a face under name.
func Register(name FontName, face font.Face) {
	fonts[name] = face
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
