package game

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"lanesurvivor/sim"
)

//go:embed assets/*.svg
var assets embed.FS

// tintToken is the fill color replaced per skin in the SVG templates
const tintToken = "#ff00ff"

// skinArt says which template draws a skin and how it is tinted
type skinArt struct {
	file   string
	tint   string
	width  int
	height int
}

var skinTable = map[string]skinArt{
	sim.SkinPlayerA: {"character.svg", "#3cb44b", 32, 48},
	sim.SkinPlayerB: {"character.svg", "#4363d8", 32, 48},
	"character-p":   {"character.svg", "#e6194b", 32, 48},
	"character-q":   {"character.svg", "#f58231", 32, 48},
	"character-n":   {"character.svg", "#911eb4", 32, 48},
	"character-m":   {"character.svg", "#9a6324", 32, 48},
	"building-i":    {"building.svg", "#a9a9a9", 40, 64},
	"building-p":    {"building.svg", "#c8a27a", 40, 64},
	"building-j":    {"building.svg", "#8fa7b3", 40, 64},
	"building-s":    {"building.svg", "#b07a6a", 40, 64},
	sim.SkinTree:    {"tree.svg", "", 32, 48},
}

// SpriteBook resolves archetype keys to rasterized sprites
type SpriteBook struct {
	sprites map[string]*ebiten.Image
}

// NewSpriteBook rasterizes every known skin. Set DEBUG_SPRITES=1 to also
// write each sprite as a PNG into the working directory.
func NewSpriteBook() (*SpriteBook, error) {
	book := &SpriteBook{sprites: make(map[string]*ebiten.Image, len(skinTable))}
	for key, art := range skinTable {
		img, err := renderSkin(art)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", key, err)
		}
		book.sprites[key] = ebiten.NewImageFromImage(img)

		if os.Getenv("DEBUG_SPRITES") == "1" {
			saveDebugPNG(img, "debug_"+key+".png")
		}
	}
	return book, nil
}

// Get returns the sprite for key, nil if the skin is unknown
func (b *SpriteBook) Get(key string) *ebiten.Image {
	if b == nil {
		return nil
	}
	return b.sprites[key]
}

func renderSkin(art skinArt) (*image.RGBA, error) {
	data, err := assets.ReadFile("assets/" + art.file)
	if err != nil {
		return nil, err
	}
	if art.tint != "" {
		data = []byte(strings.ReplaceAll(string(data), tintToken, art.tint))
	}
	return rasterizeSVG(data, art.width, art.height)
}

// rasterizeSVG renders SVG data into a width x height image
func rasterizeSVG(data []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

func saveDebugPNG(img image.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("Failed to create debug PNG: %v", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Printf("Failed to encode debug PNG: %v", err)
	}
}
