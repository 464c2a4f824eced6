package tree

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// UUIDGenerator issues random UUIDv4 strings for folders and notes.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// LightColorGenerator picks a random pastel color: random hue at 80%
// saturation and 90% lightness.
type LightColorGenerator struct{}

func (LightColorGenerator) RandomColor() string {
	return colorful.Hsl(rand.Float64()*360, 0.8, 0.9).Clamped().Hex()
}

// ValidColor reports whether s is a #rgb or #rrggbb hex color.
func ValidColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}
