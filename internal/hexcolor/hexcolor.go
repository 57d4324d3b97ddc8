// Package hexcolor validates and normalizes #RRGGBB category colors.
package hexcolor

import (
	"math/rand/v2"
	"strings"
)

// Palette is the set of colors handed out when none is given.
var Palette = []string{
	"#FF5733", "#33FF57", "#3357FF", "#F333FF", "#33FFF5", "#F5FF33", "#FF33A8",
	"#A833FF", "#33FFA8", "#FFA833", "#FF3380", "#8033FF", "#33FF80", "#FF8033",
}

// Normalize accepts six hex digits with or without a leading '#', in any
// case, and returns the uppercase "#RRGGBB" form.
func Normalize(v string) (string, bool) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(v) != 6 {
		return "", false
	}
	for _, c := range v {
		if !isHexDigit(c) {
			return "", false
		}
	}
	return "#" + strings.ToUpper(v), true
}

// Valid reports whether v normalizes to a color.
func Valid(v string) bool {
	_, ok := Normalize(v)
	return ok
}

// Random picks a color from Palette.
func Random() string {
	return Palette[rand.IntN(len(Palette))]
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
