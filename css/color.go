package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned for color strings ToRGB cannot interpret.
var ErrInvalidFormat = errors.New("invalid color format")

// ToRGB converts hex color (#RGB, #ARGB, #RRGGBB or #AARRGGBB, leading '#'
// optional, any case) into rgb() or rgba() function notation.
func ToRGB(color string) (string, error) {
	hex := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(color), "#"))

	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	case 6, 8:
	default:
		return "", fmt.Errorf("%w: %q has %d hex digits", ErrInvalidFormat, color, len(hex))
	}

	alpha := 1.0
	if len(hex) == 8 {
		a, err := channel(hex[0:2])
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrInvalidFormat, color, err)
		}
		alpha = math.Round(float64(a)/255*100) / 100
		hex = hex[2:]
	}

	var rgb [3]uint64
	for i := range rgb {
		v, err := channel(hex[i*2 : i*2+2])
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrInvalidFormat, color, err)
		}
		rgb[i] = v
	}

	if alpha == 1 {
		return fmt.Sprintf("rgb(%d,%d,%d)", rgb[0], rgb[1], rgb[2]), nil
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", rgb[0], rgb[1], rgb[2], strconv.FormatFloat(alpha, 'f', -1, 64)), nil
}

func channel(s string) (uint64, error) {
	return strconv.ParseUint(s, 16, 8)
}
