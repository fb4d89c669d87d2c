package charts

import (
	"fmt"
	"math"
	"strconv"
)

// rampColor maps v in [lo, hi] onto a colour ramp given as "#rrggbb" stops,
// interpolating linearly between neighbouring stops. When lo == hi every value
// gets the darkest stop.
func rampColor(stops []string, v, lo, hi float64) string {
	if len(stops) == 0 {
		return ""
	}
	if len(stops) == 1 || hi <= lo {
		return stops[len(stops)-1]
	}
	pos := (v - lo) / (hi - lo)
	pos = math.Max(0, math.Min(1, pos)) * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	from, to := parseHex(stops[i]), parseHex(stops[i+1])
	frac := pos - float64(i)
	var out [3]uint8
	for c := range out {
		out[c] = uint8(math.Round(float64(from[c]) + (float64(to[c])-float64(from[c]))*frac))
	}
	return fmt.Sprintf("#%02x%02x%02x", out[0], out[1], out[2])
}

func parseHex(s string) [3]uint8 {
	var rgb [3]uint8
	if len(s) != 7 || s[0] != '#' {
		return rgb
	}
	for c := range rgb {
		v, err := strconv.ParseUint(s[1+2*c:3+2*c], 16, 8)
		if err != nil {
			return [3]uint8{}
		}
		rgb[c] = uint8(v)
	}
	return rgb
}
