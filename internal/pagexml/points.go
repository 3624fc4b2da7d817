package pagexml

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pagemend/pagemend/internal/geometry"
)

// ParsePoints converts a PAGE "x,y x,y ..." attribute value into a
// point slice. Whitespace between pairs is flexible; each pair must be
// two integers separated by a comma.
func ParsePoints(s string) ([]geometry.Point, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	pts := make([]geometry.Point, 0, len(fields))
	for _, field := range fields {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("malformed point %q", field)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("malformed x coordinate %q: %w", xs, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("malformed y coordinate %q: %w", ys, err)
		}
		pts = append(pts, geometry.Point{X: float64(x), Y: float64(y)})
	}
	return pts, nil
}

// FormatPoints renders points back into the PAGE attribute form,
// rounding to whole pixels.
func FormatPoints(pts []geometry.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(math.Round(p.X))))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(int(math.Round(p.Y))))
	}
	return b.String()
}
