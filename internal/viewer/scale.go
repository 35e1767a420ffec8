package viewer

import "fmt"

// Size is a width and height in pixels.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Empty reports whether either side is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// FitLongest scales src so that its longer side equals limit, keeping the
// aspect ratio. The shorter side is rounded to the nearest pixel and never
// drops below 1. Square sources become limit x limit. An empty src or a
// non-positive limit yields the zero Size.
func FitLongest(src Size, limit int) Size {
	if src.Empty() || limit <= 0 {
		return Size{}
	}
	if src.Width > src.Height {
		return Size{Width: limit, Height: scaleSide(limit, src.Height, src.Width)}
	}
	return Size{Width: scaleSide(limit, src.Width, src.Height), Height: limit}
}

// scaleSide returns round(limit*num/den) using integer arithmetic.
func scaleSide(limit, num, den int) int {
	v := (2*limit*num + den) / (2 * den)
	if v < 1 {
		v = 1
	}
	return v
}
