package cardproof

// All coordinates are in inches. The origin of a spread is the top-left
// corner of its trim area; bleed boxes may therefore have negative X/Y.

// Rect is an axis-aligned box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// outset grows the rect outward by the given amount on each selected edge.
func (r Rect) outset(amount float64, left, top, right, bottom bool) Rect {
	out := r
	if left {
		out.X -= amount
		out.Width += amount
	}
	if top {
		out.Y -= amount
		out.Height += amount
	}
	if right {
		out.Width += amount
	}
	if bottom {
		out.Height += amount
	}
	return out
}

// Segment is a single trim-mark stroke.
type Segment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}
