package curve

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Point is an affine point or, as the zero value, the point at infinity.
type Point struct {
	x, y *big.Int
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// Infinity returns the group identity.
func Infinity() Point { return Point{} }

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool { return p.x == nil }

// X returns a copy of the x-coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int { return cloneInt(p.x) }

// Y returns a copy of the y-coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int { return cloneInt(p.y) }

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	if p.IsInfinity() {
		return Point{}
	}
	return NewPoint(p.x, p.y)
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}

type pointJSON struct {
	X        *big.Int `json:"x,omitempty"`
	Y        *big.Int `json:"y,omitempty"`
	Infinity bool     `json:"infinity,omitempty"`
}

// MarshalJSON encodes p as {"x":..,"y":..} or {"infinity":true}.
func (p Point) MarshalJSON() ([]byte, error) {
	if p.IsInfinity() {
		return json.Marshal(pointJSON{Infinity: true})
	}
	return json.Marshal(pointJSON{X: p.x, Y: p.y})
}

// UnmarshalJSON mirrors MarshalJSON.
func (p *Point) UnmarshalJSON(data []byte) error {
	var aux pointJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch {
	case aux.Infinity:
		*p = Point{}
	case aux.X == nil || aux.Y == nil:
		return fmt.Errorf("%w: missing coordinate", ErrInvalidEncoding)
	default:
		*p = Point{x: aux.X, y: aux.Y}
	}
	return nil
}
