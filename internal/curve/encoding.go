package curve

import (
	"errors"
	"fmt"
	"math/big"

	"spdhec/internal/field"
)

var (
	ErrInvalidEncoding = errors.New("curve: invalid point encoding")
	ErrNotOnCurve      = errors.New("curve: point is not on the curve")
)

const (
	tagInfinity = 0x00
	tagEven     = 0x02
	tagOdd      = 0x03
)

// ByteLen is the width of one encoded field element.
func (c *Curve) ByteLen() int {
	if !c.Ready() {
		return 0
	}
	return (c.p.BitLen() + 7) / 8
}

// Compress encodes p as a parity tag (0x02 even y, 0x03 odd y) followed by the
// big-endian x-coordinate. The point at infinity is the single byte 0x00.
func (c *Curve) Compress(p Point) ([]byte, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if p.IsInfinity() {
		return []byte{tagInfinity}, nil
	}
	if !c.onCurve(p) {
		return nil, ErrNotOnCurve
	}
	out := make([]byte, 1+c.ByteLen())
	out[0] = tagEven | byte(p.y.Bit(0))
	p.x.FillBytes(out[1:])
	return out, nil
}

// Decompress reverses Compress, recovering y with a modular square root.
func (c *Curve) Decompress(b []byte) (Point, error) {
	if err := c.ready(); err != nil {
		return Point{}, err
	}
	if len(b) == 1 && b[0] == tagInfinity {
		return Point{}, nil
	}
	if len(b) != 1+c.ByteLen() || (b[0] != tagEven && b[0] != tagOdd) {
		return Point{}, fmt.Errorf("%w: %d bytes, tag %#x", ErrInvalidEncoding, len(b), firstByte(b))
	}
	x := new(big.Int).SetBytes(b[1:])
	if x.Cmp(c.p) >= 0 {
		return Point{}, fmt.Errorf("%w: x out of range", ErrInvalidEncoding)
	}

	w := c.rhs(x)
	if w.Sign() == 0 {
		if b[0] != tagEven {
			return Point{}, ErrNotOnCurve
		}
		return Point{x: x, y: new(big.Int)}, nil
	}
	if !field.IsQuadraticResidue(w, c.p) {
		return Point{}, ErrNotOnCurve
	}
	y, err := field.Sqrt(w, c.p)
	if err != nil {
		return Point{}, err
	}
	if y.Bit(0) != uint(b[0]&1) {
		y = field.Reduce(new(big.Int).Sub(c.p, y), c.p)
	}
	return Point{x: x, y: y}, nil
}

func firstByte(b []byte) byte {
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
