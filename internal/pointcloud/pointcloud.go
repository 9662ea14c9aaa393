// Package pointcloud defines the point and cloud types shared by the shape
// generators, the design stores and the API layer.
package pointcloud

import "fmt"

// Point is a single sample in model space. Coordinates are unitless and sit
// roughly within [-1, 1] on each axis.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Cloud is an ordered point sequence. Order is generation order and is kept
// through serialisation so repeated requests produce identical bytes.
type Cloud []Point

// Cap limits c to at most budget points by dropping everything after the
// first budget points. A budget of zero or less means uncapped. The returned
// slice has its capacity clipped so appending to it never writes into c.
func Cap(c Cloud, budget int) Cloud {
	if budget <= 0 || len(c) <= budget {
		return c
	}
	return c[:budget:budget]
}

// Concat joins the parts in order into a freshly allocated cloud.
func Concat(parts ...Cloud) Cloud {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(Cloud, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Equal reports whether a and b hold the same points in the same order.
// Nil and empty clouds compare equal.
func Equal(a, b Cloud) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
