// Package heuristic provides admissible distance estimates between 2D
// coordinates for A* search on grids.
//
// Admissibility on a grid whose diagonal steps cost sqrt(2) (times terrain):
//
//   - Euclidean: admissible with or without diagonal movement.
//   - Octile:    admissible with or without diagonal movement, and tighter
//     than Euclidean when diagonals are allowed.
//   - Manhattan: admissible only for 4-connected movement; with diagonals a
//     single sqrt(2) step covers a Manhattan distance of 2.
//
// All three assume the cheapest step has unit cost; callers with other cost
// scales multiply the estimate by their minimum terrain cost.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrUnknownKind indicates a heuristic name outside the supported set.
var ErrUnknownKind = errors.New("heuristic: unknown distance type")

// Func estimates the distance between two points.
type Func func(a, b r2.Vec) float64

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Octile returns the length of the shortest 8-connected route between a and b
// on an obstacle-free unit grid: max(dx,dy) + (sqrt2-1)*min(dx,dy).
func Octile(a, b r2.Vec) float64 {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)

	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b r2.Vec) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Kind selects one of the built-in heuristics.
type Kind int

const (
	// KindEuclidean selects Euclidean.
	KindEuclidean Kind = iota
	// KindOctile selects Octile.
	KindOctile
	// KindManhattan selects Manhattan.
	KindManhattan
)

var kindNames = [...]string{
	KindEuclidean: "euclidean",
	KindOctile:    "octile",
	KindManhattan: "manhattan",
}

// String returns the configuration name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Func returns the distance function for k. Unknown kinds fall back to
// Euclidean, which is admissible for every supported movement model.
func (k Kind) Func() Func {
	switch k {
	case KindOctile:
		return Octile
	case KindManhattan:
		return Manhattan
	default:
		return Euclidean
	}
}

// ParseKind maps a case-insensitive name to a Kind.
// "euclidian" is accepted as an alias of "euclidean".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclidean", "euclidian":
		return KindEuclidean, nil
	case "octile":
		return KindOctile, nil
	case "manhattan":
		return KindManhattan, nil
	}

	return 0, fmt.Errorf("%w %q, must be from among: %s", ErrUnknownKind, name, strings.Join(kindNames[:], ", "))
}

// UnmarshalText implements encoding.TextUnmarshaler so a Kind can be decoded
// straight from configuration files.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return []byte(kindNames[k]), nil
}
