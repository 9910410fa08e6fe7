// File: errors.go
// Role: construction, topology and state errors shared by every graph shape.
//
// Error policy:
//   - Construction errors are returned as *BuildError, a tagged value whose
//     Kind callers switch on; each kind also unwraps to a sentinel so that
//     errors.Is keeps working.
//   - Topology errors name the offending label.
//   - "No path" is not an error; see solver.Result.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch on them with errors.Is.
var (
	// ErrInvalidCost indicates a negative terrain or edge cost.
	ErrInvalidCost = errors.New("core: invalid cost")

	// ErrDuplicateEdge indicates the same unordered pair of places was declared twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrNonRectangular indicates a cost matrix whose rows differ in length.
	ErrNonRectangular = errors.New("core: non-rectangular grid")

	// ErrEmptyGrid indicates a cost matrix with no rows or no columns.
	ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")

	// ErrEmptyLabel indicates an explicit place declared with an empty label.
	ErrEmptyLabel = errors.New("core: place label is empty")

	// ErrSelfLoop indicates an explicit edge whose endpoints are the same place.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDisjointGraph indicates the graph has more than one connected component.
	ErrDisjointGraph = errors.New("core: cannot support a disjoint graph")

	// ErrPlaceNotOnGraph indicates a label that does not name a place on the graph.
	ErrPlaceNotOnGraph = errors.New("core: place is not on the graph")

	// ErrNotAdjacent indicates two consecutive path places that share no edge.
	ErrNotAdjacent = errors.New("core: places are not adjacent")

	// ErrUninitialized indicates a terrain store queried before it was populated.
	ErrUninitialized = errors.New("core: terrain costs not yet initialised")
)

// BuildErrorKind enumerates the construction failures.
type BuildErrorKind int

const (
	// InvalidCost: a negative terrain or edge cost.
	InvalidCost BuildErrorKind = iota
	// DuplicateEdge: an unordered pair declared more than once.
	DuplicateEdge
	// NonRectangular: a cost-matrix row whose length differs from row 0.
	NonRectangular
	// EmptyGrid: a cost matrix with no rows or no columns.
	EmptyGrid
	// EmptyLabel: an explicit place with an empty label.
	EmptyLabel
	// SelfLoop: an explicit edge from a place to itself.
	SelfLoop
)

// String returns the lower-case name of the kind.
func (k BuildErrorKind) String() string {
	switch k {
	case InvalidCost:
		return "invalid cost"
	case DuplicateEdge:
		return "duplicate edge"
	case NonRectangular:
		return "non-rectangular grid"
	case EmptyGrid:
		return "empty grid"
	case EmptyLabel:
		return "empty label"
	case SelfLoop:
		return "self-loop"
	default:
		return fmt.Sprintf("BuildErrorKind(%d)", int(k))
	}
}

// BuildError reports why a graph could not be constructed or edited.
// Only the fields relevant to Kind are populated.
type BuildError struct {
	Kind BuildErrorKind

	// Location names the offending place or pair, e.g. "(1, 2)" or "(A, B)".
	Location string

	// Cost is the rejected value for InvalidCost.
	Cost float64

	// Row, RowLen and WantLen describe a NonRectangular matrix: row Row has
	// RowLen entries while row 0 has WantLen.
	Row, RowLen, WantLen int
}

// Error implements error.
func (e *BuildError) Error() string {
	switch e.Kind {
	case InvalidCost:
		return fmt.Sprintf("%v: %g for %s", ErrInvalidCost, e.Cost, e.Location)
	case DuplicateEdge:
		return fmt.Sprintf("%v: cannot specify the same pair of places more than once: %s", ErrDuplicateEdge, e.Location)
	case NonRectangular:
		return fmt.Sprintf("%v: row 0 has length %d but row %d has length %d", ErrNonRectangular, e.WantLen, e.Row, e.RowLen)
	case SelfLoop:
		return fmt.Sprintf("%v: %s", ErrSelfLoop, e.Location)
	}
	if err := e.Unwrap(); err != nil {
		return err.Error()
	}

	return "core: " + e.Kind.String()
}

// Unwrap returns the sentinel matching Kind.
func (e *BuildError) Unwrap() error {
	switch e.Kind {
	case InvalidCost:
		return ErrInvalidCost
	case DuplicateEdge:
		return ErrDuplicateEdge
	case NonRectangular:
		return ErrNonRectangular
	case EmptyGrid:
		return ErrEmptyGrid
	case EmptyLabel:
		return ErrEmptyLabel
	case SelfLoop:
		return ErrSelfLoop
	default:
		return nil
	}
}

// PlaceNotFoundError reports a start or target label absent from the graph.
type PlaceNotFoundError struct {
	// Role is "start" or "target".
	Role string
	// Label is the offending label, rendered with fmt's default verb.
	Label string
}

// Error implements error.
func (e *PlaceNotFoundError) Error() string {
	return fmt.Sprintf("core: the %s place (%q) is not on the graph", e.Role, e.Label)
}

// Unwrap returns ErrPlaceNotOnGraph.
func (e *PlaceNotFoundError) Unwrap() error { return ErrPlaceNotOnGraph }

// NewPlaceNotFound builds a *PlaceNotFoundError for any label type.
func NewPlaceNotFound[L comparable](role string, label L) *PlaceNotFoundError {
	return &PlaceNotFoundError{Role: role, Label: fmt.Sprint(label)}
}

// PairLocation renders an ordered pair of labels as "(a, b)".
func PairLocation[L comparable](a, b L) string {
	return fmt.Sprintf("(%v, %v)", a, b)
}
