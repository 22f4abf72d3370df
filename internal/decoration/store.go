package decoration

import (
	"fmt"

	"image-interact/pkg/geometry"
)

// Store is the ordered collection of decorations. One position is designated
// active; all point mutations apply to the active polygon. The store is owned
// by a single writer (the interaction layer) and is never rebuilt wholesale
// after seeding.
type Store struct {
	decorations []Decoration
	active      int
}

// NewStore creates an empty store with no active decoration.
func NewStore() *Store {
	return &Store{active: -1}
}

// Add appends a decoration and returns its index. The first decoration added
// becomes active.
func (s *Store) Add(d Decoration) int {
	s.decorations = append(s.decorations, d)
	idx := len(s.decorations) - 1
	if s.active < 0 {
		s.active = idx
	}
	return idx
}

// Len returns the number of decorations.
func (s *Store) Len() int {
	return len(s.decorations)
}

// Decorations returns the decoration sequence in order. The slice is owned by
// the store; callers must not mutate it.
func (s *Store) Decorations() []Decoration {
	return s.decorations
}

// Active returns the active decoration index, or -1 if the store is empty.
func (s *Store) Active() int {
	return s.active
}

// SetActive designates the decoration eligible for editing.
func (s *Store) SetActive(index int) {
	if index < 0 || index >= len(s.decorations) {
		panic(fmt.Sprintf("decoration: active index %d out of range [0,%d)", index, len(s.decorations)))
	}
	s.active = index
}

// ActivePoints returns the active polygon's vertices. The slice is owned by
// the store; callers must not mutate it.
func (s *Store) ActivePoints() []geometry.Point2D {
	return s.activePolygon().Points
}

// SetPoint replaces the point at index, or appends when index equals the
// current point count.
func (s *Store) SetPoint(index int, p geometry.Point2D) {
	poly := s.activePolygon()
	switch {
	case index >= 0 && index < len(poly.Points):
		poly.Points[index] = p
	case index == len(poly.Points):
		poly.Points = append(poly.Points, p)
	default:
		panic(fmt.Sprintf("decoration: set point %d out of range [0,%d]", index, len(poly.Points)))
	}
}

// InsertPoint splices a point into the sequence, shifting subsequent indices
// up by one.
func (s *Store) InsertPoint(index int, p geometry.Point2D) {
	poly := s.activePolygon()
	if index < 0 || index > len(poly.Points) {
		panic(fmt.Sprintf("decoration: insert point %d out of range [0,%d]", index, len(poly.Points)))
	}
	poly.Points = append(poly.Points, geometry.Point2D{})
	copy(poly.Points[index+1:], poly.Points[index:])
	poly.Points[index] = p
}

// DeletePoint removes a point, shifting subsequent indices down by one.
func (s *Store) DeletePoint(index int) {
	poly := s.activePolygon()
	if index < 0 || index >= len(poly.Points) {
		panic(fmt.Sprintf("decoration: delete point %d out of range [0,%d)", index, len(poly.Points)))
	}
	poly.Points = append(poly.Points[:index], poly.Points[index+1:]...)
}

// Translate adds the delta to every point of the active polygon.
func (s *Store) Translate(dx, dy float64) {
	poly := s.activePolygon()
	delta := geometry.Point2D{X: dx, Y: dy}
	for i := range poly.Points {
		poly.Points[i] = poly.Points[i].Add(delta)
	}
}

// activePolygon returns the active decoration, which must be a polygon.
func (s *Store) activePolygon() *Decoration {
	if s.active < 0 || s.active >= len(s.decorations) {
		panic(fmt.Sprintf("decoration: no active decoration (index %d of %d)", s.active, len(s.decorations)))
	}
	d := &s.decorations[s.active]
	switch d.Kind {
	case KindPolygon:
		return d
	case KindPoint:
		panic("decoration: point decorations have no editable vertices")
	default:
		panic(fmt.Sprintf("decoration: unknown kind %d", d.Kind))
	}
}
