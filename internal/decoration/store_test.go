package decoration

import (
	"testing"

	"image-interact/pkg/geometry"
)

func newTestStore(points ...geometry.Point2D) *Store {
	s := NewStore()
	s.Add(PolygonFromPoints(points))
	return s
}

func TestSetPointReplaceAndAppend(t *testing.T) {
	s := newTestStore(geometry.NewPoint2D(1, 1))

	s.SetPoint(0, geometry.NewPoint2D(2, 2))
	if got := s.ActivePoints()[0]; got != geometry.NewPoint2D(2, 2) {
		t.Errorf("replace failed: got %v", got)
	}

	// index == length appends
	s.SetPoint(1, geometry.NewPoint2D(3, 3))
	if len(s.ActivePoints()) != 2 {
		t.Fatalf("append failed: %d points", len(s.ActivePoints()))
	}
	if got := s.ActivePoints()[1]; got != geometry.NewPoint2D(3, 3) {
		t.Errorf("append failed: got %v", got)
	}
}

func TestInsertPointShiftsIndices(t *testing.T) {
	s := newTestStore(
		geometry.NewPoint2D(0, 0),
		geometry.NewPoint2D(10, 0),
	)

	s.InsertPoint(1, geometry.NewPoint2D(5, 0))

	want := []geometry.Point2D{
		geometry.NewPoint2D(0, 0),
		geometry.NewPoint2D(5, 0),
		geometry.NewPoint2D(10, 0),
	}
	got := s.ActivePoints()
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestDeletePoint(t *testing.T) {
	s := newTestStore(
		geometry.NewPoint2D(0, 0),
		geometry.NewPoint2D(5, 0),
		geometry.NewPoint2D(10, 0),
	)

	s.DeletePoint(1)

	got := s.ActivePoints()
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[1] != geometry.NewPoint2D(10, 0) {
		t.Errorf("indices did not shift down: got %v", got[1])
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	original := []geometry.Point2D{
		geometry.NewPoint2D(1, 2),
		geometry.NewPoint2D(3, 4),
		geometry.NewPoint2D(5, 6),
	}
	s := newTestStore(append([]geometry.Point2D(nil), original...)...)

	s.Translate(7, -3)
	s.Translate(-7, 3)

	got := s.ActivePoints()
	for i := range original {
		if got[i] != original[i] {
			t.Errorf("point %d: expected exact restore %v, got %v", i, original[i], got[i])
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	cases := []struct {
		name string
		op   func(*Store)
	}{
		{"set", func(s *Store) { s.SetPoint(5, geometry.Point2D{}) }},
		{"insert", func(s *Store) { s.InsertPoint(5, geometry.Point2D{}) }},
		{"delete", func(s *Store) { s.DeletePoint(2) }},
		{"delete-negative", func(s *Store) { s.DeletePoint(-1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(1, 1))
			defer func() {
				if recover() == nil {
					t.Errorf("%s with out-of-range index should panic", tc.name)
				}
			}()
			tc.op(s)
		})
	}
}

func TestFirstDecorationBecomesActive(t *testing.T) {
	s := NewStore()
	if s.Active() != -1 {
		t.Errorf("empty store should have no active decoration, got %d", s.Active())
	}
	idx := s.Add(NewPolygon())
	if s.Active() != idx {
		t.Errorf("first added decoration should be active, got %d", s.Active())
	}
}
