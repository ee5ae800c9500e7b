package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardFleet(t *testing.T) {
	f := NewStandardFleet()
	require.Equal(t, 5, f.Len())
	require.Equal(t, TotalShipCells, f.TotalCells())
	require.Equal(t, 5, f.RemainingCount())
	require.False(t, f.AllPlaced())

	var lengths []int
	for i, s := range f.Ships() {
		require.Equal(t, ShipID(i), s.ID)
		lengths = append(lengths, s.Length)
	}
	require.Equal(t, []int{2, 3, 3, 4, 5}, lengths)
	require.NoError(t, ValidateClasses(StandardClasses))
}

func TestValidateClassesRejectsOtherSizes(t *testing.T) {
	require.ErrorIs(t, ValidateClasses(StandardClasses[:4]), ErrFleetSize)
	require.ErrorIs(t, ValidateClasses(append(StandardClasses, ShipClass{Name: "x", Length: 2})), ErrFleetSize)
}

func TestPlaceNextFollowsFleetOrder(t *testing.T) {
	p := NewPlayer("p", NewStandardFleet())

	// an invalid proposal leaves the same ship next
	s, err := p.PlaceNext(At(0, 9), Horizontal)
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.Equal(t, ShipID(0), s.ID)
	require.Equal(t, 5, p.Fleet.RemainingCount())

	for row := 0; row < 5; row++ {
		s, err := p.PlaceNext(At(row, 0), Horizontal)
		require.NoError(t, err)
		require.Equal(t, ShipID(row), s.ID)
		require.Equal(t, 4-row, p.Fleet.RemainingCount())
	}
	require.True(t, p.Fleet.AllPlaced())

	_, err = p.PlaceNext(At(9, 0), Horizontal)
	require.ErrorIs(t, err, ErrFleetPlaced)
}

func TestShipPlacedOnce(t *testing.T) {
	f := NewStandardFleet()
	s := f.Ships()[0]
	_, ok := s.Anchor()
	require.False(t, ok)
	require.Nil(t, s.Footprint())

	require.NoError(t, s.place(At(1, 1), Vertical))
	require.ErrorIs(t, s.place(At(2, 2), Horizontal), ErrAlreadyPlaced)
	a, ok := s.Anchor()
	require.True(t, ok)
	require.Equal(t, At(1, 1), a)
	require.Equal(t, []Coord{At(1, 1), At(2, 1)}, s.Footprint())
}
