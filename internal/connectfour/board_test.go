package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFrom builds a grid from rows drawn top to bottom: '.' is empty,
// 'X' the first seat and 'O' the second.
func gridFrom(rows ...string) [][]Seat {
	grid := make([][]Seat, len(rows))
	for y, row := range rows {
		grid[y] = make([]Seat, len(row))
		for x, ch := range row {
			switch ch {
			case 'X':
				grid[y][x] = SeatFirst
			case 'O':
				grid[y][x] = SeatSecond
			}
		}
	}

	return grid
}

func TestFindSpotForColumn(t *testing.T) {
	grid := gridFrom(
		"...",
		"X..",
		"XO.",
	)

	assert.Equal(t, 0, findSpotForColumn(grid, 0))
	assert.Equal(t, 1, findSpotForColumn(grid, 1))
	assert.Equal(t, 2, findSpotForColumn(grid, 2))

	full := gridFrom(
		"X",
		"O",
	)
	assert.Equal(t, -1, findSpotForColumn(full, 0))
}

func TestWinningLine(t *testing.T) {
	tests := []struct {
		name string
		grid [][]Seat
		seat Seat
		want []Position
	}{
		{
			name: "horizontal along the bottom right edge",
			grid: gridFrom(
				".......",
				".......",
				"...XXXX",
			),
			seat: SeatFirst,
			want: []Position{{2, 3}, {2, 4}, {2, 5}, {2, 6}},
		},
		{
			name: "vertical in the top left corner",
			grid: gridFrom(
				"O..",
				"O..",
				"O..",
				"O..",
				"X..",
			),
			seat: SeatSecond,
			want: []Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			name: "diagonal down right from the top left corner",
			grid: gridFrom(
				"X...",
				"OX..",
				"OOX.",
				"OOOX",
			),
			seat: SeatFirst,
			want: []Position{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name: "diagonal down left ending in the bottom left corner",
			grid: gridFrom(
				"...O",
				"..OX",
				".OXX",
				"OXXO",
			),
			seat: SeatSecond,
			want: []Position{{0, 3}, {1, 2}, {2, 1}, {3, 0}},
		},
		{
			name: "three in a row is not a win",
			grid: gridFrom(
				".......",
				"XXX.XXX",
			),
			seat: SeatFirst,
			want: nil,
		},
		{
			name: "opponent pieces never count",
			grid: gridFrom(
				"....",
				"OOOO",
			),
			seat: SeatFirst,
			want: nil,
		},
		{
			name: "empty seat never matches",
			grid: gridFrom(
				"....",
				"....",
				"....",
				"....",
			),
			seat: SeatNone,
			want: nil,
		},
		{
			name: "board narrower than four",
			grid: gridFrom(
				"XXX",
				"XXX",
				"XXX",
			),
			seat: SeatFirst,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: the grid is scanned for the seat
			line := winningLine(tt.grid, tt.seat)

			// Then: the expected line (or none) is reported
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestIsFull(t *testing.T) {
	require.True(t, isFull(gridFrom("XO", "OX")))
	require.False(t, isFull(gridFrom(".O", "OX")))
}

func TestSeat_other(t *testing.T) {
	assert.Equal(t, SeatSecond, SeatFirst.other())
	assert.Equal(t, SeatFirst, SeatSecond.other())
}
