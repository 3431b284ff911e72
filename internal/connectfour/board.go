package connectfour

// Seat identifies which of the two players owns a cell. Ownership is decided
// by seat, never by a player's ID or colour.
type Seat int

const (
	SeatNone Seat = iota
	SeatFirst
	SeatSecond
)

const winLength = 4

// Position is a cell address; row 0 is the top of the board.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// directions are → ↓ ↘ ↙ as (row, column) steps.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

func (that Seat) other() Seat {
	if that == SeatFirst {
		return SeatSecond
	}
	return SeatFirst
}

func newGrid(height, width int) [][]Seat {
	grid := make([][]Seat, height)
	for y := range grid {
		grid[y] = make([]Seat, width)
	}

	return grid
}

func copyGrid(grid [][]Seat) [][]Seat {
	cp := make([][]Seat, len(grid))
	for y, row := range grid {
		cp[y] = append([]Seat(nil), row...)
	}

	return cp
}

// findSpotForColumn returns the lowest empty row in column x, or -1 when the
// column is full.
func findSpotForColumn(grid [][]Seat, x int) int {
	for y := len(grid) - 1; y >= 0; y-- {
		if grid[y][x] == SeatNone {
			return y
		}
	}

	return -1
}

// winningLine scans every cell for a run of four owned by seat starting there.
func winningLine(grid [][]Seat, seat Seat) []Position {
	if seat == SeatNone {
		return nil
	}

	for y := range grid {
		for x := range grid[y] {
			for _, dir := range directions {
				if line := lineFrom(grid, seat, y, x, dir); line != nil {
					return line
				}
			}
		}
	}

	return nil
}

func lineFrom(grid [][]Seat, seat Seat, y, x int, dir [2]int) []Position {
	line := make([]Position, 0, winLength)

	for i := 0; i < winLength; i++ {
		row, col := y+dir[0]*i, x+dir[1]*i
		if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
			return nil
		}

		if grid[row][col] != seat {
			return nil
		}

		line = append(line, Position{Row: row, Column: col})
	}

	return line
}

func isFull(grid [][]Seat) bool {
	for _, row := range grid {
		for _, cell := range row {
			if cell == SeatNone {
				return false
			}
		}
	}

	return true
}
