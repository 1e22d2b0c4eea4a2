package game

// MakeIterator makes row views of a row major board. Writes through the views
// change the board.
func MakeIterator(board []Colour, rows, cols int) (retVal [][]Colour) {
	if len(board) != rows*cols {
		panic("board does not match its shape")
	}
	retVal = make([][]Colour, rows)
	for i := range retVal {
		start := i * cols
		retVal[i] = board[start : start+cols : start+cols]
	}
	return
}

var directions = [...][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// HasLine reports whether c holds k cells in a row on the board, horizontally,
// vertically or along either diagonal.
func HasLine(board []Colour, rows, cols, k int, c Colour) bool {
	it := MakeIterator(board, rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if it[y][x] != c {
				continue
			}
			for _, d := range directions {
				count := 1
				for i, j := y+d[0], x+d[1]; i >= 0 && i < rows && j >= 0 && j < cols && it[i][j] == c; i, j = i+d[0], j+d[1] {
					count++
				}
				if count >= k {
					return true
				}
			}
		}
	}
	return false
}

// IsFull reports whether no cell is empty.
func IsFull(board []Colour) bool {
	for _, c := range board {
		if c == None {
			return false
		}
	}
	return true
}
