package qrcode

// matrixSize is the module dimension of a version-2 QR symbol.
const matrixSize = 25

// matrix holds the 25x25 module grid alongside a same-shaped reservation
// bitmap: reserved[r][c] is true once a function pattern, separator,
// timing line, dark module, or format-information cell owns (r,c), and
// such cells are never touched again by the mask transform or the data
// writer. Kept as a plain companion array (not a tagged variant per cell)
// so the hot data-fill and masking loops stay branch-predictable.
type matrix struct {
	data     [matrixSize][matrixSize]byte
	reserved [matrixSize][matrixSize]bool
}

func newMatrix() *matrix {
	return &matrix{}
}

func (m *matrix) reserve(r, c int) {
	m.reserved[r][c] = true
}

// placeFinderPatterns draws the three 7x7 finder patterns (outer dark ring,
// white inner ring, 3x3 dark center) and reserves each one's 8x8 footprint,
// including its one-module separator.
func (m *matrix) placeFinderPatterns() {
	m.placeFinder(0, 0)
	m.placeFinder(18, 0)
	m.placeFinder(0, 18)

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			m.reserve(r, c)
			m.reserve(17+r, c)
			m.reserve(r, 17+c)
		}
	}
}

func (m *matrix) placeFinder(row, col int) {
	for r := 0; r < 7; r++ {
		m.data[row][col+r] = 1
		m.data[row+6][col+r] = 1
		m.data[row+r][col] = 1
		m.data[row+r][col+6] = 1
	}
	for r := 2; r <= 4; r++ {
		for c := 2; c <= 4; c++ {
			m.data[row+r][col+c] = 1
		}
	}
}

// placeAlignmentPattern draws the single 5x5 alignment pattern centered at
// (18,18), version 2's only alignment location, and reserves its footprint.
func (m *matrix) placeAlignmentPattern() {
	const cr, cc = 18, 18
	m.data[cr][cc] = 1
	for i := -2; i <= 2; i++ {
		m.data[cr-2][cc+i] = 1
		m.data[cr+2][cc+i] = 1
		m.data[cr+i][cc-2] = 1
		m.data[cr+i][cc+2] = 1
	}
	for r := -2; r <= 2; r++ {
		for c := -2; c <= 2; c++ {
			m.reserve(cr+r, cc+c)
		}
	}
}

// placeDarkModule sets the single fixed dark module adjacent to the
// bottom-left finder pattern.
func (m *matrix) placeDarkModule() {
	m.data[17][8] = 1
	m.reserve(17, 8)
}

// placeTimingPatterns draws the alternating row/column timing lines
// connecting the finder patterns.
func (m *matrix) placeTimingPatterns() {
	for i := 0; i < 9; i++ {
		if i%2 == 0 {
			m.data[6][8+i] = 1
			m.data[8+i][6] = 1
		}
		m.reserve(6, 8+i)
		m.reserve(8+i, 6)
	}
}

// reserveFormatArea reserves the L-shaped strips around the top-left
// finder and the short strips next to the other two finders, which will
// later receive the BCH format string.
func (m *matrix) reserveFormatArea() {
	for i := 0; i < matrixSize; i++ {
		if i <= 8 || i >= 17 {
			m.reserve(8, i)
			m.reserve(i, 8)
		}
	}
}

// fillData walks bits into the grid following the canonical QR zig-zag:
// starting at the bottom-right corner, working upward in column pairs,
// skipping the column-6 timing line, and writing only unreserved cells.
func (m *matrix) fillData(bits []byte) {
	col := matrixSize - 1
	row := matrixSize - 1
	up := true
	idx := 0

	for idx < len(bits) {
		for _, c := range [2]int{col, col - 1} {
			if !m.reserved[row][c] {
				m.data[row][c] = bits[idx]
				idx++
				if idx == len(bits) {
					break
				}
			}
		}

		if up {
			if row == 0 {
				up = false
				col -= 2
				if col == 6 {
					col--
				}
				continue
			}
			row--
		} else {
			if row == matrixSize-1 {
				up = true
				col -= 2
				if col == 6 {
					col--
				}
				continue
			}
			row++
		}
	}
}
