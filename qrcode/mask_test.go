package qrcode

import "testing"

func TestChooseMaskDoesNotTouchReservedCells(t *testing.T) {
	m := newMatrix()
	m.placeFinderPatterns()
	m.placeAlignmentPattern()
	m.placeDarkModule()
	m.placeTimingPatterns()
	m.reserveFormatArea()

	before := m.data

	_, candidate := chooseMask(m)

	for r := 0; r < matrixSize; r++ {
		for c := 0; c < matrixSize; c++ {
			if m.reserved[r][c] && candidate[r][c] != before[r][c] {
				t.Fatalf("reserved cell (%d,%d) changed from %d to %d", r, c, before[r][c], candidate[r][c])
			}
		}
	}
}

func TestPenaltyScoreAllDarkIsWorseThanEmpty(t *testing.T) {
	var empty [matrixSize][matrixSize]byte
	var full [matrixSize][matrixSize]byte
	for r := range full {
		for c := range full[r] {
			full[r][c] = 1
		}
	}

	emptyScore := penaltyScore(empty)
	fullScore := penaltyScore(full)

	if fullScore <= emptyScore {
		t.Fatalf("expected an all-dark grid to score worse than an all-light one: empty=%d full=%d", emptyScore, fullScore)
	}
}

func TestPenaltyFinderLikeDetectsBothPatterns(t *testing.T) {
	var data [matrixSize][matrixSize]byte
	copy(data[0][0:11], finderLikePattern1[:])
	score1 := penaltyFinderLike(data)
	if score1 < 40 {
		t.Fatalf("pattern1 in row 0 scored %d, want >= 40", score1)
	}

	var data2 [matrixSize][matrixSize]byte
	copy(data2[0][0:11], finderLikePattern2[:])
	score2 := penaltyFinderLike(data2)
	if score2 < 40 {
		t.Fatalf("pattern2 in row 0 scored %d, want >= 40", score2)
	}
}

func TestPenaltyBalanceIsZeroAtFiftyPercent(t *testing.T) {
	var data [matrixSize][matrixSize]byte
	count := 0
	for r := 0; r < matrixSize && count < (matrixSize*matrixSize)/2; r++ {
		for c := 0; c < matrixSize && count < (matrixSize*matrixSize)/2; c++ {
			data[r][c] = 1
			count++
		}
	}
	score := penaltyBalance(data)
	// 312/625 = 49.9% -> bucket [45,50), min(|45-50|,|50-50|)*2 = 0
	if score != 0 {
		t.Fatalf("penaltyBalance at ~50%% dark = %d, want 0", score)
	}
}
