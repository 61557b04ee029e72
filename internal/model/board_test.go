package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardBoardCentreIsStar(t *testing.T) {
	b := StandardBoard()
	assert.Equal(t, PremiumStar, b[7][7])
	assert.Equal(t, "★", b[7][7].Label())
}

func TestStandardBoardIsSymmetric(t *testing.T) {
	b := StandardBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			assert.Equal(t, b[row][col], b[col][row], "diagonal symmetry at %d,%d", row, col)
			assert.Equal(t, b[row][col], b[BoardSize-1-row][col], "vertical symmetry at %d,%d", row, col)
		}
	}
}

func TestStandardBoardPremiumCounts(t *testing.T) {
	counts := map[Premium]int{}
	b := StandardBoard()
	for _, row := range b {
		for _, sq := range row {
			counts[sq]++
		}
	}

	assert.Equal(t, 8, counts[PremiumTripleWord])
	assert.Equal(t, 16, counts[PremiumDoubleWord])
	assert.Equal(t, 12, counts[PremiumTripleLetter])
	assert.Equal(t, 24, counts[PremiumDoubleLetter])
	assert.Equal(t, 1, counts[PremiumStar])
}

func TestStandardBoardReturnsCopy(t *testing.T) {
	b := StandardBoard()
	b[0][0] = PremiumNone
	assert.Equal(t, PremiumTripleWord, StandardBoard()[0][0])
}
