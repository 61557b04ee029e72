package model

// BoardSize is the dimension of the standard board
const BoardSize = 15

// Premium identifies the bonus printed on a board square
type Premium string

const (
	PremiumNone         Premium = ""
	PremiumDoubleLetter Premium = "dl"
	PremiumTripleLetter Premium = "tl"
	PremiumDoubleWord   Premium = "dw"
	PremiumTripleWord   Premium = "tw"
	PremiumStar         Premium = "star" // centre square, scores as double word
)

// Label returns the text printed on the square
func (p Premium) Label() string {
	switch p {
	case PremiumDoubleLetter:
		return "DOUBLE LETTER"
	case PremiumTripleLetter:
		return "TRIPLE LETTER"
	case PremiumDoubleWord:
		return "DOUBLE WORD"
	case PremiumTripleWord:
		return "TRIPLE WORD"
	case PremiumStar:
		return "★"
	default:
		return ""
	}
}

// Board is the row-major premium-square layout: Board[row][col]
type Board [BoardSize][BoardSize]Premium

const (
	__ = PremiumNone
	dl = PremiumDoubleLetter
	tl = PremiumTripleLetter
	dw = PremiumDoubleWord
	tw = PremiumTripleWord
	st = PremiumStar
)

var standardBoard = Board{
	{tw, __, __, dl, __, __, __, tw, __, __, __, dl, __, __, tw},
	{__, dw, __, __, __, tl, __, __, __, tl, __, __, __, dw, __},
	{__, __, dw, __, __, __, dl, __, dl, __, __, __, dw, __, __},
	{dl, __, __, dw, __, __, __, dl, __, __, __, dw, __, __, dl},
	{__, __, __, __, dw, __, __, __, __, __, dw, __, __, __, __},
	{__, tl, __, __, __, tl, __, __, __, tl, __, __, __, tl, __},
	{__, __, dl, __, __, __, dl, __, dl, __, __, __, dl, __, __},
	{tw, __, __, dl, __, __, __, st, __, __, __, dl, __, __, tw},
	{__, __, dl, __, __, __, dl, __, dl, __, __, __, dl, __, __},
	{__, tl, __, __, __, tl, __, __, __, tl, __, __, __, tl, __},
	{__, __, __, __, dw, __, __, __, __, __, dw, __, __, __, __},
	{dl, __, __, dw, __, __, __, dl, __, __, __, dw, __, __, dl},
	{__, __, dw, __, __, __, dl, __, dl, __, __, __, dw, __, __},
	{__, dw, __, __, __, tl, __, __, __, tl, __, __, __, dw, __},
	{tw, __, __, dl, __, __, __, tw, __, __, __, dl, __, __, tw},
}

// StandardBoard returns a copy of the standard 15x15 layout
func StandardBoard() Board {
	return standardBoard
}
