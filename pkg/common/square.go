package common

import (
	"fmt"
	"strings"
)

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Squares are numbered from h1 (0) towards a1 (7), then rank by rank up to a8 (63).
const (
	SquareH1 = iota
	SquareG1
	SquareF1
	SquareE1
	SquareD1
	SquareC1
	SquareB1
	SquareA1
	SquareH2
	SquareG2
	SquareF2
	SquareE2
	SquareD2
	SquareC2
	SquareB2
	SquareA2
	SquareH3
	SquareG3
	SquareF3
	SquareE3
	SquareD3
	SquareC3
	SquareB3
	SquareA3
	SquareH4
	SquareG4
	SquareF4
	SquareE4
	SquareD4
	SquareC4
	SquareB4
	SquareA4
	SquareH5
	SquareG5
	SquareF5
	SquareE5
	SquareD5
	SquareC5
	SquareB5
	SquareA5
	SquareH6
	SquareG6
	SquareF6
	SquareE6
	SquareD6
	SquareC6
	SquareB6
	SquareA6
	SquareH7
	SquareG7
	SquareF7
	SquareE7
	SquareD7
	SquareC7
	SquareB7
	SquareA7
	SquareH8
	SquareG8
	SquareF8
	SquareE8
	SquareD8
	SquareC8
	SquareB8
	SquareA8
)

const SquareCount = 64

var squareNames = [SquareCount]string{
	"h1", "g1", "f1", "e1", "d1", "c1", "b1", "a1",
	"h2", "g2", "f2", "e2", "d2", "c2", "b2", "a2",
	"h3", "g3", "f3", "e3", "d3", "c3", "b3", "a3",
	"h4", "g4", "f4", "e4", "d4", "c4", "b4", "a4",
	"h5", "g5", "f5", "e5", "d5", "c5", "b5", "a5",
	"h6", "g6", "f6", "e6", "d6", "c6", "b6", "a6",
	"h7", "g7", "f7", "e7", "d7", "c7", "b7", "a7",
	"h8", "g8", "f8", "e8", "d8", "c8", "b8", "a8",
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func File(sq int) int {
	return FileH - sq&7
}

func Rank(sq int) int {
	return sq >> 3
}

func MakeSquare(file, rank int) int {
	return rank<<3 | (FileH - file)
}

func SquareName(sq int) string {
	return squareNames[sq]
}

func ParseSquare(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	var file = strings.IndexByte(fileNames, lower(s[0]))
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return MakeSquare(file, rank), nil
}

func lower(ch byte) byte {
	if 'A' <= ch && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}
