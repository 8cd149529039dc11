package common

import (
	"errors"
	"fmt"
	"strings"
)

// MaxMoves is the largest number of legal moves in any reachable chess position.
const MaxMoves = 218

var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidMove   = errors.New("invalid move")
)

type Promotion uint8

const (
	PromotionNone Promotion = iota
	PromotionKnight
	PromotionBishop
	PromotionRook
	PromotionQueen
)

const promotionLetters = " nbrq"

func (p Promotion) String() string {
	if p == PromotionNone || int(p) >= len(promotionLetters) {
		return ""
	}
	return promotionLetters[p : p+1]
}

func parsePromotion(ch byte) (Promotion, bool) {
	var i = strings.IndexByte(promotionLetters[1:], lower(ch))
	if i < 0 {
		return PromotionNone, false
	}
	return Promotion(i + 1), true
}

// Move is compared by value: two moves are the same move iff all three fields match.
type Move struct {
	From      uint8
	To        uint8
	Promotion Promotion
}

var MoveEmpty = Move{}

func NewMove(from, to int, promotion Promotion) Move {
	return Move{From: uint8(from), To: uint8(to), Promotion: promotion}
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	return SquareName(int(m.From)) + SquareName(int(m.To)) + m.Promotion.String()
}

// ParseMove decodes long algebraic notation such as e2e4 or e7e8q.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	var from, err = ParseSquare(s[0:2])
	if err != nil {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	var promotion = PromotionNone
	if len(s) == 5 {
		var ok bool
		promotion, ok = parsePromotion(s[4])
		if !ok {
			return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
		}
	}
	return NewMove(from, to, promotion), nil
}

// ParseMoves decodes tokens until the first malformed one.
// The moves decoded before it are returned together with ok == false.
func ParseMoves(fields []string) (moves []Move, ok bool) {
	moves = make([]Move, 0, len(fields))
	for _, field := range fields {
		var move, err = ParseMove(field)
		if err != nil {
			return moves, false
		}
		moves = append(moves, move)
	}
	return moves, true
}

func ResetMoves(buffer []Move) {
	for i := range buffer {
		buffer[i] = MoveEmpty
	}
}

func FindMoveIndex(ml []Move, move Move) int {
	for i := range ml {
		if ml[i] == move {
			return i
		}
	}
	return -1
}

func MoveToBegin(ml []Move, index int) {
	if index == 0 {
		return
	}
	var item = ml[index]
	copy(ml[1:index+1], ml[:index])
	ml[0] = item
}

// RestrictMoves keeps the moves of ml that also appear in allowed.
// The filtering is done in place; the order of the result is not guaranteed.
func RestrictMoves(ml []Move, allowed []Move) []Move {
	var set = make(map[Move]struct{}, len(allowed))
	for _, m := range allowed {
		set[m] = struct{}{}
	}
	var n = 0
	for _, m := range ml {
		if _, found := set[m]; found {
			ml[n] = m
			n++
		}
	}
	return ml[:n]
}
