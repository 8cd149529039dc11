package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/corentings/chess/v2"

	"github.com/avie-chess/avie/pkg/common"
)

var ErrIllegalMove = errors.New("illegal move")

const (
	Empty = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// Position is an immutable-by-default view of a chess position.
// MakeMove is the only method that changes the receiver.
type Position struct {
	pos *chess.Position
}

var (
	chessSquares [common.SquareCount]chess.Square
	notation     chess.UCINotation
)

func init() {
	for sq := range chessSquares {
		chessSquares[sq] = chess.NewSquare(chess.File(common.File(sq)), chess.Rank(common.Rank(sq)))
	}
}

func NewPosition() *Position {
	return &Position{pos: chess.NewGame().Position()}
}

func DecodeFEN(fen string) (*Position, error) {
	var opt, err = chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("decode fen %q: %w", fen, err)
	}
	return &Position{pos: chess.NewGame(opt).Position()}, nil
}

func (p *Position) String() string {
	return p.pos.String()
}

// Key identifies the position independently of the move counters.
func (p *Position) Key() uint64 {
	var fields = strings.Fields(p.pos.String())
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return xxhash.Sum64String(strings.Join(fields, " "))
}

func (p *Position) WhiteToMove() bool {
	return p.pos.Turn() == chess.White
}

func (p *Position) Status() Status {
	switch p.pos.Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	}
	return Ongoing
}

// GenerateMoves writes the legal moves into buffer and returns the used prefix.
func (p *Position) GenerateMoves(buffer []common.Move) []common.Move {
	var n = 0
	for _, m := range p.pos.ValidMoves() {
		if n == len(buffer) {
			break
		}
		buffer[n] = common.NewMove(fromChessSquare(m.S1()), fromChessSquare(m.S2()), fromChessPromotion(m.Promo()))
		n++
	}
	return buffer[:n]
}

// Play returns the position after m, leaving the receiver untouched.
// Moves that are not legal in p are rejected with ErrIllegalMove.
func (p *Position) Play(m common.Move) (*Position, error) {
	if !p.isLegal(m) {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	var move, err = notation.Decode(p.pos, m.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	return &Position{pos: p.pos.Update(move)}, nil
}

func (p *Position) isLegal(m common.Move) bool {
	for _, vm := range p.pos.ValidMoves() {
		if fromChessSquare(vm.S1()) == int(m.From) &&
			fromChessSquare(vm.S2()) == int(m.To) &&
			fromChessPromotion(vm.Promo()) == m.Promotion {
			return true
		}
	}
	return false
}

func (p *Position) MakeMove(m common.Move) error {
	var child, err = p.Play(m)
	if err != nil {
		return err
	}
	p.pos = child.pos
	return nil
}

// PieceAt returns the piece kind (Empty..King) and its colour.
func (p *Position) PieceAt(sq int) (piece int, white bool) {
	var pc = p.pos.Board().Piece(chessSquares[sq])
	if pc == chess.NoPiece {
		return Empty, false
	}
	return fromChessPieceType(pc.Type()), pc.Color() == chess.White
}

// IsCapture reports captures including en passant.
func (p *Position) IsCapture(m common.Move) bool {
	var captured, _ = p.PieceAt(int(m.To))
	if captured != Empty {
		return true
	}
	var moving, _ = p.PieceAt(int(m.From))
	return moving == Pawn && common.File(int(m.From)) != common.File(int(m.To))
}

func fromChessSquare(sq chess.Square) int {
	return common.MakeSquare(int(sq.File()), int(sq.Rank()))
}

func fromChessPromotion(pt chess.PieceType) common.Promotion {
	switch pt {
	case chess.Knight:
		return common.PromotionKnight
	case chess.Bishop:
		return common.PromotionBishop
	case chess.Rook:
		return common.PromotionRook
	case chess.Queen:
		return common.PromotionQueen
	}
	return common.PromotionNone
}

func fromChessPieceType(pt chess.PieceType) int {
	switch pt {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return Empty
}
